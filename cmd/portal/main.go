package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"nexus-portal/internal/calendar"
	"nexus-portal/internal/config"
	"nexus-portal/internal/form"
	"nexus-portal/internal/models"
	"nexus-portal/internal/portal"
	"nexus-portal/internal/storage"
)

func main() {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfgPath := os.Getenv("PORTAL_CONFIG")
	if cfgPath == "" {
		cfgPath = "portal.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	events := loadEvents(cfg, logger)

	app := &app{
		cfg:      cfg,
		session:  portal.NewSession(logger),
		form:     form.NewController(store, logger),
		flow:     portal.NewFlow(store, logger),
		profiles: portal.NewProfileManager(store, logger),
		events:   events,
		scanner:  bufio.NewScanner(os.Stdin),
	}

	fmt.Printf("%s Event Space Request Portal\n", cfg.PortalName)
	fmt.Println(strings.Repeat("=", 40))

	done := make(chan struct{})
	go func() {
		app.run()
		close(done)
	}()

	// Wait for the view loop to finish or an interrupt signal.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
	case <-c:
		fmt.Println("\n\nShutting down...")
	}
}

// openStore picks the persistence backend from configuration.
func openStore(cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.Storage {
	case "sqlite":
		s, err := storage.NewSQLiteStore(filepath.Join(cfg.DataDir, "portal.db"))
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		s, err := storage.NewFileStore(filepath.Join(cfg.DataDir, "portal.json"))
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}

// loadEvents reads the configured ICS calendar, falling back to the
// built-in fixture.
func loadEvents(cfg *config.Config, logger zerolog.Logger) []models.CalendarEvent {
	if cfg.CalendarICS == "" {
		return calendar.Fixture()
	}
	events, err := calendar.LoadICS(cfg.CalendarICS)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.CalendarICS).Msg("falling back to built-in calendar fixture")
		return calendar.Fixture()
	}
	return events
}

type app struct {
	cfg      *config.Config
	session  *portal.Session
	form     *form.Controller
	flow     *portal.Flow
	profiles *portal.ProfileManager
	events   []models.CalendarEvent
	scanner  *bufio.Scanner
}

// run drives the view loop until the user exits.
func (a *app) run() {
	for {
		switch a.session.View() {
		case portal.ViewLogin:
			if !a.loginView() {
				return
			}
		case portal.ViewSignup:
			a.signupView()
		case portal.ViewDashboard:
			if !a.dashboardView() {
				return
			}
		case portal.ViewSubmitRequest:
			a.submitRequestView()
		case portal.ViewConfirmation:
			a.confirmationView()
		case portal.ViewProfile:
			a.profileView()
		}
	}
}

// prompt reads one line, returning false when stdin closes.
func (a *app) prompt(label string) (string, bool) {
	fmt.Print(label)
	if !a.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.scanner.Text()), true
}

func (a *app) loginView() bool {
	fmt.Println("\n--- Login ---")
	fmt.Println("(type 'signup' as username to create an account, 'exit' to quit)")
	username, ok := a.prompt("Username: ")
	if !ok || username == "exit" {
		return false
	}
	if username == "signup" {
		_ = a.session.Go(portal.ViewSignup)
		return true
	}
	password, ok := a.prompt("Password: ")
	if !ok {
		return false
	}
	if err := a.session.Login(username, password); err != nil {
		fmt.Printf("Login failed: %v\n", err)
	}
	return true
}

func (a *app) signupView() {
	fmt.Println("\n--- Create Account ---")
	username, _ := a.prompt("Username: ")
	email, _ := a.prompt("Email: ")
	password, _ := a.prompt("Password: ")
	confirm, _ := a.prompt("Confirm password: ")
	if err := a.session.Signup(username, email, password, confirm); err != nil {
		fmt.Printf("Signup failed: %v\n", err)
		return
	}
	fmt.Println("Account created. Please log in.")
}

func (a *app) dashboardView() bool {
	fmt.Printf("\n--- %s Dashboard (%s) ---\n", a.cfg.PortalName, a.session.Username())

	fmt.Println("\nYour Event Requests:")
	for _, e := range a.events {
		fmt.Printf("  [%s] %s - %s, %s to %s (%s)\n",
			e.Status, e.Title,
			e.Start.Format("Jan 02, 2006"),
			e.Start.Format("3:04 PM"), e.End.Format("3:04 PM"),
			e.Location)
	}

	fmt.Println("\nUpcoming Approved Events:")
	approved := calendar.Approved(a.events)
	if len(approved) == 0 {
		fmt.Println("  No approved events found to display")
	}
	for _, e := range approved {
		fmt.Printf("  %s  %s - %s by %s\n",
			e.Start.Format("2006-01-02"), e.Title, e.Location, e.Organizer)
	}

	fmt.Println("\nCommands:")
	fmt.Println("  1. Submit Request")
	fmt.Println("  2. Profile")
	fmt.Println("  3. Logout")
	fmt.Println("  4. Exit")
	choice, ok := a.prompt("\nEnter command (1-4): ")
	if !ok {
		return false
	}

	switch choice {
	case "1":
		_ = a.session.Go(portal.ViewSubmitRequest)
	case "2":
		_ = a.session.Go(portal.ViewProfile)
	case "3":
		a.session.Logout()
	case "4":
		fmt.Println("Goodbye!")
		return false
	default:
		fmt.Println("Invalid command. Please try again.")
	}
	return true
}

func (a *app) submitRequestView() {
	if a.form.LoadDraft() {
		fmt.Println("\nResumed your saved draft.")
	}
	fmt.Println("\n--- Event Request Form ---")

	a.editField("Event Name", form.FieldEventName)
	fmt.Printf("Event types: %s\n", strings.Join(models.EventTypeOptions(), ", "))
	a.editField("Event Type", form.FieldEventType)
	a.editField("Event Date (YYYY-MM-DD, at least 10 days out)", form.FieldEventDate)
	a.editField("Start Date (YYYY-MM-DD)", form.FieldStartDate)
	a.editField("Setup Time (HH:MM)", form.FieldSetupTime)
	a.editField("Start Time (HH:MM)", form.FieldStartTime)
	a.editField("End Time (HH:MM)", form.FieldEndTime)
	a.editField("Presenter Name", form.FieldPresenterName)
	a.editField("Presenter Cell", form.FieldPresenterCell)
	a.editField("Presenter Email", form.FieldPresenterEmail)
	a.editField("Tables/chairs needed? (yes/no)", form.FieldTablesChairsNeeded)
	a.editField("Event Building", form.FieldEventBuilding)
	a.editField("Equipment Needed", form.FieldEquipmentNeeded)
	a.editField("Number of Attendees", form.FieldNumberOfAttendees)
	a.editField("Event Description", form.FieldEventDescription)
	a.editField("Alternative Location (2nd option)", form.FieldAlternativeLocation1)
	a.editField("Alternative Location (3rd option)", form.FieldAlternativeLocation2)
	a.editField("Alternative Location (4th option)", form.FieldAlternativeLocation3)
	a.editField("Alternative Location (optional)", form.FieldAlternativeLocation4)
	a.editField("Public master calendar? (yes/no)", form.FieldPublicCalendar)

	a.editAudiences()

	a.editFlag("Handicap accommodations", form.FieldHandicapAccommodations)
	a.editFlag("Parking arrangements", form.FieldParkingArrangements)
	a.editFlag("Dignitaries attending", form.FieldDignitaries)
	a.editFlag("Exchange or collection of money", form.FieldMoneyExchange)
	a.editFlag("I agree to the event policies", form.FieldPolicyAgreement)

	fmt.Println("\n  1. Submit Request")
	fmt.Println("  2. Save & Resume Later")
	fmt.Println("  3. Back (discard draft)")
	choice, _ := a.prompt("\nEnter command (1-3): ")

	switch choice {
	case "1":
		if _, err := a.flow.Submit(a.form.Record()); err != nil {
			var invalid *portal.ErrInvalidRequest
			if errors.As(err, &invalid) {
				fmt.Println("\nThe form has problems:")
				for _, p := range invalid.Result.Problems {
					fmt.Printf("  %s: %s\n", p.Field, p.Reason)
				}
				// Stay on the form; the draft keeps the entered values.
				_ = a.flow.SaveDraft(a.form.Record())
				return
			}
			fmt.Printf("Submit failed: %v\n", err)
			return
		}
		a.form.Reset()
		_ = a.session.Go(portal.ViewConfirmation)
	case "2":
		if err := a.flow.SaveDraft(a.form.Record()); err != nil {
			fmt.Printf("Save failed: %v\n", err)
			return
		}
		fmt.Println("Your progress has been saved. You can resume later.")
		_ = a.session.Go(portal.ViewDashboard)
	default:
		if err := a.flow.Discard(); err != nil {
			fmt.Printf("Discard failed: %v\n", err)
		}
		a.form.Reset()
		_ = a.session.Go(portal.ViewDashboard)
	}
}

// editField shows the current value and keeps it when the user presses
// enter.
func (a *app) editField(label, field string) {
	current := currentValue(a.form.Record(), field)
	suffix := ""
	if current != "" {
		suffix = fmt.Sprintf(" [%s]", current)
	}
	value, ok := a.prompt(fmt.Sprintf("%s%s: ", label, suffix))
	if !ok || value == "" {
		return
	}
	a.form.SetField(field, value)
}

func (a *app) editFlag(label, field string) {
	value, ok := a.prompt(fmt.Sprintf("%s? (y/N): ", label))
	if !ok {
		return
	}
	a.form.SetField(field, strings.EqualFold(value, "y") || strings.EqualFold(value, "yes"))
}

func (a *app) editAudiences() {
	fmt.Println("\nTarget Audience (select at least one):")
	record := a.form.Record()
	for i, c := range models.AudienceCategories() {
		mark := " "
		if record.TargetAudience[c] {
			mark = "x"
		}
		fmt.Printf("  %d. [%s] %s\n", i+1, mark, c)
	}
	line, ok := a.prompt("Toggle numbers (comma separated, enter to keep): ")
	if !ok || line == "" {
		return
	}
	categories := models.AudienceCategories()
	for _, tok := range strings.Split(line, ",") {
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(tok), "%d", &n); err != nil || n < 1 || n > len(categories) {
			continue
		}
		a.form.ToggleAudience(categories[n-1])
	}
}

func (a *app) confirmationView() {
	model, err := a.flow.Confirmation()
	if err != nil {
		fmt.Println("\nNo Submission Found")
		fmt.Println("We couldn't find any recently submitted event request data.")
		_ = a.session.Go(portal.ViewSubmitRequest)
		return
	}

	fmt.Println("\n--- Event Request Confirmation ---")
	fmt.Printf("Request ID: %s\n", model.RequestID)
	fmt.Println("Thank you! Your event request has been submitted successfully.")
	fmt.Printf("\nEvent Name: %s\n", model.EventName)
	fmt.Printf("Event Type: %s\n", model.EventType)
	fmt.Printf("Event Date: %s\n", model.EventDate)
	fmt.Printf("Start Date: %s\n", model.StartDate)
	fmt.Printf("Setup Time: %s\n", model.SetupTime)
	fmt.Printf("Start Time: %s\n", model.StartTime)
	fmt.Printf("End Time: %s\n", model.EndTime)
	fmt.Printf("\nPresenter: %s (%s, %s)\n", model.PresenterName, model.PresenterCell, model.PresenterEmail)
	fmt.Printf("Building: %s\n", model.EventBuilding)
	fmt.Printf("Attendees: %s\n", model.NumberOfAttendees)

	if len(model.AlternativeLocations) > 0 {
		fmt.Println("\nAlternative Locations:")
		for _, l := range model.AlternativeLocations {
			fmt.Printf("  Alternative %d: %s\n", l.Number, l.Location)
		}
	}
	if len(model.Audiences) > 0 {
		fmt.Printf("\nTarget Audience: %s\n", strings.Join(model.Audiences, ", "))
	}

	fmt.Println("\n  1. Return to Dashboard")
	fmt.Println("  2. Back")
	choice, _ := a.prompt("\nEnter command (1-2): ")
	if choice == "2" {
		_ = a.session.Go(portal.ViewSubmitRequest)
		return
	}
	if err := a.flow.Acknowledge(); err != nil {
		fmt.Printf("Error clearing submission: %v\n", err)
	}
	_ = a.session.Go(portal.ViewDashboard)
}

func (a *app) profileView() {
	p := a.profiles.Load()
	fmt.Println("\n--- Organization Profile ---")

	p.OrgName = a.editProfileField("Org Name", p.OrgName)
	p.OrgEmail = a.editProfileField("Org Email", p.OrgEmail)
	p.EventCoordinatorName = a.editProfileField("Event Coordinator Name", p.EventCoordinatorName)
	p.EventCoordinatorCell = a.editProfileField("Event Coordinator Cell", p.EventCoordinatorCell)
	p.EventCoordinatorEmail = a.editProfileField("Event Coordinator Email", p.EventCoordinatorEmail)
	p.AdvisorName = a.editProfileField("Advisor Name", p.AdvisorName)
	p.AdvisorEmail = a.editProfileField("Advisor Email", p.AdvisorEmail)
	p.AdvisorCell = a.editProfileField("Advisor Cell", p.AdvisorCell)
	p.OrgDescription = a.editProfileField("Org Description", p.OrgDescription)

	if path, ok := a.prompt("Profile picture file (enter to skip): "); ok && path != "" {
		if err := a.profiles.AttachPicture(&p, path); err != nil {
			fmt.Printf("Could not attach picture: %v\n", err)
		}
	}

	if err := a.profiles.Save(p); err != nil {
		fmt.Printf("Save failed: %v\n", err)
	} else {
		fmt.Println("Profile successfully updated and saved!")
	}
	_ = a.session.Go(portal.ViewDashboard)
}

func (a *app) editProfileField(label, current string) string {
	suffix := ""
	if current != "" {
		suffix = fmt.Sprintf(" [%s]", current)
	}
	value, ok := a.prompt(fmt.Sprintf("%s%s: ", label, suffix))
	if !ok || value == "" {
		return current
	}
	return value
}

// currentValue pulls one string field out of the record for display.
func currentValue(r models.EventRequest, field string) string {
	switch field {
	case form.FieldEventName:
		return r.EventName
	case form.FieldEventType:
		return r.EventType
	case form.FieldEventDate:
		return r.EventDate
	case form.FieldStartDate:
		return r.StartDate
	case form.FieldSetupTime:
		return r.SetupTime
	case form.FieldStartTime:
		return r.StartTime
	case form.FieldEndTime:
		return r.EndTime
	case form.FieldPresenterName:
		return r.PresenterName
	case form.FieldPresenterCell:
		return r.PresenterCell
	case form.FieldPresenterEmail:
		return r.PresenterEmail
	case form.FieldTablesChairsNeeded:
		return r.TablesChairsNeeded
	case form.FieldEventBuilding:
		return r.EventBuilding
	case form.FieldEquipmentNeeded:
		return r.EquipmentNeeded
	case form.FieldNumberOfAttendees:
		return r.NumberOfAttendees
	case form.FieldEventDescription:
		return r.EventDescription
	case form.FieldAlternativeLocation1:
		return r.AlternativeLocation1
	case form.FieldAlternativeLocation2:
		return r.AlternativeLocation2
	case form.FieldAlternativeLocation3:
		return r.AlternativeLocation3
	case form.FieldAlternativeLocation4:
		return r.AlternativeLocation4
	case form.FieldPublicCalendar:
		return r.PublicCalendar
	}
	return ""
}
