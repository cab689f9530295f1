package portal

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// View identifies one of the portal's destinations.
type View string

const (
	ViewLogin         View = "login"
	ViewSignup        View = "signup"
	ViewDashboard     View = "dashboard"
	ViewSubmitRequest View = "submitRequest"
	ViewConfirmation  View = "confirmation"
	ViewProfile       View = "profile"
)

var (
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrBadTransition      = errors.New("navigation not allowed from current view")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

// transitions lists where each view can navigate to. The confirmation
// view is only reachable through a successful submit, so it never appears
// as a dashboard target.
var transitions = map[View][]View{
	ViewLogin:         {ViewSignup, ViewDashboard},
	ViewSignup:        {ViewLogin},
	ViewDashboard:     {ViewSubmitRequest, ViewProfile, ViewLogin},
	ViewSubmitRequest: {ViewDashboard, ViewConfirmation},
	ViewConfirmation:  {ViewDashboard, ViewSubmitRequest},
	ViewProfile:       {ViewDashboard, ViewLogin},
}

// Session tracks the logged-in user and the current view.
type Session struct {
	view     View
	username string
	log      zerolog.Logger
}

// NewSession starts a session at the login view.
func NewSession(logger zerolog.Logger) *Session {
	return &Session{
		view: ViewLogin,
		log:  logger.With().Str("component", "session").Logger(),
	}
}

// View returns the current view.
func (s *Session) View() View {
	return s.view
}

// Username returns the logged-in username, empty before login.
func (s *Session) Username() string {
	return s.username
}

// Login checks the credentials locally and moves to the dashboard. There
// is no authentication backend; any non-empty pair is accepted.
func (s *Session) Login(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrMissingCredentials
	}
	s.username = username
	s.view = ViewDashboard
	s.log.Info().Str("user", username).Msg("logged in")
	return nil
}

// Signup applies the local signup checks and returns to the login view.
func (s *Session) Signup(username, email, password, confirm string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return ErrMissingCredentials
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	s.view = ViewLogin
	return nil
}

// Logout clears the user and returns to the login view.
func (s *Session) Logout() {
	s.username = ""
	s.view = ViewLogin
}

// Go navigates to the target view if the current view allows it. Every
// view past login requires a logged-in user.
func (s *Session) Go(target View) error {
	if target != ViewLogin && target != ViewSignup && s.username == "" {
		return ErrNotLoggedIn
	}
	for _, allowed := range transitions[s.view] {
		if allowed == target {
			s.view = target
			return nil
		}
	}
	return ErrBadTransition
}
