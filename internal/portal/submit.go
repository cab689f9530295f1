// Package portal implements the flows behind the portal's views:
// submitting a request, rendering its confirmation, editing the
// organization profile and moving between views.
package portal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"nexus-portal/internal/form"
	"nexus-portal/internal/models"
	"nexus-portal/internal/storage"
)

// ErrInvalidRequest is returned by Submit when the record fails validation.
type ErrInvalidRequest struct {
	Result form.Result
}

func (e *ErrInvalidRequest) Error() string {
	return fmt.Sprintf("event request is invalid, first invalid field: %s", e.Result.FirstInvalidField)
}

// Flow persists event requests through their draft and submitted states.
type Flow struct {
	store storage.Store
	log   zerolog.Logger
	now   func() time.Time
	newID func() string
}

// NewFlow creates a submission flow on top of the given store.
func NewFlow(store storage.Store, logger zerolog.Logger) *Flow {
	return &Flow{
		store: store,
		log:   logger.With().Str("component", "submission").Logger(),
		now:   time.Now,
		newID: newRequestID,
	}
}

// newRequestID generates an opaque request identifier.
func newRequestID() string {
	return "REQ-" + strings.ToUpper(uuid.NewString()[:8])
}

// Submit validates the record, snapshots it as the submitted request with
// a request id, and deletes the draft. Resubmitting an unchanged record
// overwrites the same keys; no second stored record is created.
func (f *Flow) Submit(r models.EventRequest) (string, error) {
	if res := form.Validate(r, f.now()); !res.IsValid {
		return "", &ErrInvalidRequest{Result: res}
	}

	// Reuse an id left over from an earlier submission of this request.
	var id string
	if !storage.GetJSON(f.store, storage.KeyRequestID, &id) || id == "" {
		id = f.newID()
	}

	if err := storage.PutJSON(f.store, storage.KeySubmittedRequest, r); err != nil {
		return "", fmt.Errorf("failed to store submitted request: %w", err)
	}
	if err := storage.PutJSON(f.store, storage.KeyRequestID, id); err != nil {
		return "", fmt.Errorf("failed to store request id: %w", err)
	}
	if err := f.store.Delete(storage.KeyDraftRequest); err != nil {
		return "", fmt.Errorf("failed to clear draft: %w", err)
	}

	f.log.Info().Str("request_id", id).Str("event", r.EventName).Msg("event request submitted")
	return id, nil
}

// SaveDraft persists the record as a resumable draft. Drafts are saved as
// entered; no validation applies.
func (f *Flow) SaveDraft(r models.EventRequest) error {
	if err := storage.PutJSON(f.store, storage.KeyDraftRequest, r); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	f.log.Info().Msg("draft saved")
	return nil
}

// Discard deletes the draft without persisting anything else.
func (f *Flow) Discard() error {
	if err := f.store.Delete(storage.KeyDraftRequest); err != nil {
		return fmt.Errorf("failed to discard draft: %w", err)
	}
	return nil
}

// Submitted returns the submitted record and its request id, if present.
func (f *Flow) Submitted() (models.EventRequest, string, bool) {
	var r models.EventRequest
	if !storage.GetJSON(f.store, storage.KeySubmittedRequest, &r) {
		return models.EventRequest{}, "", false
	}
	var id string
	storage.GetJSON(f.store, storage.KeyRequestID, &id)
	return r, id, true
}

// Acknowledge clears the submitted record and request id once the user
// has seen the confirmation and returned to the dashboard.
func (f *Flow) Acknowledge() error {
	if err := f.store.Delete(storage.KeySubmittedRequest); err != nil {
		return fmt.Errorf("failed to clear submitted request: %w", err)
	}
	if err := f.store.Delete(storage.KeyRequestID); err != nil {
		return fmt.Errorf("failed to clear request id: %w", err)
	}
	return nil
}

// Confirmation builds the confirmation display for the stored submission.
// ErrNoSubmission means there is nothing to confirm; the caller shows an
// empty state rather than an error.
func (f *Flow) Confirmation() (DisplayModel, error) {
	r, id, ok := f.Submitted()
	if !ok {
		return DisplayModel{}, ErrNoSubmission
	}
	return Present(r, id), nil
}

// ErrNoSubmission reports that no submitted event request is stored.
var ErrNoSubmission = errors.New("no submitted event request found")
