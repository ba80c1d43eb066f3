package triage

import (
	"context"
	"fmt"
	"time"

	"github.com/Simply-Coder-start/Medi-Triage/internal/store"
)

// AutosaveStore persists per-patient triage progress so an interrupted
// session resumes at the exact question it left off.
type AutosaveStore struct {
	store *store.Store
}

// NewAutosaveStore creates an autosave store over the shared blob store.
func NewAutosaveStore(s *store.Store) *AutosaveStore {
	return &AutosaveStore{store: s}
}

// Save writes the progress record for a patient, stamping UpdatedAt.
func (a *AutosaveStore) Save(ctx context.Context, username string, p Progress) error {
	p.UpdatedAt = time.Now().UTC()
	if err := a.store.Save(ctx, store.AutosaveKey(username), p); err != nil {
		return fmt.Errorf("triage: autosave for %s: %w", username, err)
	}
	return nil
}

// Load returns the saved progress, or ErrNoSavedProgress when the patient
// has none.
func (a *AutosaveStore) Load(ctx context.Context, username string) (Progress, error) {
	var p Progress
	if err := a.store.Load(ctx, store.AutosaveKey(username), &p); err != nil {
		return Progress{}, fmt.Errorf("triage: load autosave for %s: %w", username, err)
	}
	if p.Symptom == "" && len(p.Answers) == 0 {
		return Progress{}, ErrNoSavedProgress
	}
	return p, nil
}

// Clear removes the patient's autosave record.
func (a *AutosaveStore) Clear(ctx context.Context, username string) error {
	if err := a.store.Delete(ctx, store.AutosaveKey(username)); err != nil {
		return fmt.Errorf("triage: clear autosave for %s: %w", username, err)
	}
	return nil
}
