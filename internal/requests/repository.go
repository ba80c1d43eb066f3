package requests

import (
	"context"
	"fmt"

	"github.com/Simply-Coder-start/Medi-Triage/internal/store"
)

// Repository defines the interface for the request collection.
type Repository interface {
	InsertFront(ctx context.Context, req Request) error
	GetByID(ctx context.Context, id string) (*Request, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Request, error)
	Delete(ctx context.Context, id string) error
	ListForPatient(ctx context.Context, patientUsername string) ([]Request, error)
	ListPendingBySpecialty(ctx context.Context, specialty string) ([]Request, error)
}

// RedisRepository keeps the whole request list as one JSON blob, newest
// first.
type RedisRepository struct {
	store *store.Store
}

// NewRedisRepository creates a repository over the shared store.
func NewRedisRepository(s *store.Store) *RedisRepository {
	return &RedisRepository{store: s}
}

func (r *RedisRepository) load(ctx context.Context) ([]Request, error) {
	var all []Request
	if err := r.store.Load(ctx, store.KeyRequests, &all); err != nil {
		return nil, fmt.Errorf("requests: load: %w", err)
	}
	return all, nil
}

func (r *RedisRepository) save(ctx context.Context, all []Request) error {
	if err := r.store.Save(ctx, store.KeyRequests, all); err != nil {
		return fmt.Errorf("requests: save: %w", err)
	}
	return nil
}

// InsertFront prepends so newer requests list first.
func (r *RedisRepository) InsertFront(ctx context.Context, req Request) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append([]Request{req}, all...))
}

// GetByID returns one request.
func (r *RedisRepository) GetByID(ctx context.Context, id string) (*Request, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrRequestNotFound
}

// UpdateStatus rewrites the status field in place.
func (r *RedisRepository) UpdateStatus(ctx context.Context, id string, status Status) (*Request, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			all[i].Status = status
			if err := r.save(ctx, all); err != nil {
				return nil, err
			}
			return &all[i], nil
		}
	}
	return nil, ErrRequestNotFound
}

// Delete removes the request entirely.
func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			return r.save(ctx, append(all[:i], all[i+1:]...))
		}
	}
	return ErrRequestNotFound
}

// ListForPatient returns the patient's requests in stored (newest first)
// order.
func (r *RedisRepository) ListForPatient(ctx context.Context, patientUsername string) ([]Request, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Request, 0, len(all))
	for _, req := range all {
		if req.PatientUsername == patientUsername {
			out = append(out, req)
		}
	}
	return out, nil
}

// ListPendingBySpecialty returns the doctor-facing inbox: pending requests
// whose suggested specialty matches.
func (r *RedisRepository) ListPendingBySpecialty(ctx context.Context, specialty string) ([]Request, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Request, 0, len(all))
	for _, req := range all {
		if req.Status == StatusPending && req.SuggestedSpecialty == specialty {
			out = append(out, req)
		}
	}
	return out, nil
}
