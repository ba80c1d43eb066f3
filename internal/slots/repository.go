package slots

import (
	"context"
	"fmt"
	"sort"

	"github.com/Simply-Coder-start/Medi-Triage/internal/store"
)

// Repository defines the interface for slot storage.
type Repository interface {
	ListForDoctor(ctx context.Context, doctorUsername string) ([]Slot, error)
	Insert(ctx context.Context, slot Slot) error
	Remove(ctx context.Context, slotID string) (*Slot, error)
	PopEarliest(ctx context.Context, doctorUsername string) (*Slot, error)
}

// RedisRepository keeps the whole slot collection as one JSON blob.
type RedisRepository struct {
	store *store.Store
}

// NewRedisRepository creates a repository over the shared store.
func NewRedisRepository(s *store.Store) *RedisRepository {
	return &RedisRepository{store: s}
}

func (r *RedisRepository) load(ctx context.Context) ([]Slot, error) {
	var all []Slot
	if err := r.store.Load(ctx, store.KeySlots, &all); err != nil {
		return nil, fmt.Errorf("slots: load: %w", err)
	}
	return all, nil
}

func (r *RedisRepository) save(ctx context.Context, all []Slot) error {
	if err := r.store.Save(ctx, store.KeySlots, all); err != nil {
		return fmt.Errorf("slots: save: %w", err)
	}
	return nil
}

// ListForDoctor returns the doctor's slots sorted chronologically.
func (r *RedisRepository) ListForDoctor(ctx context.Context, doctorUsername string) ([]Slot, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]Slot, 0, len(all))
	for _, s := range all {
		if s.DoctorUsername == doctorUsername {
			mine = append(mine, s)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].At.Before(mine[j].At) })
	return mine, nil
}

// Insert appends a slot. No dedup and no future check, matching how
// doctors actually declared availability in the legacy flow.
func (r *RedisRepository) Insert(ctx context.Context, slot Slot) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(all, slot))
}

// Remove deletes a slot by id, returning the removed record.
func (r *RedisRepository) Remove(ctx context.Context, slotID string) (*Slot, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i, s := range all {
		if s.ID == slotID {
			removed := s
			all = append(all[:i], all[i+1:]...)
			if err := r.save(ctx, all); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, ErrSlotNotFound
}

// PopEarliest removes and returns the chronologically earliest slot for a
// doctor, or ErrNoSlots when the doctor has none.
func (r *RedisRepository) PopEarliest(ctx context.Context, doctorUsername string) (*Slot, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	earliest := -1
	for i, s := range all {
		if s.DoctorUsername != doctorUsername {
			continue
		}
		if earliest < 0 || s.At.Before(all[earliest].At) {
			earliest = i
		}
	}
	if earliest < 0 {
		return nil, ErrNoSlots
	}

	chosen := all[earliest]
	all = append(all[:earliest], all[earliest+1:]...)
	if err := r.save(ctx, all); err != nil {
		return nil, err
	}
	return &chosen, nil
}
