package identity

import (
	"context"
	"fmt"

	"github.com/Simply-Coder-start/Medi-Triage/internal/store"
)

// Repository defines the interface for user storage.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Insert(ctx context.Context, user User) error
	Update(ctx context.Context, user User) error
}

// RedisRepository keeps the whole user collection as one JSON blob.
type RedisRepository struct {
	store *store.Store
}

// NewRedisRepository creates a repository over the shared store.
func NewRedisRepository(s *store.Store) *RedisRepository {
	return &RedisRepository{store: s}
}

// List returns every user record.
func (r *RedisRepository) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := r.store.Load(ctx, store.KeyUsers, &users); err != nil {
		return nil, fmt.Errorf("identity: list users: %w", err)
	}
	return users, nil
}

// FindByUsername scans the collection for a username. Uniqueness is
// enforced by this scan before insert, exactly as wide as that sounds.
func (r *RedisRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// Insert appends a user record.
func (r *RedisRepository) Insert(ctx context.Context, user User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, user)
	if err := r.store.Save(ctx, store.KeyUsers, users); err != nil {
		return fmt.Errorf("identity: insert user: %w", err)
	}
	return nil
}

// Update rewrites the record with the matching username.
func (r *RedisRepository) Update(ctx context.Context, user User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Username == user.Username {
			users[i] = user
			if err := r.store.Save(ctx, store.KeyUsers, users); err != nil {
				return fmt.Errorf("identity: update user: %w", err)
			}
			return nil
		}
	}
	return ErrUserNotFound
}
