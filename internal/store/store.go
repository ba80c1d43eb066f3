// Package store persists entity collections as whole JSON blobs in Redis.
// Every repository loads its collection, mutates it in memory, and stores
// it back. There is no isolation between writers racing on the same key:
// interleaved read-modify-write cycles can lose updates. The service runs
// one logical actor per session and deliberately does not add locking.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Collection keys. One key holds one JSON-serialized array.
const (
	KeyUsers        = "medi:users"
	KeyRequests     = "medi:requests"
	KeyAppointments = "medi:appointments"
	KeySlots        = "medi:slots"
)

// AutosaveKey returns the per-patient triage autosave key.
func AutosaveKey(username string) string {
	return fmt.Sprintf("medi:triage:autosave:%s", username)
}

// Store is the shared JSON-blob codec over a Redis client.
type Store struct {
	rdb *redis.Client
}

// New creates a store. The client must not be nil.
func New(rdb *redis.Client) *Store {
	if rdb == nil {
		panic("store: redis client required")
	}
	return &Store{rdb: rdb}
}

// Load decodes the value at key into dest. A missing key leaves dest
// untouched and returns nil, so an absent collection reads as empty.
func (s *Store) Load(ctx context.Context, key string, dest any) error {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return fmt.Errorf("store: load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

// Save encodes val and stores it at key, replacing any previous value.
func (s *Store) Save(ctx context.Context, key string, val any) error {
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := s.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("store: save %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	return nil
}
