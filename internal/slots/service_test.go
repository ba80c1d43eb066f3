package slots

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
	"github.com/Simply-Coder-start/Medi-Triage/internal/store"
)

var (
	drKim  = session.Session{Username: "drkim", Role: session.RoleDoctor}
	drOsei = session.Session{Username: "drosei", Role: session.RoleDoctor}
	amina  = session.Session{Username: "amina", Role: session.RolePatient}
)

func newTestSlots(t *testing.T) *Service {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	repo := NewRedisRepository(store.New(redis.NewClient(&redis.Options{Addr: mr.Addr()})))
	return NewService(repo, nil)
}

func TestAddAndList(t *testing.T) {
	svc := newTestSlots(t)
	ctx := context.Background()
	t1 := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	t2 := t1.Add(2 * time.Hour)

	// inserted out of order, listed chronologically
	_, err := svc.Add(ctx, drKim, t2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, drKim, t1)
	require.NoError(t, err)

	list, err := svc.List(ctx, drKim)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, t1, list[0].At)
	assert.Equal(t, t2, list[1].At)
}

func TestAddPatientRejected(t *testing.T) {
	svc := newTestSlots(t)
	_, err := svc.Add(context.Background(), amina, time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrDoctorOnly)
}

func TestAddZeroInstantRejected(t *testing.T) {
	svc := newTestSlots(t)
	_, err := svc.Add(context.Background(), drKim, time.Time{})
	assert.ErrorIs(t, err, ErrMissingInstant)
}

func TestConsumeEarliest(t *testing.T) {
	svc := newTestSlots(t)
	ctx := context.Background()
	t1 := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	t2 := t1.Add(3 * time.Hour)

	// declared later-first: [T2, T1] with T1 < T2
	_, err := svc.Add(ctx, drKim, t2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, drKim, t1)
	require.NoError(t, err)

	chosen, err := svc.ConsumeEarliest(ctx, "drkim")
	require.NoError(t, err)
	assert.Equal(t, t1, chosen.At)

	remaining, err := svc.List(ctx, drKim)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, t2, remaining[0].At)
}

func TestConsumeEarliestNoSlots(t *testing.T) {
	svc := newTestSlots(t)
	_, err := svc.ConsumeEarliest(context.Background(), "drkim")
	assert.ErrorIs(t, err, ErrNoSlots)
}

func TestConsumeEarliestScopedToDoctor(t *testing.T) {
	svc := newTestSlots(t)
	ctx := context.Background()
	_, err := svc.Add(ctx, drOsei, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = svc.ConsumeEarliest(ctx, "drkim")
	assert.ErrorIs(t, err, ErrNoSlots)
}

func TestRemove(t *testing.T) {
	svc := newTestSlots(t)
	ctx := context.Background()

	slot, err := svc.Add(ctx, drKim, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, drKim, slot.ID))

	list, err := svc.List(ctx, drKim)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRemoveUnknownID(t *testing.T) {
	svc := newTestSlots(t)
	err := svc.Remove(context.Background(), drKim, "nope")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestRemoveOtherDoctorsSlot(t *testing.T) {
	svc := newTestSlots(t)
	ctx := context.Background()

	slot, err := svc.Add(ctx, drOsei, time.Now().Add(time.Hour))
	require.NoError(t, err)

	err = svc.Remove(ctx, drKim, slot.ID)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	// the slot survives the failed removal
	list, err := svc.List(ctx, drOsei)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
