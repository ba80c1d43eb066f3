package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestLoadMissingKeyIsEmpty(t *testing.T) {
	s := newTestStore(t)

	var items []string
	require.NoError(t, s.Load(context.Background(), "medi:absent", &items))
	assert.Empty(t, items)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	type entry struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	in := []entry{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	require.NoError(t, s.Save(ctx, KeyUsers, in))

	var out []entry
	require.NoError(t, s.Load(ctx, KeyUsers, &out))
	assert.Equal(t, in, out)
}

func TestSaveReplacesWholeCollection(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, KeySlots, []int{1, 2, 3}))
	require.NoError(t, s.Save(ctx, KeySlots, []int{4}))

	var out []int
	require.NoError(t, s.Load(ctx, KeySlots, &out))
	assert.Equal(t, []int{4}, out)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, AutosaveKey("amina"), map[string]int{"current_question": 4}))
	require.NoError(t, s.Delete(ctx, AutosaveKey("amina")))

	var out map[string]int
	require.NoError(t, s.Load(ctx, AutosaveKey("amina"), &out))
	assert.Nil(t, out)

	// deleting again is fine
	require.NoError(t, s.Delete(ctx, AutosaveKey("amina")))
}
