// internal/cache/bolt_test.go
package cache

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStore_PutGet(t *testing.T) {
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	entry := NewEntry(json.RawMessage(`{"answer_box":{"price":"$12"}}`), time.Now())
	require.NoError(t, store.Put(ctx, "google_museum ticket price", entry))

	got, ok, err := store.Get(ctx, "google_museum ticket price")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry.Timestamp, got.Timestamp)
	assert.JSONEq(t, string(entry.Data), string(got.Data))
}

func TestBoltStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	store, err := NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "k", NewEntry(json.RawMessage(`{"v":1}`), time.Now())))
	require.NoError(t, store.Close())

	reopened, err := NewBoltStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	got, ok, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"v":1}`, string(got.Data))
}
