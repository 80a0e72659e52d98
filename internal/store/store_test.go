package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestPutGetReplaceDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "profiles", []byte(`[{"id":"1"}]`)))

	payload, fetchedAt, err := s.Get(ctx, "profiles")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(payload))
	assert.WithinDuration(t, time.Now(), fetchedAt, time.Minute)

	// A second put replaces the snapshot wholesale.
	require.NoError(t, s.Put(ctx, "profiles", []byte(`[{"id":"2"}]`)))
	payload, _, err = s.Get(ctx, "profiles")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"2"}]`, string(payload))

	require.NoError(t, s.Delete(ctx, "profiles"))
	_, _, err = s.Get(ctx, "profiles")
	assert.ErrorIs(t, err, ErrNoSnapshot)

	// Deleting again is fine.
	require.NoError(t, s.Delete(ctx, "profiles"))
}

func TestSnapshotsArePerCollection(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "profiles", []byte(`[]`)))

	_, _, err := s.Get(ctx, "projects")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

type snapshotItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestSaveLoadItems(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := []snapshotItem{{ID: "1", Name: "Apollo"}, {ID: "2", Name: "Hermes"}}
	require.NoError(t, SaveItems(ctx, s, "projects", in))

	out, _, err := LoadItems[snapshotItem](ctx, s, "projects")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
