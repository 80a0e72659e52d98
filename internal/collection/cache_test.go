package collection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hberrors "github.com/resourcehub/hubctl/internal/errors"
)

func TestCacheLoadReplacesWholesale(t *testing.T) {
	cache := NewCache[testRecord]()

	gen := cache.BeginLoad()
	require.NoError(t, cache.ApplyLoad(gen, makeRecords(3), nil))
	assert.Equal(t, 3, cache.Len())

	gen = cache.BeginLoad()
	require.NoError(t, cache.ApplyLoad(gen, makeRecords(1), nil))
	assert.Equal(t, 1, cache.Len())
}

func TestCacheRetainsItemsOnFetchError(t *testing.T) {
	cache := NewCache[testRecord]()
	require.NoError(t, cache.ApplyLoad(cache.BeginLoad(), makeRecords(3), nil))

	fetchErr := &hberrors.FetchError{Status: 500, Path: "/api/v1/profiles", Message: "boom"}
	gen := cache.BeginLoad()
	err := cache.ApplyLoad(gen, nil, fetchErr)

	assert.Equal(t, fetchErr, err)
	assert.Equal(t, 3, cache.Len())
}

func TestCacheDiscardsSupersededLoad(t *testing.T) {
	cache := NewCache[testRecord]()

	older := cache.BeginLoad()
	newer := cache.BeginLoad()

	// Newer response lands first.
	require.NoError(t, cache.ApplyLoad(newer, makeRecords(2), nil))

	// The older in-flight response must be discarded, not applied.
	err := cache.ApplyLoad(older, makeRecords(9), nil)
	assert.True(t, hberrors.IsStale(err))
	assert.Equal(t, 2, cache.Len())
}

func TestCacheRejectsDuplicateIDs(t *testing.T) {
	cache := NewCache[testRecord]()
	require.NoError(t, cache.ApplyLoad(cache.BeginLoad(), makeRecords(2), nil))

	dupes := []testRecord{{ID: "1"}, {ID: "1"}}
	err := cache.ApplyLoad(cache.BeginLoad(), dupes, nil)

	assert.Error(t, err)
	assert.Equal(t, 2, cache.Len())
}

func TestCacheLoadFrom(t *testing.T) {
	cache := NewCache[testRecord]()
	err := cache.LoadFrom(context.Background(), func(context.Context) ([]testRecord, error) {
		return makeRecords(4), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 4, cache.Len())
}

func TestCacheItemsReturnsCopy(t *testing.T) {
	cache := NewCache[testRecord]()
	require.NoError(t, cache.ApplyLoad(cache.BeginLoad(), makeRecords(2), nil))

	items := cache.Items()
	items[0].ID = "mutated"

	assert.Equal(t, "1", cache.Items()[0].ID)
}

func TestCacheReconciliationHelpers(t *testing.T) {
	cache := NewCache[testRecord]()
	require.NoError(t, cache.ApplyLoad(cache.BeginLoad(), makeRecords(3), nil))

	t.Run("replace preserves order", func(t *testing.T) {
		ok := cache.Replace("2", testRecord{ID: "2", Name: "updated"})
		assert.True(t, ok)
		items := cache.Items()
		assert.Equal(t, []string{"1", "2", "3"}, []string{items[0].ID, items[1].ID, items[2].ID})
		assert.Equal(t, "updated", items[1].Name)
	})

	t.Run("replace missing id", func(t *testing.T) {
		assert.False(t, cache.Replace("99", testRecord{ID: "99"}))
	})

	t.Run("remove", func(t *testing.T) {
		assert.True(t, cache.Remove("2"))
		assert.False(t, cache.Remove("2"))
		assert.Equal(t, 2, cache.Len())
	})

	t.Run("append", func(t *testing.T) {
		cache.Append(testRecord{ID: "4"})
		items := cache.Items()
		assert.Equal(t, "4", items[len(items)-1].ID)
	})
}

func TestLookupMap(t *testing.T) {
	lookups := []testRecord{{ID: "a", Name: "Lisbon"}, {ID: "b", Name: "Porto"}}
	m := LookupMap(lookups)
	assert.Len(t, m, 2)
	assert.Equal(t, "Lisbon", m["a"].Name)
}
