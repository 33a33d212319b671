package fact

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open a throwaway sqlite-backed store
func newTestStore(t *testing.T) *GormStore {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	store, err := NewStore(conn)
	require.NoError(t, err)

	return store
}

// Test creating and retrieving facts
func TestStore_CreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, KindFact, "water is wet")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, KindFact, created.Kind)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

// Test that unknown ids yield the not-found sentinel
func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Test that UpdateText overwrites text and nothing else
func TestStore_UpdateText(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, KindLoading, "old text")
	require.NoError(t, err)

	require.NoError(t, store.UpdateText(ctx, created.ID, "new text"))

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new text", got.Text)
	assert.Equal(t, KindLoading, got.Kind)
	assert.Equal(t, created.ID, got.ID)

	assert.ErrorIs(t, store.UpdateText(ctx, 99999, "whatever"), ErrNotFound)
}

// Test deleting facts
func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, KindFact, "short lived")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))

	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, created.ID), ErrNotFound)
}

// Test that listing filters by kind and keeps insertion order
func TestStore_ListByKind(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, text := range []string{"first", "second", "third"} {
		_, err := store.Create(ctx, KindFact, text)
		require.NoError(t, err)
	}
	_, err := store.Create(ctx, KindLoading, "not a fact")
	require.NoError(t, err)

	facts, err := store.ListByKind(ctx, KindFact)
	require.NoError(t, err)
	require.Len(t, facts, 3)

	for i, text := range []string{"first", "second", "third"} {
		assert.Equal(t, text, facts[i].Text)
		assert.Equal(t, KindFact, facts[i].Kind)
	}

	loading, err := store.ListByKind(ctx, KindLoading)
	require.NoError(t, err)
	require.Len(t, loading, 1)
	assert.Equal(t, "not a fact", loading[0].Text)
}

// Test that Random only ever returns the requested kind and, over many
// draws, covers every row present
func TestStore_Random(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	texts := []string{"alpha", "beta", "gamma"}
	for _, text := range texts {
		_, err := store.Create(ctx, KindFact, text)
		require.NoError(t, err)
	}
	_, err := store.Create(ctx, KindLoading, "loading line")
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		f, err := store.Random(ctx, KindFact)
		require.NoError(t, err)
		assert.Equal(t, KindFact, f.Kind)
		assert.Contains(t, texts, f.Text)
		seen[f.Text] = true
	}

	// No permanently excluded rows
	assert.Len(t, seen, len(texts))
}

// Test the not-found sentinel for an empty kind
func TestStore_RandomEmpty(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Random(context.Background(), KindLoading)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Test counting rows per kind
func TestStore_CountByKind(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	count, err := store.CountByKind(ctx, KindFact)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = store.Create(ctx, KindFact, "one")
	require.NoError(t, err)
	_, err = store.Create(ctx, KindFact, "two")
	require.NoError(t, err)

	count, err = store.CountByKind(ctx, KindFact)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

// Test the kind validator
func TestValidKind(t *testing.T) {
	tests := []struct {
		kind  string
		valid bool
	}{
		{"fact", true},
		{"loading", true},
		{"", false},
		{"Fact", false},
		{"banner", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidKind(tt.kind), "kind %q", tt.kind)
	}
}
