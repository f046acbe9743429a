package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeConformance(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "greeting", []byte("olá")))
	value, err := store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("olá"), value)

	require.NoError(t, store.Set(ctx, "greeting", []byte("bom dia")))
	value, err = store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("bom dia"), value)

	require.NoError(t, store.Delete(ctx, "greeting"))
	_, err = store.Get(ctx, "greeting")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting an absent key is not an error
	require.NoError(t, store.Delete(ctx, "greeting"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	storeConformance(t, store)
}

func TestSQLiteStore(t *testing.T) {
	store, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer store.Close()

	storeConformance(t, store)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", original))
	original[0] = 'x'

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)
}
