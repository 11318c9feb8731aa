package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyPurchasedAssets, []string{"1", "bundle-b1"}))

	var ids []string
	require.NoError(t, store.Get(ctx, KeyPurchasedAssets, &ids))
	assert.Equal(t, []string{"1", "bundle-b1"}, ids)
}

func TestMemoryStore_KeyNotFound(t *testing.T) {
	store := NewMemoryStore()

	var ids []string
	err := store.Get(context.Background(), KeyPurchasedAssets, &ids)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_CorruptJSON(t *testing.T) {
	store := NewMemoryStore()
	store.SetRaw(KeyPurchaseHistory, SchemaVersion, []byte(`{not json`))

	var history []string
	err := store.Get(context.Background(), KeyPurchaseHistory, &history)

	var corrupt *CorruptStateError
	require.True(t, errors.As(err, &corrupt))
	assert.Equal(t, KeyPurchaseHistory, corrupt.Key)
}

func TestMemoryStore_SchemaMismatch(t *testing.T) {
	store := NewMemoryStore()
	store.SetRaw(KeyProducts, SchemaVersion+1, []byte(`[]`))

	var products []string
	err := store.Get(context.Background(), KeyProducts, &products)

	var corrupt *CorruptStateError
	require.True(t, errors.As(err, &corrupt))
	assert.Equal(t, SchemaVersion+1, corrupt.Schema)
}

func TestMemoryStore_TypeMismatchIsCorrupt(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyLastCustomer, map[string]string{"name": "Alex"}))

	var ids []string
	err := store.Get(ctx, KeyLastCustomer, &ids)

	var corrupt *CorruptStateError
	assert.True(t, errors.As(err, &corrupt))
}

func TestMemoryStore_LastWriteWins(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyPurchasedAssets, []string{"1"}))
	require.NoError(t, store.Set(ctx, KeyPurchasedAssets, []string{"2"}))

	var ids []string
	require.NoError(t, store.Get(ctx, KeyPurchasedAssets, &ids))
	assert.Equal(t, []string{"2"}, ids)
}

func TestMemoryStore_DeleteAndKeys(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyProducts, []string{}))
	require.NoError(t, store.Set(ctx, KeyBundles, []string{}))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyBundles, KeyProducts}, keys)

	require.NoError(t, store.Delete(ctx, KeyBundles))

	var bundles []string
	assert.ErrorIs(t, store.Get(ctx, KeyBundles, &bundles), ErrKeyNotFound)
}
