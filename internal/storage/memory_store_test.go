package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	_, ok, err := s.Get(ctx, KeyApiKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, KeyApiKey, "secret"))
	val, ok, err := s.Get(ctx, KeyApiKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "secret", val)

	require.NoError(t, s.Remove(ctx, KeyApiKey))
	_, ok, _ = s.Get(ctx, KeyApiKey)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_RemoveMissingKey(t *testing.T) {
	s := NewMemoryStore(0)
	assert.NoError(t, s.Remove(context.Background(), "absent"))
}

func TestMemoryStore_QuotaExceeded(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10)

	require.NoError(t, s.Set(ctx, "k", "123456789"))
	err := s.Set(ctx, "x", "1")
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	_, ok, _ := s.Get(ctx, "x")
	assert.False(t, ok)
}

func TestMemoryStore_QuotaCountsReplacedValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10)

	require.NoError(t, s.Set(ctx, "k", "123456789"))
	require.NoError(t, s.Set(ctx, "k", "987654321"))

	require.NoError(t, s.Remove(ctx, "k"))
	assert.NoError(t, s.Set(ctx, "other", "12345"))
}

func TestMemoryStore_SnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	require.NoError(t, s.Set(ctx, "a", "1"))

	snap := s.Snapshot()
	snap["a"] = "changed"

	val, _, _ := s.Get(ctx, "a")
	assert.Equal(t, "1", val)
}

func TestMemoryStore_LoadReplacesContent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	require.NoError(t, s.Set(ctx, "old", "1"))

	s.Load(map[string]string{KeyAccessToken: "token"})

	_, ok, _ := s.Get(ctx, "old")
	assert.False(t, ok)
	val, ok, _ := s.Get(ctx, KeyAccessToken)
	assert.True(t, ok)
	assert.Equal(t, "token", val)
}

func TestMemoryStore_LifecycleNoops(t *testing.T) {
	s := NewMemoryStore(0)
	assert.NoError(t, s.Restore())
	assert.NoError(t, s.Persist())
	s.Close()
}
