package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	err := m.Set(ctx, "k", []string{"a", "b"}, time.Minute)
	require.NoError(t, err)

	var got []string
	ok, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, got)
}

func TestMemory_Miss(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var got string
	ok, err := m.Get(ctx, "absent", &got)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "k", "v", -time.Second))

	var got string
	ok, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, ok, "expired entry should miss")
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, m.Delete(ctx, "k"))
	require.NoError(t, m.Delete(ctx, "k"), "delete is idempotent")

	var got string
	ok, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, ok)
}
