package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/dinekit/core"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	_, err := s.Get(ctx, "missing")
	require.Error(t, err)
	assert.True(t, core.IsStoreNotFound(err))
	assert.True(t, core.IsNotFound(err))

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.True(t, core.IsStoreNotFound(err))
}

func TestMemoryStore_ExpiredTTL(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 60))
	_, err := s.Get(ctx, "k")
	require.NoError(t, err)

	// 直接把过期时间拨回过去，避免测试 sleep
	past := time.Now().Add(-time.Minute)
	s.data["k"].ttl = &past
	_, err = s.Get(ctx, "k")
	assert.True(t, core.IsStoreNotFound(err))
}
