package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositRefCache_RememberAndLookup(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewDepositRefCache(client, time.Hour)
	ctx := context.Background()
	merchantID := uuid.New()

	// Lookup before remember => ""
	txID, err := cache.Lookup(ctx, merchantID, "ORD-001")
	require.NoError(t, err)
	assert.Empty(t, txID)

	require.NoError(t, cache.Remember(ctx, merchantID, "ORD-001", "a1b2c3"))

	txID, err = cache.Lookup(ctx, merchantID, "ORD-001")
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3", txID)

	// Same reference for another merchant is independent.
	txID, err = cache.Lookup(ctx, uuid.New(), "ORD-001")
	require.NoError(t, err)
	assert.Empty(t, txID)
}

func TestDepositRefCache_FirstWriterWins(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewDepositRefCache(client, time.Hour)
	ctx := context.Background()
	merchantID := uuid.New()

	require.NoError(t, cache.Remember(ctx, merchantID, "ORD-002", "first"))
	require.NoError(t, cache.Remember(ctx, merchantID, "ORD-002", "second"))

	txID, err := cache.Lookup(ctx, merchantID, "ORD-002")
	require.NoError(t, err)
	assert.Equal(t, "first", txID)
}

func TestDepositRefCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewDepositRefCache(client, time.Second)
	ctx := context.Background()
	merchantID := uuid.New()

	require.NoError(t, cache.Remember(ctx, merchantID, "ORD-003", "abc"))

	s.FastForward(2 * time.Second)

	txID, err := cache.Lookup(ctx, merchantID, "ORD-003")
	require.NoError(t, err)
	assert.Empty(t, txID, "expired key should read as unknown")
}

func TestDepositRefCache_ServerDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewDepositRefCache(client, 0)
	s.Close()

	_, err := cache.Lookup(context.Background(), uuid.New(), "ORD-004")
	assert.Error(t, err)
}
