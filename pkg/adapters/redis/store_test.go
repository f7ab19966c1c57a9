package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/sofakit/pkg/adapters/redis"
	"github.com/aretw0/sofakit/pkg/assembler"
	"github.com/aretw0/sofakit/pkg/plan"
	"github.com/aretw0/sofakit/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *redis.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, redis.NewFromClient(client, opts...)
}

func demoPlan() *plan.Plan {
	return &plan.Plan{
		Scene:      "demo",
		Operations: []assembler.Operation{{Op: assembler.OpCreateNode, Path: "/", Name: "demo"}},
	}
}

func TestRedisStore_Contract(t *testing.T) {
	_, store := newStore(t)
	ports.RunPlanStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, store := newStore(t, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "short-lived", demoPlan()))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "short-lived")

	// Key expiry in miniredis
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "short-lived")
	assert.ErrorIs(t, err, ports.ErrPlanNotFound)

	// The index is pruned against the wall clock
	time.Sleep(1200 * time.Millisecond)

	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, store := newStore(t, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "my-plan", demoPlan()))

	assert.True(t, mr.Exists("custom:app:my-plan"), "expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "expected index with custom prefix to exist")

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"my-plan"}, names)
}

func TestRedisStore_ReservedName(t *testing.T) {
	_, store := newStore(t)
	err := store.Save(context.Background(), "index", demoPlan())
	assert.ErrorIs(t, err, ports.ErrInvalidPlanName)
}
