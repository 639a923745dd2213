package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuthStateRepository(t *testing.T) {
	rdb := setupRedisContainer(t)
	repo := NewOAuthStateRepository(rdb)
	ctx := context.Background()

	t.Run("ConsumeOnce", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "state-1", time.Minute))

		ok, err := repo.Consume(ctx, "state-1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Consume(ctx, "state-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Unknown", func(t *testing.T) {
		ok, err := repo.Consume(ctx, "never-issued")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Expired", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "state-2", time.Second))
		time.Sleep(1500 * time.Millisecond)

		ok, err := repo.Consume(ctx, "state-2")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
