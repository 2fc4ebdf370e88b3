package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enhancives/internal/domain"
	"enhancives/internal/repository"
)

func TestListingSweeper_Sweep(t *testing.T) {
	store := repository.NewMemoryStore()
	require.NoError(t, store.Listings().ReplaceForUser("alice", []*domain.Listing{
		{Name: "mithril ring", Available: true},
	}))

	t.Run("fresh listings survive", func(t *testing.T) {
		sweeper := NewListingSweeper(store, time.Hour, time.Hour)
		sweeper.sweep()

		available, err := store.Listings().FindAvailable()
		require.NoError(t, err)
		assert.Len(t, available, 1)
	})

	t.Run("stale listings are delisted", func(t *testing.T) {
		sweeper := NewListingSweeper(store, time.Hour, -time.Minute)
		sweeper.sweep()

		available, err := store.Listings().FindAvailable()
		require.NoError(t, err)
		assert.Empty(t, available)
	})
}
