package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enhancives/internal/domain"
	"enhancives/internal/repository"
)

func newTestStore(t *testing.T) repository.Store {
	t.Helper()
	return repository.NewMemoryStore()
}

func createItem(t *testing.T, store repository.Store, username string, targets ...domain.Target) *domain.Item {
	t.Helper()
	item := &domain.Item{
		Username:   username,
		Name:       "test item",
		Permanence: domain.PermanencePersists,
		Targets:    targets,
	}
	require.NoError(t, store.Items().Create(item))
	return item
}

func equipItem(t *testing.T, store repository.Store, username string, item *domain.Item, location string, slot int) {
	t.Helper()
	index, err := store.Equipment().Get(username)
	require.NoError(t, err)
	require.NoError(t, index.Equip(item.ID, location, slot))
	require.NoError(t, store.Equipment().Save(username, index))
}

func TestTotalsService_Totals(t *testing.T) {
	store := newTestStore(t)
	svc := NewTotalsService(store, nil)
	ctx := context.Background()

	ring := createItem(t, store, "alice",
		domain.Target{Target: "Strength", Type: domain.BoostBonus, Amount: 5},
		domain.Target{Target: "Max Health", Type: domain.BoostMax, Amount: 15},
	)
	equipItem(t, store, "alice", ring, "Finger", 0)

	// An unequipped item contributes nothing.
	createItem(t, store, "alice",
		domain.Target{Target: "Strength", Type: domain.BoostBase, Amount: 9},
	)

	totals, err := svc.Totals(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 10, totals["Strength"])
	assert.Equal(t, 15, totals["Max Health"])
	assert.Len(t, totals, 2)
}

func TestTotalsService_TotalsEmptyUser(t *testing.T) {
	store := newTestStore(t)
	svc := NewTotalsService(store, nil)

	totals, err := svc.Totals(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, totals)
}

func TestTotalsService_Analysis(t *testing.T) {
	store := newTestStore(t)
	svc := NewTotalsService(store, nil)
	ctx := context.Background()

	ring := createItem(t, store, "alice",
		domain.Target{Target: "Strength", Type: domain.BoostBonus, Amount: 20}, // 40, capped
		domain.Target{Target: "Climbing", Type: domain.BoostRanks, Amount: 45}, // warning
	)
	equipItem(t, store, "alice", ring, "Finger", 0)

	analysis, err := svc.Analysis(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCapped, analysis.Classified["Strength"].Status)
	assert.Equal(t, domain.StatusWarning, analysis.Classified["Climbing"].Status)
	assert.Equal(t, 1, analysis.Summary.FullyCapped)
	assert.Equal(t, 1, analysis.Summary.NearCap)

	require.Len(t, analysis.Gaps, 1)
	assert.Equal(t, "Climbing", analysis.Gaps[0].Target)
	assert.Equal(t, 5, analysis.Gaps[0].Needed)
}
