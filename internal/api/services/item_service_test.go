package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enhancives/internal/domain"
	"enhancives/internal/repository"
)

func TestItemService_CreateAndList(t *testing.T) {
	store := newTestStore(t)
	svc := NewItemService(store, NewTotalsService(store, nil))
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.Item{
		Username:   "alice",
		Name:       "crystal amulet",
		Permanence: domain.PermanencePersists,
		Targets:    domain.TargetList{{Target: "Aura", Type: domain.BoostBase, Amount: 3}},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	items, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "crystal amulet", items[0].Name)

	// Other users see nothing.
	items, err = svc.List(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemService_CreateRejectsInvalid(t *testing.T) {
	store := newTestStore(t)
	svc := NewItemService(store, NewTotalsService(store, nil))
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.Item{
		Username:   "alice",
		Name:       "targetless trinket",
		Permanence: domain.PermanencePersists,
	})
	assert.ErrorIs(t, err, domain.ErrNoTargets)
}

func TestItemService_Update(t *testing.T) {
	store := newTestStore(t)
	svc := NewItemService(store, NewTotalsService(store, nil))
	ctx := context.Background()

	item := createItem(t, store, "alice",
		domain.Target{Target: "Wisdom", Type: domain.BoostBase, Amount: 2},
	)

	item.Name = "renamed trinket"
	updated, err := svc.Update(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, "renamed trinket", updated.Name)

	fetched, err := svc.Get(ctx, "alice", item.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed trinket", fetched.Name)
}

func TestItemService_UpdateMissing(t *testing.T) {
	store := newTestStore(t)
	svc := NewItemService(store, NewTotalsService(store, nil))

	_, err := svc.Update(context.Background(), &domain.Item{
		Model:      domain.Model{ID: uuid.New()},
		Username:   "alice",
		Name:       "ghost item",
		Permanence: domain.PermanencePersists,
		Targets:    domain.TargetList{{Target: "Logic", Type: domain.BoostBase, Amount: 1}},
	})
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestItemService_DeleteClearsEquipment(t *testing.T) {
	store := newTestStore(t)
	totals := NewTotalsService(store, nil)
	svc := NewItemService(store, totals)
	ctx := context.Background()

	item := createItem(t, store, "alice",
		domain.Target{Target: "Strength", Type: domain.BoostBonus, Amount: 5},
	)
	equipItem(t, store, "alice", item, "Neck", 1)

	require.NoError(t, svc.Delete(ctx, "alice", item.ID))

	index, err := store.Equipment().Get("alice")
	require.NoError(t, err)
	assert.Empty(t, index.EquippedItemIDs())

	result, err := totals.Totals(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestItemService_DeleteMissing(t *testing.T) {
	store := newTestStore(t)
	svc := NewItemService(store, NewTotalsService(store, nil))

	err := svc.Delete(context.Background(), "alice", uuid.New())
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}
