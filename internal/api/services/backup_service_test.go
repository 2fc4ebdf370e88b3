package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enhancives/internal/domain"
)

func TestBackupService_ExportImportRoundTrip(t *testing.T) {
	store := newTestStore(t)
	svc := NewBackupService(store, NewTotalsService(store, nil))
	ctx := context.Background()

	item := createItem(t, store, "alice",
		domain.Target{Target: "Strength", Type: domain.BoostBonus, Amount: 5},
	)
	equipItem(t, store, "alice", item, "Finger", 0)

	envelope, err := svc.Export(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "1.0", envelope.Version)
	require.Len(t, envelope.Items, 1)
	assert.Equal(t, item.ID, envelope.Equipment.ItemAt("Finger", 0))

	// Import into a fresh account.
	result, err := svc.Import(ctx, "bob", envelope)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 0, result.Duplicates)

	items, err := store.Items().FindByUsername("bob")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "alice", envelope.Items[0].Username)
	assert.Equal(t, "bob", items[0].Username)
	// Imported items get fresh ids.
	assert.NotEqual(t, item.ID, items[0].ID)
}

func TestBackupService_ImportSkipsDuplicates(t *testing.T) {
	store := newTestStore(t)
	svc := NewBackupService(store, NewTotalsService(store, nil))
	ctx := context.Background()

	createItem(t, store, "alice",
		domain.Target{Target: "Strength", Type: domain.BoostBonus, Amount: 5},
	)

	envelope := &BackupEnvelope{
		Items: []*domain.Item{
			{
				Name:       "test item",
				Permanence: domain.PermanencePersists,
				Targets:    domain.TargetList{{Target: "Strength", Type: domain.BoostBonus, Amount: 5}},
			},
			{
				Name:       "new amulet",
				Permanence: domain.PermanencePersists,
				Targets:    domain.TargetList{{Target: "Aura", Type: domain.BoostBase, Amount: 2}},
			},
		},
	}

	result, err := svc.Import(ctx, "alice", envelope)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Duplicates)

	items, err := store.Items().FindByUsername("alice")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestBackupService_ImportRejectsInvalidItem(t *testing.T) {
	store := newTestStore(t)
	svc := NewBackupService(store, NewTotalsService(store, nil))

	envelope := &BackupEnvelope{
		Items: []*domain.Item{{Name: "broken", Permanence: domain.PermanencePersists}},
	}

	_, err := svc.Import(context.Background(), "alice", envelope)
	assert.ErrorIs(t, err, domain.ErrNoTargets)
}

func TestBackupService_ImportWithoutEquipmentKeepsIndex(t *testing.T) {
	store := newTestStore(t)
	svc := NewBackupService(store, NewTotalsService(store, nil))
	ctx := context.Background()

	item := createItem(t, store, "alice",
		domain.Target{Target: "Logic", Type: domain.BoostBase, Amount: 1},
	)
	equipItem(t, store, "alice", item, "Head", 0)

	result, err := svc.Import(ctx, "alice", &BackupEnvelope{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Added)

	index, err := store.Equipment().Get("alice")
	require.NoError(t, err)
	assert.Equal(t, item.ID, index.ItemAt("Head", 0))
}
