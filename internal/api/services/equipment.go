package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"enhancives/internal/domain"
	"enhancives/internal/metrics"
	"enhancives/internal/repository"
)

var ErrItemNotOwned = errors.New("item does not belong to user")

type EquipmentService struct {
	itemRepo  repository.ItemRepository
	equipRepo repository.EquipmentRepository
	totals    *TotalsService
}

func NewEquipmentService(store repository.Store, totals *TotalsService) *EquipmentService {
	return &EquipmentService{
		itemRepo:  store.Items(),
		equipRepo: store.Equipment(),
		totals:    totals,
	}
}

func (s *EquipmentService) Index(ctx context.Context, username string) (*domain.EquipmentIndex, error) {
	return s.equipRepo.Get(username)
}

// Equip places an item into a slot. Whatever occupied the slot is silently
// displaced, and any prior placement of the same item is cleared first.
func (s *EquipmentService) Equip(ctx context.Context, username string, itemID uuid.UUID, location string, slot int) error {
	if itemID != uuid.Nil {
		if _, err := s.itemRepo.FindByID(username, itemID); err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return ErrItemNotOwned
			}
			return err
		}
	}

	index, err := s.equipRepo.Get(username)
	if err != nil {
		return err
	}

	if err := index.Equip(itemID, location, slot); err != nil {
		return err
	}

	if err := s.equipRepo.Save(username, index); err != nil {
		return err
	}

	metrics.EquipOperations.WithLabelValues("equip").Inc()
	s.totals.Invalidate(ctx, username)
	return nil
}

func (s *EquipmentService) Unequip(ctx context.Context, username string, location string, slot int) error {
	index, err := s.equipRepo.Get(username)
	if err != nil {
		return err
	}

	if err := index.Unequip(location, slot); err != nil {
		return err
	}

	if err := s.equipRepo.Save(username, index); err != nil {
		return err
	}

	metrics.EquipOperations.WithLabelValues("unequip").Inc()
	s.totals.Invalidate(ctx, username)
	return nil
}

// EquippedItems resolves the index to item records, skipping dangling ids.
func (s *EquipmentService) EquippedItems(ctx context.Context, username string) ([]*domain.Item, error) {
	items, err := s.itemRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}

	index, err := s.equipRepo.Get(username)
	if err != nil {
		return nil, err
	}

	return domain.EquippedItems(items, index), nil
}
