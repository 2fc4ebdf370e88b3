package services

import (
	"context"

	"github.com/google/uuid"

	"enhancives/internal/domain"
	"enhancives/internal/repository"
)

type ItemService struct {
	itemRepo  repository.ItemRepository
	equipRepo repository.EquipmentRepository
	totals    *TotalsService
}

func NewItemService(store repository.Store, totals *TotalsService) *ItemService {
	return &ItemService{
		itemRepo:  store.Items(),
		equipRepo: store.Equipment(),
		totals:    totals,
	}
}

func (s *ItemService) List(ctx context.Context, username string) ([]*domain.Item, error) {
	return s.itemRepo.FindByUsername(username)
}

func (s *ItemService) Get(ctx context.Context, username string, id uuid.UUID) (*domain.Item, error) {
	return s.itemRepo.FindByID(username, id)
}

func (s *ItemService) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}

	s.totals.Invalidate(ctx, item.Username)
	return item, nil
}

// Delete removes the item and clears every equipment slot referencing it, so
// no dangling placement survives the deletion.
func (s *ItemService) Delete(ctx context.Context, username string, id uuid.UUID) error {
	if err := s.itemRepo.Delete(username, id); err != nil {
		return err
	}

	index, err := s.equipRepo.Get(username)
	if err != nil {
		return err
	}

	index.RemoveItem(id)
	if err := s.equipRepo.Save(username, index); err != nil {
		return err
	}

	s.totals.Invalidate(ctx, username)
	return nil
}
