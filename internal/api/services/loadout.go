package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"enhancives/internal/domain"
	"enhancives/internal/repository"
)

var ErrLoadoutNameMissing = errors.New("loadout name is required")

type LoadoutService struct {
	loadoutRepo repository.LoadoutRepository
	equipRepo   repository.EquipmentRepository
	totals      *TotalsService
}

func NewLoadoutService(store repository.Store, totals *TotalsService) *LoadoutService {
	return &LoadoutService{
		loadoutRepo: store.Loadouts(),
		equipRepo:   store.Equipment(),
		totals:      totals,
	}
}

func (s *LoadoutService) List(ctx context.Context, username string) ([]*domain.Loadout, error) {
	return s.loadoutRepo.FindByUsername(username)
}

// Save snapshots the user's current equipment index under a name, replacing
// any loadout with the same name.
func (s *LoadoutService) Save(ctx context.Context, username, name string) (*domain.Loadout, error) {
	if name == "" {
		return nil, ErrLoadoutNameMissing
	}

	index, err := s.equipRepo.Get(username)
	if err != nil {
		return nil, err
	}

	loadout := &domain.Loadout{
		Username:  username,
		Name:      name,
		Equipment: index,
	}
	if err := s.loadoutRepo.Upsert(loadout); err != nil {
		return nil, err
	}
	return loadout, nil
}

// Apply replaces the user's equipment index with the loadout's snapshot.
func (s *LoadoutService) Apply(ctx context.Context, username string, id uuid.UUID) error {
	loadout, err := s.loadoutRepo.FindByID(username, id)
	if err != nil {
		return err
	}

	equipment := loadout.Equipment
	if equipment == nil {
		equipment = domain.NewEquipmentIndex()
	}

	if err := s.equipRepo.Save(username, equipment); err != nil {
		return err
	}

	s.totals.Invalidate(ctx, username)
	return nil
}

func (s *LoadoutService) Delete(ctx context.Context, username string, id uuid.UUID) error {
	return s.loadoutRepo.Delete(username, id)
}
