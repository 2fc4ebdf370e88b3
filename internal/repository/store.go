package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"enhancives/internal/config"
	"enhancives/internal/domain"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrItemNotFound    = errors.New("item not found")
	ErrLoadoutNotFound = errors.New("loadout not found")
)

type UserRepository interface {
	Create(user *domain.User) error
	FindByUsername(username string) (*domain.User, error)
}

type ItemRepository interface {
	FindByUsername(username string) ([]*domain.Item, error)
	FindByID(username string, id uuid.UUID) (*domain.Item, error)
	Create(item *domain.Item) error
	Update(item *domain.Item) error
	Delete(username string, id uuid.UUID) error
}

type EquipmentRepository interface {
	// Get returns the user's index, or a fresh empty one if none is stored.
	Get(username string) (*domain.EquipmentIndex, error)
	Save(username string, index *domain.EquipmentIndex) error
}

type LoadoutRepository interface {
	FindByUsername(username string) ([]*domain.Loadout, error)
	FindByID(username string, id uuid.UUID) (*domain.Loadout, error)
	// Upsert replaces a loadout with the same (username, name) or creates one.
	Upsert(loadout *domain.Loadout) error
	Delete(username string, id uuid.UUID) error
}

type ListingRepository interface {
	FindAvailable() ([]*domain.Listing, error)
	FindByUsername(username string) ([]*domain.Listing, error)
	// ReplaceForUser drops the user's previous listings and stores the new set.
	ReplaceForUser(username string, listings []*domain.Listing) error
	// ExpireOlderThan delists available listings last updated before cutoff.
	ExpireOlderThan(cutoff time.Time) (int64, error)
}

// Store bundles the per-entity repositories. Two implementations exist: a
// postgres-backed one and an in-memory fallback. The choice is made once at
// startup from configuration, never inspected at call sites.
type Store interface {
	Users() UserRepository
	Items() ItemRepository
	Equipment() EquipmentRepository
	Loadouts() LoadoutRepository
	Listings() ListingRepository
	Close() error
}

func New(cfg *config.Config) (Store, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		return NewPostgresStore(cfg)
	case config.StorageMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage)
	}
}
