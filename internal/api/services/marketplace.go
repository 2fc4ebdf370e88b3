package services

import (
	"context"

	"enhancives/internal/domain"
	"enhancives/internal/repository"
)

type MarketplaceService struct {
	listingRepo repository.ListingRepository
}

func NewMarketplaceService(store repository.Store) *MarketplaceService {
	return &MarketplaceService{listingRepo: store.Listings()}
}

// Browse returns every available listing across all users.
func (s *MarketplaceService) Browse(ctx context.Context) ([]*domain.Listing, error) {
	return s.listingRepo.FindAvailable()
}

func (s *MarketplaceService) MyListings(ctx context.Context, username string) ([]*domain.Listing, error) {
	return s.listingRepo.FindByUsername(username)
}

// Sync replaces the caller's listings wholesale with the submitted set.
func (s *MarketplaceService) Sync(ctx context.Context, username string, listings []*domain.Listing) error {
	for _, listing := range listings {
		if len(listing.Targets) > domain.MaxTargets {
			return domain.ErrTooManyTargets
		}
	}
	return s.listingRepo.ReplaceForUser(username, listings)
}
