package dto

import (
	"time"

	"enhancives/internal/domain"
)

type Listing struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Permanence string    `json:"permanence"`
	Targets    []Target  `json:"targets"`
	Price      uint      `json:"price"`
	Contact    string    `json:"contact,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Available  bool      `json:"available"`
	ListedAt   time.Time `json:"listedAt"`
}

type ListingRequest struct {
	Name       string   `json:"name" validate:"required"`
	Location   string   `json:"location"`
	Permanence string   `json:"permanence"`
	Targets    []Target `json:"targets" validate:"required,min=1,max=6,dive"`
	Price      uint     `json:"price"`
	Contact    string   `json:"contact"`
	Notes      string   `json:"notes"`
	Available  bool     `json:"available"`
}

type SyncRequest struct {
	Listings []ListingRequest `json:"listings" validate:"dive"`
}

func ListingFromDomain(listing *domain.Listing) *Listing {
	targets := make([]Target, len(listing.Targets))
	for i, t := range listing.Targets {
		targets[i] = Target{Target: t.Target, Type: string(t.Type), Amount: t.Amount}
	}

	return &Listing{
		ID:         listing.ID.String(),
		Username:   listing.Username,
		Name:       listing.Name,
		Location:   listing.Location,
		Permanence: string(listing.Permanence),
		Targets:    targets,
		Price:      listing.Price,
		Contact:    listing.Contact,
		Notes:      listing.Notes,
		Available:  listing.Available,
		ListedAt:   listing.CreatedAt,
	}
}

func ListingsFromDomain(listings []*domain.Listing) []*Listing {
	result := make([]*Listing, len(listings))
	for i, listing := range listings {
		result[i] = ListingFromDomain(listing)
	}
	return result
}

func (r *ListingRequest) ToDomain(username string) *domain.Listing {
	targets := make(domain.TargetList, len(r.Targets))
	for i, t := range r.Targets {
		targets[i] = domain.Target{Target: t.Target, Type: domain.BoostType(t.Type), Amount: t.Amount}
	}

	return &domain.Listing{
		Username:   username,
		Name:       r.Name,
		Location:   r.Location,
		Permanence: domain.Permanence(r.Permanence),
		Targets:    targets,
		Price:      r.Price,
		Contact:    r.Contact,
		Notes:      r.Notes,
		Available:  r.Available,
	}
}
