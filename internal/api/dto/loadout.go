package dto

import (
	"time"

	"enhancives/internal/domain"
)

type Loadout struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Equipment    *domain.EquipmentIndex `json:"equipment"`
	DateAdded    time.Time              `json:"dateAdded"`
	DateModified time.Time              `json:"dateModified"`
}

type SaveLoadoutRequest struct {
	Name string `json:"name" validate:"required,min=1,max=60"`
}

func LoadoutFromDomain(loadout *domain.Loadout) *Loadout {
	return &Loadout{
		ID:           loadout.ID.String(),
		Name:         loadout.Name,
		Equipment:    loadout.Equipment,
		DateAdded:    loadout.CreatedAt,
		DateModified: loadout.UpdatedAt,
	}
}

func LoadoutsFromDomain(loadouts []*domain.Loadout) []*Loadout {
	result := make([]*Loadout, len(loadouts))
	for i, loadout := range loadouts {
		result[i] = LoadoutFromDomain(loadout)
	}
	return result
}
