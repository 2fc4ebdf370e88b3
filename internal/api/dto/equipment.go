package dto

import (
	"github.com/google/uuid"

	"enhancives/internal/domain"
)

type EquipRequest struct {
	ItemID   string `json:"itemId"`
	Location string `json:"location" validate:"required"`
	Slot     int    `json:"slot" validate:"min=0"`
}

type UnequipRequest struct {
	Location string `json:"location" validate:"required"`
	Slot     int    `json:"slot" validate:"min=0"`
}

// EquipmentView renders the index as location -> slots, empty slots as null.
type EquipmentView struct {
	Slots    map[string][]*string `json:"slots"`
	Equipped []*Item              `json:"equipped"`
}

func EquipmentViewFromDomain(index *domain.EquipmentIndex, equipped []*domain.Item) *EquipmentView {
	slots := make(map[string][]*string, len(domain.WearLocations))
	for location, row := range index.Slots() {
		view := make([]*string, len(row))
		for i, id := range row {
			if id != uuid.Nil {
				s := id.String()
				view[i] = &s
			}
		}
		slots[location] = view
	}

	return &EquipmentView{
		Slots:    slots,
		Equipped: ItemsFromDomain(equipped),
	}
}
