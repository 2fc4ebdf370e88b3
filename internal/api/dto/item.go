package dto

import (
	"time"

	"github.com/google/uuid"

	"enhancives/internal/domain"
)

type Target struct {
	Target string `json:"target" validate:"required"`
	Type   string `json:"type" validate:"required"`
	Amount int    `json:"amount" validate:"required"`
}

type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Permanence string    `json:"permanence"`
	Notes      string    `json:"notes,omitempty"`
	Targets    []Target  `json:"targets"`
	DateAdded  time.Time `json:"dateAdded"`
}

type ItemRequest struct {
	Name       string   `json:"name" validate:"required"`
	Location   string   `json:"location"`
	Permanence string   `json:"permanence" validate:"required"`
	Notes      string   `json:"notes"`
	Targets    []Target `json:"targets" validate:"required,min=1,max=6,dive"`
}

func ItemFromDomain(item *domain.Item) *Item {
	if item == nil {
		return nil
	}

	targets := make([]Target, len(item.Targets))
	for i, t := range item.Targets {
		targets[i] = Target{Target: t.Target, Type: string(t.Type), Amount: t.Amount}
	}

	return &Item{
		ID:         item.ID.String(),
		Name:       item.Name,
		Location:   item.Location,
		Permanence: string(item.Permanence),
		Notes:      item.Notes,
		Targets:    targets,
		DateAdded:  item.CreatedAt,
	}
}

func ItemsFromDomain(items []*domain.Item) []*Item {
	result := make([]*Item, len(items))
	for i, item := range items {
		result[i] = ItemFromDomain(item)
	}
	return result
}

func (r *ItemRequest) ToDomain(username string, id uuid.UUID) *domain.Item {
	targets := make(domain.TargetList, len(r.Targets))
	for i, t := range r.Targets {
		targets[i] = domain.Target{Target: t.Target, Type: domain.BoostType(t.Type), Amount: t.Amount}
	}

	item := &domain.Item{
		Username:   username,
		Name:       r.Name,
		Location:   r.Location,
		Permanence: domain.Permanence(r.Permanence),
		Notes:      r.Notes,
		Targets:    targets,
	}
	item.ID = id
	return item
}
