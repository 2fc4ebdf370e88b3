package domain

import "github.com/google/uuid"

// CalculateTotals sums enhancive contributions across every equipped item.
//
// Stats count per bonus point: Base is worth 1, Bonus is worth 2. Skills and
// resources count Ranks and Bonus at face value. Any other target/type
// combination passes through unmultiplied. Equipment slots referencing ids
// missing from items contribute nothing.
//
// Targets with no equipped contribution are absent from the result, not zero.
func CalculateTotals(items []*Item, equipment *EquipmentIndex) map[string]int {
	byID := make(map[uuid.UUID]*Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	totals := make(map[string]int)
	for _, id := range equipment.EquippedItemIDs() {
		item, ok := byID[id]
		if !ok {
			continue
		}
		for _, t := range item.Targets {
			amount := t.Amount
			if IsStat(t.Target) {
				switch t.Type {
				case BoostBase:
					amount = t.Amount
				case BoostBonus:
					amount = t.Amount * 2
				}
			} else if t.Type == BoostRanks || t.Type == BoostBonus {
				amount = t.Amount
			}
			totals[t.Target] += amount
		}
	}
	return totals
}

// EquippedItems resolves the equipment index against the item catalog,
// silently skipping dangling ids.
func EquippedItems(items []*Item, equipment *EquipmentIndex) []*Item {
	byID := make(map[uuid.UUID]*Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	equipped := make([]*Item, 0)
	for _, id := range equipment.EquippedItemIDs() {
		if item, ok := byID[id]; ok {
			equipped = append(equipped, item)
		}
	}
	return equipped
}
