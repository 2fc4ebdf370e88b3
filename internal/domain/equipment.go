package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// WearLocations is the static slot schema: 57 slots across 28 locations.
var WearLocations = map[string]int{
	"Pin": 8, "Head": 1, "Hair": 1, "Ear": 3, "Ears": 3, "Neck": 5,
	"Shoulder": 2, "Cloak": 1, "Front": 1, "Chest": 1, "Undershirt": 1,
	"Back": 1, "Arm": 1, "Wrist": 4, "Hands": 1, "Finger": 4,
	"Waist": 1, "Belt": 3, "Legs": 1, "Pants": 1, "Leggings": 1,
	"Ankle": 1, "Feet": 1, "Socks": 1, "Locus": 1, "Tattoo": 1,
	"Right Hand": 1, "Left Hand": 1,
}

var (
	ErrUnknownLocation = errors.New("unknown wear location")
	ErrSlotOutOfRange  = errors.New("slot index out of range")
)

// EquipmentIndex maps each wear location to its slots. A slot holds the id of
// the equipped item or uuid.Nil. An item id appears in at most one slot; Equip
// maintains that by clearing any prior placement first. The index is owned by
// a single user and is not safe for concurrent use.
type EquipmentIndex struct {
	slots map[string][]uuid.UUID
}

func NewEquipmentIndex() *EquipmentIndex {
	idx := &EquipmentIndex{slots: make(map[string][]uuid.UUID, len(WearLocations))}
	for location, count := range WearLocations {
		idx.slots[location] = make([]uuid.UUID, count)
	}
	return idx
}

func validateSlot(location string, slot int) error {
	count, ok := WearLocations[location]
	if !ok {
		return ErrUnknownLocation
	}
	if slot < 0 || slot >= count {
		return ErrSlotOutOfRange
	}
	return nil
}

// Equip places itemID into the given slot. Any prior placement of the same
// item anywhere in the index is cleared first, and whatever occupied the
// target slot is silently displaced. A nil itemID just clears the slot.
func (e *EquipmentIndex) Equip(itemID uuid.UUID, location string, slot int) error {
	if err := validateSlot(location, slot); err != nil {
		return err
	}

	if itemID == uuid.Nil {
		e.slots[location][slot] = uuid.Nil
		return nil
	}

	e.RemoveItem(itemID)
	e.slots[location][slot] = itemID
	return nil
}

// Unequip empties the given slot. Unequipping an already-empty slot is a no-op.
func (e *EquipmentIndex) Unequip(location string, slot int) error {
	if err := validateSlot(location, slot); err != nil {
		return err
	}
	e.slots[location][slot] = uuid.Nil
	return nil
}

// RemoveItem clears every slot holding itemID. Called on item deletion so the
// index never references a deleted item.
func (e *EquipmentIndex) RemoveItem(itemID uuid.UUID) {
	for _, slots := range e.slots {
		for i, id := range slots {
			if id == itemID {
				slots[i] = uuid.Nil
			}
		}
	}
}

// EquippedItemIDs returns the set of item ids currently placed in any slot.
func (e *EquipmentIndex) EquippedItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0)
	for _, slots := range e.slots {
		for _, id := range slots {
			if id != uuid.Nil {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// ItemAt returns the occupant of a slot, or uuid.Nil if empty.
func (e *EquipmentIndex) ItemAt(location string, slot int) uuid.UUID {
	if err := validateSlot(location, slot); err != nil {
		return uuid.Nil
	}
	return e.slots[location][slot]
}

// Slots returns a deep copy of the index contents.
func (e *EquipmentIndex) Slots() map[string][]uuid.UUID {
	out := make(map[string][]uuid.UUID, len(e.slots))
	for location, slots := range e.slots {
		copied := make([]uuid.UUID, len(slots))
		copy(copied, slots)
		out[location] = copied
	}
	return out
}

// MarshalJSON renders empty slots as null, matching the exported backup shape.
func (e *EquipmentIndex) MarshalJSON() ([]byte, error) {
	out := make(map[string][]*uuid.UUID, len(e.slots))
	for location, slots := range e.slots {
		row := make([]*uuid.UUID, len(slots))
		for i, id := range slots {
			if id != uuid.Nil {
				v := id
				row[i] = &v
			}
		}
		out[location] = row
	}
	return json.Marshal(out)
}

// UnmarshalJSON merges stored slots into a fully initialized index so every
// known location exists even if the payload omits it. Unknown locations and
// overflow slots are dropped.
func (e *EquipmentIndex) UnmarshalJSON(data []byte) error {
	var raw map[string][]*uuid.UUID
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fresh := NewEquipmentIndex()
	for location, row := range raw {
		slots, ok := fresh.slots[location]
		if !ok {
			continue
		}
		for i, id := range row {
			if i >= len(slots) {
				break
			}
			if id != nil {
				slots[i] = *id
			}
		}
	}
	e.slots = fresh.slots
	return nil
}

// Value and Scan store the index as a JSONB column.
func (e *EquipmentIndex) Value() (driver.Value, error) {
	return json.Marshal(e)
}

func (e *EquipmentIndex) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return e.UnmarshalJSON(v)
	case string:
		return e.UnmarshalJSON([]byte(v))
	case nil:
		e.slots = NewEquipmentIndex().slots
		return nil
	default:
		return fmt.Errorf("unsupported type for EquipmentIndex: %T", src)
	}
}
