package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

const MaxTargets = 6

// Target is a single enhancive effect on an item: what it boosts, through
// which mechanism, and by how much. Negative amounts occur on swap items.
type Target struct {
	Target string    `json:"target" db:"target"`
	Type   BoostType `json:"type" db:"type"`
	Amount int       `json:"amount" db:"amount"`
}

// TargetList is stored as a JSONB column.
type TargetList []Target

func (t TargetList) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *TargetList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	case nil:
		*t = nil
		return nil
	default:
		return fmt.Errorf("unsupported type for TargetList: %T", src)
	}
}

type Item struct {
	Model
	Username   string     `json:"username" db:"username"`
	Name       string     `json:"name" db:"name"`
	Location   string     `json:"location" db:"location"`
	Permanence Permanence `json:"permanence" db:"permanence"`
	Notes      string     `json:"notes" db:"notes"`
	Targets    TargetList `json:"targets" db:"targets"`
}

var (
	ErrNoTargets       = errors.New("item must have at least one target")
	ErrTooManyTargets  = errors.New("item cannot have more than six targets")
	ErrBadPermanence   = errors.New("unknown permanence type")
	ErrItemNameMissing = errors.New("item name is required")
)

func (i *Item) Validate() error {
	if i.Name == "" {
		return ErrItemNameMissing
	}
	if len(i.Targets) == 0 {
		return ErrNoTargets
	}
	if len(i.Targets) > MaxTargets {
		return ErrTooManyTargets
	}
	if !IsValidPermanence(i.Permanence) {
		return ErrBadPermanence
	}
	return nil
}

// DedupKey identifies an item by name plus its sorted target triples. Used by
// import to merge backups without duplicating rows.
func (i *Item) DedupKey() string {
	keys := make([]string, len(i.Targets))
	for n, t := range i.Targets {
		keys[n] = fmt.Sprintf("%s:%s:%d", t.Target, t.Type, t.Amount)
	}
	sort.Strings(keys)
	return i.Name + "::" + strings.Join(keys, "|")
}
