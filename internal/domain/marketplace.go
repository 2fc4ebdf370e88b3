package domain

// Listing is one item offered in the shared marketplace. Listings are synced
// wholesale per user: a sync replaces everything the user had listed before.
type Listing struct {
	Model
	Username   string     `json:"username" db:"username"`
	Name       string     `json:"name" db:"name"`
	Location   string     `json:"location" db:"location"`
	Permanence Permanence `json:"permanence" db:"permanence"`
	Targets    TargetList `json:"targets" db:"targets"`
	Price      uint       `json:"price" db:"price"`
	Contact    string     `json:"contact" db:"contact"`
	Notes      string     `json:"notes" db:"notes"`
	Available  bool       `json:"available" db:"available"`
}
