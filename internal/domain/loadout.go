package domain

// Loadout is a named snapshot of a user's equipment index.
type Loadout struct {
	Model
	Username  string          `json:"username" db:"username"`
	Name      string          `json:"name" db:"name"`
	Equipment *EquipmentIndex `json:"equipment" db:"equipment"`
}
