package domain

type User struct {
	Model
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}
