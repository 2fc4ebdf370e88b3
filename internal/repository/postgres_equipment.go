package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"enhancives/internal/domain"
)

type pgEquipmentRepository struct {
	db *sqlx.DB
}

func (r *pgEquipmentRepository) Get(username string) (*domain.EquipmentIndex, error) {
	query := `SELECT slots FROM equipment WHERE username = $1`

	index := domain.NewEquipmentIndex()
	err := r.db.Get(index, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewEquipmentIndex(), nil
		}
		return nil, err
	}

	return index, nil
}

func (r *pgEquipmentRepository) Save(username string, index *domain.EquipmentIndex) error {
	query := `
		INSERT INTO equipment (username, slots)
		VALUES ($1, $2)
		ON CONFLICT (username)
		DO UPDATE SET slots = EXCLUDED.slots, updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query, username, index)
	return err
}
