package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"enhancives/internal/domain"
)

type pgLoadoutRepository struct {
	db *sqlx.DB
}

func (r *pgLoadoutRepository) FindByUsername(username string) ([]*domain.Loadout, error) {
	query := `
		SELECT id, created_at, updated_at, username, name, equipment
		FROM loadouts
		WHERE username = $1
		ORDER BY created_at DESC
	`

	loadouts := []*domain.Loadout{}
	if err := r.db.Select(&loadouts, query, username); err != nil {
		return nil, err
	}

	return loadouts, nil
}

func (r *pgLoadoutRepository) FindByID(username string, id uuid.UUID) (*domain.Loadout, error) {
	query := `
		SELECT id, created_at, updated_at, username, name, equipment
		FROM loadouts
		WHERE username = $1 AND id = $2
	`

	loadout := &domain.Loadout{}
	err := r.db.Get(loadout, query, username, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLoadoutNotFound
		}
		return nil, err
	}

	return loadout, nil
}

func (r *pgLoadoutRepository) Upsert(loadout *domain.Loadout) error {
	query := `
		INSERT INTO loadouts (username, name, equipment)
		VALUES ($1, $2, $3)
		ON CONFLICT (username, name)
		DO UPDATE SET equipment = EXCLUDED.equipment, updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(query, loadout.Username, loadout.Name, loadout.Equipment).
		Scan(&loadout.ID, &loadout.CreatedAt, &loadout.UpdatedAt)
}

func (r *pgLoadoutRepository) Delete(username string, id uuid.UUID) error {
	query := `DELETE FROM loadouts WHERE username = $1 AND id = $2`

	result, err := r.db.Exec(query, username, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLoadoutNotFound
	}
	return nil
}
