package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"enhancives/internal/domain"
)

type pgItemRepository struct {
	db *sqlx.DB
}

func (r *pgItemRepository) FindByUsername(username string) ([]*domain.Item, error) {
	query := `
		SELECT id, created_at, updated_at, username, name, location, permanence, notes, targets
		FROM items
		WHERE username = $1
		ORDER BY created_at ASC
	`

	items := []*domain.Item{}
	if err := r.db.Select(&items, query, username); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *pgItemRepository) FindByID(username string, id uuid.UUID) (*domain.Item, error) {
	query := `
		SELECT id, created_at, updated_at, username, name, location, permanence, notes, targets
		FROM items
		WHERE username = $1 AND id = $2
	`

	item := &domain.Item{}
	err := r.db.Get(item, query, username, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return item, nil
}

func (r *pgItemRepository) Create(item *domain.Item) error {
	query := `
		INSERT INTO items (username, name, location, permanence, notes, targets)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(query,
		item.Username, item.Name, item.Location, item.Permanence, item.Notes, item.Targets,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *pgItemRepository) Update(item *domain.Item) error {
	query := `
		UPDATE items
		SET name = $1, location = $2, permanence = $3, notes = $4, targets = $5,
			updated_at = CURRENT_TIMESTAMP
		WHERE username = $6 AND id = $7
		RETURNING updated_at
	`

	err := r.db.QueryRow(query,
		item.Name, item.Location, item.Permanence, item.Notes, item.Targets,
		item.Username, item.ID,
	).Scan(&item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

func (r *pgItemRepository) Delete(username string, id uuid.UUID) error {
	query := `DELETE FROM items WHERE username = $1 AND id = $2`

	result, err := r.db.Exec(query, username, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}
