package repository

import (
	"time"

	"github.com/jmoiron/sqlx"

	"enhancives/internal/domain"
)

type pgListingRepository struct {
	db *sqlx.DB
}

func (r *pgListingRepository) FindAvailable() ([]*domain.Listing, error) {
	query := `
		SELECT id, created_at, updated_at, username, name, location, permanence,
			targets, price, contact, notes, available
		FROM marketplace_listings
		WHERE available = true
		ORDER BY updated_at DESC
	`

	listings := []*domain.Listing{}
	if err := r.db.Select(&listings, query); err != nil {
		return nil, err
	}

	return listings, nil
}

func (r *pgListingRepository) FindByUsername(username string) ([]*domain.Listing, error) {
	query := `
		SELECT id, created_at, updated_at, username, name, location, permanence,
			targets, price, contact, notes, available
		FROM marketplace_listings
		WHERE username = $1
		ORDER BY created_at ASC
	`

	listings := []*domain.Listing{}
	if err := r.db.Select(&listings, query, username); err != nil {
		return nil, err
	}

	return listings, nil
}

func (r *pgListingRepository) ReplaceForUser(username string, listings []*domain.Listing) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM marketplace_listings WHERE username = $1`, username); err != nil {
		return err
	}

	insert := `
		INSERT INTO marketplace_listings (username, name, location, permanence, targets, price, contact, notes, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	for _, listing := range listings {
		listing.Username = username
		err := tx.QueryRow(insert,
			listing.Username, listing.Name, listing.Location, listing.Permanence,
			listing.Targets, listing.Price, listing.Contact, listing.Notes, listing.Available,
		).Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *pgListingRepository) ExpireOlderThan(cutoff time.Time) (int64, error) {
	query := `
		UPDATE marketplace_listings
		SET available = false
		WHERE available = true AND updated_at < $1
	`

	result, err := r.db.Exec(query, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
