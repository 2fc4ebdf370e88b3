package repository

import (
	"fmt"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"enhancives/internal/config"
)

type PostgresStore struct {
	db       *sqlx.DB
	users    *pgUserRepository
	items    *pgItemRepository
	equip    *pgEquipmentRepository
	loadouts *pgLoadoutRepository
	listings *pgListingRepository
}

func NewPostgresStore(cfg *config.Config) (*PostgresStore, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	driverName, err := otelsql.Register("postgres",
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithSpanOptions(otelsql.SpanOptions{
			DisableErrSkip: true,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("register otelsql driver: %w", err)
	}

	db, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db.SetMaxIdleConns(2)
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &PostgresStore{
		db:       db,
		users:    &pgUserRepository{db: db},
		items:    &pgItemRepository{db: db},
		equip:    &pgEquipmentRepository{db: db},
		loadouts: &pgLoadoutRepository{db: db},
		listings: &pgListingRepository{db: db},
	}, nil
}

func (s *PostgresStore) Users() UserRepository { return s.users }
func (s *PostgresStore) Items() ItemRepository { return s.items }
func (s *PostgresStore) Equipment() EquipmentRepository { return s.equip }
func (s *PostgresStore) Loadouts() LoadoutRepository { return s.loadouts }
func (s *PostgresStore) Listings() ListingRepository { return s.listings }

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) DB() *sqlx.DB {
	return s.db
}
