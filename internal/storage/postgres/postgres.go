// Package postgres implements the reservation engine's persistence on top
// of database/sql and lib/pq. Every state-changing operation runs inside a
// single transaction; booking creation, booking decision and journey start
// additionally take a row lock on the car, serializing the
// check-then-mutate sequence per car so two concurrent requests cannot
// both pass the overlap or open-journey checks or deadlock on cascade
// updates.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "github.com/lib/pq"

	"carRental/internal/billing"
	"carRental/internal/config"
	"carRental/migrations"
)

type Storage struct {
	DB     *sql.DB
	pricer billing.Pricer
}

// InitDB opens the connection pool, applies pending migrations and returns
// the storage. The pricer is captured here so journey transitions never
// know which pricing algorithm is in use.
func InitDB(dbCfg *config.Database, pricer billing.Pricer) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}

	if _, err = provider.Up(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &Storage{DB: db, pricer: pricer}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
