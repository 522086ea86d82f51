package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bagstore/internal/config"
	"bagstore/internal/retry"

	_ "github.com/lib/pq"
)

// pingRetry covers a database that is still starting when the server boots.
var pingRetry = retry.Config{
	MaxAttempts: 3,
	Backoff:     retry.ExponentialBackoff(250 * time.Millisecond),
}

func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
}

// NewDatabase opens and pings the Postgres catalog database.
func NewDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	return newDatabaseWithDriver(ctx, cfg, "postgres")
}

func newDatabaseWithDriver(ctx context.Context, cfg *config.Config, driver string) (*sql.DB, error) {
	db, err := sql.Open(driver, buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	err = retry.Do(ctx, pingRetry, func() error {
		return db.PingContext(ctx)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return db, nil
}
