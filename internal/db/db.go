package db

import (
	"database/sql"
	"fmt"

	"codmart-be/internal/config"

	_ "github.com/lib/pq"
)

// Open connects to Postgres and verifies the connection. The caller owns the
// handle and is responsible for closing it at shutdown.
func Open(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	database, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return database, nil
}
