package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"

	"codmart-be/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	mode := flag.String("mode", "up", "migration mode: up, down or version")
	path := flag.String("path", "file://migrations", "migrations source")
	flag.Parse()

	cfg := config.LoadConfig()

	dbURL := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(cfg.DBUser),
		url.QueryEscape(cfg.DBPassword),
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)

	m, err := migrate.New(*path, dbURL)
	if err != nil {
		log.Fatalf("failed to create migrate instance: %v", err)
	}
	defer m.Close()

	switch *mode {
	case "up":
		err = m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no pending migrations")
			return
		}
		if err != nil {
			log.Fatalf("migration up failed: %v", err)
		}
		log.Println("migrations applied")

	case "down":
		err = m.Steps(-1)
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no migrations to roll back")
			return
		}
		if err != nil {
			log.Fatalf("migration down failed: %v", err)
		}
		log.Println("migration rolled back")

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Println("no migrations applied yet")
			return
		}
		if err != nil {
			log.Fatalf("failed to read version: %v", err)
		}
		log.Printf("version=%d dirty=%v", version, dirty)

	default:
		log.Fatalf("unknown mode: %s (use 'up', 'down' or 'version')", *mode)
	}
}
