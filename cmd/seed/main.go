package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/chalkboard/user-service/config"
)

// Resets the schema (migrate down, then up) and inserts a few sample users.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		log.Fatalf("failed to init migrate driver: %v", err)
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", cfg.MigrationsDir), "postgres", driver)
	if err != nil {
		log.Fatalf("failed to init migrations: %v", err)
	}

	fmt.Println("dropping all tables...")
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migrate down failed: %v", err)
	}
	fmt.Println("creating all tables...")
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migrate up failed: %v", err)
	}

	samples := []struct {
		username, email, firstName, lastName string
	}{
		{"jdoe", "jdoe@example.com", "John", "Doe"},
		{"janedoe", "janedoe@example.com", "Jane", "Doe"},
	}
	now := time.Now().UTC()
	for _, s := range samples {
		var id int64
		err := db.QueryRow(`
			INSERT INTO users (username, email, first_name, last_name, date_created, date_updated)
			VALUES ($1, $2, $3, $4, $5, $5)
			RETURNING id
		`, s.username, s.email, s.firstName, s.lastName, now).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", s.username, err)
		}
		fmt.Printf("seeded user: id=%d username=%s email=%s\n", id, s.username, s.email)
	}
}
