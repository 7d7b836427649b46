package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/lib/pq"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "migrations", "Directory containing migration files")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		log.Fatalf("failed to ensure schema_migrations table: %v", err)
	}

	if *rollback {
		rollbackLast(db, *dir)
		return
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("failed to read migrations directory: %v", err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) == ".sql" && !strings.HasSuffix(name, "_rollback.sql") {
			files = append(files, name)
		}
	}
	// Apply in version order
	sort.Strings(files)

	for _, file := range files {
		version := strings.Split(file, "_")[0]

		var applied bool
		err := db.QueryRow(
			"SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", version,
		).Scan(&applied)
		if err != nil {
			log.Fatalf("failed to check migration status: %v", err)
		}
		if applied {
			fmt.Printf("Migration already applied: %s\n", file)
			continue
		}

		content, err := os.ReadFile(filepath.Join(*dir, file))
		if err != nil {
			log.Fatalf("failed to read migration %s: %v", file, err)
		}

		tx, err := db.Begin()
		if err != nil {
			log.Fatalf("failed to start transaction: %v", err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			log.Fatalf("failed to apply migration %s: %v", file, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", version, file,
		); err != nil {
			tx.Rollback()
			log.Fatalf("failed to record migration: %v", err)
		}
		if err := tx.Commit(); err != nil {
			log.Fatalf("failed to commit migration: %v", err)
		}

		fmt.Printf("Successfully applied migration: %s\n", file)
	}

	fmt.Println("All migrations applied successfully.")
}

func rollbackLast(db *sql.DB, dir string) {
	var version, name string
	err := db.QueryRow(`
		SELECT version, name
		FROM schema_migrations
		ORDER BY applied_at DESC
		LIMIT 1
	`).Scan(&version, &name)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Fatal("No migrations to rollback")
		}
		log.Fatalf("failed to get last migration: %v", err)
	}

	rollbackFile := fmt.Sprintf("%s_rollback.sql", strings.TrimSuffix(name, ".sql"))
	content, err := os.ReadFile(filepath.Join(dir, rollbackFile))
	if err != nil {
		log.Fatalf("failed to read rollback file %s: %v", rollbackFile, err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("failed to start transaction: %v", err)
	}
	if _, err := tx.Exec(string(content)); err != nil {
		tx.Rollback()
		log.Fatalf("failed to execute rollback: %v", err)
	}
	if _, err := tx.Exec("DELETE FROM schema_migrations WHERE version = $1", version); err != nil {
		tx.Rollback()
		log.Fatalf("failed to remove migration record: %v", err)
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("failed to commit rollback: %v", err)
	}

	fmt.Printf("Successfully rolled back migration: %s\n", name)
}
