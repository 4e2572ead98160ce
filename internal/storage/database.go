package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"CarbonFootprintTracker/internal/logging"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens the SQLite database at path and creates the tables.
// ":memory:" gives a private in-memory database (used by tests).
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite(): failed to open database: %w", err)
	}
	if path == ":memory:" || strings.Contains(path, "mode=memory") {
		// every connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite(): failed to connect to database: %w", err)
	}

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"email" TEXT NOT NULL UNIQUE,
			"username" TEXT NOT NULL,
			"password_hash" TEXT NOT NULL,
			"created_at" INTEGER NOT NULL
	);`
	createRecordsTable := `
	CREATE TABLE IF NOT EXISTS footprint_records (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"username" TEXT NOT NULL,
			"document" TEXT NOT NULL,
			"created_at" INTEGER NOT NULL
	);`
	createRecordsIndex := `CREATE INDEX IF NOT EXISTS idx_footprint_records_username ON footprint_records(username, id)`

	if _, err := db.Exec(createUsersTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite(): failed to create users table: %w", err)
	}
	if _, err := db.Exec(createRecordsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite(): failed to create footprint_records table: %w", err)
	}
	if _, err := db.Exec(createRecordsIndex); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite(): failed to create records index: %w", err)
	}
	logging.Info().Str("path", path).Msg("OpenSQLite(): Init and create table successfully!")
	return db, nil
}
