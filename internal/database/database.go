package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
// The unique indexes on username and email are the authoritative
// duplicate check; application-level lookups only pick the error message.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		skin TEXT NOT NULL DEFAULT 'green',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS leaderboard_entries (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL,
		score INTEGER NOT NULL,
		mode TEXT NOT NULL,
		date TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_leaderboard_entries_score
		ON leaderboard_entries(score DESC);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
