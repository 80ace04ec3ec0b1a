package sqlite

import (
	"database/sql"
	"fmt"

	"dwed-assistant/internal/venue/repository"
	"dwed-assistant/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS venues (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	location       TEXT NOT NULL DEFAULT '',
	total_capacity INTEGER NOT NULL DEFAULT 0,
	halls          TEXT NOT NULL DEFAULT '[]',
	doc            TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_venues_location ON venues (location);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the venue collection and
// ensures the schema exists.
func New(db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("venue/repository/sqlite: db is required")
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("venue/repository/sqlite: init schema: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("venue/repository/sqlite.%s", method)
}
