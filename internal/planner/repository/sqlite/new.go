package sqlite

import (
	"database/sql"
	"fmt"

	"dwed-assistant/internal/planner/repository"
	"dwed-assistant/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS event_planners (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	city        TEXT NOT NULL DEFAULT '',
	min_budget  INTEGER NOT NULL DEFAULT 0,
	event_types TEXT NOT NULL DEFAULT '[]',
	doc         TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_event_planners_city ON event_planners (city);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the event-planner collection
// and ensures the schema exists.
func New(db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("planner/repository/sqlite: db is required")
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("planner/repository/sqlite: init schema: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("planner/repository/sqlite.%s", method)
}
