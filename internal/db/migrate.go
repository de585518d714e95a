package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the full schema. Statements are idempotent; ALTER TABLE
// duplicates from re-runs are tolerated.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id                 TEXT PRIMARY KEY,
		topic              TEXT NOT NULL,
		field              TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		start_date         TEXT NOT NULL,
		deadline           TEXT NOT NULL,
		daily_hours        REAL NOT NULL,
		work_days_per_week INTEGER NOT NULL,
		focus_minutes      INTEGER NOT NULL DEFAULT 90,
		procrastination    TEXT NOT NULL
		                   CHECK(procrastination IN ('low','medium','high')),
		used_fallback      INTEGER NOT NULL DEFAULT 0,
		failure_reason     TEXT NOT NULL DEFAULT '',
		status             TEXT NOT NULL DEFAULT 'active'
		                   CHECK(status IN ('active','archived')),
		archived_at        TEXT,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS phases (
		id              TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		start_date      TEXT NOT NULL,
		end_date        TEXT NOT NULL,
		estimated_hours INTEGER NOT NULL DEFAULT 0,
		order_index     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		phase_id        TEXT NOT NULL REFERENCES phases(id) ON DELETE CASCADE,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		estimated_hours REAL NOT NULL DEFAULT 0,
		priority        INTEGER NOT NULL DEFAULT 3,
		due_date        TEXT,
		assigned_date   TEXT,
		day_order       INTEGER NOT NULL DEFAULT 0,
		deliverable     TEXT NOT NULL DEFAULT '',
		completed       INTEGER NOT NULL DEFAULT 0,
		actual_hours    REAL NOT NULL DEFAULT 0,
		order_index     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id           TEXT PRIMARY KEY,
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		target_date  TEXT NOT NULL,
		deliverables TEXT NOT NULL DEFAULT '[]',
		completed    INTEGER NOT NULL DEFAULT 0,
		order_index  INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_phases_project ON phases(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_phase ON tasks(phase_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_assigned ON tasks(assigned_date)`,
	`CREATE INDEX IF NOT EXISTS idx_milestones_project ON milestones(project_id)`,
}
