package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. The statement list is idempotent and
// re-run in full on every startup; duplicate-column errors from ALTER TABLE
// statements are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workers (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT 'workshop'
		           CHECK(role IN ('workshop','installer','foreman','apprentice','office')),
		color      TEXT NOT NULL DEFAULT '',
		available  INTEGER NOT NULL DEFAULT 1,
		contract   TEXT NOT NULL DEFAULT 'employee'
		           CHECK(contract IN ('employee','subcontractor')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS affairs (
		id              TEXT PRIMARY KEY,
		number          TEXT NOT NULL,
		client          TEXT NOT NULL DEFAULT '',
		label           TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'planned'
		                CHECK(status IN ('planned','in_progress','done','cancelled')),
		priority        TEXT NOT NULL DEFAULT 'normal'
		                CHECK(priority IN ('low','normal','high','urgent')),
		start_date      TEXT NOT NULL,
		end_date        TEXT NOT NULL,
		outside_hours   INTEGER NOT NULL DEFAULT 0,
		budget_estimate REAL NOT NULL DEFAULT 0,
		budget_realized REAL NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_affairs_number ON affairs(number)`,
	`CREATE INDEX IF NOT EXISTS idx_affairs_status ON affairs(status)`,
	`CREATE INDEX IF NOT EXISTS idx_affairs_dates ON affairs(start_date, end_date)`,

	`CREATE TABLE IF NOT EXISTS phases (
		id              TEXT PRIMARY KEY,
		affair_id       TEXT NOT NULL REFERENCES affairs(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		type            TEXT NOT NULL DEFAULT '',
		seq             INTEGER NOT NULL DEFAULT 0,
		start_date      TEXT NOT NULL,
		end_date        TEXT NOT NULL,
		estimated_hours REAL NOT NULL DEFAULT 0,
		actual_hours    REAL NOT NULL DEFAULT 0,
		responsible_id  TEXT REFERENCES workers(id) ON DELETE SET NULL,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_phases_affair ON phases(affair_id)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		id         TEXT PRIMARY KEY,
		worker_id  TEXT NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
		affair_id  TEXT NOT NULL REFERENCES affairs(id) ON DELETE CASCADE,
		phase_id   TEXT REFERENCES phases(id) ON DELETE CASCADE,
		date       TEXT NOT NULL,
		start_min  INTEGER NOT NULL DEFAULT 0,
		end_min    INTEGER NOT NULL DEFAULT 0,
		full_day   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assignments_worker_date ON assignments(worker_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_affair ON assignments(affair_id)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_date ON assignments(date)`,

	`CREATE TABLE IF NOT EXISTS calendar_config (
		id                     TEXT PRIMARY KEY DEFAULT 'default',
		work_start_min         INTEGER NOT NULL DEFAULT 480,
		work_end_min           INTEGER NOT NULL DEFAULT 1080,
		working_days           TEXT NOT NULL DEFAULT '1,2,3,4,5',
		slot_min               INTEGER NOT NULL DEFAULT 60,
		snap_to_grid           INTEGER NOT NULL DEFAULT 1,
		overlap_allowed        INTEGER NOT NULL DEFAULT 0,
		max_concurrent_affairs INTEGER NOT NULL DEFAULT 2
	)`,

	// Seed the default calendar row
	`INSERT OR IGNORE INTO calendar_config (id) VALUES ('default')`,
}
