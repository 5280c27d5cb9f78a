package repository

import (
	"context"
	"fmt"

	"github.com/Dodibois40/atelier-planning/internal/db"
	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// SQLiteCalendarConfigRepo reads and writes the single calendar row.
type SQLiteCalendarConfigRepo struct {
	db db.DBTX
}

// NewSQLiteCalendarConfigRepo creates a new SQLiteCalendarConfigRepo.
func NewSQLiteCalendarConfigRepo(conn db.DBTX) *SQLiteCalendarConfigRepo {
	return &SQLiteCalendarConfigRepo{db: conn}
}

func (r *SQLiteCalendarConfigRepo) Get(ctx context.Context) (domain.CalendarConfig, error) {
	query := `SELECT work_start_min, work_end_min, working_days, slot_min,
		snap_to_grid, overlap_allowed, max_concurrent_affairs
		FROM calendar_config WHERE id = 'default'`

	var cfg domain.CalendarConfig
	var workingDays string
	var snap, overlap int
	err := r.db.QueryRowContext(ctx, query).Scan(
		&cfg.WorkStartMin, &cfg.WorkEndMin, &workingDays, &cfg.SlotMin,
		&snap, &overlap, &cfg.MaxConcurrentAffairs)
	if err != nil {
		return domain.CalendarConfig{}, fmt.Errorf("loading calendar config: %w", err)
	}
	cfg.WorkingDays = weekdaysFromCSV(workingDays)
	cfg.SnapToGrid = intToBool(snap)
	cfg.OverlapAllowed = intToBool(overlap)
	return cfg, nil
}

func (r *SQLiteCalendarConfigRepo) Update(ctx context.Context, cfg domain.CalendarConfig) error {
	query := `UPDATE calendar_config SET work_start_min = ?, work_end_min = ?, working_days = ?,
		slot_min = ?, snap_to_grid = ?, overlap_allowed = ?, max_concurrent_affairs = ?
		WHERE id = 'default'`
	_, err := r.db.ExecContext(ctx, query,
		cfg.WorkStartMin, cfg.WorkEndMin, weekdaysToCSV(cfg.WorkingDays), cfg.SlotMin,
		boolToInt(cfg.SnapToGrid), boolToInt(cfg.OverlapAllowed), cfg.MaxConcurrentAffairs)
	if err != nil {
		return fmt.Errorf("updating calendar config: %w", err)
	}
	return nil
}
