package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dodibois40/atelier-planning/internal/db"
	"github.com/Dodibois40/atelier-planning/internal/domain"
)

const assignmentColumns = `id, worker_id, affair_id, phase_id, date, start_min, end_min, full_day,
		created_at, updated_at`

// SQLiteAssignmentRepo implements AssignmentRepo over a DBTX.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssignmentRepo creates a new SQLiteAssignmentRepo.
func NewSQLiteAssignmentRepo(conn db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: conn}
}

func (r *SQLiteAssignmentRepo) Upsert(ctx context.Context, a *domain.Assignment) error {
	query := `INSERT INTO assignments (` + assignmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			worker_id = excluded.worker_id,
			affair_id = excluded.affair_id,
			phase_id = excluded.phase_id,
			date = excluded.date,
			start_min = excluded.start_min,
			end_min = excluded.end_min,
			full_day = excluded.full_day,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.WorkerID,
		a.AffairID,
		nullableStr(a.PhaseID),
		a.Date.Format(dateLayout),
		a.StartMin,
		a.EndMin,
		boolToInt(a.FullDay),
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = ?`
	return r.scanAssignment(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteAssignmentRepo) ListInWindow(ctx context.Context, window domain.DateWindow) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments
		WHERE date >= ? AND date <= ?
		ORDER BY date, worker_id, start_min`
	rows, err := r.db.QueryContext(ctx, query,
		window.From.Format(dateLayout), window.To.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing assignments in window: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *SQLiteAssignmentRepo) ListByAffair(ctx context.Context, affairID string) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE affair_id = ? ORDER BY date, start_min`
	rows, err := r.db.QueryContext(ctx, query, affairID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments by affair: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *SQLiteAssignmentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) DeleteByAffairFrom(ctx context.Context, affairID string, from string) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM assignments WHERE affair_id = ? AND date >= ?`, affairID, from)
	if err != nil {
		return 0, fmt.Errorf("clearing assignments for affair: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *SQLiteAssignmentRepo) collect(rows *sql.Rows) ([]*domain.Assignment, error) {
	var out []*domain.Assignment
	for rows.Next() {
		a, err := r.scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *SQLiteAssignmentRepo) scanAssignment(row rowScanner) (*domain.Assignment, error) {
	var a domain.Assignment
	var phaseID sql.NullString
	var date, createdAt, updatedAt string
	var fullDay int
	err := row.Scan(&a.ID, &a.WorkerID, &a.AffairID, &phaseID, &date,
		&a.StartMin, &a.EndMin, &fullDay, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("assignment not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning assignment: %w", err)
	}
	a.PhaseID = strFromNull(phaseID)
	a.FullDay = intToBool(fullDay)

	var parseErr error
	a.Date, parseErr = time.Parse(dateLayout, date)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing date: %w", parseErr)
	}
	a.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	a.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &a, nil
}
