package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dodibois40/atelier-planning/internal/db"
	"github.com/Dodibois40/atelier-planning/internal/domain"
)

const affairColumns = `id, number, client, label, status, priority, start_date, end_date,
		outside_hours, budget_estimate, budget_realized, created_at, updated_at`

const phaseColumns = `id, affair_id, name, type, seq, start_date, end_date,
		estimated_hours, actual_hours, responsible_id, created_at, updated_at`

// SQLiteAffairRepo implements AffairRepo over a DBTX. Phases are loaded
// eagerly: the planning engine always needs them for containment checks.
type SQLiteAffairRepo struct {
	db db.DBTX
}

// NewSQLiteAffairRepo creates a new SQLiteAffairRepo.
func NewSQLiteAffairRepo(conn db.DBTX) *SQLiteAffairRepo {
	return &SQLiteAffairRepo{db: conn}
}

func (r *SQLiteAffairRepo) Create(ctx context.Context, a *domain.Affair) error {
	query := `INSERT INTO affairs (` + affairColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Number,
		a.Client,
		a.Label,
		string(a.Status),
		string(a.Priority),
		a.StartDate.Format(dateLayout),
		a.EndDate.Format(dateLayout),
		boolToInt(a.OutsideHours),
		a.BudgetEstimate,
		a.BudgetRealized,
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting affair: %w", err)
	}
	for i := range a.Phases {
		if err := r.CreatePhase(ctx, &a.Phases[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteAffairRepo) GetByID(ctx context.Context, id string) (*domain.Affair, error) {
	query := `SELECT ` + affairColumns + ` FROM affairs WHERE id = ?`
	a, err := r.scanAffair(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.attachPhases(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *SQLiteAffairRepo) GetByNumber(ctx context.Context, number string) (*domain.Affair, error) {
	query := `SELECT ` + affairColumns + ` FROM affairs WHERE number = ?`
	a, err := r.scanAffair(r.db.QueryRowContext(ctx, query, number))
	if err != nil {
		return nil, err
	}
	if err := r.attachPhases(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *SQLiteAffairRepo) ListOverlapping(ctx context.Context, window domain.DateWindow) ([]*domain.Affair, error) {
	query := `SELECT ` + affairColumns + ` FROM affairs
		WHERE start_date <= ? AND end_date >= ?
		ORDER BY number`
	rows, err := r.db.QueryContext(ctx, query,
		window.To.Format(dateLayout), window.From.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing affairs in window: %w", err)
	}
	defer rows.Close()
	return r.collectWithPhases(ctx, rows)
}

func (r *SQLiteAffairRepo) List(ctx context.Context) ([]*domain.Affair, error) {
	query := `SELECT ` + affairColumns + ` FROM affairs ORDER BY number`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing affairs: %w", err)
	}
	defer rows.Close()
	return r.collectWithPhases(ctx, rows)
}

func (r *SQLiteAffairRepo) Update(ctx context.Context, a *domain.Affair) error {
	query := `UPDATE affairs SET number = ?, client = ?, label = ?, status = ?, priority = ?,
		start_date = ?, end_date = ?, outside_hours = ?, budget_estimate = ?, budget_realized = ?,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.Number, a.Client, a.Label, string(a.Status), string(a.Priority),
		a.StartDate.Format(dateLayout), a.EndDate.Format(dateLayout),
		boolToInt(a.OutsideHours), a.BudgetEstimate, a.BudgetRealized,
		a.UpdatedAt.Format(time.RFC3339), a.ID)
	if err != nil {
		return fmt.Errorf("updating affair: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("affair %s not found", a.ID)
	}
	return nil
}

func (r *SQLiteAffairRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM affairs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting affair: %w", err)
	}
	return nil
}

func (r *SQLiteAffairRepo) CreatePhase(ctx context.Context, p *domain.Phase) error {
	query := `INSERT INTO phases (` + phaseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.AffairID,
		p.Name,
		p.Type,
		p.Seq,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		p.EstimatedHours,
		p.ActualHours,
		nullableStr(p.ResponsibleID),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting phase %q: %w", p.Name, err)
	}
	return nil
}

func (r *SQLiteAffairRepo) UpdatePhase(ctx context.Context, p *domain.Phase) error {
	query := `UPDATE phases SET name = ?, type = ?, seq = ?, start_date = ?, end_date = ?,
		estimated_hours = ?, actual_hours = ?, responsible_id = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Type, p.Seq,
		p.StartDate.Format(dateLayout), p.EndDate.Format(dateLayout),
		p.EstimatedHours, p.ActualHours, nullableStr(p.ResponsibleID),
		p.UpdatedAt.Format(time.RFC3339), p.ID)
	if err != nil {
		return fmt.Errorf("updating phase: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("phase %s not found", p.ID)
	}
	return nil
}

func (r *SQLiteAffairRepo) DeletePhase(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM phases WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting phase: %w", err)
	}
	return nil
}

func (r *SQLiteAffairRepo) collectWithPhases(ctx context.Context, rows *sql.Rows) ([]*domain.Affair, error) {
	var out []*domain.Affair
	for rows.Next() {
		a, err := r.scanAffair(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, a := range out {
		if err := r.attachPhases(ctx, a); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *SQLiteAffairRepo) attachPhases(ctx context.Context, a *domain.Affair) error {
	query := `SELECT ` + phaseColumns + ` FROM phases WHERE affair_id = ? ORDER BY seq, created_at`
	rows, err := r.db.QueryContext(ctx, query, a.ID)
	if err != nil {
		return fmt.Errorf("loading phases for %s: %w", a.Number, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Phase
		var startDate, endDate, createdAt, updatedAt string
		var responsible sql.NullString
		if err := rows.Scan(&p.ID, &p.AffairID, &p.Name, &p.Type, &p.Seq,
			&startDate, &endDate, &p.EstimatedHours, &p.ActualHours,
			&responsible, &createdAt, &updatedAt); err != nil {
			return fmt.Errorf("scanning phase: %w", err)
		}
		var parseErr error
		p.StartDate, parseErr = time.Parse(dateLayout, startDate)
		if parseErr != nil {
			return fmt.Errorf("parsing phase start_date: %w", parseErr)
		}
		p.EndDate, parseErr = time.Parse(dateLayout, endDate)
		if parseErr != nil {
			return fmt.Errorf("parsing phase end_date: %w", parseErr)
		}
		p.ResponsibleID = strFromNull(responsible)
		p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
		if parseErr != nil {
			return fmt.Errorf("parsing phase created_at: %w", parseErr)
		}
		p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
		if parseErr != nil {
			return fmt.Errorf("parsing phase updated_at: %w", parseErr)
		}
		a.Phases = append(a.Phases, p)
	}
	return rows.Err()
}

func (r *SQLiteAffairRepo) scanAffair(row rowScanner) (*domain.Affair, error) {
	var a domain.Affair
	var status, priority, startDate, endDate, createdAt, updatedAt string
	var outsideHours int
	err := row.Scan(&a.ID, &a.Number, &a.Client, &a.Label, &status, &priority,
		&startDate, &endDate, &outsideHours, &a.BudgetEstimate, &a.BudgetRealized,
		&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("affair not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning affair: %w", err)
	}
	a.Status = domain.AffairStatus(status)
	a.Priority = domain.Priority(priority)
	a.OutsideHours = intToBool(outsideHours)

	var parseErr error
	a.StartDate, parseErr = time.Parse(dateLayout, startDate)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	a.EndDate, parseErr = time.Parse(dateLayout, endDate)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing end_date: %w", parseErr)
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
