package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dodibois40/atelier-planning/internal/db"
	"github.com/Dodibois40/atelier-planning/internal/domain"
)

const workerColumns = `id, name, role, color, available, contract, created_at, updated_at`

// SQLiteWorkerRepo implements WorkerRepo over a DBTX.
type SQLiteWorkerRepo struct {
	db db.DBTX
}

// NewSQLiteWorkerRepo creates a new SQLiteWorkerRepo.
func NewSQLiteWorkerRepo(conn db.DBTX) *SQLiteWorkerRepo {
	return &SQLiteWorkerRepo{db: conn}
}

func (r *SQLiteWorkerRepo) Create(ctx context.Context, w *domain.Worker) error {
	query := `INSERT INTO workers (` + workerColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.Name,
		string(w.Role),
		w.Color,
		boolToInt(w.Available),
		string(w.Contract),
		w.CreatedAt.Format(time.RFC3339),
		w.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting worker: %w", err)
	}
	return nil
}

func (r *SQLiteWorkerRepo) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = ?`
	return r.scanWorker(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteWorkerRepo) List(ctx context.Context, includeUnavailable bool) ([]*domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers`
	if !includeUnavailable {
		query += ` WHERE available = 1`
	}
	query += ` ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing workers: %w", err)
	}
	defer rows.Close()

	var out []*domain.Worker
	for rows.Next() {
		w, err := r.scanWorker(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *SQLiteWorkerRepo) Update(ctx context.Context, w *domain.Worker) error {
	query := `UPDATE workers SET name = ?, role = ?, color = ?, available = ?, contract = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.Name, string(w.Role), w.Color, boolToInt(w.Available), string(w.Contract),
		w.UpdatedAt.Format(time.RFC3339), w.ID)
	if err != nil {
		return fmt.Errorf("updating worker: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("worker %s not found", w.ID)
	}
	return nil
}

func (r *SQLiteWorkerRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM workers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting worker: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteWorkerRepo) scanWorker(row rowScanner) (*domain.Worker, error) {
	var w domain.Worker
	var role, contract, createdAt, updatedAt string
	var available int
	err := row.Scan(&w.ID, &w.Name, &role, &w.Color, &available, &contract, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("worker not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning worker: %w", err)
	}
	w.Role = domain.Role(role)
	w.Contract = domain.ContractType(contract)
	w.Available = intToBool(available)

	var parseErr error
	w.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	w.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &w, nil
}
