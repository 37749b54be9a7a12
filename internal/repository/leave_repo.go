package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"payroll-service/internal/model"
	"payroll-service/pkg/apierror"
)

type LeaveRepository struct {
	db Database
}

func NewLeaveRepository(db Database) *LeaveRepository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) Create(ctx context.Context, employeeID int64, date time.Time, reason string) (model.Leave, error) {
	var l model.Leave
	var status string
	err := r.db.QueryRow(ctx,
		`INSERT INTO leaves (employee_id, date, reason)
		 VALUES ($1, $2, $3)
		 RETURNING id, employee_id, date, reason, status, created_at`,
		employeeID, date, reason).
		Scan(&l.ID, &l.EmployeeID, &l.Date, &l.Reason, &status, &l.CreatedAt)
	if err != nil {
		return model.Leave{}, fmt.Errorf("create leave: %w", err)
	}
	l.Status = model.LeaveStatus(status)
	return l, nil
}

func (r *LeaveRepository) FindByID(ctx context.Context, id int64) (model.Leave, error) {
	var l model.Leave
	var status string
	err := r.db.QueryRow(ctx,
		`SELECT id, employee_id, date, reason, status, created_at
		 FROM leaves WHERE id = $1`, id).
		Scan(&l.ID, &l.EmployeeID, &l.Date, &l.Reason, &status, &l.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Leave{}, apierror.New("NOT_FOUND", "leave request not found", strconv.FormatInt(id, 10), http.StatusNotFound)
	}
	if err != nil {
		return model.Leave{}, fmt.Errorf("find leave by id: %w", err)
	}
	l.Status = model.LeaveStatus(status)
	return l, nil
}

// UpdateStatus flips a pending request to its terminal state. The WHERE
// clause guards the Pending-only transition at the database level so
// concurrent admin decisions cannot double-apply.
func (r *LeaveRepository) UpdateStatus(ctx context.Context, id int64, status model.LeaveStatus) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE leaves SET status = $2 WHERE id = $1 AND status = 'Pending'`,
		id, string(status))
	if err != nil {
		return false, fmt.Errorf("update leave status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *LeaveRepository) ListPending(ctx context.Context) ([]model.PendingLeave, error) {
	rows, err := r.db.Query(ctx,
		`SELECT l.id, l.employee_id, l.date, l.reason, l.status, l.created_at,
		        e.name, e.email
		 FROM leaves l
		 JOIN employees e ON l.employee_id = e.id
		 WHERE l.status = 'Pending'
		 ORDER BY l.date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list pending leaves: %w", err)
	}
	defer rows.Close()

	leaves := make([]model.PendingLeave, 0)
	for rows.Next() {
		var l model.PendingLeave
		var status string
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.Date, &l.Reason, &status, &l.CreatedAt,
			&l.EmployeeName, &l.EmployeeEmail); err != nil {
			return nil, fmt.Errorf("scan pending leave: %w", err)
		}
		l.Status = model.LeaveStatus(status)
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

func (r *LeaveRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM leaves WHERE status = 'Pending'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending leaves: %w", err)
	}
	return count, nil
}

func (r *LeaveRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]model.Leave, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, employee_id, date, reason, status, created_at
		 FROM leaves WHERE employee_id = $1 ORDER BY date DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list leaves by employee: %w", err)
	}
	defer rows.Close()

	leaves := make([]model.Leave, 0)
	for rows.Next() {
		var l model.Leave
		var status string
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.Date, &l.Reason, &status, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan leave: %w", err)
		}
		l.Status = model.LeaveStatus(status)
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}
