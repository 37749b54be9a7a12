package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"payroll-service/internal/model"
)

type AttendanceRepository struct {
	db Database
}

func NewAttendanceRepository(db Database) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert writes the day's attendance, overwriting any earlier submission
// for the same employee and date.
func (r *AttendanceRepository) Upsert(ctx context.Context, a model.Attendance) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO attendance (employee_id, date, in_time, out_time)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (employee_id, date) DO UPDATE SET in_time = $3, out_time = $4`,
		a.EmployeeID, a.Date, a.InTime, a.OutTime)
	if err != nil {
		return fmt.Errorf("upsert attendance: %w", err)
	}
	return nil
}

// FindForDate returns the row for the given day, or ok=false when the
// employee has not checked in yet.
func (r *AttendanceRepository) FindForDate(ctx context.Context, employeeID int64, date time.Time) (model.Attendance, bool, error) {
	var a model.Attendance
	err := r.db.QueryRow(ctx,
		`SELECT employee_id, date, in_time, out_time
		 FROM attendance WHERE employee_id = $1 AND date = $2`, employeeID, date).
		Scan(&a.EmployeeID, &a.Date, &a.InTime, &a.OutTime)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Attendance{}, false, nil
	}
	if err != nil {
		return model.Attendance{}, false, fmt.Errorf("find attendance: %w", err)
	}
	return a, true, nil
}

func (r *AttendanceRepository) ListAll(ctx context.Context) ([]model.AttendanceRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.employee_id, a.date, a.in_time, a.out_time, e.name
		 FROM attendance a
		 JOIN employees e ON a.employee_id = e.id
		 ORDER BY a.date DESC, e.name`)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]model.AttendanceRecord, 0)
	for rows.Next() {
		var rec model.AttendanceRecord
		if err := rows.Scan(&rec.EmployeeID, &rec.Date, &rec.InTime, &rec.OutTime, &rec.EmployeeName); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
