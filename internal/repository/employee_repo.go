package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"payroll-service/internal/model"
	"payroll-service/pkg/apierror"
)

type EmployeeRepository struct {
	db Database
}

func NewEmployeeRepository(db Database) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (model.Employee, error) {
	var e model.Employee
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, phone, password_hash, created_at, updated_at
		 FROM employees WHERE id = $1`, id).
		Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.PasswordHash, &e.CreatedAt, &e.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Employee{}, apierror.New("NOT_FOUND", "employee not found", strconv.FormatInt(id, 10), http.StatusNotFound)
	}
	if err != nil {
		return model.Employee{}, fmt.Errorf("find employee by id: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (model.Employee, error) {
	var e model.Employee
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, phone, password_hash, created_at, updated_at
		 FROM employees WHERE lower(email) = lower($1)`, strings.TrimSpace(email)).
		Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.PasswordHash, &e.CreatedAt, &e.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Employee{}, apierror.New("NOT_FOUND", "employee not found", email, http.StatusNotFound)
	}
	if err != nil {
		return model.Employee{}, fmt.Errorf("find employee by email: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE lower(email) = lower($1))`,
		strings.TrimSpace(email)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, name, email, phone, passwordHash string) (model.Employee, error) {
	now := time.Now().UTC()

	var e model.Employee
	err := r.db.QueryRow(ctx,
		`INSERT INTO employees (name, email, phone, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)
		 RETURNING id, name, email, phone, password_hash, created_at, updated_at`,
		name, email, phone, passwordHash, now).
		Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.PasswordHash, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return model.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id int64, name, email, phone string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE employees SET name = $2, email = $3, phone = $4, updated_at = $5 WHERE id = $1`,
		id, name, email, phone, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New("NOT_FOUND", "employee not found", strconv.FormatInt(id, 10), http.StatusNotFound)
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New("NOT_FOUND", "employee not found", strconv.FormatInt(id, 10), http.StatusNotFound)
	}
	return nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]model.PublicEmployee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, phone FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]model.PublicEmployee, 0)
	for rows.Next() {
		var e model.PublicEmployee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return count, nil
}
