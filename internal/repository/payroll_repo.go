package repository

import (
	"context"
	"fmt"

	"payroll-service/internal/model"
)

type PayrollRepository struct {
	db Database
}

func NewPayrollRepository(db Database) *PayrollRepository {
	return &PayrollRepository{db: db}
}

// Create inserts a payroll record. There is deliberately no update or
// delete: payroll rows are immutable history.
func (r *PayrollRepository) Create(ctx context.Context, p model.Payroll) (model.Payroll, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO payrolls (employee_id, basic_salary, bonus, deductions, tax_percent, tax_amount, net_salary, payment_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		p.EmployeeID, p.BasicSalary, p.Bonus, p.Deductions, p.TaxPercent, p.TaxAmount, p.NetSalary, p.PaymentDate).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return model.Payroll{}, fmt.Errorf("create payroll: %w", err)
	}
	return p, nil
}

func (r *PayrollRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]model.Payroll, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, employee_id, basic_salary, bonus, deductions, tax_percent, tax_amount, net_salary, payment_date, created_at
		 FROM payrolls WHERE employee_id = $1 ORDER BY payment_date DESC, id DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list payrolls by employee: %w", err)
	}
	defer rows.Close()

	payrolls := make([]model.Payroll, 0)
	for rows.Next() {
		var p model.Payroll
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.BasicSalary, &p.Bonus, &p.Deductions,
			&p.TaxPercent, &p.TaxAmount, &p.NetSalary, &p.PaymentDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	return payrolls, rows.Err()
}
