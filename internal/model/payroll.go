package model

import "time"

// Payroll is a historical record: once written it is never updated.
// TaxAmount and NetSalary are computed at creation time and stored so
// the history is reproducible even if the calculation rules change.
type Payroll struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employee_id"`
	BasicSalary float64   `json:"basic_salary"`
	Bonus       float64   `json:"bonus"`
	Deductions  float64   `json:"deductions"`
	TaxPercent  float64   `json:"tax_percent"`
	TaxAmount   float64   `json:"tax_amount"`
	NetSalary   float64   `json:"net_salary"`
	PaymentDate time.Time `json:"payment_date"`
	CreatedAt   time.Time `json:"created_at"`
}
