package service

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"payroll-service/internal/model"
	"payroll-service/pkg/apierror"
)

// PayrollStore is the payroll persistence surface: insert-only plus the
// per-employee history read.
type PayrollStore interface {
	Create(ctx context.Context, p model.Payroll) (model.Payroll, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]model.Payroll, error)
}

// PayrollFigures is the output of the payroll calculation.
type PayrollFigures struct {
	TaxAmount float64 `json:"tax_amount"`
	NetSalary float64 `json:"net_salary"`
}

// ComputePayroll applies the tax rules:
//
//	taxAmount = (basic + bonus) * taxPercent / 100
//	netSalary = (basic + bonus) - deductions - taxAmount
//
// Amounts are rounded to cents. A negative net salary is legal; callers
// display it rather than reject it.
func ComputePayroll(basicSalary, bonus, deductions, taxPercent float64) (PayrollFigures, error) {
	switch {
	case basicSalary < 0:
		return PayrollFigures{}, apierror.New("VALIDATION_ERROR", "basic salary cannot be negative", "basicSalary", http.StatusBadRequest)
	case bonus < 0:
		return PayrollFigures{}, apierror.New("VALIDATION_ERROR", "bonus cannot be negative", "bonus", http.StatusBadRequest)
	case deductions < 0:
		return PayrollFigures{}, apierror.New("VALIDATION_ERROR", "deductions cannot be negative", "deductions", http.StatusBadRequest)
	case taxPercent < 0 || taxPercent > 100:
		return PayrollFigures{}, apierror.New("VALIDATION_ERROR", "tax percent must be between 0 and 100", "taxPercent", http.StatusBadRequest)
	}

	taxable := basicSalary + bonus
	taxAmount := roundCents(taxable * taxPercent / 100)
	netSalary := roundCents(taxable - deductions - taxAmount)

	return PayrollFigures{TaxAmount: taxAmount, NetSalary: netSalary}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

type PayrollService struct {
	payrolls  PayrollStore
	employees EmployeeStore
}

func NewPayrollService(payrolls PayrollStore, employees EmployeeStore) *PayrollService {
	return &PayrollService{payrolls: payrolls, employees: employees}
}

// Create computes and persists a payroll record for an existing
// employee. The stored figures are final: this is append-only history.
func (s *PayrollService) Create(ctx context.Context, req model.CreatePayrollRequest) (model.Payroll, error) {
	if req.EmployeeID <= 0 {
		return model.Payroll{}, apierror.New("VALIDATION_ERROR", "employeeId is required", "employeeId", http.StatusBadRequest)
	}

	figures, err := ComputePayroll(req.BasicSalary, req.Bonus, req.Deductions, req.TaxPercent)
	if err != nil {
		return model.Payroll{}, err
	}

	if _, err := s.employees.FindByID(ctx, req.EmployeeID); err != nil {
		return model.Payroll{}, err
	}

	paymentDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.PaymentDate != "" {
		paymentDate, err = time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			return model.Payroll{}, apierror.New("VALIDATION_ERROR", "paymentDate must be YYYY-MM-DD", req.PaymentDate, http.StatusBadRequest)
		}
	}

	record := model.Payroll{
		EmployeeID:  req.EmployeeID,
		BasicSalary: req.BasicSalary,
		Bonus:       req.Bonus,
		Deductions:  req.Deductions,
		TaxPercent:  req.TaxPercent,
		TaxAmount:   figures.TaxAmount,
		NetSalary:   figures.NetSalary,
		PaymentDate: paymentDate,
	}

	created, err := s.payrolls.Create(ctx, record)
	if err != nil {
		return model.Payroll{}, fmt.Errorf("persist payroll: %w", err)
	}
	return created, nil
}

func (s *PayrollService) HistoryFor(ctx context.Context, employeeID int64) ([]model.Payroll, error) {
	return s.payrolls.ListByEmployee(ctx, employeeID)
}
