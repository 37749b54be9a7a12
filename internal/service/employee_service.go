package service

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"payroll-service/internal/model"
	"payroll-service/pkg/apierror"
)

// EmployeeService is the admin-facing CRUD over employee records.
type EmployeeService struct {
	employees EmployeeStore
}

func NewEmployeeService(employees EmployeeStore) *EmployeeService {
	return &EmployeeService{employees: employees}
}

func (s *EmployeeService) List(ctx context.Context) ([]model.PublicEmployee, error) {
	return s.employees.List(ctx)
}

func (s *EmployeeService) Count(ctx context.Context) (int, error) {
	return s.employees.Count(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (model.PublicEmployee, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return model.PublicEmployee{}, err
	}
	return employee.Public(), nil
}

func (s *EmployeeService) Add(ctx context.Context, req model.AddEmployeeRequest) (model.PublicEmployee, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	if name == "" || email == "" || req.Password == "" {
		return model.PublicEmployee{}, apierror.New("VALIDATION_ERROR", "name, email and password are required", "", http.StatusBadRequest)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return model.PublicEmployee{}, apierror.New("VALIDATION_ERROR", "invalid email address", email, http.StatusBadRequest)
	}

	taken, err := s.employees.ExistsByEmail(ctx, email)
	if err != nil {
		return model.PublicEmployee{}, err
	}
	if taken {
		return model.PublicEmployee{}, apierror.New("EMAIL_TAKEN", "email already registered", email, http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return model.PublicEmployee{}, fmt.Errorf("hash password: %w", err)
	}

	employee, err := s.employees.Create(ctx, name, email, phone, string(hash))
	if err != nil {
		return model.PublicEmployee{}, err
	}
	return employee.Public(), nil
}

func (s *EmployeeService) Update(ctx context.Context, id int64, req model.UpdateEmployeeRequest) (model.PublicEmployee, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	if name == "" || email == "" {
		return model.PublicEmployee{}, apierror.New("VALIDATION_ERROR", "name and email are required", "", http.StatusBadRequest)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return model.PublicEmployee{}, apierror.New("VALIDATION_ERROR", "invalid email address", email, http.StatusBadRequest)
	}

	current, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return model.PublicEmployee{}, err
	}

	// Email uniqueness only matters when the address actually changes.
	if !strings.EqualFold(current.Email, email) {
		taken, err := s.employees.ExistsByEmail(ctx, email)
		if err != nil {
			return model.PublicEmployee{}, err
		}
		if taken {
			return model.PublicEmployee{}, apierror.New("EMAIL_TAKEN", "email already registered", email, http.StatusBadRequest)
		}
	}

	if err := s.employees.Update(ctx, id, name, email, phone); err != nil {
		return model.PublicEmployee{}, err
	}

	return model.PublicEmployee{ID: id, Name: name, Email: email, Phone: phone}, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return s.employees.Delete(ctx, id)
}
