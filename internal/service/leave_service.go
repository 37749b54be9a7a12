package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"payroll-service/internal/model"
	"payroll-service/pkg/apierror"
)

// LeaveStore is the persistence surface of the leave workflow.
type LeaveStore interface {
	Create(ctx context.Context, employeeID int64, date time.Time, reason string) (model.Leave, error)
	FindByID(ctx context.Context, id int64) (model.Leave, error)
	UpdateStatus(ctx context.Context, id int64, status model.LeaveStatus) (bool, error)
	ListPending(ctx context.Context) ([]model.PendingLeave, error)
	CountPending(ctx context.Context) (int, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]model.Leave, error)
}

// LeaveService owns the Pending → Approved/Rejected state machine.
type LeaveService struct {
	leaves LeaveStore
	now    func() time.Time
}

func NewLeaveService(leaves LeaveStore) *LeaveService {
	return &LeaveService{leaves: leaves, now: time.Now}
}

// Submit creates a Pending request. Dates before today are rejected
// here, at the server boundary, rather than trusting the client form.
func (s *LeaveService) Submit(ctx context.Context, employeeID int64, dateRaw string, reason string) (model.Leave, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return model.Leave{}, apierror.New("VALIDATION_ERROR", "reason is required", "reason", http.StatusBadRequest)
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(dateRaw))
	if err != nil {
		return model.Leave{}, apierror.New("VALIDATION_ERROR", "date must be YYYY-MM-DD", dateRaw, http.StatusBadRequest)
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return model.Leave{}, apierror.New("VALIDATION_ERROR", "leave date cannot be in the past", dateRaw, http.StatusBadRequest)
	}

	return s.leaves.Create(ctx, employeeID, date, reason)
}

func (s *LeaveService) ListPending(ctx context.Context) ([]model.PendingLeave, error) {
	return s.leaves.ListPending(ctx)
}

func (s *LeaveService) CountPending(ctx context.Context) (int, error) {
	return s.leaves.CountPending(ctx)
}

// SetStatus resolves a pending request. Only Pending → Approved and
// Pending → Rejected are legal; resolving an already-resolved request
// returns CONFLICT so an admin cannot silently flip a decision.
func (s *LeaveService) SetStatus(ctx context.Context, id int64, statusRaw string) (model.Leave, error) {
	status, ok := model.ParseLeaveStatus(strings.TrimSpace(statusRaw))
	if !ok || !status.Terminal() {
		return model.Leave{}, apierror.New("VALIDATION_ERROR", "status must be Approved or Rejected", statusRaw, http.StatusBadRequest)
	}

	leave, err := s.leaves.FindByID(ctx, id)
	if err != nil {
		return model.Leave{}, err
	}

	updated, err := s.leaves.UpdateStatus(ctx, id, status)
	if err != nil {
		return model.Leave{}, err
	}
	if !updated {
		// Lost the race or the request was already terminal.
		return model.Leave{}, apierror.New("CONFLICT", "leave request is already resolved", string(leave.Status), http.StatusConflict)
	}

	leave.Status = status
	return leave, nil
}

func (s *LeaveService) ListMine(ctx context.Context, employeeID int64) ([]model.Leave, error) {
	return s.leaves.ListByEmployee(ctx, employeeID)
}
