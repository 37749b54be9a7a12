package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"payroll-service/internal/model"
	"payroll-service/pkg/apierror"
)

// AttendanceStore is the persistence surface for daily attendance rows.
type AttendanceStore interface {
	Upsert(ctx context.Context, a model.Attendance) error
	FindForDate(ctx context.Context, employeeID int64, date time.Time) (model.Attendance, bool, error)
	ListAll(ctx context.Context) ([]model.AttendanceRecord, error)
}

// AttendanceService records check-in/check-out times, one row per
// employee per day. The server is the source of truth; any client-side
// cache is cosmetic.
type AttendanceService struct {
	attendance AttendanceStore
	now        func() time.Time
}

func NewAttendanceService(attendance AttendanceStore) *AttendanceService {
	return &AttendanceService{attendance: attendance, now: time.Now}
}

// Record upserts today's attendance. An out time without an in time is
// rejected; when both are present the out time must not precede the in
// time.
func (s *AttendanceService) Record(ctx context.Context, employeeID int64, inTime, outTime string) (model.Attendance, error) {
	inTime = strings.TrimSpace(inTime)
	outTime = strings.TrimSpace(outTime)

	if inTime == "" {
		return model.Attendance{}, apierror.New("VALIDATION_ERROR", "inTime is required", "inTime", http.StatusBadRequest)
	}

	in, err := time.Parse("15:04", inTime)
	if err != nil {
		return model.Attendance{}, apierror.New("VALIDATION_ERROR", "inTime must be HH:MM", inTime, http.StatusBadRequest)
	}

	if outTime != "" {
		out, err := time.Parse("15:04", outTime)
		if err != nil {
			return model.Attendance{}, apierror.New("VALIDATION_ERROR", "outTime must be HH:MM", outTime, http.StatusBadRequest)
		}
		if out.Before(in) {
			return model.Attendance{}, apierror.New("VALIDATION_ERROR", "outTime cannot be before inTime", outTime, http.StatusBadRequest)
		}
	}

	record := model.Attendance{
		EmployeeID: employeeID,
		Date:       s.today(),
		InTime:     inTime,
		OutTime:    outTime,
	}

	if err := s.attendance.Upsert(ctx, record); err != nil {
		return model.Attendance{}, err
	}
	return record, nil
}

// Today returns the caller's attendance row for the current day, or
// ok=false when nothing has been recorded yet.
func (s *AttendanceService) Today(ctx context.Context, employeeID int64) (model.Attendance, bool, error) {
	return s.attendance.FindForDate(ctx, employeeID, s.today())
}

func (s *AttendanceService) ListAll(ctx context.Context) ([]model.AttendanceRecord, error) {
	return s.attendance.ListAll(ctx)
}

func (s *AttendanceService) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}
