package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"payroll-service/internal/model"
)

type mockAdminStore struct {
	mock.Mock
}

func (m *mockAdminStore) FindByUsername(ctx context.Context, username string) (model.Admin, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.Admin), args.Error(1)
}

type mockEmployeeStore struct {
	mock.Mock
}

func (m *mockEmployeeStore) FindByID(ctx context.Context, id int64) (model.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Employee), args.Error(1)
}

func (m *mockEmployeeStore) FindByEmail(ctx context.Context, email string) (model.Employee, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Employee), args.Error(1)
}

func (m *mockEmployeeStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockEmployeeStore) Create(ctx context.Context, name, email, phone, passwordHash string) (model.Employee, error) {
	args := m.Called(ctx, name, email, phone, passwordHash)
	return args.Get(0).(model.Employee), args.Error(1)
}

func (m *mockEmployeeStore) Update(ctx context.Context, id int64, name, email, phone string) error {
	args := m.Called(ctx, id, name, email, phone)
	return args.Error(0)
}

func (m *mockEmployeeStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockEmployeeStore) List(ctx context.Context) ([]model.PublicEmployee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.PublicEmployee), args.Error(1)
}

func (m *mockEmployeeStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockLeaveStore struct {
	mock.Mock
}

func (m *mockLeaveStore) Create(ctx context.Context, employeeID int64, date time.Time, reason string) (model.Leave, error) {
	args := m.Called(ctx, employeeID, date, reason)
	return args.Get(0).(model.Leave), args.Error(1)
}

func (m *mockLeaveStore) FindByID(ctx context.Context, id int64) (model.Leave, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Leave), args.Error(1)
}

func (m *mockLeaveStore) UpdateStatus(ctx context.Context, id int64, status model.LeaveStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *mockLeaveStore) ListPending(ctx context.Context) ([]model.PendingLeave, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.PendingLeave), args.Error(1)
}

func (m *mockLeaveStore) CountPending(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockLeaveStore) ListByEmployee(ctx context.Context, employeeID int64) ([]model.Leave, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]model.Leave), args.Error(1)
}

type mockPayrollStore struct {
	mock.Mock
}

func (m *mockPayrollStore) Create(ctx context.Context, p model.Payroll) (model.Payroll, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.Payroll), args.Error(1)
}

func (m *mockPayrollStore) ListByEmployee(ctx context.Context, employeeID int64) ([]model.Payroll, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]model.Payroll), args.Error(1)
}

type mockAttendanceStore struct {
	mock.Mock
}

func (m *mockAttendanceStore) Upsert(ctx context.Context, a model.Attendance) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAttendanceStore) FindForDate(ctx context.Context, employeeID int64, date time.Time) (model.Attendance, bool, error) {
	args := m.Called(ctx, employeeID, date)
	return args.Get(0).(model.Attendance), args.Bool(1), args.Error(2)
}

func (m *mockAttendanceStore) ListAll(ctx context.Context) ([]model.AttendanceRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.AttendanceRecord), args.Error(1)
}
