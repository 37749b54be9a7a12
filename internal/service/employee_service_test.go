package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"payroll-service/internal/model"
	"payroll-service/pkg/apierror"
)

func TestEmployeeService_Add(t *testing.T) {
	t.Run("hashes the password and returns the public view", func(t *testing.T) {
		employees := new(mockEmployeeStore)
		svc := NewEmployeeService(employees)

		employees.On("ExistsByEmail", mock.Anything, "kim@corp.test").Return(false, nil)
		employees.On("Create", mock.Anything, "Kim", "kim@corp.test", "555-0101",
			mock.MatchedBy(func(hash string) bool {
				return bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2")) == nil
			})).
			Return(model.Employee{ID: 3, Name: "Kim", Email: "kim@corp.test", Phone: "555-0101", PasswordHash: "x"}, nil)

		got, err := svc.Add(context.Background(), model.AddEmployeeRequest{
			Name: "Kim", Email: "kim@corp.test", Password: "hunter2", Phone: "555-0101",
		})
		require.NoError(t, err)
		assert.Equal(t, model.PublicEmployee{ID: 3, Name: "Kim", Email: "kim@corp.test", Phone: "555-0101"}, got)
	})

	t.Run("duplicate email", func(t *testing.T) {
		employees := new(mockEmployeeStore)
		svc := NewEmployeeService(employees)

		employees.On("ExistsByEmail", mock.Anything, "kim@corp.test").Return(true, nil)

		_, err := svc.Add(context.Background(), model.AddEmployeeRequest{
			Name: "Kim", Email: "kim@corp.test", Password: "hunter2",
		})
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "EMAIL_TAKEN", apiErr.Code)
		employees.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewEmployeeService(new(mockEmployeeStore))

		_, err := svc.Add(context.Background(), model.AddEmployeeRequest{Name: "Kim"})
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	t.Run("same email skips the uniqueness check", func(t *testing.T) {
		employees := new(mockEmployeeStore)
		svc := NewEmployeeService(employees)

		employees.On("FindByID", mock.Anything, int64(3)).
			Return(model.Employee{ID: 3, Name: "Kim", Email: "Kim@Corp.Test"}, nil)
		employees.On("Update", mock.Anything, int64(3), "Kim L", "kim@corp.test", "555-0102").Return(nil)

		got, err := svc.Update(context.Background(), 3, model.UpdateEmployeeRequest{
			Name: "Kim L", Email: "kim@corp.test", Phone: "555-0102",
		})
		require.NoError(t, err)
		assert.Equal(t, "Kim L", got.Name)
		employees.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	})

	t.Run("changed email must be free", func(t *testing.T) {
		employees := new(mockEmployeeStore)
		svc := NewEmployeeService(employees)

		employees.On("FindByID", mock.Anything, int64(3)).
			Return(model.Employee{ID: 3, Name: "Kim", Email: "kim@corp.test"}, nil)
		employees.On("ExistsByEmail", mock.Anything, "taken@corp.test").Return(true, nil)

		_, err := svc.Update(context.Background(), 3, model.UpdateEmployeeRequest{
			Name: "Kim", Email: "taken@corp.test",
		})
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "EMAIL_TAKEN", apiErr.Code)
		employees.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown employee", func(t *testing.T) {
		employees := new(mockEmployeeStore)
		svc := NewEmployeeService(employees)

		employees.On("FindByID", mock.Anything, int64(99)).
			Return(model.Employee{}, apierror.New("NOT_FOUND", "employee not found", "99", 404))

		_, err := svc.Update(context.Background(), 99, model.UpdateEmployeeRequest{
			Name: "X", Email: "x@corp.test",
		})
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "NOT_FOUND", apiErr.Code)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	employees := new(mockEmployeeStore)
	svc := NewEmployeeService(employees)

	employees.On("Delete", mock.Anything, int64(99)).
		Return(apierror.New("NOT_FOUND", "employee not found", "99", 404))

	err := svc.Delete(context.Background(), 99)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}
