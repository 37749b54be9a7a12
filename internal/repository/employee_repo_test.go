package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-service/internal/repository"
	"payroll-service/pkg/apierror"
)

var employeeCols = []string{"id", "name", "email", "phone", "password_hash", "created_at", "updated_at"}

func newEmployeeRepo(t *testing.T) (*repository.EmployeeRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return repository.NewEmployeeRepository(mock), mock
}

func TestEmployeeRepository_FindByEmail(t *testing.T) {
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		repo, mock := newEmployeeRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE lower(email) = lower($1)")).
			WithArgs("jane@corp.test").
			WillReturnRows(pgxmock.NewRows(employeeCols).
				AddRow(int64(42), "Jane", "jane@corp.test", "555-0100", "hash", now, now))

		e, err := repo.FindByEmail(context.Background(), "jane@corp.test")
		require.NoError(t, err)
		assert.Equal(t, int64(42), e.ID)
		assert.Equal(t, "Jane", e.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows maps to NOT_FOUND", func(t *testing.T) {
		repo, mock := newEmployeeRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE lower(email) = lower($1)")).
			WithArgs("ghost@corp.test").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByEmail(context.Background(), "ghost@corp.test")
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "NOT_FOUND", apiErr.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmployeeRepository_FindByID(t *testing.T) {
	repo, mock := newEmployeeRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(employeeCols).
			AddRow(int64(7), "Kim", "kim@corp.test", "", "hash", now, now))

	e, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "kim@corp.test", e.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create(t *testing.T) {
	repo, mock := newEmployeeRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees")).
		WithArgs("Kim", "kim@corp.test", "555-0101", "hash", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(employeeCols).
			AddRow(int64(3), "Kim", "kim@corp.test", "555-0101", "hash", now, now))

	e, err := repo.Create(context.Background(), "Kim", "kim@corp.test", "555-0101", "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(3), e.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Update(t *testing.T) {
	t.Run("updates one row", func(t *testing.T) {
		repo, mock := newEmployeeRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE employees SET")).
			WithArgs(int64(3), "Kim L", "kim@corp.test", "555-0102", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Update(context.Background(), 3, "Kim L", "kim@corp.test", "555-0102")
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows maps to NOT_FOUND", func(t *testing.T) {
		repo, mock := newEmployeeRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE employees SET")).
			WithArgs(int64(99), "X", "x@corp.test", "", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Update(context.Background(), 99, "X", "x@corp.test", "")
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "NOT_FOUND", apiErr.Code)
	})
}

func TestEmployeeRepository_Delete(t *testing.T) {
	t.Run("deletes one row", func(t *testing.T) {
		repo, mock := newEmployeeRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.Delete(context.Background(), 3))
	})

	t.Run("zero rows maps to NOT_FOUND", func(t *testing.T) {
		repo, mock := newEmployeeRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = $1")).
			WithArgs(int64(99)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.Delete(context.Background(), 99)
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "NOT_FOUND", apiErr.Code)
	})
}

func TestEmployeeRepository_List(t *testing.T) {
	repo, mock := newEmployeeRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, phone FROM employees ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "phone"}).
			AddRow(int64(1), "Jane", "jane@corp.test", "555-0100").
			AddRow(int64(2), "Kim", "kim@corp.test", ""))

	employees, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Jane", employees[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_ExistsByEmail(t *testing.T) {
	repo, mock := newEmployeeRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("jane@corp.test").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "jane@corp.test")
	require.NoError(t, err)
	assert.True(t, exists)
}
