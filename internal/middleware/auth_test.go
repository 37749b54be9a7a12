package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-service/internal/model"
)

type stubValidator struct {
	claims *model.AuthClaims
	err    error
}

func (s *stubValidator) ValidateToken(string) (*model.AuthClaims, error) {
	return s.claims, s.err
}

func okHandler(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) model.APIResponse {
	t.Helper()

	var resp model.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRequireAuth(t *testing.T) {
	adminClaims := &model.AuthClaims{Subject: 1, Role: model.RoleAdmin, Name: "admin"}

	t.Run("valid token puts claims in context", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidator{claims: adminClaims})

		var got *model.AuthClaims
		handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			require.True(t, ok)
			got = claims
		}))

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, int64(1), got.Subject)
		assert.Equal(t, model.RoleAdmin, got.Role)
	})

	t.Run("missing header is 401", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidator{claims: adminClaims})

		var hit bool
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		rec := httptest.NewRecorder()
		mw.RequireAuth(okHandler(&hit)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, hit)

		resp := decodeEnvelope(t, rec)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
	})

	t.Run("non-bearer scheme is 401", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidator{claims: adminClaims})

		var hit bool
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		mw.RequireAuth(okHandler(&hit)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, hit)
	})

	t.Run("rejected token is 401", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidator{err: errors.New("bad signature")})

		var hit bool
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		mw.RequireAuth(okHandler(&hit)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, hit)
	})
}

func TestRequireRole(t *testing.T) {
	employeeClaims := &model.AuthClaims{Subject: 42, Role: model.RoleEmployee, Name: "Jane"}

	t.Run("matching role passes", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidator{claims: employeeClaims})

		var hit bool
		handler := mw.RequireAuth(mw.RequireRole(model.RoleEmployee)(okHandler(&hit)))

		req := httptest.NewRequest(http.MethodGet, "/leaves/mine", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, hit)
	})

	t.Run("employee token on an admin route is 403", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidator{claims: employeeClaims})

		var hit bool
		handler := mw.RequireAuth(mw.RequireRole(model.RoleAdmin)(okHandler(&hit)))

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, hit)

		resp := decodeEnvelope(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "FORBIDDEN", resp.Error.Code)
	})

	t.Run("role check without auth is 401", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidator{claims: employeeClaims})

		var hit bool
		handler := mw.RequireRole(model.RoleAdmin)(okHandler(&hit))

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, hit)
	})
}
