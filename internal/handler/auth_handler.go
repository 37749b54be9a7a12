package handler

import (
	"encoding/json"
	"net/http"

	"payroll-service/internal/metrics"
	"payroll-service/internal/model"
	"payroll-service/internal/service"
)

type AuthHandler struct {
	service *service.AuthService
	metrics *metrics.Metrics
}

func NewAuthHandler(svc *service.AuthService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{service: svc, metrics: m}
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badJSON(w)
		return
	}

	resp, err := h.service.LoginAdmin(r.Context(), payload.Username, payload.Password)
	if err != nil {
		h.metrics.LoginAttempts.WithLabelValues("admin", "failure").Inc()
		writeError(w, err)
		return
	}

	h.metrics.LoginAttempts.WithLabelValues("admin", "success").Inc()
	writeSuccess(w, http.StatusOK, resp)
}

func (h *AuthHandler) EmployeeLogin(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.EmployeeLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badJSON(w)
		return
	}

	resp, err := h.service.LoginEmployee(r.Context(), payload.Email, payload.Password)
	if err != nil {
		h.metrics.LoginAttempts.WithLabelValues("employee", "failure").Inc()
		writeError(w, err)
		return
	}

	h.metrics.LoginAttempts.WithLabelValues("employee", "success").Inc()
	writeSuccess(w, http.StatusOK, resp)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badJSON(w)
		return
	}

	employee, err := h.service.SignupEmployee(r.Context(), payload.Name, payload.Email, payload.Password, payload.Phone)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, employee)
}
