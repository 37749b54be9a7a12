package handler

import (
	"encoding/json"
	"net/http"

	"payroll-service/internal/metrics"
	"payroll-service/internal/middleware"
	"payroll-service/internal/model"
	"payroll-service/internal/service"
)

type PayrollHandler struct {
	service *service.PayrollService
	metrics *metrics.Metrics
}

func NewPayrollHandler(svc *service.PayrollService, m *metrics.Metrics) *PayrollHandler {
	return &PayrollHandler{service: svc, metrics: m}
}

func (h *PayrollHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badJSON(w)
		return
	}

	payroll, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	h.metrics.PayrollsCreated.Inc()
	writeSuccess(w, http.StatusCreated, payroll)
}

// History serves the payroll records of one employee. Admins may read
// anyone's history; an employee may only read their own.
func (h *PayrollHandler) History(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	employeeID, err := idParam(r, "employeeId")
	if err != nil {
		writeError(w, err)
		return
	}

	if claims.Role != model.RoleAdmin && claims.Subject != employeeID {
		writeError(w, model.ErrForbidden)
		return
	}

	payrolls, err := h.service.HistoryFor(r.Context(), employeeID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, payrolls)
}
