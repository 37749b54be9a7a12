package handler

import (
	"encoding/json"
	"net/http"

	"payroll-service/internal/metrics"
	"payroll-service/internal/middleware"
	"payroll-service/internal/model"
	"payroll-service/internal/service"
)

type LeaveHandler struct {
	service *service.LeaveService
	metrics *metrics.Metrics
}

func NewLeaveHandler(svc *service.LeaveService, m *metrics.Metrics) *LeaveHandler {
	return &LeaveHandler{service: svc, metrics: m}
}

// Submit creates a leave request for the authenticated employee; the
// employee id comes from the token, never from the body.
func (h *LeaveHandler) Submit(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	var payload model.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badJSON(w)
		return
	}

	leave, err := h.service.Submit(r.Context(), claims.Subject, payload.Date, payload.Reason)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, leave)
}

func (h *LeaveHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.service.ListPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, leaves)
}

func (h *LeaveHandler) CountPending(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]int{"count": count})
}

func (h *LeaveHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.SetLeaveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badJSON(w)
		return
	}

	leave, err := h.service.SetStatus(r.Context(), id, payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	h.metrics.LeaveDecisions.WithLabelValues(string(leave.Status)).Inc()
	writeSuccess(w, http.StatusOK, leave)
}

func (h *LeaveHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	leaves, err := h.service.ListMine(r.Context(), claims.Subject)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, leaves)
}
