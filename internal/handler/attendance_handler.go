package handler

import (
	"encoding/json"
	"net/http"

	"payroll-service/internal/middleware"
	"payroll-service/internal/model"
	"payroll-service/internal/service"
)

type AttendanceHandler struct {
	service *service.AttendanceService
}

func NewAttendanceHandler(svc *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: svc}
}

func (h *AttendanceHandler) Record(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	var payload model.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badJSON(w)
		return
	}

	record, err := h.service.Record(r.Context(), claims.Subject, payload.InTime, payload.OutTime)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, record)
}

func (h *AttendanceHandler) Today(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	record, found, err := h.service.Today(r.Context(), claims.Subject)
	if err != nil {
		writeError(w, err)
		return
	}

	if !found {
		writeSuccess(w, http.StatusOK, nil)
		return
	}
	writeSuccess(w, http.StatusOK, record)
}

func (h *AttendanceHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, records)
}
