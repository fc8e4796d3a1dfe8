package handler

import (
	"encoding/json"
	"net/http"

	"attendance.service/internal/core"
	"attendance.service/internal/core/model"
	"github.com/gorilla/mux"
)

type SupervisorHandler struct {
	Service *core.SupervisorService
}

type decisionRequest struct {
	Decision model.AttendanceStatus `json:"decision"`
}

func (h *SupervisorHandler) PendingQueue(w http.ResponseWriter, r *http.Request) {
	supervisorID := mux.Vars(r)["supervisorId"]

	records, err := h.Service.PendingQueue(r.Context(), supervisorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *SupervisorHandler) History(w http.ResponseWriter, r *http.Request) {
	supervisorID := mux.Vars(r)["supervisorId"]

	defaultStart, defaultEnd := h.Service.DefaultHistoryRange()
	start, end, err := dateRange(r, defaultStart, defaultEnd)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "dates must be YYYY-MM-DD"})
		return
	}

	records, err := h.Service.History(r.Context(), supervisorID, start, end)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *SupervisorHandler) Decide(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	supervisorID := vars["supervisorId"]
	recordID := vars["recordId"]

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.Service.Decide(r.Context(), supervisorID, recordID, req.Decision)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
