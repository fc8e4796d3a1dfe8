package handler

import (
	"encoding/json"
	"net/http"

	"attendance.service/internal/core"
	"github.com/gorilla/mux"
)

type WorkerHandler struct {
	Service *core.WorkerService
}

func (h *WorkerHandler) ClockIn(w http.ResponseWriter, r *http.Request) {
	workerID := mux.Vars(r)["workerId"]

	var req CaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Photo == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "photo is required"})
		return
	}

	record, err := h.Service.ClockIn(r.Context(), workerID, req.Location, req.Photo)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *WorkerHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	workerID := mux.Vars(r)["workerId"]

	var req CaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Photo == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "photo is required"})
		return
	}

	record, err := h.Service.ClockOut(r.Context(), workerID, req.Location, req.Photo)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Today returns the worker's record for the current day. A worker without
// one gets 200 with a null body, not a 404 — "not clocked in yet" is a
// normal state the client branches on.
func (h *WorkerHandler) Today(w http.ResponseWriter, r *http.Request) {
	workerID := mux.Vars(r)["workerId"]

	record, err := h.Service.Today(r.Context(), workerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *WorkerHandler) History(w http.ResponseWriter, r *http.Request) {
	workerID := mux.Vars(r)["workerId"]

	defaultStart, defaultEnd := h.Service.DefaultHistoryRange()
	start, end, err := dateRange(r, defaultStart, defaultEnd)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "dates must be YYYY-MM-DD"})
		return
	}

	records, err := h.Service.History(r.Context(), workerID, start, end)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
