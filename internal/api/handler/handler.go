// Package handler holds the HTTP handlers, one set per role facade.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"attendance.service/internal/core"
	"attendance.service/internal/core/model"
	"github.com/rs/zerolog/log"
)

// CaptureRequest is the body for clock-in and clock-out: the capture data
// acquired on the device.
type CaptureRequest struct {
	Location model.Location `json:"location"`
	Photo    string         `json:"photo"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps domain errors to HTTP statuses. Anything unrecognized is
// a 500 and gets logged; the guard errors are client-visible conflicts.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrRecordNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrDuplicateRecord),
		errors.Is(err, core.ErrAlreadyClockedOut),
		errors.Is(err, core.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrNotAssigned):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrNotWorker):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrInvalidDecision):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// dateRange reads start/end query params, falling back to the given
// defaults per parameter. Dates must be YYYY-MM-DD.
func dateRange(r *http.Request, defaultStart, defaultEnd string) (start, end string, err error) {
	start, end = defaultStart, defaultEnd
	if v := r.URL.Query().Get("start"); v != "" {
		if _, perr := time.Parse(model.DateLayout, v); perr != nil {
			return "", "", perr
		}
		start = v
	}
	if v := r.URL.Query().Get("end"); v != "" {
		if _, perr := time.Parse(model.DateLayout, v); perr != nil {
			return "", "", perr
		}
		end = v
	}
	return start, end, nil
}
