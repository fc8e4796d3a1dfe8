package handler

import (
	"fmt"
	"net/http"

	"attendance.service/internal/core"
	"attendance.service/internal/report"
)

type AuditorHandler struct {
	Service *core.AuditorService
}

func (h *AuditorHandler) Report(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Service.Report(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// Export streams the report as a downloadable file. Format defaults to
// xlsx; pdf is the printable alternative.
func (h *AuditorHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}

	rep, err := h.Service.Report(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	var data []byte
	var contentType string
	switch format {
	case "xlsx":
		data, err = report.BuildXLSX(rep)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		data, err = report.BuildPDF(rep)
		contentType = "application/pdf"
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "format must be xlsx or pdf"})
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	filename := fmt.Sprintf("reimbursement-%s.%s", rep.GeneratedAt.Format("20060102"), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
