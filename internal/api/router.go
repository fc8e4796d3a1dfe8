package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"attendance.service/internal/api/handler"
	"attendance.service/internal/core"
)

// NewRouter sets up the gorilla/mux router and defines all API routes.
// Each role gets its own subtree backed by its capability-scoped facade.
func NewRouter(workers *core.WorkerService, supervisors *core.SupervisorService, auditors *core.AuditorService) *mux.Router {

	workerHandler := handler.WorkerHandler{Service: workers}
	supervisorHandler := handler.SupervisorHandler{Service: supervisors}
	auditorHandler := handler.AuditorHandler{Service: auditors}

	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/workers/{workerId}/clock-in", workerHandler.ClockIn).Methods(http.MethodPost)
	api.HandleFunc("/workers/{workerId}/clock-out", workerHandler.ClockOut).Methods(http.MethodPost)
	api.HandleFunc("/workers/{workerId}/today", workerHandler.Today).Methods(http.MethodGet)
	api.HandleFunc("/workers/{workerId}/attendance", workerHandler.History).Methods(http.MethodGet)

	api.HandleFunc("/supervisors/{supervisorId}/pending", supervisorHandler.PendingQueue).Methods(http.MethodGet)
	api.HandleFunc("/supervisors/{supervisorId}/history", supervisorHandler.History).Methods(http.MethodGet)
	api.HandleFunc("/supervisors/{supervisorId}/records/{recordId}/decision", supervisorHandler.Decide).Methods(http.MethodPost)

	api.HandleFunc("/audit/report", auditorHandler.Report).Methods(http.MethodGet)
	api.HandleFunc("/audit/report/export", auditorHandler.Export).Methods(http.MethodGet)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Service is operational."))
	}).Methods(http.MethodGet)

	return r
}
