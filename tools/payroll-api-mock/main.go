package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// A simple struct to capture the incoming reimbursement data
type PayrollEvent struct {
	RecordID   string    `json:"recordId"`
	WorkerID   string    `json:"workerId"`
	WorkerName string    `json:"workerName"`
	Date       string    `json:"date"`
	DailyWage  string    `json:"dailyWage"`
	ApprovedAt time.Time `json:"approvedAt"`
}

func reimbursementHandler(w http.ResponseWriter, r *http.Request) {
	var event PayrollEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	log.Printf("Received reimbursement for worker %s, date %s, wage %s", event.WorkerID, event.Date, event.DailyWage)
	w.WriteHeader(http.StatusOK)
}

func main() {
	http.HandleFunc("/", reimbursementHandler)
	log.Println("Payroll API mock server starting on port 8081...")
	log.Fatal(http.ListenAndServe(":8081", nil))
}
