package messaging

import (
	"time"

	"attendance.service/internal/core/model"
	"github.com/shopspring/decimal"
)

// DecisionEvent is the JSON payload sent to the notify queue whenever a
// supervisor approves or rejects a record.
type DecisionEvent struct {
	RecordID   string                 `json:"recordId"`
	WorkerID   string                 `json:"workerId"`
	WorkerName string                 `json:"workerName"`
	Date       string                 `json:"date"`
	Decision   model.AttendanceStatus `json:"decision"`
	DecidedAt  time.Time              `json:"decidedAt"`
}

// PayrollEvent is the JSON payload sent to the payroll queue for APPROVED
// records so they can be pushed to the reimbursement system.
type PayrollEvent struct {
	RecordID   string          `json:"recordId"`
	WorkerID   string          `json:"workerId"`
	WorkerName string          `json:"workerName"`
	Date       string          `json:"date"`
	DailyWage  decimal.Decimal `json:"dailyWage"`
	ApprovedAt time.Time       `json:"approvedAt"`
}
