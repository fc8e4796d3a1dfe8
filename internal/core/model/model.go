package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format used as the partition key for
// attendance records. Dates are compared as strings, which is safe because
// the layout sorts lexicographically.
const DateLayout = "2006-01-02"

// Role defines what a user is allowed to do with attendance records.
type Role string

const (
	RoleWorker     Role = "WORKER"
	RoleSupervisor Role = "SUPERVISOR"
	RoleAuditor    Role = "AUDITOR"
)

// AttendanceStatus is the approval state of a record.
type AttendanceStatus string

const (
	StatusPending  AttendanceStatus = "PENDING"
	StatusApproved AttendanceStatus = "APPROVED"
	StatusRejected AttendanceStatus = "REJECTED"
)

// Location is a GPS fix captured on the worker's device at clock time.
type Location struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Accuracy float64 `json:"accuracy"`
}

// User is provisioned out of band and immutable afterwards. Workers carry
// the id of the supervisor who approves their records.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	SupervisorID string `json:"supervisorId,omitempty"`
}

// AttendanceRecord is one workday for one worker. Clock-in fields are set
// together at creation; clock-out fields are set together at most once
// afterwards. Status moves PENDING -> APPROVED or PENDING -> REJECTED and
// never leaves a terminal state. The status axis is independent of the
// clock-out axis: a supervisor may decide on a still-open record.
type AttendanceRecord struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	UserName         string           `json:"userName"`
	Date             string           `json:"date"`
	ClockInTime      time.Time        `json:"clockInTime"`
	ClockOutTime     *time.Time       `json:"clockOutTime,omitempty"`
	ClockInPhoto     string           `json:"clockInPhoto,omitempty"`
	ClockOutPhoto    string           `json:"clockOutPhoto,omitempty"`
	ClockInLocation  *Location        `json:"clockInLocation,omitempty"`
	ClockOutLocation *Location        `json:"clockOutLocation,omitempty"`
	Status           AttendanceStatus `json:"status"`
	SupervisorID     string           `json:"supervisorId,omitempty"`
	DailyWage        decimal.Decimal  `json:"dailyWage"`
}

// ClockedOut reports whether the record is closed for the day.
func (r *AttendanceRecord) ClockedOut() bool {
	return r.ClockOutTime != nil
}
