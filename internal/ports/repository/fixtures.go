package repository

import (
	"time"

	"attendance.service/internal/core/model"
	"github.com/shopspring/decimal"
)

// Demo provisioning data: one supervisor with two workers and an auditor,
// plus a single pending record so the approval queue is not empty on a
// fresh install.

func fixtureUsers() []model.User {
	return []model.User{
		{ID: "u1", Username: "sup1", Name: "Somchai (Supervisor)", Role: model.RoleSupervisor},
		{ID: "u2", Username: "work1", Name: "Dam (Worker)", Role: model.RoleWorker, SupervisorID: "u1"},
		{ID: "u3", Username: "work2", Name: "Daeng (Worker)", Role: model.RoleWorker, SupervisorID: "u1"},
		{ID: "u4", Username: "audit1", Name: "Somsri (Auditor)", Role: model.RoleAuditor},
	}
}

func fixtureRecords(now time.Time) []model.AttendanceRecord {
	day := now.UTC().Truncate(24 * time.Hour)
	clockIn := day.Add(8 * time.Hour)

	return []model.AttendanceRecord{
		{
			ID:           "r1",
			UserID:       "u2",
			UserName:     "Dam (Worker)",
			Date:         day.Format(model.DateLayout),
			ClockInTime:  clockIn,
			Status:       model.StatusPending,
			SupervisorID: "u1",
			DailyWage:    decimal.NewFromInt(350),
		},
	}
}
