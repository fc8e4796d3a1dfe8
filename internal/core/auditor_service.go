package core

import (
	"context"
	"time"

	"attendance.service/internal/core/model"
	"attendance.service/internal/ports/repository"
	"github.com/shopspring/decimal"
)

// ReimbursementReport is the auditor's aggregate over approved records.
type ReimbursementReport struct {
	GeneratedAt time.Time                `json:"generatedAt"`
	Count       int                      `json:"count"`
	TotalWage   decimal.Decimal          `json:"totalWage"`
	Records     []model.AttendanceRecord `json:"records"`
}

// AuditorService is the read-only auditor facade: every APPROVED record
// across all supervisors, with a wage total for reimbursement.
type AuditorService struct {
	repo  repository.Repository
	clock Clock
}

func NewAuditorService(repo repository.Repository, clock Clock) *AuditorService {
	return &AuditorService{repo: repo, clock: clock}
}

// Report computes the reimbursement aggregate at query time.
func (s *AuditorService) Report(ctx context.Context) (*ReimbursementReport, error) {
	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	approved := make([]model.AttendanceRecord, 0, len(records))
	total := decimal.Zero
	for i := range records {
		if records[i].Status == model.StatusApproved {
			approved = append(approved, records[i])
			total = total.Add(records[i].DailyWage)
		}
	}

	return &ReimbursementReport{
		GeneratedAt: s.clock.Now(),
		Count:       len(approved),
		TotalWage:   total,
		Records:     approved,
	}, nil
}
