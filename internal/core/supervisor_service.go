package core

import (
	"context"

	"attendance.service/internal/core/model"
	"attendance.service/internal/ports/repository"
)

// SupervisorService is the supervisor-facing facade: a pending queue over
// the supervisor's own workers, a decided-records history, and the decide
// operation. Only records routed to this supervisor can be decided.
type SupervisorService struct {
	svc   *AttendanceService
	repo  repository.Repository
	clock Clock
}

func NewSupervisorService(svc *AttendanceService, repo repository.Repository, clock Clock) *SupervisorService {
	return &SupervisorService{svc: svc, repo: repo, clock: clock}
}

// PendingQueue returns every PENDING record assigned to the supervisor,
// with no date bound.
func (s *SupervisorService) PendingQueue(ctx context.Context, supervisorID string) ([]model.AttendanceRecord, error) {
	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.AttendanceRecord, 0, len(records))
	for i := range records {
		r := records[i]
		if r.SupervisorID == supervisorID && r.Status == model.StatusPending {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// History returns the supervisor's decided records with date in
// [start, end] inclusive, newest first.
func (s *SupervisorService) History(ctx context.Context, supervisorID, start, end string) ([]model.AttendanceRecord, error) {
	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.AttendanceRecord, 0, len(records))
	for i := range records {
		r := records[i]
		if r.SupervisorID == supervisorID && r.Status != model.StatusPending && r.Date >= start && r.Date <= end {
			filtered = append(filtered, r)
		}
	}
	sortByDateDesc(filtered)
	return filtered, nil
}

// Decide approves or rejects a pending record. The record must be routed
// to the acting supervisor; deciding someone else's record fails with
// ErrNotAssigned regardless of its status.
func (s *SupervisorService) Decide(ctx context.Context, supervisorID, recordID string, decision model.AttendanceStatus) (*model.AttendanceRecord, error) {
	record, err := s.repo.FindRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	if record.SupervisorID != supervisorID {
		return nil, ErrNotAssigned
	}
	return s.svc.Decide(ctx, recordID, decision)
}

// DefaultHistoryRange is [today-7d, today].
func (s *SupervisorService) DefaultHistoryRange() (start, end string) {
	now := s.clock.Now()
	return now.AddDate(0, 0, -7).Format(model.DateLayout), s.clock.Today()
}
