package core

import (
	"context"
	"sort"
	"time"

	"attendance.service/internal/core/model"
	"attendance.service/internal/ports/repository"
)

// WorkerService is the worker-facing facade: a worker sees only their own
// records and can only clock in and out. Which action is available follows
// from today's record — none means clock-in, open means clock-out, closed
// means neither.
type WorkerService struct {
	svc   *AttendanceService
	repo  repository.Repository
	clock Clock
}

func NewWorkerService(svc *AttendanceService, repo repository.Repository, clock Clock) *WorkerService {
	return &WorkerService{svc: svc, repo: repo, clock: clock}
}

// ClockIn opens today's record for the worker.
func (s *WorkerService) ClockIn(ctx context.Context, workerID string, loc model.Location, photo string) (*model.AttendanceRecord, error) {
	return s.svc.ClockIn(ctx, workerID, loc, photo)
}

// ClockOut closes today's open record for the worker. Without a record for
// today there is nothing to target, so clock-out before clock-in fails
// with ErrRecordNotFound by construction.
func (s *WorkerService) ClockOut(ctx context.Context, workerID string, loc model.Location, photo string) (*model.AttendanceRecord, error) {
	record, err := s.Today(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	return s.svc.ClockOut(ctx, record.ID, loc, photo)
}

// Today returns the worker's record for the current day, or nil when the
// worker has not clocked in yet.
func (s *WorkerService) Today(ctx context.Context, workerID string) (*model.AttendanceRecord, error) {
	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	for i := range records {
		if records[i].UserID == workerID && records[i].Date == today {
			return &records[i], nil
		}
	}
	return nil, nil
}

// History returns the worker's records with date in [start, end]
// inclusive, newest first. An inverted range yields an empty result.
func (s *WorkerService) History(ctx context.Context, workerID, start, end string) ([]model.AttendanceRecord, error) {
	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.AttendanceRecord, 0, len(records))
	for i := range records {
		r := records[i]
		if r.UserID == workerID && r.Date >= start && r.Date <= end {
			filtered = append(filtered, r)
		}
	}
	sortByDateDesc(filtered)
	return filtered, nil
}

// DefaultHistoryRange is [first of current month, today].
func (s *WorkerService) DefaultHistoryRange() (start, end string) {
	now := s.clock.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.Format(model.DateLayout), s.clock.Today()
}

func sortByDateDesc(records []model.AttendanceRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
}
