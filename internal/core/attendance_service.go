package core

import (
	"context"

	"attendance.service/internal/core/model"
	"attendance.service/internal/ports/messaging"
	"attendance.service/internal/ports/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AttendanceService enforces the record lifecycle: one record per worker
// per day, clock-out only after clock-in, and a one-way PENDING ->
// APPROVED/REJECTED status transition. All durable writes go through the
// repository as full-collection replaces.
type AttendanceService struct {
	repo        repository.Repository
	publisher   messaging.EventPublisher
	clock       Clock
	defaultWage decimal.Decimal
}

// NewAttendanceService wires the service with its repository, the event
// publisher for decision side effects, and a clock for day partitioning.
func NewAttendanceService(repo repository.Repository, p messaging.EventPublisher, clock Clock, defaultWage decimal.Decimal) *AttendanceService {
	return &AttendanceService{
		repo:        repo,
		publisher:   p,
		clock:       clock,
		defaultWage: defaultWage,
	}
}

// ClockIn opens a new attendance record for the worker for today. The
// capture data (photo and location) is set together with the clock-in
// time; no partial record is ever written.
func (s *AttendanceService) ClockIn(ctx context.Context, workerID string, loc model.Location, photo string) (*model.AttendanceRecord, error) {
	worker, err := s.repo.FindUser(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, ErrUserNotFound
	}
	if worker.Role != model.RoleWorker {
		return nil, ErrNotWorker
	}

	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	for i := range records {
		if records[i].UserID == workerID && records[i].Date == today {
			return nil, ErrDuplicateRecord
		}
	}

	record := model.AttendanceRecord{
		ID:              uuid.NewString(),
		UserID:          worker.ID,
		UserName:        worker.Name,
		Date:            today,
		ClockInTime:     s.clock.Now(),
		ClockInPhoto:    photo,
		ClockInLocation: &loc,
		Status:          model.StatusPending,
		SupervisorID:    worker.SupervisorID,
		DailyWage:       s.defaultWage,
	}

	records = append(records, record)
	if err := s.repo.SaveRecords(ctx, records); err != nil {
		return nil, err
	}
	return &record, nil
}

// ClockOut closes the record. The three clock-out fields are set together,
// exactly once; the approval status is untouched.
func (s *AttendanceService) ClockOut(ctx context.Context, recordID string, loc model.Location, photo string) (*model.AttendanceRecord, error) {
	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(records, recordID)
	if idx < 0 {
		return nil, ErrRecordNotFound
	}
	if records[idx].ClockedOut() {
		return nil, ErrAlreadyClockedOut
	}

	now := s.clock.Now()
	records[idx].ClockOutTime = &now
	records[idx].ClockOutPhoto = photo
	records[idx].ClockOutLocation = &loc

	if err := s.repo.SaveRecords(ctx, records); err != nil {
		return nil, err
	}
	return &records[idx], nil
}

// Decide moves a PENDING record to APPROVED or REJECTED. Terminal states
// never revert. Clock fields are untouched: a supervisor may decide on a
// record the worker has not yet closed.
func (s *AttendanceService) Decide(ctx context.Context, recordID string, decision model.AttendanceStatus) (*model.AttendanceRecord, error) {
	if decision != model.StatusApproved && decision != model.StatusRejected {
		return nil, ErrInvalidDecision
	}

	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(records, recordID)
	if idx < 0 {
		return nil, ErrRecordNotFound
	}
	if records[idx].Status != model.StatusPending {
		return nil, ErrInvalidTransition
	}

	records[idx].Status = decision
	if err := s.repo.SaveRecords(ctx, records); err != nil {
		return nil, err
	}

	s.publishDecision(ctx, &records[idx])
	return &records[idx], nil
}

// publishDecision emits the queue events for a committed decision. The
// status change already won; a publish failure is logged, not propagated.
func (s *AttendanceService) publishDecision(ctx context.Context, record *model.AttendanceRecord) {
	if s.publisher == nil {
		return
	}

	decidedAt := s.clock.Now()
	event := messaging.DecisionEvent{
		RecordID:   record.ID,
		WorkerID:   record.UserID,
		WorkerName: record.UserName,
		Date:       record.Date,
		Decision:   record.Status,
		DecidedAt:  decidedAt,
	}
	if err := s.publisher.PublishDecision(ctx, event); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("record_id", record.ID).Msg("Failed to publish decision event")
	}

	if record.Status != model.StatusApproved {
		return
	}

	payroll := messaging.PayrollEvent{
		RecordID:   record.ID,
		WorkerID:   record.UserID,
		WorkerName: record.UserName,
		Date:       record.Date,
		DailyWage:  record.DailyWage,
		ApprovedAt: decidedAt,
	}
	if err := s.publisher.PublishPayroll(ctx, payroll); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("record_id", record.ID).Msg("Failed to publish payroll event")
	}
}

func indexOf(records []model.AttendanceRecord, id string) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}
