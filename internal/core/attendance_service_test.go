package core_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"attendance.service/internal/core"
	"attendance.service/internal/core/model"
	"attendance.service/internal/ports/messaging"
	"attendance.service/internal/ports/repository"
	"attendance.service/internal/ports/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testInstant = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	testWage    = decimal.NewFromInt(350)
	testLoc     = model.Location{Lat: 13.7563, Lng: 100.5018, Accuracy: 8.5}
)

// recordingPublisher captures the events the service publishes.
type recordingPublisher struct {
	decisions []messaging.DecisionEvent
	payrolls  []messaging.PayrollEvent
}

func (p *recordingPublisher) PublishDecision(_ context.Context, body interface{}) error {
	p.decisions = append(p.decisions, body.(messaging.DecisionEvent))
	return nil
}

func (p *recordingPublisher) PublishPayroll(_ context.Context, body interface{}) error {
	p.payrolls = append(p.payrolls, body.(messaging.PayrollEvent))
	return nil
}

type testEnv struct {
	repo      *repository.StoreRepository
	svc       *core.AttendanceService
	publisher *recordingPublisher
	clock     core.FixedClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	kv := store.NewMemoryStore()
	users := []model.User{
		{ID: "u1", Username: "sup1", Name: "Somchai (Supervisor)", Role: model.RoleSupervisor},
		{ID: "u2", Username: "work1", Name: "Dam (Worker)", Role: model.RoleWorker, SupervisorID: "u1"},
		{ID: "u3", Username: "work2", Name: "Daeng (Worker)", Role: model.RoleWorker, SupervisorID: "u1"},
		{ID: "u4", Username: "audit1", Name: "Somsri (Auditor)", Role: model.RoleAuditor},
	}
	raw, err := json.Marshal(users)
	require.NoError(t, err)
	require.NoError(t, kv.Set(context.Background(), repository.UsersKey, raw))

	repo := repository.NewStoreRepository(kv)
	publisher := &recordingPublisher{}
	clock := core.FixedClock{Instant: testInstant}
	svc := core.NewAttendanceService(repo, publisher, clock, testWage)

	return &testEnv{repo: repo, svc: svc, publisher: publisher, clock: clock}
}

func TestClockIn_CreatesPendingRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	record, err := env.svc.ClockIn(ctx, "u2", testLoc, "photo-in")
	require.NoError(t, err)

	assert.Equal(t, "u2", record.UserID)
	assert.Equal(t, "Dam (Worker)", record.UserName)
	assert.Equal(t, "2024-01-10", record.Date)
	assert.Equal(t, model.StatusPending, record.Status)
	assert.Equal(t, "u1", record.SupervisorID)
	assert.True(t, record.DailyWage.Equal(testWage))
	assert.Equal(t, testInstant, record.ClockInTime)
	assert.Equal(t, "photo-in", record.ClockInPhoto)
	require.NotNil(t, record.ClockInLocation)
	assert.Equal(t, testLoc, *record.ClockInLocation)
	assert.False(t, record.ClockedOut())
	assert.NotEmpty(t, record.ID)
}

func TestClockIn_TwiceSameDayFails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.ClockIn(ctx, "u2", testLoc, "photo-1")
	require.NoError(t, err)

	_, err = env.svc.ClockIn(ctx, "u2", testLoc, "photo-2")
	assert.ErrorIs(t, err, core.ErrDuplicateRecord)

	// The store still holds exactly one record for that worker and day.
	records, err := env.repo.ListRecords(ctx)
	require.NoError(t, err)
	count := 0
	for _, r := range records {
		if r.UserID == "u2" && r.Date == "2024-01-10" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestClockIn_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ClockIn(context.Background(), "nobody", testLoc, "photo")
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestClockIn_SupervisorCannotClockIn(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ClockIn(context.Background(), "u1", testLoc, "photo")
	assert.ErrorIs(t, err, core.ErrNotWorker)
}

func TestClockOut_SetsAllFieldsOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	record, err := env.svc.ClockIn(ctx, "u2", testLoc, "photo-in")
	require.NoError(t, err)

	outLoc := model.Location{Lat: 13.75, Lng: 100.5, Accuracy: 12}
	closed, err := env.svc.ClockOut(ctx, record.ID, outLoc, "photo-out")
	require.NoError(t, err)

	require.NotNil(t, closed.ClockOutTime)
	assert.Equal(t, testInstant, *closed.ClockOutTime)
	assert.Equal(t, "photo-out", closed.ClockOutPhoto)
	require.NotNil(t, closed.ClockOutLocation)
	assert.Equal(t, outLoc, *closed.ClockOutLocation)
	// Status is untouched by clock-out.
	assert.Equal(t, model.StatusPending, closed.Status)

	_, err = env.svc.ClockOut(ctx, record.ID, outLoc, "photo-again")
	assert.ErrorIs(t, err, core.ErrAlreadyClockedOut)
}

func TestClockOut_UnknownRecord(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ClockOut(context.Background(), "missing", testLoc, "photo")
	assert.ErrorIs(t, err, core.ErrRecordNotFound)
}

func TestDecide_ApprovesPendingRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	record, err := env.svc.ClockIn(ctx, "u2", testLoc, "photo")
	require.NoError(t, err)

	decided, err := env.svc.Decide(ctx, record.ID, model.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, decided.Status)
}

func TestDecide_WorksBeforeClockOut(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	record, err := env.svc.ClockIn(ctx, "u2", testLoc, "photo")
	require.NoError(t, err)

	// The record is still open; approval must not require clock-out.
	decided, err := env.svc.Decide(ctx, record.ID, model.StatusApproved)
	require.NoError(t, err)
	assert.False(t, decided.ClockedOut())
	assert.Equal(t, model.StatusApproved, decided.Status)
}

func TestDecide_TerminalStatesNeverRevert(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	record, err := env.svc.ClockIn(ctx, "u2", testLoc, "photo")
	require.NoError(t, err)

	_, err = env.svc.Decide(ctx, record.ID, model.StatusRejected)
	require.NoError(t, err)

	for _, next := range []model.AttendanceStatus{model.StatusApproved, model.StatusRejected} {
		_, err = env.svc.Decide(ctx, record.ID, next)
		assert.ErrorIs(t, err, core.ErrInvalidTransition)
	}

	stored, err := env.repo.FindRecord(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, model.StatusRejected, stored.Status)
}

func TestDecide_RejectsInvalidDecision(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	record, err := env.svc.ClockIn(ctx, "u2", testLoc, "photo")
	require.NoError(t, err)

	_, err = env.svc.Decide(ctx, record.ID, model.StatusPending)
	assert.ErrorIs(t, err, core.ErrInvalidDecision)
}

func TestDecide_UnknownRecord(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Decide(context.Background(), "missing", model.StatusApproved)
	assert.ErrorIs(t, err, core.ErrRecordNotFound)
}

func TestDecide_PublishesEvents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	approved, err := env.svc.ClockIn(ctx, "u2", testLoc, "photo")
	require.NoError(t, err)
	rejected, err := env.svc.ClockIn(ctx, "u3", testLoc, "photo")
	require.NoError(t, err)

	_, err = env.svc.Decide(ctx, approved.ID, model.StatusApproved)
	require.NoError(t, err)
	_, err = env.svc.Decide(ctx, rejected.ID, model.StatusRejected)
	require.NoError(t, err)

	// Every decision notifies; only approvals go to payroll.
	require.Len(t, env.publisher.decisions, 2)
	require.Len(t, env.publisher.payrolls, 1)

	payroll := env.publisher.payrolls[0]
	assert.Equal(t, approved.ID, payroll.RecordID)
	assert.Equal(t, "u2", payroll.WorkerID)
	assert.True(t, payroll.DailyWage.Equal(testWage))
}
