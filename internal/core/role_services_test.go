package core_test

import (
	"context"
	"testing"
	"time"

	"attendance.service/internal/core"
	"attendance.service/internal/core/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, userID, supervisorID, date string, status model.AttendanceStatus, wage int64) model.AttendanceRecord {
	clockIn, _ := time.Parse(model.DateLayout, date)
	return model.AttendanceRecord{
		ID:           id,
		UserID:       userID,
		UserName:     "Worker " + userID,
		SupervisorID: supervisorID,
		Date:         date,
		ClockInTime:  clockIn.Add(8 * time.Hour),
		Status:       status,
		DailyWage:    decimal.NewFromInt(wage),
	}
}

func seedRecords(t *testing.T, env *testEnv, records ...model.AttendanceRecord) {
	t.Helper()
	require.NoError(t, env.repo.SaveRecords(context.Background(), records))
}

func TestWorkerToday(t *testing.T) {
	env := newTestEnv(t)
	workers := core.NewWorkerService(env.svc, env.repo, env.clock)
	ctx := context.Background()

	seedRecords(t, env,
		record("r1", "u2", "u1", "2024-01-09", model.StatusApproved, 350),
		record("r2", "u3", "u1", "2024-01-10", model.StatusPending, 350),
	)

	today, err := workers.Today(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, today, "yesterday's record is not today's")

	today, err = workers.Today(ctx, "u3")
	require.NoError(t, err)
	require.NotNil(t, today)
	assert.Equal(t, "r2", today.ID)
}

func TestWorkerClockOut_WithoutTodayRecord(t *testing.T) {
	env := newTestEnv(t)
	workers := core.NewWorkerService(env.svc, env.repo, env.clock)

	_, err := workers.ClockOut(context.Background(), "u2", testLoc, "photo")
	assert.ErrorIs(t, err, core.ErrRecordNotFound)
}

func TestWorkerHistory_FiltersAndSorts(t *testing.T) {
	env := newTestEnv(t)
	workers := core.NewWorkerService(env.svc, env.repo, env.clock)
	ctx := context.Background()

	seedRecords(t, env,
		record("r1", "u2", "u1", "2024-01-03", model.StatusApproved, 350),
		record("r2", "u2", "u1", "2024-01-08", model.StatusPending, 350),
		record("r3", "u3", "u1", "2024-01-05", model.StatusApproved, 350),
		record("r4", "u2", "u1", "2023-12-28", model.StatusApproved, 350),
	)

	history, err := workers.History(ctx, "u2", "2024-01-01", "2024-01-10")
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Newest first; other workers and out-of-range dates are excluded.
	assert.Equal(t, "r2", history[0].ID)
	assert.Equal(t, "r1", history[1].ID)
}

func TestWorkerHistory_InvertedRangeIsEmpty(t *testing.T) {
	env := newTestEnv(t)
	workers := core.NewWorkerService(env.svc, env.repo, env.clock)

	seedRecords(t, env, record("r1", "u2", "u1", "2024-01-05", model.StatusApproved, 350))

	history, err := workers.History(context.Background(), "u2", "2024-01-10", "2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestWorkerDefaultHistoryRange(t *testing.T) {
	env := newTestEnv(t)
	workers := core.NewWorkerService(env.svc, env.repo, env.clock)

	start, end := workers.DefaultHistoryRange()
	assert.Equal(t, "2024-01-01", start)
	assert.Equal(t, "2024-01-10", end)
}

func TestSupervisorPendingQueue(t *testing.T) {
	env := newTestEnv(t)
	supervisors := core.NewSupervisorService(env.svc, env.repo, env.clock)
	ctx := context.Background()

	seedRecords(t, env,
		record("r1", "u2", "u1", "2023-11-01", model.StatusPending, 350),
		record("r2", "u3", "u1", "2024-01-10", model.StatusPending, 350),
		record("r3", "u2", "u1", "2024-01-09", model.StatusApproved, 350),
		record("r4", "u2", "other", "2024-01-10", model.StatusPending, 350),
	)

	pending, err := supervisors.PendingQueue(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	// No date bound: months-old pending records still show up.
	ids := []string{pending[0].ID, pending[1].ID}
	assert.Contains(t, ids, "r1")
	assert.Contains(t, ids, "r2")
}

func TestSupervisorHistory_DecidedOnly(t *testing.T) {
	env := newTestEnv(t)
	supervisors := core.NewSupervisorService(env.svc, env.repo, env.clock)
	ctx := context.Background()

	seedRecords(t, env,
		record("r1", "u2", "u1", "2024-01-08", model.StatusApproved, 350),
		record("r2", "u3", "u1", "2024-01-09", model.StatusRejected, 350),
		record("r3", "u2", "u1", "2024-01-09", model.StatusPending, 350),
		record("r4", "u2", "u1", "2024-01-01", model.StatusApproved, 350),
	)

	history, err := supervisors.History(ctx, "u1", "2024-01-03", "2024-01-10")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "r2", history[0].ID)
	assert.Equal(t, "r1", history[1].ID)
}

func TestSupervisorDecide_NotAssigned(t *testing.T) {
	env := newTestEnv(t)
	supervisors := core.NewSupervisorService(env.svc, env.repo, env.clock)
	ctx := context.Background()

	seedRecords(t, env, record("r1", "u2", "other-sup", "2024-01-10", model.StatusPending, 350))

	_, err := supervisors.Decide(ctx, "u1", "r1", model.StatusApproved)
	assert.ErrorIs(t, err, core.ErrNotAssigned)

	// Record is untouched.
	stored, err := env.repo.FindRecord(ctx, "r1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, model.StatusPending, stored.Status)
}

func TestSupervisorDecide_Assigned(t *testing.T) {
	env := newTestEnv(t)
	supervisors := core.NewSupervisorService(env.svc, env.repo, env.clock)
	ctx := context.Background()

	seedRecords(t, env, record("r1", "u2", "u1", "2024-01-10", model.StatusPending, 350))

	decided, err := supervisors.Decide(ctx, "u1", "r1", model.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, decided.Status)
}

func TestSupervisorDefaultHistoryRange(t *testing.T) {
	env := newTestEnv(t)
	supervisors := core.NewSupervisorService(env.svc, env.repo, env.clock)

	start, end := supervisors.DefaultHistoryRange()
	assert.Equal(t, "2024-01-03", start)
	assert.Equal(t, "2024-01-10", end)
}

func TestAuditorReport(t *testing.T) {
	env := newTestEnv(t)
	auditors := core.NewAuditorService(env.repo, env.clock)
	ctx := context.Background()

	seedRecords(t, env,
		record("r1", "u2", "u1", "2024-01-08", model.StatusApproved, 350),
		record("r2", "u3", "u1", "2024-01-09", model.StatusApproved, 400),
		record("r3", "u2", "u1", "2024-01-09", model.StatusPending, 350),
		record("r4", "u3", "u1", "2024-01-10", model.StatusRejected, 350),
	)

	rep, err := auditors.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Count)
	assert.True(t, rep.TotalWage.Equal(decimal.NewFromInt(750)), "got total %s", rep.TotalWage)
	assert.Len(t, rep.Records, 2)
	assert.Equal(t, testInstant, rep.GeneratedAt)
}

func TestAuditorReport_TotalGrowsWithApprovals(t *testing.T) {
	env := newTestEnv(t)
	auditors := core.NewAuditorService(env.repo, env.clock)
	supervisors := core.NewSupervisorService(env.svc, env.repo, env.clock)
	ctx := context.Background()

	seedRecords(t, env,
		record("r1", "u2", "u1", "2024-01-08", model.StatusApproved, 350),
		record("r2", "u3", "u1", "2024-01-10", model.StatusPending, 350),
	)

	before, err := auditors.Report(ctx)
	require.NoError(t, err)

	_, err = supervisors.Decide(ctx, "u1", "r2", model.StatusApproved)
	require.NoError(t, err)

	after, err := auditors.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Count+1, after.Count)
	assert.True(t, after.TotalWage.Equal(before.TotalWage.Add(decimal.NewFromInt(350))))
}

func TestAuditorReport_EmptyStore(t *testing.T) {
	env := newTestEnv(t)
	auditors := core.NewAuditorService(env.repo, env.clock)

	rep, err := auditors.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Count)
	assert.True(t, rep.TotalWage.IsZero())
	assert.Empty(t, rep.Records)
}
