package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"attendance.service/internal/core/model"
	"attendance.service/internal/ports/messaging"
	"attendance.service/internal/ports/repository"
	"attendance.service/internal/worker"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

// PayrollProcessor handles payroll queue jobs: pushing approved records to
// the reimbursement API. A circuit breaker keeps us from hammering the
// payroll system when it is struggling.
type PayrollProcessor struct {
	repo   repository.Repository
	client Client
	cb     *gobreaker.CircuitBreaker
}

// NewProcessor creates a processor for the payroll queue.
func NewProcessor(repo repository.Repository, client Client) *PayrollProcessor {
	settings := gobreaker.Settings{
		Name:        "Payroll-API",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip when the failure rate exceeds 50% over at least 10 requests
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
	}

	return &PayrollProcessor{
		repo:   repo,
		client: client,
		cb:     gobreaker.NewCircuitBreaker(settings),
	}
}

// Process submits one approved record. Events whose record is missing or
// no longer APPROVED are stale and dropped; API failures retry with
// exponential backoff derived from the receive count.
func (p *PayrollProcessor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.PayrollEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal payroll event")
		return false, 0, err // Do not retry on malformed message
	}

	record, err := p.repo.FindRecord(ctx, event.RecordID)
	if err != nil {
		return true, 10, fmt.Errorf("failed to load record for payroll sync: %w", err)
	}
	if record == nil || record.Status != model.StatusApproved {
		log.Ctx(ctx).Warn().Str("record_id", event.RecordID).Msg("Record is not approved anymore. Skipping payroll sync.")
		return false, 0, nil
	}

	_, err = p.cb.Execute(func() (interface{}, error) {
		return nil, p.client.SubmitReimbursement(ctx, event)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			log.Ctx(ctx).Warn().Msg("Circuit breaker is OPEN; skipping payroll API call")
		}
		delay := worker.Backoff(worker.ReceiveCount(msg))
		return true, delay, err
	}

	log.Ctx(ctx).Info().Str("record_id", event.RecordID).Str("worker_id", event.WorkerID).Msg("Reimbursement submitted to payroll")
	return false, 0, nil
}
