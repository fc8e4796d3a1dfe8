package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"attendance.service/internal/core"
	"attendance.service/internal/ports/messaging"
	"attendance.service/internal/ports/repository"
	"attendance.service/internal/worker"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog/log"
)

// RecipientDomain builds the worker's mail address from their id. The
// demo setup has no user email field; a real deployment would look it up.
const RecipientDomain = "worksite.example.com"

// NotifyProcessor handles decision events from the notify queue and emails
// the worker the outcome.
type NotifyProcessor struct {
	emailService core.EmailService
	repo         repository.Repository
}

func NewProcessor(emailService core.EmailService, repo repository.Repository) *NotifyProcessor {
	return &NotifyProcessor{
		emailService: emailService,
		repo:         repo,
	}
}

// Process sends the decision notice for one message. Malformed payloads
// and vanished records are dropped; send failures retry with backoff.
func (p *NotifyProcessor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.DecisionEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal decision event")
		return false, 0, err // Do not retry on malformed message
	}

	record, err := p.repo.FindRecord(ctx, event.RecordID)
	if err != nil {
		return true, 10, fmt.Errorf("failed to load record for notification: %w", err)
	}
	if record == nil {
		log.Ctx(ctx).Warn().Str("record_id", event.RecordID).Msg("Record no longer exists. Skipping notification.")
		return false, 0, nil
	}

	to := event.WorkerID + "@" + RecipientDomain
	err = p.emailService.SendDecisionNotice(ctx, to, event.WorkerName, event.Date, event.Decision)
	if err != nil {
		delay := worker.Backoff(worker.ReceiveCount(msg))
		return true, delay, err
	}

	return false, 0, nil
}
