package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Producer routes decision and payroll events to their queues through a
// MessageSender.
type Producer struct {
	sender          MessageSender
	notifyQueueURL  string
	payrollQueueURL string
}

func NewProducer(sender MessageSender, notifyQueueURL, payrollQueueURL string) *Producer {
	return &Producer{
		sender:          sender,
		notifyQueueURL:  notifyQueueURL,
		payrollQueueURL: payrollQueueURL,
	}
}

// NewSQSProducer creates a Producer backed by an AWS SQS sender.
func NewSQSProducer(client SQSClient, notifyQueueURL, payrollQueueURL string) *Producer {
	return NewProducer(&SQSSender{client: client}, notifyQueueURL, payrollQueueURL)
}

func (p *Producer) PublishDecision(ctx context.Context, body interface{}) error {
	return p.publish(ctx, p.notifyQueueURL, body)
}

func (p *Producer) PublishPayroll(ctx context.Context, body interface{}) error {
	return p.publish(ctx, p.payrollQueueURL, body)
}

func (p *Producer) publish(ctx context.Context, destination string, body interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	// Enrich the current span with the worker id if the payload carries one
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		var payload struct {
			WorkerID string `json:"workerId"`
		}
		if err := json.Unmarshal(b, &payload); err == nil && payload.WorkerID != "" {
			span.SetAttributes(attribute.String("app.workerId", payload.WorkerID))
		}
	}

	if err := p.sender.SendMessage(ctx, destination, b); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
