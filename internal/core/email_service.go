package core

import (
	"context"
	"fmt"

	"attendance.service/internal/core/model"
	"attendance.service/pkg/telemetry"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type EmailService interface {
	SendDecisionNotice(ctx context.Context, to, workerName, date string, decision model.AttendanceStatus) error
}

type SESEmailService struct {
	client *ses.Client
	sender string
}

func NewSESEmailService(client *ses.Client, sender string) *SESEmailService {
	return &SESEmailService{client: client, sender: sender}
}

// SendDecisionNotice emails a worker the outcome of a supervisor decision.
func (s *SESEmailService) SendDecisionNotice(ctx context.Context, to, workerName, date string, decision model.AttendanceStatus) error {
	tracer := otel.Tracer("ses-email-service")
	ctx, span := tracer.Start(ctx, "send_email", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	if workerID := telemetry.GetWorkerIDFromContext(ctx); workerID != "" {
		span.SetAttributes(attribute.String("app.workerId", workerID))
	}

	verdict := "approved"
	if decision == model.StatusRejected {
		verdict = "rejected"
	}

	input := &ses.SendEmailInput{
		Source: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String("Attendance Decision"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(fmt.Sprintf("Hello %s,\n\nYour attendance record for %s has been %s by your supervisor.", workerName, date, verdict)),
				},
			},
		},
	}

	_, err := s.client.SendEmail(ctx, input)
	return err
}
