package messaging

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// EventPublisher is the output port for publishing decision side effects.
type EventPublisher interface {
	PublishDecision(ctx context.Context, body interface{}) error
	PublishPayroll(ctx context.Context, body interface{}) error
}

// MessageSender sends a raw message to a messaging system destination.
type MessageSender interface {
	SendMessage(ctx context.Context, destination string, body []byte) error
}

// SQSClient is the slice of the AWS SQS client the sender needs.
type SQSClient interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}
