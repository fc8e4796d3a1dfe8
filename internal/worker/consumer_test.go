package worker_test

import (
	"testing"

	"attendance.service/internal/worker"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
)

func TestReceiveCount(t *testing.T) {
	key := string(types.MessageSystemAttributeNameApproximateReceiveCount)

	assert.Equal(t, 1, worker.ReceiveCount(types.Message{}))
	assert.Equal(t, 1, worker.ReceiveCount(types.Message{Attributes: map[string]string{key: "garbage"}}))
	assert.Equal(t, 1, worker.ReceiveCount(types.Message{Attributes: map[string]string{key: "0"}}))
	assert.Equal(t, 3, worker.ReceiveCount(types.Message{Attributes: map[string]string{key: "3"}}))
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, int32(20), worker.Backoff(1))
	assert.Equal(t, int32(40), worker.Backoff(2))
	assert.Equal(t, int32(320), worker.Backoff(5))
	// Capped at an hour.
	assert.Equal(t, int32(3600), worker.Backoff(9))
	assert.Equal(t, int32(3600), worker.Backoff(20))
}
