package events

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	publisher := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := publisher.Publish(context.Background(), "transfer_notifications", map[string]string{
		"account_id": "Id-123",
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "transfer_notifications")
	assert.Contains(t, buf.String(), "Id-123")
}

func TestLogPublisher_UnencodableEvent(t *testing.T) {
	publisher := NewLogPublisher(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))

	err := publisher.Publish(context.Background(), "transfer_notifications", make(chan int))

	assert.Error(t, err)
}
