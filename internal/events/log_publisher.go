package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/farhanaly/account-transfer-service/internal/interfaces"
)

// LogPublisher writes events to the structured log instead of a broker. It is
// wired in when Kafka is disabled, so the engine construction is identical in
// development and in production.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "event published",
		slog.String("topic", topic),
		slog.String("event", string(data)),
	)
	return nil
}

var _ interfaces.EventPublisher = (*LogPublisher)(nil)
