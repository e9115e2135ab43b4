package interfaces

import "context"

// EventPublisher is the best-effort sink for post-transfer notifications.
// Delivery failures are the caller's to log and discard; they never roll back
// a committed transfer.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event any) error
}
