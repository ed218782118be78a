package events

import (
	"context"
	"log/slog"
)

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) Publish(_ context.Context, eventType string, payload []byte, partitionKey string) error {
	p.logger.Debug("event dropped",
		slog.String("event", eventType),
		slog.String("key", partitionKey),
		slog.Int("bytes", len(payload)))
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
