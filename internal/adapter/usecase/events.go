package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"lark/internal/core/port"
)

// publish encodes payload as JSON and hands it to the publisher. Failures
// are logged and never returned: the write that produced the event has
// already happened.
func publish(ctx context.Context, events port.EventPublisher, logger *slog.Logger, eventType, key string, payload any) {
	if events == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Error("encode event", slog.String("event", eventType), slog.Any("error", err))
		return
	}
	if err = events.Publish(ctx, eventType, raw, key); err != nil {
		logger.Warn("publish event", slog.String("event", eventType), slog.String("key", key), slog.Any("error", err))
	}
}
