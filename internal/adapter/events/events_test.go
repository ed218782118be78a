package events

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lark/internal/core/port"
)

func TestNewKafkaPublisher_RequiresBrokers(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "lark.")
	require.Error(t, err)
}

func TestKafkaPublisher_Topic(t *testing.T) {
	p, err := NewKafkaPublisher([]string{"localhost:9092"}, "lark.")
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, "lark.campaign.created", p.Topic(port.EventCampaignCreated))
	assert.Equal(t, "lark.vault.file_committed", p.Topic(port.EventVaultFileCommitted))
}

func TestNoopPublisher(t *testing.T) {
	var publisher port.EventPublisher = NewNoopPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NoError(t, publisher.Publish(context.Background(), port.EventKYCSubmitted, []byte(`{}`), "k"))
}
