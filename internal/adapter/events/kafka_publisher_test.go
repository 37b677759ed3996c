package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdoo/internal/core/domain"
)

type fakeWriter struct {
	msgs []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, "crowdoo.", time.Second)

	investmentID := uuid.New()
	at := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	err := p.Publish(context.Background(), domain.Event{
		ID:         uuid.New(),
		Type:       domain.EventInvestmentCompleted,
		Key:        investmentID.String(),
		Payload:    map[string]any{"amount": "500.00"},
		OccurredAt: at,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "crowdoo.investment.completed", msg.Topic)
	assert.Equal(t, investmentID.String(), string(msg.Key))
	assert.Equal(t, at, msg.Time)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "investment.completed", decoded["type"])
	assert.Equal(t, "500.00", decoded["payload"].(map[string]any)["amount"])
}

func TestNewKafkaPublisher_RequiresBrokers(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "x.", time.Second)
	assert.Error(t, err)
}
