package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes ledger events to one topic per event type, keyed by
// the aggregate so events of one investment or payout stay ordered.
type KafkaPublisher struct {
	writer       messageWriter
	topicPrefix  string
	writeTimeout time.Duration
}

var _ port.EventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, topicPrefix string, writeTimeout time.Duration) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		RequiredAcks:           kafka.RequireAll,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}, topicPrefix, writeTimeout), nil
}

func newPublisher(w messageWriter, topicPrefix string, writeTimeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{writer: w, topicPrefix: topicPrefix, writeTimeout: writeTimeout}
}

// Topic returns the topic events of type t are written to.
func (p *KafkaPublisher) Topic(t domain.EventType) string {
	return p.topicPrefix + string(t)
}

func (p *KafkaPublisher) Publish(ctx context.Context, e domain.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if p.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.writeTimeout)
		defer cancel()
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.Topic(e.Type),
		Key:   []byte(e.Key),
		Value: payload,
		Time:  e.OccurredAt.UTC(),
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Discard drops every event. It is used when no brokers are configured.
type Discard struct{}

func (Discard) Publish(context.Context, domain.Event) error { return nil }
