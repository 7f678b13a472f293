package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

var jsonMarshal = json.Marshal

// EventType identifies what happened. Consumers switch on it.
type EventType string

const (
	BusinessCreated        EventType = "business_created"
	BusinessDeleted        EventType = "business_deleted"
	ActiveBusinessSwitched EventType = "active_business_switched"
	ShiftOpened            EventType = "shift_opened"
	ShiftClosed            EventType = "shift_closed"
	SaleRecorded           EventType = "sale_recorded"
)

// Event is the envelope published to the topic. Messages are keyed by
// BusinessID so consumers see each business's events in order.
type Event struct {
	Type       EventType `json:"type"`
	BusinessID string    `json:"businessId"`
	EntityID   string    `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload,omitempty"`
}

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher is what the service layer depends on. A nil Publisher is allowed
// and means events are disabled.
type Publisher interface {
	Produce(eventType EventType, businessID string, entityID string, payload any)
}

type Producer struct {
	writer    KafkaWriter
	events    chan Event
	logger    *slog.Logger
	closeChan chan struct{}
}

var _ Publisher = (*Producer)(nil)

func NewProducer(brokers []string, topic string, logger *slog.Logger) (*Producer, error) {
	// Ensure the topic exists before the first write. Brokers are often still
	// coming up when the API starts, so retry with exponential backoff.
	err := backoff.Retry(func() error {
		conn, dialErr := kafka.Dial("tcp", brokers[0])
		if dialErr != nil {
			return dialErr
		}
		defer conn.Close()
		return conn.CreateTopics(kafka.TopicConfig{
			Topic:             topic,
			NumPartitions:     3,
			ReplicationFactor: 1,
		})
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
	if err != nil {
		logger.Warn("failed to create kafka topic (may already exist)", slog.String("error", err.Error()))
	}

	p := &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
			Topic:    topic,
		},
		events:    make(chan Event, 1000),
		logger:    logger.With(slog.String("component", "kafka_producer")),
		closeChan: make(chan struct{}),
	}

	go p.eventLoop()
	return p, nil
}

// Produce enqueues an event without blocking the request path. When the
// buffer is full the event is dropped and logged.
func (p *Producer) Produce(eventType EventType, businessID string, entityID string, payload any) {
	event := Event{
		Type:       eventType,
		BusinessID: businessID,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	select {
	case p.events <- event:
	default:
		p.logger.Warn("kafka producer queue full, dropping event",
			slog.String("event_type", string(eventType)),
			slog.String("business_id", businessID),
		)
	}
}

func (p *Producer) eventLoop() {
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		case <-p.closeChan:
			return
		}
	}
}

func (p *Producer) sendEvent(ctx context.Context, event Event) {
	value, err := jsonMarshal(event)
	if err != nil {
		p.logger.Error("failed to serialize event",
			slog.String("error", err.Error()),
			slog.String("event_type", string(event.Type)),
		)
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.BusinessID),
		Value: value,
	})
	if err != nil {
		p.logger.Error("failed to produce event",
			slog.String("error", err.Error()),
			slog.String("event_type", string(event.Type)),
			slog.String("business_id", event.BusinessID),
		)
	}
}

func (p *Producer) Close() {
	close(p.closeChan)
	if err := p.writer.Close(); err != nil {
		p.logger.Error("failed to close kafka writer", slog.String("error", err.Error()))
	}
}
