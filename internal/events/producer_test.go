package events

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockKafkaWriter implements KafkaWriter for testing
type MockKafkaWriter struct {
	mock.Mock
}

func (m *MockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockKafkaWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestProducer_Produce(t *testing.T) {
	t.Run("successful produce", func(t *testing.T) {
		var buf bytes.Buffer
		producer := &Producer{
			events:    make(chan Event, 10),
			logger:    newTestLogger(&buf),
			closeChan: make(chan struct{}),
		}

		producer.Produce(SaleRecorded, "biz-1", "sale-1", nil)

		assert.Equal(t, 1, len(producer.events))
	})

	t.Run("dropped event when queue full", func(t *testing.T) {
		var buf bytes.Buffer
		producer := &Producer{
			events:    make(chan Event, 1),
			logger:    newTestLogger(&buf),
			closeChan: make(chan struct{}),
		}

		// Fill the channel, second produce should be dropped
		producer.Produce(SaleRecorded, "biz-1", "sale-1", nil)
		producer.Produce(SaleRecorded, "biz-1", "sale-2", nil)

		assert.Equal(t, 1, len(producer.events))
		assert.Contains(t, buf.String(), "kafka producer queue full, dropping event")
	})
}

func TestProducer_SendEvent(t *testing.T) {
	t.Run("successful send keyed by business", func(t *testing.T) {
		mockWriter := new(MockKafkaWriter)
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)

		var buf bytes.Buffer
		producer := &Producer{
			writer: mockWriter,
			logger: newTestLogger(&buf),
		}

		event := Event{Type: ShiftClosed, BusinessID: "biz-1", EntityID: "shift-1", OccurredAt: time.Now().UTC()}
		producer.sendEvent(context.Background(), event)

		mockWriter.AssertCalled(t, "WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
			return len(msgs) == 1 && string(msgs[0].Key) == "biz-1"
		}))
	})

	t.Run("serialization error", func(t *testing.T) {
		var buf bytes.Buffer
		producer := &Producer{
			writer: new(MockKafkaWriter),
			logger: newTestLogger(&buf),
		}

		oldMarshal := jsonMarshal
		jsonMarshal = func(_ interface{}) ([]byte, error) {
			return nil, errors.New("mock marshal error")
		}
		defer func() { jsonMarshal = oldMarshal }()

		event := Event{Type: ShiftClosed, BusinessID: "biz-1", EntityID: "shift-1"}
		producer.sendEvent(context.Background(), event)

		assert.Contains(t, buf.String(), "failed to serialize event")
	})

	t.Run("write error", func(t *testing.T) {
		mockWriter := new(MockKafkaWriter)
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("kafka error"))

		var buf bytes.Buffer
		producer := &Producer{
			writer: mockWriter,
			logger: newTestLogger(&buf),
		}

		event := Event{Type: BusinessCreated, BusinessID: "biz-1", EntityID: "biz-1"}
		producer.sendEvent(context.Background(), event)

		assert.Contains(t, buf.String(), "failed to produce event")
	})
}

func TestProducer_Close(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	mockWriter.On("Close").Return(nil)

	var buf bytes.Buffer
	producer := &Producer{
		writer:    mockWriter,
		closeChan: make(chan struct{}),
		logger:    newTestLogger(&buf),
	}

	producer.Close()

	select {
	case <-producer.closeChan:
	default:
		t.Error("closeChan not closed")
	}

	mockWriter.AssertCalled(t, "Close")
}

func TestProducer_EventLoop(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)

	var buf bytes.Buffer
	producer := &Producer{
		writer: mockWriter,
		events: make(chan Event, 1),
		logger: newTestLogger(&buf),
	}

	go producer.eventLoop()

	producer.events <- Event{Type: SaleRecorded, BusinessID: "biz-1", EntityID: "sale-1"}

	// Give the loop time to drain the channel
	time.Sleep(100 * time.Millisecond)

	mockWriter.AssertCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}
