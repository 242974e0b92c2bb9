package kafka

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/couchcryptid/element-phase-service/internal/config"
	"github.com/couchcryptid/element-phase-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
)

// Writer produces classified readings to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer  messageWriter
	circuit *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return newWriter(w, logger)
}

// newWriter wraps w in a circuit breaker that opens after five consecutive failed
// batches and probes the broker again after thirty seconds. Writes abandoned
// because the caller's context ended do not count against the broker.
func newWriter(w messageWriter, logger *slog.Logger) *Writer {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "kafka-writer",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
	return &Writer{writer: w, circuit: cb, logger: logger}
}

// LoadBatch publishes multiple classified readings to the sink topic in a single
// WriteMessages call. While the breaker is open it fails fast with
// gobreaker.ErrOpenState and the pipeline backs off.
func (w *Writer) LoadBatch(ctx context.Context, events []domain.OutputEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(events))
	for i := range events {
		msgs[i] = toMessage(events[i])
	}
	_, err := w.circuit.Execute(func() (interface{}, error) {
		return nil, w.writer.WriteMessages(ctx, msgs...)
	})
	if err != nil {
		return err
	}
	w.logger.Debug("loaded batch", "batch_size", len(msgs))
	return nil
}

// Close flushes pending writes and closes the producer.
func (w *Writer) Close() error {
	return w.writer.Close()
}

// toMessage builds a Kafka message from an output event. Headers are sorted by
// key so the wire order is stable.
func toMessage(event domain.OutputEvent) kafkago.Message {
	keys := make([]string, 0, len(event.Headers))
	for k := range event.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	headers := make([]kafkago.Header, 0, len(keys))
	for _, k := range keys {
		headers = append(headers, kafkago.Header{Key: k, Value: []byte(event.Headers[k])})
	}
	return kafkago.Message{
		Key:     event.Key,
		Value:   event.Value,
		Headers: headers,
	}
}
