package kafka

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/element-phase-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("key-1"),
		Value:     []byte(`{"temperature":25,"unit":"C"}`),
		Topic:     "element-temperature-readings",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte("lab-probe-7")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("key-1"), raw.Key)
	assert.JSONEq(t, `{"temperature":25,"unit":"C"}`, string(raw.Value))
	assert.Equal(t, "element-temperature-readings", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "lab-probe-7", raw.Headers["source"])
	assert.Nil(t, raw.Commit)
}

func TestMapMessageToRawEvent_NoHeaders(t *testing.T) {
	raw := mapMessageToRawEvent(kafkago.Message{Value: []byte("{}")})
	assert.NotNil(t, raw.Headers)
	assert.Empty(t, raw.Headers)
}

func TestToMessage(t *testing.T) {
	processedAt := time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC).Format(time.RFC3339)
	event := domain.OutputEvent{
		Key:   []byte("hg-0123456789abcdef"),
		Value: []byte(`{"phase":"liquid"}`),
		Headers: map[string]string{
			"processed_at": processedAt,
			"phase":        "liquid",
		},
	}

	msg := toMessage(event)

	assert.Equal(t, []byte("hg-0123456789abcdef"), msg.Key)
	assert.Equal(t, `{"phase":"liquid"}`, string(msg.Value))
	assert.Equal(t, []kafkago.Header{
		{Key: "phase", Value: []byte("liquid")},
		{Key: "processed_at", Value: []byte(processedAt)},
	}, msg.Headers)
}

func TestToMessage_NoHeaders(t *testing.T) {
	msg := toMessage(domain.OutputEvent{Key: []byte("k"), Value: []byte("v")})
	assert.Empty(t, msg.Headers)
}

type stubWriter struct {
	err    error
	calls  int
	writes [][]kafkago.Message
}

func (s *stubWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.writes = append(s.writes, msgs)
	return nil
}

func (s *stubWriter) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriter_LoadBatch(t *testing.T) {
	stub := &stubWriter{}
	w := newWriter(stub, discardLogger())

	events := []domain.OutputEvent{
		{Key: []byte("fe-1"), Value: []byte(`{}`), Headers: map[string]string{"phase": "solid"}},
		{Key: []byte("hg-1"), Value: []byte(`{}`), Headers: map[string]string{"phase": "liquid"}},
	}
	require.NoError(t, w.LoadBatch(context.Background(), events))

	require.Len(t, stub.writes, 1)
	assert.Len(t, stub.writes[0], 2)
	assert.Equal(t, []byte("hg-1"), stub.writes[0][1].Key)
}

func TestWriter_LoadBatchEmpty(t *testing.T) {
	stub := &stubWriter{}
	w := newWriter(stub, discardLogger())

	require.NoError(t, w.LoadBatch(context.Background(), nil))
	assert.Equal(t, 0, stub.calls)
}

func TestWriter_CircuitOpensAfterConsecutiveFailures(t *testing.T) {
	brokerDown := errors.New("broker down")
	stub := &stubWriter{err: brokerDown}
	w := newWriter(stub, discardLogger())
	batch := []domain.OutputEvent{{Key: []byte("k"), Value: []byte("v")}}

	for range 5 {
		assert.ErrorIs(t, w.LoadBatch(context.Background(), batch), brokerDown)
	}

	err := w.LoadBatch(context.Background(), batch)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 5, stub.calls, "open breaker should not reach the broker")
}

func TestWriter_CancelledWritesDoNotOpenCircuit(t *testing.T) {
	stub := &stubWriter{err: context.Canceled}
	w := newWriter(stub, discardLogger())
	batch := []domain.OutputEvent{{Key: []byte("k"), Value: []byte("v")}}

	for range 5 {
		assert.ErrorIs(t, w.LoadBatch(context.Background(), batch), context.Canceled)
	}
	stub.err = context.DeadlineExceeded
	assert.ErrorIs(t, w.LoadBatch(context.Background(), batch), context.DeadlineExceeded)

	stub.err = nil
	require.NoError(t, w.LoadBatch(context.Background(), batch))
	assert.Equal(t, 7, stub.calls, "shutdown errors must not trip the breaker")
	assert.Equal(t, gobreaker.StateClosed, w.circuit.State())
}
