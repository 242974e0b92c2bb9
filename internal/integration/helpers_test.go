//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/couchcryptid/element-phase-service/internal/domain"
	"github.com/couchcryptid/element-phase-service/internal/temperature"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

// mockReading is one fixture row from data/mock/element_readings.json.
type mockReading struct {
	domain.Reading
	ExpectedPhase temperature.State `json:"expectedPhase"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadMockData(t *testing.T) []mockReading {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "mock", "element_readings.json"))
	require.NoError(t, err, "read mock data")

	var rows []mockReading
	require.NoError(t, json.Unmarshal(data, &rows), "unmarshal mock data")
	require.NotEmpty(t, rows)
	return rows
}

// startKafka runs a single-node KRaft broker and returns its bootstrap address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	ctr, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("element-phase-test"),
	)
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() {
		if err := ctr.Terminate(context.Background()); err != nil {
			t.Logf("terminate kafka container: %v", err)
		}
	})

	brokers, err := ctr.Brokers(ctx)
	require.NoError(t, err, "get kafka brokers")
	require.NotEmpty(t, brokers)
	return brokers[0]
}

// createTopic creates a single-partition topic through the cluster controller.
func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err, "dial broker")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "find controller")

	ctrlConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err, "dial controller")
	defer ctrlConn.Close()

	require.NoError(t, ctrlConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}), "create topic %s", topic)
}
