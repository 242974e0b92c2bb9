package pipeline_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/element-phase-service/internal/domain"
	"github.com/couchcryptid/element-phase-service/internal/observability"
	"github.com/couchcryptid/element-phase-service/internal/pipeline"
	"github.com/couchcryptid/element-phase-service/internal/temperature"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockReading is one fixture row: a source reading plus the phase it must classify as.
type mockReading struct {
	domain.Reading
	ExpectedPhase temperature.State `json:"expectedPhase"`
}

func TestPhaseTransformer_WithMockReadings(t *testing.T) {
	rows := readMockReadings(t)
	require.Len(t, rows, 14)

	for _, unit := range temperature.Units {
		t.Run("display "+unit.String(), func(t *testing.T) {
			metrics := observability.NewMetricsForTesting()
			transformer := pipeline.NewTransformer(unit, discardLogger(), metrics)

			for i, row := range rows {
				raw := rawEventFromRow(t, row, i)

				out, err := transformer.Transform(context.Background(), raw)
				require.NoError(t, err)
				assert.Equal(t, string(row.ExpectedPhase), out.Headers["phase"], "%s at %v%s", row.Element.Symbol, row.Temperature, row.Unit)

				var pr domain.PhaseReading
				require.NoError(t, json.Unmarshal(out.Value, &pr))
				assert.Equal(t, row.Element.AtomicNumber, pr.AtomicNumber)
				assert.Equal(t, row.ExpectedPhase, pr.Phase)
				assert.Equal(t, unit, pr.DisplayUnit)
				assert.Equal(t, []byte(pr.ID), out.Key)

				if row.Element.BoilingPoint == nil {
					assert.Equal(t, temperature.NotAvailable, pr.BoilingPointDisplay)
				}
				if row.Element.MeltingPoint == nil {
					assert.Equal(t, temperature.NotAvailable, pr.MeltingPointDisplay)
				}
			}

			assert.Equal(t, 6.0, testutil.ToFloat64(metrics.PhaseClassifications.WithLabelValues("liquid")))
			assert.Equal(t, 2.0, testutil.ToFloat64(metrics.PhaseClassifications.WithLabelValues("solid")))
			assert.Equal(t, 3.0, testutil.ToFloat64(metrics.PhaseClassifications.WithLabelValues("gas")))
			assert.Equal(t, 3.0, testutil.ToFloat64(metrics.PhaseClassifications.WithLabelValues("unknown")))
			assert.Equal(t, 1.0, testutil.ToFloat64(metrics.UnconvertibleReadings))
		})
	}
}

func readMockReadings(t *testing.T) []mockReading {
	t.Helper()

	path := filepath.Join("..", "..", "data", "mock", "element_readings.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []mockReading
	require.NoError(t, json.Unmarshal(data, &rows))
	return rows
}

func rawEventFromRow(t *testing.T, row mockReading, index int) domain.RawEvent {
	t.Helper()
	payload, err := json.Marshal(row.Reading)
	require.NoError(t, err)

	return domain.RawEvent{
		Key:    []byte(fmt.Sprintf("reading-%d", index)),
		Value:  payload,
		Topic:  "element-temperature-readings",
		Offset: int64(index),
	}
}
