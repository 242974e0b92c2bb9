package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/element-phase-service/internal/domain"
	"github.com/couchcryptid/element-phase-service/internal/observability"
	"github.com/couchcryptid/element-phase-service/internal/temperature"
)

// PhaseTransformer implements Transformer by parsing a reading, classifying its
// phase and rendering it in a fixed display unit.
type PhaseTransformer struct {
	displayUnit temperature.Unit
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// NewTransformer creates a PhaseTransformer that renders readings in displayUnit.
func NewTransformer(displayUnit temperature.Unit, logger *slog.Logger, metrics *observability.Metrics) *PhaseTransformer {
	return &PhaseTransformer{
		displayUnit: displayUnit,
		logger:      logger,
		metrics:     metrics,
	}
}

func (t *PhaseTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	reading, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	pr := domain.ClassifyReading(reading, t.displayUnit)
	if pr.Kelvin == nil {
		t.logger.Debug("reading below absolute zero",
			"symbol", pr.Symbol,
			"temperature", pr.Temperature,
			"unit", pr.Unit,
		)
		t.metrics.UnconvertibleReadings.Inc()
	}
	t.metrics.PhaseClassifications.WithLabelValues(string(pr.Phase)).Inc()

	return domain.SerializePhaseReading(pr)
}
