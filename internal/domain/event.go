package domain

import (
	"context"
	"time"

	"github.com/couchcryptid/element-phase-service/internal/temperature"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Reading is a temperature probe for one element, as published on the source topic.
// The element record is passed through from the catalog dataset unchanged.
type Reading struct {
	Element     Element          `json:"element"`
	Temperature float64          `json:"temperature"`
	Unit        temperature.Unit `json:"unit"`
}

// PhaseReading is a classified reading destined for the sink topic.
type PhaseReading struct {
	ID           string   `json:"id"`
	AtomicNumber int      `json:"atomic_number"`
	Symbol       string   `json:"symbol"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`

	Temperature float64           `json:"temperature"`
	Unit        temperature.Unit  `json:"unit"`
	Kelvin      *float64          `json:"kelvin"` // nil when the reading is below absolute zero
	Phase       temperature.State `json:"phase"`

	// Display fields, rendered in DisplayUnit.
	DisplayUnit         temperature.Unit `json:"display_unit"`
	DisplayTemperature  string           `json:"display_temperature"`
	MeltingPointDisplay string           `json:"melting_point_display"`
	BoilingPointDisplay string           `json:"boiling_point_display"`

	ProcessedAt time.Time `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
