package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/couchcryptid/element-phase-service/internal/temperature"
)

// ParseRawEvent deserializes a RawEvent's value into a Reading and validates the
// embedded element. Unknown unit tags fail at decode time. An absent or null
// temperature is rejected rather than read as 0 K.
func ParseRawEvent(raw RawEvent) (Reading, error) {
	var r Reading
	if err := json.Unmarshal(raw.Value, &r); err != nil {
		return Reading{}, fmt.Errorf("parse raw event: %w", err)
	}
	var present struct {
		Temperature *float64 `json:"temperature"`
	}
	if err := json.Unmarshal(raw.Value, &present); err != nil {
		return Reading{}, fmt.Errorf("parse raw event: %w", err)
	}
	if present.Temperature == nil {
		return Reading{}, fmt.Errorf("parse raw event: missing temperature")
	}
	if !r.Unit.Valid() {
		return Reading{}, fmt.Errorf("parse raw event: missing temperature unit")
	}
	if err := r.Element.Validate(); err != nil {
		return Reading{}, fmt.Errorf("parse raw event: %w", err)
	}
	return r, nil
}

// ClassifyReading converts a reading to Kelvin, determines the element's phase and
// renders the display fields in displayUnit.
//
// A reading below absolute zero is not an error: Kelvin stays nil and the phase is
// unknown, so one bad probe never blocks the rest of a batch.
func ClassifyReading(r Reading, displayUnit temperature.Unit) PhaseReading {
	e := r.Element

	var kelvin *float64
	if k, ok := temperature.Convert(r.Temperature, r.Unit, temperature.Kelvin); ok && temperature.IsValid(k, temperature.Kelvin) {
		kelvin = &k
	}

	return PhaseReading{
		ID:           generateID(e.Symbol, e.AtomicNumber, r.Temperature, r.Unit),
		AtomicNumber: e.AtomicNumber,
		Symbol:       e.Symbol,
		Name:         e.Name,
		Category:     e.Category,

		Temperature: r.Temperature,
		Unit:        r.Unit,
		Kelvin:      kelvin,
		Phase:       temperature.ClassifyState(e.MeltingPoint, e.BoilingPoint, r.Temperature, r.Unit),

		DisplayUnit:         displayUnit,
		DisplayTemperature:  displayReading(r.Temperature, r.Unit, displayUnit),
		MeltingPointDisplay: DisplayTemperature(e.MeltingPoint, displayUnit),
		BoilingPointDisplay: DisplayTemperature(e.BoilingPoint, displayUnit),

		ProcessedAt: clock.Now(),
	}
}

// DisplayTemperature renders a Kelvin property in unit. Missing or unconvertible
// values render as temperature.NotAvailable.
func DisplayTemperature(kelvin *float64, unit temperature.Unit) string {
	if kelvin == nil {
		return temperature.NotAvailable
	}
	return displayReading(*kelvin, temperature.Kelvin, unit)
}

func displayReading(v float64, from, to temperature.Unit) string {
	converted, ok := temperature.Convert(v, from, to)
	if !ok {
		return temperature.Format(nil, to)
	}
	return temperature.Format(&converted, to)
}

// SerializePhaseReading marshals a PhaseReading into an OutputEvent keyed by its ID.
func SerializePhaseReading(pr PhaseReading) (OutputEvent, error) {
	data, err := json.Marshal(pr)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize phase reading: %w", err)
	}
	return OutputEvent{
		Key:   []byte(pr.ID),
		Value: data,
		Headers: map[string]string{
			"phase":        string(pr.Phase),
			"processed_at": pr.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}

// generateID produces a deterministic ID so replaying the same probe yields the
// same key downstream.
func generateID(symbol string, atomicNumber int, value float64, unit temperature.Unit) string {
	input := fmt.Sprintf("%d|%g|%s", atomicNumber, value, unit)
	hash := sha256.Sum256([]byte(input))
	return strings.ToLower(symbol) + "-" + hex.EncodeToString(hash[:8])
}
