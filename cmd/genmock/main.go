// Command genmock generates the element reading fixture used by the pipeline and
// integration test suites. Each probe is classified with the actual domain package
// so the expected phases always match real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock/element_readings.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/couchcryptid/element-phase-service/internal/domain"
	"github.com/couchcryptid/element-phase-service/internal/temperature"
	"github.com/jonboulle/clockwork"
)

// fixtureRow is one entry of the generated fixture.
type fixtureRow struct {
	domain.Reading
	ExpectedPhase temperature.State `json:"expectedPhase"`
}

type probe struct {
	symbol string
	temp   float64
	unit   temperature.Unit
}

// probes covers every phase, elements with missing points, each input unit and one
// reading below absolute zero.
var probes = []probe{
	{"H", 20, temperature.Kelvin},
	{"He", 300, temperature.Kelvin},
	{"C", 300, temperature.Kelvin},
	{"N", 70, temperature.Kelvin},
	{"O", -200, temperature.Celsius},
	{"Na", 25, temperature.Celsius},
	{"Ga", 86, temperature.Fahrenheit},
	{"Br", 25, temperature.Celsius},
	{"Fe", 1600, temperature.Celsius},
	{"Hg", -40, temperature.Fahrenheit},
	{"W", 6000, temperature.Kelvin},
	{"Og", 300, temperature.Kelvin},
	{"Fe", -500, temperature.Fahrenheit},
	{"Hg", 700, temperature.Kelvin},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data/mock/element_readings.json", "output path for the reading fixture")
	flag.Parse()

	// Set a fixed clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2024, time.April, 27, 6, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	bySymbol := make(map[string]domain.Element, len(catalog))
	for _, e := range catalog {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		bySymbol[e.Symbol] = e
	}

	rows := make([]fixtureRow, 0, len(probes))
	classified := make([]domain.PhaseReading, 0, len(probes))
	for _, p := range probes {
		e, ok := bySymbol[p.symbol]
		if !ok {
			return fmt.Errorf("probe references unknown element %q", p.symbol)
		}
		reading := domain.Reading{Element: e, Temperature: p.temp, Unit: p.unit}

		// Round-trip through the wire format exactly as the pipeline sees it.
		payload, err := json.Marshal(reading)
		if err != nil {
			return fmt.Errorf("marshal reading: %w", err)
		}
		parsed, err := domain.ParseRawEvent(domain.RawEvent{Value: payload})
		if err != nil {
			return err
		}

		pr := domain.ClassifyReading(parsed, temperature.Kelvin)
		classified = append(classified, pr)
		rows = append(rows, fixtureRow{Reading: reading, ExpectedPhase: pr.Phase})
	}

	if err := writeJSON(*out, rows); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote fixture: %s (%d readings)", *out, len(rows))

	printStats(classified)
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(readings []domain.PhaseReading) {
	phaseCounts := map[temperature.State]int{}
	unitCounts := map[temperature.Unit]int{}
	var unconvertible int
	for i := range readings {
		r := &readings[i]
		phaseCounts[r.Phase]++
		unitCounts[r.Unit]++
		if r.Kelvin == nil {
			unconvertible++
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(readings))
	fmt.Printf("By phase: solid=%d, liquid=%d, gas=%d, unknown=%d\n",
		phaseCounts[temperature.Solid], phaseCounts[temperature.Liquid],
		phaseCounts[temperature.Gas], phaseCounts[temperature.Unknown])
	fmt.Printf("By input unit: K=%d, C=%d, F=%d\n",
		unitCounts[temperature.Kelvin], unitCounts[temperature.Celsius], unitCounts[temperature.Fahrenheit])
	fmt.Printf("Below absolute zero: %d\n", unconvertible)

	symbols := make([]string, 0, len(readings))
	for i := range readings {
		r := &readings[i]
		symbols = append(symbols, fmt.Sprintf("%s@%s=%s", r.Symbol, r.DisplayTemperature, r.Phase))
	}
	sort.Strings(symbols)
	fmt.Println("\nReadings:")
	for _, s := range symbols {
		fmt.Printf("  %s\n", s)
	}
}
