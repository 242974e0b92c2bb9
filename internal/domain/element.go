package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidElement is returned when an element record fails validation.
var ErrInvalidElement = errors.New("invalid element")

// MaxAtomicNumber is the highest assigned atomic number (oganesson).
const MaxAtomicNumber = 118

// Category is the periodic table family an element belongs to.
type Category string

const (
	CategoryAlkaliMetal         Category = "alkali-metal"
	CategoryAlkalineEarthMetal  Category = "alkaline-earth-metal"
	CategoryTransitionMetal     Category = "transition-metal"
	CategoryPostTransitionMetal Category = "post-transition-metal"
	CategoryMetalloid           Category = "metalloid"
	CategoryNonmetal            Category = "nonmetal"
	CategoryHalogen             Category = "halogen"
	CategoryNobleGas            Category = "noble-gas"
	CategoryLanthanide          Category = "lanthanide"
	CategoryActinide            Category = "actinide"
)

// Categories lists every category in legend order.
var Categories = []Category{
	CategoryAlkaliMetal,
	CategoryAlkalineEarthMetal,
	CategoryTransitionMetal,
	CategoryPostTransitionMetal,
	CategoryMetalloid,
	CategoryNonmetal,
	CategoryHalogen,
	CategoryNobleGas,
	CategoryLanthanide,
	CategoryActinide,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName title-cases the category, e.g. "noble-gas" -> "Noble Gas".
func (c Category) DisplayName() string {
	words := strings.Split(string(c), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Element is a read-only catalog record. Field names follow the upstream dataset.
// Temperatures are in Kelvin; optional properties are nil when unknown.
type Element struct {
	AtomicNumber          int      `json:"atomicNumber"`
	Symbol                string   `json:"symbol"`
	Name                  string   `json:"name"`
	AtomicMass            float64  `json:"atomicMass"`
	Category              Category `json:"category"`
	Period                int      `json:"period"`
	Group                 int      `json:"group"`
	ElectronConfiguration string   `json:"electronConfiguration,omitempty"`
	OxidationStates       []string `json:"oxidationStates,omitempty"`
	MeltingPoint          *float64 `json:"meltingPoint,omitempty"`
	BoilingPoint          *float64 `json:"boilingPoint,omitempty"`
	Density               *float64 `json:"density,omitempty"` // g/cm³
	Electronegativity     *float64 `json:"electronegativity,omitempty"`
	DiscoveryYear         *int     `json:"discoveryYear,omitempty"`
	Discoverer            string   `json:"discoverer,omitempty"`
}

// Validate checks the fields the phase pipeline depends on.
func (e Element) Validate() error {
	if e.AtomicNumber < 1 || e.AtomicNumber > MaxAtomicNumber {
		return fmt.Errorf("%w: atomic number %d out of range 1..%d", ErrInvalidElement, e.AtomicNumber, MaxAtomicNumber)
	}
	if strings.TrimSpace(e.Symbol) == "" {
		return fmt.Errorf("%w: element %d has no symbol", ErrInvalidElement, e.AtomicNumber)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("%w: element %s has unknown category %q", ErrInvalidElement, e.Symbol, e.Category)
	}
	return nil
}
