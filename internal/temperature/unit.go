package temperature

import "fmt"

// Unit is a temperature scale tag. Only Kelvin, Celsius and Fahrenheit are valid;
// decoding any other tag fails.
type Unit string

const (
	Kelvin     Unit = "K"
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
)

// Absolute zero expressed in each unit.
const (
	AbsoluteZeroK = 0.0
	AbsoluteZeroC = -273.15
	AbsoluteZeroF = -459.67
)

// Units lists every supported unit in display order.
var Units = []Unit{Kelvin, Celsius, Fahrenheit}

// ParseUnit maps a unit tag ("K", "C" or "F") to a Unit.
func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if !u.Valid() {
		return "", fmt.Errorf("unknown temperature unit %q", s)
	}
	return u, nil
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	switch u {
	case Kelvin, Celsius, Fahrenheit:
		return true
	default:
		return false
	}
}

// AbsoluteZero returns absolute zero in u. ok is false for an unsupported unit.
func (u Unit) AbsoluteZero() (float64, bool) {
	switch u {
	case Kelvin:
		return AbsoluteZeroK, true
	case Celsius:
		return AbsoluteZeroC, true
	case Fahrenheit:
		return AbsoluteZeroF, true
	default:
		return 0, false
	}
}

func (u Unit) String() string {
	return string(u)
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("unknown temperature unit %q", string(u))
	}
	return []byte(u), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so unknown tags are rejected
// at the JSON boundary.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
