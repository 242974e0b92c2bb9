package temperature

import (
	"errors"
	"fmt"
)

// ErrOutOfPhysicalRange is the single error kind raised by the conversion
// primitives: the input lies below absolute zero for its own unit.
var ErrOutOfPhysicalRange = errors.New("temperature below absolute zero")

// RangeError reports the rejected value and its unit.
type RangeError struct {
	Value float64
	Unit  Unit
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %g°%s", ErrOutOfPhysicalRange, e.Value, e.Unit)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfPhysicalRange
}

// IsValid reports whether v is at or above absolute zero in u.
// It is false for an unsupported unit and for NaN.
func IsValid(v float64, u Unit) bool {
	zero, ok := u.AbsoluteZero()
	if !ok {
		return false
	}
	return v >= zero
}

func check(v float64, u Unit) error {
	if !IsValid(v, u) {
		return &RangeError{Value: v, Unit: u}
	}
	return nil
}

// atLeast keeps a converted valid input from landing a rounding step below
// absolute zero in the target unit.
func atLeast(v, zero float64) float64 {
	if v < zero {
		return zero
	}
	return v
}

// KelvinToCelsius converts k to Celsius.
func KelvinToCelsius(k float64) (float64, error) {
	if err := check(k, Kelvin); err != nil {
		return 0, err
	}
	return atLeast(k-273.15, AbsoluteZeroC), nil
}

// KelvinToFahrenheit converts k to Fahrenheit.
func KelvinToFahrenheit(k float64) (float64, error) {
	if err := check(k, Kelvin); err != nil {
		return 0, err
	}
	return atLeast((k-273.15)*9/5+32, AbsoluteZeroF), nil
}

// CelsiusToKelvin converts c to Kelvin.
func CelsiusToKelvin(c float64) (float64, error) {
	if err := check(c, Celsius); err != nil {
		return 0, err
	}
	return atLeast(c+273.15, AbsoluteZeroK), nil
}

// CelsiusToFahrenheit converts c to Fahrenheit.
func CelsiusToFahrenheit(c float64) (float64, error) {
	if err := check(c, Celsius); err != nil {
		return 0, err
	}
	return atLeast(c*9/5+32, AbsoluteZeroF), nil
}

// FahrenheitToKelvin converts f to Kelvin.
func FahrenheitToKelvin(f float64) (float64, error) {
	if err := check(f, Fahrenheit); err != nil {
		return 0, err
	}
	return atLeast((f-32)*5/9+273.15, AbsoluteZeroK), nil
}

// FahrenheitToCelsius converts f to Celsius.
func FahrenheitToCelsius(f float64) (float64, error) {
	if err := check(f, Fahrenheit); err != nil {
		return 0, err
	}
	return atLeast((f-32)*5/9, AbsoluteZeroC), nil
}

// Convert converts v from one unit to another through Kelvin.
//
// When from == to, v is returned untouched without validation. Any failure on
// either leg (a value below absolute zero or an unsupported unit) yields ok == false
// rather than an error, so callers can render the value as unavailable.
func Convert(v float64, from, to Unit) (float64, bool) {
	if from == to {
		return v, true
	}
	k, err := toKelvin(v, from)
	if err != nil {
		return 0, false
	}
	out, err := fromKelvin(k, to)
	if err != nil {
		return 0, false
	}
	return out, true
}

func toKelvin(v float64, u Unit) (float64, error) {
	switch u {
	case Kelvin:
		return v, check(v, Kelvin)
	case Celsius:
		return CelsiusToKelvin(v)
	case Fahrenheit:
		return FahrenheitToKelvin(v)
	default:
		return 0, fmt.Errorf("unknown temperature unit %q", string(u))
	}
}

func fromKelvin(k float64, u Unit) (float64, error) {
	switch u {
	case Kelvin:
		return k, check(k, Kelvin)
	case Celsius:
		return KelvinToCelsius(k)
	case Fahrenheit:
		return KelvinToFahrenheit(k)
	default:
		return 0, fmt.Errorf("unknown temperature unit %q", string(u))
	}
}
