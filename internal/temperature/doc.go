// Package temperature converts, validates, formats and classifies temperatures
// in Kelvin, Celsius and Fahrenheit.
//
// # Validity
//
// A value is physically valid for its unit when it is at or above that unit's
// absolute zero:
//
//	K: 0   C: -273.15   F: -459.67
//
// # Failure policy
//
// The six unit-specific primitives (KelvinToCelsius and friends) validate their
// input and return an error wrapping [ErrOutOfPhysicalRange]; they never clamp an
// invalid input. [Convert] sits above them and degrades instead: any failure on
// either leg is reported as ok == false so catalog views can show the value as
// unavailable. [Format] never fails and maps missing or invalid input to the
// sentinels [NotAvailable] and [InvalidValue].
//
// Cross-unit conversion always pivots through Kelvin. Converting a unit to itself
// returns the input unchanged, without validation.
//
// All functions are pure and safe for concurrent use.
package temperature
