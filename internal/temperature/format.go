package temperature

import "fmt"

// Display sentinels returned by Format.
const (
	NotAvailable = "N/A"
	InvalidValue = "Invalid temperature"
)

// Format renders v with one decimal and a degree sign, e.g. "100.0°C".
// A nil value renders as NotAvailable and a value below absolute zero for u
// (or an unsupported u) as InvalidValue.
func Format(v *float64, u Unit) string {
	if v == nil {
		return NotAvailable
	}
	if !IsValid(*v, u) {
		return InvalidValue
	}
	return fmt.Sprintf("%.1f°%s", *v, u)
}
