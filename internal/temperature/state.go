package temperature

// State is the phase of matter at a given temperature.
type State string

const (
	Solid   State = "solid"
	Liquid  State = "liquid"
	Gas     State = "gas"
	Unknown State = "unknown"
)

// ClassifyState determines the phase of a substance with the given melting and
// boiling points (both Kelvin) at temperature t expressed in u.
//
// The result is Unknown when either point is missing or zero, or when t cannot be
// converted to Kelvin. Exactly at the melting or boiling point is Liquid.
func ClassifyState(meltingPoint, boilingPoint *float64, t float64, u Unit) State {
	if meltingPoint == nil || boilingPoint == nil || *meltingPoint == 0 || *boilingPoint == 0 {
		return Unknown
	}

	k := t
	if u != Kelvin {
		var ok bool
		if k, ok = Convert(t, u, Kelvin); !ok {
			return Unknown
		}
	}
	if !IsValid(k, Kelvin) {
		return Unknown
	}

	switch {
	case k < *meltingPoint:
		return Solid
	case k > *boilingPoint:
		return Gas
	default:
		return Liquid
	}
}
