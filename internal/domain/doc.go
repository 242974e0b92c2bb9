// Package domain models element temperature readings and their phase
// classification.
//
// # Data Source
//
// Element records come from the periodic table catalog dataset (a JSON array with
// camelCase keys such as "atomicNumber" and "meltingPoint"). Upstream producers
// pair one record with a probe temperature and publish it to the source topic:
//
//	{"element": {"atomicNumber": 80, "symbol": "Hg", ...}, "temperature": 25, "unit": "C"}
//
// Melting and boiling points are always Kelvin. Some elements have no known value
// (carbon sublimes, many superheavy elements were never measured); those fields are
// absent rather than zero.
//
// # Classification
//
// The probe temperature is converted to Kelvin and compared with the element's
// melting and boiling points:
//
//	T < melting point          solid
//	T > boiling point          gas
//	otherwise (inclusive)      liquid
//	missing point / bad probe  unknown
//
// # Display
//
// Every classified reading carries pre-rendered strings in the configured display
// unit ("1811.0°K", "100.0°C"). A property that is missing renders as "N/A"; a
// probe below absolute zero renders as "N/A" in another unit and as
// "Invalid temperature" in its own unit.
//
// # ID Generation
//
// Reading IDs are the lowercase element symbol followed by a truncated SHA-256 of
// atomic number|temperature|unit. See [generateID].
package domain
