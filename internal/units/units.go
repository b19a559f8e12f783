// Package units provides the velocity unit constants, conversion and display
// formatting used by the analytics outputs.
package units

import "strconv"

// Unit constants
const (
	KMPS = "kmps"
	MPS  = "mps"
	MPH  = "mph"
	KMPH = "kmph"
	KPH  = "kph"
)

// SimStepToKMPS converts a satellite displacement in simulation distance
// units per playback step into kilometres per second. It was calibrated once
// by mapping the largest observed step (0.145) onto a typical low Earth orbit
// velocity of about 7.8 km/s.
const SimStepToKMPS = 53.79

// ValidUnits contains all valid unit values
var ValidUnits = []string{KMPS, MPS, MPH, KMPH, KPH}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "kmps, mps, mph, kmph, kph"
}

// ConvertSpeed converts a speed from kilometres per second to the target units.
// Analytics always produce km/s; conversion happens only for display.
func ConvertSpeed(speedKMPS float64, targetUnits string) float64 {
	switch targetUnits {
	case MPS:
		return speedKMPS * 1000
	case MPH:
		return speedKMPS * 1000 * 2.2369362920544
	case KMPH, KPH:
		return speedKMPS * 3600
	default:
		return speedKMPS
	}
}

// Label returns the short display suffix for a unit, e.g. "km/s".
func Label(unit string) string {
	switch unit {
	case MPS:
		return "m/s"
	case MPH:
		return "mph"
	case KMPH, KPH:
		return "km/h"
	default:
		return "km/s"
	}
}

// Format renders v with a fixed number of decimal places.
// Negative precision is treated as zero.
func Format(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
