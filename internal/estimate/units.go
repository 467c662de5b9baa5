package estimate

import "fmt"

// Unit is a supported measurement unit. Feet are the canonical internal unit:
// every conversion passes through feet.
type Unit string

const (
	UnitFeet   Unit = "ft"
	UnitMeters Unit = "m"
	UnitInches Unit = "in"
)

const feetPerMeter = 3.28084

// UnsupportedUnitError reports a conversion request for a unit the calculator
// does not know. This is the only hard error in the calculation core; guessing
// a factor would corrupt every downstream total.
type UnsupportedUnitError struct {
	Unit Unit
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported measurement unit %q", string(e.Unit))
}

// ToFeet converts value from the given unit into feet. The area flag marks
// values measured in square units: a square-inch value divides by 144 instead
// of 12. A zero value converts to zero regardless of unit.
func ToFeet(value float64, from Unit, area bool) (float64, error) {
	if value == 0 {
		return 0, nil
	}
	switch from {
	case UnitFeet:
		return value, nil
	case UnitMeters:
		return value * feetPerMeter, nil
	case UnitInches:
		if area {
			return value / 144, nil
		}
		return value / 12, nil
	}
	return 0, &UnsupportedUnitError{Unit: from}
}

// FromFeet converts a value in feet into the given unit. Inverse of ToFeet,
// including the square-inch path.
func FromFeet(value float64, to Unit, area bool) (float64, error) {
	if value == 0 {
		return 0, nil
	}
	switch to {
	case UnitFeet:
		return value, nil
	case UnitMeters:
		return value / feetPerMeter, nil
	case UnitInches:
		if area {
			return value * 144, nil
		}
		return value * 12, nil
	}
	return 0, &UnsupportedUnitError{Unit: to}
}

// Convert converts a linear value between units, passing through feet.
func Convert(value float64, from, to Unit) (float64, error) {
	if from == to {
		// Still reject units we do not know.
		if _, err := ToFeet(1, from, false); err != nil {
			return 0, err
		}
		return value, nil
	}

	feet, err := ToFeet(value, from, false)
	if err != nil {
		return 0, err
	}
	return FromFeet(feet, to, false)
}
