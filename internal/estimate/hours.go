package estimate

import "math"

// Default crew productivity speeds, in square or linear feet painted per
// labor-hour per coat.
const (
	DefaultWallSpeed    = 150.0
	DefaultCeilingSpeed = 120.0
	DefaultTrimSpeed    = 50.0
	DefaultHoursPerDay  = 8.0
)

// HoursInput aggregates the measured surfaces of a job for the labor
// estimate. Zero-value fields fall back to the defaults: coats 1, the
// standard speeds, efficiency 1.
type HoursInput struct {
	WallSqFt     float64
	CeilingSqFt  float64
	TrimLinearFt float64

	WallCoats    float64
	CeilingCoats float64
	TrimCoats    float64

	WallSpeed    float64
	CeilingSpeed float64
	TrimSpeed    float64

	Efficiency float64
}

// EstimateHours computes total labor hours for the given surfaces, rounded to
// two decimal places.
func EstimateHours(in HoursInput) float64 {
	wallSpeed := defaultSpeed(in.WallSpeed, DefaultWallSpeed)
	ceilingSpeed := defaultSpeed(in.CeilingSpeed, DefaultCeilingSpeed)
	trimSpeed := defaultSpeed(in.TrimSpeed, DefaultTrimSpeed)

	efficiency := Sanitize(in.Efficiency)
	if efficiency == 0 {
		efficiency = 1
	}

	hours := Sanitize(in.WallSqFt)/wallSpeed*defaultCoats(in.WallCoats) +
		Sanitize(in.CeilingSqFt)/ceilingSpeed*defaultCoats(in.CeilingCoats) +
		Sanitize(in.TrimLinearFt)/trimSpeed*defaultCoats(in.TrimCoats)
	hours *= efficiency

	return math.Round(hours*100) / 100
}

// HoursToDays converts labor hours into whole working days, rounding any
// partial day up. Zero hours is zero days.
func HoursToDays(hours, hoursPerDay float64) int {
	hours = Sanitize(hours)
	if hours == 0 {
		return 0
	}
	if hoursPerDay <= 0 {
		hoursPerDay = DefaultHoursPerDay
	}
	return int(math.Ceil(hours / hoursPerDay))
}

func defaultSpeed(v, fallback float64) float64 {
	v = Sanitize(v)
	if v == 0 {
		return fallback
	}
	return v
}

func defaultCoats(v float64) float64 {
	v = Sanitize(v)
	if v == 0 {
		return 1
	}
	return v
}
