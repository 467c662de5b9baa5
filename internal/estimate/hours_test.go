package estimate

import (
	"math"
	"testing"
)

func TestEstimateHours_Defaults(t *testing.T) {
	// 300/150 + 240/120 + 100/50 = 2 + 2 + 2 = 6 hours at one coat each.
	got := EstimateHours(HoursInput{
		WallSqFt:     300,
		CeilingSqFt:  240,
		TrimLinearFt: 100,
	})
	nearlyEqual(t, "default speeds and coats", got, 6)
}

func TestEstimateHours_CoatsAndEfficiency(t *testing.T) {
	got := EstimateHours(HoursInput{
		WallSqFt:   150,
		WallCoats:  2,
		Efficiency: 1.5,
	})
	nearlyEqual(t, "two coats with slow crew", got, 3)

	fast := EstimateHours(HoursInput{
		WallSqFt:   150,
		WallCoats:  2,
		Efficiency: 0.5,
	})
	nearlyEqual(t, "two coats with fast crew", fast, 1)
}

func TestEstimateHours_AllZeroIsZero(t *testing.T) {
	if got := EstimateHours(HoursInput{}); got != 0 {
		t.Fatalf("EstimateHours(zero input) = %v, want 0", got)
	}
}

func TestEstimateHours_RoundsToTwoDecimals(t *testing.T) {
	// 100/150 = 0.6666... rounds to 0.67.
	got := EstimateHours(HoursInput{WallSqFt: 100})
	if got != 0.67 {
		t.Fatalf("EstimateHours = %v, want 0.67", got)
	}
}

func TestEstimateHours_Monotonic(t *testing.T) {
	base := HoursInput{WallSqFt: 200, CeilingSqFt: 100, TrimLinearFt: 40}
	baseline := EstimateHours(base)

	bumped := []HoursInput{
		{WallSqFt: 300, CeilingSqFt: 100, TrimLinearFt: 40},
		{WallSqFt: 200, CeilingSqFt: 180, TrimLinearFt: 40},
		{WallSqFt: 200, CeilingSqFt: 100, TrimLinearFt: 90},
		{WallSqFt: 200, CeilingSqFt: 100, TrimLinearFt: 40, WallCoats: 2},
		{WallSqFt: 200, CeilingSqFt: 100, TrimLinearFt: 40, CeilingCoats: 3},
		{WallSqFt: 200, CeilingSqFt: 100, TrimLinearFt: 40, TrimCoats: 2},
	}
	for i, in := range bumped {
		if got := EstimateHours(in); got < baseline {
			t.Fatalf("case %d: hours %v decreased below baseline %v", i, got, baseline)
		}
	}
}

func TestEstimateHours_InvalidInputsCoerceToZero(t *testing.T) {
	got := EstimateHours(HoursInput{
		WallSqFt:     math.NaN(),
		CeilingSqFt:  -50,
		TrimLinearFt: math.Inf(1),
	})
	if got != 0 {
		t.Fatalf("EstimateHours(invalid) = %v, want 0", got)
	}
}

func TestHoursToDays(t *testing.T) {
	cases := []struct {
		hours       float64
		hoursPerDay float64
		want        int
	}{
		{16, 8, 2},
		{17, 8, 3},
		{0, 8, 0},
		{0.5, 8, 1},
		{9, 0, 2}, // hoursPerDay defaults to 8
	}
	for _, c := range cases {
		if got := HoursToDays(c.hours, c.hoursPerDay); got != c.want {
			t.Fatalf("HoursToDays(%v, %v) = %d, want %d", c.hours, c.hoursPerDay, got, c.want)
		}
	}
}
