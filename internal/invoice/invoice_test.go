package invoice

import (
	"math"
	"testing"

	"github.com/samsoftwaredev/inriservices-sub002/internal/estimate"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestBuild_WallAndCeilingScenario(t *testing.T) {
	calc := estimate.NewCalculator()

	features := []estimate.RoomFeature{
		{
			Name:      "Wall",
			Magnitude: floatPtr(40),
			Unit:      estimate.UnitFeet,
			Coats:     2,
			Tasks: []estimate.LaborTask{
				{
					Name:      "Roll walls",
					Hours:     3,
					Rate:      35,
					Materials: []estimate.LaborMaterial{{Quantity: 2, UnitPrice: 45}},
				},
			},
		},
		{
			Name:      "Ceiling",
			Magnitude: floatPtr(150),
			Unit:      estimate.UnitFeet,
			Coats:     1,
			Area:      true,
		},
	}

	summary, items, err := Build(calc, features, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	nearlyEqual(t, "totalLaborCost", summary.TotalLaborCost, 105)
	nearlyEqual(t, "totalMaterialCost", summary.TotalMaterialCost, 90)
	nearlyEqual(t, "totalCost", summary.TotalCost, 195)
	// 40*2 + 150 feet at coverage 350.
	nearlyEqual(t, "totalGallons", summary.TotalGallons, 230.0/350.0)
	nearlyEqual(t, "totalHours", summary.TotalHours, 3)
	if summary.TotalDays != 1 {
		t.Fatalf("totalDays = %d, want 1", summary.TotalDays)
	}

	if len(items) != 2 {
		t.Fatalf("expected labor + material lines, got %+v", items)
	}
	if items[0].Description != "Wall: Roll walls" {
		t.Fatalf("unexpected labor line description %q", items[0].Description)
	}
	nearlyEqual(t, "labor line amount", items[0].Amount, 105)
	nearlyEqual(t, "material line amount", items[1].Amount, 90)
}

func TestBuild_ExcludingMaterials(t *testing.T) {
	calc := estimate.NewCalculator()
	features := []estimate.RoomFeature{
		{
			Name: "Wall",
			Tasks: []estimate.LaborTask{
				{Name: "Roll walls", Hours: 3, Rate: 35, Materials: []estimate.LaborMaterial{{Quantity: 2, UnitPrice: 45}}},
			},
		},
	}

	summary, items, err := Build(calc, features, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	nearlyEqual(t, "totalCost excludes materials", summary.TotalCost, 105)
	nearlyEqual(t, "materials still reported", summary.TotalMaterialCost, 90)
	if len(items) != 1 {
		t.Fatalf("expected only the labor line, got %+v", items)
	}
}

func TestBuild_NegativeTaskValuesCoerceToZero(t *testing.T) {
	calc := estimate.NewCalculator()
	features := []estimate.RoomFeature{
		{
			Name: "Wall",
			Tasks: []estimate.LaborTask{
				{Name: "Roll walls", Hours: -3, Rate: 35},
				{Name: "Cut in", Hours: 2, Rate: math.NaN()},
			},
		},
	}

	summary, items, err := Build(calc, features, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Bad hours and rates count as zero everywhere, so the summary and the
	// line items agree.
	nearlyEqual(t, "totalHours", summary.TotalHours, 2)
	nearlyEqual(t, "totalLaborCost", summary.TotalLaborCost, 0)
	nearlyEqual(t, "totalCost", summary.TotalCost, 0)
	if summary.TotalDays != 1 {
		t.Fatalf("totalDays = %d, want 1", summary.TotalDays)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 labor lines, got %+v", items)
	}
	nearlyEqual(t, "negative hours line quantity", items[0].Quantity, 0)
	nearlyEqual(t, "negative hours line amount", items[0].Amount, 0)
	nearlyEqual(t, "NaN rate line rate", items[1].Rate, 0)
	nearlyEqual(t, "NaN rate line amount", items[1].Amount, 0)
}

func TestBuild_EmptyFeatures(t *testing.T) {
	summary, items, err := Build(estimate.NewCalculator(), nil, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if summary != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
	if len(items) != 0 {
		t.Fatalf("expected no line items, got %+v", items)
	}
}

func TestLineItemAmount(t *testing.T) {
	item := NewLineItem("Trim: Paint trim", 2.5, 40)
	nearlyEqual(t, "amount", item.Amount, 100)
}

func TestCentsRounding(t *testing.T) {
	cases := []struct {
		dollars float64
		want    int64
	}{
		{195, 19500},
		{361.25, 36125},
		{0.125, 13},
		{10.994, 1099},
		{0, 0},
	}
	for _, c := range cases {
		if got := Cents(c.dollars); got != c.want {
			t.Fatalf("Cents(%v) = %d, want %d", c.dollars, got, c.want)
		}
	}

	nearlyEqual(t, "dollars round trip", Dollars(36125), 361.25)
}
