package estimate

import (
	"encoding/json"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestFeatureGallons_UnmeasuredIsZero(t *testing.T) {
	calc := NewCalculator()

	unmeasured := RoomFeature{Name: "Closet wall", Unit: UnitFeet}
	got, err := unmeasured.Gallons(calc)
	if err != nil {
		t.Fatalf("Gallons: %v", err)
	}
	if got != 0 {
		t.Fatalf("unmeasured feature gallons = %v, want 0", got)
	}

	zero := RoomFeature{Name: "Accent wall", Magnitude: floatPtr(0), Unit: UnitFeet}
	got, err = zero.Gallons(calc)
	if err != nil {
		t.Fatalf("Gallons: %v", err)
	}
	if got != 0 {
		t.Fatalf("zero-magnitude feature gallons = %v, want 0", got)
	}
}

func TestFeatureGallons_AreaFlagUsesAreaPath(t *testing.T) {
	calc := NewCalculator()
	calc.CoverageRate = 100

	ceiling := RoomFeature{Name: "Ceiling", Magnitude: floatPtr(14400), Unit: UnitInches, Area: true}
	got, err := ceiling.Gallons(calc)
	if err != nil {
		t.Fatalf("Gallons: %v", err)
	}
	nearlyEqual(t, "ceiling gallons via square inches", got, 1)
}

func TestGallonsByPaintBase_Grouping(t *testing.T) {
	calc := NewCalculator()
	calc.CoverageRate = 100

	features := []RoomFeature{
		{Name: "North wall", Magnitude: floatPtr(100), Unit: UnitFeet, PaintBase: "eggshell-white"},
		{Name: "South wall", Magnitude: floatPtr(200), Unit: UnitFeet, PaintBase: "eggshell-white"},
		{Name: "Trim", Magnitude: floatPtr(50), Unit: UnitFeet, PaintBase: "semi-gloss"},
		{Name: "Patch", Magnitude: floatPtr(100), Unit: UnitFeet},
	}

	bases, err := GallonsByPaintBase(calc, features)
	if err != nil {
		t.Fatalf("GallonsByPaintBase: %v", err)
	}

	nearlyEqual(t, "eggshell-white", bases["eggshell-white"], 3)
	nearlyEqual(t, "semi-gloss", bases["semi-gloss"], 0.5)
	nearlyEqual(t, "untagged group", bases[""], 1)

	sections, err := GallonsBySection(calc, features)
	if err != nil {
		t.Fatalf("GallonsBySection: %v", err)
	}
	nearlyEqual(t, "North wall section", sections["North wall"], 1)

	total, err := TotalGallons(calc, features)
	if err != nil {
		t.Fatalf("TotalGallons: %v", err)
	}
	nearlyEqual(t, "total gallons", total, 4.5)
}

func TestRoomFeatureUnmarshal_MagnitudeForms(t *testing.T) {
	cases := []struct {
		name string
		body string
		want *float64
	}{
		{"number", `{"name":"Wall","magnitude":150,"unit":"ft"}`, floatPtr(150)},
		{"numeric string", `{"name":"Wall","magnitude":"150","unit":"ft"}`, floatPtr(150)},
		{"padded string", `{"name":"Wall","magnitude":" 12.5 ","unit":"ft"}`, floatPtr(12.5)},
		{"garbage string", `{"name":"Wall","magnitude":"abc","unit":"ft"}`, floatPtr(0)},
		{"negative string", `{"name":"Wall","magnitude":"-40","unit":"ft"}`, floatPtr(0)},
		{"null", `{"name":"Wall","magnitude":null,"unit":"ft"}`, nil},
		{"absent", `{"name":"Wall","unit":"ft"}`, nil},
	}

	for _, c := range cases {
		var f RoomFeature
		if err := json.Unmarshal([]byte(c.body), &f); err != nil {
			t.Fatalf("%s: unmarshal: %v", c.name, err)
		}
		switch {
		case c.want == nil && f.Magnitude != nil:
			t.Fatalf("%s: magnitude = %v, want nil", c.name, *f.Magnitude)
		case c.want != nil && f.Magnitude == nil:
			t.Fatalf("%s: magnitude = nil, want %v", c.name, *c.want)
		case c.want != nil && *f.Magnitude != *c.want:
			t.Fatalf("%s: magnitude = %v, want %v", c.name, *f.Magnitude, *c.want)
		}
	}
}

func TestFeatureHours_SumsTaskHours(t *testing.T) {
	f := RoomFeature{
		Name: "Wall",
		Tasks: []LaborTask{
			{Name: "Roll walls", Hours: 3, Rate: 35},
			{Name: "Cut in", Hours: 1.25, Rate: 35},
		},
	}
	nearlyEqual(t, "feature hours", f.Hours(), 4.25)
}
