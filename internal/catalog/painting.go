package catalog

// Painting is the interior/exterior painting SKU catalog. Surface, scope,
// system, prep, method, access, and occupancy scale the base rate; sheen
// upcharges, conditions, and add-ons are flat adders.
var Painting = Catalog{
	Trade: "painting",
	Dimensions: []Dimension{
		{
			Name: "surface",
			Options: []Option{
				{ID: "S1", Label: "Walls", Kind: KindMultiplier, Value: 1.0},
				{ID: "S2", Label: "Ceiling", Kind: KindMultiplier, Value: 1.15},
				{ID: "S3", Label: "Trim & baseboard", Kind: KindMultiplier, Value: 1.25},
				{ID: "S4", Label: "Doors & frames", Kind: KindMultiplier, Value: 1.2},
				{ID: "S5", Label: "Cabinets", Kind: KindMultiplier, Value: 1.6},
				{ID: "S6", Label: "Exterior siding", Kind: KindMultiplier, Value: 1.35},
			},
		},
		{
			Name: "unit",
			Options: []Option{
				{ID: "U1", Label: "Per square foot", Kind: KindMultiplier, Value: 1.0},
				{ID: "U2", Label: "Per linear foot", Kind: KindMultiplier, Value: 1.0},
				{ID: "U3", Label: "Per each", Kind: KindMultiplier, Value: 1.0},
			},
		},
		{
			Name: "scope",
			Options: []Option{
				{ID: "SC1", Label: "Touch-up", Kind: KindMultiplier, Value: 0.6},
				{ID: "SC2", Label: "Single room", Kind: KindMultiplier, Value: 1.0},
				{ID: "SC3", Label: "Whole interior", Kind: KindMultiplier, Value: 0.95},
				{ID: "SC4", Label: "Exterior", Kind: KindMultiplier, Value: 1.2},
			},
		},
		{
			Name: "system",
			Options: []Option{
				{ID: "SY1", Label: "One coat refresh", Kind: KindMultiplier, Value: 0.7},
				{ID: "SY2", Label: "Two coats", Kind: KindMultiplier, Value: 1.0},
				{ID: "SY3", Label: "Prime + two coats", Kind: KindMultiplier, Value: 1.3},
				{ID: "SY4", Label: "Stain-block + two coats", Kind: KindMultiplier, Value: 1.45},
			},
		},
		{
			Name: "prep",
			Options: []Option{
				{ID: "P1", Label: "Light prep", Kind: KindMultiplier, Value: 1.0},
				{ID: "P2", Label: "Standard prep", Kind: KindMultiplier, Value: 1.1},
				{ID: "P3", Label: "Heavy prep", Kind: KindMultiplier, Value: 1.35},
			},
		},
		{
			Name: "sheen",
			Options: []Option{
				{ID: "SH1", Label: "Flat", Kind: KindAdder, Value: 0},
				{ID: "SH2", Label: "Eggshell", Kind: KindAdder, Value: 5},
				{ID: "SH3", Label: "Satin", Kind: KindAdder, Value: 8},
				{ID: "SH4", Label: "Semi-gloss", Kind: KindAdder, Value: 12},
				{ID: "SH5", Label: "Gloss", Kind: KindAdder, Value: 18},
			},
		},
		{
			Name: "method",
			Options: []Option{
				{ID: "M1", Label: "Brush & roll", Kind: KindMultiplier, Value: 1.0},
				{ID: "M2", Label: "Spray", Kind: KindMultiplier, Value: 0.85},
				{ID: "M3", Label: "Spray + back-roll", Kind: KindMultiplier, Value: 1.05},
			},
		},
		{
			Name: "access",
			Options: []Option{
				{ID: "AC1", Label: "Ground level", Kind: KindMultiplier, Value: 1.0},
				{ID: "AC2", Label: "Ladder work", Kind: KindMultiplier, Value: 1.15},
				{ID: "AC3", Label: "Scaffold", Kind: KindMultiplier, Value: 1.4},
				{ID: "AC4", Label: "Lift", Kind: KindMultiplier, Value: 1.6},
			},
		},
		{
			Name: "occupancy",
			Options: []Option{
				{ID: "O1", Label: "Vacant", Kind: KindMultiplier, Value: 1.0},
				{ID: "O2", Label: "Occupied", Kind: KindMultiplier, Value: 1.12},
				{ID: "O3", Label: "Occupied, furniture in place", Kind: KindMultiplier, Value: 1.25},
			},
		},
		{
			Name: "conditions",
			Options: []Option{
				{ID: "C1", Label: "Minor drywall damage", Kind: KindAdder, Value: 45},
				{ID: "C2", Label: "Water stains", Kind: KindAdder, Value: 35},
				{ID: "C3", Label: "Smoke sealing", Kind: KindAdder, Value: 120},
				{ID: "C4", Label: "Wallpaper removal", Kind: KindAdder, Value: 150},
				{ID: "C5", Label: "Heavy nail pops", Kind: KindAdder, Value: 40},
			},
		},
		{
			Name: "addons",
			Options: []Option{
				{ID: "A1", Label: "Color change", Kind: KindAdder, Value: 40},
				{ID: "A2", Label: "Accent wall", Kind: KindAdder, Value: 60},
				{ID: "A3", Label: "Crisp ceiling line", Kind: KindAdder, Value: 25},
				{ID: "A4", Label: "Same-day turnaround", Kind: KindAdder, Value: 75},
			},
		},
	},
	Presets: []Preset{
		{
			Name:   "Bedroom refresh",
			IDs:    []string{"S1", "U1", "SC2", "SY2", "P1", "SH2", "M1", "AC1", "O2"},
			Extras: []string{"A1"},
		},
		{
			Name: "Whole interior repaint",
			IDs:  []string{"S1", "U1", "SC3", "SY3", "P2", "SH2", "M3", "AC1", "O1"},
		},
		{
			Name:   "Ceiling only",
			IDs:    []string{"S2", "U1", "SC2", "SY2", "P1", "SH1", "M1", "AC2", "O2"},
			Extras: []string{"C2"},
		},
		{
			Name:   "Trim & doors package",
			IDs:    []string{"S3", "U2", "SC2", "SY2", "P2", "SH4", "M1", "AC1", "O2"},
			Extras: []string{"A1"},
		},
		{
			Name:   "Exterior siding",
			IDs:    []string{"S6", "U1", "SC4", "SY3", "P3", "SH3", "M3", "AC3", "O1"},
			Extras: []string{"C5"},
		},
	},
}
