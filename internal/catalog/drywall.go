package catalog

// Drywall is the drywall-repair SKU catalog. Size bands carry the base price;
// orientation, access, finish, paint scope, and protection scale it; repair
// types and modifiers are flat adders.
var Drywall = Catalog{
	Trade: "drywall",
	Dimensions: []Dimension{
		{
			Name: "repair",
			Options: []Option{
				{ID: "R1", Label: "Nail pops / dents", Kind: KindAdder, Value: 0},
				{ID: "R2", Label: "Impact hole", Kind: KindAdder, Value: 20},
				{ID: "R3", Label: "Water damage cut-out", Kind: KindAdder, Value: 55},
				{ID: "R4", Label: "Crack / tape seam", Kind: KindAdder, Value: 30},
				{ID: "R5", Label: "Full sheet replacement", Kind: KindAdder, Value: 90},
			},
		},
		{
			Name: "size",
			Options: []Option{
				{ID: "B1", Label: "Small (under 2 sq ft)", Kind: KindBase, Value: 120},
				{ID: "B2", Label: "Medium (2-8 sq ft)", Kind: KindBase, Value: 220},
				{ID: "B3", Label: "Large (8-32 sq ft)", Kind: KindBase, Value: 380},
				{ID: "B4", Label: "Oversize (full sheets)", Kind: KindBase, Value: 560},
			},
		},
		{
			Name: "orientation",
			Options: []Option{
				{ID: "OR1", Label: "Wall", Kind: KindMultiplier, Value: 1.0},
				{ID: "OR2", Label: "Ceiling", Kind: KindMultiplier, Value: 1.25},
			},
		},
		{
			Name: "access",
			Options: []Option{
				{ID: "AC1", Label: "Ground level", Kind: KindMultiplier, Value: 1.0},
				{ID: "AC2", Label: "Ladder work", Kind: KindMultiplier, Value: 1.15},
				{ID: "AC3", Label: "Scaffold / stairwell", Kind: KindMultiplier, Value: 1.4},
			},
		},
		{
			Name: "finish",
			Options: []Option{
				{ID: "F1", Label: "Level 3 (textured cover)", Kind: KindMultiplier, Value: 0.9},
				{ID: "F2", Label: "Level 4 (standard smooth)", Kind: KindMultiplier, Value: 1.0},
				{ID: "F3", Label: "Level 5 (critical light)", Kind: KindMultiplier, Value: 1.2},
			},
		},
		{
			Name: "paintScope",
			Options: []Option{
				{ID: "PS1", Label: "Patch only, no paint", Kind: KindMultiplier, Value: 1.0},
				{ID: "PS2", Label: "Prime + blend paint", Kind: KindMultiplier, Value: 1.15},
				{ID: "PS3", Label: "Repaint whole surface", Kind: KindMultiplier, Value: 1.35},
			},
		},
		{
			Name: "protection",
			Options: []Option{
				{ID: "PR1", Label: "Basic drop cloths", Kind: KindMultiplier, Value: 1.0},
				{ID: "PR2", Label: "Full masking & containment", Kind: KindMultiplier, Value: 1.1},
			},
		},
		{
			Name: "modifiers",
			Options: []Option{
				{ID: "MD1", Label: "Texture match", Kind: KindAdder, Value: 45},
				{ID: "MD2", Label: "Insulation replacement", Kind: KindAdder, Value: 35},
				{ID: "MD3", Label: "Mold-resistant board", Kind: KindAdder, Value: 25},
				{ID: "MD4", Label: "After-hours work", Kind: KindAdder, Value: 85},
			},
		},
	},
	Presets: []Preset{
		{
			Name:   "Doorknob hole",
			IDs:    []string{"R2", "B1", "OR1", "AC1", "F2", "PS2", "PR1"},
			Extras: []string{"MD1"},
		},
		{
			Name: "Ceiling water damage",
			IDs:  []string{"R3", "B2", "OR2", "AC2", "F2", "PS2", "PR2"},
		},
		{
			Name:   "Stairwell crack",
			IDs:    []string{"R4", "B2", "OR1", "AC3", "F3", "PS3", "PR1"},
			Extras: []string{"MD4"},
		},
		{
			Name:   "Full sheet swap",
			IDs:    []string{"R5", "B4", "OR1", "AC1", "F2", "PS3", "PR2"},
			Extras: []string{"MD3"},
		},
	},
}

// ByTrade returns the catalog for a trade name.
func ByTrade(trade string) (Catalog, bool) {
	switch trade {
	case Painting.Trade:
		return Painting, true
	case Drywall.Trade:
		return Drywall, true
	}
	return Catalog{}, false
}
