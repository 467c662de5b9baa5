// Package catalog holds the SKU reference tables for the painting and drywall
// trades and the pricing combinator that turns a base price plus selected
// option ids into a dollar amount.
package catalog

import "strings"

// Kind says how an option participates in the price computation.
type Kind string

const (
	// KindBase marks an option whose value is a base price (size bands).
	KindBase Kind = "base"
	// KindMultiplier marks an option that scales the running price.
	KindMultiplier Kind = "multiplier"
	// KindAdder marks an option that adds a flat dollar amount.
	KindAdder Kind = "adder"
)

// Option is one selectable value of a catalog dimension.
type Option struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Kind  Kind    `json:"kind"`
	Value float64 `json:"value"`
}

// Dimension is a closed set of options for one facet of a job: surface, prep
// level, access difficulty, and so on. Ids are unique within a dimension.
type Dimension struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

// Find returns the option with the given id.
func (d Dimension) Find(id string) (Option, bool) {
	for _, opt := range d.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Preset is a named quick template: one id per required dimension plus
// optional condition and add-on ids. Presets only feed the same combinator;
// they carry no pricing of their own.
type Preset struct {
	Name   string   `json:"name"`
	IDs    []string `json:"ids"`
	Extras []string `json:"extras,omitempty"`
}

// SKU renders the preset's catalog code, e.g. "S1U1SC2(C1,A2)".
func (p Preset) SKU() string {
	var b strings.Builder
	for _, id := range p.IDs {
		b.WriteString(id)
	}
	if len(p.Extras) > 0 {
		b.WriteString("(")
		b.WriteString(strings.Join(p.Extras, ","))
		b.WriteString(")")
	}
	return b.String()
}

// Catalog groups the dimensions and quick templates for one trade.
type Catalog struct {
	Trade      string      `json:"trade"`
	Dimensions []Dimension `json:"dimensions"`
	Presets    []Preset    `json:"presets,omitempty"`
}

// Dimension returns the named dimension.
func (c Catalog) Dimension(name string) (Dimension, bool) {
	for _, d := range c.Dimensions {
		if d.Name == name {
			return d, true
		}
	}
	return Dimension{}, false
}

func (c Catalog) find(id string) (Option, bool) {
	for _, d := range c.Dimensions {
		if opt, ok := d.Find(id); ok {
			return opt, true
		}
	}
	return Option{}, false
}

// BaseFor returns the base price carried by the given id (a size band).
// Unknown ids and non-base options price from zero.
func (c Catalog) BaseFor(id string) float64 {
	opt, ok := c.find(id)
	if !ok || opt.Kind != KindBase {
		return 0
	}
	return opt.Value
}

// Price applies the selected option ids against a base price: multipliers
// chain against the base, adders sum afterward. Ids no dimension recognizes
// price exactly as if the dimension were left unselected. Base-kind ids are
// ignored here; the base is the caller's first argument.
func (c Catalog) Price(base float64, ids ...string) float64 {
	price := base
	var added float64
	for _, id := range ids {
		opt, ok := c.find(id)
		if !ok {
			continue
		}
		switch opt.Kind {
		case KindMultiplier:
			price *= opt.Value
		case KindAdder:
			added += opt.Value
		}
	}
	return price + added
}

// PriceFor prices a fully coded job: the band id supplies the base, the
// remaining ids feed the combinator.
func (c Catalog) PriceFor(bandID string, ids ...string) float64 {
	return c.Price(c.BaseFor(bandID), ids...)
}
