package estimate

import "encoding/json"

// RoomFeature is a discrete paintable element within a room: a wall, the
// ceiling, a baseboard run. A nil magnitude means the feature was never
// measured and contributes nothing to gallons or cost.
type RoomFeature struct {
	Name      string      `json:"name"`
	Magnitude *float64    `json:"magnitude,omitempty"`
	Unit      Unit        `json:"unit"`
	Coats     float64     `json:"coats,omitempty"`
	PaintBase string      `json:"paintBase,omitempty"`
	Area      bool        `json:"area,omitempty"` // square-footage feature (ceiling, floor)
	Tasks     []LaborTask `json:"workLabor,omitempty"`
}

// UnmarshalJSON accepts the magnitude either as a number or as the numeric
// string the estimate forms submit. A string that does not parse as a
// positive finite number becomes zero, same as any other bad quantity.
func (f *RoomFeature) UnmarshalJSON(data []byte) error {
	type alias RoomFeature
	aux := struct {
		Magnitude json.RawMessage `json:"magnitude"`
		*alias
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	f.Magnitude = nil
	if len(aux.Magnitude) == 0 || string(aux.Magnitude) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(aux.Magnitude, &raw); err == nil {
		m := ParseQuantity(raw)
		f.Magnitude = &m
		return nil
	}

	var m float64
	if err := json.Unmarshal(aux.Magnitude, &m); err != nil {
		return err
	}
	f.Magnitude = &m
	return nil
}

// Gallons returns the paint this feature needs.
func (f RoomFeature) Gallons(c Calculator) (float64, error) {
	if f.Magnitude == nil {
		return 0, nil
	}
	if f.Area {
		return c.GallonsArea(*f.Magnitude, f.Coats, f.Unit)
	}
	return c.Gallons(*f.Magnitude, f.Coats, f.Unit)
}

// Cost sums every task attached to the feature.
func (f RoomFeature) Cost() float64 {
	var total float64
	for _, t := range f.Tasks {
		total += t.Cost().TotalCost
	}
	return total
}

// Hours sums the hours of every task attached to the feature.
func (f RoomFeature) Hours() float64 {
	var total float64
	for _, t := range f.Tasks {
		total += Sanitize(t.Hours)
	}
	return total
}

// GallonsBySection returns gallons keyed by feature name.
func GallonsBySection(c Calculator, features []RoomFeature) (map[string]float64, error) {
	sections := make(map[string]float64, len(features))
	for _, f := range features {
		g, err := f.Gallons(c)
		if err != nil {
			return nil, err
		}
		sections[f.Name] += g
	}
	return sections, nil
}

// GallonsByPaintBase returns gallons grouped by the paint-base tag. Features
// without a tag group under the empty key.
func GallonsByPaintBase(c Calculator, features []RoomFeature) (map[string]float64, error) {
	bases := make(map[string]float64)
	for _, f := range features {
		g, err := f.Gallons(c)
		if err != nil {
			return nil, err
		}
		bases[f.PaintBase] += g
	}
	return bases, nil
}

// TotalGallons sums paint across every feature.
func TotalGallons(c Calculator, features []RoomFeature) (float64, error) {
	var total float64
	for _, f := range features {
		g, err := f.Gallons(c)
		if err != nil {
			return 0, err
		}
		total += g
	}
	return total, nil
}
