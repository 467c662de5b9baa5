package estimate

// Default estimating rates. All of them live on Calculator so saved rate
// configuration (or a test) can override them per call site.
const (
	// DefaultCoverageRate is how many feet one gallon covers per coat. The
	// same rate is applied to linear trim feet and square wall/ceiling feet;
	// that conflation is inherited from the original estimate forms. Swap in
	// a Calculator with separate rates if a corrected model is ever needed.
	DefaultCoverageRate = 350.0

	DefaultCoats = 1.0
)

// Calculator turns room measurements into physical paint quantities. The zero
// value is not useful; NewCalculator fills in the standard rates.
type Calculator struct {
	CoverageRate float64 // feet covered per gallon per coat
	DefaultCoats float64 // applied when a feature does not specify coats

	WallSpeed    float64 // square feet per labor-hour per coat
	CeilingSpeed float64
	TrimSpeed    float64 // linear feet per labor-hour per coat
	Efficiency   float64 // 1 is baseline crew, >1 slower, <1 faster
	HoursPerDay  float64
}

// NewCalculator returns a Calculator with the company's standard rates.
func NewCalculator() Calculator {
	return Calculator{
		CoverageRate: DefaultCoverageRate,
		DefaultCoats: DefaultCoats,
		WallSpeed:    DefaultWallSpeed,
		CeilingSpeed: DefaultCeilingSpeed,
		TrimSpeed:    DefaultTrimSpeed,
		Efficiency:   1,
		HoursPerDay:  DefaultHoursPerDay,
	}
}

// Gallons returns the paint needed to cover magnitude (linear feet of trim or
// square feet of wall) in the given unit across the given number of coats.
// Coats multiply the raw magnitude before unit conversion. Non-positive or
// non-finite magnitudes need no paint.
func (c Calculator) Gallons(magnitude, coats float64, unit Unit) (float64, error) {
	return c.gallons(magnitude, coats, unit, false)
}

// GallonsArea is the variant for ceiling and floor areas, where inch
// measurements are treated as square inches.
func (c Calculator) GallonsArea(magnitude, coats float64, unit Unit) (float64, error) {
	return c.gallons(magnitude, coats, unit, true)
}

func (c Calculator) gallons(magnitude, coats float64, unit Unit, area bool) (float64, error) {
	magnitude = Sanitize(magnitude)
	if magnitude == 0 {
		return 0, nil
	}

	coats = Sanitize(coats)
	if coats == 0 {
		coats = c.DefaultCoats
	}

	feet, err := ToFeet(magnitude*coats, unit, area)
	if err != nil {
		return 0, err
	}
	return feet / c.CoverageRate, nil
}
