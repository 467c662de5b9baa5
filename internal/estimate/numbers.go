package estimate

import (
	"math"
	"strconv"
	"strings"
)

// Sanitize coerces NaN, infinities, and negative values to zero. The estimate
// forms feed raw user input into every quantity; a bad number means "not
// measured", never an error. Callers outside the package that do their own
// arithmetic over task values apply the same rule through this function.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseQuantity parses a user-entered quantity. Anything that is not a
// positive finite number comes back as zero.
func ParseQuantity(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return Sanitize(v)
}
