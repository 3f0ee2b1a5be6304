package marketdata

import (
	"fmt"
	"sort"
)

// CurvePoint is one quoted tenor on a par yield curve. Rate is a fraction.
type CurvePoint struct {
	TenorYears float64
	Rate       float64
}

// TreasuryCurve is a set of treasury par yields keyed by tenor, supplied by
// the caller as plain numbers. It is consumed read-only by the pricing core.
type TreasuryCurve []CurvePoint

// Validate checks the curve is non-empty with strictly increasing tenors.
func (c TreasuryCurve) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("treasury curve is empty")
	}
	for i := 1; i < len(c); i++ {
		if c[i].TenorYears <= c[i-1].TenorYears {
			return fmt.Errorf("treasury curve tenors not strictly increasing at index %d (%.2f after %.2f)",
				i, c[i].TenorYears, c[i-1].TenorYears)
		}
	}
	return nil
}

// Rate returns the par yield at tenor t, linearly interpolated between quoted
// points and held flat beyond the first and last tenors.
func (c TreasuryCurve) Rate(t float64) float64 {
	if len(c) == 0 {
		return 0
	}
	if t <= c[0].TenorYears {
		return c[0].Rate
	}
	last := c[len(c)-1]
	if t >= last.TenorYears {
		return last.Rate
	}

	// First point at or beyond t.
	i := sort.Search(len(c), func(i int) bool {
		return c[i].TenorYears >= t
	})
	lo, hi := c[i-1], c[i]
	w := (t - lo.TenorYears) / (hi.TenorYears - lo.TenorYears)
	return lo.Rate + w*(hi.Rate-lo.Rate)
}
