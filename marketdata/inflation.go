package marketdata

import "fmt"

// IndexObservation is a pair of inflation index levels observed by the
// caller: the level fixed at the bond's issue base and the most recent level
// applicable under the lag convention.
type IndexObservation struct {
	// BaseLevel is the index level the bond's indexation references (issue base).
	BaseLevel float64
	// CurrentLevel is the level applied today, already lagged per LagMonths.
	CurrentLevel float64
	// LagMonths records the indexation lag convention (e.g., 3 for a
	// three-month lag). Informational; the caller supplies levels already
	// observed under it.
	LagMonths int
}

// Ratio returns CurrentLevel/BaseLevel, the realized index ratio applied to
// principal and coupons.
func (o IndexObservation) Ratio() (float64, error) {
	if o.BaseLevel <= 0 || o.CurrentLevel <= 0 {
		return 0, fmt.Errorf("index ratio %.4f/%.4f is not positive", o.CurrentLevel, o.BaseLevel)
	}
	return o.CurrentLevel / o.BaseLevel, nil
}
