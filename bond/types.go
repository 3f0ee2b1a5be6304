package bond

import "errors"

var (
	// ErrInvalidInput is returned when bond terms or analysis inputs are malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDomain is returned when a discount base or index ratio leaves the valid domain.
	ErrDomain = errors.New("domain error")
	// ErrConvergence is returned when a root-find exhausts its iteration budget
	// or cannot make progress.
	ErrConvergence = errors.New("did not converge")
)

// Cashflow is a single bond cash flow.
//
// TimeYears is measured from the valuation date; amounts are in currency
// units on the bond's face-value scale (e.g., per-100).
type Cashflow struct {
	TimeYears float64
	Amount    float64
}

// YieldSpec is the discounting basis for a valuation.
//
// Rate is the annual yield as a fraction (0.05 == 5%). Its meaning follows
// the bond kind: yield to maturity for Nominal bonds, real yield for
// InflationLinked bonds, and the treasury base rate for Corporate bonds.
// CreditSpread (also a fraction, not bp) is added on top of Rate for
// Corporate bonds and ignored otherwise.
type YieldSpec struct {
	Rate         float64
	CreditSpread float64
}

// Sensitivities holds first- and second-order rate sensitivities computed
// at a specific YieldSpec.
type Sensitivities struct {
	ModifiedDuration float64
	Convexity        float64
	// CreditSpreadDuration measures sensitivity to the credit spread with the
	// base rate held fixed. Zero for non-Corporate bonds.
	CreditSpreadDuration float64
}

// ScenarioRow is one shocked valuation in a scenario run.
//
// Shock is the signed rate move in fraction terms; prices compare the
// duration-only and convexity-adjusted approximations against the exact
// revaluation at the shifted yield.
type ScenarioRow struct {
	Shock          float64
	LinearPrice    float64
	ConvexityPrice float64
	ExactPrice     float64
	PercentChange  float64
}

// GridRow is one cell of a joint rate/spread scenario grid for Corporate bonds.
type GridRow struct {
	RateShock     float64
	SpreadShock   float64
	ExactPrice    float64
	PercentChange float64
}
