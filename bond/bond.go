package bond

import (
	"fmt"
	"math"

	"github.com/meenmo/bondrisk/marketdata"
)

// Kind selects the valuation model for a bond. The model is fixed at
// construction; downstream pricing never re-inspects it.
type Kind int

const (
	// Nominal is a plain fixed-coupon bond discounted at its nominal yield.
	Nominal Kind = iota
	// InflationLinked is an index-linked bond: coupons and principal grow with
	// the inflation index, discounting uses the real yield.
	InflationLinked
	// Corporate is a fixed-coupon bond discounted at base rate plus credit spread.
	Corporate
)

func (k Kind) String() string {
	switch k {
	case Nominal:
		return "Nominal"
	case InflationLinked:
		return "InflationLinked"
	case Corporate:
		return "Corporate"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Indexation describes how an inflation-linked bond's cash flows are scaled.
//
// The index ratio applied at time t is Index.Ratio() * (1+AssumedInflation)^t,
// so a flat assumed inflation path compounds on top of the realized index
// ratio observed so far.
type Indexation struct {
	// Index is the observed base/current index level pair (with its lag
	// convention), supplied by the caller.
	Index marketdata.IndexObservation
	// AssumedInflation is the flat projected annual inflation rate (fraction).
	AssumedInflation float64
}

// Terms are the contractual terms of a bond. All rates are fractions, not
// percentages.
type Terms struct {
	// CouponRate is the annual coupon as a fraction of face value (0.0125 == 1.25%).
	CouponRate float64
	// FaceValue is the redemption amount, typically 100.
	FaceValue float64
	// Frequency is the number of coupon payments per year (2 = semi-annual).
	Frequency int
	// Maturity is the time to maturity in years.
	Maturity float64
	// Kind selects the valuation model.
	Kind Kind
	// Indexation is required for InflationLinked bonds and ignored otherwise.
	Indexation Indexation
}

// Bond is an immutable instrument: terms plus the cash-flow schedule derived
// from them once at construction.
type Bond struct {
	Terms

	model variant
	flows []Cashflow
}

// scheduleTolerance bounds how far Maturity*Frequency may sit from an integer
// before the schedule is rejected rather than silently truncated.
const scheduleTolerance = 1e-6

// New validates the terms, selects the variant model, and builds the
// cash-flow schedule.
func New(t Terms) (*Bond, error) {
	if t.FaceValue <= 0 {
		return nil, fmt.Errorf("New: face value %.4f must be positive: %w", t.FaceValue, ErrInvalidInput)
	}
	if t.CouponRate < 0 {
		return nil, fmt.Errorf("New: coupon rate %.6f must be non-negative: %w", t.CouponRate, ErrInvalidInput)
	}
	if t.Frequency < 1 {
		return nil, fmt.Errorf("New: frequency %d must be at least 1: %w", t.Frequency, ErrInvalidInput)
	}
	if t.Maturity <= 0 {
		return nil, fmt.Errorf("New: maturity %.4f must be positive: %w", t.Maturity, ErrInvalidInput)
	}

	periods := t.Maturity * float64(t.Frequency)
	if math.Abs(periods-math.Round(periods)) > scheduleTolerance || math.Round(periods) < 1 {
		return nil, fmt.Errorf("New: maturity %.4f does not divide into whole %d-per-year periods: %w",
			t.Maturity, t.Frequency, ErrInvalidInput)
	}

	var m variant
	switch t.Kind {
	case Nominal:
		m = nominalVariant{}
	case InflationLinked:
		m = linkerVariant{}
	case Corporate:
		m = corporateVariant{}
	default:
		return nil, fmt.Errorf("New: unknown bond kind %d: %w", int(t.Kind), ErrInvalidInput)
	}

	flows, err := m.buildCashflows(t)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Bond{Terms: t, model: m, flows: flows}, nil
}

// Cashflows returns the bond's schedule. The returned slice is shared and
// must not be mutated.
func (b *Bond) Cashflows() []Cashflow {
	return b.flows
}

// WithAssumedInflation returns a copy of an InflationLinked bond rebuilt with
// a different flat projected inflation rate. Used by the breakeven root-find.
func (b *Bond) WithAssumedInflation(rate float64) (*Bond, error) {
	if b.Kind != InflationLinked {
		return nil, fmt.Errorf("WithAssumedInflation: bond kind is %s, not InflationLinked: %w", b.Kind, ErrInvalidInput)
	}
	t := b.Terms
	t.Indexation.AssumedInflation = rate
	return New(t)
}

// ---------------------------------------------------------------------------
// variant models
// ---------------------------------------------------------------------------

// variant is the closed set of per-kind valuation rules: how the schedule is
// built and which annual rate the discount factors use.
type variant interface {
	buildCashflows(t Terms) ([]Cashflow, error)
	discountBasis(spec YieldSpec) float64
}

type nominalVariant struct{}

func (nominalVariant) buildCashflows(t Terms) ([]Cashflow, error) {
	return couponSchedule(t, nil)
}

func (nominalVariant) discountBasis(spec YieldSpec) float64 {
	return spec.Rate
}

type corporateVariant struct{}

func (corporateVariant) buildCashflows(t Terms) ([]Cashflow, error) {
	return couponSchedule(t, nil)
}

func (corporateVariant) discountBasis(spec YieldSpec) float64 {
	return spec.Rate + spec.CreditSpread
}

type linkerVariant struct{}

func (linkerVariant) buildCashflows(t Terms) ([]Cashflow, error) {
	ratio, err := t.Indexation.Index.Ratio()
	if err != nil {
		return nil, fmt.Errorf("indexation: %v: %w", err, ErrDomain)
	}
	growth := 1 + t.Indexation.AssumedInflation
	if growth <= 0 {
		return nil, fmt.Errorf("assumed inflation %.4f implies non-positive index growth: %w",
			t.Indexation.AssumedInflation, ErrDomain)
	}
	// indexRatio(t) = realizedRatio * (1+assumed)^t, applied per period.
	scale := func(years float64) float64 {
		return ratio * math.Pow(growth, years)
	}
	return couponSchedule(t, scale)
}

func (linkerVariant) discountBasis(spec YieldSpec) float64 {
	return spec.Rate
}

// couponSchedule lays out coupons at 1/freq, 2/freq, ..., maturity with the
// face value added to the final flow. A non-nil scale indexes each amount by
// its payment time (inflation-linked bonds).
func couponSchedule(t Terms, scale func(years float64) float64) ([]Cashflow, error) {
	freq := float64(t.Frequency)
	n := int(math.Round(t.Maturity * freq))

	coupon := t.CouponRate * t.FaceValue / freq
	flows := make([]Cashflow, 0, n)
	for i := 1; i <= n; i++ {
		years := float64(i) / freq
		amount := coupon
		if i == n {
			amount += t.FaceValue
		}
		if scale != nil {
			amount = coupon * scale(years)
			if i == n {
				amount += t.FaceValue * scale(years)
			}
		}
		flows = append(flows, Cashflow{TimeYears: years, Amount: amount})
	}
	return flows, nil
}
