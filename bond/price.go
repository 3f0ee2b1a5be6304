package bond

import (
	"fmt"
	"math"
)

// Price discounts the bond's cash flows at the given yield spec and returns
// the present value.
//
// Each flow is discounted by (1 + r/freq)^(-t*freq) where r is the variant's
// discount basis (nominal yield, real yield, or base rate plus spread).
// Pure: no state is read or written beyond the inputs.
func Price(b *Bond, spec YieldSpec) (float64, error) {
	pv, _, err := priceAndDeriv(b, spec)
	if err != nil {
		return 0, fmt.Errorf("Price: %w", err)
	}
	return pv, nil
}

// priceAndDeriv returns (price, dPrice/dRate) for the Newton solver.
//
//	price = Σ CF_t (1+r/f)^(-t·f)
//	dP/dr = Σ −t · CF_t (1+r/f)^(-t·f-1)
func priceAndDeriv(b *Bond, spec YieldSpec) (float64, float64, error) {
	freq := float64(b.Frequency)
	base := 1 + b.model.discountBasis(spec)/freq
	if base <= 0 {
		return 0, 0, fmt.Errorf("discount base %.6f is not positive: %w", base, ErrDomain)
	}

	var price, deriv float64
	for _, cf := range b.flows {
		df := math.Pow(base, -cf.TimeYears*freq)
		price += cf.Amount * df
		deriv += -cf.TimeYears * cf.Amount * df / base
	}
	return price, deriv, nil
}
