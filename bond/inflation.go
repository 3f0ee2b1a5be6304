package bond

import "fmt"

// Breakeven root-find bracket: inflation paths between -10% and +25% cover
// every regime the comparator data can realistically imply.
const (
	breakevenFloor   = -0.10
	breakevenCeiling = 0.25
)

// RealToNominal converts a real yield to a nominal yield via the Fisher
// relation (1+nominal) = (1+real)(1+inflation).
func RealToNominal(realYield, inflation float64) float64 {
	return (1+realYield)*(1+inflation) - 1
}

// BreakevenSimple is the first-order breakeven inflation estimate: the
// difference between a nominal yield and a comparable-maturity real yield.
func BreakevenSimple(nominalYield, realYield float64) float64 {
	return nominalYield - realYield
}

// BreakevenInflation finds the flat inflation rate at which the linker's
// present value at realSpec equals the comparable nominal bond's price.
//
// The objective is monotone in the inflation path, so the root is found by
// bisection on [breakevenFloor, breakevenCeiling] under the solver's price
// tolerance; an empty bracket fails with ErrConvergence.
func BreakevenInflation(linker *Bond, realSpec YieldSpec, nominalPrice float64) (float64, error) {
	if linker.Kind != InflationLinked {
		return 0, fmt.Errorf("BreakevenInflation: bond kind is %s, not InflationLinked: %w", linker.Kind, ErrInvalidInput)
	}
	if nominalPrice <= 0 {
		return 0, fmt.Errorf("BreakevenInflation: nominal price %.4f must be positive: %w", nominalPrice, ErrInvalidInput)
	}

	f := func(inflation float64) (float64, error) {
		shifted, err := linker.WithAssumedInflation(inflation)
		if err != nil {
			return 0, err
		}
		pv, err := Price(shifted, realSpec)
		if err != nil {
			return 0, err
		}
		return pv - nominalPrice, nil
	}

	rate, err := bisect(f, breakevenFloor, breakevenCeiling, priceToleranceFactor*linker.FaceValue)
	if err != nil {
		return 0, fmt.Errorf("BreakevenInflation: %w", err)
	}
	return rate, nil
}
