package bond

import (
	"fmt"
	"math"

	"github.com/meenmo/bondrisk/marketdata"
)

// Z-spread root-find bracket, in fraction terms (-500bp to +5000bp).
const (
	zSpreadFloor   = -0.05
	zSpreadCeiling = 0.50
)

// DefaultProbability estimates the annual default probability implied by a
// credit spread under the reduced-form approximation spread ≈ PD × (1−RR).
//
// The spread is a fraction, not bp; recoveryRate is the expected recovery in
// default (e.g., 0.4 for senior unsecured).
func DefaultProbability(creditSpread, recoveryRate float64) (float64, error) {
	if creditSpread < 0 {
		return 0, fmt.Errorf("DefaultProbability: credit spread %.6f must be non-negative: %w", creditSpread, ErrInvalidInput)
	}
	if recoveryRate < 0 || recoveryRate >= 1 {
		return 0, fmt.Errorf("DefaultProbability: recovery rate %.4f must be in [0, 1): %w", recoveryRate, ErrInvalidInput)
	}
	return creditSpread / (1 - recoveryRate), nil
}

// ZSpread finds the parallel spread over the treasury curve that reprices the
// bond's cash flows to the observed market price.
//
// Each flow is discounted at curve.Rate(t) + z with the bond's own
// compounding frequency. The root is found by bisection on
// [zSpreadFloor, zSpreadCeiling]; the result is a fraction.
func ZSpread(b *Bond, marketPrice float64, curve marketdata.TreasuryCurve) (float64, error) {
	if marketPrice <= 0 {
		return 0, fmt.Errorf("ZSpread: market price %.4f must be positive: %w", marketPrice, ErrInvalidInput)
	}
	if err := curve.Validate(); err != nil {
		return 0, fmt.Errorf("ZSpread: %v: %w", err, ErrInvalidInput)
	}

	freq := float64(b.Frequency)
	f := func(z float64) (float64, error) {
		var pv float64
		for _, cf := range b.flows {
			base := 1 + (curve.Rate(cf.TimeYears)+z)/freq
			if base <= 0 {
				return 0, fmt.Errorf("discount base %.6f at t=%.2f is not positive: %w", base, cf.TimeYears, ErrDomain)
			}
			pv += cf.Amount * math.Pow(base, -cf.TimeYears*freq)
		}
		return pv - marketPrice, nil
	}

	z, err := bisect(f, zSpreadFloor, zSpreadCeiling, priceToleranceFactor*b.FaceValue)
	if err != nil {
		return 0, fmt.Errorf("ZSpread: %w", err)
	}
	return z, nil
}
