package bond

import (
	"fmt"
	"math"
)

// Solver configuration. The tolerances follow the engine's documented
// defaults: convergence on either a price residual below
// priceToleranceFactor × face value or a yield step below yieldTolerance.
const (
	defaultGuess         = 0.05
	priceToleranceFactor = 1e-6
	yieldTolerance       = 1e-8
	maxIterations        = 100
	derivativeFloor      = 1e-12
	bracketCeiling       = 10.0
)

// SolveYield finds the yield whose present value equals marketPrice, starting
// from the default initial guess.
//
// The returned rate is the bond's all-in annual yield as a fraction: the
// nominal YTM for Nominal and Corporate bonds (spread included), the real
// yield for InflationLinked bonds.
func SolveYield(b *Bond, marketPrice float64) (float64, error) {
	return SolveYieldFrom(b, marketPrice, defaultGuess)
}

// SolveYieldFrom is SolveYield with an explicit initial guess.
//
// Newton-Raphson with the analytic price derivative is tried first. If an
// iterate escapes the discount domain, the derivative collapses, or the
// iteration cap is reached, the solver falls back to bisection on
// (-0.99×freq, bracketCeiling]; if that bracket shows no sign change the
// call fails with ErrConvergence.
func SolveYieldFrom(b *Bond, marketPrice, guess float64) (float64, error) {
	if marketPrice <= 0 {
		return 0, fmt.Errorf("SolveYieldFrom: market price %.4f must be positive: %w", marketPrice, ErrInvalidInput)
	}

	priceTol := priceToleranceFactor * b.FaceValue
	f := func(y float64) (float64, float64, error) {
		pv, dPdy, err := priceAndDeriv(b, YieldSpec{Rate: y})
		return pv - marketPrice, dPdy, err
	}

	y, err := newtonYield(f, guess, priceTol)
	if err == nil {
		return y, nil
	}

	lo := -0.99 * float64(b.Frequency)
	y, berr := bisect(func(x float64) (float64, error) {
		v, _, ferr := f(x)
		return v, ferr
	}, lo, bracketCeiling, priceTol)
	if berr != nil {
		return 0, fmt.Errorf("SolveYieldFrom: newton failed (%v); bisection: %w", err, berr)
	}
	return y, nil
}

// newtonYield runs the Newton iteration on f, which must return the residual
// and its derivative. Domain errors from intermediate iterates abort the
// iteration so the caller can fall back to bisection.
func newtonYield(f func(float64) (float64, float64, error), guess, tol float64) (float64, error) {
	y := guess
	for iter := 0; iter < maxIterations; iter++ {
		val, deriv, err := f(y)
		if err != nil {
			return 0, fmt.Errorf("iterate %d left the price domain: %w", iter, ErrConvergence)
		}
		if math.Abs(val) < tol {
			return y, nil
		}
		if math.Abs(deriv) < derivativeFloor {
			return 0, fmt.Errorf("derivative %.3e below floor at iterate %d: %w", deriv, iter, ErrConvergence)
		}
		next := y - val/deriv
		if math.Abs(next-y) < yieldTolerance {
			return next, nil
		}
		y = next
	}
	return 0, fmt.Errorf("no convergence after %d iterations: %w", maxIterations, ErrConvergence)
}

// bisect finds a root of f on [lo, hi]. The bracket must show a sign change.
func bisect(f func(float64) (float64, error), lo, hi, tol float64) (float64, error) {
	fLo, err := f(lo)
	if err != nil {
		// Nudge off the domain boundary once; the bracket floor sits at the
		// edge of valid discount bases.
		lo += 1e-6
		if fLo, err = f(lo); err != nil {
			return 0, fmt.Errorf("lower bracket %.4f: %w", lo, err)
		}
	}
	fHi, err := f(hi)
	if err != nil {
		return 0, fmt.Errorf("upper bracket %.4f: %w", hi, err)
	}
	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	if (fLo > 0) == (fHi > 0) {
		return 0, fmt.Errorf("no sign change on [%.4f, %.4f]: %w", lo, hi, ErrConvergence)
	}

	for iter := 0; iter < 200; iter++ {
		mid := 0.5 * (lo + hi)
		fMid, err := f(mid)
		if err != nil {
			return 0, fmt.Errorf("midpoint %.6f: %w", mid, err)
		}
		if math.Abs(fMid) < tol || hi-lo < yieldTolerance {
			return mid, nil
		}
		if (fMid > 0) == (fLo > 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return 0, fmt.Errorf("bisection exhausted on [%.6f, %.6f]: %w", lo, hi, ErrConvergence)
}
