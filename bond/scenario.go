package bond

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// RunScenario revalues the bond under each rate shock and tabulates the
// duration-only approximation, the convexity-adjusted approximation, and the
// exact revaluation.
//
// Shocks are annual-rate moves in fraction terms (−0.01 == −100bp), applied
// to the spec's Rate. Rows preserve the input order. Exact revaluations are
// independent and run concurrently; a shock that drives a discount base
// non-positive fails the whole run with ErrDomain.
func RunScenario(b *Bond, spec YieldSpec, shocks []float64) ([]ScenarioRow, error) {
	if err := validateShocks(shocks); err != nil {
		return nil, fmt.Errorf("RunScenario: %w", err)
	}

	base, err := Price(b, spec)
	if err != nil {
		return nil, fmt.Errorf("RunScenario: %w", err)
	}
	sens, err := ComputeSensitivities(b, spec)
	if err != nil {
		return nil, fmt.Errorf("RunScenario: %w", err)
	}

	rows := make([]ScenarioRow, len(shocks))
	var g errgroup.Group
	for i, shock := range shocks {
		g.Go(func() error {
			shifted := spec
			shifted.Rate += shock

			exact, err := Price(b, shifted)
			if err != nil {
				return fmt.Errorf("shock %+.4f: %w", shock, err)
			}

			linear := base * (1 - sens.ModifiedDuration*shock)
			rows[i] = ScenarioRow{
				Shock:          shock,
				LinearPrice:    linear,
				ConvexityPrice: linear + 0.5*sens.Convexity*shock*shock*base,
				ExactPrice:     exact,
				PercentChange:  (exact - base) / base,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("RunScenario: %w", err)
	}
	return rows, nil
}

// RunScenarioGrid crosses rate shocks with credit spread shocks for a
// Corporate bond, one row per (rate, spread) pair in input order with the
// rate shocks as the fast axis. The exact price applies both shocks jointly
// so compounding and offsetting effects are captured.
func RunScenarioGrid(b *Bond, spec YieldSpec, rateShocks, spreadShocks []float64) ([]GridRow, error) {
	if b.Kind != Corporate {
		return nil, fmt.Errorf("RunScenarioGrid: bond kind is %s, not Corporate: %w", b.Kind, ErrInvalidInput)
	}
	if err := validateShocks(rateShocks); err != nil {
		return nil, fmt.Errorf("RunScenarioGrid: rate shocks: %w", err)
	}
	if err := validateShocks(spreadShocks); err != nil {
		return nil, fmt.Errorf("RunScenarioGrid: spread shocks: %w", err)
	}

	base, err := Price(b, spec)
	if err != nil {
		return nil, fmt.Errorf("RunScenarioGrid: %w", err)
	}

	rows := make([]GridRow, len(spreadShocks)*len(rateShocks))
	var g errgroup.Group
	for i, ds := range spreadShocks {
		for j, dr := range rateShocks {
			idx := i*len(rateShocks) + j
			g.Go(func() error {
				shifted := spec
				shifted.Rate += dr
				shifted.CreditSpread += ds

				exact, err := Price(b, shifted)
				if err != nil {
					return fmt.Errorf("rate %+.4f spread %+.4f: %w", dr, ds, err)
				}
				rows[idx] = GridRow{
					RateShock:     dr,
					SpreadShock:   ds,
					ExactPrice:    exact,
					PercentChange: (exact - base) / base,
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("RunScenarioGrid: %w", err)
	}
	return rows, nil
}

func validateShocks(shocks []float64) error {
	if len(shocks) == 0 {
		return fmt.Errorf("empty shock sequence: %w", ErrInvalidInput)
	}
	for i, s := range shocks {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("shock %d is not finite: %w", i, ErrInvalidInput)
		}
	}
	return nil
}
