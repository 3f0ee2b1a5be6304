package bond_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/bondrisk/bond"
	"github.com/meenmo/bondrisk/marketdata"
)

func TestDefaultProbability(t *testing.T) {
	t.Parallel()

	// 85bp spread with 40% recovery.
	pd, err := bond.DefaultProbability(0.0085, 0.4)
	require.NoError(t, err)
	assert.InDelta(t, 0.0085/0.6, pd, 1e-12)

	// Zero spread implies zero default risk.
	pd, err = bond.DefaultProbability(0, 0.4)
	require.NoError(t, err)
	assert.Zero(t, pd)

	// Zero recovery: spread is the probability itself.
	pd, err = bond.DefaultProbability(0.02, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.02, pd, 1e-12)
}

func TestDefaultProbability_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		spread, recov float64
	}{
		{"negative spread", -0.001, 0.4},
		{"recovery at one", 0.0085, 1.0},
		{"recovery above one", 0.0085, 1.2},
		{"negative recovery", 0.0085, -0.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := bond.DefaultProbability(tc.spread, tc.recov)
			assert.ErrorIs(t, err, bond.ErrInvalidInput)
		})
	}
}

func flatCurve(rate float64) marketdata.TreasuryCurve {
	return marketdata.TreasuryCurve{
		{TenorYears: 1, Rate: rate},
		{TenorYears: 30, Rate: rate},
	}
}

func TestZSpread_FlatCurve(t *testing.T) {
	t.Parallel()

	b, err := bond.New(nominalTerms())
	require.NoError(t, err)

	// On a flat curve, z-spread equals the gap between the bond's yield and
	// the curve level. Price at 5.5%, discount on a flat 4% curve.
	price, err := bond.Price(b, bond.YieldSpec{Rate: 0.055})
	require.NoError(t, err)

	z, err := bond.ZSpread(b, price, flatCurve(0.04))
	require.NoError(t, err)
	assert.InDelta(t, 0.015, z, 1e-6)
}

func TestZSpread_AtCurve(t *testing.T) {
	t.Parallel()

	b, err := bond.New(nominalTerms())
	require.NoError(t, err)

	price, err := bond.Price(b, bond.YieldSpec{Rate: 0.045})
	require.NoError(t, err)

	z, err := bond.ZSpread(b, price, flatCurve(0.045))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, z, 1e-6)
}

func TestZSpread_SlopedCurve(t *testing.T) {
	t.Parallel()

	b, err := bond.New(bond.Terms{
		CouponRate: 0.0225,
		FaceValue:  100,
		Frequency:  2,
		Maturity:   10,
		Kind:       bond.Nominal,
	})
	require.NoError(t, err)

	curve := marketdata.TreasuryCurve{
		{TenorYears: 1, Rate: 0.045},
		{TenorYears: 5, Rate: 0.046},
		{TenorYears: 10, Rate: 0.047},
		{TenorYears: 30, Rate: 0.0479},
	}

	// Reprice the bond at the solved spread by hand and compare to the input.
	const marketPrice = 78.0
	z, err := bond.ZSpread(b, marketPrice, curve)
	require.NoError(t, err)
	assert.Greater(t, z, 0.0)

	var pv float64
	for _, cf := range b.Cashflows() {
		pv += cf.Amount * math.Pow(1+(curve.Rate(cf.TimeYears)+z)/2, -cf.TimeYears*2)
	}
	assert.InDelta(t, marketPrice, pv, 1e-4*100)
}

func TestZSpread_Invalid(t *testing.T) {
	t.Parallel()

	b, err := bond.New(nominalTerms())
	require.NoError(t, err)

	_, err = bond.ZSpread(b, 0, flatCurve(0.04))
	assert.ErrorIs(t, err, bond.ErrInvalidInput)

	// Unsorted tenors fail curve validation.
	bad := marketdata.TreasuryCurve{
		{TenorYears: 10, Rate: 0.047},
		{TenorYears: 1, Rate: 0.045},
	}
	_, err = bond.ZSpread(b, 95, bad)
	assert.ErrorIs(t, err, bond.ErrInvalidInput)

	// No spread in the bracket reaches an absurd price.
	_, err = bond.ZSpread(b, 1e9, flatCurve(0.04))
	assert.ErrorIs(t, err, bond.ErrConvergence)
}
