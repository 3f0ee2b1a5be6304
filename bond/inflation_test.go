package bond_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/bondrisk/bond"
)

func TestRealToNominal(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.0506, bond.RealToNominal(0.02, 0.03), 1e-12)
	assert.InDelta(t, 0.0, bond.RealToNominal(0, 0), 1e-12)
	// Negative real yields, as on long UK linkers.
	assert.InDelta(t, (1-0.0175)*(1+0.041)-1, bond.RealToNominal(-0.0175, 0.041), 1e-12)
}

func TestBreakevenSimple(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.062, bond.BreakevenSimple(0.0445, -0.0175), 1e-12)
	assert.InDelta(t, 0.02, bond.BreakevenSimple(0.035, 0.015), 1e-12)
}

func TestBreakevenInflation_RootFind(t *testing.T) {
	t.Parallel()

	linker, err := bond.New(linkerTerms(0.02))
	require.NoError(t, err)

	realSpec := bond.YieldSpec{Rate: 0.015}

	// Comparator: the linker's own value under a 3% flat path. The root-find
	// must recover that path from the price alone.
	target, err := bond.New(linkerTerms(0.03))
	require.NoError(t, err)
	nominalPrice, err := bond.Price(target, realSpec)
	require.NoError(t, err)

	be, err := bond.BreakevenInflation(linker, realSpec, nominalPrice)
	require.NoError(t, err)
	assert.InDelta(t, 0.03, be, 1e-6)

	// And the recovered path reprices to the comparator value.
	solved, err := linker.WithAssumedInflation(be)
	require.NoError(t, err)
	pv, err := bond.Price(solved, realSpec)
	require.NoError(t, err)
	assert.InDelta(t, nominalPrice, pv, 1e-4*linker.FaceValue)
}

func TestBreakevenInflation_TracksYieldGap(t *testing.T) {
	t.Parallel()

	// A nominal comparator priced at real yield + breakeven should imply an
	// inflation path near the simple difference for matched terms.
	const (
		realYield    = 0.015
		nominalYield = 0.035
	)

	linker, err := bond.New(linkerTerms(0))
	require.NoError(t, err)

	comparator, err := bond.New(bond.Terms{
		CouponRate: 0.00125,
		FaceValue:  100,
		Frequency:  2,
		Maturity:   10,
		Kind:       bond.Nominal,
	})
	require.NoError(t, err)
	nominalPrice, err := bond.Price(comparator, bond.YieldSpec{Rate: realYield})
	require.NoError(t, err)

	be, err := bond.BreakevenInflation(linker, bond.YieldSpec{Rate: realYield}, nominalPrice)
	require.NoError(t, err)

	// With identical terms and the same discounting rate, the equalizing
	// inflation path is zero.
	assert.InDelta(t, 0.0, be, 1e-6)

	simple := bond.BreakevenSimple(nominalYield, realYield)
	assert.InDelta(t, 0.02, simple, 1e-12)
}

func TestBreakevenInflation_Guards(t *testing.T) {
	t.Parallel()

	nominal, err := bond.New(nominalTerms())
	require.NoError(t, err)
	_, err = bond.BreakevenInflation(nominal, bond.YieldSpec{Rate: 0.01}, 100)
	assert.ErrorIs(t, err, bond.ErrInvalidInput)

	linker, err := bond.New(linkerTerms(0.02))
	require.NoError(t, err)
	_, err = bond.BreakevenInflation(linker, bond.YieldSpec{Rate: 0.01}, 0)
	assert.ErrorIs(t, err, bond.ErrInvalidInput)

	// A comparator price no inflation path in the bracket can reach.
	_, err = bond.BreakevenInflation(linker, bond.YieldSpec{Rate: 0.01}, 1e9)
	assert.ErrorIs(t, err, bond.ErrConvergence)
}
