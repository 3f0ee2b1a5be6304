package bond_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/bondrisk/bond"
)

func TestPrice_ZeroCouponClosedForm(t *testing.T) {
	t.Parallel()

	b, err := bond.New(bond.Terms{
		CouponRate: 0,
		FaceValue:  100,
		Frequency:  2,
		Maturity:   5,
		Kind:       bond.Nominal,
	})
	require.NoError(t, err)

	const y = 0.04
	got, err := bond.Price(b, bond.YieldSpec{Rate: y})
	require.NoError(t, err)

	want := 100 * math.Pow(1+y/2, -2*5)
	assert.InDelta(t, want, got, 1e-10)
}

func TestPrice_StrictlyDecreasingInYield(t *testing.T) {
	t.Parallel()

	b, err := bond.New(nominalTerms())
	require.NoError(t, err)

	prev := math.Inf(1)
	for y := -0.05; y <= 0.25; y += 0.005 {
		pv, err := bond.Price(b, bond.YieldSpec{Rate: y})
		require.NoError(t, err, "yield %.3f", y)
		assert.Less(t, pv, prev, "price must fall as yield rises (y=%.3f)", y)
		prev = pv
	}
}

func TestPrice_DomainError(t *testing.T) {
	t.Parallel()

	b, err := bond.New(nominalTerms())
	require.NoError(t, err)

	// 1 + y/freq <= 0 for freq=2 at y <= -2.
	_, err = bond.Price(b, bond.YieldSpec{Rate: -2.0})
	require.Error(t, err)
	assert.ErrorIs(t, err, bond.ErrDomain)

	_, err = bond.Price(b, bond.YieldSpec{Rate: -2.5})
	assert.ErrorIs(t, err, bond.ErrDomain)
}

func TestPrice_CorporateSpreadEquivalence(t *testing.T) {
	t.Parallel()

	terms := nominalTerms()
	terms.Kind = bond.Corporate
	corp, err := bond.New(terms)
	require.NoError(t, err)

	nominal, err := bond.New(nominalTerms())
	require.NoError(t, err)

	// Base 4% + 150bp spread prices identically to an all-in 5.5% nominal yield.
	pCorp, err := bond.Price(corp, bond.YieldSpec{Rate: 0.04, CreditSpread: 0.015})
	require.NoError(t, err)
	pNominal, err := bond.Price(nominal, bond.YieldSpec{Rate: 0.055})
	require.NoError(t, err)
	assert.InDelta(t, pNominal, pCorp, 1e-10)

	// Zero spread collapses to the nominal model.
	pZero, err := bond.Price(corp, bond.YieldSpec{Rate: 0.055})
	require.NoError(t, err)
	assert.InDelta(t, pNominal, pZero, 1e-10)
}

func TestPrice_LinkerZeroInflationMatchesNominal(t *testing.T) {
	t.Parallel()

	linker, err := bond.New(linkerTerms(0))
	require.NoError(t, err)

	terms := linkerTerms(0)
	nominal, err := bond.New(bond.Terms{
		CouponRate: terms.CouponRate,
		FaceValue:  terms.FaceValue,
		Frequency:  terms.Frequency,
		Maturity:   terms.Maturity,
		Kind:       bond.Nominal,
	})
	require.NoError(t, err)

	spec := bond.YieldSpec{Rate: 0.01}
	pLinker, err := bond.Price(linker, spec)
	require.NoError(t, err)
	pNominal, err := bond.Price(nominal, spec)
	require.NoError(t, err)

	assert.InDelta(t, pNominal, pLinker, 1e-10)
}

func TestPrice_Pure(t *testing.T) {
	t.Parallel()

	b, err := bond.New(nominalTerms())
	require.NoError(t, err)

	spec := bond.YieldSpec{Rate: 0.047897}
	first, err := bond.Price(b, spec)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := bond.Price(b, spec)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
