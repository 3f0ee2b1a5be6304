package marketdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/bondrisk/marketdata"
)

func sampleCurve() marketdata.TreasuryCurve {
	return marketdata.TreasuryCurve{
		{TenorYears: 1, Rate: 0.0450},
		{TenorYears: 2, Rate: 0.0455},
		{TenorYears: 5, Rate: 0.0460},
		{TenorYears: 10, Rate: 0.0470},
		{TenorYears: 30, Rate: 0.0479},
	}
}

func TestTreasuryCurve_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, sampleCurve().Validate())

	assert.Error(t, marketdata.TreasuryCurve{}.Validate())

	unsorted := marketdata.TreasuryCurve{
		{TenorYears: 5, Rate: 0.046},
		{TenorYears: 2, Rate: 0.0455},
	}
	assert.Error(t, unsorted.Validate())

	duplicate := marketdata.TreasuryCurve{
		{TenorYears: 5, Rate: 0.046},
		{TenorYears: 5, Rate: 0.047},
	}
	assert.Error(t, duplicate.Validate())
}

func TestTreasuryCurve_Rate(t *testing.T) {
	t.Parallel()

	c := sampleCurve()

	// Quoted tenors come back exactly.
	for _, p := range c {
		assert.InDelta(t, p.Rate, c.Rate(p.TenorYears), 1e-15)
	}

	// Linear between quotes.
	assert.InDelta(t, 0.0465, c.Rate(7.5), 1e-12)
	assert.InDelta(t, 0.04525, c.Rate(1.5), 1e-12)

	// Flat extrapolation beyond the ends.
	assert.InDelta(t, 0.0450, c.Rate(0.25), 1e-15)
	assert.InDelta(t, 0.0479, c.Rate(50), 1e-15)
}

func TestIndexObservation_Ratio(t *testing.T) {
	t.Parallel()

	obs := marketdata.IndexObservation{BaseLevel: 251.2, CurrentLevel: 316.4, LagMonths: 3}
	r, err := obs.Ratio()
	require.NoError(t, err)
	assert.InDelta(t, 316.4/251.2, r, 1e-15)

	_, err = marketdata.IndexObservation{BaseLevel: 0, CurrentLevel: 100}.Ratio()
	assert.Error(t, err)
	_, err = marketdata.IndexObservation{BaseLevel: 100, CurrentLevel: -1}.Ratio()
	assert.Error(t, err)
}
