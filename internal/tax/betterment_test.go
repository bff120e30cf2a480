package tax

import (
	"testing"

	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestBettermentLevyMetroFixture(t *testing.T) {
	// Metro zone, 20,000 -> 30,000 per sqm over 100 sqm at the 60% rate.
	result := CalculateBettermentLevy(BettermentInput{
		HasPlanApproval:   true,
		AreaSqm:           decimal.NewFromInt(100),
		ValueBeforePerSqm: decPtr(20000),
		ValueAfterPerSqm:  decPtr(30000),
		InMetroZone:       true,
	})

	require.Equal(t, domain.StatusOK, result.Status)
	assert.Equal(t, "0.6", result.Data.Rate.String())
	assert.Equal(t, "600000", result.Data.Levy.String())
}

func TestBettermentLevyStandardFixture(t *testing.T) {
	// Non-metro, 20,000 -> 25,000 per sqm over 100 sqm at the 50% rate.
	result := CalculateBettermentLevy(BettermentInput{
		HasPlanApproval:   true,
		AreaSqm:           decimal.NewFromInt(100),
		ValueBeforePerSqm: decPtr(20000),
		ValueAfterPerSqm:  decPtr(25000),
	})

	require.Equal(t, domain.StatusOK, result.Status)
	assert.Equal(t, "0.5", result.Data.Rate.String())
	assert.Equal(t, "250000", result.Data.Levy.String())
}

func TestBettermentLevyNoPlanApproval(t *testing.T) {
	result := CalculateBettermentLevy(BettermentInput{
		HasPlanApproval:   false,
		AreaSqm:           decimal.NewFromInt(100),
		ValueBeforePerSqm: decPtr(20000),
		ValueAfterPerSqm:  decPtr(90000),
		InMetroZone:       true,
	})

	require.Equal(t, domain.StatusOK, result.Status)
	assert.True(t, result.Data.Levy.IsZero(), "no approved plan must short-circuit to zero levy")
}

func TestBettermentLevyMissingAppraisal(t *testing.T) {
	cases := []BettermentInput{
		{HasPlanApproval: true, AreaSqm: decimal.NewFromInt(100), ValueAfterPerSqm: decPtr(30000)},
		{HasPlanApproval: true, AreaSqm: decimal.NewFromInt(100), ValueBeforePerSqm: decPtr(20000)},
		{HasPlanApproval: true, AreaSqm: decimal.NewFromInt(100)},
	}
	for _, input := range cases {
		result := CalculateBettermentLevy(input)
		require.Equal(t, domain.StatusEstimateOnly, result.Status)
		assert.True(t, result.Data.Levy.IsZero())
		assert.Equal(t, "0.5", result.Data.Rate.String())
		assert.NotEmpty(t, result.Note)
	}
}

func TestBettermentLevyNegativeDeltaClamps(t *testing.T) {
	result := CalculateBettermentLevy(BettermentInput{
		HasPlanApproval:   true,
		AreaSqm:           decimal.NewFromInt(100),
		ValueBeforePerSqm: decPtr(30000),
		ValueAfterPerSqm:  decPtr(20000),
	})

	require.Equal(t, domain.StatusOK, result.Status)
	assert.True(t, result.Data.Levy.IsZero())
	assert.True(t, result.Data.BettermentValue.IsZero())
}

func TestBettermentLevyOwnershipShare(t *testing.T) {
	half := decimal.NewFromFloat(0.5)
	result := CalculateBettermentLevy(BettermentInput{
		HasPlanApproval:   true,
		AreaSqm:           decimal.NewFromInt(100),
		ValueBeforePerSqm: decPtr(20000),
		ValueAfterPerSqm:  decPtr(30000),
		OwnershipShare:    half,
	})

	require.Equal(t, domain.StatusOK, result.Status)
	assert.Equal(t, "250000", result.Data.Levy.String())
}
