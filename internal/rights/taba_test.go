package rights

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTABADeductions(t *testing.T) {
	result := CalculateTABA(TABAInput{
		PlotArea:       decimal.NewFromInt(600),
		ExistingFloors: 3,
		AptsPerFloor:   2,
	})

	// 600 * 0.60 * 2.4 = 864 gross; 10% dedication + 8% setback strip off.
	assert.Equal(t, "864", result.GrossBuildableArea.String())
	require.Len(t, result.Deductions, 2)
	assert.Equal(t, "86.4", result.Deductions[0].AreaSqm.String())
	assert.Equal(t, "69.12", result.Deductions[1].AreaSqm.String())
	assert.Equal(t, "708.48", result.NetBuildableArea.String())
}

func TestCalculateTABAApartmentMixSumsToUnits(t *testing.T) {
	result := CalculateTABA(TABAInput{
		PlotArea:       decimal.NewFromInt(800),
		ExistingFloors: 4,
		AptsPerFloor:   3,
	})

	require.Equal(t, 12, result.EstimatedUnits)
	total := 0
	for _, entry := range result.ApartmentMix {
		total += entry.Units
	}
	assert.Equal(t, result.EstimatedUnits, total, "mix remainder tier must absorb rounding")

	require.Len(t, result.ApartmentMix, 4)
	assert.Equal(t, "3_room", result.ApartmentMix[0].Tier)
	assert.Equal(t, 4, result.ApartmentMix[0].Units)  // 30% of 12, rounded
	assert.Equal(t, 5, result.ApartmentMix[1].Units)  // 40% of 12, rounded
	assert.Equal(t, 2, result.ApartmentMix[2].Units)  // 20% of 12, rounded
	assert.Equal(t, 1, result.ApartmentMix[3].Units)  // remainder
}

func TestCalculateTABAParkingRequirement(t *testing.T) {
	result := CalculateTABA(TABAInput{
		PlotArea:       decimal.NewFromInt(600),
		ExistingFloors: 3,
		AptsPerFloor:   2,
	})

	// Net 708.48 over 6 units averages 118 sqm, inside the standard ratio.
	assert.Equal(t, "6", result.ParkingSpaces.String())

	// Fewer, larger units cross the 120 sqm threshold and require 1.5 each.
	large := CalculateTABA(TABAInput{
		PlotArea:       decimal.NewFromInt(600),
		ExistingFloors: 3,
		AptsPerFloor:   1,
	})
	assert.Equal(t, "5", large.ParkingSpaces.String()) // ceil(3 * 1.5)
}

func TestCalculateTABASetbacks(t *testing.T) {
	regular := CalculateTABA(TABAInput{PlotArea: decimal.NewFromInt(500), ExistingFloors: 2, AptsPerFloor: 2})
	corner := CalculateTABA(TABAInput{PlotArea: decimal.NewFromInt(500), ExistingFloors: 2, AptsPerFloor: 2, IsCornerPlot: true})

	assert.Equal(t, "3", regular.Setbacks.SideMeters.String())
	assert.False(t, regular.Setbacks.SecondFrontage)

	assert.Equal(t, "5", corner.Setbacks.SideMeters.String())
	assert.True(t, corner.Setbacks.SecondFrontage)
}

func TestCalculateTABAUnitsFallbackFromArea(t *testing.T) {
	// No apartment counts supplied: units derive from net area.
	result := CalculateTABA(TABAInput{
		PlotArea:       decimal.NewFromInt(600),
		ExistingFloors: 3,
	})
	assert.Equal(t, 7, result.EstimatedUnits) // floor(708.48 / 100)
}
