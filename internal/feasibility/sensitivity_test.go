package feasibility

import (
	"testing"

	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensitivityGridShapeAndDeltas(t *testing.T) {
	engine := NewEngine()
	result := engine.Compute(validInputs())
	require.Equal(t, domain.StatusOK, result.Status)

	grid := result.Data.Sensitivity
	require.Len(t, grid, 3)
	for i, row := range grid {
		require.Len(t, row, 3)
		for j, cell := range row {
			assert.True(t, cell.AppreciationDelta.Equal(sensitivityDeltas[i]))
			assert.True(t, cell.IndexDelta.Equal(sensitivityDeltas[j]))
		}
	}
}

func TestSensitivityCenterCellMatchesBase(t *testing.T) {
	engine := NewEngine()
	result := engine.Compute(validInputs())
	require.Equal(t, domain.StatusOK, result.Status)
	out := result.Data

	center := out.Sensitivity[1][1]
	expected := out.ProjectedValue10Y.Sub(out.TotalAcquisitionCost)
	assert.True(t, center.NetTerminalValue.Sub(expected).Abs().LessThan(decimal.NewFromInt(1)),
		"center cell %s vs base %s", center.NetTerminalValue, expected)
}

func TestSensitivityMonotonicInAppreciation(t *testing.T) {
	engine := NewEngine()
	result := engine.Compute(validInputs())
	require.Equal(t, domain.StatusOK, result.Status)
	grid := result.Data.Sensitivity

	// Higher appreciation rows must produce higher terminal values; higher
	// index columns must cost more.
	for j := 0; j < 3; j++ {
		assert.True(t, grid[0][j].NetTerminalValue.LessThan(grid[1][j].NetTerminalValue))
		assert.True(t, grid[1][j].NetTerminalValue.LessThan(grid[2][j].NetTerminalValue))
	}
	for i := 0; i < 3; i++ {
		assert.True(t, grid[i][0].NetTerminalValue.GreaterThan(grid[i][2].NetTerminalValue))
	}
}
