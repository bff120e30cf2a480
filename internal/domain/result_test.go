package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeResultOK(t *testing.T) {
	result := OK(decimal.NewFromInt(42), ConfidenceHigh, "check the appraisal date")

	assert.Equal(t, StatusOK, result.Status)
	value, ok := result.Value()
	assert.True(t, ok)
	assert.Equal(t, "42", value.String())
	assert.True(t, result.HasData())
	assert.Len(t, result.Warnings, 1)
}

func TestComputeResultEstimateOnly(t *testing.T) {
	result := EstimateOnly(decimal.Zero, "certified appraisal required")

	assert.Equal(t, StatusEstimateOnly, result.Status)
	_, ok := result.Value()
	assert.False(t, ok, "estimate-only data is not authoritative")
	assert.True(t, result.HasData())
	assert.Equal(t, "certified appraisal required", result.Note)
}

func TestComputeResultFailureVariants(t *testing.T) {
	cannot := CannotCompute[int]("plot area out of range")
	assert.Equal(t, StatusCannotCompute, cannot.Status)
	assert.False(t, cannot.HasData())
	assert.Equal(t, "plot area out of range", cannot.Reason)

	noData := NoData[int]("city not configured")
	assert.Equal(t, StatusNoData, noData.Status)
	assert.False(t, noData.HasData())
	assert.Equal(t, "city not configured", noData.Message)
}

func TestComputeResultJSONRoundTrip(t *testing.T) {
	original := OK("levy", ConfidenceMedium)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded ComputeResult[string]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.Status, decoded.Status)
	assert.Equal(t, original.Data, decoded.Data)
	assert.Equal(t, original.Confidence, decoded.Confidence)
}
