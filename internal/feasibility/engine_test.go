package feasibility

import (
	"testing"
	"time"

	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInputs() domain.FeasibilityInputs {
	signing := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	return domain.FeasibilityInputs{
		Price:            decimal.NewFromInt(2000000),
		ServiceFees:      decimal.NewFromInt(40000),
		PurchaseTaxTrack: domain.PurchaseTrackSingleResidence,
		PaymentSchedule: []domain.PaymentMilestone{
			{Date: signing, Amount: decimal.NewFromInt(400000)},
			{Date: signing.AddDate(1, 0, 0), Amount: decimal.NewFromInt(800000)},
			{Date: signing.AddDate(2, 0, 0), Amount: decimal.NewFromInt(800000)},
		},
		DeliveryDate:    signing.AddDate(3, 0, 0),
		AnnualIndexRate: decimal.NewFromFloat(0.03),

		DownPaymentFraction: decimal.NewFromFloat(0.30),
		FixedRate:           decimal.NewFromFloat(0.045),
		PrimeRate:           decimal.NewFromFloat(0.055),
		TermYears:           25,
		DisposableIncome:    decimal.NewFromInt(45000),
		LoanPurpose:         domain.LoanSoleResidence,
		Residency:           domain.ResidencyResident,

		MonthlyRent:    decimal.NewFromInt(7500),
		RentalTaxTrack: domain.RentalTrackFlat,

		ManagementFeeRate:  decimal.NewFromFloat(0.05),
		AnnualMunicipalTax: decimal.NewFromInt(6000),
		VacancyRate:        decimal.NewFromFloat(0.04),
		RepairReserveRate:  decimal.NewFromFloat(0.001),

		BaseAppreciationRate: decimal.NewFromFloat(0.03),
		MetroDistanceMeters:  decimal.NewFromInt(250),
	}
}

func TestComputeFullPipeline(t *testing.T) {
	engine := NewEngine()

	result := engine.Compute(validInputs())
	require.Equal(t, domain.StatusOK, result.Status)
	out := result.Data

	// Purchase tax for a 2.0M single residence is the fixture 744.
	assert.Equal(t, "744", out.PurchaseTax.Round(0).String())
	// Existing stock: no VAT on the price, but VAT on service fees.
	assert.True(t, out.PriceVAT.IsZero())
	assert.Equal(t, "7200", out.ServiceFeeVAT.String())
	assert.True(t, out.LinkageSurcharge.GreaterThan(decimal.Zero))

	expectedAcquisition := decimal.NewFromInt(2000000).
		Add(out.PurchaseTax).
		Add(decimal.NewFromInt(40000)).
		Add(out.ServiceFeeVAT).
		Add(out.LinkageSurcharge)
	assert.True(t, out.TotalAcquisitionCost.Equal(expectedAcquisition))

	assert.True(t, out.Financing.Passes, "failures: %v", out.Financing.FailureReasons)

	// Ring-1 transit uplift midpoint is 0.9pp on top of the 3% base.
	assert.Equal(t, "0.009", out.TransitUplift.String())
	assert.Equal(t, "0.039", out.AppreciationRate.String())

	assert.True(t, out.ProjectedValue10Y.GreaterThan(decimal.NewFromInt(2000000)))
	assert.False(t, out.XIRR10Y.IsZero())

	require.Len(t, out.Sensitivity, 3)
	for _, row := range out.Sensitivity {
		require.Len(t, row, 3)
	}
}

func TestComputeNewConstructionVAT(t *testing.T) {
	engine := NewEngine()
	inputs := validInputs()
	inputs.NewConstruction = true

	result := engine.Compute(inputs)
	require.Equal(t, domain.StatusOK, result.Status)
	assert.Equal(t, "360000", result.Data.PriceVAT.String())
}

func TestComputeRejectsNonPositivePrice(t *testing.T) {
	engine := NewEngine()
	inputs := validInputs()
	inputs.Price = decimal.Zero

	result := engine.Compute(inputs)
	assert.Equal(t, domain.StatusCannotCompute, result.Status)
	assert.NotEmpty(t, result.Reason)
}

func TestComputeFailedFinancingStillProducesOutputs(t *testing.T) {
	engine := NewEngine()
	inputs := validInputs()
	inputs.DisposableIncome = decimal.NewFromInt(1000)

	result := engine.Compute(inputs)
	require.Equal(t, domain.StatusOK, result.Status)
	assert.False(t, result.Data.Financing.Passes)
	assert.NotEmpty(t, result.Warnings)
}

func TestComputeAnnualNetCashFlowComposition(t *testing.T) {
	engine := NewEngine()
	inputs := validInputs()

	result := engine.Compute(inputs)
	require.Equal(t, domain.StatusOK, result.Status)
	out := result.Data

	annualRent := decimal.NewFromInt(7500 * 12)
	annualMortgage := out.Financing.MonthlyPayment.Mul(decimal.NewFromInt(12))
	expected := annualRent.Sub(out.AnnualRentalTax).Sub(out.AnnualOperatingCost).Sub(annualMortgage)
	assert.True(t, out.AnnualNetCashFlow.Equal(expected))
}

func TestTransitUpliftBuckets(t *testing.T) {
	tests := []struct {
		meters int64
		want   string
	}{
		{50, "0.015"},
		{100, "0.015"},
		{250, "0.009"},
		{800, "0.005"},
		{2000, "0"},
		{-1, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TransitUplift(decimal.NewFromInt(tt.meters)).String(), "distance %d", tt.meters)
	}
}

func TestXIRRRecoverAppreciationOnlyDeal(t *testing.T) {
	// With no rent and no mortgage, the XIRR of buy-at-cost/sell-at-value
	// tracks the appreciation rate net of acquisition friction.
	engine := NewEngine()
	inputs := validInputs()
	inputs.MonthlyRent = decimal.Zero
	inputs.ServiceFees = decimal.Zero
	inputs.AnnualMunicipalTax = decimal.Zero
	inputs.RepairReserveRate = decimal.Zero
	inputs.PaymentSchedule = inputs.PaymentSchedule[:1]
	inputs.DownPaymentFraction = decimal.NewFromInt(1)

	result := engine.Compute(inputs)
	require.Equal(t, domain.StatusOK, result.Status)

	// 3.9% appreciation less the purchase-tax drag: close below 3.9.
	rate := result.Data.XIRR10Y.InexactFloat64()
	assert.Greater(t, rate, 3.0)
	assert.Less(t, rate, 3.9)
}
