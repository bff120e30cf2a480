package feasibility

import (
	"time"

	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/mivnecheck/mivnecheck/internal/mortgage"
	"github.com/mivnecheck/mivnecheck/internal/tax"
	"github.com/mivnecheck/mivnecheck/internal/xirr"
	"github.com/shopspring/decimal"
)

// VATRate applies to new-construction prices and to service fees.
var VATRate = decimal.NewFromFloat(0.18)

const projectionYears = 10

// transitUpliftBuckets maps metro distance to an annual appreciation uplift
// band in percentage points; the midpoint of the band is applied.
var transitUpliftBuckets = []struct {
	MaxMeters decimal.Decimal
	MinUplift decimal.Decimal
	MaxUplift decimal.Decimal
}{
	{decimal.NewFromInt(100), decimal.NewFromFloat(0.010), decimal.NewFromFloat(0.020)},
	{decimal.NewFromInt(300), decimal.NewFromFloat(0.006), decimal.NewFromFloat(0.012)},
	{decimal.NewFromInt(800), decimal.NewFromFloat(0.002), decimal.NewFromFloat(0.008)},
}

// Engine composes the tax, mortgage and solver calculators into a single
// feasibility result. It holds no state beyond its sub-calculators and is safe
// for concurrent use.
type Engine struct {
	PurchaseTax *tax.PurchaseTaxCalculator
}

// NewEngine creates a feasibility engine with the statutory tax tables.
func NewEngine() *Engine {
	return &Engine{PurchaseTax: tax.NewPurchaseTaxCalculator()}
}

// TransitUplift returns the annual appreciation uplift for a metro distance,
// the midpoint of the matching distance bucket.
func TransitUplift(distance decimal.Decimal) decimal.Decimal {
	if distance.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	for _, bucket := range transitUpliftBuckets {
		if distance.LessThanOrEqual(bucket.MaxMeters) {
			return bucket.MinUplift.Add(bucket.MaxUplift).Div(decimal.NewFromInt(2))
		}
	}
	return decimal.Zero
}

// Compute runs the full feasibility pipeline in its fixed order: purchase tax,
// VAT, linkage surcharge, acquisition cost, financing, rental tax and
// operating costs, net cash flow, appreciation, the 10-year XIRR and the
// sensitivity grid.
func (e *Engine) Compute(inputs domain.FeasibilityInputs) domain.ComputeResult[domain.FeasibilityOutputs] {
	if inputs.Price.LessThanOrEqual(decimal.Zero) {
		return domain.CannotCompute[domain.FeasibilityOutputs]("price must be positive")
	}
	if inputs.TermYears <= 0 {
		return domain.CannotCompute[domain.FeasibilityOutputs]("loan term must be positive")
	}

	var out domain.FeasibilityOutputs
	var warnings []string

	out.PurchaseTax = e.PurchaseTax.Calculate(inputs.Price, inputs.PurchaseTaxTrack).Total

	if inputs.NewConstruction {
		out.PriceVAT = inputs.Price.Mul(VATRate)
	}
	out.ServiceFeeVAT = inputs.ServiceFees.Mul(VATRate)

	out.LinkageSurcharge = mortgage.CalculateLinkageSurcharge(mortgage.LinkageInput{
		ContractPrice:   inputs.Price,
		Schedule:        inputs.PaymentSchedule,
		DeliveryDate:    inputs.DeliveryDate,
		AnnualIndexRate: inputs.AnnualIndexRate,
	})

	out.TotalAcquisitionCost = inputs.Price.
		Add(out.PurchaseTax).
		Add(out.PriceVAT).
		Add(inputs.ServiceFees).
		Add(out.ServiceFeeVAT).
		Add(out.LinkageSurcharge)

	effectiveRate := inputs.FixedRate.Add(inputs.PrimeRate).Div(decimal.NewFromInt(2))
	out.Financing = mortgage.EvaluateFinancing(mortgage.FinancingInput{
		Price:               inputs.Price,
		DownPaymentFraction: inputs.DownPaymentFraction,
		AdditionalDebt:      inputs.AdditionalDebt,
		AnnualRate:          effectiveRate,
		TermYears:           inputs.TermYears,
		DisposableIncome:    inputs.DisposableIncome,
		LoanPurpose:         inputs.LoanPurpose,
		Residency:           inputs.Residency,
	})
	if !out.Financing.Passes {
		warnings = append(warnings, "financing constraints fail; the projection assumes the loan is granted regardless")
	}
	if out.Financing.RiskPremium {
		warnings = append(warnings, "payment-to-income above 40%; lenders typically price a risk premium")
	}

	out.AnnualRentalTax = mortgage.CalculateRentalTax(mortgage.RentalTaxInput{
		Track:              inputs.RentalTaxTrack,
		MonthlyRent:        inputs.MonthlyRent,
		DeductibleExpenses: inputs.DeductibleExpenses,
		MarginalRate:       inputs.MarginalTaxRate,
	})
	out.AnnualOperatingCost = mortgage.CalculateOperatingCosts(mortgage.OperatingCostInput{
		MonthlyRent:        inputs.MonthlyRent,
		ManagementFeeRate:  inputs.ManagementFeeRate,
		AnnualMunicipalTax: inputs.AnnualMunicipalTax,
		VacancyRate:        inputs.VacancyRate,
		PurchasePrice:      inputs.Price,
		RepairReserveRate:  inputs.RepairReserveRate,
	}).Total

	annualRent := inputs.MonthlyRent.Mul(decimal.NewFromInt(12))
	annualMortgage := out.Financing.MonthlyPayment.Mul(decimal.NewFromInt(12))
	out.AnnualNetCashFlow = annualRent.
		Sub(out.AnnualRentalTax).
		Sub(out.AnnualOperatingCost).
		Sub(annualMortgage)

	out.TransitUplift = TransitUplift(inputs.MetroDistanceMeters)
	out.AppreciationRate = inputs.BaseAppreciationRate.Add(out.TransitUplift)

	out.ProjectedValue10Y = projectValue(inputs.Price, out.AppreciationRate, projectionYears)
	out.XIRR10Y = e.solveXIRR(out.TotalAcquisitionCost, out.AnnualNetCashFlow, out.ProjectedValue10Y)

	out.Sensitivity = e.sensitivityGrid(inputs, out)

	confidence := domain.ConfidenceMedium
	if out.Financing.Passes && inputs.MonthlyRent.GreaterThan(decimal.Zero) {
		confidence = domain.ConfidenceHigh
	}
	return domain.OK(out, confidence, warnings...)
}

// projectValue compounds a value at an annual rate over whole years.
func projectValue(value, annualRate decimal.Decimal, years int) decimal.Decimal {
	return value.Mul(annualRate.Add(decimal.NewFromInt(1)).Pow(decimal.NewFromInt(int64(years))))
}

// solveXIRR builds the 10-year cash-flow series (acquisition outflow at t0,
// annual net cash flow for years 1-10, sale value at year 10) and solves it.
func (e *Engine) solveXIRR(acquisition, annualNet, saleValue decimal.Decimal) decimal.Decimal {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	flows := []xirr.CashFlow{{Date: start, Amount: -acquisition.InexactFloat64()}}
	for year := 1; year <= projectionYears; year++ {
		amount := annualNet.InexactFloat64()
		if year == projectionYears {
			amount += saleValue.InexactFloat64()
		}
		flows = append(flows, xirr.CashFlow{Date: start.AddDate(year, 0, 0), Amount: amount})
	}
	return decimal.NewFromFloat(xirr.Solve(flows))
}
