package mortgage

import (
	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/shopspring/decimal"
)

// Underwriting limits set by the banking regulator.
var (
	MaxLTVSoleResidence   = decimal.NewFromFloat(0.75)
	MaxLTVReplacementHome = decimal.NewFromFloat(0.70)
	MaxLTVInvestment      = decimal.NewFromFloat(0.50)

	MaxPaymentToIncome = decimal.NewFromFloat(0.50)
	RiskPremiumPTI     = decimal.NewFromFloat(0.40)
	MaxTermYears       = 30
)

// FinancingInput describes the loan being underwritten.
type FinancingInput struct {
	Price               decimal.Decimal
	DownPaymentFraction decimal.Decimal
	AdditionalDebt      decimal.Decimal
	AnnualRate          decimal.Decimal
	TermYears           int
	DisposableIncome    decimal.Decimal
	LoanPurpose         domain.LoanPurpose
	Residency           domain.Residency
}

// MaxAllowedLTV returns the regulatory loan-to-value ceiling for a purpose and
// residency. Non-residents are capped at the investment ceiling regardless of
// purpose.
func MaxAllowedLTV(purpose domain.LoanPurpose, residency domain.Residency) decimal.Decimal {
	if residency == domain.ResidencyNonResident {
		return MaxLTVInvestment
	}
	switch purpose {
	case domain.LoanSoleResidence:
		return MaxLTVSoleResidence
	case domain.LoanReplacementHome:
		return MaxLTVReplacementHome
	default:
		return MaxLTVInvestment
	}
}

// AnnuityMonthlyPayment computes the fixed-rate annuity payment over
// years*12 periods. A zero rate degenerates to straight-line amortization.
func AnnuityMonthlyPayment(principal, annualRate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	periods := int64(years * 12)
	if annualRate.IsZero() {
		return principal.Div(decimal.NewFromInt(periods))
	}

	monthlyRate := annualRate.Div(decimal.NewFromInt(12))
	growth := monthlyRate.Add(decimal.NewFromInt(1)).Pow(decimal.NewFromInt(periods))
	return principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
}

// EvaluateFinancing checks the aggregate loan-to-value, payment-to-income and
// term constraints. All three must hold for the loan to pass; a PTI above the
// risk threshold is flagged even when the hard constraint still passes.
func EvaluateFinancing(input FinancingInput) domain.FinancingResult {
	maxLTV := MaxAllowedLTV(input.LoanPurpose, input.Residency)

	one := decimal.NewFromInt(1)
	loan := input.Price.Mul(one.Sub(input.DownPaymentFraction))
	if loan.LessThan(decimal.Zero) {
		loan = decimal.Zero
	}
	aggregateDebt := loan.Add(input.AdditionalDebt)

	aggregateLTV := decimal.Zero
	if input.Price.GreaterThan(decimal.Zero) {
		aggregateLTV = aggregateDebt.Div(input.Price)
	}

	monthlyPayment := AnnuityMonthlyPayment(loan, input.AnnualRate, input.TermYears)

	// A non-positive income forces failure rather than a divide-by-zero.
	pti := decimal.NewFromInt(1)
	if input.DisposableIncome.GreaterThan(decimal.Zero) {
		pti = monthlyPayment.Div(input.DisposableIncome)
	}

	result := domain.FinancingResult{
		MaxAllowedLTV:   maxLTV,
		LoanAmount:      loan,
		AggregateDebt:   aggregateDebt,
		AggregateLTV:    aggregateLTV,
		MonthlyPayment:  monthlyPayment,
		PaymentToIncome: pti,
		Passes:          true,
	}

	if aggregateLTV.GreaterThan(maxLTV) {
		result.Passes = false
		result.FailureReasons = append(result.FailureReasons, "aggregate loan-to-value exceeds the regulatory ceiling")
	}
	if pti.GreaterThan(MaxPaymentToIncome) {
		result.Passes = false
		result.FailureReasons = append(result.FailureReasons, "payment-to-income exceeds 50%")
	}
	if input.TermYears > MaxTermYears {
		result.Passes = false
		result.FailureReasons = append(result.FailureReasons, "loan term exceeds 30 years")
	}
	if pti.GreaterThan(RiskPremiumPTI) {
		result.RiskPremium = true
	}

	return result
}
