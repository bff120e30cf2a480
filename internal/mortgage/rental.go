package mortgage

import (
	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/shopspring/decimal"
)

// Rental taxation constants.
var (
	FlatRentalTaxRate       = decimal.NewFromFloat(0.10)
	MonthlyExemptionCeiling = decimal.NewFromInt(5654)
)

// RentalTaxInput describes a year of rental income under a chosen track.
type RentalTaxInput struct {
	Track              domain.RentalTaxTrack
	MonthlyRent        decimal.Decimal
	DeductibleExpenses decimal.Decimal // annual, marginal track only
	MarginalRate       decimal.Decimal
}

// CalculateRentalTax evaluates the annual tax for one of the three mutually
// exclusive rental income tracks.
func CalculateRentalTax(input RentalTaxInput) decimal.Decimal {
	if input.MonthlyRent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	annualRent := input.MonthlyRent.Mul(decimal.NewFromInt(12))

	switch input.Track {
	case domain.RentalTrackFlat:
		return annualRent.Mul(FlatRentalTaxRate)

	case domain.RentalTrackMarginal:
		taxable := annualRent.Sub(input.DeductibleExpenses)
		if taxable.LessThan(decimal.Zero) {
			return decimal.Zero
		}
		return taxable.Mul(input.MarginalRate)

	case domain.RentalTrackExemption:
		return exemptionTrackTax(input.MonthlyRent, input.MarginalRate).Mul(decimal.NewFromInt(12))

	default:
		return annualRent.Mul(FlatRentalTaxRate)
	}
}

// exemptionTrackTax applies the shrinking-exemption rule on a monthly basis:
// rent above the ceiling reduces the remaining exemption symmetrically, and
// only the residual above the adjusted exemption is taxed.
func exemptionTrackTax(monthlyRent, marginalRate decimal.Decimal) decimal.Decimal {
	if monthlyRent.LessThanOrEqual(MonthlyExemptionCeiling) {
		return decimal.Zero
	}

	excess := monthlyRent.Sub(MonthlyExemptionCeiling)
	adjustedExemption := MonthlyExemptionCeiling.Sub(excess)
	if adjustedExemption.LessThan(decimal.Zero) {
		adjustedExemption = decimal.Zero
	}

	taxable := monthlyRent.Sub(adjustedExemption)
	if taxable.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return taxable.Mul(marginalRate)
}
