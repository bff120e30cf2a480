package mortgage

import (
	"math"
	"sort"
	"time"

	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/shopspring/decimal"
)

// Contractual indexation tranches, as fractions of the contract price.
var (
	ProtectedTrancheFraction  = decimal.NewFromFloat(0.20)
	ExposedTrancheCapFraction = decimal.NewFromFloat(0.40)
)

const hoursPerYear = 24 * 365.25

// LinkageInput describes a staged payment contract linked to the construction
// cost index.
type LinkageInput struct {
	ContractPrice   decimal.Decimal
	Schedule        []domain.PaymentMilestone
	DeliveryDate    time.Time
	AnnualIndexRate decimal.Decimal
}

// CalculateLinkageSurcharge walks the payment schedule in date order and
// accrues compound index growth on the exposed tranche. The first protected
// fraction of the price never accrues indexation, exposure is capped at the
// exposed-tranche fraction, and payments after the contractual delivery date
// are excluded entirely.
func CalculateLinkageSurcharge(input LinkageInput) decimal.Decimal {
	if len(input.Schedule) == 0 || input.ContractPrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	schedule := make([]domain.PaymentMilestone, len(input.Schedule))
	copy(schedule, input.Schedule)
	sort.Slice(schedule, func(i, j int) bool { return schedule[i].Date.Before(schedule[j].Date) })

	protected := input.ContractPrice.Mul(ProtectedTrancheFraction)
	exposedCap := input.ContractPrice.Mul(ExposedTrancheCapFraction)

	firstDate := schedule[0].Date
	indexRate := input.AnnualIndexRate.InexactFloat64()

	paidSoFar := decimal.Zero
	exposedSoFar := decimal.Zero
	surcharge := decimal.Zero

	for _, milestone := range schedule {
		if !input.DeliveryDate.IsZero() && milestone.Date.After(input.DeliveryDate) {
			continue
		}
		amount := milestone.Amount
		if amount.LessThanOrEqual(decimal.Zero) {
			continue
		}

		// Portion of this payment past the protected tranche.
		beyondProtected := paidSoFar.Add(amount).Sub(protected)
		if beyondProtected.GreaterThan(amount) {
			beyondProtected = amount
		}
		paidSoFar = paidSoFar.Add(amount)
		if beyondProtected.LessThanOrEqual(decimal.Zero) {
			continue
		}

		// Exposure is capped at the exposed tranche.
		remainingExposure := exposedCap.Sub(exposedSoFar)
		if remainingExposure.LessThanOrEqual(decimal.Zero) {
			continue
		}
		exposedAmount := decimal.Min(beyondProtected, remainingExposure)
		exposedSoFar = exposedSoFar.Add(exposedAmount)

		years := milestone.Date.Sub(firstDate).Hours() / hoursPerYear
		growth := math.Pow(1+indexRate, years) - 1
		if growth < 0 {
			growth = 0
		}
		surcharge = surcharge.Add(exposedAmount.Mul(decimal.NewFromFloat(growth)))
	}

	return surcharge
}
