package tax

import (
	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/shopspring/decimal"
)

// Betterment levy rates. The elevated rate applies inside any metro ring.
var (
	BettermentStandardRate = decimal.NewFromFloat(0.50)
	BettermentMetroRate    = decimal.NewFromFloat(0.60)
)

// BettermentInput describes a parcel's appraisal state around a plan approval.
// ValueBeforePerSqm and ValueAfterPerSqm are nil when no certified appraisal
// is available.
type BettermentInput struct {
	HasPlanApproval   bool             `json:"hasPlanApproval"`
	AreaSqm           decimal.Decimal  `json:"areaSqm"`
	ValueBeforePerSqm *decimal.Decimal `json:"valueBeforePerSqm"`
	ValueAfterPerSqm  *decimal.Decimal `json:"valueAfterPerSqm"`
	OwnershipShare    decimal.Decimal  `json:"ownershipShare"`
	InMetroZone       bool             `json:"inMetroZone"`
}

// BettermentResult is the levy computation for a parcel.
type BettermentResult struct {
	Rate            decimal.Decimal `json:"rate"`
	BettermentValue decimal.Decimal `json:"bettermentValue"`
	Levy            decimal.Decimal `json:"levy"`
}

// CalculateBettermentLevy computes the statutory charge on the increase in
// land value caused by a zoning-plan approval. Missing appraisal values yield
// an estimate-only result carrying the applicable rate and a zero placeholder;
// the delta is never fabricated.
func CalculateBettermentLevy(input BettermentInput) domain.ComputeResult[BettermentResult] {
	rate := BettermentStandardRate
	if input.InMetroZone {
		rate = BettermentMetroRate
	}

	// No approved plan means no levy event at all.
	if !input.HasPlanApproval {
		return domain.OK(BettermentResult{
			Rate:            rate,
			BettermentValue: decimal.Zero,
			Levy:            decimal.Zero,
		}, domain.ConfidenceHigh)
	}

	if input.ValueBeforePerSqm == nil || input.ValueAfterPerSqm == nil {
		return domain.EstimateOnly(BettermentResult{Rate: rate},
			"certified appraisal required: before/after land values are missing, levy amount cannot be assessed")
	}

	share := input.OwnershipShare
	if share.LessThanOrEqual(decimal.Zero) {
		share = decimal.NewFromInt(1)
	}

	delta := input.ValueAfterPerSqm.Mul(input.AreaSqm).Sub(input.ValueBeforePerSqm.Mul(input.AreaSqm))
	if delta.LessThan(decimal.Zero) {
		delta = decimal.Zero
	}

	bettermentValue := delta.Mul(share)
	levy := bettermentValue.Mul(rate).Round(0)

	confidence := domain.ConfidenceHigh
	var warnings []string
	if input.InMetroZone {
		confidence = domain.ConfidenceMedium
		warnings = append(warnings, "metro-zone elevated rate applied; final rate is set by the local committee")
	}

	return domain.OK(BettermentResult{
		Rate:            rate,
		BettermentValue: bettermentValue,
		Levy:            levy,
	}, confidence, warnings...)
}
