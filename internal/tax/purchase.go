package tax

import (
	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/shopspring/decimal"
)

// Bracket is one row of a purchase-tax bracket table.
type Bracket struct {
	From decimal.Decimal
	To   decimal.Decimal
	Rate decimal.Decimal
}

// BracketRow is one bracket actually touched by a given price, with the tax
// charged inside it.
type BracketRow struct {
	From          decimal.Decimal `json:"from"`
	To            decimal.Decimal `json:"to"`
	Rate          decimal.Decimal `json:"rate"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	Tax           decimal.Decimal `json:"tax"`
}

// PurchaseTaxResult is the full bracket breakdown for a price.
type PurchaseTaxResult struct {
	Total         decimal.Decimal `json:"total"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	Brackets      []BracketRow    `json:"brackets"`
}

// PurchaseTaxCalculator evaluates the progressive purchase tax over one of the
// two statutory bracket tables.
type PurchaseTaxCalculator struct {
	SingleResidenceBrackets []Bracket
	InvestorBrackets        []Bracket
}

// NewPurchaseTaxCalculator creates a calculator loaded with the current
// statutory bracket tables.
func NewPurchaseTaxCalculator() *PurchaseTaxCalculator {
	return &PurchaseTaxCalculator{
		SingleResidenceBrackets: []Bracket{
			{decimal.Zero, decimal.NewFromInt(1978745), decimal.Zero},
			{decimal.NewFromInt(1978745), decimal.NewFromInt(2347040), decimal.NewFromFloat(0.035)},
			{decimal.NewFromInt(2347040), decimal.NewFromInt(6055070), decimal.NewFromFloat(0.05)},
			{decimal.NewFromInt(6055070), decimal.NewFromInt(20183565), decimal.NewFromFloat(0.08)},
			{decimal.NewFromInt(20183565), decimal.NewFromInt(999999999), decimal.NewFromFloat(0.10)},
		},
		InvestorBrackets: []Bracket{
			{decimal.Zero, decimal.NewFromInt(6055070), decimal.NewFromFloat(0.08)},
			{decimal.NewFromInt(6055070), decimal.NewFromInt(999999999), decimal.NewFromFloat(0.10)},
		},
	}
}

// Calculate walks the track's brackets in order and accumulates tax on the
// slice of price inside each bracket, stopping once the price no longer
// reaches the bracket floor. A non-positive price yields zero tax and an
// empty bracket list.
func (ptc *PurchaseTaxCalculator) Calculate(price decimal.Decimal, track domain.PurchaseTaxTrack) PurchaseTaxResult {
	result := PurchaseTaxResult{Total: decimal.Zero, EffectiveRate: decimal.Zero}
	if price.LessThanOrEqual(decimal.Zero) {
		return result
	}

	brackets := ptc.SingleResidenceBrackets
	if track == domain.PurchaseTrackInvestor {
		brackets = ptc.InvestorBrackets
	}

	for _, bracket := range brackets {
		if price.LessThanOrEqual(bracket.From) {
			break
		}
		taxable := decimal.Min(price, bracket.To).Sub(bracket.From)
		if taxable.LessThanOrEqual(decimal.Zero) {
			continue
		}
		rowTax := taxable.Mul(bracket.Rate)
		result.Brackets = append(result.Brackets, BracketRow{
			From:          bracket.From,
			To:            bracket.To,
			Rate:          bracket.Rate,
			TaxableAmount: taxable,
			Tax:           rowTax,
		})
		result.Total = result.Total.Add(rowTax)
	}

	result.EffectiveRate = result.Total.Div(price)
	return result
}
