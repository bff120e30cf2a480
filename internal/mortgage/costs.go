package mortgage

import (
	"github.com/shopspring/decimal"
)

// OperatingCostInput describes the annual holding costs of a rented unit.
type OperatingCostInput struct {
	MonthlyRent        decimal.Decimal
	ManagementFeeRate  decimal.Decimal // fraction of gross rent
	AnnualMunicipalTax decimal.Decimal // fixed
	VacancyRate        decimal.Decimal // fraction of gross rent
	PurchasePrice      decimal.Decimal
	RepairReserveRate  decimal.Decimal // fraction of purchase price
}

// OperatingCostBreakdown itemizes the annual operating cost aggregate.
type OperatingCostBreakdown struct {
	ManagementFee    decimal.Decimal `json:"managementFee"`
	MunicipalTax     decimal.Decimal `json:"municipalTax"`
	VacancyAllowance decimal.Decimal `json:"vacancyAllowance"`
	RepairReserve    decimal.Decimal `json:"repairReserve"`
	Total            decimal.Decimal `json:"total"`
}

// CalculateOperatingCosts sums the four annual holding cost components. The
// repair reserve is a fraction of the purchase price, not of rent.
func CalculateOperatingCosts(input OperatingCostInput) OperatingCostBreakdown {
	annualRent := input.MonthlyRent.Mul(decimal.NewFromInt(12))

	breakdown := OperatingCostBreakdown{
		ManagementFee:    annualRent.Mul(input.ManagementFeeRate),
		MunicipalTax:     input.AnnualMunicipalTax,
		VacancyAllowance: annualRent.Mul(input.VacancyRate),
		RepairReserve:    input.PurchasePrice.Mul(input.RepairReserveRate),
	}
	breakdown.Total = breakdown.ManagementFee.
		Add(breakdown.MunicipalTax).
		Add(breakdown.VacancyAllowance).
		Add(breakdown.RepairReserve)
	return breakdown
}
