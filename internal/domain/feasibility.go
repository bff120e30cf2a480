package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanPurpose drives the maximum allowed loan-to-value.
type LoanPurpose string

const (
	LoanSoleResidence   LoanPurpose = "sole_residence"
	LoanReplacementHome LoanPurpose = "replacement_home"
	LoanInvestment      LoanPurpose = "investment"
)

// Residency of the borrower for underwriting purposes.
type Residency string

const (
	ResidencyResident    Residency = "resident"
	ResidencyNonResident Residency = "non_resident"
)

// RentalTaxTrack selects one of the three mutually exclusive rental income
// taxation tracks.
type RentalTaxTrack string

const (
	RentalTrackFlat      RentalTaxTrack = "flat_10_percent"
	RentalTrackMarginal  RentalTaxTrack = "marginal_rate"
	RentalTrackExemption RentalTaxTrack = "exemption"
)

// PurchaseTaxTrack selects the purchase-tax bracket table.
type PurchaseTaxTrack string

const (
	PurchaseTrackSingleResidence PurchaseTaxTrack = "single_residence"
	PurchaseTrackInvestor        PurchaseTaxTrack = "investor"
)

// PaymentMilestone is one dated payment of a contractual schedule. The
// schedule is ordered by date and immutable once given to the linkage
// calculator.
type PaymentMilestone struct {
	Date   time.Time       `yaml:"date" json:"date"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// FeasibilityInputs is the flat input record of the feasibility orchestrator.
// Every field is a scalar or an enumerated track.
type FeasibilityInputs struct {
	Price            decimal.Decimal    `yaml:"price" json:"price"`
	NewConstruction  bool               `yaml:"new_construction" json:"newConstruction"`
	ServiceFees      decimal.Decimal    `yaml:"service_fees" json:"serviceFees"`
	PurchaseTaxTrack PurchaseTaxTrack   `yaml:"purchase_tax_track" json:"purchaseTaxTrack"`
	PaymentSchedule  []PaymentMilestone `yaml:"payment_schedule" json:"paymentSchedule"`
	DeliveryDate     time.Time          `yaml:"delivery_date" json:"deliveryDate"`
	AnnualIndexRate  decimal.Decimal    `yaml:"annual_index_rate" json:"annualIndexRate"`

	DownPaymentFraction decimal.Decimal `yaml:"down_payment_fraction" json:"downPaymentFraction"`
	AdditionalDebt      decimal.Decimal `yaml:"additional_debt" json:"additionalDebt"`
	FixedRate           decimal.Decimal `yaml:"fixed_rate" json:"fixedRate"`
	PrimeRate           decimal.Decimal `yaml:"prime_rate" json:"primeRate"`
	TermYears           int             `yaml:"term_years" json:"termYears"`
	DisposableIncome    decimal.Decimal `yaml:"disposable_income" json:"disposableIncome"`
	LoanPurpose         LoanPurpose     `yaml:"loan_purpose" json:"loanPurpose"`
	Residency           Residency       `yaml:"residency" json:"residency"`

	MonthlyRent        decimal.Decimal `yaml:"monthly_rent" json:"monthlyRent"`
	RentalTaxTrack     RentalTaxTrack  `yaml:"rental_tax_track" json:"rentalTaxTrack"`
	MarginalTaxRate    decimal.Decimal `yaml:"marginal_tax_rate" json:"marginalTaxRate"`
	DeductibleExpenses decimal.Decimal `yaml:"deductible_expenses" json:"deductibleExpenses"`

	ManagementFeeRate  decimal.Decimal `yaml:"management_fee_rate" json:"managementFeeRate"`
	AnnualMunicipalTax decimal.Decimal `yaml:"annual_municipal_tax" json:"annualMunicipalTax"`
	VacancyRate        decimal.Decimal `yaml:"vacancy_rate" json:"vacancyRate"`
	RepairReserveRate  decimal.Decimal `yaml:"repair_reserve_rate" json:"repairReserveRate"`

	BaseAppreciationRate decimal.Decimal `yaml:"base_appreciation_rate" json:"baseAppreciationRate"`
	MetroDistanceMeters  decimal.Decimal `yaml:"metro_distance_meters" json:"metroDistanceMeters"`
}

// FinancingResult carries the mortgage constraint evaluation.
type FinancingResult struct {
	MaxAllowedLTV   decimal.Decimal `json:"maxAllowedLTV"`
	LoanAmount      decimal.Decimal `json:"loanAmount"`
	AggregateDebt   decimal.Decimal `json:"aggregateDebt"`
	AggregateLTV    decimal.Decimal `json:"aggregateLTV"`
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment"`
	PaymentToIncome decimal.Decimal `json:"paymentToIncome"`
	Passes          bool            `json:"passes"`
	RiskPremium     bool            `json:"riskPremium"`
	FailureReasons  []string        `json:"failureReasons,omitempty"`
}

// SensitivityCell is one cell of the 3x3 appreciation/index grid.
type SensitivityCell struct {
	AppreciationDelta decimal.Decimal `json:"appreciationDelta"`
	IndexDelta        decimal.Decimal `json:"indexDelta"`
	NetTerminalValue  decimal.Decimal `json:"netTerminalValue"`
}

// FeasibilityOutputs is the fully computed result record; given valid inputs
// every field is populated together.
type FeasibilityOutputs struct {
	PurchaseTax          decimal.Decimal     `json:"purchaseTax"`
	PriceVAT             decimal.Decimal     `json:"priceVAT"`
	ServiceFeeVAT        decimal.Decimal     `json:"serviceFeeVAT"`
	LinkageSurcharge     decimal.Decimal     `json:"linkageSurcharge"`
	TotalAcquisitionCost decimal.Decimal     `json:"totalAcquisitionCost"`
	Financing            FinancingResult     `json:"financing"`
	AnnualRentalTax      decimal.Decimal     `json:"annualRentalTax"`
	AnnualOperatingCost  decimal.Decimal     `json:"annualOperatingCost"`
	AnnualNetCashFlow    decimal.Decimal     `json:"annualNetCashFlow"`
	AppreciationRate     decimal.Decimal     `json:"appreciationRate"`
	TransitUplift        decimal.Decimal     `json:"transitUplift"`
	ProjectedValue10Y    decimal.Decimal     `json:"projectedValue10Y"`
	XIRR10Y              decimal.Decimal     `json:"xirr10Y"`
	Sensitivity          [][]SensitivityCell `json:"sensitivity"`
}
