package rights

import (
	"github.com/shopspring/decimal"
)

// Setback distances in meters and related plan constants.
var (
	FrontSetback = decimal.NewFromInt(5)
	RearSetback  = decimal.NewFromInt(6)
	SideSetback  = decimal.NewFromInt(3)

	PublicDedicationFraction = decimal.NewFromFloat(0.10)
	SetbackDeductionFraction = decimal.NewFromFloat(0.08)

	ParkingSpacesPerUnit      = decimal.NewFromFloat(1.0)
	ParkingSpacesPerLargeUnit = decimal.NewFromFloat(1.5)
	largeUnitThresholdSqm     = decimal.NewFromInt(120)
)

// Apartment-mix proportions across size tiers: 30/40/20 and the remainder to
// penthouses.
var apartmentMixTiers = []struct {
	Tier     string
	Fraction decimal.Decimal
}{
	{"3_room", decimal.NewFromFloat(0.30)},
	{"4_room", decimal.NewFromFloat(0.40)},
	{"5_room", decimal.NewFromFloat(0.20)},
	{"penthouse", decimal.NewFromFloat(0.10)},
}

// TABAInput is the plot geometry for a baseline plan computation.
type TABAInput struct {
	PlotArea       decimal.Decimal
	ExistingFloors int
	AptsPerFloor   int
	IsCornerPlot   bool
}

// Deduction is one row of the deduction breakdown.
type Deduction struct {
	Kind    string          `json:"kind"`
	AreaSqm decimal.Decimal `json:"areaSqm"`
}

// ApartmentMixEntry is the unit count allocated to one size tier.
type ApartmentMixEntry struct {
	Tier     string          `json:"tier"`
	Fraction decimal.Decimal `json:"fraction"`
	Units    int             `json:"units"`
}

// Setbacks are the mandated build lines for the plot.
type Setbacks struct {
	FrontMeters    decimal.Decimal `json:"frontMeters"`
	RearMeters     decimal.Decimal `json:"rearMeters"`
	SideMeters     decimal.Decimal `json:"sideMeters"`
	SecondFrontage bool            `json:"secondFrontage"`
}

// TABAResult is the baseline plan computation consumed by the rights endpoint.
type TABAResult struct {
	GrossBuildableArea decimal.Decimal     `json:"grossBuildableArea"`
	NetBuildableArea   decimal.Decimal     `json:"netBuildableArea"`
	Deductions         []Deduction         `json:"deductions"`
	EstimatedUnits     int                 `json:"estimatedUnits"`
	ApartmentMix       []ApartmentMixEntry `json:"apartmentMix"`
	ParkingSpaces      decimal.Decimal     `json:"parkingSpaces"`
	Setbacks           Setbacks            `json:"setbacks"`
}

// CalculateTABA computes the baseline plan figures for the developer portal:
// gross buildable area, the deduction breakdown, the fixed-proportion
// apartment mix, the parking requirement and the mandated setbacks.
func CalculateTABA(input TABAInput) TABAResult {
	coverage := BaselineCoverageSmallPlot
	if input.PlotArea.GreaterThan(BaselinePlotSizeThreshold) {
		coverage = BaselineCoverageLargePlot
	}
	gross := input.PlotArea.Mul(coverage).Mul(baselineFloorCoefficient(input.ExistingFloors))

	deductions := []Deduction{
		{Kind: "public_dedication", AreaSqm: gross.Mul(PublicDedicationFraction)},
		{Kind: "setback_strip", AreaSqm: gross.Mul(SetbackDeductionFraction)},
	}
	net := gross
	for _, d := range deductions {
		net = net.Sub(d.AreaSqm)
	}

	units := input.ExistingFloors * input.AptsPerFloor
	if units < 1 {
		units = int(net.Div(AverageUnitSizeSqm).IntPart())
		if units < 1 {
			units = 1
		}
	}

	mix := make([]ApartmentMixEntry, 0, len(apartmentMixTiers))
	allocated := 0
	for i, tier := range apartmentMixTiers {
		count := int(decimal.NewFromInt(int64(units)).Mul(tier.Fraction).Round(0).IntPart())
		if i == len(apartmentMixTiers)-1 {
			count = units - allocated // remainder tier absorbs rounding
			if count < 0 {
				count = 0
			}
		}
		allocated += count
		mix = append(mix, ApartmentMixEntry{Tier: tier.Tier, Fraction: tier.Fraction, Units: count})
	}

	avgUnitArea := decimal.Zero
	if units > 0 {
		avgUnitArea = net.Div(decimal.NewFromInt(int64(units)))
	}
	perUnit := ParkingSpacesPerUnit
	if avgUnitArea.GreaterThan(largeUnitThresholdSqm) {
		perUnit = ParkingSpacesPerLargeUnit
	}
	parking := decimal.NewFromInt(int64(units)).Mul(perUnit).Ceil()

	setbacks := Setbacks{
		FrontMeters:    FrontSetback,
		RearMeters:     RearSetback,
		SideMeters:     SideSetback,
		SecondFrontage: input.IsCornerPlot,
	}
	if input.IsCornerPlot {
		// Corner plots trade one side setback for a second front.
		setbacks.SideMeters = FrontSetback
	}

	return TABAResult{
		GrossBuildableArea: gross,
		NetBuildableArea:   net,
		Deductions:         deductions,
		EstimatedUnits:     units,
		ApartmentMix:       mix,
		ParkingSpaces:      parking,
		Setbacks:           setbacks,
	}
}
