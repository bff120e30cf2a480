package rights

import (
	"time"

	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/shopspring/decimal"
)

// Metro ring thresholds in meters, by ascending comparison.
var (
	MetroCoreRadius  = decimal.NewFromInt(100)
	MetroRing1Radius = decimal.NewFromInt(300)
	MetroRing2Radius = decimal.NewFromInt(800)
)

// TotalAreaModelCutoff is the date from which demolish-and-rebuild requests
// under the multiplier alternative switch to the total-area computation model.
var TotalAreaModelCutoff = time.Date(2022, time.October, 1, 0, 0, 0, 0, time.UTC)

// Baseline plan constants.
var (
	BaselineCoverageSmallPlot = decimal.NewFromFloat(0.60)
	BaselineCoverageLargePlot = decimal.NewFromFloat(0.50)
	BaselinePlotSizeThreshold = decimal.NewFromInt(750)
	BaselineRooftopBonus      = decimal.NewFromFloat(0.12)
	BaselineSharedSpaceBonus  = decimal.NewFromFloat(0.06)
	BaselinePublicUseBonus    = decimal.NewFromFloat(0.05)
	BaselinePublicUseMinPlot  = decimal.NewFromInt(1000)
	BaselineUnitsPerDunam     = decimal.NewFromInt(12)
	dunamSqm                  = decimal.NewFromInt(1000)
)

// baselineFloorCoefficients maps existing floor count to the buildable-area
// coefficient; six floors and above use the flat top value.
var baselineFloorCoefficients = map[int]decimal.Decimal{
	1: decimal.NewFromFloat(1.0),
	2: decimal.NewFromFloat(1.8),
	3: decimal.NewFromFloat(2.4),
	4: decimal.NewFromFloat(2.8),
	5: decimal.NewFromFloat(3.0),
}

var baselineFloorCoefficientTop = decimal.NewFromFloat(3.2)

// Legacy-extension constants.
var (
	LegacyBonusFraction   = decimal.NewFromFloat(0.35)
	LegacyServiceFraction = decimal.NewFromFloat(0.12)
	AverageUnitSizeSqm    = decimal.NewFromInt(100)
)

// Multiplier-alternative service carve-outs, by project type, applied only
// under the principal+service area model.
var (
	MultiplierServiceDemolish = decimal.NewFromFloat(0.15)
	MultiplierServiceRetrofit = decimal.NewFromFloat(0.12)
)

// cityRegimes is the per-city regime table. Immutable reference data; lookups
// fall back to defaultRegime for cities not listed.
var cityRegimes = map[string]domain.CityRegimeConfig{
	"Tel Aviv-Yafo": {
		RegimeTrack:         domain.TrackMultiplierAlternative,
		CoreMultiplier:      decimal.NewFromFloat(3.5),
		PeripheryMultiplier: decimal.NewFromFloat(3.0),
		PublicShareFraction: decimal.NewFromFloat(0.30),
	},
	"Jerusalem": {
		RegimeTrack:         domain.TrackMultiplierAlternative,
		CoreMultiplier:      decimal.NewFromFloat(3.3),
		PeripheryMultiplier: decimal.NewFromFloat(2.8),
		PublicShareFraction: decimal.NewFromFloat(0.30),
	},
	"Haifa": {
		RegimeTrack:         domain.TrackMultiplierAlternative,
		CoreMultiplier:      decimal.NewFromFloat(3.0),
		PeripheryMultiplier: decimal.NewFromFloat(2.7),
		PublicShareFraction: decimal.NewFromFloat(0.25),
	},
	"Beer Sheva": {
		RegimeTrack:         domain.TrackLegacyExtension,
		CoreMultiplier:      decimal.NewFromFloat(2.5),
		PeripheryMultiplier: decimal.NewFromFloat(2.5),
		PublicShareFraction: decimal.NewFromFloat(0.20),
	},
}

var defaultRegime = domain.CityRegimeConfig{
	RegimeTrack:         domain.TrackLegacyExtension,
	CoreMultiplier:      decimal.NewFromFloat(2.0),
	PeripheryMultiplier: decimal.NewFromFloat(2.0),
	PublicShareFraction: decimal.NewFromFloat(0.20),
}

// LookupCityRegime returns the regime constants for a city, falling back to
// the default regime for unlisted cities.
func LookupCityRegime(city string) domain.CityRegimeConfig {
	if regime, ok := cityRegimes[city]; ok {
		return regime
	}
	return defaultRegime
}

// baselineFloorCoefficient returns the coefficient for an existing floor
// count, flat above five floors.
func baselineFloorCoefficient(floors int) decimal.Decimal {
	if floors < 1 {
		floors = 1
	}
	if coefficient, ok := baselineFloorCoefficients[floors]; ok {
		return coefficient
	}
	return baselineFloorCoefficientTop
}
