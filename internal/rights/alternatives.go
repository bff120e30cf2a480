package rights

import (
	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/shopspring/decimal"
)

func intPtr(v int) *int { return &v }

// blockedAlternative returns an alternative with all areas zeroed and the
// blocking reason attached.
func blockedAlternative(name, reason string) domain.RightsAlternative {
	return domain.RightsAlternative{
		Name:            name,
		ResidentialArea: decimal.Zero,
		PublicBuiltArea: decimal.Zero,
		ServiceArea:     decimal.Zero,
		TotalArea:       decimal.Zero,
		Blocked:         true,
		BlockReason:     reason,
	}
}

// baselineAlternative computes buildable area under the baseline zoning plan:
// plot area times a coverage fraction times a coefficient keyed by existing
// floor count, plus rooftop, shared-space and area-gated public-use bonuses.
func baselineAlternative(input ResolveInput, gates domain.OverrideContext) domain.RightsAlternative {
	const name = "baseline"
	if !gates.CanBuildBaseline {
		return blockedAlternative(name, "baseline regime blocked by statutory freeze or preservation order")
	}

	coverage := BaselineCoverageSmallPlot
	if input.PlotArea.GreaterThan(BaselinePlotSizeThreshold) {
		coverage = BaselineCoverageLargePlot
	}

	base := input.PlotArea.Mul(coverage).Mul(baselineFloorCoefficient(input.ExistingFloors))
	rooftop := base.Mul(BaselineRooftopBonus)
	shared := base.Mul(BaselineSharedSpaceBonus)

	public := decimal.Zero
	if input.PlotArea.GreaterThan(BaselinePublicUseMinPlot) {
		public = base.Mul(BaselinePublicUseBonus)
	}

	residential := base.Add(rooftop)
	total := residential.Add(shared).Add(public)

	units := int(input.PlotArea.Div(dunamSqm).Mul(BaselineUnitsPerDunam).IntPart())

	return domain.RightsAlternative{
		Name:            name,
		ResidentialArea: residential,
		PublicBuiltArea: public,
		ServiceArea:     shared,
		TotalArea:       total,
		EstimatedUnits:  intPtr(units),
		Notes:           []string{"baseline plan rights incl. rooftop and shared-space bonuses"},
	}
}

// legacyExtensionAlternative computes the seismic-retrofit bonus regime:
// a fixed bonus fraction of the existing built area plus a service fraction.
func legacyExtensionAlternative(input ResolveInput, gates domain.OverrideContext) domain.RightsAlternative {
	const name = "legacy_extension"
	if !gates.CanBuildLegacyExtension {
		return blockedAlternative(name, "legacy-extension regime blocked for this parcel")
	}

	additional := input.ExistingBuiltArea.Mul(LegacyBonusFraction)
	service := input.ExistingBuiltArea.Mul(LegacyServiceFraction)
	total := additional.Add(service)

	units := int(additional.Div(AverageUnitSizeSqm).Round(0).IntPart())
	if units < 1 {
		units = 1
	}

	return domain.RightsAlternative{
		Name:            name,
		ResidentialArea: additional,
		PublicBuiltArea: decimal.Zero,
		ServiceArea:     service,
		TotalArea:       total,
		EstimatedUnits:  intPtr(units),
		Notes:           []string{"retrofit bonus computed from existing built area"},
	}
}

// multiplierAlternative computes the demolish-and-rebuild multiplier regime:
// existing built area times a per-city multiplier, split into a public share
// and a residential remainder, with a project-type service carve-out under the
// principal+service model.
func multiplierAlternative(input ResolveInput, regime domain.CityRegimeConfig, zone domain.MetroZone, areaModel domain.AreaModel, gates domain.OverrideContext) domain.RightsAlternative {
	const name = "multiplier_alternative"
	switch {
	case !gates.CanAddFloors && !gates.CanAddUnits:
		return blockedAlternative(name, "multiplier regime blocked: neither floors nor units may be added")
	case !gates.CanBuildBaseline:
		// A full freeze or strict heritage order blocks every regime.
		return blockedAlternative(name, "multiplier regime blocked by statutory freeze or preservation order")
	case regime.RegimeTrack == domain.TrackNone:
		return blockedAlternative(name, "city does not participate in a renewal multiplier track")
	}

	multiplier := regime.PeripheryMultiplier
	if zone == domain.MetroZoneCore || zone == domain.MetroZoneRing1 {
		multiplier = regime.CoreMultiplier
	}

	total := input.ExistingBuiltArea.Mul(multiplier)
	public := total.Mul(regime.PublicShareFraction)
	residential := total.Sub(public)

	service := decimal.Zero
	if areaModel == domain.AreaModelPrincipalService {
		serviceFraction := MultiplierServiceRetrofit
		if input.ProjectType == domain.ProjectDemolishRebuild {
			serviceFraction = MultiplierServiceDemolish
		}
		service = residential.Mul(serviceFraction)
		residential = residential.Sub(service)
	}

	units := int(residential.Div(AverageUnitSizeSqm).Round(0).IntPart())
	if units < 1 {
		units = 1
	}

	return domain.RightsAlternative{
		Name:            name,
		ResidentialArea: residential,
		PublicBuiltArea: public,
		ServiceArea:     service,
		TotalArea:       total,
		EstimatedUnits:  intPtr(units),
		Notes:           []string{"per-city multiplier applied to existing built area"},
	}
}
