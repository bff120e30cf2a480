package rights

import (
	"time"

	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/shopspring/decimal"
)

// ResolveInput carries the parcel facts and legal-override flags for a
// statutory rights resolution.
type ResolveInput struct {
	PlotArea            decimal.Decimal
	ExistingBuiltArea   decimal.Decimal
	ExistingFloors      int
	City                string
	SubmissionDate      time.Time
	ProjectType         domain.ProjectType
	MetroDistanceMeters *decimal.Decimal // nil when no station is mapped
	Overrides           domain.OverrideFlags
}

// Resolve determines which construction-rights regimes legally apply to a
// parcel and computes the competing rights alternatives under each. Blocked
// regimes are returned alongside viable ones so the caller always receives a
// complete, comparable set.
func Resolve(input ResolveInput) domain.RightsResult {
	zone := ClassifyMetroZone(input.MetroDistanceMeters)
	areaModel := selectAreaModel(input.SubmissionDate, input.ProjectType)
	regime := LookupCityRegime(input.City)

	gates, flags := foldOverrides(zone, input.Overrides)

	alternatives := []domain.RightsAlternative{
		baselineAlternative(input, gates),
		legacyExtensionAlternative(input, gates),
		multiplierAlternative(input, regime, zone, areaModel, gates),
	}

	return domain.RightsResult{
		MetroZone:    zone,
		AreaModel:    areaModel,
		Overrides:    gates,
		Alternatives: alternatives,
		RedFlags:     flags,
	}
}

// ClassifyMetroZone buckets a metro distance by ascending threshold. A nil or
// negative distance classifies as outside.
func ClassifyMetroZone(distance *decimal.Decimal) domain.MetroZone {
	if distance == nil || distance.LessThan(decimal.Zero) {
		return domain.MetroZoneOutside
	}
	switch {
	case distance.LessThanOrEqual(MetroCoreRadius):
		return domain.MetroZoneCore
	case distance.LessThanOrEqual(MetroRing1Radius):
		return domain.MetroZoneRing1
	case distance.LessThanOrEqual(MetroRing2Radius):
		return domain.MetroZoneRing2
	default:
		return domain.MetroZoneOutside
	}
}

// selectAreaModel switches the multiplier alternative to the total-area model
// once the submission is on/after the cutoff and the project is a
// demolish-and-rebuild.
func selectAreaModel(submission time.Time, projectType domain.ProjectType) domain.AreaModel {
	if projectType == domain.ProjectDemolishRebuild && !submission.Before(TotalAreaModelCutoff) {
		return domain.AreaModelTotalArea
	}
	return domain.AreaModelPrincipalService
}

// foldOverrides folds the override inputs into capability gates. Each rule may
// only restrict a gate, never re-enable it, so rule order cannot relax an
// earlier block. Every triggered rule appends exactly one red flag.
func foldOverrides(zone domain.MetroZone, overrides domain.OverrideFlags) (domain.OverrideContext, []domain.RedFlag) {
	gates := domain.OverrideContext{
		CanBuildLegacyExtension: true,
		CanBuildBaseline:        true,
		CanAddFloors:            true,
		CanAddUnits:             true,
	}
	flags := make([]domain.RedFlag, 0, 4)

	if zone == domain.MetroZoneCore {
		gates.CanBuildLegacyExtension = false
		flags = append(flags, domain.RedFlag{
			Code:        "RF-METRO-CORE",
			Severity:    domain.SeverityHardBlock,
			Message:     "parcel lies within the metro core radius; the legacy-extension regime is suspended around station boxes",
			LegalSource: "NOP metro overlay, core ring provisions",
		})
	}
	if overrides.FullStatutoryFreeze {
		gates.CanBuildBaseline = false
		gates.CanBuildLegacyExtension = false
		gates.CanAddFloors = false
		gates.CanAddUnits = false
		flags = append(flags, domain.RedFlag{
			Code:        "RF-FULL-FREEZE",
			Severity:    domain.SeverityHardBlock,
			Message:     "a full statutory freeze is registered on the parcel; all construction regimes are blocked until lifted",
			LegalSource: "Planning and Building Law, s.78 freeze order",
		})
	}
	if overrides.NarrowFreeze {
		gates.CanBuildLegacyExtension = false
		flags = append(flags, domain.RedFlag{
			Code:        "RF-NARROW-FREEZE",
			Severity:    domain.SeverityStrongRisk,
			Message:     "a narrow freeze blocks the legacy-extension regime on this parcel",
			LegalSource: "Planning and Building Law, s.77-78 limited order",
		})
	}
	if overrides.DensityCap {
		gates.CanAddUnits = false
		flags = append(flags, domain.RedFlag{
			Code:        "RF-DENSITY-CAP",
			Severity:    domain.SeverityStrongRisk,
			Message:     "a district density cap blocks additional housing units",
			LegalSource: "district outline plan density table",
		})
	}
	if overrides.HeightCone {
		gates.CanAddFloors = false
		flags = append(flags, domain.RedFlag{
			Code:        "RF-HEIGHT-CONE",
			Severity:    domain.SeverityStrongRisk,
			Message:     "an aviation height-cone restriction blocks additional floors",
			LegalSource: "aviation obstacle limitation surfaces chart",
		})
	}
	if overrides.StrictHeritage {
		gates.CanBuildBaseline = false
		gates.CanBuildLegacyExtension = false
		gates.CanAddFloors = false
		gates.CanAddUnits = false
		flags = append(flags, domain.RedFlag{
			Code:        "RF-HERITAGE",
			Severity:    domain.SeverityHardBlock,
			Message:     "strict heritage preservation applies; the parcel is treated as fully frozen",
			LegalSource: "municipal preservation appendix, strict tier",
		})
	}
	if overrides.ConflictingPlan {
		// Blocks only the legacy-extension regime; the multiplier alternative
		// is left untouched. Flagged for legal review rather than unified.
		gates.CanBuildLegacyExtension = false
		flags = append(flags, domain.RedFlag{
			Code:        "RF-CONFLICT-PLAN",
			Severity:    domain.SeverityStrongRisk,
			Message:     "a conflicting local plan blocks the legacy-extension regime; multiplier-track applicability requires legal review",
			LegalSource: "local plan conflict registry",
		})
	}
	if zone.InMetroZone() {
		flags = append(flags, domain.RedFlag{
			Code:        "RF-METRO-LEVY",
			Severity:    domain.SeverityAttention,
			Message:     "parcel is within a metro ring; the betterment levy may be charged at the elevated 60% rate",
			LegalSource: "metro betterment levy amendment",
		})
	}

	return gates, flags
}
