package domain

import (
	"github.com/shopspring/decimal"
)

// MetroZone classifies a parcel by distance to the nearest metro station.
type MetroZone string

const (
	MetroZoneCore    MetroZone = "core"   // <= 100 m
	MetroZoneRing1   MetroZone = "ring_1" // <= 300 m
	MetroZoneRing2   MetroZone = "ring_2" // <= 800 m
	MetroZoneOutside MetroZone = "outside"
)

// InMetroZone reports whether the parcel falls inside any metro ring.
func (z MetroZone) InMetroZone() bool {
	return z != MetroZoneOutside && z != ""
}

// AreaModel selects how the multiplier alternative splits permitted area.
type AreaModel string

const (
	AreaModelPrincipalService AreaModel = "principal_service"
	AreaModelTotalArea        AreaModel = "total_area"
)

// ProjectType is the statutory renewal track requested for the parcel.
type ProjectType string

const (
	ProjectDemolishRebuild ProjectType = "demolish_rebuild"
	ProjectRetrofit        ProjectType = "retrofit"
)

// RegimeTrack is the urban-renewal track a city participates in.
type RegimeTrack string

const (
	TrackNone                  RegimeTrack = "none"
	TrackLegacyExtension       RegimeTrack = "legacy_extension"
	TrackMultiplierAlternative RegimeTrack = "multiplier_alternative"
)

// Severity tiers for red flags.
type Severity string

const (
	SeverityHardBlock  Severity = "hard_block"
	SeverityStrongRisk Severity = "strong_risk"
	SeverityAttention  Severity = "attention"
)

// RedFlag is a structured warning describing a legal constraint or risk
// affecting a parcel. The collected list is append-only; insertion order is
// kept stable for reproducible output.
type RedFlag struct {
	Code        string   `json:"code"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	LegalSource string   `json:"legalSource"`
}

// OverrideContext holds the capability gates derived by folding all applicable
// override inputs. Gates are monotonically restrictive: once a rule clears a
// gate, no later rule may set it back.
type OverrideContext struct {
	CanBuildLegacyExtension bool `json:"canBuildLegacyExtension"`
	CanBuildBaseline        bool `json:"canBuildBaseline"`
	CanAddFloors            bool `json:"canAddFloors"`
	CanAddUnits             bool `json:"canAddUnits"`
}

// OverrideFlags are the boolean legal-override inputs supplied by the caller.
type OverrideFlags struct {
	FullStatutoryFreeze bool `json:"fullStatutoryFreeze" yaml:"full_statutory_freeze"`
	NarrowFreeze        bool `json:"narrowFreeze" yaml:"narrow_freeze"`
	DensityCap          bool `json:"densityCap" yaml:"density_cap"`
	HeightCone          bool `json:"heightCone" yaml:"height_cone"`
	StrictHeritage      bool `json:"strictHeritage" yaml:"strict_heritage"`
	ConflictingPlan     bool `json:"conflictingPlan" yaml:"conflicting_plan"`
}

// RightsAlternative is one legally distinct construction-entitlement scenario
// for a parcel. Produced fresh per request and never mutated after creation.
type RightsAlternative struct {
	Name            string          `json:"name"`
	ResidentialArea decimal.Decimal `json:"residentialArea"`
	PublicBuiltArea decimal.Decimal `json:"publicBuiltArea"`
	ServiceArea     decimal.Decimal `json:"serviceArea"`
	TotalArea       decimal.Decimal `json:"totalArea"`
	EstimatedUnits  *int            `json:"estimatedUnits"`
	Notes           []string        `json:"notes,omitempty"`
	Blocked         bool            `json:"blocked"`
	BlockReason     string          `json:"blockReason,omitempty"`
}

// CityRegimeConfig holds per-city regime constants. Immutable reference data
// keyed by city name with an explicit default fallback.
type CityRegimeConfig struct {
	RegimeTrack         RegimeTrack     `yaml:"regime_track" json:"regimeTrack"`
	CoreMultiplier      decimal.Decimal `yaml:"core_multiplier" json:"coreMultiplier"`
	PeripheryMultiplier decimal.Decimal `yaml:"periphery_multiplier" json:"peripheryMultiplier"`
	PublicShareFraction decimal.Decimal `yaml:"public_share_fraction" json:"publicShareFraction"`
}

// RightsResult is the full output of the statutory rights resolver.
type RightsResult struct {
	MetroZone    MetroZone           `json:"metroZone"`
	AreaModel    AreaModel           `json:"areaModel"`
	Overrides    OverrideContext     `json:"overrideContext"`
	Alternatives []RightsAlternative `json:"alternatives"`
	RedFlags     []RedFlag           `json:"redFlags"`
}
