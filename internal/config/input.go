package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/mivnecheck/mivnecheck/internal/rights"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Scenario is one named analysis loaded from a scenario file. A scenario may
// carry a feasibility section, a rights section, or both.
type Scenario struct {
	Name        string                    `yaml:"name"`
	Feasibility *domain.FeasibilityInputs `yaml:"feasibility,omitempty"`
	Rights      *RightsScenario           `yaml:"rights,omitempty"`
}

// RightsScenario is the YAML shape of a statutory rights query.
type RightsScenario struct {
	PlotArea            decimal.Decimal      `yaml:"plot_area"`
	ExistingBuiltArea   decimal.Decimal      `yaml:"existing_built_area"`
	ExistingFloors      int                  `yaml:"existing_floors"`
	City                string               `yaml:"city"`
	SubmissionDate      time.Time            `yaml:"submission_date"`
	ProjectType         domain.ProjectType   `yaml:"project_type"`
	MetroDistanceMeters *decimal.Decimal     `yaml:"metro_distance_meters,omitempty"`
	Overrides           domain.OverrideFlags `yaml:"overrides"`
}

// ToResolveInput converts the YAML shape to the resolver's input record.
func (rs *RightsScenario) ToResolveInput() rights.ResolveInput {
	return rights.ResolveInput{
		PlotArea:            rs.PlotArea,
		ExistingBuiltArea:   rs.ExistingBuiltArea,
		ExistingFloors:      rs.ExistingFloors,
		City:                rs.City,
		SubmissionDate:      rs.SubmissionDate,
		ProjectType:         rs.ProjectType,
		MetroDistanceMeters: rs.MetroDistanceMeters,
		Overrides:           rs.Overrides,
	}
}

// InputParser handles parsing of scenario files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &scenario, nil
}

// ValidateScenario validates the loaded scenario.
func (ip *InputParser) ValidateScenario(scenario *Scenario) error {
	if scenario.Feasibility == nil && scenario.Rights == nil {
		return fmt.Errorf("scenario must contain a feasibility or rights section")
	}
	if scenario.Feasibility != nil {
		if err := ip.validateFeasibility(scenario.Feasibility); err != nil {
			return fmt.Errorf("feasibility validation failed: %w", err)
		}
	}
	if scenario.Rights != nil {
		if err := ip.validateRights(scenario.Rights); err != nil {
			return fmt.Errorf("rights validation failed: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateFeasibility(f *domain.FeasibilityInputs) error {
	if f.Price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("price must be positive")
	}
	if f.DownPaymentFraction.LessThanOrEqual(decimal.Zero) || f.DownPaymentFraction.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("down payment fraction must be in (0, 1]")
	}
	if f.TermYears <= 0 {
		return fmt.Errorf("loan term must be positive")
	}
	switch f.PurchaseTaxTrack {
	case domain.PurchaseTrackSingleResidence, domain.PurchaseTrackInvestor:
	default:
		return fmt.Errorf("unknown purchase tax track %q", f.PurchaseTaxTrack)
	}
	switch f.LoanPurpose {
	case domain.LoanSoleResidence, domain.LoanReplacementHome, domain.LoanInvestment:
	default:
		return fmt.Errorf("unknown loan purpose %q", f.LoanPurpose)
	}
	switch f.Residency {
	case domain.ResidencyResident, domain.ResidencyNonResident:
	default:
		return fmt.Errorf("unknown residency %q", f.Residency)
	}
	if f.MonthlyRent.GreaterThan(decimal.Zero) {
		switch f.RentalTaxTrack {
		case domain.RentalTrackFlat, domain.RentalTrackMarginal, domain.RentalTrackExemption:
		default:
			return fmt.Errorf("unknown rental tax track %q", f.RentalTaxTrack)
		}
	}
	for i, milestone := range f.PaymentSchedule {
		if milestone.Date.IsZero() {
			return fmt.Errorf("payment milestone %d has no date", i)
		}
		if milestone.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("payment milestone %d amount must be positive", i)
		}
	}
	return nil
}

func (ip *InputParser) validateRights(r *RightsScenario) error {
	if r.PlotArea.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("plot area must be positive")
	}
	if r.ExistingBuiltArea.LessThan(decimal.Zero) {
		return fmt.Errorf("existing built area cannot be negative")
	}
	if r.ExistingFloors < 0 {
		return fmt.Errorf("existing floors cannot be negative")
	}
	if r.City == "" {
		return fmt.Errorf("city is required")
	}
	if r.SubmissionDate.IsZero() {
		return fmt.Errorf("submission date is required")
	}
	switch r.ProjectType {
	case domain.ProjectDemolishRebuild, domain.ProjectRetrofit:
	default:
		return fmt.Errorf("unknown project type %q", r.ProjectType)
	}
	return nil
}
