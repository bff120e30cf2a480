package output

import (
	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/shopspring/decimal"
)

// Report bundles everything a formatter may render for one scenario. Either
// section may be nil; formatters skip absent sections.
type Report struct {
	ScenarioName string                                           `json:"scenarioName,omitempty"`
	Feasibility  *domain.ComputeResult[domain.FeasibilityOutputs] `json:"feasibility,omitempty"`
	Rights       *domain.RightsResult                             `json:"rights,omitempty"`
}

// Formatter renders a report into a byte slice in one output format.
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

var registeredFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
}

// GetFormatterByName returns the formatter registered under the given name, or
// nil when the name is unknown.
func GetFormatterByName(name string) Formatter {
	for _, f := range registeredFormatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatCurrency formats a decimal as shekel currency.
func FormatCurrency(amount decimal.Decimal) string {
	return "₪" + amount.StringFixed(0)
}

// FormatPercentage formats a decimal as a percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatArea formats a decimal as square meters.
func FormatArea(amount decimal.Decimal) string {
	return amount.StringFixed(1) + " sqm"
}
