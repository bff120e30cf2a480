package output

import (
	"encoding/json"
)

// JSONFormatter renders the report as indented JSON for machine consumption.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
