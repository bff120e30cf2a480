package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	blockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	riskStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ConsoleFormatter renders a styled terminal report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	title := "PROPERTY DUE DILIGENCE REPORT"
	if report.ScenarioName != "" {
		title = fmt.Sprintf("%s: %s", title, report.ScenarioName)
	}
	fmt.Fprintln(&buf, titleStyle.Render(title))
	fmt.Fprintln(&buf, strings.Repeat("=", 70))
	fmt.Fprintln(&buf)

	if report.Rights != nil {
		c.writeRights(&buf, report.Rights)
	}
	if report.Feasibility != nil {
		c.writeFeasibility(&buf, report.Feasibility)
	}

	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeRights(buf *bytes.Buffer, rights *domain.RightsResult) {
	fmt.Fprintln(buf, sectionStyle.Render("STATUTORY CONSTRUCTION RIGHTS"))
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "Metro zone:  %s\n", rights.MetroZone)
	fmt.Fprintf(buf, "Area model:  %s\n", rights.AreaModel)
	fmt.Fprintln(buf)

	for _, alt := range rights.Alternatives {
		if alt.Blocked {
			fmt.Fprintf(buf, "%s  %s\n", blockedStyle.Render("[BLOCKED]"), alt.Name)
			fmt.Fprintf(buf, "  Reason: %s\n", alt.BlockReason)
			fmt.Fprintln(buf)
			continue
		}
		fmt.Fprintf(buf, "%s\n", alt.Name)
		fmt.Fprintf(buf, "  Residential area: %s\n", FormatArea(alt.ResidentialArea))
		if alt.PublicBuiltArea.GreaterThan(decimal.Zero) {
			fmt.Fprintf(buf, "  Public built area: %s\n", FormatArea(alt.PublicBuiltArea))
		}
		if alt.ServiceArea.GreaterThan(decimal.Zero) {
			fmt.Fprintf(buf, "  Service area:     %s\n", FormatArea(alt.ServiceArea))
		}
		fmt.Fprintf(buf, "  Total area:       %s\n", FormatArea(alt.TotalArea))
		if alt.EstimatedUnits != nil {
			fmt.Fprintf(buf, "  Estimated units:  %d\n", *alt.EstimatedUnits)
		}
		for _, note := range alt.Notes {
			fmt.Fprintf(buf, "  %s\n", noteStyle.Render("· "+note))
		}
		fmt.Fprintln(buf)
	}

	if len(rights.RedFlags) > 0 {
		fmt.Fprintln(buf, sectionStyle.Render("RED FLAGS"))
		fmt.Fprintln(buf, strings.Repeat("-", 40))
		for _, flag := range rights.RedFlags {
			style := noteStyle
			switch flag.Severity {
			case domain.SeverityHardBlock:
				style = blockedStyle
			case domain.SeverityStrongRisk:
				style = riskStyle
			}
			fmt.Fprintf(buf, "%s %s\n", style.Render(fmt.Sprintf("[%s]", flag.Severity)), flag.Message)
			fmt.Fprintf(buf, "  Source: %s\n", flag.LegalSource)
		}
		fmt.Fprintln(buf)
	}
}

func (c ConsoleFormatter) writeFeasibility(buf *bytes.Buffer, result *domain.ComputeResult[domain.FeasibilityOutputs]) {
	fmt.Fprintln(buf, sectionStyle.Render("FINANCIAL FEASIBILITY"))
	fmt.Fprintln(buf, strings.Repeat("-", 40))

	if result.Status != domain.StatusOK && result.Status != domain.StatusEstimateOnly {
		detail := result.Reason
		if detail == "" {
			detail = result.Message
		}
		fmt.Fprintf(buf, "%s\n", blockedStyle.Render("Could not compute: "+detail))
		fmt.Fprintln(buf)
		return
	}
	out := result.Data

	fmt.Fprintln(buf, "ACQUISITION:")
	fmt.Fprintf(buf, "  Purchase tax:       %s\n", FormatCurrency(out.PurchaseTax))
	if out.PriceVAT.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "  Price VAT:          %s\n", FormatCurrency(out.PriceVAT))
	}
	fmt.Fprintf(buf, "  Service fee VAT:    %s\n", FormatCurrency(out.ServiceFeeVAT))
	fmt.Fprintf(buf, "  Linkage surcharge:  %s\n", FormatCurrency(out.LinkageSurcharge))
	fmt.Fprintf(buf, "  TOTAL ACQUISITION:  %s\n", FormatCurrency(out.TotalAcquisitionCost))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "FINANCING:")
	fmt.Fprintf(buf, "  Loan amount:        %s\n", FormatCurrency(out.Financing.LoanAmount))
	fmt.Fprintf(buf, "  Monthly payment:    %s\n", FormatCurrency(out.Financing.MonthlyPayment))
	fmt.Fprintf(buf, "  Payment-to-income:  %s\n", FormatPercentage(out.Financing.PaymentToIncome.Mul(decimal.NewFromInt(100))))
	if out.Financing.Passes {
		fmt.Fprintln(buf, "  Constraints:        pass")
	} else {
		fmt.Fprintf(buf, "  Constraints:        %s\n", blockedStyle.Render("FAIL"))
		for _, reason := range out.Financing.FailureReasons {
			fmt.Fprintf(buf, "    - %s\n", reason)
		}
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "ANNUAL CASH FLOW:")
	fmt.Fprintf(buf, "  Rental tax:         %s\n", FormatCurrency(out.AnnualRentalTax))
	fmt.Fprintf(buf, "  Operating costs:    %s\n", FormatCurrency(out.AnnualOperatingCost))
	fmt.Fprintf(buf, "  NET CASH FLOW:      %s\n", FormatCurrency(out.AnnualNetCashFlow))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "10-YEAR PROJECTION:")
	fmt.Fprintf(buf, "  Appreciation rate:  %s\n", FormatPercentage(out.AppreciationRate.Mul(decimal.NewFromInt(100))))
	fmt.Fprintf(buf, "  Projected value:    %s\n", FormatCurrency(out.ProjectedValue10Y))
	fmt.Fprintf(buf, "  XIRR:               %s\n", FormatPercentage(out.XIRR10Y))
	fmt.Fprintln(buf)

	if len(out.Sensitivity) > 0 {
		fmt.Fprintln(buf, "SENSITIVITY (net terminal value, appreciation x index):")
		for _, row := range out.Sensitivity {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				cells = append(cells, fmt.Sprintf("%16s", FormatCurrency(cell.NetTerminalValue)))
			}
			fmt.Fprintf(buf, "  %s\n", strings.Join(cells, " "))
		}
		fmt.Fprintln(buf)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(buf, "%s\n", riskStyle.Render("! "+warning))
	}
}
