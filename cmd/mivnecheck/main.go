package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/mivnecheck/mivnecheck/internal/config"
	"github.com/mivnecheck/mivnecheck/internal/feasibility"
	"github.com/mivnecheck/mivnecheck/internal/output"
	"github.com/mivnecheck/mivnecheck/internal/rights"
	"github.com/mivnecheck/mivnecheck/internal/server"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "mivnecheck %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "mivnecheck",
	Short: "Property due diligence CLI",
	Long:  "Statutory construction rights and financial feasibility analysis for residential real estate",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [scenario-file]",
	Short: "Run the full rights and feasibility analysis for a scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario := loadScenario(args[0])

		report := &output.Report{ScenarioName: scenario.Name}
		if scenario.Rights != nil {
			result := rights.Resolve(scenario.Rights.ToResolveInput())
			report.Rights = &result
		}
		if scenario.Feasibility != nil {
			result := feasibility.NewEngine().Compute(*scenario.Feasibility)
			report.Feasibility = &result
		}

		printReport(cmd, report)
	},
}

var rightsCmd = &cobra.Command{
	Use:   "rights [scenario-file]",
	Short: "Resolve the statutory construction rights for a parcel",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario := loadScenario(args[0])
		if scenario.Rights == nil {
			log.Fatal("scenario file has no rights section")
		}

		result := rights.Resolve(scenario.Rights.ToResolveInput())
		printReport(cmd, &output.Report{ScenarioName: scenario.Name, Rights: &result})
	},
}

var feasibilityCmd = &cobra.Command{
	Use:   "feasibility [scenario-file]",
	Short: "Run the financial feasibility projection for a purchase",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario := loadScenario(args[0])
		if scenario.Feasibility == nil {
			log.Fatal("scenario file has no feasibility section")
		}

		result := feasibility.NewEngine().Compute(*scenario.Feasibility)
		printReport(cmd, &output.Report{ScenarioName: scenario.Name, Feasibility: &result})
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [scenario-file]",
	Short: "Validate a scenario file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Scenario file %s is valid\n", args[0])
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the rights and feasibility HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		fmt.Printf("Listening on :%d\n", port)
		if err := server.New().Run(port); err != nil {
			log.Fatal(err)
		}
	},
}

func loadScenario(path string) *config.Scenario {
	parser := config.NewInputParser()
	scenario, err := parser.LoadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return scenario
}

func printReport(cmd *cobra.Command, report *output.Report) {
	format, _ := cmd.Flags().GetString("format")
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		log.Fatalf("Unknown output format: %s (valid: console, json)", format)
	}
	data, err := formatter.Format(report)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
}

func init() {
	analyzeCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	rightsCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	feasibilityCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(rightsCmd)
	rootCmd.AddCommand(feasibilityCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
