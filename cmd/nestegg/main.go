package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planwise/nestegg/internal/calculation"
	"github.com/planwise/nestegg/internal/config"
	"github.com/planwise/nestegg/internal/output"
)

var (
	inputFile  string
	formatName string
	outputFile string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "nestegg",
	Short: "Deterministic year-by-year retirement projections",
	Long: `nestegg projects a household's nest egg and net worth year by year from a
plan file, runs every scenario against the same frozen window, and reports
the series side by side.`,
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run a plan's base case and scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to load plan: %w", err)
		}

		engine := calculation.NewEngine()
		if debug {
			engine.SetLogger(stderrLogger{})
		}

		comparison, err := engine.RunPlan(cmd.Context(), plan)
		if err != nil {
			return fmt.Errorf("projection failed: %w", err)
		}
		return output.SaveReport(comparison, formatName, outputFile)
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available report formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(strings.Join(output.AvailableFormatterNames(), "\n"))
	},
}

type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...interface{}) {
	log.Printf("DEBUG "+format, args...)
}

func (stderrLogger) Infof(format string, args ...interface{}) {
	log.Printf("INFO "+format, args...)
}

func (stderrLogger) Warnf(format string, args ...interface{}) {
	log.Printf("WARN "+format, args...)
}

func (stderrLogger) Errorf(format string, args ...interface{}) {
	log.Printf("ERROR "+format, args...)
}

func init() {
	projectCmd.Flags().StringVarP(&inputFile, "input", "i", "", "plan YAML file (required)")
	projectCmd.Flags().StringVarP(&formatName, "format", "f", "console", "report format (console, csv, json)")
	projectCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write to file instead of stdout")
	projectCmd.Flags().BoolVar(&debug, "debug", false, "log engine debug output to stderr")
	_ = projectCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(formatsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
