package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/student-portfolio/internal/ingestion"
	"github.com/jonathan/student-portfolio/internal/observability"
	"github.com/jonathan/student-portfolio/internal/parsing"
	"github.com/jonathan/student-portfolio/internal/profile"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a portfolio CSV into profile records",
	Long: `Parse a filled-in portfolio CSV into profile record JSON.

Every non-blank row becomes a record. Rows missing a name or school are reported
but still included in the output.`,
	RunE: runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to CSV file")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	return parseFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), parseInputFile, parseOutputFile)
}

// parseFile writes the records JSON to outPath (or stdout) and reports incomplete rows on stderr
func parseFile(stdout, stderr io.Writer, inPath, outPath string) error {
	content, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	normalizer := parsing.NewNormalizer(parsing.WithLogger(logger))
	records := normalizer.Parse(ingestion.NormalizeText(string(content)))

	issues, err := profile.CheckRecords(records)
	if err != nil {
		if errors.Is(err, profile.ErrNothingToImport) {
			return fmt.Errorf("%s: %w", inPath, err)
		}
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if outPath == "" {
		if _, err := stdout.Write(append(data, '\n')); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		observability.NewPrinter(stdout).PrintRecords(records)
		_, _ = fmt.Fprintf(stdout, "Records written to: %s\n", outPath)
	}

	observability.NewPrinter(stderr).PrintIssues(issues)
	return nil
}
