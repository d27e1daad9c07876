package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/student-portfolio/internal/observability"
	"github.com/jonathan/student-portfolio/internal/profile"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Show the example portfolio",
	Args:  cobra.NoArgs,
	RunE:  runSample,
}

var (
	sampleJSON bool
	sampleAdd  bool
)

func init() {
	sampleCmd.Flags().BoolVar(&sampleJSON, "json", false, "Print the profile as a JSON upload")
	sampleCmd.Flags().BoolVar(&sampleAdd, "add", false, "Also add the example to the students board")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	p := profile.SampleProfile()

	if sampleAdd {
		b, err := openBoard()
		if err != nil {
			return err
		}
		if _, err := b.Add(cmd.Context(), "sample", p); err != nil {
			return fmt.Errorf("failed to save sample: %w", err)
		}
	}

	if sampleJSON {
		return writeJSON(cmd.OutOrStdout(), p)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintProfile(&p)
	return nil
}
