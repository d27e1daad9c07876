package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/student-portfolio/internal/parsing"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write the student portfolio CSV template",
	Long:  "Write the CSV template with the expected header row and two sample students. Use --out - to print it.",
	RunE:  runTemplate,
}

var templateOut string

func init() {
	templateCmd.Flags().StringVarP(&templateOut, "out", "o", "", "Output path (default from config, \"-\" for stdout)")
	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, _ []string) error {
	out := settings.TemplateOut
	if cmd.Flags().Changed("out") {
		out = templateOut
	}
	return writeTemplate(cmd.OutOrStdout(), out)
}

// writeTemplate writes the template to path, or to w when path is "-"
func writeTemplate(w io.Writer, path string) error {
	download := parsing.Template()
	if path == "-" {
		_, err := w.Write(append(download.Body, '\n'))
		return err
	}
	if path == "" {
		path = download.Filename
	}
	if err := os.WriteFile(path, download.Body, 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Template written to: %s (%s)\n", path, download.ContentType)
	return nil
}
