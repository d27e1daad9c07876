package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/student-portfolio/internal/board"
	"github.com/jonathan/student-portfolio/internal/ingestion"
	"github.com/jonathan/student-portfolio/internal/observability"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import CSV or JSON uploads into the students board",
	Long: `Import one or more uploads into the students board.

CSV files are parsed with the portfolio template columns; rows without a name or
school are skipped and reported. JSON files must hold one complete profile.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	b, err := openBoard()
	if err != nil {
		return err
	}
	return importUploads(cmd.Context(), cmd.OutOrStdout(), b, args)
}

// importUploads converts every path and stores the complete profiles on the board
func importUploads(ctx context.Context, out io.Writer, b *board.Board, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	importer := ingestion.NewImporter(nil, logger)
	uploads, err := importer.ImportFiles(ctx, paths)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(out)
	total := 0
	for _, upload := range uploads {
		entries, err := b.Add(ctx, upload.Name, upload.Profiles...)
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", upload.Name, err)
		}
		total += len(entries)
		_, _ = fmt.Fprintf(out, "Imported %d profile(s) from %s (%s)\n", len(entries), upload.Name, upload.Format)
		printer.PrintIssues(upload.Issues)
	}

	logger.Debug("import finished", zap.Int("files", len(uploads)), zap.Int("profiles", total))
	_, _ = fmt.Fprintf(out, "Board now at: %s\n", b.Path())
	return nil
}
