package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/student-portfolio/internal/board"
	"github.com/jonathan/student-portfolio/internal/observability"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Inspect and manage the students board",
}

var boardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the students on the board",
	Args:  cobra.NoArgs,
	RunE:  runBoardList,
}

var boardShowCmd = &cobra.Command{
	Use:   "show <profile-id>",
	Short: "Show one student's portfolio",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoardShow,
}

var boardRemoveCmd = &cobra.Command{
	Use:   "remove <profile-id>",
	Short: "Remove a student from the board",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoardRemove,
}

var boardExportCmd = &cobra.Command{
	Use:   "export <profile-id>",
	Short: "Export a student's profile as a JSON upload",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoardExport,
}

var (
	boardJSON      bool
	boardExportDir string
)

func init() {
	boardCmd.PersistentFlags().BoolVar(&boardJSON, "json", false, "Print JSON instead of formatted output")
	boardExportCmd.Flags().StringVar(&boardExportDir, "dir", "", "Export directory (default from config)")

	boardCmd.AddCommand(boardListCmd, boardShowCmd, boardRemoveCmd, boardExportCmd)
	rootCmd.AddCommand(boardCmd)
}

func runBoardList(cmd *cobra.Command, _ []string) error {
	b, err := openBoard()
	if err != nil {
		return err
	}
	entries, err := b.List(cmd.Context())
	if err != nil {
		return err
	}

	cards := board.Cards(entries)
	if boardJSON {
		return writeJSON(cmd.OutOrStdout(), cards)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintCards(cards)
	return nil
}

func runBoardShow(cmd *cobra.Command, args []string) error {
	b, err := openBoard()
	if err != nil {
		return err
	}
	entry, err := b.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if boardJSON {
		return writeJSON(cmd.OutOrStdout(), entry.Profile)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintProfile(&entry.Profile)
	return nil
}

func runBoardRemove(cmd *cobra.Command, args []string) error {
	b, err := openBoard()
	if err != nil {
		return err
	}
	if err := b.Remove(cmd.Context(), args[0]); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from the board\n", args[0])
	return nil
}

func runBoardExport(cmd *cobra.Command, args []string) error {
	dir := settings.ExportDir
	if cmd.Flags().Changed("dir") {
		dir = boardExportDir
	}

	b, err := openBoard()
	if err != nil {
		return err
	}
	path, err := b.Export(cmd.Context(), dir, args[0])
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Profile exported to: %s\n", path)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
