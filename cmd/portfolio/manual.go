package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/student-portfolio/internal/board"
	"github.com/jonathan/student-portfolio/internal/observability"
	"github.com/jonathan/student-portfolio/internal/profile"
)

var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Add a student from individual values",
	Long: `Build a portfolio from individual values and add it to the students board.

Name and school are required. Strengths and passions are comma-separated.`,
	RunE: runManual,
}

var (
	manualEntry profile.ManualEntry
	manualImage string
)

func init() {
	f := manualCmd.Flags()
	f.StringVar(&manualEntry.FullName, "name", "", "Full name")
	f.StringVar(&manualEntry.SchoolName, "school", "", "School name")
	f.StringVar(&manualEntry.Grade, "grade", "", "Grade, e.g. \"11th Grade\"")
	f.StringVar(&manualEntry.Year, "year", "", "School year, e.g. \"2024-2025\"")
	f.StringVar(&manualEntry.AboutMe, "about", "", "About me")
	f.StringVar(&manualEntry.PersonalBio, "bio", "", "Personal bio")
	f.StringVar(&manualEntry.CoreStrengths, "strengths", "", "Comma-separated core strengths")
	f.StringVar(&manualEntry.Passions, "passions", "", "Comma-separated passions")
	f.StringVar(&manualEntry.ArchetypeTitle, "archetype-title", "", "Archetype title")
	f.StringVar(&manualEntry.ArchetypeDescription, "archetype-description", "", "Archetype description")
	f.StringVar(&manualEntry.ArchetypeQuote, "archetype-quote", "", "Archetype quote")
	f.StringVar(&manualImage, "image", "", "Path to a profile picture")

	rootCmd.AddCommand(manualCmd)
}

func runManual(cmd *cobra.Command, _ []string) error {
	entry := manualEntry
	if manualImage != "" {
		data, err := os.ReadFile(manualImage)
		if err != nil {
			return fmt.Errorf("failed to read profile picture: %w", err)
		}
		entry.ProfileImage = data
	}

	b, err := openBoard()
	if err != nil {
		return err
	}
	return addManual(cmd.Context(), cmd.OutOrStdout(), b, entry, time.Now())
}

func addManual(ctx context.Context, out io.Writer, b *board.Board, entry profile.ManualEntry, now time.Time) error {
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := entry.Build(now)
	if err != nil {
		return err
	}
	if _, err := b.Add(ctx, "manual", *p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	observability.NewPrinter(out).PrintProfile(p)
	_, _ = fmt.Fprintf(out, "Added %s to the board\n", p.ProfileID)
	return nil
}
