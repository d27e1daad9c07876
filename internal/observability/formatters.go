// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/student-portfolio/internal/board"
	"github.com/jonathan/student-portfolio/internal/profile"
	"github.com/jonathan/student-portfolio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(Truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// Truncate shortens s to at most width runes, ending with "..." when cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= 3 {
		return string([]rune(s)[:width])
	}
	return string([]rune(s)[:width-3]) + "..."
}

// pad right-pads s with spaces to width runes
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// PrintRecords outputs a summary of parsed CSV records.
func (p *Printer) PrintRecords(records []types.ProfileRecord) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Records parsed: %d\n", len(records)))

	count := min(len(records), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := records[i]
		name := rec.FullName
		if name == "" {
			name = "(no name)"
		}
		sb.WriteString(fmt.Sprintf("\n• %s", name))
		if rec.SchoolName != "" {
			sb.WriteString(fmt.Sprintf(" · %s", rec.SchoolName))
		}
		sb.WriteString(fmt.Sprintf("\n  id: %s", rec.ProfileID))
		if len(rec.CoreStrengths) > 0 {
			sb.WriteString(fmt.Sprintf("\n  strengths: %s", strings.Join(rec.CoreStrengths, ", ")))
		}
		if len(rec.Extra) > 0 {
			sb.WriteString(fmt.Sprintf("\n  extra columns: %s", strings.Join(sortedKeys(rec.Extra), ", ")))
		}
	}

	if len(records) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more records", len(records)-maxItemsToShow))
	}

	p.printBox("PARSED RECORDS", sb.String())
}

// PrintIssues outputs the records that are missing required fields.
func (p *Printer) PrintIssues(issues []profile.RecordIssue) {
	if len(issues) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d record(s) are missing information:\n", len(issues)))
	for _, issue := range issues {
		label := issue.FullName
		if label == "" {
			label = issue.ProfileID
		}
		sb.WriteString(fmt.Sprintf("\n  row %d (%s): %s", issue.Index+1, label, strings.Join(issue.Missing, ", ")))
	}

	p.printBox("MISSING INFORMATION", sb.String())
}

// PrintCards outputs the board view.
func (p *Printer) PrintCards(cards []board.Card) {
	if len(cards) == 0 {
		p.printBox("STUDENT PORTFOLIOS", "No students yet.\nImport a CSV or JSON file to get started.")
		return
	}

	var sb strings.Builder
	for i, card := range cards {
		sb.WriteString(card.Name)
		if card.Achievement != "" {
			sb.WriteString(fmt.Sprintf(" [%s]", card.Achievement))
		}
		sb.WriteString(fmt.Sprintf("\n  %s\n  id: %s", card.School, card.ProfileID))
		if card.Grade != "" {
			sb.WriteString(fmt.Sprintf("\n  Grade: %s", card.Grade))
		}
		if card.Year != "" {
			sb.WriteString(fmt.Sprintf("\n  Year: %s", card.Year))
		}
		if card.AboutMe != "" {
			sb.WriteString("\n  " + card.AboutMe)
		}
		if len(card.Passions) > 0 {
			sb.WriteString(fmt.Sprintf("\n  #%s", strings.Join(card.Passions, " #")))
		}
		if i < len(cards)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox(fmt.Sprintf("STUDENT PORTFOLIOS (%d)", len(cards)), sb.String())
}

// PrintProfile outputs a portfolio summary for one student.
func (p *Printer) PrintProfile(sp *types.StudentProfile) {
	if sp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", sp.FullName))
	sb.WriteString(fmt.Sprintf("School:   %s\n", sp.SchoolName))
	if sp.Grade != "" || sp.Year != "" {
		sb.WriteString(fmt.Sprintf("Grade:    %s %s\n", sp.Grade, sp.Year))
	}
	if sp.Archetype.Title != "" {
		sb.WriteString(fmt.Sprintf("Archetype: %s\n", sp.Archetype.Title))
	}
	if sp.SocialEnergyStyle.Type != "" {
		sb.WriteString(fmt.Sprintf("Energy:   %s\n", sp.SocialEnergyStyle.Type))
	}

	if len(sp.CoreStrengths) > 0 {
		sb.WriteString("\nCore strengths:\n")
		writeList(&sb, sp.CoreStrengths)
	}
	if len(sp.Passions) > 0 {
		sb.WriteString("\nPassions:\n")
		writeList(&sb, sp.Passions)
	}

	if len(sp.Skills) > 0 {
		sb.WriteString("\nTop skills:\n")
		names := skillsByScore(sp.Skills)
		for _, name := range names[:min(len(names), maxItemsToShow)] {
			sb.WriteString(fmt.Sprintf("  • %-24s %3.0f%%\n", name, sp.Skills[name].Overall))
		}
	}

	sb.WriteString(fmt.Sprintf("\nProjects: %d  Case studies: %d  Activities: %d  Career paths: %d",
		len(sp.Projects), len(sp.CaseStudies), len(sp.Extracurricular), len(sp.CareerPaths)))

	p.printBox("PORTFOLIO", sb.String())
}

func writeList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for _, item := range items[:count] {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// skillsByScore orders skill names by overall score, highest first, then by name
func skillsByScore(skills map[string]types.SkillScore) []string {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := skills[names[i]].Overall, skills[names[j]].Overall
		if a != b {
			return a > b
		}
		return names[i] < names[j]
	})
	return names
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
