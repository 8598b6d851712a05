// Package observability provides terminal output and logging setup for the CLI and server.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// gaugeCells is the number of cells in the score gauge
	gaugeCells = 20
)

// Printer handles formatted output of scoring results
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
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(line string, width int) string {
	if utf8.RuneCountInString(line) <= width {
		return line
	}
	runes := []rune(line)
	return string(runes[:width-3]) + "..."
}

// gauge renders a score as a fixed-width bar
func gauge(score int) string {
	filled := score * gaugeCells / ats.MaxScore
	filled = max(0, min(filled, gaugeCells))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", gaugeCells-filled) + "]"
}

// PrintScore outputs the score, its band and the first top improvements in
// the order the scorer returned them. top <= 0 prints every improvement.
func (p *Printer) PrintScore(title string, result types.ScoreResult, top int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:  %d/%d  %s\n", result.Score, ats.MaxScore, gauge(result.Score)))
	sb.WriteString(fmt.Sprintf("Status: %s\n", ats.Band(result.Score)))
	sb.WriteString("\n")

	shown := ats.Top(result, top)
	if len(shown) == 0 {
		sb.WriteString("No improvements left. Your resume is ATS-ready.\n")
	} else {
		if len(shown) < len(result.Improvements) {
			sb.WriteString(fmt.Sprintf("Top %d Improvements:\n", len(shown)))
		} else {
			sb.WriteString("Improvements:\n")
		}
		for _, imp := range shown {
			sb.WriteString(fmt.Sprintf("  • %s\n", imp.Text))
		}
		if remaining := len(result.Improvements) - len(shown); remaining > 0 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", remaining))
		}
	}

	if title == "" {
		title = "ATS READINESS SCORE"
	}
	p.printBox(title, sb.String())
}

// PrintRules outputs the scoring rule table
func (p *Printer) PrintRules(rules []ats.RuleInfo) {
	var sb strings.Builder

	total := 0
	for i, r := range rules {
		sb.WriteString(fmt.Sprintf("%2d. %-36s %-13s +%d\n", i+1, r.Description, r.Kind, r.Points))
		total += r.Points
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Maximum: %d (capped at %d)\n", total, ats.MaxScore))

	p.printBox("ATS SCORING RULES", sb.String())
}
