package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	stampedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// printResult writes one status line per file. Successes go to stdout,
// skips and failures to stderr.
func printResult(r Result) {
	switch r.Outcome {
	case OutcomeStamped:
		fmt.Printf("%s %s\n", stampedStyle.Render("stamped"), r.Path)
	case OutcomeSkipped:
		fmt.Fprintf(os.Stderr, "%s %s: %s\n", skippedStyle.Render("skipped"), r.Path, r.Reason)
	case OutcomeFailed:
		fmt.Fprintf(os.Stderr, "%s %s: %v\n", failedStyle.Render("failed"), r.Path, r.Err)
	}
}

// printSummary writes the final per-outcome counts.
func printSummary(results []Result) {
	var stamped, skipped, failed int
	for _, r := range results {
		switch r.Outcome {
		case OutcomeStamped:
			stamped++
		case OutcomeSkipped:
			skipped++
		case OutcomeFailed:
			failed++
		}
	}

	fmt.Printf("\nDone: %d stamped, %d skipped, %d failed.\n", stamped, skipped, failed)
}
