package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/statespace/pkg/domain"
)

// ReportMarkdown renders a search report as a markdown document.
func ReportMarkdown(r *domain.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", r.Puzzle)
	fmt.Fprintf(&sb, "- **Start:** `%s`\n", r.Start)
	if r.Goal != "" {
		fmt.Fprintf(&sb, "- **Goal:** `%s`\n", r.Goal)
	}
	fmt.Fprintf(&sb, "- **Outcome:** %s\n", r.Outcome)
	fmt.Fprintf(&sb, "- **States explored:** %d\n", r.Explored)
	if r.Duration > 0 {
		fmt.Fprintf(&sb, "- **Duration:** %s\n", r.Duration)
	}
	sb.WriteString("\n")

	if r.Outcome != domain.OutcomeSolved {
		sb.WriteString("No result found: the goal cannot be reached from the start state.\n")
		return sb.String()
	}
	if len(r.Steps) == 0 {
		sb.WriteString("The start state already satisfies the goal.\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "## Solved in %d steps\n\n", len(r.Steps))
	sb.WriteString("| # | Action |\n|---|---|\n")
	for i, step := range r.Steps {
		fmt.Fprintf(&sb, "| %d | %s |\n", i+1, strings.ReplaceAll(step, "|", `\|`))
	}
	return sb.String()
}

// ReportText renders a report as plain text, one step per line.
func ReportText(r *domain.Report) string {
	var sb strings.Builder
	if r.Outcome != domain.OutcomeSolved {
		fmt.Fprintf(&sb, "No result found for %s after exploring %d states\n", r.Puzzle, r.Explored)
		return sb.String()
	}
	fmt.Fprintf(&sb, "Solved %s in %d steps (%d states explored):\n", r.Puzzle, len(r.Steps), r.Explored)
	for i, step := range r.Steps {
		fmt.Fprintf(&sb, "%3d. %s\n", i+1, step)
	}
	return sb.String()
}
