package tui

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/statespace/pkg/domain"
)

func TestReportMarkdown(t *testing.T) {
	r := &domain.Report{
		Puzzle:   "fox-goose-beans",
		Start:    "fgb L",
		Goal:     "FGB R",
		Outcome:  domain.OutcomeSolved,
		Steps:    []string{"pickup Goose", "boat to the right shore"},
		Explored: 28,
		Duration: time.Millisecond,
	}

	md := ReportMarkdown(r)
	assert.Contains(t, md, "# fox-goose-beans")
	assert.Contains(t, md, "`fgb L`")
	assert.Contains(t, md, "- **Goal:** `FGB R`")
	assert.Contains(t, md, "## Solved in 2 steps")
	assert.Contains(t, md, "| 2 | boat to the right shore |")

	r.Steps = []string{}
	assert.Contains(t, ReportMarkdown(r), "already satisfies the goal")

	r.Outcome = domain.OutcomeUnreachable
	assert.Contains(t, ReportMarkdown(r), "No result found")
	assert.Contains(t, ReportText(r), "No result found for fox-goose-beans after exploring 28 states")
}

func TestReportText(t *testing.T) {
	r := &domain.Report{Puzzle: "p", Outcome: domain.OutcomeSolved, Steps: []string{"a", "b"}, Explored: 3}
	assert.Equal(t, "Solved p in 2 steps (3 states explored):\n  1. a\n  2. b\n", ReportText(r))
}

func TestProgressHooks(t *testing.T) {
	var buf bytes.Buffer
	hooks := ProgressHooks(&buf)
	hooks.OnDiscover(context.Background(), &domain.DiscoverEvent{Index: 1, Description: "fgb L"})
	hooks.OnDiscover(context.Background(), &domain.DiscoverEvent{Index: 2, Description: "gb L w/F"})
	assert.Equal(t, "Added: 1: fgb L\nAdded: 2: gb L w/F\n", buf.String())
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "0.1.0\n")
	assert.Contains(t, buf.String(), "v0.1.0")
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()
	out, err := render("# Title")
	assert.NoError(t, err)
	assert.Contains(t, out, "Title")
}
