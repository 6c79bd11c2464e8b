package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lapscan/lapscan/internal/analyzer"
	"github.com/lapscan/lapscan/internal/dataset"
	"github.com/lapscan/lapscan/internal/filter"
)

// Common message types shared across UI models
type summaryMsg struct {
	summary  *analyzer.Summary
	filtered []dataset.Listing
}

type summaryErrorMsg struct {
	err error
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var spinnerChars = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// createSummaryCommand creates a tea command that filters the listings and
// recomputes the summary. It takes the selection by value so the command,
// which bubbletea runs on its own goroutine, works on a snapshot the model
// can no longer touch.
func createSummaryCommand(engine *analyzer.Engine, listings []dataset.Listing, sel filter.Selection) tea.Cmd {
	return func() tea.Msg {
		filtered := filter.Apply(listings, sel)

		summary, err := engine.Summarize(context.Background(), filtered)
		if err != nil {
			return summaryErrorMsg{err: err}
		}

		return summaryMsg{
			summary:  summary,
			filtered: filtered,
		}
	}
}
