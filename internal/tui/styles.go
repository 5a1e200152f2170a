// Package tui provides the terminal progress view for rule runs.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/pkgcheck/internal/domain"
)

// Colors defines the color palette shared by the TUI and plain output.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Text    lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
	Text:    lipgloss.Color("#DFE6E9"), // Light gray
}

// Styles contains the lipgloss styles for step rendering.
type Styles struct {
	Header  lipgloss.Style
	Step    lipgloss.Style
	Command lipgloss.Style
	Help    lipgloss.Style

	StatusPending lipgloss.Style
	StatusRunning lipgloss.Style
	StatusPassed  lipgloss.Style
	StatusFailed  lipgloss.Style
	StatusSkipped lipgloss.Style

	Summary    lipgloss.Style
	SummaryBad lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary).MarginBottom(1),
		Step:    lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Command: lipgloss.NewStyle().Foreground(Colors.Muted),
		Help:    lipgloss.NewStyle().Foreground(Colors.Muted).MarginTop(1),

		StatusPending: lipgloss.NewStyle().Foreground(Colors.Muted),
		StatusRunning: lipgloss.NewStyle().Foreground(Colors.Warning),
		StatusPassed:  lipgloss.NewStyle().Foreground(Colors.Success),
		StatusFailed:  lipgloss.NewStyle().Foreground(Colors.Error).Bold(true),
		StatusSkipped: lipgloss.NewStyle().Foreground(Colors.Muted).Faint(true),

		Summary:    lipgloss.NewStyle().Bold(true).Foreground(Colors.Success),
		SummaryBad: lipgloss.NewStyle().Bold(true).Foreground(Colors.Error),
	}
}

// StatusIcon returns the marker shown next to a step.
func StatusIcon(status domain.StepStatus) string {
	switch status {
	case domain.StepRunning:
		return "●"
	case domain.StepPassed:
		return "✓"
	case domain.StepFailed:
		return "✗"
	case domain.StepSkipped:
		return "-"
	default:
		return "○"
	}
}

// StatusStyle returns the style for a step status.
func (s Styles) StatusStyle(status domain.StepStatus) lipgloss.Style {
	switch status {
	case domain.StepRunning:
		return s.StatusRunning
	case domain.StepPassed:
		return s.StatusPassed
	case domain.StepFailed:
		return s.StatusFailed
	case domain.StepSkipped:
		return s.StatusSkipped
	default:
		return s.StatusPending
	}
}

// ResultLine renders a finished step, e.g. "✓ lint (1.2s)".
func (s Styles) ResultLine(res domain.StepResult) string {
	text := fmt.Sprintf("%s %s", StatusIcon(res.Status), res.Name)
	switch res.Status {
	case domain.StepPassed:
		text += fmt.Sprintf(" (%s)", res.Duration.Round(10*time.Millisecond))
	case domain.StepFailed:
		if res.ExitCode >= 0 {
			text += fmt.Sprintf(" (exit code %d)", res.ExitCode)
		} else if res.Err != nil {
			text += fmt.Sprintf(" (%v)", res.Err)
		}
	case domain.StepSkipped:
		text += " (skipped)"
	}
	return s.StatusStyle(res.Status).Render(text)
}

// SummaryLine renders the final rule verdict.
func (s Styles) SummaryLine(report *domain.RunReport) string {
	if report.Passed() {
		return s.Summary.Render(fmt.Sprintf("rule %q passed", report.Rule))
	}
	if failed := report.Failed(); failed != nil {
		return s.SummaryBad.Render(fmt.Sprintf("rule %q failed at step %q", report.Rule, failed.Name))
	}
	return s.SummaryBad.Render(fmt.Sprintf("rule %q failed", report.Rule))
}
