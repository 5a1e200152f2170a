package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/pkgcheck/internal/domain"
)

type stepRow struct {
	result domain.StepResult
	step   domain.Step
}

// Model is the progress view of a single rule run.
// It quits once the run reports MsgRunDone.
type Model struct {
	err      error
	report   *domain.RunReport
	cancel   context.CancelFunc
	styles   Styles
	keys     KeyMap
	rule     string
	rows     []stepRow
	spinner  spinner.Model
	aborting bool
	done     bool
}

// New creates the view for rule. cancel aborts the run when the user quits.
func New(rule domain.Rule, cancel context.CancelFunc) *Model {
	rows := make([]stepRow, len(rule.Steps))
	for i, s := range rule.Steps {
		rows[i] = stepRow{
			step:   s,
			result: domain.StepResult{Name: s.Name, Command: s.Command, Status: domain.StepPending},
		}
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = DefaultStyles().StatusRunning

	return &Model{
		rule:    rule.Name,
		rows:    rows,
		cancel:  cancel,
		spinner: sp,
		styles:  DefaultStyles(),
		keys:    DefaultKeyMap(),
	}
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles progress messages and the abort key.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgStepStarted:
		if m.valid(msg.Index) {
			m.rows[msg.Index].result.Status = domain.StepRunning
		}
		return m, nil

	case MsgStepFinished:
		if m.valid(msg.Index) {
			m.rows[msg.Index].result = msg.Result
		}
		return m, nil

	case MsgRunDone:
		m.done = true
		m.err = msg.Err
		m.report = msg.Report
		if msg.Report != nil {
			for i := range m.rows {
				if i < len(msg.Report.Results) {
					m.rows[i].result = msg.Report.Results[i]
				}
			}
		}
		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) && !m.aborting {
			m.aborting = true
			if m.cancel != nil {
				m.cancel()
			}
		}
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) valid(index int) bool {
	return index >= 0 && index < len(m.rows)
}

// View renders the step list.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("pkgcheck " + m.rule))
	b.WriteString("\n")

	for _, row := range m.rows {
		res := row.result
		switch res.Status {
		case domain.StepRunning:
			b.WriteString(m.spinner.View())
			b.WriteString(" ")
			b.WriteString(m.styles.StatusRunning.Render(res.Name))
		case domain.StepPending:
			b.WriteString(m.styles.StatusPending.Render(StatusIcon(res.Status) + " " + res.Name))
		default:
			b.WriteString(m.styles.ResultLine(res))
		}
		b.WriteString("  ")
		b.WriteString(m.styles.Command.Render(row.step.Command.String()))
		b.WriteString("\n")
	}

	switch {
	case m.done && m.report != nil:
		b.WriteString("\n")
		b.WriteString(m.styles.SummaryLine(m.report))
		b.WriteString("\n")
	case m.aborting:
		b.WriteString(m.styles.Help.Render("aborting..."))
		b.WriteString("\n")
	default:
		b.WriteString(m.styles.Help.Render(m.keys.Abort.Help().Key + " " + m.keys.Abort.Help().Desc))
		b.WriteString("\n")
	}
	return b.String()
}

// Report returns the run report once the run is done.
func (m *Model) Report() *domain.RunReport {
	return m.report
}

// Err returns the error the run ended with.
func (m *Model) Err() error {
	return m.err
}
