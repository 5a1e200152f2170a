package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/pkgcheck/internal/domain"
)

// Observer forwards rule progress to a running program.
type Observer struct {
	send func(tea.Msg)
}

// Ensure Observer implements domain.StepObserver.
var _ domain.StepObserver = (*Observer)(nil)

// NewObserver creates an Observer. send is usually (*tea.Program).Send.
func NewObserver(send func(tea.Msg)) *Observer {
	return &Observer{send: send}
}

// StepStarted implements domain.StepObserver.
func (o *Observer) StepStarted(index, _ int, _ domain.Step) {
	o.send(MsgStepStarted{Index: index})
}

// StepFinished implements domain.StepObserver.
func (o *Observer) StepFinished(index, _ int, result domain.StepResult) {
	o.send(MsgStepFinished{Index: index, Result: result})
}
