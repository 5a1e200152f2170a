package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/pkgcheck/internal/domain"
)

// RunFunc runs a rule and reports progress to observer.
type RunFunc func(ctx context.Context, observer domain.StepObserver) (*domain.RunReport, error)

// Run shows the progress view on out while run executes in the background.
// Run returns only after run has returned. If the view exits first (quit key,
// signal, no terminal) the run is cancelled and awaited, and a run that ends
// without a report yields domain.ErrRunAborted.
func Run(ctx context.Context, rule domain.Rule, out io.Writer, run RunFunc) (*domain.RunReport, error) {
	return runProgram(ctx, rule, run, tea.WithOutput(out))
}

type runResult struct {
	err    error
	report *domain.RunReport
}

func runProgram(ctx context.Context, rule domain.Rule, run RunFunc, opts ...tea.ProgramOption) (*domain.RunReport, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(rule, cancel), opts...)

	done := make(chan runResult, 1)
	go func() {
		report, err := run(ctx, NewObserver(p.Send))
		done <- runResult{report: report, err: err}
		p.Send(MsgRunDone{Report: report, Err: err})
	}()

	_, progErr := p.Run()
	cancel()
	res := <-done

	if progErr != nil {
		return res.report, fmt.Errorf("run progress view: %w", progErr)
	}
	if res.report == nil && res.err == nil {
		return nil, domain.ErrRunAborted
	}
	return res.report, res.err
}
