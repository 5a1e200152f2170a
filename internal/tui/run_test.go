package tui

import (
	"context"
	"io"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/pkgcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headlessOptions run the program without a terminal or signal handling.
func headlessOptions(extra ...tea.ProgramOption) []tea.ProgramOption {
	return append([]tea.ProgramOption{
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	}, extra...)
}

// quitOnStepStart makes the program exit as soon as the first step starts,
// the way it does when it receives SIGTERM.
func quitOnStepStart(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(MsgStepStarted); ok {
		return tea.QuitMsg{}
	}
	return msg
}

func TestRunProgram_Completes(t *testing.T) {
	rule := testRule()
	want := &domain.RunReport{Rule: rule.Name, Results: []domain.StepResult{{Name: domain.StepTest, Status: domain.StepPassed}}}

	report, err := runProgram(context.Background(), rule, func(_ context.Context, observer domain.StepObserver) (*domain.RunReport, error) {
		observer.StepStarted(0, 1, rule.Steps[0])
		observer.StepFinished(0, 1, want.Results[0])
		return want, nil
	}, headlessOptions()...)

	require.NoError(t, err)
	assert.Same(t, want, report)
}

func TestRunProgram_StepError(t *testing.T) {
	rule := testRule()
	stepErr := &domain.StepError{Step: domain.StepLint, ExitCode: 2}
	want := &domain.RunReport{Rule: rule.Name, Results: []domain.StepResult{{Name: domain.StepLint, Status: domain.StepFailed}}}

	report, err := runProgram(context.Background(), rule, func(context.Context, domain.StepObserver) (*domain.RunReport, error) {
		return want, stepErr
	}, headlessOptions()...)

	assert.Same(t, want, report)
	assert.ErrorIs(t, err, domain.ErrStepFailed)
}

func TestRunProgram_QuitBeforeRunFinishes(t *testing.T) {
	rule := testRule()
	var returned atomic.Bool

	report, err := runProgram(context.Background(), rule, func(ctx context.Context, observer domain.StepObserver) (*domain.RunReport, error) {
		defer returned.Store(true)
		observer.StepStarted(0, len(rule.Steps), rule.Steps[0])
		<-ctx.Done()
		return nil, ctx.Err()
	}, headlessOptions(tea.WithFilter(quitOnStepStart))...)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
	assert.True(t, returned.Load(), "run must have returned before runProgram")
}

func TestRunProgram_QuitWithoutReport(t *testing.T) {
	rule := testRule()
	var returned atomic.Bool

	_, err := runProgram(context.Background(), rule, func(ctx context.Context, observer domain.StepObserver) (*domain.RunReport, error) {
		defer returned.Store(true)
		observer.StepStarted(0, len(rule.Steps), rule.Steps[0])
		<-ctx.Done()
		return nil, nil
	}, headlessOptions(tea.WithFilter(quitOnStepStart))...)

	assert.ErrorIs(t, err, domain.ErrRunAborted)
	assert.True(t, returned.Load())
}

func TestRunProgram_ProgramError(t *testing.T) {
	rule := testRule()
	var returned atomic.Bool

	// A cancelled program context makes Run fail immediately.
	progCtx, cancelProg := context.WithCancel(context.Background())
	cancelProg()

	_, err := runProgram(context.Background(), rule, func(ctx context.Context, _ domain.StepObserver) (*domain.RunReport, error) {
		defer returned.Store(true)
		<-ctx.Done()
		return nil, ctx.Err()
	}, headlessOptions(tea.WithContext(progCtx))...)

	require.Error(t, err)
	assert.ErrorIs(t, err, tea.ErrProgramKilled)
	assert.Contains(t, err.Error(), "run progress view")
	assert.True(t, returned.Load())
}
