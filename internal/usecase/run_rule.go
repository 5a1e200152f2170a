// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/runoshun/pkgcheck/internal/domain"
)

// RunRuleInput contains the parameters for running the test rule.
// Fields are ordered to minimize memory padding.
type RunRuleInput struct {
	Stdout   io.Writer           // Receives step stdout (required)
	Stderr   io.Writer           // Receives step stderr (required)
	Observer domain.StepObserver // Notified as steps start and finish (optional)
	Root     string              // Project root; step directories are relative to it (required)
	Coverage bool                // Coverage flag, see domain.CoverageEnabled
}

// RunRuleOutput contains the result of running the rule.
type RunRuleOutput struct {
	Report *domain.RunReport
}

// RunRule runs the steps of the test rule in order and stops at the first failure.
type RunRule struct {
	executor domain.CommandExecutor
	config   domain.ConfigLoader
	logger   domain.Logger
	clock    domain.Clock
}

// NewRunRule creates a new RunRule use case.
func NewRunRule(
	executor domain.CommandExecutor,
	config domain.ConfigLoader,
	logger domain.Logger,
	clock domain.Clock,
) *RunRule {
	return &RunRule{
		executor: executor,
		config:   config,
		logger:   logger,
		clock:    clock,
	}
}

// Execute runs the rule. When a step fails the output still carries the
// report (with the remaining steps marked skipped) and the error is a
// *domain.StepError.
func (uc *RunRule) Execute(ctx context.Context, in RunRuleInput) (*RunRuleOutput, error) {
	if in.Root == "" {
		return nil, fmt.Errorf("project root cannot be empty")
	}

	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	rule := domain.NewTestRule(cfg, in.Coverage)
	if len(rule.Steps) == 0 {
		return nil, domain.ErrNoSteps
	}

	if in.Coverage {
		uc.logger.Warn("", "coverage", domain.EnvWithCoverage+"=TRUE: coverage instrumentation is not implemented, running the default test command")
	}
	uc.logger.Info("", "rule", fmt.Sprintf("running rule %q in %s", rule.Name, in.Root))

	observer := in.Observer
	if observer == nil {
		observer = noopObserver{}
	}

	report := &domain.RunReport{
		Rule:     rule.Name,
		Coverage: rule.Coverage,
		Results:  make([]domain.StepResult, 0, len(rule.Steps)),
	}
	total := len(rule.Steps)

	var stepErr *domain.StepError
	for i, step := range rule.Steps {
		if stepErr != nil {
			report.Results = append(report.Results, domain.StepResult{
				Name:    step.Name,
				Command: step.Command,
				Status:  domain.StepSkipped,
			})
			uc.logger.Debug(step.Name, "step", "skipped")
			continue
		}

		result := uc.runStep(ctx, in, step, i, total, observer)
		report.Results = append(report.Results, result)

		if result.Status == domain.StepFailed {
			stepErr = &domain.StepError{Step: step.Name, ExitCode: result.ExitCode, Err: result.Err}
		}
	}

	out := &RunRuleOutput{Report: report}
	if stepErr != nil {
		uc.logger.Error("", "rule", fmt.Sprintf("rule %q failed: %v", rule.Name, stepErr))
		return out, stepErr
	}
	uc.logger.Info("", "rule", fmt.Sprintf("rule %q passed", rule.Name))
	return out, nil
}

// runStep executes one step from its directory under the project root.
func (uc *RunRule) runStep(ctx context.Context, in RunRuleInput, step domain.Step, index, total int, observer domain.StepObserver) domain.StepResult {
	cmd := step.Command
	cmd.Dir = filepath.Join(in.Root, step.Command.Dir)

	observer.StepStarted(index, total, step)
	uc.logger.Info(step.Name, "step", "started: "+step.Command.String())

	start := uc.clock.Now()
	err := ctx.Err()
	if err == nil {
		err = uc.executor.ExecuteWithContext(ctx, &cmd, in.Stdout, in.Stderr)
	}
	result := domain.StepResult{
		Name:     step.Name,
		Command:  step.Command,
		Status:   domain.StepPassed,
		Duration: uc.clock.Now().Sub(start),
		ExitCode: domain.ExitCodeOf(err),
		Err:      err,
	}
	if err != nil {
		result.Status = domain.StepFailed
		uc.logger.Error(step.Name, "step", fmt.Sprintf("failed after %s: %v", result.Duration, err))
	} else {
		uc.logger.Info(step.Name, "step", fmt.Sprintf("passed in %s", result.Duration))
	}

	observer.StepFinished(index, total, result)
	return result
}

type noopObserver struct{}

func (noopObserver) StepStarted(int, int, domain.Step)        {}
func (noopObserver) StepFinished(int, int, domain.StepResult) {}
