package domain

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

// RuleTest is the name of the package test rule.
const RuleTest = "test"

// Step names of the test rule, in execution order.
const (
	StepTest      = "test"
	StepLint      = "lint"
	StepChecklist = "checklist"
	StepManifest  = "manifest"
)

// Step is a single command of a rule.
// Command.Dir is relative to the project root; empty means the root itself.
type Step struct {
	Name    string      `json:"name" yaml:"name" toml:"name"`
	Command ExecCommand `json:"command" yaml:"command" toml:"command"`
}

// Rule is an ordered list of steps run fail-fast.
type Rule struct {
	Name     string `json:"rule" yaml:"rule" toml:"rule"`
	Steps    []Step `json:"steps" yaml:"steps" toml:"steps"`
	Coverage bool   `json:"coverage" yaml:"coverage" toml:"coverage"`
}

// NewTestRule builds the package test rule: the test suite from the test
// directory, then the linter, the checklist script and the manifest check.
func NewTestRule(cfg *Config, coverage bool) Rule {
	lintArgs := make([]string, 0, len(cfg.Lint.Args)+3)
	lintArgs = append(lintArgs, cfg.Lint.Args...)
	lintArgs = append(lintArgs, cfg.Project.Package, cfg.Project.SetupFile, cfg.Project.Checklist)

	return Rule{
		Name:     RuleTest,
		Coverage: coverage,
		Steps: []Step{
			{Name: StepTest, Command: SelectTestCommand(cfg.Test, coverage)},
			{Name: StepLint, Command: NewCommand(cfg.Lint.Command, lintArgs, "")},
			{Name: StepChecklist, Command: NewCommand(scriptProgram(cfg.Project.Checklist), nil, "")},
			{Name: StepManifest, Command: NewCommand(cfg.Manifest.Command, cfg.Manifest.Args, "")},
		},
	}
}

// scriptProgram turns a bare script name into a path so it is not looked up in PATH.
func scriptProgram(script string) string {
	if filepath.IsAbs(script) || strings.ContainsRune(script, '/') || strings.ContainsRune(script, filepath.Separator) {
		return script
	}
	return "." + string(filepath.Separator) + script
}

// StepStatus is the outcome of a step.
type StepStatus string

// Step statuses.
const (
	StepPending StepStatus = "pending"
	StepRunning StepStatus = "running"
	StepPassed  StepStatus = "passed"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
)

// StepResult records how a step ended.
// Fields are ordered to minimize memory padding.
type StepResult struct {
	Err      error
	Name     string
	Status   StepStatus
	Command  ExecCommand
	Duration time.Duration
	ExitCode int
}

// RunReport is the aggregate outcome of a rule run.
type RunReport struct {
	Rule     string
	Results  []StepResult
	Coverage bool
}

// Passed reports whether every step passed.
func (r *RunReport) Passed() bool {
	for _, res := range r.Results {
		if res.Status != StepPassed {
			return false
		}
	}
	return len(r.Results) > 0
}

// Failed returns the step that aborted the run, or nil.
func (r *RunReport) Failed() *StepResult {
	for i := range r.Results {
		if r.Results[i].Status == StepFailed {
			return &r.Results[i]
		}
	}
	return nil
}

// ExitCodeOf extracts a process exit code from err.
// It returns 0 for nil and -1 when err carries no exit code.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return -1
}
