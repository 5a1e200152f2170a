package domain

import (
	"path/filepath"
	"regexp"
)

var unsafeLogChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// StepLogPath returns the path to the log file of a step.
// Format: <stateDir>/logs/step-<name>.log
func StepLogPath(stateDir, step string) string {
	name := unsafeLogChars.ReplaceAllString(step, "_")
	return filepath.Join(stateDir, "logs", "step-"+name+".log")
}

// GlobalLogPath returns the path to the run log shared by all steps.
func GlobalLogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", "pkgcheck.log")
}
