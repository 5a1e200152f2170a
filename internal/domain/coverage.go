package domain

// EnvWithCoverage is the environment variable that toggles coverage runs.
const EnvWithCoverage = "WITH_COVERAGE"

// coverageOn is the only value of EnvWithCoverage that enables coverage.
const coverageOn = "TRUE"

// CoverageEnabled reports whether an EnvWithCoverage value enables coverage.
// Matching is exact: "true" or "1" leave coverage off.
func CoverageEnabled(value string) bool {
	return value == coverageOn
}

// SelectTestCommand returns the command that runs the package test suite.
// The command runs from t.Dir, relative to the project root.
func SelectTestCommand(t TestConfig, coverage bool) ExecCommand {
	if coverage {
		// TODO: run the suite under "coverage run" with the project rcfile once
		// coverage reporting is wired up. Until then this is the plain suite.
		return t.command()
	}
	return t.command()
}

func (t TestConfig) command() ExecCommand {
	return NewCommand(t.Python, t.Args, t.Dir)
}
