// Package main is the entry point for the pkgcheck CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/pkgcheck/internal/app"
	"github.com/runoshun/pkgcheck/internal/cli"
	"github.com/runoshun/pkgcheck/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(os.Args[1:], os.Stdout, os.Stderr, app.Open, version); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode returns the failing step's exit code, or 1 when there is none.
func exitCode(err error) int {
	var stepErr *domain.StepError
	if errors.As(err, &stepErr) && stepErr.ExitCode > 0 {
		return stepErr.ExitCode
	}
	return 1
}
