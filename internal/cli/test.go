package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/runoshun/pkgcheck/internal/app"
	"github.com/runoshun/pkgcheck/internal/domain"
	"github.com/runoshun/pkgcheck/internal/tui"
	"github.com/runoshun/pkgcheck/internal/usecase"
	"github.com/spf13/cobra"
)

// getenv is a function variable for reading the environment, allowing it to be mocked in tests.
var getenv = os.Getenv

// runTUIFunc is a function variable for the progress view, allowing it to be mocked in tests.
var runTUIFunc = tui.Run

// newTestCommand creates the test command.
func newTestCommand(s *session) *cobra.Command {
	var withCoverage, dryRun, useTUI bool

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the test suite, then lint, checklist and manifest checks",
		Long: `Run the package test rule:

  1. test       cd ci && python setup.py test
  2. lint       flake8 <package> setup.py checklist.py
  3. checklist  ./checklist.py
  4. manifest   check-manifest

The first failing step stops the rule and its exit code becomes
pkgcheck's exit code. Every command can be changed in .pkgcheck.toml.

Coverage:
  WITH_COVERAGE=TRUE (or --with-coverage) selects the coverage branch.
  Coverage instrumentation is not implemented yet, so this currently
  runs the same test command.`,
		Example: `  pkgcheck test
  WITH_COVERAGE=TRUE pkgcheck test
  pkgcheck test --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := s.Container()
			if err != nil {
				return err
			}

			coverage := withCoverage
			if !cmd.Flags().Changed("with-coverage") {
				coverage = domain.CoverageEnabled(getenv(domain.EnvWithCoverage))
			}

			if dryRun {
				out, err := c.ShowPlanUseCase().Execute(cmd.Context(), usecase.ShowPlanInput{Coverage: coverage})
				if err != nil {
					return err
				}
				return renderPlanText(cmd.OutOrStdout(), out.Rule)
			}

			if coverage {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Note: %s=TRUE: coverage instrumentation is not implemented, running the default test command\n", domain.EnvWithCoverage)
			}

			c.Logger.Debug("running rule", "rule", domain.RuleTest, "root", c.Config.Root, "coverage", coverage, "tui", useTUI)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if useTUI {
				return runTestWithTUI(ctx, cmd, c, coverage)
			}
			return runTestPlain(ctx, cmd, c, coverage)
		},
	}

	cmd.Flags().BoolVar(&withCoverage, "with-coverage", false, "Select the coverage branch (default from "+domain.EnvWithCoverage+"=TRUE)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the steps without running them")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Show a progress view; step output is printed when the rule ends")

	return cmd
}

func runTestPlain(ctx context.Context, cmd *cobra.Command, c *app.Container, coverage bool) error {
	styles := tui.DefaultStyles()
	out, err := c.RunRuleUseCase().Execute(ctx, usecase.RunRuleInput{
		Root:     c.Config.Root,
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
		Observer: newPlainObserver(cmd.ErrOrStderr(), styles),
		Coverage: coverage,
	})
	if out != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), styles.SummaryLine(out.Report))
	}
	return err
}

func runTestWithTUI(ctx context.Context, cmd *cobra.Command, c *app.Container, coverage bool) error {
	plan, err := c.ShowPlanUseCase().Execute(ctx, usecase.ShowPlanInput{Coverage: coverage})
	if err != nil {
		return err
	}

	// Shared by stdout and stderr so the executor serializes writes.
	var captured bytes.Buffer
	uc := c.RunRuleUseCase()
	_, runErr := runTUIFunc(ctx, plan.Rule, cmd.ErrOrStderr(), func(ctx context.Context, observer domain.StepObserver) (*domain.RunReport, error) {
		out, err := uc.Execute(ctx, usecase.RunRuleInput{
			Root:     c.Config.Root,
			Stdout:   &captured,
			Stderr:   &captured,
			Observer: observer,
			Coverage: coverage,
		})
		if out == nil {
			return nil, err
		}
		return out.Report, err
	})

	if captured.Len() > 0 {
		_, _ = io.Copy(cmd.OutOrStdout(), &captured)
	}
	return runErr
}
