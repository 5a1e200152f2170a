// Package cli provides the command-line interface for pkgcheck.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/pkgcheck/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupRules = "rules"
	groupSetup = "setup"
)

// ContainerFactory builds the container for dir. With detectRepo set the
// project root is searched upwards from dir; otherwise dir is the root.
type ContainerFactory func(dir string, detectRepo bool) (*app.Container, error)

// session lazily creates the container once flags are parsed.
type session struct {
	newContainer ContainerFactory
	container    *app.Container
	dir          string // --root flag
}

// Container returns the container, creating it on first use.
func (s *session) Container() (*app.Container, error) {
	if s.container != nil {
		return s.container, nil
	}
	// An explicit --root is the project root as given.
	dir, detectRepo := s.dir, false
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get current directory: %w", err)
		}
		dir, detectRepo = wd, true
	}
	c, err := s.newContainer(dir, detectRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	s.container = c
	return c, nil
}

func (s *session) close() error {
	if s.container == nil {
		return nil
	}
	return s.container.Close()
}

// Execute runs the pkgcheck command line with args and closes the container afterwards.
func Execute(args []string, stdout, stderr io.Writer, newContainer ContainerFactory, version string) error {
	s := &session{newContainer: newContainer}
	root := newRootCommand(s, version)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if closeErr := s.close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close run log: %w", closeErr)
	}
	return err
}

func newRootCommand(s *session, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "pkgcheck",
		Short: "Run a package's test rule",
		Long: `pkgcheck runs a Python package's test rule: the test suite from the ci
directory (so the installed package is imported, not the working tree),
then the style linter, the checklist script and the manifest check.

Steps run in order and the first failure stops the rule.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "init" || cmd.Name() == "template" {
				return nil
			}

			c, err := s.Container()
			if err != nil {
				return err
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Reported by the command that needs the config
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&s.dir, "root", "C", "", "Project root (default: enclosing git worktree of the current directory)")

	root.AddGroup(
		&cobra.Group{ID: groupRules, Title: "Rules:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	testCmd := newTestCommand(s)
	testCmd.GroupID = groupRules

	planCmd := newPlanCommand(s)
	planCmd.GroupID = groupRules

	logsCmd := newLogsCommand(s)
	logsCmd.GroupID = groupRules

	configCmd := newConfigCommand(s)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		testCmd,
		planCmd,
		logsCmd,
		configCmd,
	)

	return root
}
