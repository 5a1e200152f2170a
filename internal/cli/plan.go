package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/pkgcheck/internal/domain"
	"github.com/runoshun/pkgcheck/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Plan output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatTOML = "toml"
	formatJSON = "json"
)

// newPlanCommand creates the plan command.
func newPlanCommand(s *session) *cobra.Command {
	var format string
	var withCoverage bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the steps of the test rule without running them",
		Long: `Print the resolved steps of the test rule without running them.

Formats:
  text  one line per step (default)
  yaml  rule as a YAML document
  toml  rule as a TOML document
  json  rule as indented JSON`,
		Example: `  pkgcheck plan
  pkgcheck plan -o json`,
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

			out, err := c.ShowPlanUseCase().Execute(cmd.Context(), usecase.ShowPlanInput{Coverage: coverage})
			if err != nil {
				return err
			}
			return renderPlan(cmd.OutOrStdout(), out.Rule, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", formatText, "Output format: text, yaml, toml or json")
	cmd.Flags().BoolVar(&withCoverage, "with-coverage", false, "Select the coverage branch (default from "+domain.EnvWithCoverage+"=TRUE)")

	return cmd
}

// renderPlan writes rule to w in the given format.
func renderPlan(w io.Writer, rule domain.Rule, format string) error {
	switch format {
	case formatText, "":
		return renderPlanText(w, rule)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rule); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatTOML:
		if err := toml.NewEncoder(w).Encode(rule); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rule); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q (want text, yaml, toml or json)", domain.ErrInvalidFormat, format)
	}
}

func renderPlanText(w io.Writer, rule domain.Rule) error {
	header := fmt.Sprintf("Rule %q", rule.Name)
	if rule.Coverage {
		header += " (coverage)"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for i, step := range rule.Steps {
		if _, err := fmt.Fprintf(w, "  %d. %-10s %s\n", i+1, step.Name, step.Command.String()); err != nil {
			return err
		}
	}
	return nil
}
