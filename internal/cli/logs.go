package cli

import (
	"fmt"

	"github.com/runoshun/pkgcheck/internal/usecase"
	"github.com/spf13/cobra"
)

// newLogsCommand creates the logs command.
func newLogsCommand(s *session) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs [step]",
		Short: "Show logs of previous runs",
		Long: `Show the run log, or the log of a single step.

Every run appends to .pkgcheck/logs/pkgcheck.log and to one
step-<name>.log per step. The logs record step commands, exit status and
durations; step output itself goes to the terminal.`,
		Example: `  pkgcheck logs
  pkgcheck logs lint -n 20`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.Container()
			if err != nil {
				return err
			}

			in := usecase.ShowLogsInput{Lines: lines}
			if len(args) == 1 {
				in.Step = args[0]
			}

			out, err := c.ShowLogsUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Number of lines to show from the end (0 = all)")

	return cmd
}
