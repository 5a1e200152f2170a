package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/pkgcheck/internal/domain"
)

// ShowLogsInput contains the parameters for showing run logs.
type ShowLogsInput struct {
	Step  string // Step to show logs for; empty shows the run log
	Lines int    // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing run logs.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Log file content
}

// ShowLogs is the use case for viewing the logs of previous runs.
type ShowLogs struct {
	stateDir string
}

// NewShowLogs creates a new ShowLogs use case.
func NewShowLogs(stateDir string) *ShowLogs {
	return &ShowLogs{
		stateDir: stateDir,
	}
}

// Execute reads and returns the log content.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	logPath := domain.GlobalLogPath(uc.stateDir)
	if in.Step != "" {
		logPath = domain.StepLogPath(uc.stateDir, in.Step)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoLog, logPath)
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	// If lines is specified, get only the last N lines
	result := string(content)
	if in.Lines > 0 {
		lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
		if len(lines) > in.Lines {
			lines = lines[len(lines)-in.Lines:]
		}
		result = strings.Join(lines, "\n") + "\n"
	}

	return &ShowLogsOutput{
		LogPath: logPath,
		Content: result,
	}, nil
}
