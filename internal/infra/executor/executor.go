// Package executor provides command execution functionality.
package executor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/runoshun/pkgcheck/internal/domain"
)

// waitDelay bounds how long a cancelled child may keep its output pipes open.
const waitDelay = 5 * time.Second

// Client implements domain.CommandExecutor interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// ExecuteWithContext runs a command with context and custom stdout/stderr writers.
// The command is started directly, never through a shell. On cancellation the
// child is sent SIGINT first and killed after waitDelay.
func (c *Client) ExecuteWithContext(ctx context.Context, cmd *domain.ExecCommand, stdout, stderr io.Writer) error {
	if cmd == nil || cmd.Program == "" {
		return domain.ErrEmptyCommand
	}

	// #nosec G204 - cmd.Program and cmd.Args come from the rule definition
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		if _, err := os.Stat(cmd.Dir); err != nil {
			return fmt.Errorf("working directory: %w", err)
		}
		execCmd.Dir = cmd.Dir
	}
	if len(cmd.Env) > 0 {
		execCmd.Env = append(os.Environ(), cmd.Env...)
	}
	execCmd.Stdout = stdout
	execCmd.Stderr = stderr
	execCmd.Cancel = func() error {
		return execCmd.Process.Signal(syscall.SIGINT)
	}
	execCmd.WaitDelay = waitDelay
	return execCmd.Run()
}
