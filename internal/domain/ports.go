package domain

import (
	"context"
	"io"
	"time"
)

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// ExecuteWithContext runs cmd to completion, streaming its output to stdout and stderr.
	// A non-zero exit is reported as an error carrying the exit code (see ExitCodeOf).
	ExecuteWithContext(ctx context.Context, cmd *ExecCommand, stdout, stderr io.Writer) error
}

// ProjectLocator resolves the project root for a directory.
type ProjectLocator interface {
	// Root returns the root of the project containing dir.
	Root(dir string) (string, error)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- repo).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration with some sources ignored.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions selects which config sources are merged.
type LoadConfigOptions struct {
	IgnoreGlobal bool
	IgnoreRepo   bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetRepoConfigInfo returns information about the repository config file.
	GetRepoConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitRepoConfig writes the config template to the repository config path.
	InitRepoConfig(cfg *Config) error

	// InitGlobalConfig writes the config template to the global config path.
	InitGlobalConfig(cfg *Config) error
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger writes run logs. step is empty for rule-level entries.
type Logger interface {
	Info(step, category, msg string)
	Debug(step, category, msg string)
	Warn(step, category, msg string)
	Error(step, category, msg string)
}

// StepObserver is notified as a rule progresses.
type StepObserver interface {
	StepStarted(index, total int, step Step)
	StepFinished(index, total int, result StepResult)
}

// Clock provides time operations for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
