// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/runoshun/pkgcheck/internal/domain"
)

// MockClock is a test double for domain.Clock.
// Each call to Now advances the clock by Step.
type MockClock struct {
	NowTime time.Time
	Step    time.Duration
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	t := m.NowTime
	m.NowTime = m.NowTime.Add(m.Step)
	return t
}

// ExitError is an error carrying a process exit code, as returned by os/exec.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockCommandExecutor struct {
	Errs     map[string]error // Error returned per program name
	Output   map[string]string
	ExecFunc func(ctx context.Context, cmd *domain.ExecCommand) error
	Calls    []domain.ExecCommand
	mu       sync.Mutex
}

// NewMockCommandExecutor creates a new MockCommandExecutor where every command succeeds.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		Errs:   make(map[string]error),
		Output: make(map[string]string),
	}
}

// Ensure MockCommandExecutor implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*MockCommandExecutor)(nil)

// ExecuteWithContext records the call, writes configured output and returns the configured error.
func (m *MockCommandExecutor) ExecuteWithContext(ctx context.Context, cmd *domain.ExecCommand, stdout, _ io.Writer) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, *cmd)
	m.mu.Unlock()

	if out, ok := m.Output[cmd.Program]; ok && stdout != nil {
		_, _ = io.WriteString(stdout, out)
	}
	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, cmd)
	}
	return m.Errs[cmd.Program]
}

// Programs returns the program names of the recorded calls, in order.
func (m *MockCommandExecutor) Programs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = c.Program
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config   *domain.Config
	LoadErr  error
	LastOpts domain.LoadConfigOptions
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	return m.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions records opts and returns the configured config or error.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.LastOpts = opts
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitRepoErr      error
	InitGlobalErr    error
	InitConfig       *domain.Config
	RepoConfigInfo   domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitRepoCalled   bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		RepoConfigInfo: domain.ConfigInfo{
			Path:   "/test/.pkgcheck.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/pkgcheck/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetRepoConfigInfo returns the configured repo config info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo {
	return m.RepoConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitRepoConfig records the call and returns configured error.
func (m *MockConfigManager) InitRepoConfig(cfg *domain.Config) error {
	m.InitRepoCalled = true
	m.InitConfig = cfg
	return m.InitRepoErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	return m.InitGlobalErr
}

// LogEntry is a message recorded by MockLogger.
type LogEntry struct {
	Level    string
	Step     string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level, step, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Step: step, Category: category, Msg: msg})
}

// Info records an info message.
func (m *MockLogger) Info(step, category, msg string) { m.record("INFO", step, category, msg) }

// Debug records a debug message.
func (m *MockLogger) Debug(step, category, msg string) { m.record("DEBUG", step, category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(step, category, msg string) { m.record("WARN", step, category, msg) }

// Error records an error message.
func (m *MockLogger) Error(step, category, msg string) { m.record("ERROR", step, category, msg) }

// ByCategory returns the entries with the given category.
func (m *MockLogger) ByCategory(category string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// MockStepObserver is a test double for domain.StepObserver.
type MockStepObserver struct {
	Started  []string
	Finished []domain.StepResult
}

// Ensure MockStepObserver implements domain.StepObserver interface.
var _ domain.StepObserver = (*MockStepObserver)(nil)

// StepStarted records the step name.
func (m *MockStepObserver) StepStarted(_, _ int, step domain.Step) {
	m.Started = append(m.Started, step.Name)
}

// StepFinished records the result.
func (m *MockStepObserver) StepFinished(_, _ int, result domain.StepResult) {
	m.Finished = append(m.Finished, result)
}

// MockProjectLocator is a test double for domain.ProjectLocator.
type MockProjectLocator struct {
	Err      error
	RootPath string
}

// Ensure MockProjectLocator implements domain.ProjectLocator interface.
var _ domain.ProjectLocator = (*MockProjectLocator)(nil)

// Root returns the configured root, or dir when none is set.
func (m *MockProjectLocator) Root(dir string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.RootPath == "" {
		return dir, nil
	}
	return m.RootPath, nil
}
