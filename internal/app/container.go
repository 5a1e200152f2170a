// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/pkgcheck/internal/domain"
	"github.com/runoshun/pkgcheck/internal/infra/config"
	"github.com/runoshun/pkgcheck/internal/infra/executor"
	"github.com/runoshun/pkgcheck/internal/infra/logging"
	"github.com/runoshun/pkgcheck/internal/infra/project"
	"github.com/runoshun/pkgcheck/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	Root     string // Project root the rule runs from
	StateDir string // Path to .pkgcheck directory (run logs)
}

// newConfig creates a Config for a project root.
func newConfig(root string) Config {
	return Config{
		Root:     root,
		StateDir: domain.StateDir(root),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor      domain.CommandExecutor
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	RunLog        domain.Logger
	Clock         domain.Clock

	// Pointer fields
	Logger *slog.Logger

	closers []func() error

	// Configuration
	Config Config
}

// New creates a new Container for the project containing dir.
func New(dir string) (*Container, error) {
	return NewWithLocator(dir, project.NewLocator())
}

// Open creates a Container for dir. With detectRepo set the root is the
// enclosing git worktree of dir, otherwise dir itself.
func Open(dir string, detectRepo bool) (*Container, error) {
	if detectRepo {
		return New(dir)
	}
	return NewWithLocator(dir, project.NewDirLocator())
}

// NewWithLocator creates a new Container, resolving the project root with locator.
func NewWithLocator(dir string, locator domain.ProjectLocator) (*Container, error) {
	return newWithLocator(dir, locator, os.Stderr)
}

// newWithLocator builds the container with the process logger writing to stderr.
func newWithLocator(dir string, locator domain.ProjectLocator, stderr io.Writer) (*Container, error) {
	root, err := locator.Root(dir)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(root)

	configLoader := config.NewLoader(cfg.Root)
	level := slog.LevelInfo
	if appConfig, err := configLoader.Load(); err == nil { // errors surface when a command loads config
		level = logging.ParseLevel(appConfig.Log.Level)
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))
	logger.Debug("project root resolved", "dir", dir, "root", cfg.Root, "state_dir", cfg.StateDir)
	runLog := logging.New(cfg.StateDir, level)

	return &Container{
		Executor:      executor.NewClient(),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.Root),
		RunLog:        runLog,
		Clock:         domain.RealClock{},
		Logger:        logger,
		Config:        cfg,
		closers:       []func() error{runLog.Close},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	exec domain.CommandExecutor,
	loader domain.ConfigLoader,
	manager domain.ConfigManager,
	runLog domain.Logger,
	clock domain.Clock,
	logger *slog.Logger,
) *Container {
	return &Container{
		Executor:      exec,
		ConfigLoader:  loader,
		ConfigManager: manager,
		RunLog:        runLog,
		Clock:         clock,
		Logger:        logger,
		Config:        cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	var lastErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			lastErr = err
		}
	}
	c.closers = nil
	return lastErr
}

// UseCase factory methods

// RunRuleUseCase returns a new RunRule use case.
func (c *Container) RunRuleUseCase() *usecase.RunRule {
	return usecase.NewRunRule(c.Executor, c.ConfigLoader, c.RunLog, c.Clock)
}

// ShowPlanUseCase returns a new ShowPlan use case.
func (c *Container) ShowPlanUseCase() *usecase.ShowPlan {
	return usecase.NewShowPlan(c.ConfigLoader)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Config.StateDir)
}
