package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config file names and directories.
const (
	ConfigFileName     = "config.toml"    // Global config file name
	RepoConfigFileName = ".pkgcheck.toml" // Repository config file name, at the project root
	AppDirName         = "pkgcheck"       // Directory under XDG_CONFIG_HOME
	StateDirName       = ".pkgcheck"      // Directory under the project root for logs
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Test     TestConfig    `toml:"test"`
	Project  ProjectConfig `toml:"project"`
	Lint     ToolConfig    `toml:"lint"`
	Manifest ToolConfig    `toml:"manifest"`
	Log      LogConfig     `toml:"log"`
}

// TestConfig holds the test runner settings from the [test] section.
type TestConfig struct {
	Python string   `toml:"python"` // Interpreter used to run the setup script
	Dir    string   `toml:"dir"`    // Directory, relative to the project root, the suite runs from
	Args   []string `toml:"args"`   // Arguments passed to the interpreter
}

// ProjectConfig names the package files the quality gates look at.
type ProjectConfig struct {
	Package   string `toml:"package"`    // Main package directory
	SetupFile string `toml:"setup_file"` // Build descriptor
	Checklist string `toml:"checklist"`  // Checklist script, run as an executable
}

// ToolConfig describes an external tool invocation.
type ToolConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args,omitempty"`
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns the configuration that reproduces the stock test rule.
func NewDefaultConfig() *Config {
	return &Config{
		Test: TestConfig{
			Python: "python",
			Dir:    "ci",
			Args:   []string{"setup.py", "test"},
		},
		Project: ProjectConfig{
			Package:   "skbio",
			SetupFile: "setup.py",
			Checklist: "checklist.py",
		},
		Lint: ToolConfig{
			Command: "flake8",
		},
		Manifest: ToolConfig{
			Command: "check-manifest",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that every step of the rule can be built.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"test.python", c.Test.Python},
		{"project.package", c.Project.Package},
		{"project.setup_file", c.Project.SetupFile},
		{"project.checklist", c.Project.Checklist},
		{"lint.command", c.Lint.Command},
		{"manifest.command", c.Manifest.Command},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, r.key)
		}
	}
	if c.Test.Dir != "" && !filepath.IsLocal(c.Test.Dir) {
		return fmt.Errorf("%w: test.dir %q must be a path inside the project", ErrInvalidConfig, c.Test.Dir)
	}
	return nil
}

// RepoConfigPath returns the repository config path.
func RepoConfigPath(root string) string {
	return filepath.Join(root, RepoConfigFileName)
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// StateDir returns the directory holding run logs for a project.
func StateDir(root string) string {
	return filepath.Join(root, StateDirName)
}

// RenderConfigTemplate renders the commented config file written by "config init".
func RenderConfigTemplate(cfg *Config) (string, error) {
	tmpl, err := template.New("config").Funcs(template.FuncMap{
		"quote":     strconv.Quote,
		"quoteList": quoteList,
	}).Parse(configTemplateContent)
	if err != nil {
		return "", fmt.Errorf("parse config template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return "", fmt.Errorf("render config template: %w", err)
	}
	return buf.String(), nil
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
