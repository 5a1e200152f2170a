// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/pkgcheck/internal/domain"
)

// EnvLogLevel overrides [log] level from every config file.
const EnvLogLevel = "PKGCHECK_LOG_LEVEL"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	getenv        func(string) string
	root          string // Project root holding .pkgcheck.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/pkgcheck)
}

// NewLoader creates a new Loader.
func NewLoader(root string) *Loader {
	return &Loader{
		root:          root,
		globalConfDir: defaultGlobalConfigDir(),
		getenv:        os.Getenv,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(root, globalConfDir string) *Loader {
	return &Loader{
		root:          root,
		globalConfDir: globalConfDir,
		getenv:        func(string) string { return "" },
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (default <- global <- repo).
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if !opts.IgnoreGlobal && l.globalConfDir != "" {
		if err := l.applyFile(cfg, filepath.Join(l.globalConfDir, domain.ConfigFileName)); err != nil {
			return nil, err
		}
	}
	if !opts.IgnoreRepo && l.root != "" {
		if err := l.applyFile(cfg, domain.RepoConfigPath(l.root)); err != nil {
			return nil, err
		}
	}

	if lvl := l.getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFile merges a config file into cfg. A missing file is not an error.
func (l *Loader) applyFile(cfg *domain.Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	warnings := applyRaw(cfg, raw)
	for _, w := range warnings {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s: %s", path, w))
	}
	return nil
}

// stringKeys and listKeys map "section.key" to the field they set.
var stringKeys = map[string]func(*domain.Config, string){
	"test.python":        func(c *domain.Config, v string) { c.Test.Python = v },
	"test.dir":           func(c *domain.Config, v string) { c.Test.Dir = v },
	"project.package":    func(c *domain.Config, v string) { c.Project.Package = v },
	"project.setup_file": func(c *domain.Config, v string) { c.Project.SetupFile = v },
	"project.checklist":  func(c *domain.Config, v string) { c.Project.Checklist = v },
	"lint.command":       func(c *domain.Config, v string) { c.Lint.Command = v },
	"manifest.command":   func(c *domain.Config, v string) { c.Manifest.Command = v },
	"log.level":          func(c *domain.Config, v string) { c.Log.Level = v },
}

var listKeys = map[string]func(*domain.Config, []string){
	"test.args":     func(c *domain.Config, v []string) { c.Test.Args = v },
	"lint.args":     func(c *domain.Config, v []string) { c.Lint.Args = v },
	"manifest.args": func(c *domain.Config, v []string) { c.Manifest.Args = v },
}

var knownSections = map[string]bool{
	"test":     true,
	"project":  true,
	"lint":     true,
	"manifest": true,
	"log":      true,
}

// applyRaw sets every recognized key of raw on cfg and returns warnings for the rest.
func applyRaw(cfg *domain.Config, raw map[string]any) []string {
	var warnings []string

	for section, value := range raw {
		if !knownSections[section] {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[%s] must be a table", section))
			continue
		}
		for k, v := range m {
			key := section + "." + k
			if set, ok := stringKeys[key]; ok {
				s, ok := v.(string)
				if !ok {
					warnings = append(warnings, fmt.Sprintf("invalid value for %s: expected string", key))
					continue
				}
				set(cfg, s)
				continue
			}
			if set, ok := listKeys[key]; ok {
				list, ok := toStringList(v)
				if !ok {
					warnings = append(warnings, fmt.Sprintf("invalid value for %s: expected array of strings", key))
					continue
				}
				set(cfg, list)
				continue
			}
			warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
		}
	}

	sort.Strings(warnings)
	return warnings
}

func toStringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
