package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/runoshun/pkgcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	env := newTestEnv()

	stdout, _, err := env.run(t, "config")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Available Commands:")
	assert.Contains(t, stdout, "show")
	assert.Contains(t, stdout, "template")
	assert.Contains(t, stdout, "init")
}

func TestConfigShow(t *testing.T) {
	env := newTestEnv()
	env.manager.RepoConfigInfo.Exists = true

	stdout, _, err := env.run(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[Loaded from]")
	assert.Contains(t, stdout, "- /home/test/.config/pkgcheck/config.toml (not found)")
	assert.Contains(t, stdout, "- /test/.pkgcheck.toml\n")
	assert.Contains(t, stdout, "[Effective Config]")
	assert.Contains(t, stdout, "[test]")
	assert.Contains(t, stdout, "python = 'python'")
	assert.Contains(t, stdout, "[manifest]")
	assert.Contains(t, stdout, "command = 'check-manifest'")
}

func TestConfigShow_IgnoreFlags(t *testing.T) {
	env := newTestEnv()

	stdout, _, err := env.run(t, "config", "show", "--ignore-global", "--ignore-repo")

	require.NoError(t, err)
	assert.True(t, env.loader.LastOpts.IgnoreGlobal)
	assert.True(t, env.loader.LastOpts.IgnoreRepo)
	assert.NotContains(t, stdout, "config.toml")
	assert.NotContains(t, stdout, ".pkgcheck.toml")
}

func TestConfigShow_NoGlobalDir(t *testing.T) {
	env := newTestEnv()
	env.manager.GlobalConfigInfo = domain.ConfigInfo{}

	stdout, _, err := env.run(t, "config", "show")

	require.NoError(t, err)
	assert.NotContains(t, stdout, "- \n")
	assert.NotContains(t, stdout, "-  (not found)")
}

func TestConfigShow_LoadError(t *testing.T) {
	env := newTestEnv()
	env.loader.LoadErr = fmt.Errorf("%w: test.python cannot be empty", domain.ErrInvalidConfig)

	_, _, err := env.run(t, "config", "show")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestConfigInit(t *testing.T) {
	env := newTestEnv()

	stdout, _, err := env.run(t, "config", "init")

	require.NoError(t, err)
	assert.True(t, env.manager.InitRepoCalled)
	assert.False(t, env.manager.InitGlobalCalled)
	assert.Equal(t, domain.NewDefaultConfig(), env.manager.InitConfig)
	assert.Equal(t, "Created config file: /test/.pkgcheck.toml\n", stdout)
}

func TestConfigInit_Global(t *testing.T) {
	env := newTestEnv()

	stdout, _, err := env.run(t, "config", "init", "--global")

	require.NoError(t, err)
	assert.True(t, env.manager.InitGlobalCalled)
	assert.Contains(t, stdout, "/home/test/.config/pkgcheck/config.toml")
}

func TestConfigInit_AlreadyExists(t *testing.T) {
	env := newTestEnv()
	env.manager.InitRepoErr = domain.ErrConfigExists

	_, _, err := env.run(t, "config", "init")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigExists))
}

func TestConfigInit_SkipsWarnings(t *testing.T) {
	env := newTestEnv()
	env.loader.Config.Warnings = []string{"unknown section: extra"}

	_, stderr, err := env.run(t, "config", "init")

	require.NoError(t, err)
	assert.NotContains(t, stderr, "Warning:")
}

func TestConfigTemplate(t *testing.T) {
	env := newTestEnv()
	env.loader.Config.Warnings = []string{"unknown section: extra"}

	stdout, stderr, err := env.run(t, "config", "template")

	require.NoError(t, err)
	assert.Contains(t, stdout, "# pkgcheck configuration")
	assert.Contains(t, stdout, `dir = "ci"`)
	assert.Contains(t, stdout, `command = "flake8"`)
	assert.NotContains(t, stderr, "Warning:")
	assert.False(t, env.manager.InitRepoCalled)
}
