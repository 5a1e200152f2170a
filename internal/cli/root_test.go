package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/runoshun/pkgcheck/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_NoArgs_ShowsHelp(t *testing.T) {
	env := newTestEnv()

	stdout, _, err := env.run(t)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Rules:")
	assert.Contains(t, stdout, "Setup Commands:")
	assert.Contains(t, stdout, "test")
	assert.Contains(t, stdout, "plan")
	assert.Contains(t, stdout, "logs")
	assert.Contains(t, stdout, "config")
	assert.Empty(t, env.dirs, "help must not build the container")
}

func TestExecute_Version(t *testing.T) {
	env := newTestEnv()

	stdout, _, err := env.run(t, "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "pkgcheck version test")
}

func TestExecute_PrintsConfigWarnings(t *testing.T) {
	env := newTestEnv()
	env.loader.Config.Warnings = []string{"/proj/.pkgcheck.toml: unknown key in [lint]: colour"}

	_, stderr, err := env.run(t, "plan")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: /proj/.pkgcheck.toml: unknown key in [lint]: colour")
}

func TestExecute_RootFlag(t *testing.T) {
	env := newTestEnv()

	_, _, err := env.run(t, "-C", "/somewhere/else", "plan")

	require.NoError(t, err)
	require.Len(t, env.dirs, 1)
	assert.Equal(t, "/somewhere/else", env.dirs[0])
	assert.Equal(t, []bool{false}, env.detect, "an explicit root is used as given")
}

func TestExecute_DefaultRootDetectsRepository(t *testing.T) {
	env := newTestEnv()
	wd, err := os.Getwd()
	require.NoError(t, err)

	_, _, err = env.run(t, "plan")

	require.NoError(t, err)
	assert.Equal(t, []string{wd}, env.dirs)
	assert.Equal(t, []bool{true}, env.detect)
}

func TestExecute_RootFlagSubdirectoryPackage(t *testing.T) {
	top := t.TempDir()
	_, err := git.PlainInit(top, false)
	require.NoError(t, err)
	pkg := filepath.Join(top, "python", "mypkg")
	require.NoError(t, os.MkdirAll(filepath.Join(pkg, "ci"), 0o755))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var roots []string
	factory := func(dir string, detectRepo bool) (*app.Container, error) {
		c, err := app.Open(dir, detectRepo)
		if err == nil {
			roots = append(roots, c.Config.Root)
		}
		return c, err
	}

	var stdout, stderr bytes.Buffer
	require.NoError(t, Execute([]string{"--root", pkg, "plan"}, &stdout, &stderr, factory, "test"))

	require.Len(t, roots, 1)
	assert.Equal(t, pkg, roots[0])
}

func TestExecute_ContainerCreatedOnce(t *testing.T) {
	env := newTestEnv()

	_, _, err := env.run(t, "test")

	require.NoError(t, err)
	assert.Len(t, env.dirs, 1)
}

func TestExecute_FactoryError(t *testing.T) {
	factoryErr := errors.New("boom")
	failing := func(string, bool) (*app.Container, error) { return nil, factoryErr }

	var stdout, stderr bytes.Buffer
	err := Execute([]string{"plan"}, &stdout, &stderr, failing, "test")

	require.Error(t, err)
	assert.ErrorIs(t, err, factoryErr)
	assert.Contains(t, err.Error(), "failed to initialize")
}

func TestExecute_UnknownCommand(t *testing.T) {
	env := newTestEnv()

	_, _, err := env.run(t, "deploy")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRootCommand_Groups(t *testing.T) {
	root := newRootCommand(&session{newContainer: newTestEnv().factory}, "test")

	groups := map[string]string{}
	for _, cmd := range root.Commands() {
		groups[cmd.Name()] = cmd.GroupID
	}
	assert.Equal(t, groupRules, groups["test"])
	assert.Equal(t, groupRules, groups["plan"])
	assert.Equal(t, groupRules, groups["logs"])
	assert.Equal(t, groupSetup, groups["config"])
}
