package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/pkgcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetConfigInfo(t *testing.T) {
	root := t.TempDir()
	globalDir := t.TempDir()
	m := NewManagerWithGlobalDir(root, globalDir)

	info := m.GetRepoConfigInfo()
	assert.Equal(t, domain.RepoConfigPath(root), info.Path)
	assert.False(t, info.Exists)

	writeFile(t, domain.RepoConfigPath(root), "[log]\nlevel = \"debug\"\n")
	info = m.GetRepoConfigInfo()
	assert.True(t, info.Exists)
	assert.Contains(t, info.Content, "debug")

	global := m.GetGlobalConfigInfo()
	assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), global.Path)
	assert.False(t, global.Exists)
}

func TestManager_GetGlobalConfigInfo_NoDir(t *testing.T) {
	m := NewManagerWithGlobalDir(t.TempDir(), "")
	assert.Equal(t, domain.ConfigInfo{}, m.GetGlobalConfigInfo())
}

func TestManager_InitRepoConfig(t *testing.T) {
	root := t.TempDir()
	m := NewManagerWithGlobalDir(root, t.TempDir())

	require.NoError(t, m.InitRepoConfig(domain.NewDefaultConfig()))

	// The written template loads back to the defaults.
	cfg, err := NewLoaderWithGlobalDir(root, t.TempDir()).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)

	err = m.InitRepoConfig(domain.NewDefaultConfig())
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "nested", "pkgcheck")
	m := NewManagerWithGlobalDir(t.TempDir(), globalDir)

	require.NoError(t, m.InitGlobalConfig(domain.NewDefaultConfig()))

	_, err := os.Stat(filepath.Join(globalDir, domain.ConfigFileName))
	assert.NoError(t, err)
}

func TestManager_InitGlobalConfig_NoDir(t *testing.T) {
	m := NewManagerWithGlobalDir(t.TempDir(), "")
	assert.Error(t, m.InitGlobalConfig(domain.NewDefaultConfig()))
}
