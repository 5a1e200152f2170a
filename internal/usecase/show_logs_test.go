package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/pkgcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestShowLogs_Execute_RunLog(t *testing.T) {
	stateDir := t.TempDir()
	logContent := "line1\nline2\nline3\n"
	writeLog(t, domain.GlobalLogPath(stateDir), logContent)

	out, err := NewShowLogs(stateDir).Execute(context.Background(), ShowLogsInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.GlobalLogPath(stateDir), out.LogPath)
	assert.Equal(t, logContent, out.Content)
}

func TestShowLogs_Execute_Step(t *testing.T) {
	stateDir := t.TempDir()
	writeLog(t, domain.StepLogPath(stateDir, domain.StepLint), "lint log\n")

	out, err := NewShowLogs(stateDir).Execute(context.Background(), ShowLogsInput{Step: domain.StepLint})

	require.NoError(t, err)
	assert.Equal(t, domain.StepLogPath(stateDir, domain.StepLint), out.LogPath)
	assert.Equal(t, "lint log\n", out.Content)
}

func TestShowLogs_Execute_LastLines(t *testing.T) {
	stateDir := t.TempDir()
	writeLog(t, domain.GlobalLogPath(stateDir), "line1\nline2\nline3\nline4\nline5\n")

	out, err := NewShowLogs(stateDir).Execute(context.Background(), ShowLogsInput{Lines: 2})

	require.NoError(t, err)
	assert.Equal(t, "line4\nline5\n", out.Content)
}

func TestShowLogs_Execute_LinesMoreThanFile(t *testing.T) {
	stateDir := t.TempDir()
	writeLog(t, domain.GlobalLogPath(stateDir), "only\n")

	out, err := NewShowLogs(stateDir).Execute(context.Background(), ShowLogsInput{Lines: 10})

	require.NoError(t, err)
	assert.Equal(t, "only\n", out.Content)
}

func TestShowLogs_Execute_NoLogFile(t *testing.T) {
	_, err := NewShowLogs(t.TempDir()).Execute(context.Background(), ShowLogsInput{Step: domain.StepManifest})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoLog)
	assert.Contains(t, err.Error(), "step-manifest.log")
}
