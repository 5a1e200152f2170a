package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/runoshun/pkgcheck/internal/app"
	"github.com/runoshun/pkgcheck/internal/testutil"
)

// testEnv bundles the mocks behind a container built for one CLI invocation.
type testEnv struct {
	executor *testutil.MockCommandExecutor
	loader   *testutil.MockConfigLoader
	manager  *testutil.MockConfigManager
	runLog   *testutil.MockLogger
	stateDir string
	dirs     []string // dirs passed to the factory
	detect   []bool   // detectRepo passed to the factory
}

func newTestEnv() *testEnv {
	return &testEnv{
		executor: testutil.NewMockCommandExecutor(),
		loader:   testutil.NewMockConfigLoader(),
		manager:  testutil.NewMockConfigManager(),
		runLog:   &testutil.MockLogger{},
		stateDir: "/proj/.pkgcheck",
	}
}

func (e *testEnv) factory(dir string, detectRepo bool) (*app.Container, error) {
	e.dirs = append(e.dirs, dir)
	e.detect = append(e.detect, detectRepo)
	clock := &testutil.MockClock{NowTime: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	return app.NewWithDeps(
		app.Config{Root: "/proj", StateDir: e.stateDir},
		e.executor,
		e.loader,
		e.manager,
		e.runLog,
		clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	), nil
}

// run executes the CLI with args and returns stdout, stderr and the error.
func (e *testEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(args, &stdout, &stderr, e.factory, "test")
	return stdout.String(), stderr.String(), err
}

// withEnv replaces getenv for the duration of the test.
func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	orig := getenv
	getenv = func(key string) string { return env[key] }
	t.Cleanup(func() { getenv = orig })
}
