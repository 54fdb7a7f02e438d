package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdata = "../../internal/scenario/testdata"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRunPass(t *testing.T) {
	out, err := execute(t, "run", "--log-level", "error",
		filepath.Join(testdata, "counter.toml"),
		filepath.Join(testdata, "fanout.yaml"),
	)
	require.NoError(t, err)

	assert.Contains(t, out, "PASS counter: states=[6] expect=6")
	assert.Contains(t, out, "PASS fanout: states=[14 14 14] expect=14")
}

func TestRunTrace(t *testing.T) {
	out, err := execute(t, "run", "--log-level", "error", "--trace", filepath.Join(testdata, "fanout.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "  INCREMENT\n")
	assert.Contains(t, out, "  ADD\n")
}

func TestRunMetrics(t *testing.T) {
	out, err := execute(t, "run", "--log-level", "error", "--metrics", filepath.Join(testdata, "fanout.yaml"))
	require.NoError(t, err)

	assert.Contains(t, out, "# TYPE reduxact_store_dispatches_total counter")
	file := filepath.Join(testdata, "fanout.yaml")
	assert.Contains(t, out, `reduxact_store_dispatches_total{file="`+file+`",scenario="fanout",store="2",type="INCREMENT"} 1`)
	assert.Contains(t, out, "reduxact_store_dispatch_seconds_average{")
	assert.Contains(t, out, "reduxact_store_panics_total")
}

func TestRunMetricsSameScenarioName(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	tomlFile := filepath.Join(testdata, "counter.toml")
	yamlFile := filepath.Join(testdata, "counter.yaml")
	cmd.SetArgs([]string{"run", "--log-level", "warn", "--log-format", "json", "--metrics", tomlFile, yamlFile})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, `reduxact_store_panics_total{file="`+tomlFile+`",scenario="counter",store="0"} 0`)
	assert.Contains(t, out, `reduxact_store_panics_total{file="`+yamlFile+`",scenario="counter",store="0"} 0`)
	assert.NotContains(t, stderr.String(), "registering metrics")
}

func TestRunFailures(t *testing.T) {
	dir := t.TempDir()
	failing := filepath.Join(dir, "failing.yaml")
	require.NoError(t, os.WriteFile(failing, []byte("initial: 1\nexpect: 2\n"), 0o644))

	out, err := execute(t, "run", "--log-level", "error", failing, filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "FAIL failing: states=[1] expect=2")
	assert.Contains(t, out, "ERROR "+filepath.Join(dir, "missing.toml"))
}

func TestRunInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "run", "--log-level", "loud", filepath.Join(testdata, "counter.toml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errFailed)
}

func TestRunRequiresFiles(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "reduxact dev")
}
