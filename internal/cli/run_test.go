package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func harnessScenarioDir() string {
	return filepath.Join("..", "harness", "testdata", "scenarios")
}

func execRun(t *testing.T, format, dir string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRunCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{dir})
	return buf, cmd.Execute()
}

func TestRunScenariosPass(t *testing.T) {
	buf, err := execRun(t, "text", harnessScenarioDir())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "✓ arithmetic")
	assert.Contains(t, output, "✓ domains")
	assert.Contains(t, output, "2 passed, 0 failed")
}

func TestRunScenarioFailure(t *testing.T) {
	dir := t.TempDir()
	scenario := `name: wrong
eval:
  - op: "+"
    args: ["1/2", "1/2"]
    want: "2/2"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrong.yaml"), []byte(scenario), 0o644))

	buf, err := execRun(t, "text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "✗ wrong")
	assert.Contains(t, buf.String(), "0 passed, 1 failed")
}

func TestRunEmptyDirectory(t *testing.T) {
	_, err := execRun(t, "text", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
