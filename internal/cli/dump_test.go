package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execDump(t *testing.T, format string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewDumpCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestDumpWriteListShow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "store.db")

	// Duplicates and unreduced forms collapse to one interned value.
	buf, err := execDump(t, "json", "--db", db,
		"--value", "1/2", "--value", "2/4", "--value", "-3/1")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	runID, ok := data["run_id"].(string)
	require.True(t, ok)
	assert.Equal(t, float64(2), data["population"])

	buf, err = execDump(t, "text", "--db", db, "--list")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), runID)
	assert.Contains(t, buf.String(), "1 run(s)")

	buf, err = execDump(t, "text", "--db", db, "--show", runID)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1/2")
	assert.Contains(t, buf.String(), "-3/1")
}

func TestDumpBadValueLiteral(t *testing.T) {
	db := filepath.Join(t.TempDir(), "store.db")

	buf, err := execDump(t, "text", "--db", db, "--value", "1/0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), ErrCodeBadInput)
}

func TestDumpShowUnknownRun(t *testing.T) {
	db := filepath.Join(t.TempDir(), "store.db")
	_, err := execDump(t, "text", "--db", db)
	require.NoError(t, err)

	_, err = execDump(t, "text", "--db", db, "--show", "not-a-run")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
