package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execEval(t *testing.T, format string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewEvalCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestEvalAddText(t *testing.T) {
	buf, err := execEval(t, "text", "+", "1/2", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "5/6\n", buf.String())
}

func TestEvalJSON(t *testing.T) {
	buf, err := execEval(t, "json", "*", "2/3", "3/4")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "*", data["op"])
	assert.Equal(t, "value", data["outcome"])
	assert.Equal(t, "1/2", data["result"])
}

func TestEvalConstructorTakesIntegers(t *testing.T) {
	buf, err := execEval(t, "text", "rational", "6", "-8")
	require.NoError(t, err)
	assert.Equal(t, "-3/4\n", buf.String())
}

func TestEvalDivisionByZero(t *testing.T) {
	buf, err := execEval(t, "text", "/", "1/1", "0/1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), ErrCodeEvalAbsent)
}

func TestEvalUnsupportedBranch(t *testing.T) {
	buf, err := execEval(t, "text", "log", "2/1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), ErrCodeUnsupported)
}

func TestEvalUnknownOperator(t *testing.T) {
	_, err := execEval(t, "text", "frobnicate", "1/2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEvalBadLiteral(t *testing.T) {
	_, err := execEval(t, "text", "+", "1/2", "pi")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEvalComparisonPrintsUnit(t *testing.T) {
	buf, err := execEval(t, "text", "<", "1/3", "1/2")
	require.NoError(t, err)
	assert.Equal(t, "()\n", buf.String())
}
