package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkcalc/internal/config"
	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/tasks/calculator"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	base := []string{"--config", filepath.Join(t.TempDir(), "none.toml"), "--log-level", "error"}
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalPrintsResults(t *testing.T) {
	out, err := execute(t, "eval", "7+3", "2*(3+4)", "0.1+0.2")
	require.NoError(t, err)
	assert.Equal(t, "10\n14\n0.30000000000000004\n", out)
}

func TestEvalHistory(t *testing.T) {
	out, err := execute(t, "eval", "--history", "1+1", "2+2")
	require.NoError(t, err)
	assert.Equal(t, "2\n4\nhistory:\n  2+2 = 4\n  1+1 = 2\n", out)
}

func TestEvalFailures(t *testing.T) {
	out, err := execute(t, "eval", "5/0")
	require.ErrorIs(t, err, calc.ErrNumeric)
	assert.Equal(t, "Error\n", out)

	_, err = execute(t, "eval", "(1+2")
	require.ErrorIs(t, err, calc.ErrParse)

	_, err = execute(t, "eval")
	require.Error(t, err)
}

func TestPressDrivesKeypad(t *testing.T) {
	out, err := execute(t, "press", "1", "6", "√")
	require.NoError(t, err)
	assert.Contains(t, out, "result: 4\n")
	assert.Contains(t, out, "  √(16) = 4\n")

	out, err = execute(t, "press", "9", "/", "3", "=")
	require.NoError(t, err)
	assert.Contains(t, out, "expression: \nresult: 3\n")

	out, err = execute(t, "press", "5", "÷", "0", "=")
	require.NoError(t, err)
	assert.Contains(t, out, "expression: 5/0\nresult: Error\n")
}

func TestPressUnknownButton(t *testing.T) {
	_, err := execute(t, "press", "7", "tan")
	require.ErrorIs(t, err, calculator.ErrUnknownButton)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sparkcalc dev")
}

func TestConfigFileApplies(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sparkcalc.toml")
	require.NoError(t, os.WriteFile(path, []byte("[calculator]\nhistory_limit = 1\n"), 0o644))

	out, err := execute(t, "--config", path, "eval", "--history", "1+1", "2+2")
	require.NoError(t, err)
	assert.Equal(t, "2\n4\nhistory:\n  2+2 = 4\n", out)
}

func TestInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sparkcalc.toml")
	require.NoError(t, os.WriteFile(path, []byte("[calculator]\nhistory_limit = 0\n"), 0o644))

	_, err := execute(t, "--config", path, "eval", "1")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "--log-level", "loud", "eval", "1")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestHeadlessRun(t *testing.T) {
	_, err := execute(t, "--headless", "--fast", "--ticks", "5", "--script", `1+1\n`)
	require.NoError(t, err)
}

func TestUnescapeScript(t *testing.T) {
	assert.Equal(t, "7+3\n\b\x1b\\", unescapeScript(`7+3\n\b\e\\`))
}

func TestEvalLeadingMinusAfterDoubleDash(t *testing.T) {
	out, err := execute(t, "eval", "--", "-5+3", "-2*-2")
	require.NoError(t, err)
	assert.Equal(t, "-2\n4\n", out)

	_, err = execute(t, "eval", "-5+3")
	require.Error(t, err, "a bare leading minus is read as a flag")
}

func TestPressHelpListsButtons(t *testing.T) {
	out, err := execute(t, "press", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "√ x² sin cos π C CE % ÷ 7 8 9 * 4 5 6 - 1 2 3 + 0 . = Clear")
}
