package cli_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendpad/spendpad/internal/cli"
	"github.com/spendpad/spendpad/internal/config"
	"github.com/spendpad/spendpad/internal/expense"
)

// execute runs a fresh command tree against an isolated config/data dir and
// returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := cli.NewRootCmd("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfigDir, dir)
	t.Setenv(config.EnvDataFile, filepath.Join(dir, "expenses.json"))
}

func TestAddListRemoveFlow(t *testing.T) {
	isolate(t)

	out, err := execute(t, "add", "Coffee", "with", "Ana", "--amount", "4.80", "--category", "food")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Coffee with Ana $4.80 (Food)")

	out, err = execute(t, "list", "--output", "json")
	require.NoError(t, err)

	var records []expense.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Coffee with Ana", records[0].Description)

	out, err = execute(t, "remove", records[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed")

	out, err = execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No expenses recorded.")
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "non-numeric amount", args: []string{"add", "Coffee", "--amount", "abc"}},
		{name: "negative amount", args: []string{"add", "Coffee", "--amount", "-5"}},
		{name: "unknown category", args: []string{"add", "Coffee", "--amount", "5", "--category", "snacks"}},
		{name: "bad date", args: []string{"add", "Coffee", "--amount", "5", "--date", "26.08.2026"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No expenses recorded.", "rejected adds must not persist anything")
}

func TestAdd_ExplicitDateAndDefaultCategory(t *testing.T) {
	isolate(t)

	out, err := execute(t, "add", "Rent", "--amount", "900", "--date", "2026-01-15")
	require.NoError(t, err)
	assert.Contains(t, out, "(Other)", "category defaults from config")
	assert.Contains(t, out, "2026-01-15")
}

func TestRemove_AbsentIDIsNotAnError(t *testing.T) {
	isolate(t)

	out, err := execute(t, "remove", "no-such-id")
	require.NoError(t, err)
	assert.Contains(t, out, "No expense with id no-such-id")
}

func TestList_NewestFirst(t *testing.T) {
	isolate(t)

	_, err := execute(t, "add", "First", "--amount", "1", "--category", "food")
	require.NoError(t, err)
	_, err = execute(t, "add", "Second", "--amount", "2", "--category", "food")
	require.NoError(t, err)

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Second"), strings.Index(out, "First"))
}

func TestStats(t *testing.T) {
	isolate(t)

	_, err := execute(t, "add", "Groceries", "--amount", "62.10", "--category", "food")
	require.NoError(t, err)
	_, err = execute(t, "add", "Bus", "--amount", "2.90", "--category", "transport")
	require.NoError(t, err)

	// Stdout is not a terminal under go test, so plain output is used.
	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total:        $65.00")
	assert.Contains(t, out, "This month:   $65.00")
	assert.Contains(t, out, "Top category: Food")
}

func TestStats_Empty(t *testing.T) {
	isolate(t)

	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total:        $0.00")
	assert.Contains(t, out, "Top category: none")
}

func TestConfigInit(t *testing.T) {
	isolate(t)

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized")

	_, err = execute(t, "config", "init")
	assert.Error(t, err, "second init without --force must fail")

	_, err = execute(t, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigPath(t *testing.T) {
	isolate(t)

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "config.yaml")
	assert.Contains(t, out, "expenses.json")
}

func TestRootCmd_Metadata(t *testing.T) {
	root := cli.NewRootCmd("1.2.3")
	assert.Equal(t, "spendpad", root.Use)
	assert.Equal(t, "1.2.3", root.Version)
	assert.NotEmpty(t, root.Example)
}
