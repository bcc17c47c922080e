package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outlay-dev/outlay/internal/activity"
	"github.com/outlay-dev/outlay/internal/config"
)

func TestInit_CreatesProject(t *testing.T) {
	dir := t.TempDir()

	err := runInit(dir, "2500.00", "", "400.00", true)
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "2500.00", cfg.Budget.MonthlyIncome)
	assert.Equal(t, "400.00", cfg.Budget.SavingsGoal)
	assert.False(t, cfg.Git.AutoCommit, "--no-git disables auto-commit")

	data, err := os.ReadFile(filepath.Join(dir, "expenses.csv"))
	require.NoError(t, err)
	assert.Equal(t, "date,category,amount,note\n", string(data))

	for _, d := range []string{"import", filepath.Join("import", "processed"), "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, d)
		assert.True(t, info.IsDir(), d)
	}

	entries, err := activity.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "init", entries[0].Action)
	assert.Empty(t, entries[0].CommitHash)
}

func TestInit_YearlyIncome(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "", "12000", "0.00", true))

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)

	goal, err := cfg.Goal()
	require.NoError(t, err)
	assert.Equal(t, "1000", goal.Income.String())
}

func TestInit_RejectsBadAmount(t *testing.T) {
	dir := t.TempDir()

	err := runInit(dir, "lots", "", "0.00", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--monthly-income")

	_, statErr := os.Stat(filepath.Join(dir, config.FileName))
	assert.True(t, os.IsNotExist(statErr), "bad flags must not leave a half-written config")
}

func TestInit_ExistingLedgerRefused(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "", "", "0.00", true))

	err := runInit(dir, "", "", "0.00", true)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "already exists"))
}
