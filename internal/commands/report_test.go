package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outlay-dev/outlay/internal/activity"
	"github.com/outlay-dev/outlay/internal/ledger"
)

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "1000.00", "", "200.00", true))
	return dir
}

func TestAddAndReport(t *testing.T) {
	dir := setupProject(t)

	require.NoError(t, runAdd(dir, "2025-01-05", "Food", "50.00", "groceries"))
	require.NoError(t, runAdd(dir, "2025-01-18", "food", "30.00", ""))
	require.NoError(t, runAdd(dir, "2025-02-02", "food", "0.00", "quiet month"))

	var out, errOut bytes.Buffer
	err := runReport(&out, &errOut, dir, "2025-03-01", false, false)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "No spending recorded for 2025-03 yet.")
	assert.Contains(t, got, "Remaining this period (2025-03): 800.00")
	assert.Contains(t, got, "Forecast for 2025-04: 40.00 (moving-average)")
	assert.Contains(t, got, "Remaining next period (2025-04): 760.00")
	assert.Empty(t, errOut.String())

	entries, err := activity.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 4, "init plus three adds")
	assert.Equal(t, "add", entries[1].Action)
}

func TestAdd_InvalidAmountLeavesLedgerAlone(t *testing.T) {
	dir := setupProject(t)

	err := runAdd(dir, "2025-01-05", "food", "-5", "")
	require.Error(t, err)

	records, rowErrs, listErr := ledger.NewStore(filepath.Join(dir, "expenses.csv")).ListAll()
	require.NoError(t, listErr)
	assert.Empty(t, rowErrs)
	assert.Empty(t, records)
}

func TestReport_MalformedRowsFailWithoutSkip(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, runAdd(dir, "2025-01-05", "food", "50.00", ""))

	// Corrupt the ledger the way a stray editor would.
	path := filepath.Join(dir, "expenses.csv")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("garbage,,,,\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	var out, errOut bytes.Buffer
	err = runReport(&out, &errOut, dir, "2025-03-01", false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed row")
	assert.Contains(t, errOut.String(), "warning:")

	// With --skip-bad-rows the valid rows still produce a report.
	out.Reset()
	errOut.Reset()
	err = runReport(&out, &errOut, dir, "2025-03-01", true, false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Forecast for 2025-04")
	assert.Contains(t, errOut.String(), "warning:")
}

func TestReport_BadAsOfDate(t *testing.T) {
	dir := setupProject(t)

	var out, errOut bytes.Buffer
	err := runReport(&out, &errOut, dir, "March 1st", false, false)
	require.Error(t, err)
}
