package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/covplan/pkg/plan"
)

const testRecords = `{
	"$schema": "covplan-records",
	"tool": "coverage.py",
	"records": [
		{"path": "svc/core.py", "total_lines": 100, "covered_lines": 70, "category": "core-logic"},
		{"path": "svc/util.py", "total_lines": 50, "covered_lines": 50, "category": "defensive"}
	]
}`

func setupWorkdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "records.json"), []byte(testRecords), 0o644))
	return dir
}

// execute resets the flag globals (flag values persist between Execute
// calls in-process) and runs the CLI.
func execute(args ...string) error {
	flagFormat = "term"
	flagOutput = ""
	flagFailOnGaps = false
	flagHistory = false
	flagGlobal = -1
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestPlanCommand_WritesWorklistFile(t *testing.T) {
	dir := setupWorkdir(t)
	out := filepath.Join(dir, "worklist.json")

	err := execute("plan", "records.json", "--format", "json", "-o", out)
	require.NoError(t, err)

	worklist, err := plan.ReadFile(out)
	require.NoError(t, err)

	// core.py misses 0.95 and the aggregate (120/150) misses 0.90.
	require.Len(t, worklist.Gaps, 2)
	assert.True(t, worklist.Gaps[0].Summary())
	assert.Equal(t, "svc/core.py", worklist.Gaps[1].Path)
}

func TestPlanCommand_FailOnGaps(t *testing.T) {
	setupWorkdir(t)

	err := execute("plan", "records.json", "--format", "json", "--fail-on-gaps")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coverage gaps remain")
}

func TestPlanCommand_GlobalOverride(t *testing.T) {
	dir := setupWorkdir(t)
	out := filepath.Join(dir, "worklist.json")

	// With every threshold dropped to 0.50 nothing gaps.
	yaml := "thresholds:\n  core-logic: 0.5\n  defensive: 0.5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".covplan.yaml"), []byte(yaml), 0o644))

	err := execute("plan", "records.json", "--format", "json", "-o", out, "--global", "0.5")
	require.NoError(t, err)

	worklist, err := plan.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, worklist.Empty())
}

func TestPlanCommand_RejectsUnknownFormat(t *testing.T) {
	setupWorkdir(t)

	err := execute("plan", "records.json", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestPlanCommand_MissingRecordsFile(t *testing.T) {
	setupWorkdir(t)

	err := execute("plan", "absent.json", "--format", "json")
	require.Error(t, err)
}

func TestHistoryRoundTrip(t *testing.T) {
	setupWorkdir(t)

	require.NoError(t, execute("plan", "records.json", "--format", "json", "--history"))
	// trend reads back what plan recorded; mono non-TTY output avoids
	// terminal size probing in test environments.
	require.NoError(t, execute("trend"))
}
