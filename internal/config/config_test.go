package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/covplan/pkg/coverage"
)

func chtmp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func TestLoad_UsesDefaultsWithoutFile(t *testing.T) {
	chtmp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultRecordsPath, cfg.RecordsPath)
	assert.Equal(t, DefaultHistoryPath, cfg.HistoryPath)
	assert.Equal(t, DefaultThemeName, cfg.ThemeName)
	assert.Nil(t, cfg.Thresholds)
	assert.Nil(t, cfg.Global)

	pol, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, 0.90, pol.GlobalRatio())
}

func TestLoad_MergesFileOverDefaults(t *testing.T) {
	dir := chtmp(t)

	yaml := `
records: out/coverage.json
theme: mono
global: 0.8
thresholds:
  core-logic: 0.99
  integration: 0.7
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "out/coverage.json", cfg.RecordsPath)
	assert.Equal(t, "mono", cfg.ThemeName)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultHistoryPath, cfg.HistoryPath)

	pol, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, 0.8, pol.GlobalRatio())
	assert.Equal(t, 0.99, pol.RequiredRatio(coverage.CategoryCoreLogic))
	assert.Equal(t, 0.7, pol.RequiredRatio("integration"))
	// Categories absent from the file keep their policy defaults.
	assert.Equal(t, 0.85, pol.RequiredRatio(coverage.CategoryDefensive))
}

func TestLoad_RejectsBadYAML(t *testing.T) {
	dir := chtmp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("thresholds: ["), 0o644))

	_, err := Load()
	require.Error(t, err)
}

func TestPolicy_SurfacesInvalidThreshold(t *testing.T) {
	dir := chtmp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("global: 1.5\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	_, err = cfg.Policy()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1.5")
}
