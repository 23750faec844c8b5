// Package config loads the .covplan.yaml configuration: threshold
// overrides, default paths and rendering preferences. Defaults come
// first, the file merges over them, CLI flags over both.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/covplan/pkg/coverage"
	"github.com/dkoosis/covplan/pkg/policy"
)

// ConfigFileName is the configuration file looked up in the working
// directory and the user config dir.
const ConfigFileName = ".covplan.yaml"

// Constants for default values.
const (
	DefaultRecordsPath = "coverage-records.json"
	DefaultHistoryPath = ".covplan-history.db"
	DefaultThemeName   = "default"
)

// AppConfig represents the application's overall configuration.
type AppConfig struct {
	RecordsPath string                        `yaml:"records"`
	HistoryPath string                        `yaml:"history"`
	ThemeName   string                        `yaml:"theme"`
	Thresholds  map[coverage.Category]float64 `yaml:"thresholds"`
	Global      *float64                      `yaml:"global"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *AppConfig {
	return &AppConfig{
		RecordsPath: DefaultRecordsPath,
		HistoryPath: DefaultHistoryPath,
		ThemeName:   DefaultThemeName,
	}
}

// Load reads the configuration file if one exists and merges it over the
// defaults. A missing file is not an error; an unreadable or unparsable
// one is.
func Load() (*AppConfig, error) {
	cfg := Defaults()

	path := configPath()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.merge(&fileCfg)
	return cfg, nil
}

func (c *AppConfig) merge(other *AppConfig) {
	if other.RecordsPath != "" {
		c.RecordsPath = other.RecordsPath
	}
	if other.HistoryPath != "" {
		c.HistoryPath = other.HistoryPath
	}
	if other.ThemeName != "" {
		c.ThemeName = other.ThemeName
	}
	if other.Thresholds != nil {
		c.Thresholds = other.Thresholds
	}
	if other.Global != nil {
		c.Global = other.Global
	}
}

// Policy constructs the threshold policy from the configured table.
// Out-of-range ratios surface as the policy's InvalidThreshold error.
func (c *AppConfig) Policy() (*policy.Policy, error) {
	return policy.New(policy.Config{
		Categories: c.Thresholds,
		Global:     c.Global,
	})
}

// configPath tries to find the configuration file. It checks the local
// directory first, then the user config dir.
func configPath() string {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "covplan", ConfigFileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
