// Package config loads waternet settings from defaults, an optional TOML file
// and WATERNET_* environment variables, in that order of precedence (later
// wins). Command-line flags are applied on top by the caller.
//
// TOML format:
//
//	water_value        = 0
//	label_connectivity = 8
//	workers            = 4
//	format             = "text"
//	labels_dir         = "out/labels"
//	history_path       = "waternet.db"
//	log_level          = "info"
//	log_format         = "console"
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Output formats understood by the report layer.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Config holds the waternet configuration.
type Config struct {
	WaterValue        float64 `toml:"water_value"`
	LabelConnectivity int     `toml:"label_connectivity"`
	Workers           int     `toml:"workers"`
	Format            string  `toml:"format"`
	LabelsDir         string  `toml:"labels_dir"`
	HistoryPath       string  `toml:"history_path"`
	LogLevel          string  `toml:"log_level"`
	LogFormat         string  `toml:"log_format"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		WaterValue:        0,
		LabelConnectivity: 8,
		Workers:           runtime.NumCPU(),
		Format:            FormatText,
		LogLevel:          "info",
		LogFormat:         "console",
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty) and environment variables prefixed with WATERNET_.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config file %q: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error
	if c.WaterValue, err = getEnvAsFloat("WATERNET_WATER_VALUE", c.WaterValue); err != nil {
		return err
	}
	if c.LabelConnectivity, err = getEnvAsInt("WATERNET_LABEL_CONNECTIVITY", c.LabelConnectivity); err != nil {
		return err
	}
	if c.Workers, err = getEnvAsInt("WATERNET_WORKERS", c.Workers); err != nil {
		return err
	}
	c.Format = getEnv("WATERNET_FORMAT", c.Format)
	c.LabelsDir = getEnv("WATERNET_LABELS_DIR", c.LabelsDir)
	c.HistoryPath = getEnv("WATERNET_HISTORY", c.HistoryPath)
	c.LogLevel = getEnv("WATERNET_LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("WATERNET_LOG_FORMAT", c.LogFormat)
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.LabelConnectivity != 4 && c.LabelConnectivity != 8 {
		return fmt.Errorf("label_connectivity must be 4 or 8, got %d", c.LabelConnectivity)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatTable:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if c.LogLevel == "" {
		return errors.New("log_level is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}
