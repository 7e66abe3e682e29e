// internal/config/config.go - Configuration management
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Scan     ScanConfig     `mapstructure:"scan"`
	Copy     CopyConfig     `mapstructure:"copy"`
	Progress ProgressConfig `mapstructure:"progress"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ScanConfig tunes read-only scans of an mbtiles store. All settings are
// applied as pragmas at open time and affect performance only, never the
// computed results.
type ScanConfig struct {
	QueryOnly       bool `mapstructure:"query_only"`
	TempStoreMemory bool `mapstructure:"temp_store_memory"`
	SynchronousOff  bool `mapstructure:"synchronous_off"`
	CacheKiB        int  `mapstructure:"cache_kib"`
}

// CopyConfig contains duplication configuration
type CopyConfig struct {
	Force bool `mapstructure:"force"`
}

// ProgressConfig contains progress bar configuration
type ProgressConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	RefreshRate time.Duration `mapstructure:"refresh_rate"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	Directory string `mapstructure:"directory"`
	Terminal  bool   `mapstructure:"terminal"`
}

// Load loads configuration from various sources
func Load() (*Config, error) {
	// Set default values
	setDefaults()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults configures default values for all configuration options
func setDefaults() {
	// Scan defaults
	viper.SetDefault("scan.query_only", true)
	viper.SetDefault("scan.temp_store_memory", true)
	viper.SetDefault("scan.synchronous_off", true)
	viper.SetDefault("scan.cache_kib", 200000)

	// Copy defaults
	viper.SetDefault("copy.force", false)

	// Progress defaults
	viper.SetDefault("progress.enabled", true)
	viper.SetDefault("progress.refresh_rate", time.Second)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.directory", "")
	viper.SetDefault("logging.terminal", true)
}
