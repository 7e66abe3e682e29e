// internal/config/validation.go - Configuration validation
package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Validate validates the configuration structure and values
func Validate(config *Config) error {
	if err := validateScan(&config.Scan); err != nil {
		return fmt.Errorf("scan configuration invalid: %w", err)
	}

	if err := validateProgress(&config.Progress); err != nil {
		return fmt.Errorf("progress configuration invalid: %w", err)
	}

	if err := validateLogging(&config.Logging); err != nil {
		return fmt.Errorf("logging configuration invalid: %w", err)
	}

	return nil
}

// validateScan validates scan tuning parameters
func validateScan(config *ScanConfig) error {
	if config.CacheKiB < 0 {
		return fmt.Errorf("cache_kib must be non-negative")
	}

	return nil
}

// validateProgress validates progress configuration parameters
func validateProgress(config *ProgressConfig) error {
	if config.RefreshRate <= 0 {
		return fmt.Errorf("refresh_rate must be positive")
	}

	return nil
}

// validateLogging validates logging configuration parameters
func validateLogging(config *LoggingConfig) error {
	if _, err := logrus.ParseLevel(config.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", config.Level, err)
	}

	return nil
}
