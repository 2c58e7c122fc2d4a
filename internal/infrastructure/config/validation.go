package config

import (
	"fmt"
	"strings"

	"github.com/bnema/webpageicon/internal/logging"
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateCache(config)...)
	validationErrors = append(validationErrors, validateFetch(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateInput(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateCache(config *Config) []string {
	if config.Cache.MemoryEntries < 1 {
		return []string{"cache.memory_entries must be at least 1"}
	}
	return nil
}

func validateFetch(config *Config) []string {
	var validationErrors []string
	if strings.Count(config.Fetch.Endpoint, "%s") != 1 {
		validationErrors = append(validationErrors, "fetch.endpoint must contain exactly one %s")
	}
	if config.Fetch.Timeout < 0 {
		validationErrors = append(validationErrors, "fetch.timeout must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, "logging.level must be one of trace, debug, info, warn, error")
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}

func validateInput(config *Config) []string {
	if config.Input.Debounce < 0 {
		return []string{"input.debounce must be non-negative"}
	}
	return nil
}
