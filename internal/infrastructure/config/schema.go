// Package config loads CLI configuration from TOML files and environment variables.
package config

import "time"

// Config is the full configuration of the webpageicon CLI.
type Config struct {
	Cache   CacheConfig   `mapstructure:"cache" toml:"cache"`
	Fetch   FetchConfig   `mapstructure:"fetch" toml:"fetch"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
	Input   InputConfig   `mapstructure:"input" toml:"input"`
}

// CacheConfig controls the memory and disk tiers.
type CacheConfig struct {
	// Dir is the disk tier directory. Empty resolves to the platform cache
	// directory joined with IconCacheDirName.
	Dir string `mapstructure:"dir" toml:"dir"`
	// MemoryEntries bounds the memory tier.
	MemoryEntries int `mapstructure:"memory_entries" toml:"memory_entries"`
}

// FetchConfig controls the icon provider client.
type FetchConfig struct {
	// Endpoint is a URL template with one %s for the encoded domain.
	Endpoint string `mapstructure:"endpoint" toml:"endpoint"`
	// Timeout bounds each request; zero keeps the HTTP client default.
	Timeout time.Duration `mapstructure:"timeout" toml:"timeout"`
	// Dedupe shares one fetch between concurrent misses of the same key.
	Dedupe bool `mapstructure:"dedupe" toml:"dedupe"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// InputConfig controls the interactive watch command.
type InputConfig struct {
	// Debounce is how long input must stay unchanged before it is resolved.
	Debounce time.Duration `mapstructure:"debounce" toml:"debounce"`
}
