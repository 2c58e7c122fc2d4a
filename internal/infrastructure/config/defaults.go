package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	defaultMemoryEntries = 256
	defaultEndpoint      = "https://icons.duckduckgo.com/ip3/%s.ico"
	defaultDebounce      = 250 * time.Millisecond
)

// DefaultConfig returns the built-in configuration. Cache.Dir is left empty
// and resolved at load time.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			MemoryEntries: defaultMemoryEntries,
		},
		Fetch: FetchConfig{
			Endpoint: defaultEndpoint,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Input: InputConfig{
			Debounce: defaultDebounce,
		},
	}
}

// setDefaults registers every key with viper so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("cache.memory_entries", d.Cache.MemoryEntries)
	v.SetDefault("fetch.endpoint", d.Fetch.Endpoint)
	v.SetDefault("fetch.timeout", d.Fetch.Timeout)
	v.SetDefault("fetch.dedupe", d.Fetch.Dedupe)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("input.debounce", d.Input.Debounce)
}
