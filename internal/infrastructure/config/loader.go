package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	callbacks []func(*Config)
	watching  bool
	mu        sync.RWMutex
}

// NewManager creates a new configuration manager. configFile, when not empty,
// replaces the default config.toml lookup.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w", err)
		}
		v.AddConfigPath(configDir)
	}

	// WEBPAGEICON_CACHE_DIR, WEBPAGEICON_FETCH_TIMEOUT, ...
	v.SetEnvPrefix("WEBPAGEICON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "WEBPAGEICON_LOG_LEVEL", "WEBPAGEICON_LOGGING_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WEBPAGEICON_LOG_LEVEL: %w", err)
	}

	setDefaults(v)

	return &Manager{viper: v}, nil
}

// Load reads the config file (if any) and environment variables.
// A missing default config file is not an error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.reloadLocked()
}

// reloadLocked must be called with m.mu held for write.
func (m *Manager) reloadLocked() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file %s: %w", m.viper.ConfigFileUsed(), err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if err := normalizeConfig(config); err != nil {
		return err
	}
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// Set overrides a single key (used for CLI flags) before Load.
func (m *Manager) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viper.Set(key, value)
}

// Get returns a copy of the loaded configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFileUsed returns the config file path, or "" when none was read.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

func normalizeConfig(config *Config) error {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	if config.Cache.Dir == "" {
		dir, err := GetIconCacheDir()
		if err != nil {
			return fmt.Errorf("failed to determine cache directory: %w", err)
		}
		config.Cache.Dir = dir
	}
	return nil
}
