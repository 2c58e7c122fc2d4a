package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// fileConfig mirrors Config with durations spelled as strings ("250ms").
type fileConfig struct {
	Cache   CacheConfig   `toml:"cache"`
	Fetch   fileFetch     `toml:"fetch"`
	Logging LoggingConfig `toml:"logging"`
	Input   fileInput     `toml:"input"`
}

type fileFetch struct {
	Endpoint string `toml:"endpoint"`
	Timeout  string `toml:"timeout"`
	Dedupe   bool   `toml:"dedupe"`
}

type fileInput struct {
	Debounce string `toml:"debounce"`
}

func toFileConfig(cfg *Config) fileConfig {
	return fileConfig{
		Cache: cfg.Cache,
		Fetch: fileFetch{
			Endpoint: cfg.Fetch.Endpoint,
			Timeout:  cfg.Fetch.Timeout.String(),
			Dedupe:   cfg.Fetch.Dedupe,
		},
		Logging: cfg.Logging,
		Input:   fileInput{Debounce: cfg.Input.Debounce.String()},
	}
}

// EncodeConfig writes cfg as TOML to w.
// Struct fields are written in definition order.
func EncodeConfig(w io.Writer, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)

	if err := enc.Encode(toFileConfig(cfg)); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// WriteConfig encodes cfg as TOML at path, creating the parent directory.
func WriteConfig(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := EncodeConfig(&buf, cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateDefaultConfig writes DefaultConfig to path unless a file already exists.
// It reports whether a file was written.
func CreateDefaultConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config file: %w", err)
	}
	if err := WriteConfig(DefaultConfig(), path); err != nil {
		return false, err
	}
	return true, nil
}
