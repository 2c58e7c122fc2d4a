package config

import (
	"os"
	"path/filepath"
)

const (
	appName = "webpageicon"
	// IconCacheDirName is the favicon directory inside the platform cache dir.
	IconCacheDirName = "WebPageIconCache"
)

// XDGDirs holds the base directories used by the application.
type XDGDirs struct {
	ConfigHome string
	CacheHome  string
}

// GetXDGDirs returns the base directories for webpageicon:
// - config: os.UserConfigDir()/webpageicon ($XDG_CONFIG_HOME on Linux)
// - cache: os.UserCacheDir() ($XDG_CACHE_HOME on Linux, ~/Library/Caches on macOS)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, CacheHome: devDir}, nil
	}

	configHome, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	cacheHome, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(configHome, appName),
		CacheHome:  cacheHome,
	}, nil
}

// GetConfigDir returns the config directory for webpageicon.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetIconCacheDir returns the default favicon disk cache directory.
func GetIconCacheDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.CacheHome, IconCacheDirName), nil
}
