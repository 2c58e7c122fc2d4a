package xdg

import (
	"github.com/bnema/webpageicon/internal/application/port"
	"github.com/bnema/webpageicon/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) CacheDir() (string, error) {
	dirs, err := config.GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.CacheHome, nil
}

// IconCacheDir is the default disk tier location.
func (a *Adapter) IconCacheDir() (string, error) {
	return config.GetIconCacheDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
