package config

import (
	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the config file and reloads it on change.
// Callbacks registered with OnConfigChange run after each successful reload.
// Reload failures are passed to onError and keep the previous config.
func (m *Manager) Watch(onError func(error)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return
	}

	m.viper.OnConfigChange(func(fsnotify.Event) {
		m.mu.Lock()
		err := m.reloadLocked()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		for _, callback := range callbacks {
			configCopy := *config
			callback(&configCopy)
		}
	})
	m.viper.WatchConfig()

	m.watching = true
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}
