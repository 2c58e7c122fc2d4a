package favicon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bnema/webpageicon/internal/application/port"
)

const (
	// File permissions for favicon cache.
	diskCacheDirPerm  = 0750
	diskCacheFilePerm = 0600
)

// DiskStore is the persistent favicon tier: one file per cache key in a flat
// directory, no metadata. It implements port.IconStore.
type DiskStore struct {
	dir string
	log zerolog.Logger
}

// NewDiskStore creates a store rooted at dir. The directory is created on the
// first write. A nil logger disables logging.
func NewDiskStore(dir string, log *zerolog.Logger) *DiskStore {
	s := &DiskStore{dir: dir, log: zerolog.Nop()}
	if log != nil {
		s.log = *log
	}
	return s
}

// Dir returns the cache directory.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Path returns the file path for a cache key, or "" if disk caching is disabled.
func (s *DiskStore) Path(key string) string {
	if s.dir == "" || key == "" {
		return ""
	}
	return filepath.Join(s.dir, key)
}

// Read returns the cached bytes for key. Any I/O error or an empty file is
// reported as a miss.
func (s *DiskStore) Read(key string) ([]byte, bool) {
	path := s.Path(key)
	if path == "" {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Debug().Err(err).Str("path", path).Msg("favicon disk read failed")
		}
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}
	return data, true
}

// Write atomically replaces the file for key. Failures are logged and dropped.
func (s *DiskStore) Write(key string, data []byte) {
	if s.dir == "" || key == "" || len(data) == 0 {
		return
	}

	if err := os.MkdirAll(s.dir, diskCacheDirPerm); err != nil {
		s.log.Debug().Err(err).Str("dir", s.dir).Msg("favicon cache dir unavailable")
		return
	}

	if err := writeFileAtomic(s.dir, key, data); err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("favicon disk write failed")
	}
}

// writeFileAtomic writes data to a unique temp file in dir and renames it to
// name, so concurrent writers of the same name never interleave bytes.
func writeFileAtomic(dir, name string, data []byte) error {
	tmp, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(diskCacheFilePerm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filepath.Join(dir, name)); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

var _ port.IconStore = (*DiskStore)(nil)
