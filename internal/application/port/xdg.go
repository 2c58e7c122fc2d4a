package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	CacheDir() (string, error)

	// IconCacheDir is the directory holding cached favicon files.
	IconCacheDir() (string, error)
}
