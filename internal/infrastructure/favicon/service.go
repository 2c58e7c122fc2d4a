package favicon

import (
	"context"
	"iter"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/webpageicon/internal/application/usecase"
	"github.com/bnema/webpageicon/internal/domain/entity"
	"github.com/bnema/webpageicon/internal/domain/service"
	domainurl "github.com/bnema/webpageicon/internal/domain/url"
	"github.com/bnema/webpageicon/internal/infrastructure/cache"
	"github.com/bnema/webpageicon/internal/infrastructure/config"
)

// Options configures a Service.
type Options struct {
	// CacheDir is the disk tier directory. Empty uses WebPageIconCache inside
	// the platform cache directory.
	CacheDir string
	// DisableDisk turns the disk tier off; CacheDir is then ignored.
	DisableDisk bool
	// MemoryEntries bounds the memory tier (cache.DefaultCapacity when <= 0).
	MemoryEntries int
	// Endpoint overrides the icon provider URL template.
	Endpoint string
	// Timeout bounds each network fetch when positive.
	Timeout time.Duration
	// Client overrides the HTTP client.
	Client *http.Client
	// Dedupe shares one network fetch between concurrent misses of a key.
	Dedupe bool
	// Logger receives disk tier diagnostics. Per-call logging uses the context.
	Logger *zerolog.Logger
}

// Service implements the domain IconService interface.
// It owns its memory and disk tiers, so independent services never share state.
type Service struct {
	memory  *cache.LRU[string, *entity.Icon]
	disk    *DiskStore
	codec   *Codec
	fetcher *Fetcher
	resolve *usecase.ResolveIconUseCase
	watch   *usecase.WatchIconUseCase
}

// NewService wires the memory tier, disk tier, and fetcher.
// If the platform cache directory cannot be determined the disk tier is off.
func NewService(opts Options) *Service {
	codec := NewCodec()
	cacheDir := resolveCacheDir(opts)
	var lruOpts []cache.Option[string, *entity.Icon]
	if opts.Logger != nil {
		log := opts.Logger.With().Str("component", "memory-cache").Logger()
		lruOpts = append(lruOpts, cache.WithEvictCallback(func(key string, _ *entity.Icon) {
			log.Trace().Str("key", key).Msg("evicted")
		}))
	}
	memory := cache.NewLRU(opts.MemoryEntries, lruOpts...)
	disk := NewDiskStore(cacheDir, opts.Logger)
	fetcher := NewFetcher(FetcherOptions{
		Endpoint: opts.Endpoint,
		Client:   opts.Client,
		Timeout:  opts.Timeout,
		Codec:    codec,
	})

	var resolveOpts []usecase.ResolveIconOption
	if opts.Dedupe {
		resolveOpts = append(resolveOpts, usecase.WithInflightDedup())
	}
	resolve := usecase.NewResolveIconUseCase(memory, disk, fetcher, codec, resolveOpts...)

	return &Service{
		memory:  memory,
		disk:    disk,
		codec:   codec,
		fetcher: fetcher,
		resolve: resolve,
		watch:   usecase.NewWatchIconUseCase(resolve),
	}
}

// Resolve returns the favicon for a domain.
// Checks memory cache, then disk cache, then fetches from the icon provider.
func (s *Service) Resolve(ctx context.Context, domain string) (*entity.Icon, error) {
	return s.resolve.Resolve(ctx, domain)
}

// Cached returns the favicon only if already cached (no external fetch).
func (s *Service) Cached(ctx context.Context, domain string) (*entity.Icon, bool) {
	return s.resolve.Cached(ctx, domain)
}

// Observe publishes lifecycle events for one resolution.
func (s *Service) Observe(ctx context.Context, domain string) <-chan entity.ProgressEvent {
	return s.watch.Observe(ctx, domain)
}

// Stream yields lifecycle events for one resolution.
func (s *Service) Stream(ctx context.Context, domain string) iter.Seq2[entity.ProgressEvent, error] {
	return s.watch.Stream(ctx, domain)
}

// Key returns the cache key for a domain.
func (s *Service) Key(domain string) string {
	return domainurl.SanitizeDomainForFilename(domain)
}

// DiskPath returns the filesystem path where a domain's favicon is cached.
func (s *Service) DiskPath(domain string) string {
	if domain == "" {
		return ""
	}
	return s.disk.Path(s.Key(domain))
}

// ExportPNG writes the icon as PNG into dir, resized when size is positive.
func (s *Service) ExportPNG(icon *entity.Icon, dir string, size int) (string, error) {
	return ExportPNG(s.codec, icon, dir, size)
}

// ReleaseMemory drops cold memory entries until at most keep remain.
// Hosts call it under memory pressure; the disk tier is untouched.
func (s *Service) ReleaseMemory(keep int) int {
	return s.memory.Shrink(keep)
}

// MemoryLen returns the number of icons held in memory.
func (s *Service) MemoryLen() int {
	return s.memory.Len()
}

// PurgeMemory empties the memory tier. Disk entries are kept.
func (s *Service) PurgeMemory() {
	s.memory.Purge()
}

// MemoryEvictions returns how many icons the memory tier has dropped.
func (s *Service) MemoryEvictions() uint64 {
	return s.memory.Evictions()
}

func resolveCacheDir(opts Options) string {
	if opts.DisableDisk {
		return ""
	}
	if opts.CacheDir != "" {
		return opts.CacheDir
	}
	dir, err := config.GetIconCacheDir()
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.Warn().Err(err).Msg("no platform cache directory, disk tier disabled")
		}
		return ""
	}
	return dir
}

var _ service.IconService = (*Service)(nil)
