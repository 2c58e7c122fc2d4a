// Package service defines domain service interfaces.
package service

import (
	"context"
	"iter"

	"github.com/bnema/webpageicon/internal/domain/entity"
)

// IconService provides favicon retrieval backed by a memory and a disk tier.
type IconService interface {
	// Resolve returns the icon for a website identifier.
	// Checks memory cache, then disk cache, then fetches from the icon provider.
	Resolve(ctx context.Context, domain string) (*entity.Icon, error)

	// Cached returns the icon only if a cache tier already holds it (no fetch).
	Cached(ctx context.Context, domain string) (*entity.Icon, bool)

	// Observe resolves the icon and publishes lifecycle events on the returned
	// channel. Failures arrive as ProgressFailed values; the channel is closed
	// after the terminal event.
	Observe(ctx context.Context, domain string) <-chan entity.ProgressEvent

	// Stream resolves the icon as an iterator. The sequence always starts with
	// ProgressStarted and ends with either ProgressCompleted or a non-nil error.
	Stream(ctx context.Context, domain string) iter.Seq2[entity.ProgressEvent, error]

	// Key returns the cache key for a domain.
	Key(domain string) string

	// DiskPath returns the filesystem path where a domain's favicon is cached.
	DiskPath(domain string) string
}
