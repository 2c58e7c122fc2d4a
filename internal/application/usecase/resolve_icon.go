// Package usecase contains application business logic.
package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/webpageicon/internal/application/port"
	"github.com/bnema/webpageicon/internal/domain/entity"
	domainurl "github.com/bnema/webpageicon/internal/domain/url"
)

// Tier names used in log fields.
const (
	TierMemory  = "memory"
	TierDisk    = "disk"
	TierNetwork = "network"
)

// ResolveIconUseCase implements the tiered favicon lookup:
// memory cache, then disk cache, then network fetch with both tiers filled.
type ResolveIconUseCase struct {
	memory   port.Cache[string, *entity.Icon]
	disk     port.IconStore
	fetcher  port.IconFetcher
	codec    port.ImageCodec
	logger   port.LoggerFromContext
	inflight *singleflight.Group
}

// ResolveIconOption configures a ResolveIconUseCase.
type ResolveIconOption func(*ResolveIconUseCase)

// WithInflightDedup makes concurrent misses for the same cache key share a
// single network fetch. A waiter whose context ends stops waiting; the shared
// fetch keeps running for the others.
func WithInflightDedup() ResolveIconOption {
	return func(uc *ResolveIconUseCase) {
		uc.inflight = &singleflight.Group{}
	}
}

// WithLoggerFromContext overrides how the logger is resolved per call.
func WithLoggerFromContext(fn port.LoggerFromContext) ResolveIconOption {
	return func(uc *ResolveIconUseCase) {
		if fn != nil {
			uc.logger = fn
		}
	}
}

// NewResolveIconUseCase creates a new ResolveIconUseCase.
func NewResolveIconUseCase(
	memory port.Cache[string, *entity.Icon],
	disk port.IconStore,
	fetcher port.IconFetcher,
	codec port.ImageCodec,
	opts ...ResolveIconOption,
) *ResolveIconUseCase {
	uc := &ResolveIconUseCase{
		memory:  memory,
		disk:    disk,
		fetcher: fetcher,
		codec:   codec,
		logger:  port.ContextLogger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Resolve returns the favicon for domain. The first tier that hits wins.
// Fetch errors are returned unchanged; cache failures are never surfaced.
// The returned icon always carries the requested domain, even when a
// colliding identifier filled the shared cache entry.
func (uc *ResolveIconUseCase) Resolve(ctx context.Context, domain string) (*entity.Icon, error) {
	if domain == "" {
		return nil, entity.NewIconError(entity.IconErrorKindInvalidURL, domain, errors.New("empty domain"))
	}

	key := domainurl.SanitizeDomainForFilename(domain)
	if icon, ok := uc.lookup(ctx, domain, key); ok {
		return icon, nil
	}

	if uc.inflight == nil {
		return uc.fill(ctx, domain, key)
	}

	ch := uc.inflight.DoChan(key, func() (any, error) {
		return uc.fill(context.WithoutCancel(ctx), domain, key)
	})
	select {
	case <-ctx.Done():
		return nil, entity.NetworkError(domain, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			uc.logger(ctx).Debug().Str("domain", domain).Str("key", key).Msg("joined in-flight favicon fetch")
		}
		return forDomain(res.Val.(*entity.Icon), domain), nil
	}
}

// Cached returns the favicon only if the memory or disk tier holds it.
func (uc *ResolveIconUseCase) Cached(ctx context.Context, domain string) (*entity.Icon, bool) {
	if domain == "" {
		return nil, false
	}
	return uc.lookup(ctx, domain, domainurl.SanitizeDomainForFilename(domain))
}

// lookup checks memory then disk. A disk hit is decoded and promoted to
// memory; an undecodable disk entry counts as a miss.
func (uc *ResolveIconUseCase) lookup(ctx context.Context, domain, key string) (*entity.Icon, bool) {
	log := uc.logger(ctx)

	if icon, ok := uc.memory.Get(key); ok && icon != nil {
		log.Debug().Str("domain", domain).Str("key", key).Str("tier", TierMemory).Msg("favicon cache hit")
		return forDomain(icon, domain), true
	}

	data, ok := uc.disk.Read(key)
	if !ok {
		log.Debug().Str("domain", domain).Str("key", key).Msg("favicon cache miss")
		return nil, false
	}

	img, format, err := uc.codec.Decode(data)
	if err != nil {
		log.Debug().Err(err).Str("domain", domain).Str("key", key).Msg("ignoring undecodable disk favicon")
		return nil, false
	}

	icon := &entity.Icon{Domain: domain, Key: key, Data: data, Image: img, Format: format}
	uc.memory.Set(key, icon)
	log.Debug().Str("domain", domain).Str("key", key).Str("tier", TierDisk).Msg("favicon cache hit")
	return icon, true
}

// fill fetches from the network and populates both tiers on success.
func (uc *ResolveIconUseCase) fill(ctx context.Context, domain, key string) (*entity.Icon, error) {
	log := uc.logger(ctx)

	icon, err := uc.fetcher.Fetch(ctx, domain)
	if err != nil {
		log.Debug().Err(err).Str("domain", domain).Str("tier", TierNetwork).Msg("favicon fetch failed")
		return nil, err
	}
	// A request cancelled while the network step ran leaves no cache entry.
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Debug().Err(ctxErr).Str("domain", domain).Str("tier", TierNetwork).Msg("favicon fetch cancelled")
		return nil, entity.NetworkError(domain, ctxErr)
	}

	icon.Key = key
	uc.memory.Set(key, icon)
	uc.disk.Write(key, icon.Data)

	log.Debug().Str("domain", domain).Str("key", key).Str("tier", TierNetwork).Msg("favicon fetched and cached")
	return icon, nil
}

// forDomain returns icon, or a shallow copy carrying domain when the cached
// entry was filled by a different identifier with the same key.
func forDomain(icon *entity.Icon, domain string) *entity.Icon {
	if icon.Domain == domain {
		return icon
	}
	cp := *icon
	cp.Domain = domain
	return &cp
}
