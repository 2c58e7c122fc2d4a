// Package favicon provides favicon fetching and caching infrastructure.
package favicon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/webpageicon/internal/application/port"
	"github.com/bnema/webpageicon/internal/domain/entity"
	domainurl "github.com/bnema/webpageicon/internal/domain/url"
	"github.com/bnema/webpageicon/internal/logging"
)

const (
	// DefaultEndpoint is the DuckDuckGo favicon API URL template.
	DefaultEndpoint = "https://icons.duckduckgo.com/ip3/%s.ico"
	// maxIconBytes caps the response body; larger bodies are rejected.
	maxIconBytes = 1 << 20
)

// FetcherOptions configures a Fetcher. The zero value targets DuckDuckGo with
// the default HTTP client.
type FetcherOptions struct {
	// Endpoint is a fmt template with a single %s for the encoded domain.
	Endpoint string
	// Client overrides the HTTP client. Timeout is ignored when set.
	Client *http.Client
	// Timeout applies to the whole request when positive.
	Timeout time.Duration
	// Codec decodes response bodies. Defaults to NewCodec().
	Codec port.ImageCodec
}

// Fetcher retrieves favicons from the icon provider. It implements port.IconFetcher.
type Fetcher struct {
	client   *http.Client
	endpoint string
	codec    port.ImageCodec
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts FetcherOptions) *Fetcher {
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
		if opts.Timeout > 0 {
			client = &http.Client{Timeout: opts.Timeout}
		}
	}
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	codec := opts.Codec
	if codec == nil {
		codec = NewCodec()
	}
	return &Fetcher{client: client, endpoint: endpoint, codec: codec}
}

// URL builds the request URL for a domain.
func (f *Fetcher) URL(domain string) (string, error) {
	if domain == "" {
		return "", entity.NewIconError(entity.IconErrorKindInvalidURL, domain, errors.New("empty domain"))
	}
	raw := fmt.Sprintf(f.endpoint, escapeHost(domain))
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", entity.NewIconError(entity.IconErrorKindInvalidURL, domain, err)
	}
	if parsed.Host == "" {
		return "", entity.NewIconError(entity.IconErrorKindInvalidURL, domain, fmt.Errorf("no host in %q", raw))
	}
	return parsed.String(), nil
}

// Fetch retrieves and decodes the favicon for a domain.
// It performs a single GET with no retry and never touches any cache.
func (f *Fetcher) Fetch(ctx context.Context, domain string) (*entity.Icon, error) {
	log := logging.FromContext(ctx)

	iconURL, err := f.URL(domain)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("url", iconURL).Msg("fetching favicon")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iconURL, http.NoBody)
	if err != nil {
		return nil, entity.NewIconError(entity.IconErrorKindInvalidURL, domain, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("domain", domain).Msg("favicon request failed")
		return nil, entity.NetworkError(domain, err)
	}
	if resp == nil || resp.Body == nil {
		return nil, entity.NewIconError(entity.IconErrorKindInvalidResponse, domain, errors.New("empty http response"))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode).Str("domain", domain).Msg("favicon API returned non-OK status")
		return nil, &entity.IconError{
			Kind:       entity.IconErrorKindResponseFailedValidation,
			Domain:     domain,
			StatusCode: resp.StatusCode,
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIconBytes+1))
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return nil, entity.NewIconError(entity.IconErrorKindInvalidResponse, domain, err)
	case err != nil:
		return nil, entity.NetworkError(domain, fmt.Errorf("read body: %w", err))
	case len(data) > maxIconBytes:
		return nil, entity.NewIconError(entity.IconErrorKindInvalidResponse, domain,
			fmt.Errorf("body exceeds %d bytes", maxIconBytes))
	}

	img, format, err := f.codec.Decode(data)
	if err != nil {
		log.Debug().Err(err).Str("domain", domain).Int("bytes", len(data)).Msg("favicon body is not an image")
		return nil, entity.NewIconError(entity.IconErrorKindResponseDecodingFailed, domain, err)
	}

	log.Debug().Str("domain", domain).Str("format", format).Int("bytes", len(data)).Msg("favicon fetched")
	return &entity.Icon{
		Domain: domain,
		Key:    domainurl.SanitizeDomainForFilename(domain),
		Data:   data,
		Image:  img,
		Format: format,
	}, nil
}

// escapeHost percent-encodes every byte not allowed in a URL host
// (unreserved, sub-delims, ':' and brackets). '/' is always escaped, so the
// domain stays a single path segment.
func escapeHost(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if hostSafe(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func hostSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', '~',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=',
		':', '[', ']':
		return true
	}
	return false
}

var _ port.IconFetcher = (*Fetcher)(nil)
