package favicon

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webpageicon/internal/domain/entity"
)

func newIconServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Fetcher) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewFetcher(FetcherOptions{Endpoint: srv.URL + "/ip3/%s.ico"})
}

func TestFetcher_URL(t *testing.T) {
	f := NewFetcher(FetcherOptions{})

	tests := []struct {
		domain string
		want   string
	}{
		{"example.com", "https://icons.duckduckgo.com/ip3/example.com.ico"},
		{"localhost:8080", "https://icons.duckduckgo.com/ip3/localhost:8080.ico"},
		{"a/b", "https://icons.duckduckgo.com/ip3/a%2Fb.ico"},
		{"a?b#c", "https://icons.duckduckgo.com/ip3/a%3Fb%23c.ico"},
		{"bad host", "https://icons.duckduckgo.com/ip3/bad%20host.ico"},
		{"100%", "https://icons.duckduckgo.com/ip3/100%25.ico"},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			got, err := f.URL(tt.domain)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetcher_URLInvalid(t *testing.T) {
	_, err := NewFetcher(FetcherOptions{}).URL("")
	assert.ErrorIs(t, err, entity.ErrInvalidURL)

	_, err = NewFetcher(FetcherOptions{Endpoint: "::%s"}).URL("example.com")
	assert.ErrorIs(t, err, entity.ErrInvalidURL)

	_, err = NewFetcher(FetcherOptions{Endpoint: "/relative/%s.ico"}).URL("example.com")
	assert.ErrorIs(t, err, entity.ErrInvalidURL)
}

func TestFetcher_Success(t *testing.T) {
	body := testPNG(t, 16, 16)
	var gotURI string
	_, f := newIconServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.RequestURI
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	})

	icon, err := f.Fetch(context.Background(), "example.com")

	require.NoError(t, err)
	assert.Equal(t, "/ip3/example.com.ico", gotURI)
	assert.Equal(t, "example.com", icon.Domain)
	assert.Equal(t, "example.com.ico", icon.Key)
	assert.Equal(t, body, icon.Data)
	assert.Equal(t, "png", icon.Format)
	w, h := icon.Size()
	assert.Equal(t, 16, w)
	assert.Equal(t, 16, h)
}

func TestFetcher_EscapesDomainAsSinglePathSegment(t *testing.T) {
	var gotURI string
	_, f := newIconServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.RequestURI
		_, _ = w.Write(testPNG(t, 1, 1))
	})

	_, err := f.Fetch(context.Background(), "a/b?c")

	require.NoError(t, err)
	assert.Equal(t, "/ip3/a%2Fb%3Fc.ico", gotURI)
}

func TestFetcher_StatusValidation(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusNoContent, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			_, f := newIconServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			})

			icon, err := f.Fetch(context.Background(), "example.com")

			assert.Nil(t, icon)
			require.ErrorIs(t, err, entity.ErrResponseFailedValidation)
			var iconErr *entity.IconError
			require.ErrorAs(t, err, &iconErr)
			assert.Equal(t, status, iconErr.StatusCode)
		})
	}
}

func TestFetcher_DecodeFailure(t *testing.T) {
	tests := map[string][]byte{
		"html":  []byte("<html><body>not found</body></html>"),
		"empty": nil,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, f := newIconServer(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write(body)
			})

			_, err := f.Fetch(context.Background(), "example.com")

			assert.ErrorIs(t, err, entity.ErrResponseDecodingFailed)
		})
	}
}

func TestFetcher_TruncatedBodyIsInvalidResponse(t *testing.T) {
	_, f := newIconServer(t, func(w http.ResponseWriter, _ *http.Request) {
		conn, buf, err := w.(http.Hijacker).Hijack()
		require.NoError(t, err)
		defer conn.Close()
		_, _ = buf.WriteString("HTTP/1.1 200 OK\r\nContent-Type: image/png\r\nContent-Length: 1000\r\n\r\nshort")
		_ = buf.Flush()
	})

	_, err := f.Fetch(context.Background(), "example.com")

	assert.ErrorIs(t, err, entity.ErrInvalidResponse)
}

func TestFetcher_OversizedBodyIsInvalidResponse(t *testing.T) {
	_, f := newIconServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte{0xff}, maxIconBytes+10))
	})

	_, err := f.Fetch(context.Background(), "example.com")

	assert.ErrorIs(t, err, entity.ErrInvalidResponse)
}

func TestFetcher_TransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL + "/ip3/%s.ico"
	srv.Close()

	_, err := NewFetcher(FetcherOptions{Endpoint: endpoint}).Fetch(context.Background(), "example.com")

	assert.ErrorIs(t, err, entity.ErrNetwork)
}

func TestFetcher_CancellationAbortsRequest(t *testing.T) {
	started := make(chan struct{})
	_, f := newIconServer(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := f.Fetch(ctx, "example.com")

	assert.ErrorIs(t, err, entity.ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	f := NewFetcher(FetcherOptions{Endpoint: srv.URL + "/%s", Timeout: 50 * time.Millisecond})

	_, err := f.Fetch(context.Background(), "example.com")

	assert.ErrorIs(t, err, entity.ErrNetwork)
}
