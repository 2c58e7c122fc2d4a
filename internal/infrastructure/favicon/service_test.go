package favicon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webpageicon/internal/domain/entity"
)

type countingProvider struct {
	srv  *httptest.Server
	hits atomic.Int32
}

func newCountingProvider(t *testing.T, body []byte, status int) *countingProvider {
	t.Helper()
	p := &countingProvider{}
	p.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		p.hits.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(p.srv.Close)
	return p
}

func (p *countingProvider) options(dir string) Options {
	return Options{CacheDir: dir, Endpoint: p.srv.URL + "/ip3/%s.ico", MemoryEntries: 8}
}

func TestService_NetworkFillPopulatesBothTiers(t *testing.T) {
	body := testICO(t, 16)
	provider := newCountingProvider(t, body, http.StatusOK)
	dir := filepath.Join(t.TempDir(), "WebPageIconCache")
	svc := NewService(provider.options(dir))
	ctx := context.Background()

	icon, err := svc.Resolve(ctx, "example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com.ico", icon.Key)
	assert.Equal(t, int32(1), provider.hits.Load())

	onDisk, err := os.ReadFile(filepath.Join(dir, "example.com.ico"))
	require.NoError(t, err)
	assert.Equal(t, body, onDisk)
	assert.Equal(t, filepath.Join(dir, "example.com.ico"), svc.DiskPath("example.com"))
	assert.Equal(t, 1, svc.MemoryLen())

	again, err := svc.Resolve(ctx, "example.com")
	require.NoError(t, err)
	assert.Equal(t, icon.Data, again.Data)
	assert.Equal(t, int32(1), provider.hits.Load(), "warm cache must not refetch")
}

func TestService_DiskSurvivesRestart(t *testing.T) {
	provider := newCountingProvider(t, testPNG(t, 16, 16), http.StatusOK)
	dir := t.TempDir()
	ctx := context.Background()

	_, err := NewService(provider.options(dir)).Resolve(ctx, "example.com")
	require.NoError(t, err)

	restarted := NewService(provider.options(dir))
	assert.Zero(t, restarted.MemoryLen())

	cached, ok := restarted.Cached(ctx, "example.com")
	require.True(t, ok)
	assert.Equal(t, "png", cached.Format)
	assert.Equal(t, 1, restarted.MemoryLen(), "disk hit is promoted to memory")
	assert.Equal(t, int32(1), provider.hits.Load())
}

func TestService_ReleaseMemoryKeepsDisk(t *testing.T) {
	provider := newCountingProvider(t, testPNG(t, 8, 8), http.StatusOK)
	svc := NewService(provider.options(t.TempDir()))
	ctx := context.Background()

	for _, d := range []string{"a.com", "b.com", "c.com"} {
		_, err := svc.Resolve(ctx, d)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, svc.ReleaseMemory(0))
	assert.Zero(t, svc.MemoryLen())
	assert.Equal(t, uint64(3), svc.MemoryEvictions())

	_, err := svc.Resolve(ctx, "a.com")
	require.NoError(t, err)
	assert.Equal(t, int32(3), provider.hits.Load(), "served from disk after memory release")

	svc.PurgeMemory()
	assert.Zero(t, svc.MemoryLen())
	_, ok := svc.Cached(ctx, "b.com")
	assert.True(t, ok, "disk tier survives purge")
}

func TestService_NotFoundDoesNotCache(t *testing.T) {
	provider := newCountingProvider(t, nil, http.StatusNotFound)
	dir := t.TempDir()
	svc := NewService(provider.options(dir))

	_, err := svc.Resolve(context.Background(), "missing.example")
	assert.ErrorIs(t, err, entity.ErrResponseFailedValidation)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
	assert.Zero(t, svc.MemoryLen())
}

func TestService_ObserveAndStream(t *testing.T) {
	provider := newCountingProvider(t, testPNG(t, 16, 16), http.StatusOK)
	svc := NewService(provider.options(t.TempDir()))
	ctx := context.Background()

	var observed []entity.ProgressKind
	for ev := range svc.Observe(ctx, "example.com") {
		observed = append(observed, ev.Kind)
	}
	assert.Equal(t, []entity.ProgressKind{entity.ProgressStarted, entity.ProgressCompleted}, observed)

	var streamed []entity.ProgressKind
	for ev, err := range svc.Stream(ctx, "example.com") {
		require.NoError(t, err)
		streamed = append(streamed, ev.Kind)
	}
	assert.Equal(t, []entity.ProgressKind{entity.ProgressStarted, entity.ProgressCompleted}, streamed)

	var empty []entity.ProgressEvent
	for ev := range svc.Observe(ctx, "") {
		empty = append(empty, ev)
	}
	require.Len(t, empty, 1)
	assert.ErrorIs(t, empty[0].Err, entity.ErrInvalidURL)
	assert.Equal(t, int32(1), provider.hits.Load())
}

func TestService_IsolatedInstances(t *testing.T) {
	provider := newCountingProvider(t, testPNG(t, 4, 4), http.StatusOK)
	ctx := context.Background()

	first := NewService(provider.options(t.TempDir()))
	second := NewService(provider.options(t.TempDir()))

	_, err := first.Resolve(ctx, "example.com")
	require.NoError(t, err)
	_, ok := second.Cached(ctx, "example.com")
	assert.False(t, ok)
}

func TestService_ExportPNG(t *testing.T) {
	provider := newCountingProvider(t, testPNG(t, 16, 16), http.StatusOK)
	svc := NewService(provider.options(t.TempDir()))

	icon, err := svc.Resolve(context.Background(), "example.com")
	require.NoError(t, err)

	path, err := svc.ExportPNG(icon, t.TempDir(), NormalizedIconSize)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestService_DefaultCacheDir(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CACHE_HOME", root)
	provider := newCountingProvider(t, testPNG(t, 4, 4), http.StatusOK)

	opts := provider.options("")
	svc := NewService(opts)
	_, err := svc.Resolve(context.Background(), "example.com")
	require.NoError(t, err)

	want := filepath.Join(root, "WebPageIconCache", "example.com.ico")
	assert.Equal(t, want, svc.DiskPath("example.com"))
	assert.FileExists(t, want)
}

func TestService_DisableDisk(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CACHE_HOME", root)
	provider := newCountingProvider(t, testPNG(t, 4, 4), http.StatusOK)

	opts := provider.options(t.TempDir())
	opts.DisableDisk = true
	svc := NewService(opts)
	_, err := svc.Resolve(context.Background(), "example.com")
	require.NoError(t, err)

	assert.Empty(t, svc.DiskPath("example.com"))
	assert.NoDirExists(t, filepath.Join(root, "WebPageIconCache"))
}
