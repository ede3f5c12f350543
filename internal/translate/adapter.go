package translate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/nleiva/contentscale/internal/catalog"
)

// Default values for Config.
const (
	DefaultMockDelay = 300 * time.Millisecond
	DefaultTimeout   = 30 * time.Second
)

// Markers prefixed to text that was not really translated.
const (
	MockPrefix     = "[EN] "
	FallbackPrefix = "✓ English: "
)

// Config configures an Adapter. A zero APIKey runs the adapter in mock mode.
type Config struct {
	APIKey    string
	Endpoint  string
	Timeout   time.Duration
	MockDelay time.Duration

	// HoverCache and ContentCache default to fresh MemoryCaches.
	HoverCache   Cache
	ContentCache Cache

	Catalog *catalog.Catalog
}

// Adapter serves two independent paths: short hover translations into
// English with language detection, and full-document translation from
// English into a target language.
type Adapter struct {
	client    *Client
	catalog   *catalog.Catalog
	hover     Cache
	content   Cache
	mockDelay time.Duration
	group     singleflight.Group
}

// New builds an adapter from cfg.
func New(cfg Config) *Adapter {
	a := &Adapter{
		catalog:   cfg.Catalog,
		hover:     cfg.HoverCache,
		content:   cfg.ContentCache,
		mockDelay: cfg.MockDelay,
	}
	if a.catalog == nil {
		a.catalog = catalog.Default()
	}
	if a.hover == nil {
		a.hover = NewMemoryCache()
	}
	if a.content == nil {
		a.content = NewMemoryCache()
	}
	if a.mockDelay < 0 {
		a.mockDelay = 0
	}
	if cfg.APIKey != "" {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		a.client = NewClient(cfg.APIKey, cfg.Endpoint, timeout)
	}
	return a
}

// Live reports whether a credential is configured.
func (a *Adapter) Live() bool {
	return a.client != nil
}

// Translate translates text into target ("en" when empty) for the hover
// path. It always returns a string; results, including mock and fallback
// markers, are cached.
func (a *Adapter) Translate(ctx context.Context, text, target string) string {
	if target == "" {
		target = "en"
	}
	key := cacheKey(target, text)
	if v, ok := a.cached(ctx, a.hover, key); ok {
		return v
	}

	// The shared call is detached from ctx: one caller giving up must not
	// abort it for the others or leave its fallback in the cache.
	ch := a.group.DoChan("hover\x00"+key, func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		if v, ok := a.cached(ctx, a.hover, key); ok {
			return v, nil
		}
		out := a.hoverTranslate(ctx, text, target)
		if err := a.hover.Set(ctx, key, out); err != nil {
			slog.Warn("translation cache write failed", "path", "hover", "error", err)
		}
		return out, nil
	})
	select {
	case res := <-ch:
		return res.Val.(string)
	case <-ctx.Done():
		return FallbackPrefix + text
	}
}

func (a *Adapter) hoverTranslate(ctx context.Context, text, target string) string {
	if a.client == nil {
		slog.Warn("translation API key not found, using mock translation")
		sleep(ctx, a.mockDelay)
		return MockPrefix + text
	}

	res, err := a.client.Translate(ctx, Request{Text: text, Target: target})
	if err != nil {
		slog.Error("translation failed", "path", "hover", "error", err)
		sleep(ctx, a.mockDelay)
		return FallbackPrefix + text
	}
	slog.Debug("translated", "detected", res.DetectedSource, "target", target)
	return res.Text
}

// TranslateContent translates English content into language, a display name
// such as "German" or "Spanish (MX)". Without a credential, or on any
// failure, text is returned unchanged and nothing is cached.
func (a *Adapter) TranslateContent(ctx context.Context, text, language string) string {
	code := a.catalog.LanguageCode(language)
	key := cacheKey(code, text)
	if v, ok := a.cached(ctx, a.content, key); ok {
		return v
	}
	if a.client == nil {
		slog.Warn("translation API key not found, returning original content", "language", language)
		return text
	}

	ch := a.group.DoChan("content\x00"+key, func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		if v, ok := a.cached(ctx, a.content, key); ok {
			return v, nil
		}
		res, err := a.client.Translate(ctx, Request{Text: text, Target: code, Source: "en"})
		if err != nil {
			return nil, err
		}
		if err := a.content.Set(ctx, key, res.Text); err != nil {
			slog.Warn("translation cache write failed", "path", "content", "error", err)
		}
		return res.Text, nil
	})
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		res.Err = ctx.Err()
	}
	if res.Err != nil {
		slog.Error("content translation failed", "language", language, "code", code, "error", res.Err)
		return text
	}
	slog.Info("content translated", "language", language, "code", code)
	return res.Val.(string)
}

func (a *Adapter) cached(ctx context.Context, c Cache, key string) (string, bool) {
	v, err := c.Get(ctx, key)
	if err == nil {
		return v, true
	}
	if !errors.Is(err, ErrCacheMiss) {
		slog.Warn("translation cache read failed", "error", err)
	}
	return "", false
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
