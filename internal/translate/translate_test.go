package translate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/nleiva/contentscale/pkg/backend"
)

type capturedRequest struct {
	key  string
	body map[string]string
}

func newTranslateServer(t *testing.T, status int, reply string) (*httptest.Server, *[]capturedRequest, *int32) {
	t.Helper()
	var (
		mu       sync.Mutex
		captured []capturedRequest
		hits     int32
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		mu.Lock()
		captured = append(captured, capturedRequest{key: r.URL.Query().Get("key"), body: body})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured, &hits
}

func TestClientTranslate(t *testing.T) {
	srv, captured, _ := newTranslateServer(t, http.StatusOK,
		`{"data":{"translations":[{"translatedText":"Hello","detectedSourceLanguage":"es"}]}}`)

	c := NewClient("secret", srv.URL, time.Second)
	res, err := c.Translate(context.Background(), Request{Text: "Hola", Target: "en"})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if res.Text != "Hello" || res.DetectedSource != "es" {
		t.Errorf("result = %+v", res)
	}

	got := (*captured)[0]
	if got.key != "secret" {
		t.Errorf("key param = %q", got.key)
	}
	if got.body["q"] != "Hola" || got.body["target"] != "en" || got.body["format"] != "text" {
		t.Errorf("body = %v", got.body)
	}
	if _, ok := got.body["source"]; ok {
		t.Errorf("source should be omitted for auto-detection")
	}
}

func TestClientTranslateEmptyResult(t *testing.T) {
	srv, _, _ := newTranslateServer(t, http.StatusOK, `{"data":{"translations":[]}}`)
	res, err := NewClient("k", srv.URL, time.Second).Translate(context.Background(), Request{Text: "same", Target: "de"})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if res.Text != "same" {
		t.Errorf("empty response should keep original, got %q", res.Text)
	}
}

func TestClientTranslateAPIError(t *testing.T) {
	srv, _, _ := newTranslateServer(t, http.StatusForbidden, `{"error":{"code":403,"message":"API key not valid"}}`)
	_, err := NewClient("bad", srv.URL, time.Second).Translate(context.Background(), Request{Text: "x", Target: "en"})

	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusForbidden || apiErr.Message != "API key not valid" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestTranslateMockIsCached(t *testing.T) {
	cache := NewMemoryCache()
	a := New(Config{MockDelay: 60 * time.Millisecond, HoverCache: cache})
	ctx := context.Background()

	first := a.Translate(ctx, "Guten Tag.", "")
	if first != "[EN] Guten Tag." {
		t.Fatalf("first = %q", first)
	}

	start := time.Now()
	second := a.Translate(ctx, "Guten Tag.", "")
	if second != first {
		t.Errorf("second = %q, want %q", second, first)
	}
	if elapsed := time.Since(start); elapsed >= 60*time.Millisecond {
		t.Errorf("cached call took %v, expected no simulated delay", elapsed)
	}
	if cache.Len() != 1 {
		t.Errorf("cache has %d entries, want 1", cache.Len())
	}
}

func TestTranslateFailureFallback(t *testing.T) {
	srv, _, _ := newTranslateServer(t, http.StatusInternalServerError, `oops`)
	a := New(Config{APIKey: "k", Endpoint: srv.URL})

	if got := a.Translate(context.Background(), "Bonjour", "en"); got != "✓ English: Bonjour" {
		t.Errorf("Translate = %q", got)
	}
	if got := a.TranslateContent(context.Background(), "Hello", "French"); got != "Hello" {
		t.Errorf("TranslateContent = %q, want original", got)
	}
}

func TestCancelledTranslateIsNotCached(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		time.Sleep(50 * time.Millisecond)
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"Hello","detectedSourceLanguage":"de"}]}}`))
	}))
	defer srv.Close()

	a := New(Config{APIKey: "k", Endpoint: srv.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	if got := a.Translate(ctx, "Hallo", "en"); got != FallbackPrefix+"Hallo" {
		t.Errorf("timed out Translate = %q, want fallback", got)
	}
	if got := a.Translate(context.Background(), "Hallo", "en"); got != "Hello" {
		t.Errorf("Translate after a timed out call = %q, want %q", got, "Hello")
	}

	ctx, cancel = context.WithCancel(context.Background())
	cancel()
	if got := a.TranslateContent(ctx, "Good morning", "German"); got != "Good morning" {
		t.Errorf("cancelled TranslateContent = %q, want original", got)
	}
	if got := a.TranslateContent(context.Background(), "Good morning", "German"); got != "Hello" {
		t.Errorf("TranslateContent after a cancelled call = %q", got)
	}
	if n := atomic.LoadInt32(&hits); n > 3 {
		t.Errorf("endpoint hit %d times, want at most 3", n)
	}
}

func TestTranslateContent(t *testing.T) {
	srv, captured, hits := newTranslateServer(t, http.StatusOK,
		`{"data":{"translations":[{"translatedText":"Hallo"}]}}`)
	a := New(Config{APIKey: "k", Endpoint: srv.URL})
	ctx := context.Background()

	if !a.Live() {
		t.Fatalf("adapter with key should be live")
	}
	if got := a.TranslateContent(ctx, "Hello", "German"); got != "Hallo" {
		t.Errorf("TranslateContent = %q", got)
	}
	if got := a.TranslateContent(ctx, "Hello", "German"); got != "Hallo" {
		t.Errorf("cached TranslateContent = %q", got)
	}
	if n := atomic.LoadInt32(hits); n != 1 {
		t.Errorf("endpoint hit %d times, want 1", n)
	}

	body := (*captured)[0].body
	if body["source"] != "en" || body["target"] != "de" {
		t.Errorf("body = %v", body)
	}
}

func TestTranslateContentWithoutKey(t *testing.T) {
	a := New(Config{})
	if a.Live() {
		t.Fatalf("adapter without key should not be live")
	}
	if got := a.TranslateContent(context.Background(), "Hello", "Japanese"); got != "Hello" {
		t.Errorf("TranslateContent = %q", got)
	}
}

func TestCachesAreIndependent(t *testing.T) {
	hover, content := NewMemoryCache(), NewMemoryCache()
	srv, _, _ := newTranslateServer(t, http.StatusOK, `{"data":{"translations":[{"translatedText":"T"}]}}`)
	a := New(Config{APIKey: "k", Endpoint: srv.URL, HoverCache: hover, ContentCache: content})

	a.Translate(context.Background(), "Hello", "en")
	if hover.Len() != 1 || content.Len() != 0 {
		t.Errorf("hover=%d content=%d after hover call", hover.Len(), content.Len())
	}
	a.TranslateContent(context.Background(), "Hello", "English")
	if content.Len() != 1 {
		t.Errorf("content=%d after content call", content.Len())
	}
}

func TestConcurrentTranslationsCollapse(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		time.Sleep(50 * time.Millisecond)
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"Hola"}]}}`))
	}))
	defer srv.Close()

	a := New(Config{APIKey: "k", Endpoint: srv.URL})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := a.TranslateContent(context.Background(), "Hello", "Spanish"); got != "Hola" {
				t.Errorf("got %q", got)
			}
		}()
	}
	wg.Wait()
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("endpoint hit %d times, want 1", n)
	}
}

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache, err := NewRedisCache(mr.Addr(), "", "test:tr:")
	if err != nil {
		t.Fatalf("new redis cache: %v", err)
	}
	defer cache.Close()
	ctx := context.Background()

	if _, err := cache.Get(ctx, "en:missing"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
	if err := cache.Set(ctx, "en:Hallo", "Hello"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := cache.Get(ctx, "en:Hallo")
	if err != nil || got != "Hello" {
		t.Fatalf("get = %q, %v", got, err)
	}

	a := New(Config{HoverCache: cache})
	if got := a.Translate(ctx, "Hallo", "en"); got != "Hello" {
		t.Errorf("adapter should read through redis cache, got %q", got)
	}
}

func TestRedisCacheRequiresAddr(t *testing.T) {
	if c, err := NewRedisCache("", "", "x"); err == nil || c != nil {
		t.Fatalf("expected constructor error for empty redis addr")
	}
}

func TestRedisCacheDown(t *testing.T) {
	mr := miniredis.RunT(t)
	cache, err := NewRedisCache(mr.Addr(), "", "test:tr:")
	if err != nil {
		t.Fatalf("new redis cache: %v", err)
	}
	defer cache.Close()
	mr.Close()

	a := New(Config{HoverCache: cache})
	if got := a.Translate(context.Background(), "Ciao", "en"); got != "[EN] Ciao" {
		t.Errorf("redis failure should not break translation, got %q", got)
	}
}
