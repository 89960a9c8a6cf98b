package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"reflect"
	"sync"
	"time"

	"school-admin/core/cache"
	"school-admin/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	autoSource = "auto"
	keyPrefix  = "translation:"

	// DefaultCacheTTL is used when the configuration sets no cache lifetime.
	DefaultCacheTTL = 24 * time.Hour
)

// Options control a single translation call.
type Options struct {
	// Target is the language code to translate into.
	Target string
	// Source is the language code of the input. Empty means auto-detect.
	Source string
	// Fields restricts TranslateData to string values under these keys. Empty translates every string.
	Fields []string
	// UseCache enables reading and writing the translation cache.
	UseCache bool
	// CacheTTL overrides the translator's default cache lifetime when positive.
	CacheTTL time.Duration
}

// Translator translates text and nested data through a Backend, memoizing results in a Cache.
// Backend failures are logged and the original text is returned.
type Translator struct {
	backend Backend
	cache   cache.Cache
	logger  *zap.Logger

	mu  sync.RWMutex
	ttl time.Duration

	sf singleflight.Group
}

// New creates a translator. A nil cache disables caching.
func New(backend Backend, c cache.Cache, cfg Config, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}

	ttl := DefaultCacheTTL
	if cfg.CacheMinutes > 0 {
		ttl = time.Duration(cfg.CacheMinutes) * time.Minute
	}

	return &Translator{
		backend: backend,
		cache:   c,
		logger:  logger.With(zap.String("component", "translator")),
		ttl:     ttl,
	}
}

// CacheKey returns the cache key for text translated from source into target.
func CacheKey(text, target, source string) string {
	if source == "" {
		source = autoSource
	}
	sum := sha256.Sum256([]byte(text + "|" + target + "|" + source))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Translate translates text. It never fails: on backend errors the original text is returned.
func (t *Translator) Translate(ctx context.Context, text string, opts Options) string {
	if text == "" {
		metrics.TranslationRequestsTotal.WithLabelValues("skipped").Inc()
		return text
	}

	key := CacheKey(text, opts.Target, opts.Source)
	if opts.UseCache {
		if cached, ok := t.lookup(ctx, key); ok {
			metrics.TranslationRequestsTotal.WithLabelValues("cache_hit").Inc()
			return cached
		}
	}

	v, err, _ := t.sf.Do(key, func() (interface{}, error) {
		start := time.Now()
		translated, err := t.backend.Translate(ctx, text, opts.Target, opts.Source)
		metrics.TranslationBackendDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			return nil, err
		}

		if opts.UseCache {
			t.store(ctx, key, translated, t.effectiveTTL(opts))
		}
		return translated, nil
	})
	if err != nil {
		metrics.TranslationRequestsTotal.WithLabelValues("failed").Inc()
		t.logger.Warn("Translation failed, returning original text",
			zap.String("text", text),
			zap.String("target", opts.Target),
			zap.String("source", sourceOrAuto(opts.Source)),
			zap.Error(err))
		return text
	}

	metrics.TranslationRequestsTotal.WithLabelValues("translated").Inc()
	return v.(string)
}

// TranslateArray translates every string value of texts. Other values are copied unchanged.
func (t *Translator) TranslateArray(ctx context.Context, texts map[string]any, opts Options) map[string]any {
	if texts == nil {
		return nil
	}

	out := make(map[string]any, len(texts))
	for k, v := range texts {
		if s, ok := v.(string); ok {
			out[k] = t.Translate(ctx, s, opts)
			continue
		}
		out[k] = v
	}
	return out
}

// TranslateData returns a copy of data with its string leaves translated.
//
// Maps with string keys and structs are walked by key (the json tag name for struct fields).
// When opts.Fields is set, only string values under a listed key are translated, but every
// nested container is still walked with the same list. Elements of slices and arrays have no
// key, so their strings are translated only when opts.Fields is empty. Other values pass through.
func (t *Translator) TranslateData(ctx context.Context, data any, opts Options) any {
	if data == nil {
		return nil
	}

	w := newWalker(ctx, t, opts)
	return w.walk(reflect.ValueOf(data), w.all, 0).Interface()
}

// ClearCache flushes the whole cache, not only translations.
func (t *Translator) ClearCache(ctx context.Context) error {
	if t.cache == nil {
		return nil
	}
	if err := t.cache.Flush(ctx); err != nil {
		return fmt.Errorf("failed to clear translation cache: %w", err)
	}
	t.logger.Info("Translation cache cleared")
	return nil
}

// SetCacheDuration sets the default lifetime of entries written from now on.
func (t *Translator) SetCacheDuration(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("cache duration must be positive, got %d minutes", minutes)
	}

	t.mu.Lock()
	t.ttl = time.Duration(minutes) * time.Minute
	t.mu.Unlock()

	t.logger.Info("Translation cache duration updated", zap.Int("minutes", minutes))
	return nil
}

// CacheDuration returns the default lifetime of cached translations.
func (t *Translator) CacheDuration() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ttl
}

func (t *Translator) effectiveTTL(opts Options) time.Duration {
	if opts.CacheTTL > 0 {
		return opts.CacheTTL
	}
	return t.CacheDuration()
}

func (t *Translator) lookup(ctx context.Context, key string) (string, bool) {
	if t.cache == nil {
		return "", false
	}
	v, ok, err := t.cache.Get(ctx, key)
	if err != nil {
		t.logger.Warn("Translation cache read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, ok
}

func (t *Translator) store(ctx context.Context, key, value string, ttl time.Duration) {
	if t.cache == nil {
		return
	}
	if err := t.cache.Put(ctx, key, value, ttl); err != nil {
		t.logger.Warn("Translation cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func sourceOrAuto(source string) string {
	if source == "" {
		return autoSource
	}
	return source
}
