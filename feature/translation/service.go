package translation

import (
	"context"

	"school-admin/core/translate"

	"go.uber.org/zap"
)

// Service exposes the translator to HTTP handlers.
type Service struct {
	translator    *translate.Translator
	defaultTarget string
	logger        *zap.Logger
}

// NewService creates a new translation service.
func NewService(translator *translate.Translator, defaultTarget string, logger *zap.Logger) *Service {
	return &Service{
		translator:    translator,
		defaultTarget: defaultTarget,
		logger:        logger,
	}
}

// Translate translates a single text.
func (s *Service) Translate(ctx context.Context, text string, opts translate.Options) string {
	return s.translator.Translate(ctx, text, opts)
}

// TranslateData translates the string leaves of nested data.
func (s *Service) TranslateData(ctx context.Context, data any, opts translate.Options) any {
	return s.translator.TranslateData(ctx, data, opts)
}

// TranslateArray translates the string values of a flat map.
func (s *Service) TranslateArray(ctx context.Context, texts map[string]any, opts translate.Options) map[string]any {
	return s.translator.TranslateArray(ctx, texts, opts)
}

// ClearCache flushes the translation cache.
func (s *Service) ClearCache(ctx context.Context) error {
	return s.translator.ClearCache(ctx)
}

// SetCacheDuration changes the lifetime of future cache entries.
func (s *Service) SetCacheDuration(minutes int) error {
	return s.translator.SetCacheDuration(minutes)
}
