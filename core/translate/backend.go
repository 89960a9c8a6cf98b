package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Backend translates a single text. An empty source asks the backend to detect the language.
type Backend interface {
	Translate(ctx context.Context, text, target, source string) (string, error)
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(ctx context.Context, text, target, source string) (string, error)

func (f BackendFunc) Translate(ctx context.Context, text, target, source string) (string, error) {
	return f(ctx, text, target, source)
}

// HTTPBackend calls a LibreTranslate-compatible JSON API.
type HTTPBackend struct {
	client *resty.Client
	apiKey string
}

var _ Backend = (*HTTPBackend)(nil)

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPBackend creates a backend for the service at cfg.Endpoint.
func NewHTTPBackend(cfg Config) *HTTPBackend {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetHeader("User-Agent", "school-admin/1.0").
		SetTimeout(time.Duration(timeout) * time.Second).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(200 * time.Millisecond)

	return &HTTPBackend{client: client, apiKey: cfg.ApiKey}
}

// Translate posts text to /translate.
func (b *HTTPBackend) Translate(ctx context.Context, text, target, source string) (string, error) {
	if source == "" {
		source = autoSource
	}

	var result translateResponse
	var apiErr errorResponse
	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(translateRequest{
			Q:      text,
			Source: source,
			Target: target,
			Format: "text",
			APIKey: b.apiKey,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/translate")
	if err != nil {
		return "", fmt.Errorf("failed to call translation api: %w", err)
	}

	if resp.IsError() {
		msg := apiErr.Error
		if msg == "" {
			msg = resp.String()
		}
		return "", fmt.Errorf("translation api error (status %d): %s", resp.StatusCode(), msg)
	}

	if result.TranslatedText == "" {
		return "", fmt.Errorf("translation api returned an empty translation")
	}

	return result.TranslatedText, nil
}
