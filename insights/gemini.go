// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"

	"github.com/danielhkuo/qarari/i18n"
	"github.com/danielhkuo/qarari/models"
)

const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel    = "gemini-2.0-flash"

	// MaxResponseBytes caps how much of a reply is read.
	MaxResponseBytes = 1 << 20
)

// GeminiConfig configures a GeminiClient. Zero values get defaults.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Endpoint    string
	MaxTokens   int
	Temperature float64
	Attempts    uint
	RetryDelay  time.Duration
	HTTPClient  *http.Client
}

// GeminiClient generates insights with Google's generateContent API.
type GeminiClient struct {
	cfg GeminiConfig
}

func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 200
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 500 * time.Millisecond
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &GeminiClient{cfg: cfg}
}

// StatusError is a non-200 reply from the API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini returned %d: %s", e.StatusCode, e.Message)
}

// transient reports whether a failed call is worth repeating.
func transient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == http.StatusTooManyRequests || se.StatusCode >= 500
	}
	var ue *url.Error
	return errors.As(err, &ue)
}

// Generate returns ErrUnavailable when no API key is configured.
func (c *GeminiClient) Generate(ctx context.Context, d models.Decision, lang i18n.Language) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrUnavailable
	}

	prompt, err := BuildPrompt(d, lang)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"temperature":     c.cfg.Temperature,
			"maxOutputTokens": c.cfg.MaxTokens,
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal request")
	}

	var text string
	err = retry.Do(
		func() error {
			text, err = c.call(ctx, body)
			return err
		},
		retry.Attempts(c.cfg.Attempts),
		retry.LastErrorOnly(true),
		retry.Delay(c.cfg.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(transient),
		retry.Context(ctx),
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate insights")
	}
	return text, nil
}

func (c *GeminiClient) call(ctx context.Context, body []byte) (string, error) {
	// Transport errors quote the URL, so the key must stay out of it.
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.Endpoint, url.PathEscape(c.cfg.Model))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return "", errors.Wrap(err, "failed to read response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", parseError(resp.StatusCode, raw)
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", errors.Wrap(err, "failed to parse response")
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func parseError(status int, body []byte) error {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return &StatusError{StatusCode: status, Message: errResp.Error.Message}
	}
	return &StatusError{StatusCode: status, Message: string(body)}
}
