// Copyright © 2025 Slipway Authors

// Package ai provides the reasoning backends used by the analysis pipeline
// and the strict decoding of their structured responses.
//
// Providers form a closed set: selection is an exhaustive switch over the
// Provider enum so adding or removing one is a compile-time-checked change.
// Credentials arrive through the Config struct; clients never read the
// process environment themselves.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slipway-sh/slipway/pkg/errors"
)

// Provider identifies a reasoning backend.
type Provider string

const (
	// ProviderAnthropic selects the Anthropic messages API
	ProviderAnthropic Provider = "anthropic"

	// ProviderOpenAI selects the OpenAI chat completions API
	ProviderOpenAI Provider = "openai"
)

// ParseProvider validates a provider identifier from configuration.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderAnthropic:
		return ProviderAnthropic, nil
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	}
	return "", fmt.Errorf("unknown AI provider %q (expected anthropic or openai)", s)
}

// Request is one completion request. System carries role instructions,
// Prompt the task input.
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Model is a callable reasoning backend.
type Model interface {
	// Complete returns the raw text of the model response.
	Complete(ctx context.Context, req Request) (string, error)
}

// Config selects and authenticates a provider.
type Config struct {
	Provider     Provider
	Model        string // optional override of the provider default
	AnthropicKey string
	OpenAIKey    string
	Timeout      time.Duration
	BaseURL      string // optional override, used by tests
}

const defaultTimeout = 120 * time.Second

// NewModel constructs the configured backend. A missing API key surfaces as
// ErrNoCredentials here, at the point of first use.
func NewModel(cfg Config) (Model, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := &http.Client{Timeout: timeout}
	switch cfg.Provider {
	case ProviderAnthropic:
		if cfg.AnthropicKey == "" {
			return nil, errors.ErrNoCredentials.Wrap(fmt.Errorf("ANTHROPIC_API_KEY is not set"))
		}
		return newAnthropicClient(cfg, client), nil
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, errors.ErrNoCredentials.Wrap(fmt.Errorf("OPENAI_API_KEY is not set"))
		}
		return newOpenAIClient(cfg, client), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

// apiError preserves the upstream status and body in the error text so the
// retry predicate can classify rate limits, 5xx and overload signals.
type apiError struct {
	provider Provider
	status   int
	body     string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.provider, e.status, e.body)
}
