// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Configuration constants for the Gemini API.
const (
	// APIKeyEnv is the environment variable holding the credential.
	APIKeyEnv = "GEMINI_API_KEY"

	// DefaultModel is the model used for every request.
	DefaultModel = "gemini-2.0-flash"

	// DefaultTemperature is the sampling temperature used for every request.
	DefaultTemperature float32 = 0.7
)

// Config configures the client.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32

	// BaseURL overrides the API endpoint. Empty means the SDK default.
	BaseURL string
}

// DefaultConfig returns the default configuration without a credential.
func DefaultConfig() Config {
	return Config{
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
	}
}

// Client generates text replies with a fixed model and temperature.
// It is safe to call Generate from a background goroutine.
type Client struct {
	genai       *genai.Client
	model       string
	temperature float32
}

// NewFromEnv reads GEMINI_API_KEY and builds a client from cfg.
// A missing or blank key fails before any client is constructed.
func NewFromEnv(ctx context.Context, cfg Config) (*Client, error) {
	key := strings.TrimSpace(os.Getenv(APIKeyEnv))
	if key == "" {
		return nil, &ConfigError{Err: ErrMissingAPIKey}
	}
	cfg.APIKey = key
	return New(ctx, cfg)
}

// New builds a client for the Gemini API backend.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &ConfigError{Err: ErrMissingAPIKey}
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("create client: %w", err)}
	}

	return &Client{
		genai:       gc,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

// Model returns the model identifier requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// Generate sends prompt unchanged and returns the reply text, which may be
// empty. Every failure is returned as a *GenerationError.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	log.Printf("gemini: generate start model=%s prompt_len=%d", c.model, len(prompt))

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	})
	if err != nil {
		log.Printf("gemini: generate failed model=%s after=%s", c.model, time.Since(start))
		return "", &GenerationError{Err: err}
	}
	if resp == nil {
		return "", &GenerationError{Err: ErrNilResponse}
	}
	if len(resp.Candidates) == 0 {
		return "", &GenerationError{Err: ErrNoCandidates}
	}

	text := resp.Text()
	log.Printf("gemini: generate done model=%s after=%s reply_len=%d", c.model, time.Since(start), len(text))
	return text, nil
}
