// Package llm wraps a text-completion API for longer-form flavor content.
// The client is fully optional: without an API key it runs disabled and
// returns a marked placeholder instead of failing the run.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultEndpoint = "https://api.anthropic.com/v1/messages"
	apiVersion      = "2023-06-01"

	// PlaceholderDisabled is returned when no client is configured.
	PlaceholderDisabled = "[LLM-GENERATED-CONTENT]"
	// PlaceholderError is returned when a completion call fails.
	PlaceholderError = "[LLM-ERROR]"
)

type Config struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	// BatchDelay is the fixed sleep between batched calls.
	BatchDelay time.Duration
	// Endpoint overrides the API URL, for tests.
	Endpoint string
}

// Stats is cumulative usage accounting for the run summary.
type Stats struct {
	Calls  int
	Tokens int
}

type Client struct {
	cfg   Config
	http  *http.Client
	log   zerolog.Logger
	stats Stats
}

func New(cfg Config, log zerolog.Logger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 60 * time.Second},
		log:  log,
	}
	if cfg.APIKey == "" {
		c.log.Warn().Msg("no API key provided, text completion disabled")
	}
	return c
}

// Enabled reports whether completions will reach the API.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

// Stats returns cumulative call and token usage.
func (c *Client) Stats() Stats {
	return c.stats
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
}

type response struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Complete generates text for a prompt. Disabled clients return the disabled
// placeholder; call failures log and return the error placeholder. Neither
// aborts the run.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64, system string) string {
	if !c.Enabled() {
		return PlaceholderDisabled
	}
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxTokens
	}
	if temperature < 0 {
		temperature = c.cfg.Temperature
	}

	text, err := c.call(ctx, request{
		Model:       c.cfg.Model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		System:      system,
		Messages:    []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		c.log.Error().Err(err).Msg("text completion failed")
		return PlaceholderError
	}
	return text
}

// CompleteBatch generates one completion per prompt, sleeping the configured
// delay between calls as a crude rate limit.
func (c *Client) CompleteBatch(ctx context.Context, prompts []string, maxTokens int, temperature float64, system string) []string {
	results := make([]string, 0, len(prompts))
	for i, prompt := range prompts {
		results = append(results, c.Complete(ctx, prompt, maxTokens, temperature, system))
		if c.Enabled() && i < len(prompts)-1 && c.cfg.BatchDelay > 0 {
			time.Sleep(c.cfg.BatchDelay)
		}
	}
	return results
}

func (c *Client) call(ctx context.Context, req request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.cfg.APIKey)
	httpReq.Header.Set("Anthropic-Version", apiVersion)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API returned %s", resp.Status)
	}

	var parsed response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(parsed.Content) == 0 {
		return "", fmt.Errorf("completion response has no content")
	}

	c.stats.Calls++
	c.stats.Tokens += parsed.Usage.InputTokens + parsed.Usage.OutputTokens

	text := strings.TrimSpace(parsed.Content[0].Text)
	c.log.Debug().Int("call", c.stats.Calls).Int("chars", len(text)).Msg("text completion")
	return text, nil
}
