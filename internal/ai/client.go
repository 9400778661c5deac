// internal/ai/client.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"runcoach/running-app/internal/config"
)

// Default timeout for a single generation call. Plan generation can take a
// while on larger models.
const defaultRequestTimeout = 60 * time.Second

// CompletionOptions tune a single generation call.
type CompletionOptions struct {
	Temperature     float64
	MaxOutputTokens int // 0 means "no limit requested"
}

// Client issues requests against a Gemini-style generateContent endpoint.
// It performs exactly one synchronous call per Complete invocation and
// never retries.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a generation client from configuration.
func NewClient(cfg config.GeminiConfig) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
	}
}

// --- Wire Format ---
// Request/response shapes for the generateContent endpoint. Only the parts
// this client reads are modeled.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the prompt to the generation endpoint and returns the first
// candidate's first text part verbatim, uninterpreted. Errors follow the
// pipeline taxonomy: *UpstreamError when the service reports an error payload,
// *TransportError for network/HTTP failures, ErrEmptyResponse when no usable
// candidate text is present.
func (c *Client) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxOutputTokens,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	// The service reports failures both via status codes and via an error
	// envelope in the body. Prefer the envelope message when present.
	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", &TransportError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
		}
		return "", &TransportError{Err: fmt.Errorf("undecodable response body: %w", err)}
	}
	if parsed.Error != nil {
		return "", &UpstreamError{Message: parsed.Error.Message}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	text := parsed.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
