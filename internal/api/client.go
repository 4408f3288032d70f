// Package api implements the HTTP client for the remote analysis
// service, which owns all parsing and scoring semantics.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/kredita/kredita/internal/model"
)

// DefaultBaseURL is where the analysis service listens when nothing
// else is configured.
const DefaultBaseURL = "http://127.0.0.1:8000"

// Client talks to the analysis service.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Transactions []model.Transaction `json:"transactions"`
}

type scoreResponse struct {
	Metrics      model.Metrics       `json:"metrics"`
	Advice       model.Advice        `json:"advice"`
	Transactions []model.Transaction `json:"transactions"`
	Score        int                 `json:"score"`
}

// NewClient creates a client for the service at baseURL. An empty
// baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the configured service address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Parse submits message text for extraction only and returns the
// structured transaction list.
func (c *Client) Parse(ctx context.Context, text string) ([]model.Transaction, error) {
	var out parseResponse
	if err := c.post(ctx, "/parse", text, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// Score submits message text for extraction plus credit-health
// scoring. The returned transaction list accompanies the score result.
func (c *Client) Score(ctx context.Context, text string) ([]model.Transaction, *model.ScoreResult, error) {
	var out scoreResponse
	if err := c.post(ctx, "/score", text, &out); err != nil {
		return nil, nil, err
	}
	result := &model.ScoreResult{
		Score:   out.Score,
		Metrics: out.Metrics,
		Advice:  out.Advice,
	}
	return out.Transactions, result, nil
}

// Health checks that the service is reachable.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UnreachableError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &RemoteError{Status: resp.StatusCode}
	}
	return nil
}

func (c *Client) post(ctx context.Context, endpoint, text string, out any) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}

	body, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("submitting text to analysis service",
		"endpoint", endpoint,
		"bytes", len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UnreachableError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused; the body content
		// is not part of the error surface.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &RemoteError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteError{Status: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
