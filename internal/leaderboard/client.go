package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// Header carrying the API key when the service requires one.
const apiKeyHeader = "X-Api-Key"

// Client talks to a leaderboard service. Credentials are fixed at
// construction; a client with an empty base URL is disabled and every call
// reports ErrDisabled.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// ErrDisabled is returned when no leaderboard URL was configured.
var ErrDisabled = fmt.Errorf("leaderboard: no service configured")

// NewClient creates a leaderboard client. baseURL may be empty, which
// produces a disabled client so callers need no separate nil checks.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a service URL is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Top fetches the top entries for a game. Transient failures (network
// errors, 5xx) are retried with exponential backoff; client errors surface
// immediately as *APIError.
func (c *Client) Top(ctx context.Context, game string) (*TopResponse, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	var out TopResponse
	backoff := retry.WithMaxRetries(3, retry.NewExponential(300*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		u := fmt.Sprintf("%s/api/leaderboard?game=%s", c.baseURL, url.QueryEscape(game))
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		if err := c.do(req, &out); err != nil {
			if apiErr, ok := err.(*APIError); ok && apiErr.Status < 500 {
				return err
			}
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewSubmission builds a submission with a fresh client-generated ID.
// Holding on to the value makes retries safe: the server deduplicates on
// the ID, so reposting it can never double-count a run.
func NewSubmission(game, name string, score int) Submission {
	return Submission{
		SubmissionID: uuid.NewString(),
		Game:         game,
		Name:         name,
		Score:        score,
	}
}

// Submit validates and posts a finished run. The write itself is not retried
// automatically; callers keep the Submission from NewSubmission and use
// Resubmit to retry safely.
func (c *Client) Submit(ctx context.Context, game, name string, score int) (*SubmitResponse, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return c.Resubmit(ctx, NewSubmission(game, name, score))
}

// Resubmit posts a previously built submission, reusing its ID. The server
// deduplicates on the ID, so this is the retry path after a dropped response.
func (c *Client) Resubmit(ctx context.Context, sub Submission) (*SubmitResponse, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/leaderboard", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out SubmitResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do executes a request, decodes the response, and maps error payloads to
// *APIError with the server's message intact.
func (c *Client) do(req *http.Request, out any) error {
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("leaderboard: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}
		var payload errorPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error.Message != "" {
			apiErr.Code = payload.Error.Code
			apiErr.Message = payload.Error.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("leaderboard: decode response: %w", err)
	}
	return nil
}
