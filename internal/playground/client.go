// Package playground is the HTTP client for the playground's code-analysis
// backends. Every backend speaks the same contract: one JSON POST in, one
// {success, stdout, stderr} JSON document out. Calls are single-shot; a
// transport failure or a response that does not match the schema is the
// invocation's terminal error, never retried.
package playground

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"playbot/internal/errors"
	"playbot/internal/logging"
	"playbot/internal/wrap"
)

// PlayResult is the uniform outcome every backend (and the formatter)
// produces. It lives for one invocation only.
type PlayResult struct {
	Success bool   `json:"success"`
	Stdout  string `json:"stdout"`
	Stderr  string `json:"stderr"`
}

// CrateType tells the lint backend how to treat the crate
type CrateType string

const (
	// CrateBinary is used when the code textually contains an entry point
	CrateBinary CrateType = "bin"
	// CrateLibrary is used otherwise
	CrateLibrary CrateType = "lib"
)

// InferCrateType derives the crate type from the (already wrapped) code.
// A containment check, not a parse: the backend only needs the right
// compilation mode, and this matches what wrapping just decided.
func InferCrateType(code string) CrateType {
	if wrap.ContainsMain(code) {
		return CrateBinary
	}
	return CrateLibrary
}

type miriRequest struct {
	Code    string `json:"code"`
	Edition string `json:"edition"`
}

type macroExpansionRequest struct {
	Code    string `json:"code"`
	Edition string `json:"edition"`
}

type clippyRequest struct {
	Code      string    `json:"code"`
	Edition   string    `json:"edition"`
	CrateType CrateType `json:"crate_type"`
}

type formatRequest struct {
	Code    string `json:"code"`
	Edition string `json:"edition"`
}

// Client talks to the playground backends. The embedded http.Client and its
// connection pool are safe for concurrent use, so one Client serves all
// simultaneous invocations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

// NewClient creates a playground client for the given base URL
func NewClient(baseURL string, timeout time.Duration, logger *logging.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// Miri runs the code under the undefined-behavior interpreter
func (c *Client) Miri(ctx context.Context, code, edition string) (*PlayResult, error) {
	return c.post(ctx, "/miri", miriRequest{Code: code, Edition: edition})
}

// MacroExpansion expands the code's macros to their desugared form
func (c *Client) MacroExpansion(ctx context.Context, code, edition string) (*PlayResult, error) {
	return c.post(ctx, "/macro-expansion", macroExpansionRequest{Code: code, Edition: edition})
}

// Clippy lints the code; the crate type is inferred from the code itself
func (c *Client) Clippy(ctx context.Context, code, edition string) (*PlayResult, error) {
	return c.post(ctx, "/clippy", clippyRequest{
		Code:      code,
		Edition:   edition,
		CrateType: InferCrateType(code),
	})
}

// Format formats the code on the remote formatter backend
func (c *Client) Format(ctx context.Context, code, edition string) (*PlayResult, error) {
	return c.post(ctx, "/format", formatRequest{Code: code, Edition: edition})
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (*PlayResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(errors.InternalError, "failed to encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(errors.InternalError, "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "playbot/1.0")

	c.logger.Debug("Calling playground backend", map[string]interface{}{
		"path": path,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.NetworkError, "playground request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.BadResponse,
			fmt.Sprintf("playground answered %s on %s", resp.Status, path))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.NetworkError, "failed to read response body", err)
	}

	var result PlayResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.Wrap(errors.DecodeError, "playground response did not match schema", err)
	}

	return &result, nil
}
