// Package client talks to the site service that analyzes pages, test-runs
// extraction configurations and stores new sites.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/sitewizard/internal/logger"
	"github.com/mark3labs/sitewizard/internal/site"
)

const wizardPrefix = "/site-wizard"

// maxErrorBody caps how much of an error response is kept for logs.
const maxErrorBody = 2048

// Client is an HTTP client for the site-wizard endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// New creates a client for baseURL (e.g. http://localhost:8000/api/v1).
func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient creates a client using hc for transport.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
		log:        logger.Named("client"),
	}
}

// BaseURL returns the service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// postJSON sends body to endpoint and decodes a 2xx response into T.
// Every failure is returned as *site.RemoteError.
func postJSON[T any](ctx context.Context, c *Client, op, endpoint string, body any) (*T, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", op, err)
	}

	url := c.baseURL + wizardPrefix + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	c.log.Debug("POST %s", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("%s: transport error after %s: %v", op, time.Since(start), err)
		return nil, &site.RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &site.RemoteError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}

	c.log.Info("%s: %d in %s", op, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(respBody)
		c.log.Error("%s: status %d: %s", op, resp.StatusCode, truncate(string(respBody), maxErrorBody))
		return nil, &site.RemoteError{
			Op:      op,
			Status:  resp.StatusCode,
			Message: msg,
			Err:     fmt.Errorf("unexpected status code: %d", resp.StatusCode),
		}
	}

	var result T
	if err := json.Unmarshal(respBody, &result); err != nil {
		c.log.Error("%s: malformed response: %v", op, err)
		return nil, &site.RemoteError{
			Op:     op,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("failed to parse response: %w", err),
		}
	}
	return &result, nil
}

// errorMessage extracts the service's explanation from an error body. The
// service reports {"detail": "..."}, or a list of validation problems under
// "detail"; "error" and "message" are accepted as well.
func errorMessage(body []byte) string {
	var envelope struct {
		Detail  json.RawMessage `json:"detail"`
		Error   string          `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	if len(envelope.Detail) > 0 {
		var text string
		if err := json.Unmarshal(envelope.Detail, &text); err == nil && text != "" {
			return text
		}

		var problems []struct {
			Loc []any  `json:"loc"`
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(envelope.Detail, &problems); err == nil && len(problems) > 0 {
			parts := make([]string, 0, len(problems))
			for _, p := range problems {
				if p.Msg == "" {
					continue
				}
				if field := lastLoc(p.Loc); field != "" {
					parts = append(parts, field+": "+p.Msg)
				} else {
					parts = append(parts, p.Msg)
				}
			}
			return strings.Join(parts, "; ")
		}
	}

	if envelope.Error != "" {
		return envelope.Error
	}
	return envelope.Message
}

func lastLoc(loc []any) string {
	for i := len(loc) - 1; i >= 0; i-- {
		if s, ok := loc[i].(string); ok && s != "body" {
			return s
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// IsRemote reports whether err came back from the site service.
func IsRemote(err error) bool {
	var remote *site.RemoteError
	return errors.As(err, &remote)
}
