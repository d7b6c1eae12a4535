// Package api provides an HTTP client for the rental-management REST
// API. All authenticated calls carry the bearer credential from the
// configured TokenSource, and any 401 response triggers the
// registered unauthorized hook before the error is returned.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const apiPrefix = "/api"

// TokenSource supplies the current bearer credential. An empty token
// sends the request unauthenticated and lets the server decide.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-credential TokenSource, mainly for tests.
type StaticToken string

// Token returns the static credential.
func (t StaticToken) Token() string { return string(t) }

// Client is an HTTP client for the rental-management API.
type Client struct {
	baseURL        string
	creds          TokenSource
	httpClient     *http.Client
	onUnauthorized func()
}

// New creates a new API client. creds may be nil for a client that
// only performs unauthenticated calls.
func New(baseURL string, creds TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// OnUnauthorized registers a hook invoked exactly once per 401
// response, regardless of which call triggered it. The original error
// is still returned to the caller afterwards.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// Error is an HTTP failure reported by the server.
type Error struct {
	StatusCode int
	Detail     string
}

// Error returns the server-provided detail verbatim, falling back to
// a generic message when the body carried none.
func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server error: %s", http.StatusText(e.StatusCode))
}

// IsUnauthorized reports whether err is a 401 API error.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, query url.Values, result interface{}) error {
	target := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequest("GET", target, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(path string, query url.Values, body interface{}, result interface{}) error {
	return c.send("POST", path, query, body, result)
}

// put performs a PUT request with a JSON body and decodes the response.
func (c *Client) put(path string, body interface{}, result interface{}) error {
	return c.send("PUT", path, nil, body, result)
}

func (c *Client) send(method, path string, query url.Values, body interface{}, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	target := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, result)
}

// postForm performs a POST with a form-encoded body. Only the login
// endpoint uses this shape.
func (c *Client) postForm(path string, form url.Values, result interface{}) error {
	req, err := http.NewRequest("POST", c.baseURL+apiPrefix+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, result)
}

// doDelete performs a DELETE request.
func (c *Client) doDelete(path string) error {
	req, err := http.NewRequest("DELETE", c.baseURL+apiPrefix+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, nil)
}

// do executes an HTTP request with the auth header attached and
// handles error responses.
func (c *Client) do(req *http.Request, result interface{}) error {
	if c.creds != nil {
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	slog.Debug("api request", "method", req.Method, "url", req.URL.String(), "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "error", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		slog.Warn("credential rejected", "url", req.URL.Path, "request_id", requestID)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	if resp.StatusCode >= 400 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var envelope struct {
			Detail string `json:"detail"`
		}
		// FastAPI validation errors carry a non-string detail; those
		// fall through to the generic message.
		if json.Unmarshal(respBody, &envelope) == nil {
			apiErr.Detail = envelope.Detail
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
