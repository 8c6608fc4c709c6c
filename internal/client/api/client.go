package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minsu-cho/sajubook/internal/client/session"
	"github.com/minsu-cho/sajubook/internal/common"
	"github.com/minsu-cho/sajubook/internal/logging"
)

// Client talks to the sajubook backend over HTTP. Every outgoing request
// passes through the interceptor pipeline (credential attachment, request
// id) and every response through the failure observer before the caller
// sees it.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// Options configures a Client.
type Options struct {
	// BaseURL is the root of the backend API, including the /api prefix.
	BaseURL string
	// Timeout bounds every request; zero means 10 seconds.
	Timeout time.Duration
	// Store supplies the access token attached to outgoing requests.
	Store session.Store
	// Logger receives failure diagnostics.
	Logger logging.Logger
	// Transport overrides the base round tripper (tests).
	Transport http.RoundTripper
}

// New builds a Client with the standard interceptor chain.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	p := newPipeline(opts.Transport,
		[]RequestInterceptor{
			BearerAuth(opts.Store, opts.Logger),
			RequestID(),
		},
		[]ResponseInterceptor{
			ObserveFailures(opts.Logger),
		},
	)

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		log:     opts.Logger,
		http: &http.Client{
			Transport: p,
			Timeout:   timeout,
		},
	}
}

// do performs one HTTP exchange: body (if any) is sent as JSON, the
// response body (if out is non-nil) is decoded as JSON. Non-2xx responses
// return an *APIError; network-level failures and timeouts wrap
// common.ErrUnavailable.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.exchange(req, out)
}

// exchange sends an already-built request and decodes the response.
func (c *Client) exchange(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		// The request never reached the backend, or timed out waiting.
		return fmt.Errorf("%s %s: %w: %v", req.Method, req.URL.Path, common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp, readErrorBody(resp))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
