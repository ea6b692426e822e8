// Package api implements the authenticated HTTP client and the typed
// request/response mapping for the remote ledger service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"gastos/internal/log"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 1 << 20 // 1MB
	headerRequestID  = "X-Request-ID"
)

// TokenSource yields the stored bearer credential. The client only ever
// reads tokens; writing and clearing happen in the auth flow.
type TokenSource interface {
	Token() (string, error)
}

// Client mediates every call to the remote ledger service. It injects the
// bearer credential on all routes except credential acquisition, applies a
// fixed round-trip timeout and maps failures onto the transport error
// taxonomy. It never retries and never reacts to authorization failures
// itself.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	limiter *rate.Limiter
	logger  *log.Logger
}

// Options configures a Client.
type Options struct {
	// Timeout bounds the full round trip; defaults to 10s.
	Timeout time.Duration
	// RateLimit caps outgoing requests per second; <= 0 disables limiting.
	RateLimit float64
	Logger    *log.Logger
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, tokens TokenSource, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(log.Config{}).WithComponent(log.ComponentAPI)
	}
	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		burst := int(opts.RateLimit)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		limiter: limiter,
		logger:  logger,
	}
}

// isAuthRoute reports whether path is a credential-acquisition route, which
// must never carry an Authorization header.
func isAuthRoute(path string) bool {
	return strings.Contains(path, "/auth/login") || strings.Contains(path, "/auth/register")
}

// newRequest builds the outgoing request, including credential injection.
// Split out from do so the header policy can be tested without a live call.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())

	if isAuthRoute(path) {
		// Stored credentials must not leak into credential acquisition.
		req.Header.Del("Authorization")
		return req, nil
	}
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("read credential: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// do executes one request and decodes a 2xx response into out (when out is
// non-nil). Exactly one attempt per call.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		err = classifyTransport(err)
		c.logger.Warn("request failed",
			log.FieldMethod, method,
			log.FieldPath, path,
			log.FieldError, err.Error())
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return classifyTransport(err)
	}

	c.logger.Debug("request complete",
		log.FieldMethod, method,
		log.FieldPath, path,
		log.FieldStatusCode, resp.StatusCode,
		log.FieldDuration, time.Since(start).Milliseconds(),
		log.FieldRequestID, req.Header.Get(headerRequestID))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Status: resp.StatusCode, Body: data}
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// classifyTransport splits request failures into the timeout and transport
// error kinds.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &TimeoutError{Err: err}
	}
	return &TransportError{Err: err}
}
