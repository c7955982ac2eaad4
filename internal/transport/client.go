// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport provides the single authenticated HTTP session used to
// talk to the GRC platform.
//
// A [Client] owns one resty client (and therefore one connection pool) for
// the lifetime of the process. It stamps default headers on every call,
// retries responses whose status is a transient server error, and never
// retries network-level failures, which surface as [ErrConnection].
// HTTP error statuses are returned as ordinary responses: callers inspect
// [Response.StatusCode] themselves.
package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/grc-uploader/internal/logger"
	"github.com/MKhiriev/grc-uploader/internal/utils"
	"github.com/go-resty/resty/v2"
)

// Client is a concurrency-safe HTTP session with bearer-token injection and
// bounded retries.
type Client struct {
	rc      *resty.Client
	opts    Options
	traceID string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// Response is the transport-level view of an HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// Attempts is the number of times the request was sent.
	Attempts int
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// New constructs a Client from opts. The returned client is ready for
// concurrent use; all requests share its connection pool.
func New(opts Options, log *logger.Logger) *Client {
	opts = opts.withDefaults()
	if log == nil {
		log = logger.Nop()
	}

	traceID := opts.TraceID
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	c := &Client{
		opts:    opts,
		traceID: traceID,
		token:   strings.TrimSpace(opts.Token),
		logger:  log.WithTraceID(traceID),
	}

	rc := resty.New().
		SetLogger(restyLogger{c.logger}).
		SetHeader(traceIDHeader, traceID).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWaitTime).
		SetRetryMaxWaitTime(opts.RetryMaxWaitTime).
		SetRetryAfter(c.backoff).
		AddRetryCondition(c.shouldRetry).
		OnAfterResponse(c.logAttempt)

	if opts.BaseURL != "" {
		rc.SetBaseURL(strings.TrimRight(opts.BaseURL, "/"))
	}
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}
	if opts.RoundTripper != nil {
		rc.SetTransport(opts.RoundTripper)
	} else if opts.InsecureSkipVerify {
		rc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-in for lab instances
	}

	c.rc = rc
	return c
}

// SetToken replaces the bearer token used by default headers. In-flight
// requests keep the token they started with.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// TraceID returns the X-Trace-ID value stamped on every request.
func (c *Client) TraceID() string {
	return c.traceID
}

// Get sends a GET request. A nil headers map selects the default headers.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return c.do(ctx, http.MethodGet, url, headers, nil)
}

// Delete sends a DELETE request. Default headers accept any media type.
func (c *Client) Delete(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, url, headers, nil)
}

// Post sends body as JSON with a POST request.
func (c *Client) Post(ctx context.Context, url string, headers map[string]string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, url, headers, body)
}

// Put sends body as JSON with a PUT request.
func (c *Client) Put(ctx context.Context, url string, headers map[string]string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPut, url, headers, body)
}

func (c *Client) do(ctx context.Context, method, url string, headers map[string]string, body any) (*Response, error) {
	if headers == nil {
		headers = c.defaultHeaders(method)
	}

	req := c.rc.R().
		SetContext(ctx).
		SetHeaders(headers)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrConnection, method, url, err)
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
		Attempts:   resp.Request.Attempt,
	}, nil
}

func (c *Client) defaultHeaders(method string) map[string]string {
	headers := map[string]string{
		"Accept":       mediaTypeJSON,
		"Content-Type": mediaTypeJSON,
	}
	if method == http.MethodDelete {
		headers = map[string]string{"Accept": "*/*"}
	}
	if token := c.Token(); token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return headers
}

// shouldRetry is the only retry condition: a response arrived and its status
// is listed as retryable. Connection errors return false.
func (c *Client) shouldRetry(resp *resty.Response, err error) bool {
	if err != nil || resp == nil {
		return false
	}
	return slices.Contains(c.opts.RetryStatuses, resp.StatusCode())
}

// backoff doubles the base wait for every attempt already made:
// base, 2*base, 4*base, ... capped at RetryMaxWaitTime.
func (c *Client) backoff(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	attempt := 1
	if resp != nil && resp.Request != nil && resp.Request.Attempt > 0 {
		attempt = resp.Request.Attempt
	}

	wait := c.opts.RetryWaitTime << (attempt - 1)
	if wait <= 0 || wait > c.opts.RetryMaxWaitTime {
		wait = c.opts.RetryMaxWaitTime
	}
	return wait, nil
}
