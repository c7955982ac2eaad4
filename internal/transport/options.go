// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"net/http"
	"time"
)

const (
	// DefaultRetryCount is the number of retries after the first attempt,
	// giving five attempts in total.
	DefaultRetryCount = 4

	// DefaultRetryWaitTime is the backoff factor: the wait before the n-th
	// retry is DefaultRetryWaitTime * 2^(n-1).
	DefaultRetryWaitTime = 100 * time.Millisecond

	// DefaultRetryMaxWaitTime caps a single backoff sleep.
	DefaultRetryMaxWaitTime = 2 * time.Second

	traceIDHeader = "X-Trace-ID"
	mediaTypeJSON = "application/json"
)

// DefaultRetryStatuses lists the gateway/server statuses that trigger a retry.
var DefaultRetryStatuses = []int{
	http.StatusInternalServerError,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// Options configures a [Client]. Zero values select the package defaults;
// a negative RetryCount disables retries.
type Options struct {
	// BaseURL is prepended to relative request URLs. Absolute URLs are sent
	// unchanged.
	BaseURL string

	// Token is the initial bearer token. It may be empty before login.
	Token string

	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
	RetryStatuses    []int

	// Timeout bounds a single attempt. Zero leaves the transport default
	// (no client-side timeout).
	Timeout time.Duration

	// InsecureSkipVerify turns TLS certificate verification off. It exists
	// for self-signed lab instances only.
	InsecureSkipVerify bool

	// RoundTripper replaces the underlying HTTP transport. Used by tests.
	RoundTripper http.RoundTripper

	// TraceID is stamped on every request as X-Trace-ID. A random UUID is
	// generated when empty.
	TraceID string
}

func (o Options) withDefaults() Options {
	switch {
	case o.RetryCount == 0:
		o.RetryCount = DefaultRetryCount
	case o.RetryCount < 0:
		o.RetryCount = 0
	}
	if o.RetryWaitTime <= 0 {
		o.RetryWaitTime = DefaultRetryWaitTime
	}
	if o.RetryMaxWaitTime <= 0 {
		o.RetryMaxWaitTime = DefaultRetryMaxWaitTime
	}
	if len(o.RetryStatuses) == 0 {
		o.RetryStatuses = DefaultRetryStatuses
	}
	return o
}
