// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers fans a batch of independent JSON submissions out over a
// bounded pool of goroutines.
//
// A [Submitter] sends every body of a [Batch] to the same URL through a
// [Sender] (normally *transport.Client), never running more than its worker
// limit at once. It waits for every call to finish and returns one [Outcome]
// per body in completion order. A failing item never cancels the others.
package workers

import (
	"context"

	"github.com/MKhiriev/grc-uploader/internal/transport"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sender_mock.go -package=mock

// Sender issues the HTTP calls for a batch. *transport.Client implements it.
type Sender interface {
	// Post sends body with POST. It returns a response for every HTTP
	// status and an error only on network-level failure.
	Post(ctx context.Context, url string, headers map[string]string, body any) (*transport.Response, error)

	// Put sends body with PUT, with the same contract as Post.
	Put(ctx context.Context, url string, headers map[string]string, body any) (*transport.Response, error)
}
