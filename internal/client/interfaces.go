// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run uploads the results file at path and blocks until every
	// submission has finished.
	Run(ctx context.Context, path string) error
}
