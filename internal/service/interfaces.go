// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service orchestrates one upload run: it reads a results file,
// resolves every rule to a platform component and control implementation,
// and posts one assessment per rule through the bulk submitter.
package service

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UploadService runs a single-pass upload of a results file.
type UploadService interface {
	// Run uploads the results file at path. Configuration, login and lookup
	// failures are returned as errors before anything is posted. Per-item
	// submission failures are reported in the [Report] and never make Run
	// fail.
	Run(ctx context.Context, path string) (Report, error)
}
