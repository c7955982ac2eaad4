// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the typed client for the GRC platform REST API.
//
// The primary abstraction is [PlatformAdapter], which decouples the upload
// service from endpoint paths and payload encoding. The package ships an
// HTTP implementation ([NewHTTPPlatformAdapter]) built on a shared
// *transport.Client and a *workers.Submitter for bulk posts.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrServerError] for a 5xx that survived every retry). Network
// failures wrap transport.ErrConnection.
package adapter

import (
	"context"

	"github.com/MKhiriev/grc-uploader/internal/workers"
	"github.com/MKhiriev/grc-uploader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/platform_adapter_mock.go -package=mock

// PlatformAdapter defines communication with the GRC platform.
// Implementations are responsible for serialisation, bearer token handling,
// and mapping HTTP statuses to the sentinel values defined in this package.
type PlatformAdapter interface {
	// Login authenticates with creds. On success the returned token is used
	// for every subsequent request and the session is returned.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Components returns every component visible to the logged-in user.
	Components(ctx context.Context) ([]models.Component, error)

	// Assessments returns every assessment visible to the logged-in user.
	Assessments(ctx context.Context) ([]models.AssessmentSummary, error)

	// ControlImplementations returns the control implementations attached
	// to the component with componentID.
	ControlImplementations(ctx context.Context, componentID int) ([]models.ControlImplementation, error)

	// SubmitAssessments posts every assessment concurrently and returns one
	// outcome per assessment. It never fails as a whole; inspect the
	// outcomes instead.
	SubmitAssessments(ctx context.Context, assessments []models.Assessment) []workers.Outcome
}
