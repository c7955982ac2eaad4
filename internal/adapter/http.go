// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/grc-uploader/internal/logger"
	"github.com/MKhiriev/grc-uploader/internal/transport"
	"github.com/MKhiriev/grc-uploader/internal/utils"
	"github.com/MKhiriev/grc-uploader/internal/workers"
	"github.com/MKhiriev/grc-uploader/models"
)

const (
	loginPath                  = "/api/authentication/login"
	componentsPath             = "/api/components/getAll"
	assessmentsPath            = "/api/assessments/getAll"
	createAssessmentPath       = "/api/assessments"
	controlImplementationsPath = "/api/controlImplementation/getByParent/%d/components"
)

type httpPlatformAdapter struct {
	client    *transport.Client
	submitter *workers.Submitter

	logger *logger.Logger
}

// NewHTTPPlatformAdapter constructs the HTTP implementation of
// [PlatformAdapter]. client must be configured with the platform base URL;
// submitter is used for [PlatformAdapter.SubmitAssessments] and must send
// through the same client so that bulk posts carry the session token.
func NewHTTPPlatformAdapter(client *transport.Client, submitter *workers.Submitter, log *logger.Logger) PlatformAdapter {
	if log == nil {
		log = logger.Nop()
	}
	return &httpPlatformAdapter{client: client, submitter: submitter, logger: log}
}

// Login implements [PlatformAdapter]. It POSTs creds to
// POST /api/authentication/login and stores the returned token on the
// transport. A connection failure wraps transport.ErrConnection; any other
// failure wraps [ErrLoginFailed].
func (h *httpPlatformAdapter) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := h.client.Post(ctx, loginPath, nil, creds)
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	var lr models.LoginResponse
	if err = json.Unmarshal(resp.Body, &lr); err != nil {
		return models.Session{}, fmt.Errorf("%w: decode login response: %w", ErrLoginFailed, err)
	}

	token, err := utils.ParseBearerToken(lr.AuthToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: no auth token in response", ErrLoginFailed)
	}

	h.client.SetToken(token)
	h.logTokenExpiry(token)

	return models.Session{UserID: lr.ID, Token: token}, nil
}

// Components implements [PlatformAdapter] via GET /api/components/getAll.
func (h *httpPlatformAdapter) Components(ctx context.Context) ([]models.Component, error) {
	var components []models.Component
	if err := h.getJSON(ctx, componentsPath, &components); err != nil {
		return nil, fmt.Errorf("get components: %w", err)
	}
	return components, nil
}

// Assessments implements [PlatformAdapter] via GET /api/assessments/getAll.
func (h *httpPlatformAdapter) Assessments(ctx context.Context) ([]models.AssessmentSummary, error) {
	var assessments []models.AssessmentSummary
	if err := h.getJSON(ctx, assessmentsPath, &assessments); err != nil {
		return nil, fmt.Errorf("get assessments: %w", err)
	}
	return assessments, nil
}

// ControlImplementations implements [PlatformAdapter] via
// GET /api/controlImplementation/getByParent/{componentID}/components.
func (h *httpPlatformAdapter) ControlImplementations(ctx context.Context, componentID int) ([]models.ControlImplementation, error) {
	var controls []models.ControlImplementation
	if err := h.getJSON(ctx, fmt.Sprintf(controlImplementationsPath, componentID), &controls); err != nil {
		return nil, fmt.Errorf("get control implementations of component %d: %w", componentID, err)
	}
	return controls, nil
}

// SubmitAssessments implements [PlatformAdapter]. Every assessment becomes
// one POST /api/assessments sent through the bulk submitter; outcome
// indexes refer to positions in assessments.
func (h *httpPlatformAdapter) SubmitAssessments(ctx context.Context, assessments []models.Assessment) []workers.Outcome {
	bodies := make([]any, len(assessments))
	for i := range assessments {
		bodies[i] = assessments[i]
	}

	return h.submitter.Submit(ctx, workers.Batch{
		URL:    createAssessmentPath,
		Method: workers.MethodCreate,
		Bodies: bodies,
	})
}

func (h *httpPlatformAdapter) getJSON(ctx context.Context, url string, dst any) error {
	resp, err := h.client.Get(ctx, url, nil)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

func (h *httpPlatformAdapter) logTokenExpiry(token string) {
	exp, err := utils.TokenExpiry(token)
	if err != nil {
		h.logger.Debug().Err(err).Msg("auth token expiry unknown")
		return
	}

	h.logger.Info().
		Time("expires_at", exp).
		Dur("expires_in", time.Until(exp).Round(time.Second)).
		Msg("auth token received")
}
