// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/grc-uploader/internal/adapter"
	"github.com/MKhiriev/grc-uploader/internal/logger"
	"github.com/MKhiriev/grc-uploader/internal/validators"
	"github.com/MKhiriev/grc-uploader/internal/workers"
	"github.com/MKhiriev/grc-uploader/models"
)

// UploadOptions controls how assessments are built and filtered.
type UploadOptions struct {
	Credentials models.Credentials

	// SkipExisting drops assessments whose title already exists.
	SkipExisting bool

	AssessmentType string
	Status         string
}

type uploadService struct {
	adapter   adapter.PlatformAdapter
	validator validators.Validator
	opts      UploadOptions

	now    func() time.Time
	logger *logger.Logger
}

func NewUploadService(platform adapter.PlatformAdapter, validator validators.Validator, opts UploadOptions, log *logger.Logger) UploadService {
	if opts.AssessmentType == "" {
		opts.AssessmentType = models.DefaultAssessmentType
	}
	if opts.Status == "" {
		opts.Status = models.DefaultAssessmentStatus
	}
	if log == nil {
		log = logger.Nop()
	}

	return &uploadService{
		adapter:   platform,
		validator: validator,
		opts:      opts,
		now:       time.Now,
		logger:    log,
	}
}

func (s *uploadService) Run(ctx context.Context, path string) (Report, error) {
	records, err := readResults(path)
	if err != nil {
		return Report{}, err
	}
	if err = s.validator.Validate(ctx, records); err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrInvalidResults, err)
	}
	s.logger.Info().Str("path", path).Int("records", len(records)).Msg("results file loaded")

	session, err := s.adapter.Login(ctx, s.opts.Credentials)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrLogin, err)
	}
	s.logger.Info().Str("user_id", session.UserID).Msg("logged in")

	components, err := s.adapter.Components(ctx)
	if err != nil {
		return Report{}, err
	}
	s.logger.Info().Int("count", len(components)).Msg("fetched components")

	existing, err := s.adapter.Assessments(ctx)
	if err != nil {
		return Report{}, err
	}
	s.logger.Info().Int("count", len(existing)).Msg("fetched assessments")

	planned, err := s.plan(ctx, session, records, components)
	if err != nil {
		return Report{}, err
	}

	report := Report{Planned: len(planned), Submitted: planned}
	if s.opts.SkipExisting {
		report.Submitted = skipExisting(planned, existing)
		report.Skipped = len(planned) - len(report.Submitted)
	}

	report.Outcomes = s.adapter.SubmitAssessments(ctx, report.Submitted)
	report.Succeeded, report.Failed = workers.Summary(report.Outcomes)

	s.logger.Info().
		Int("planned", report.Planned).
		Int("skipped", report.Skipped).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("upload finished")

	return report, nil
}
