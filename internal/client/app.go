// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/grc-uploader/internal/adapter"
	"github.com/MKhiriev/grc-uploader/internal/config"
	"github.com/MKhiriev/grc-uploader/internal/logger"
	"github.com/MKhiriev/grc-uploader/internal/service"
	"github.com/MKhiriev/grc-uploader/internal/transport"
	"github.com/MKhiriev/grc-uploader/internal/tui"
	"github.com/MKhiriev/grc-uploader/internal/validators"
	"github.com/MKhiriev/grc-uploader/internal/workers"
	"github.com/MKhiriev/grc-uploader/models"
)

// App is a single upload run.
type App struct {
	upload service.UploadService
	out    io.Writer
	logger *logger.Logger
}

// NewApp builds the full dependency graph from cfg. All platform calls,
// including bulk posts, share one transport session.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}

	session := transport.New(transport.Options{
		BaseURL:            cfg.Platform.Host,
		RetryCount:         retryCount(cfg.Transport.RetryCount),
		RetryWaitTime:      cfg.Transport.RetryWait,
		Timeout:            cfg.Transport.Timeout,
		InsecureSkipVerify: cfg.Transport.InsecureSkipVerify,
	}, log)
	log = log.WithTraceID(session.TraceID())

	submitter := workers.NewSubmitter(session, workers.SubmitterOptions{
		Workers:   cfg.Workers.Limit,
		RateLimit: cfg.Workers.RateLimit,
	}, log)

	platform := adapter.NewHTTPPlatformAdapter(session, submitter, log)

	upload := service.NewUploadService(platform, validators.NewResultsValidator(), service.UploadOptions{
		Credentials: models.Credentials{
			UserName: cfg.Platform.User,
			Password: cfg.Platform.Password,
		},
		SkipExisting:   cfg.Upload.SkipExisting,
		AssessmentType: cfg.Upload.AssessmentType,
		Status:         cfg.Upload.Status,
	}, log)

	return newApp(upload, log)
}

// retryCount converts the configured retry count into transport options.
// Defaults are already merged into the config, so zero was asked for
// explicitly and turns retries off.
func retryCount(configured int) int {
	if configured == 0 {
		return -1
	}
	return configured
}

func newApp(upload service.UploadService, log *logger.Logger) *App {
	return &App{upload: upload, out: os.Stderr, logger: log}
}

// WithOutput sets where the end-of-run summary is printed. The default is
// stderr; nil disables the summary.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Run implements [Client]. Fatal conditions are returned; per-item
// submission failures are only logged.
func (a *App) Run(ctx context.Context, path string) error {
	report, err := a.upload.Run(ctx, path)
	if err != nil {
		return err
	}

	for _, title := range report.FailedTitles() {
		a.logger.Warn().Str("title", title).Msg("assessment was not posted")
	}

	if a.out != nil {
		fmt.Fprintln(a.out, tui.RenderReport(report))
	}
	return nil
}
