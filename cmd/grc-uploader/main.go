// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/grc-uploader/internal/app"
	"github.com/MKhiriev/grc-uploader/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	err := newRootCommand(buildInfo).execute(ctx)

	stop()
	os.Exit(app.ExitCode(err))
}
