// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"

	"github.com/MKhiriev/grc-uploader/internal/app"
	"github.com/MKhiriev/grc-uploader/internal/client"
	"github.com/MKhiriev/grc-uploader/internal/config"
	"github.com/MKhiriev/grc-uploader/internal/logger"
	"github.com/MKhiriev/grc-uploader/models"
	"github.com/spf13/cobra"
)

const (
	appName  = "grc-uploader"
	msgUsage = "invalid command line, run with --help for usage"
)

// rootCommand is the cobra command plus the state a run leaves behind for
// error reporting.
type rootCommand struct {
	*cobra.Command

	flags *config.Flags
	// log is replaced by the configured logger once config is loaded.
	log *logger.Logger
	// started is set once arguments and flags were accepted.
	started bool
}

func newRootCommand(buildInfo models.AppBuildInfo) *rootCommand {
	root := &rootCommand{}

	root.Command = &cobra.Command{
		Use:   appName + " <results-file>",
		Short: "Upload control-check results to a GRC platform as assessments",
		Long: `grc-uploader logs into a GRC platform, resolves every rule of a results
file to a component and control implementation, and posts one assessment
per rule.

Platform credentials are read from init.yaml (created with placeholder
values on first run), GRC_* environment variables and flags.`,
		Version:       buildInfo.String(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd, args[0])
		},
	}

	root.flags = config.BindFlags(root.Flags())
	return root
}

// execute runs the command and logs whatever error ends it, including
// argument and flag errors that are raised before the run starts.
func (r *rootCommand) execute(ctx context.Context) error {
	err := r.ExecuteContext(ctx)
	switch {
	case err == nil:
	case !r.started:
		r.currentLogger().Error().Err(err).Msg(msgUsage)
	default:
		logRunError(r.currentLogger(), err)
	}
	return err
}

func (r *rootCommand) currentLogger() *logger.Logger {
	if r.log == nil {
		r.log = logger.NewLoggerTo(r.OutOrStdout(), appName, "info")
	}
	return r.log
}

func (r *rootCommand) run(cmd *cobra.Command, path string) error {
	r.started = true

	cfg, err := config.GetStructuredConfig(r.flags)
	if err != nil {
		return err
	}

	r.log = logger.NewLoggerTo(r.OutOrStdout(), appName, cfg.Log.Level)
	r.log.Info().Str("host", cfg.Platform.Host).Str("config", cfg.FilePath).Msg("logging in")

	return client.NewApp(cfg, r.log).Run(cmd.Context(), path)
}

func logRunError(log *logger.Logger, err error) {
	if errors.Is(err, config.ErrConfigCreated) {
		log.Info().Err(err).Msg(app.Message(err))
		return
	}
	log.Error().Err(err).Msg(app.Message(err))
}
