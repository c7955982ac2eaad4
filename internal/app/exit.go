// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"

	"github.com/MKhiriev/grc-uploader/internal/config"
	"github.com/MKhiriev/grc-uploader/internal/service"
	"github.com/MKhiriev/grc-uploader/internal/transport"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

// ExitCode returns the process exit code for the error a run ended with.
// Creating the placeholder config is a successful run.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, config.ErrConfigCreated) {
		return ExitOK
	}
	return ExitFailure
}

// Message returns the one-line explanation printed for err, or "" for nil.
func Message(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, config.ErrConfigCreated):
		return MsgConfigCreated
	case errors.Is(err, config.ErrMissingKeys):
		return MsgMissingKeys
	case errors.Is(err, config.ErrInvalidHost):
		return MsgInvalidHost
	case errors.Is(err, config.ErrInvalidWorkers):
		return MsgInvalidConfig
	case errors.Is(err, service.ErrLogin):
		if errors.Is(err, transport.ErrConnection) {
			return MsgLoginConnection
		}
		return MsgLoginFailed
	case errors.Is(err, service.ErrReadResults), errors.Is(err, service.ErrInvalidResults):
		return MsgResultsFile
	case errors.Is(err, service.ErrComponentNotFound):
		return MsgComponentLookup
	case errors.Is(err, service.ErrControlNotFound):
		return MsgControlLookup
	case errors.Is(err, transport.ErrConnection):
		return MsgConnection
	default:
		return MsgUnexpected
	}
}
