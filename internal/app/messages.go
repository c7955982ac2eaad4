// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app maps run errors to the user-facing messages and process exit
// codes of the uploader.
//
// All Msg* constants are human-readable lines printed when a run stops.
// Keeping them in one place ensures consistent wording across the CLI.
package app

const (
	// MsgConfigCreated is printed after a placeholder config file was
	// written.
	MsgConfigCreated = "config file created, please edit it with the desired values and re-run this application"

	// MsgMissingKeys is printed when host, user or password is missing.
	MsgMissingKeys = "please make sure the required keys are set"

	// MsgInvalidHost is printed when the host is not a valid URL.
	MsgInvalidHost = "host URL is not valid, please check host URL and try again"

	// MsgInvalidConfig is printed for any other configuration problem.
	MsgInvalidConfig = "configuration is not valid"

	// MsgLoginConnection is printed when the platform cannot be reached at
	// login.
	MsgLoginConnection = "unable to log in: connection error"

	// MsgLoginFailed is printed when the platform rejects the login.
	MsgLoginFailed = "unable to log in"

	// MsgConnection is printed when the platform becomes unreachable after
	// login.
	MsgConnection = "connection error"

	// MsgResultsFile is printed when the results file cannot be read or is
	// not valid.
	MsgResultsFile = "results file is not valid"

	// MsgComponentLookup is printed when a rule names an unknown component.
	MsgComponentLookup = "failed component lookup"

	// MsgControlLookup is printed when a control is not implemented by the
	// resolved component.
	MsgControlLookup = "failed control implementation lookup"

	// MsgUnexpected is printed for anything else.
	MsgUnexpected = "upload failed"
)
