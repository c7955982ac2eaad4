// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServerError  = errors.New("platform server error")

	// ErrLoginFailed is returned when login does not yield a usable token.
	ErrLoginFailed = errors.New("login failed")

	// ErrDecode is returned when a 2xx response body is not the expected JSON.
	ErrDecode = errors.New("unexpected response body")
)
