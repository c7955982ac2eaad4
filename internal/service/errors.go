// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrLogin = errors.New("login")

	ErrReadResults    = errors.New("cannot read results file")
	ErrInvalidResults = errors.New("invalid results file")

	ErrComponentNotFound = errors.New("component not found")
	ErrControlNotFound   = errors.New("control implementation not found")
)
