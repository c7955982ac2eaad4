// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoRecords      = errors.New("results file contains no records")
	ErrEmptyResult    = errors.New("result is required")
	ErrEmptyControlID = errors.New("control-id is required")
	ErrNoRules        = errors.New("at least one rule is required")
	ErrEmptyRuleName  = errors.New("rule name is required")
)
