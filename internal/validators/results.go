// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/grc-uploader/models"
)

// Field name constants used to restrict validation of a [models.Record] to a
// subset of its fields.
const (
	// FieldResult targets the pass/fail outcome of the record.
	FieldResult = "result"

	// FieldControlID targets source-requirements.control-id.
	FieldControlID = "control_id"

	// FieldRules targets source-requirements.rules: at least one rule, each
	// with a non-empty name.
	FieldRules = "rules"
)

// ResultsValidator validates records read from a results file.
type ResultsValidator struct {
}

func NewResultsValidator() Validator {
	return &ResultsValidator{}
}

// Validate accepts a []models.Record, a models.Record or a *models.Record.
// Errors for a slice name the offending record index.
func (v *ResultsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case []models.Record:
		return v.validateRecords(ctx, value, fields...)

	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		return v.validateRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ResultsValidator) validateRecords(ctx context.Context, records []models.Record, fields ...string) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	for i, record := range records {
		if err := v.validateRecord(ctx, record, fields...); err != nil {
			return fmt.Errorf("validation error at record %d: %w", i, err)
		}
	}
	return nil
}

func (v *ResultsValidator) validateRecord(_ context.Context, record models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldResult, FieldControlID, FieldRules}
	}

	for _, f := range fields {
		switch f {
		case FieldResult:
			if strings.TrimSpace(record.Result) == "" {
				return ErrEmptyResult
			}
		case FieldControlID:
			if strings.TrimSpace(record.SourceRequirements.ControlID) == "" {
				return ErrEmptyControlID
			}
		case FieldRules:
			if len(record.SourceRequirements.Rules) == 0 {
				return ErrNoRules
			}
			for i, rule := range record.SourceRequirements.Rules {
				if strings.TrimSpace(rule.Name) == "" {
					return fmt.Errorf("rule %d: %w", i, ErrEmptyRuleName)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
