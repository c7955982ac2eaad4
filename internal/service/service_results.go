// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"os"

	"github.com/MKhiriev/grc-uploader/models"
	"gopkg.in/yaml.v3"
)

// readResults decodes the results file at path. JSON input is accepted since
// it is a subset of YAML.
func readResults(path string) ([]models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadResults, err)
	}

	var records []models.Record
	if err = yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrInvalidResults, path, err)
	}
	return records, nil
}
