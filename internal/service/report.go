// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/grc-uploader/internal/workers"
	"github.com/MKhiriev/grc-uploader/models"
)

// Report summarises an upload run.
type Report struct {
	// Planned is the number of assessments built from the results file,
	// one per rule.
	Planned   int
	// Skipped is the number of planned assessments dropped because an
	// assessment with the same title already exists.
	Skipped   int
	Succeeded int
	Failed    int

	// Submitted holds the assessments that were posted. Outcome indexes
	// refer to positions in this slice.
	Submitted []models.Assessment
	Outcomes  []workers.Outcome
}

// FailedTitles returns the titles of the assessments whose submission failed,
// in outcome order.
func (r Report) FailedTitles() []string {
	var titles []string
	for _, o := range r.Outcomes {
		if o.OK() || o.Index < 0 || o.Index >= len(r.Submitted) {
			continue
		}
		titles = append(titles, r.Submitted[o.Index].Title)
	}
	return titles
}
