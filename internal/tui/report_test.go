// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strconv"
	"testing"

	"github.com/MKhiriev/grc-uploader/internal/service"
	"github.com/MKhiriev/grc-uploader/internal/workers"
	"github.com/MKhiriev/grc-uploader/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderReport_Counters(t *testing.T) {
	out := RenderReport(service.Report{Planned: 5, Skipped: 1, Succeeded: 4})

	assert.Contains(t, out, "Upload summary")
	assert.Contains(t, out, "planned")
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "succeeded")
	assert.Contains(t, out, "4")
	assert.NotContains(t, out, "✗")
}

func TestRenderReport_ListsFailedTitles(t *testing.T) {
	report := service.Report{
		Planned: 2, Succeeded: 1, Failed: 1,
		Submitted: []models.Assessment{{Title: "istio-check"}, {Title: "loki-logging"}},
		Outcomes: []workers.Outcome{
			{Index: 0, StatusCode: 200},
			{Index: 1, StatusCode: 400, Err: errors.New("http 400"), Kind: workers.KindStatus},
		},
	}

	out := RenderReport(report)
	assert.Contains(t, out, "✗ loki-logging")
	assert.NotContains(t, out, "✗ istio-check")
}

func TestRenderReport_TruncatesLongFailureList(t *testing.T) {
	var report service.Report
	for i := 0; i < maxListedFailures+3; i++ {
		report.Submitted = append(report.Submitted, models.Assessment{Title: "rule-" + strconv.Itoa(i)})
		report.Outcomes = append(report.Outcomes, workers.Outcome{Index: i, Err: errors.New("boom"), Kind: workers.KindConnection})
	}
	report.Failed = len(report.Outcomes)

	out := RenderReport(report)
	assert.Contains(t, out, "rule-0")
	assert.NotContains(t, out, "rule-"+strconv.Itoa(maxListedFailures+1))
	assert.Contains(t, out, "and 3 more")
}
