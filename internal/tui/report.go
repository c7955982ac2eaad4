// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the end-of-run summary shown in the terminal.
package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/grc-uploader/internal/service"
)

// maxListedFailures caps the failed titles listed under the counters.
const maxListedFailures = 10

// RenderReport renders report as a bordered box: the counters, then up to
// maxListedFailures titles that were not posted.
func RenderReport(report service.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Upload summary"))
	b.WriteString("\n")
	writeRow(&b, "planned", strconv.Itoa(report.Planned))
	writeRow(&b, "skipped", strconv.Itoa(report.Skipped))
	writeRow(&b, "succeeded", okStyle.Render(strconv.Itoa(report.Succeeded)))

	failed := strconv.Itoa(report.Failed)
	if report.Failed > 0 {
		failed = failedStyle.Render(failed)
	}
	writeRow(&b, "failed", failed)

	titles := report.FailedTitles()
	for i, title := range titles {
		if i == maxListedFailures {
			b.WriteString("\n  … and " + strconv.Itoa(len(titles)-maxListedFailures) + " more")
			break
		}
		b.WriteString("\n  ✗ " + title)
	}

	return boxStyle.Render(b.String())
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
}
