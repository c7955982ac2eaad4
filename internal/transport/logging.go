// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/grc-uploader/internal/logger"
	"github.com/go-resty/resty/v2"
)

// logAttempt records every attempt, including the ones that get retried.
func (c *Client) logAttempt(_ *resty.Client, resp *resty.Response) error {
	c.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Int("attempt", resp.Request.Attempt).
		Dur("duration", resp.Time()).
		Int("size", len(resp.Body())).
		Send()
	return nil
}

// restyLogger routes resty's internal messages into zerolog.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	// request errors are returned to and logged by the caller
	l.log.Debug().Str("source", "resty").Msg(trim(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("source", "resty").Msg(trim(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("source", "resty").Msg(trim(format, v...))
}

func trim(format string, v ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
