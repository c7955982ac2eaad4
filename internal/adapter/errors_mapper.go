// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/grc-uploader/internal/transport"
)

func mapHTTPError(resp *transport.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body))

	switch code := resp.StatusCode; {
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case code == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d after %d attempt(s): %s", ErrServerError, code, resp.Attempts, body)
	default:
		if body == "" {
			body = http.StatusText(code)
		}
		return fmt.Errorf("http %d: %s", code, body)
	}
}
