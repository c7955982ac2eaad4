// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"errors"
	"fmt"
	"net/http"
)

// Method selects the HTTP verb used for every body of a batch.
type Method string

const (
	// MethodCreate submits with POST.
	MethodCreate Method = "create"
	// MethodUpdate submits with PUT.
	MethodUpdate Method = "update"
)

// ErrUnknownMethod is returned in every outcome of a batch whose Method is
// neither MethodCreate nor MethodUpdate.
var ErrUnknownMethod = errors.New("unknown submission method")

// ErrKind classifies a failed submission.
type ErrKind string

const (
	KindNone       ErrKind = ""
	KindConnection ErrKind = "connection"
	KindStatus     ErrKind = "status"
	KindEncode     ErrKind = "encode"
	KindCanceled   ErrKind = "canceled"
)

// Batch is a set of bodies sent to one URL with one method.
type Batch struct {
	URL    string
	Method Method
	Bodies []any
	// Headers overrides the sender's default headers when non-nil.
	// Content-Type is forced to application/json.
	Headers map[string]string
}

// Outcome is the result of one submission.
type Outcome struct {
	// Index is the position of the body in Batch.Bodies.
	Index      int
	StatusCode int
	Body       []byte
	Err        error
	Kind       ErrKind
}

// OK reports whether the submission returned a 2xx status.
func (o Outcome) OK() bool {
	return o.Err == nil && o.Kind == KindNone
}

// StatusError is recorded when the platform answered with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, body)
}

// Summary counts successful and failed outcomes.
func Summary(outcomes []Outcome) (ok, failed int) {
	for _, o := range outcomes {
		if o.OK() {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}
