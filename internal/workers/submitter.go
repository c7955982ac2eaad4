// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/MKhiriev/grc-uploader/internal/logger"
	"github.com/MKhiriev/grc-uploader/internal/transport"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultWorkers is the maximum number of submissions in flight.
const DefaultWorkers = 20

// SubmitterOptions configures a [Submitter].
type SubmitterOptions struct {
	// Workers bounds concurrent submissions. Zero selects DefaultWorkers.
	Workers int
	// RateLimit caps submissions per second across all workers. Zero
	// disables rate limiting.
	RateLimit float64
}

// Submitter sends batches concurrently through a Sender.
type Submitter struct {
	sender  Sender
	workers int
	limiter *rate.Limiter

	logger *logger.Logger
}

// NewSubmitter constructs a Submitter. A nil log discards output.
func NewSubmitter(sender Sender, opts SubmitterOptions, log *logger.Logger) *Submitter {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &Submitter{sender: sender, workers: opts.Workers, logger: log}
	if opts.RateLimit > 0 {
		burst := max(1, int(opts.RateLimit))
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return s
}

// Workers returns the concurrency limit.
func (s *Submitter) Workers() int {
	return s.workers
}

// Submit sends every body of batch and blocks until all calls have finished.
// Outcomes are returned in completion order, one per body; each outcome is
// also logged. An empty batch performs no calls and returns nil.
func (s *Submitter) Submit(ctx context.Context, batch Batch) []Outcome {
	if len(batch.Bodies) == 0 {
		return nil
	}

	send, err := s.sendFunc(batch.Method)
	if err != nil {
		outcomes := make([]Outcome, len(batch.Bodies))
		for i := range batch.Bodies {
			outcomes[i] = Outcome{Index: i, Err: err, Kind: KindEncode}
			s.logOutcome(batch, outcomes[i])
		}
		return outcomes
	}

	headers := jsonHeaders(batch.Headers)

	var (
		mu       sync.Mutex
		outcomes = make([]Outcome, 0, len(batch.Bodies))
	)

	g := new(errgroup.Group)
	g.SetLimit(s.workers)

	for i, body := range batch.Bodies {
		i, body := i, body
		g.Go(func() error {
			o := s.submitOne(ctx, send, batch.URL, headers, i, body)
			s.logOutcome(batch, o)

			mu.Lock()
			outcomes = append(outcomes, o)
			mu.Unlock()

			// failures are reported through outcomes only, so the group
			// never short-circuits
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

type sendFunc func(ctx context.Context, url string, headers map[string]string, body any) (*transport.Response, error)

func (s *Submitter) sendFunc(method Method) (sendFunc, error) {
	switch method {
	case MethodCreate, "":
		return s.sender.Post, nil
	case MethodUpdate:
		return s.sender.Put, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

func (s *Submitter) submitOne(ctx context.Context, send sendFunc, url string, headers map[string]string, index int, body any) Outcome {
	out := Outcome{Index: index}

	payload, err := json.Marshal(body)
	if err != nil {
		out.Err = fmt.Errorf("encode body: %w", err)
		out.Kind = KindEncode
		return out
	}

	if s.limiter != nil {
		if err = s.limiter.Wait(ctx); err != nil {
			out.Err = err
			out.Kind = KindCanceled
			return out
		}
	}

	resp, err := send(ctx, url, headers, payload)
	if err != nil {
		out.Err = err
		out.Kind = KindConnection
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			out.Kind = KindCanceled
		}
		return out
	}

	out.StatusCode = resp.StatusCode
	out.Body = resp.Body
	if !resp.IsSuccess() {
		out.Err = &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(resp.Body))}
		out.Kind = KindStatus
	}
	return out
}

func (s *Submitter) logOutcome(batch Batch, o Outcome) {
	if o.OK() {
		s.logger.Info().
			Str("url", batch.URL).
			Str("method", string(batch.Method)).
			Int("index", o.Index).
			Int("status", o.StatusCode).
			Msg("submission succeeded")
		return
	}

	s.logger.Error().
		Err(o.Err).
		Str("url", batch.URL).
		Str("method", string(batch.Method)).
		Int("index", o.Index).
		Int("status", o.StatusCode).
		Str("kind", string(o.Kind)).
		Msg("submission failed")
}

// jsonHeaders copies explicit headers and makes sure the pre-encoded body is
// labelled as JSON. nil stays nil so the sender applies its defaults.
func jsonHeaders(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}
	out := maps.Clone(headers)
	for k := range out {
		if strings.EqualFold(k, "Content-Type") {
			delete(out, k)
		}
	}
	out["Content-Type"] = "application/json"
	return out
}
