// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package job

import (
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/tochemey/goworker/actor"
	"github.com/tochemey/goworker/counter"
	"github.com/tochemey/goworker/log"
	"github.com/tochemey/goworker/policy"
)

const (
	// DefaultBatchSize is the number of items read from a queue per request
	DefaultBatchSize = 10
	// DefaultInitRetries is the number of attempts made to initialize a worker
	DefaultInitRetries = 3
	// DefaultInitDelay is the initial backoff between two initialization attempts
	DefaultInitDelay = 100 * time.Millisecond
)

// PolicyFactory builds the policies wrapping the operation of one worker.
// It is called once per worker with the counters that worker records into.
type PolicyFactory func(counters *counter.Counters, calls *counter.Calls) []policy.Policy[Task, Result]

type settings struct {
	logger       log.Logger
	capacity     int
	batchSize    int
	pollInterval time.Duration
	policies     PolicyFactory
	meter        metric.Meter
	initRetries  int
	initDelay    time.Duration
	hooks        actor.Hooks
}

func newSettings(opts ...Option) *settings {
	s := &settings{
		logger:      log.DiscardLogger,
		capacity:    actor.DefaultCapacity,
		batchSize:   DefaultBatchSize,
		initRetries: DefaultInitRetries,
		initDelay:   DefaultInitDelay,
		hooks:       actor.NoHooks{},
	}
	for _, opt := range opts {
		opt.Apply(s)
	}
	return s
}

// Option is the interface that applies a job option.
type Option interface {
	// Apply sets the Option value of the job settings.
	Apply(s *settings)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(s *settings)

// Apply applies the option
func (f OptionFunc) Apply(s *settings) {
	f(s)
}

// WithLogger sets the job logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	})
}

// WithWorkerCapacity sets the mailbox capacity of every worker
func WithWorkerCapacity(capacity int) Option {
	return OptionFunc(func(s *settings) {
		s.capacity = capacity
	})
}

// WithBatchSize sets the number of items read from a queue per dispatch
func WithBatchSize(size int) Option {
	return OptionFunc(func(s *settings) {
		if size > 0 {
			s.batchSize = size
		}
	})
}

// WithPollInterval makes the job dispatch every queue at the given interval.
// Zero disables polling.
func WithPollInterval(interval time.Duration) Option {
	return OptionFunc(func(s *settings) {
		s.pollInterval = interval
	})
}

// WithPolicies sets the factory of the policies wrapping every worker
func WithPolicies(factory PolicyFactory) Option {
	return OptionFunc(func(s *settings) {
		s.policies = factory
	})
}

// WithMeter enables the worker metrics on meter
func WithMeter(meter metric.Meter) Option {
	return OptionFunc(func(s *settings) {
		s.meter = meter
	})
}

// WithInitRetries sets how many times a worker Init is attempted and the
// initial backoff between attempts
func WithInitRetries(retries int, delay time.Duration) Option {
	return OptionFunc(func(s *settings) {
		if retries > 0 {
			s.initRetries = retries
		}
		if delay > 0 {
			s.initDelay = delay
		}
	})
}

// WithHooks sets the lifecycle hooks of the job itself
func WithHooks(hooks actor.Hooks) Option {
	return OptionFunc(func(s *settings) {
		if hooks != nil {
			s.hooks = hooks
		}
	})
}
