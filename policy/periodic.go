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

package policy

import (
	"context"
	"time"

	"go.uber.org/atomic"

	"github.com/tochemey/goworker/outcome"
)

// Periodic invokes the next operation at most once per interval. Calls made
// before the next allowed time are skipped with an Ignored failure.
type Periodic[I, O any] struct {
	interval    time.Duration
	clock       func() time.Time
	nextAllowed atomic.Time
}

// enforce compilation error
var _ Policy[int, int] = (*Periodic[int, int])(nil)

// PeriodicOption configures a Periodic policy
type PeriodicOption func(*periodicConfig)

type periodicConfig struct {
	clock func() time.Time
}

// WithClock sets the clock used to read the current time.
func WithClock(clock func() time.Time) PeriodicOption {
	return func(config *periodicConfig) {
		config.clock = clock
	}
}

// NewPeriodic creates a Periodic policy
func NewPeriodic[I, O any](interval time.Duration, opts ...PeriodicOption) *Periodic[I, O] {
	config := &periodicConfig{clock: time.Now}
	for _, opt := range opts {
		opt(config)
	}
	return &Periodic[I, O]{
		interval: interval,
		clock:    config.clock,
	}
}

// NextAllowed returns the earliest time the next operation may run.
func (p *Periodic[I, O]) NextAllowed() time.Time {
	return p.nextAllowed.Load()
}

// Run implements Policy
func (p *Periodic[I, O]) Run(ctx context.Context, in I, next Operation[I, O]) outcome.Outcome[O] {
	now := p.clock()
	if now.Before(p.nextAllowed.Load()) {
		return outcome.Skipped[O]()
	}

	out := next(ctx, in)
	p.nextAllowed.Store(now.Add(p.interval))
	return out
}
