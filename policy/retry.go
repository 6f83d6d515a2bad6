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

	"github.com/tochemey/goworker/outcome"
)

// Retry invokes the next operation and, on failure, tries again until the
// operation succeeds or retries+1 attempts have been made. Every kind of
// failure is retried. The outcome of the final attempt is returned.
type Retry[I, O any] struct {
	retries int
	delay   time.Duration
}

// enforce compilation error
var _ Policy[int, int] = (*Retry[int, int])(nil)

// NewRetry creates a Retry policy. A negative retries is treated as zero and
// a positive delay is waited between attempts.
func NewRetry[I, O any](retries int, delay time.Duration) *Retry[I, O] {
	if retries < 0 {
		retries = 0
	}
	return &Retry[I, O]{retries: retries, delay: delay}
}

// Retries returns the number of retries after the first attempt
func (r *Retry[I, O]) Retries() int {
	return r.retries
}

// Run implements Policy. Waiting between attempts only suspends the calling
// goroutine and stops early when ctx is done, returning the last failure.
func (r *Retry[I, O]) Run(ctx context.Context, in I, next Operation[I, O]) outcome.Outcome[O] {
	var out outcome.Outcome[O]
	for attempt := 0; attempt <= r.retries; attempt++ {
		out = next(ctx, in)
		if out.IsSuccess() || attempt == r.retries {
			return out
		}

		if r.delay > 0 {
			timer := time.NewTimer(r.delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return out
			case <-timer.C:
			}
		}
	}
	return out
}
