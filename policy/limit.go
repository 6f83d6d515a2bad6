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

	"github.com/tochemey/goworker/outcome"
)

// Limit short-circuits with a limited failure, without invoking the next
// operation, once the processed count reaches limit. Incrementing the count
// stays the responsibility of the caller (see Record).
type Limit[I, O any] struct {
	limit     int64
	processed func() int64
}

// enforce compilation error
var _ Policy[int, int] = (*Limit[int, int])(nil)

// NewLimit creates a Limit policy reading the processed count from processed.
func NewLimit[I, O any](limit int64, processed func() int64) *Limit[I, O] {
	return &Limit[I, O]{limit: limit, processed: processed}
}

// Run implements Policy
func (l *Limit[I, O]) Run(ctx context.Context, in I, next Operation[I, O]) outcome.Outcome[O] {
	if l.processed() >= l.limit {
		return outcome.Limited[O]()
	}
	return next(ctx, in)
}

// Calls behaves like Limit but is keyed on the total number of call attempts.
type Calls[I, O any] struct {
	limit    int64
	attempts func() int64
}

// enforce compilation error
var _ Policy[int, int] = (*Calls[int, int])(nil)

// NewCalls creates a Calls policy reading the attempts count from attempts.
func NewCalls[I, O any](limit int64, attempts func() int64) *Calls[I, O] {
	return &Calls[I, O]{limit: limit, attempts: attempts}
}

// Run implements Policy
func (c *Calls[I, O]) Run(ctx context.Context, in I, next Operation[I, O]) outcome.Outcome[O] {
	if c.attempts() >= c.limit {
		return outcome.Limited[O]()
	}
	return next(ctx, in)
}
