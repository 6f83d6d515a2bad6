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

// Tally exposes the counts a Ratio policy reads. counter.Counters implements it.
type Tally interface {
	// Processed returns the total number of processed operations
	Processed() int64
	// Count returns the number of operations recorded with the given status
	Count(status outcome.Status) int64
}

// Ratio invokes the next operation first and then checks the share of the
// given status among processed operations. When the share reaches limit the
// real outcome is replaced by a limited failure, even on success.
type Ratio[I, O any] struct {
	limit  float64
	status outcome.Status
	tally  Tally
}

// enforce compilation error
var _ Policy[int, int] = (*Ratio[int, int])(nil)

// NewRatio creates a Ratio policy. limit is a fraction in [0, 1].
func NewRatio[I, O any](limit float64, status outcome.Status, tally Tally) *Ratio[I, O] {
	return &Ratio[I, O]{limit: limit, status: status, tally: tally}
}

// Run implements Policy
func (r *Ratio[I, O]) Run(ctx context.Context, in I, next Operation[I, O]) outcome.Outcome[O] {
	out := next(ctx, in)
	processed := r.tally.Processed()
	if processed <= 0 {
		return out
	}

	ratio := float64(r.tally.Count(r.status)) / float64(processed)
	if ratio >= r.limit {
		return outcome.Limited[O]()
	}
	return out
}
