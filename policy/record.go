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

	"github.com/tochemey/goworker/counter"
	"github.com/tochemey/goworker/outcome"
)

// Record invokes the next operation and records its outcome in counters and,
// when set, the attempt in calls. Place it outermost so inner Limit and Ratio
// policies read counts that exclude the current call.
type Record[I, O any] struct {
	counters *counter.Counters
	calls    *counter.Calls
}

// enforce compilation error
var _ Policy[int, int] = (*Record[int, int])(nil)

// NewRecord creates a Record policy. calls may be nil.
func NewRecord[I, O any](counters *counter.Counters, calls *counter.Calls) *Record[I, O] {
	return &Record[I, O]{counters: counters, calls: calls}
}

// Run implements Policy
func (r *Record[I, O]) Run(ctx context.Context, in I, next Operation[I, O]) outcome.Outcome[O] {
	out := next(ctx, in)
	if r.calls != nil {
		r.calls.Inc()
		if out.IsSuccess() {
			r.calls.Pass()
		} else {
			r.calls.Fail(out.Err())
		}
	}
	counter.Track(r.counters, out)
	return out
}
