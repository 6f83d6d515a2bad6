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

// And evaluates two policies against a no-op terminal returning empty and
// invokes the real operation only when both pass. When either fails its
// failure is returned, the first policy being checked first.
type And[I, O any] struct {
	first  Policy[I, O]
	second Policy[I, O]
	empty  O
}

// enforce compilation error
var _ Policy[int, int] = (*And[int, int])(nil)

// NewAnd creates an And policy
func NewAnd[I, O any](first, second Policy[I, O], empty O) *And[I, O] {
	return &And[I, O]{first: first, second: second, empty: empty}
}

// Run implements Policy
func (a *And[I, O]) Run(ctx context.Context, in I, next Operation[I, O]) outcome.Outcome[O] {
	noop := func(context.Context, I) outcome.Outcome[O] {
		return outcome.Success(a.empty)
	}

	first := a.first.Run(ctx, in, noop)
	second := a.second.Run(ctx, in, noop)
	if first.IsFailure() {
		return first
	}
	if second.IsFailure() {
		return second
	}
	return next(ctx, in)
}

// Rewrite transforms the input before delegating to the next operation.
type Rewrite[I, O any] struct {
	rewrite func(I) I
}

// enforce compilation error
var _ Policy[int, int] = (*Rewrite[int, int])(nil)

// NewRewrite creates a Rewrite policy
func NewRewrite[I, O any](rewrite func(I) I) *Rewrite[I, O] {
	return &Rewrite[I, O]{rewrite: rewrite}
}

// Run implements Policy
func (r *Rewrite[I, O]) Run(ctx context.Context, in I, next Operation[I, O]) outcome.Outcome[O] {
	return next(ctx, r.rewrite(in))
}
