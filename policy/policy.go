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

// Package policy composes cross-cutting execution rules around a business
// operation.
//
// A Policy decides whether and how to invoke the next Operation. Policies are
// chained with Chain, which right-folds the list onto the terminal operation
// once: for policies [A, B] wrapping T, a call runs A's pre-step, B's pre-step,
// T, B's post-step and finally A's post-step.
package policy

import (
	"context"

	"github.com/tochemey/goworker/outcome"
)

// Operation is a fallible operation turning an input into an Outcome.
type Operation[I, O any] func(ctx context.Context, in I) outcome.Outcome[O]

// Policy wraps an Operation with a cross-cutting rule.
type Policy[I, O any] interface {
	// Run decides whether and how next is invoked for the given input.
	Run(ctx context.Context, in I, next Operation[I, O]) outcome.Outcome[O]
}

// Func adapts an ordinary function into a Policy.
type Func[I, O any] func(ctx context.Context, in I, next Operation[I, O]) outcome.Outcome[O]

// enforce compilation error
var _ Policy[int, int] = Func[int, int](nil)

// Run implements Policy
func (f Func[I, O]) Run(ctx context.Context, in I, next Operation[I, O]) outcome.Outcome[O] {
	return f(ctx, in, next)
}

// Chain composes the policies around terminal and returns the resulting
// Operation. The first policy of the list is the outermost one. Nil policies
// are skipped.
func Chain[I, O any](policies []Policy[I, O], terminal Operation[I, O]) Operation[I, O] {
	composed := terminal
	for i := len(policies) - 1; i >= 0; i-- {
		p := policies[i]
		if p == nil {
			continue
		}
		next := composed
		composed = func(ctx context.Context, in I) outcome.Outcome[O] {
			return p.Run(ctx, in, next)
		}
	}
	return composed
}

// Compose is the variadic form of Chain.
func Compose[I, O any](terminal Operation[I, O], policies ...Policy[I, O]) Operation[I, O] {
	return Chain(policies, terminal)
}
