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

package actor

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Scope is the scheduling context actors are launched in. Every actor loop
// runs on its own goroutine and the Go scheduler multiplexes them; Wait
// returns the first fatal error any of them reported.
//
// A failing actor does not cancel its siblings.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewScope creates a Scope bound to ctx. Canceling ctx stops every actor loop.
func NewScope(ctx context.Context) *Scope {
	cctx, cancel := context.WithCancel(ctx)
	return &Scope{
		ctx:    cctx,
		cancel: cancel,
		group:  new(errgroup.Group),
	}
}

// Context returns the scope context
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Go runs fn on a new goroutine of the scope.
func (s *Scope) Go(fn func(ctx context.Context) error) {
	s.group.Go(func() error {
		return fn(s.ctx)
	})
}

// Cancel cancels the scope context.
func (s *Scope) Cancel() {
	s.cancel()
}

// Wait blocks until every goroutine of the scope has returned and returns
// the first non-nil error.
func (s *Scope) Wait() error {
	defer s.cancel()
	return s.group.Wait()
}
