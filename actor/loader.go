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

	"github.com/google/uuid"
)

// RequestHandler serves the Request messages of a Loader.
type RequestHandler interface {
	Request(ctx context.Context, req Request) error
}

// RequestFunc adapts an ordinary function into a RequestHandler.
type RequestFunc func(ctx context.Context, req Request) error

// Request implements RequestHandler
func (f RequestFunc) Request(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// Loader is a Pausable that also accepts load requests. Load only enqueues a
// request while the actor is active, and a queued request only reaches the
// RequestHandler if the actor is still active when the loop gets to it.
//
// Strict mode is enabled unless WithStrictMode(false) is given.
type Loader[T any] struct {
	*Pausable[T]
	requester RequestHandler
}

// NewLoader creates a Loader actor
func NewLoader[T any](identity Identity, handler Handler[T], requester RequestHandler, opts ...Option) *Loader[T] {
	l := &Loader[T]{
		Pausable:  newPausable(identity, handler, newSettings(true, opts...)),
		requester: requester,
	}
	l.Messageable.work = l.work
	l.Messageable.undefined = handler == nil || requester == nil
	return l
}

// Load enqueues a request for reference. It returns Rejected, without
// enqueueing, when strict mode forbids work.
func (l *Loader[T]) Load(ctx context.Context, reference string) (Receipt, error) {
	var err error
	receipt := l.Allow(func() {
		err = l.mailbox.Enqueue(ctx, NewRequest[T](uuid.NewString(), reference))
	})
	return receipt, err
}

func (l *Loader[T]) work(ctx context.Context, msg Message[T]) error {
	if msg.Kind() != RequestKind {
		return l.Pausable.work(ctx, msg)
	}

	var err error
	if receipt := l.Allow(func() { err = l.requester.Request(ctx, msg.Request()) }); receipt == Rejected {
		l.logger.Debugf("%s rejected %s while %s", l.identity, msg, l.Status())
	}
	return err
}
