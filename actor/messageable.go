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
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/atomic"

	gerrors "github.com/tochemey/goworker/errors"
	"github.com/tochemey/goworker/log"
)

const acquireBackoff = time.Millisecond

// Handler processes the business payload of Content messages.
type Handler[T any] interface {
	Handle(ctx context.Context, item T) error
}

// HandlerFunc adapts an ordinary function into a Handler.
type HandlerFunc[T any] func(ctx context.Context, item T) error

// Handle implements Handler
func (f HandlerFunc[T]) Handle(ctx context.Context, item T) error {
	return f(ctx, item)
}

// Messageable owns an actor mailbox and drains it with a single consumer,
// one message at a time, in arrival order.
type Messageable[T any] struct {
	identity Identity
	mailbox  Mailbox[T]
	logger   log.Logger
	tracker  Tracker

	// consuming is the single-consumer token shared by the loop and the
	// drain utilities
	consuming atomic.Bool
	launched  atomic.Bool
	// undefined is set when the actor was created without a handler
	undefined bool

	work    func(ctx context.Context, msg Message[T]) error
	onFatal func(ctx context.Context, err error)
}

// NewMessageable creates a Messageable delivering Content payloads to
// handler. Control and Request messages are dropped.
func NewMessageable[T any](identity Identity, handler Handler[T], opts ...Option) *Messageable[T] {
	m := newMessageable[T](identity, newSettings(false, opts...))
	m.undefined = handler == nil
	m.work = func(ctx context.Context, msg Message[T]) error {
		if msg.Kind() != ContentKind {
			m.logger.Warnf("%s dropped %s", m.identity, msg)
			return nil
		}
		return handler.Handle(ctx, msg.Payload())
	}
	return m
}

func newMessageable[T any](identity Identity, s *settings) *Messageable[T] {
	var mailbox Mailbox[T]
	if s.unbounded {
		mailbox = NewUnboundedMailbox[T]()
	} else {
		mailbox = NewBoundedMailbox[T](s.capacity)
	}

	return &Messageable[T]{
		identity: identity,
		mailbox:  mailbox,
		logger:   s.logger.With("actor", identity.Name, "id", identity.ID),
		tracker:  s.tracker,
	}
}

// Identity returns the actor identity
func (m *Messageable[T]) Identity() Identity {
	return m.identity
}

// Logger returns the actor logger
func (m *Messageable[T]) Logger() log.Logger {
	return m.logger
}

// Len returns the number of buffered messages
func (m *Messageable[T]) Len() int {
	return m.mailbox.Len()
}

// Send enqueues item as a Content message. On a full bounded mailbox the
// caller is suspended until space is available or ctx is done.
func (m *Messageable[T]) Send(ctx context.Context, item T) error {
	return m.mailbox.Enqueue(ctx, NewContent(item))
}

// Launch starts the processing loop in scope. The loop runs until the
// mailbox is closed or the scope is canceled; a handler error ends it and is
// reported to the scope. The loop starts once any in-flight Pull, Poll or
// Wipe returns.
func (m *Messageable[T]) Launch(scope *Scope) error {
	if m.undefined {
		return gerrors.ErrUndefinedHandler
	}
	if !m.launched.CompareAndSwap(false, true) {
		return gerrors.ErrAlreadyLaunched
	}
	scope.Go(m.run)
	return nil
}

// Close closes the mailbox. The loop processes what is buffered and exits.
// Producers must have finished sending before Close is called.
func (m *Messageable[T]) Close() {
	m.mailbox.Close()
}

// Pull processes up to n buffered messages without waiting and returns the
// number processed. Each message is handed to the tracker first.
func (m *Messageable[T]) Pull(ctx context.Context, n int) (int, error) {
	return m.drain(ctx, n, TrackPull)
}

// Poll processes at most one buffered message without waiting.
func (m *Messageable[T]) Poll(ctx context.Context) (bool, error) {
	count, err := m.drain(ctx, 1, TrackPoll)
	return count == 1, err
}

// Wipe discards every buffered message without processing it and returns
// the number discarded.
func (m *Messageable[T]) Wipe() (int, error) {
	if !m.consuming.CompareAndSwap(false, true) {
		return 0, gerrors.ErrConsumerBusy
	}
	defer m.consuming.Store(false)

	count := 0
	for {
		msg, ok := m.mailbox.TryDequeue()
		if !ok {
			return count, nil
		}
		m.tracker(TrackWipe, msg)
		count++
	}
}

func (m *Messageable[T]) drain(ctx context.Context, n int, source TrackSource) (int, error) {
	if m.undefined {
		return 0, gerrors.ErrUndefinedHandler
	}
	if !m.consuming.CompareAndSwap(false, true) {
		return 0, gerrors.ErrConsumerBusy
	}
	defer m.consuming.Store(false)

	count := 0
	for count < n {
		msg, ok := m.mailbox.TryDequeue()
		if !ok {
			break
		}
		m.tracker(source, msg)
		count++
		if err := m.process(ctx, msg); err != nil {
			return count, err
		}
	}
	return count, nil
}

func (m *Messageable[T]) run(ctx context.Context) error {
	if !m.acquire(ctx) {
		return nil
	}
	defer m.consuming.Store(false)

	m.logger.Debugf("%s loop started", m.identity)
	for {
		msg, ok := m.mailbox.Dequeue(ctx)
		if !ok {
			m.logger.Debugf("%s loop stopped", m.identity)
			return nil
		}

		if err := m.process(ctx, msg); err != nil {
			return err
		}

		// let the other actors sharing the scheduler run
		runtime.Gosched()
	}
}

// acquire waits for a drain utility to hand back the consumer token.
// It returns false when ctx is done first.
func (m *Messageable[T]) acquire(ctx context.Context) bool {
	for !m.consuming.CompareAndSwap(false, true) {
		timer := time.NewTimer(acquireBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
	return true
}

// process hands msg to work. Errors and panics are fatal for the actor.
func (m *Messageable[T]) process(ctx context.Context, msg Message[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = toPanicError(r)
		}
		if err != nil {
			m.logger.Errorf("%s failed to process %s: %v", m.identity, msg, err)
			if m.onFatal != nil {
				m.onFatal(ctx, err)
			}
		}
	}()
	return m.work(ctx, msg)
}

func toPanicError(r any) error {
	if err, ok := r.(error); ok {
		var pe *gerrors.PanicError
		if errors.As(err, &pe) {
			return pe
		}
		pc, fn, line, _ := runtime.Caller(3)
		return gerrors.NewPanicError(fmt.Errorf("%w at %s[%s:%d]", err, runtime.FuncForPC(pc).Name(), fn, line))
	}
	pc, fn, line, _ := runtime.Caller(3)
	return gerrors.NewPanicError(fmt.Errorf("%#v at %s[%s:%d]", r, runtime.FuncForPC(pc).Name(), fn, line))
}
