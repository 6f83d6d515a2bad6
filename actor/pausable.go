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
	"fmt"
	"sync"

	"go.uber.org/atomic"
)

// Pausable is a Messageable with a lifecycle: Control messages drive its
// Status through Next and fire the lifecycle hooks, Content messages reach
// the handler.
//
// In strict mode Allow only runs work while the status is Started or Running.
type Pausable[T any] struct {
	*Messageable[T]

	handler Handler[T]
	hooks   Hooks
	strict  bool
	status  atomic.Int32

	// serializes transitions applied by the loop and by Force
	mu sync.Mutex
	// keeps hook calls in the order of the status stores
	hooking sync.Mutex
}

// NewPausable creates a Pausable actor. Strict mode is disabled unless
// WithStrictMode(true) is given.
func NewPausable[T any](identity Identity, handler Handler[T], opts ...Option) *Pausable[T] {
	return newPausable(identity, handler, newSettings(false, opts...))
}

func newPausable[T any](identity Identity, handler Handler[T], s *settings) *Pausable[T] {
	p := &Pausable[T]{
		Messageable: newMessageable[T](identity, s),
		handler:     handler,
		hooks:       s.hooks,
		strict:      s.strict,
	}
	p.status.Store(int32(InActive))
	p.Messageable.undefined = handler == nil
	p.Messageable.work = p.work
	p.Messageable.onFatal = p.fail
	return p
}

// Status returns the status reached by the last processed transition.
func (p *Pausable[T]) Status() Status {
	return Status(p.status.Load())
}

// IsStrict reports whether strict mode is enabled
func (p *Pausable[T]) IsStrict() bool {
	return p.strict
}

// SendAction enqueues a Control message. The transition happens when the
// loop reaches it, in FIFO order with Content messages.
func (p *Pausable[T]) SendAction(ctx context.Context, action Action, note string) error {
	return p.mailbox.Enqueue(ctx, NewControl[T](action, note))
}

// Force applies action immediately, bypassing the mailbox.
func (p *Pausable[T]) Force(ctx context.Context, action Action, note string) Feedback {
	return p.transition(ctx, action, note)
}

// Complete moves the actor to Completed.
func (p *Pausable[T]) Complete(ctx context.Context, note string) Feedback {
	p.mu.Lock()
	prev := p.Status()
	return p.apply(ctx, prev, Completed, note)
}

// Allow runs op and returns Accepted, unless strict mode is enabled and the
// actor is neither Started nor Running, in which case op is not run.
func (p *Pausable[T]) Allow(op func()) Receipt {
	if p.strict && !p.Status().IsActive() {
		return Rejected
	}
	op()
	return Accepted
}

func (p *Pausable[T]) work(ctx context.Context, msg Message[T]) error {
	switch msg.Kind() {
	case ControlKind:
		p.transition(ctx, msg.Action(), msg.Note())
		return nil
	case ContentKind:
		return p.handler.Handle(ctx, msg.Payload())
	default:
		p.logger.Warnf("%s dropped %s", p.identity, msg)
		return nil
	}
}

func (p *Pausable[T]) transition(ctx context.Context, action Action, note string) Feedback {
	p.mu.Lock()
	prev := p.Status()
	return p.apply(ctx, prev, Next(action, prev), note)
}

// apply stores next and fires the hooks. The caller holds p.mu, which apply
// releases before calling the hooks. p.hooking is held from the store until
// the hooks return, so a concurrent transition cannot notify first.
func (p *Pausable[T]) apply(ctx context.Context, prev, next Status, note string) Feedback {
	if prev == next {
		p.mu.Unlock()
		return Feedback{Changed: false, Message: fmt.Sprintf("status unchanged: %s", prev)}
	}

	p.hooking.Lock()
	defer p.hooking.Unlock()
	p.status.Store(int32(next))
	p.mu.Unlock()

	p.logger.Debugf("%s moved from %s to %s", p.identity, prev, next)
	fireHooks(ctx, p.hooks, prev, next, note)
	return Feedback{Changed: true, Message: fmt.Sprintf("status changed from %s to %s", prev, next)}
}

func (p *Pausable[T]) fail(ctx context.Context, err error) {
	p.mu.Lock()
	prev := p.Status()
	p.apply(ctx, prev, Failed, err.Error())
}
