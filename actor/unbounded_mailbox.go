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
	"time"

	gods "github.com/Workiva/go-datastructures/queue"
	"go.uber.org/atomic"

	gerrors "github.com/tochemey/goworker/errors"
)

const unboundedPollInterval = 50 * time.Millisecond

// UnboundedMailbox is a mailbox without capacity limit backed by a
// go-datastructures queue. Enqueue never blocks; if producers outpace the
// consumer memory grows without limit.
type UnboundedMailbox[T any] struct {
	underlying *gods.Queue
	closed     atomic.Bool
}

// enforce compilation error
var _ Mailbox[int] = (*UnboundedMailbox[int])(nil)

// NewUnboundedMailbox creates an unbounded mailbox
func NewUnboundedMailbox[T any]() *UnboundedMailbox[T] {
	return &UnboundedMailbox[T]{underlying: gods.New(64)}
}

// Enqueue implements Mailbox
func (m *UnboundedMailbox[T]) Enqueue(_ context.Context, msg Message[T]) error {
	if m.closed.Load() {
		return gerrors.ErrMailboxClosed
	}
	if err := m.underlying.Put(msg); err != nil {
		if errors.Is(err, gods.ErrDisposed) {
			return gerrors.ErrMailboxClosed
		}
		return err
	}
	return nil
}

// Dequeue implements Mailbox
func (m *UnboundedMailbox[T]) Dequeue(ctx context.Context) (Message[T], bool) {
	var zero Message[T]
	for {
		if ctx.Err() != nil {
			return zero, false
		}

		if m.closed.Load() && m.underlying.Empty() {
			m.underlying.Dispose()
			return zero, false
		}

		items, err := m.underlying.Poll(1, unboundedPollInterval)
		if err != nil {
			if errors.Is(err, gods.ErrTimeout) {
				continue
			}
			return zero, false
		}

		if len(items) > 0 {
			if msg, ok := items[0].(Message[T]); ok {
				return msg, true
			}
		}
	}
}

// TryDequeue implements Mailbox
func (m *UnboundedMailbox[T]) TryDequeue() (Message[T], bool) {
	var zero Message[T]
	items, err := m.underlying.TakeUntil(takeOne())
	if err != nil || len(items) == 0 {
		return zero, false
	}
	msg, ok := items[0].(Message[T])
	return msg, ok
}

// takeOne returns a TakeUntil checker accepting the first item only
func takeOne() func(any) bool {
	taken := false
	return func(any) bool {
		if taken {
			return false
		}
		taken = true
		return true
	}
}

// Len implements Mailbox
func (m *UnboundedMailbox[T]) Len() int {
	return int(m.underlying.Len())
}

// Close implements Mailbox
func (m *UnboundedMailbox[T]) Close() {
	if m.closed.CompareAndSwap(false, true) && m.underlying.Empty() {
		// wakes up a consumer waiting on an empty queue
		m.underlying.Dispose()
	}
}
