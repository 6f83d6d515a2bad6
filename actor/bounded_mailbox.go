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
	"sync"

	gerrors "github.com/tochemey/goworker/errors"
)

// BoundedMailbox is a channel-backed mailbox with a fixed capacity.
//
// Enqueue blocks while the mailbox is full, which gives producers
// backpressure. Closing the mailbox lets the consumer drain what is buffered
// before Dequeue reports the end of the stream.
type BoundedMailbox[T any] struct {
	messages chan Message[T]
	mu       sync.RWMutex
	closed   bool
}

// enforce compilation error
var _ Mailbox[int] = (*BoundedMailbox[int])(nil)

// NewBoundedMailbox creates a bounded mailbox. A capacity below one is
// raised to one.
func NewBoundedMailbox[T any](capacity int) *BoundedMailbox[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &BoundedMailbox[T]{messages: make(chan Message[T], capacity)}
}

// Enqueue implements Mailbox
func (m *BoundedMailbox[T]) Enqueue(ctx context.Context, msg Message[T]) error {
	// the read lock is held while blocked on a full channel so Close never
	// closes the channel under a pending send
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return gerrors.ErrMailboxClosed
	}

	select {
	case m.messages <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dequeue implements Mailbox
func (m *BoundedMailbox[T]) Dequeue(ctx context.Context) (Message[T], bool) {
	select {
	case msg, ok := <-m.messages:
		return msg, ok
	case <-ctx.Done():
		var zero Message[T]
		return zero, false
	}
}

// TryDequeue implements Mailbox
func (m *BoundedMailbox[T]) TryDequeue() (Message[T], bool) {
	select {
	case msg, ok := <-m.messages:
		return msg, ok
	default:
		var zero Message[T]
		return zero, false
	}
}

// Len implements Mailbox
func (m *BoundedMailbox[T]) Len() int {
	return len(m.messages)
}

// Cap returns the mailbox capacity
func (m *BoundedMailbox[T]) Cap() int {
	return cap(m.messages)
}

// Close implements Mailbox
func (m *BoundedMailbox[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.messages)
	}
}
