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

import "context"

// Mailbox is the ordered queue of messages delivered to exactly one actor.
//
// Implementations MUST be safe for concurrent producers calling Enqueue and
// are consumed by a single goroutine. Ordering is FIFO.
type Mailbox[T any] interface {
	// Enqueue appends a message. Bounded implementations suspend the caller
	// while full, until space is available or ctx is done. Enqueue on a
	// closed mailbox returns ErrMailboxClosed.
	Enqueue(ctx context.Context, msg Message[T]) error
	// Dequeue removes the next message, waiting until one is available. It
	// returns false once the mailbox is closed and drained, or ctx is done.
	Dequeue(ctx context.Context) (Message[T], bool)
	// TryDequeue removes the next message without waiting.
	TryDequeue() (Message[T], bool)
	// Len returns a snapshot of the number of buffered messages.
	Len() int
	// Close stops accepting messages. Messages already buffered can still
	// be dequeued.
	Close()
}
