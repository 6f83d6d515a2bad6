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

package job

import (
	"context"
	"errors"

	gods "github.com/Workiva/go-datastructures/queue"
	"go.uber.org/atomic"

	gerrors "github.com/tochemey/goworker/errors"
)

// Queue is a pull-based source of items.
//
// Next and NextBatch never wait for items to arrive: an empty queue yields
// nothing. Complete acknowledges an item once a worker processed it
// successfully.
type Queue interface {
	// Name returns the queue name workers subscribe to
	Name() string
	// Next returns the next item, false when the queue is empty
	Next(ctx context.Context) (Item, bool, error)
	// NextBatch returns up to n items
	NextBatch(ctx context.Context, n int) ([]Item, error)
	// Complete acknowledges item
	Complete(ctx context.Context, item Item) error
}

// Releaser is implemented by queues that take back items that were read but
// never reached a worker. The job releases an item when no active worker
// could take it.
type Releaser interface {
	Release(ctx context.Context, item Item) error
}

// MemoryQueue is an in-process Queue backed by a go-datastructures queue.
//
// Reading removes items. Items that never reached a worker are released back
// to the tail of the queue; items a worker failed on are not put back.
type MemoryQueue struct {
	name       string
	underlying *gods.Queue
	completed  atomic.Int64
}

// enforce compilation error
var _ Queue = (*MemoryQueue)(nil)
var _ Releaser = (*MemoryQueue)(nil)

// NewMemoryQueue creates an empty MemoryQueue
func NewMemoryQueue(name string) *MemoryQueue {
	return &MemoryQueue{
		name:       name,
		underlying: gods.New(32),
	}
}

// Name implements Queue
func (q *MemoryQueue) Name() string {
	return q.name
}

// Push appends items to the queue
func (q *MemoryQueue) Push(items ...Item) error {
	values := make([]any, len(items))
	for i, item := range items {
		values[i] = item
	}
	return toQueueError(q.underlying.Put(values...))
}

// Next implements Queue
func (q *MemoryQueue) Next(ctx context.Context) (Item, bool, error) {
	items, err := q.NextBatch(ctx, 1)
	if err != nil || len(items) == 0 {
		return Item{}, false, err
	}
	return items[0], true, nil
}

// NextBatch implements Queue
func (q *MemoryQueue) NextBatch(ctx context.Context, n int) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}

	taken := 0
	values, err := q.underlying.TakeUntil(func(any) bool {
		if taken == n {
			return false
		}
		taken++
		return true
	})
	if err != nil {
		return nil, toQueueError(err)
	}

	items := make([]Item, 0, len(values))
	for _, value := range values {
		if item, ok := value.(Item); ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// Complete implements Queue
func (q *MemoryQueue) Complete(context.Context, Item) error {
	if q.underlying.Disposed() {
		return gerrors.ErrQueueDisposed
	}
	q.completed.Inc()
	return nil
}

// Release puts item back at the tail of the queue
func (q *MemoryQueue) Release(_ context.Context, item Item) error {
	return q.Push(item)
}

// Len returns the number of pending items
func (q *MemoryQueue) Len() int {
	return int(q.underlying.Len())
}

// Completed returns the number of acknowledged items
func (q *MemoryQueue) Completed() int64 {
	return q.completed.Load()
}

// Dispose drops the pending items. Any further call fails with
// ErrQueueDisposed.
func (q *MemoryQueue) Dispose() {
	q.underlying.Dispose()
}

func toQueueError(err error) error {
	if errors.Is(err, gods.ErrDisposed) {
		return gerrors.ErrQueueDisposed
	}
	return err
}
