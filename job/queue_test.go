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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/tochemey/goworker/errors"
	"github.com/tochemey/goworker/outcome"
)

func TestMemoryQueue(t *testing.T) {
	t.Run("With FIFO reads", func(t *testing.T) {
		ctx := context.Background()
		queue := NewMemoryQueue("orders")
		assert.Equal(t, "orders", queue.Name())

		_, ok, err := queue.Next(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, queue.Push(Item{ID: "1"}, Item{ID: "2"}, Item{ID: "3"}))
		assert.Equal(t, 3, queue.Len())

		item, ok, err := queue.Next(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "1", item.ID)

		batch, err := queue.NextBatch(ctx, 5)
		require.NoError(t, err)
		require.Len(t, batch, 2)
		assert.Equal(t, "2", batch[0].ID)
		assert.Equal(t, "3", batch[1].ID)

		batch, err = queue.NextBatch(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, batch)

		require.NoError(t, queue.Complete(ctx, item))
		assert.EqualValues(t, 1, queue.Completed())
	})
	t.Run("With released items", func(t *testing.T) {
		ctx := context.Background()
		queue := NewMemoryQueue("orders")
		require.NoError(t, queue.Push(Item{ID: "1"}, Item{ID: "2"}))

		item, ok, err := queue.Next(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, queue.Release(ctx, item))

		batch, err := queue.NextBatch(ctx, 5)
		require.NoError(t, err)
		require.Len(t, batch, 2)
		assert.Equal(t, "2", batch[0].ID)
		assert.Equal(t, "1", batch[1].ID)
		assert.Zero(t, queue.Completed())
	})
	t.Run("With partial batch", func(t *testing.T) {
		ctx := context.Background()
		queue := NewMemoryQueue("orders")
		require.NoError(t, queue.Push(items(5, "")...))

		batch, err := queue.NextBatch(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, batch, 2)
		assert.Equal(t, 3, queue.Len())

		batch, err = queue.NextBatch(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, batch)
	})
	t.Run("With canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		queue := NewMemoryQueue("orders")
		_, err := queue.NextBatch(ctx, 1)
		assert.ErrorIs(t, err, context.Canceled)
	})
	t.Run("With disposed queue", func(t *testing.T) {
		ctx := context.Background()
		queue := NewMemoryQueue("orders")
		queue.Dispose()

		assert.ErrorIs(t, queue.Push(Item{}), gerrors.ErrQueueDisposed)
		_, err := queue.NextBatch(ctx, 1)
		assert.ErrorIs(t, err, gerrors.ErrQueueDisposed)
		assert.ErrorIs(t, queue.Complete(ctx, Item{}), gerrors.ErrQueueDisposed)
	})
}

func TestNewTask(t *testing.T) {
	item := Item{ID: "42", Name: "invoice", Body: []byte("body"), CorrelationID: "customer-1"}
	task := NewTask("orders", item)
	assert.Equal(t, "42", task.ID)
	assert.Equal(t, "orders", task.Queue)
	assert.Equal(t, "invoice", task.Name)
	assert.Equal(t, []byte("body"), task.Body)
	assert.Equal(t, "customer-1", task.CorrelationID)
	assert.Equal(t, item, task.Item())
	assert.Equal(t, "orders/invoice/42", task.String())

	anonymous := NewTask("orders", Item{Name: "invoice"})
	assert.NotEmpty(t, anonymous.ID)
	assert.Equal(t, anonymous.ID, anonymous.Item().ID)
}

func TestResult(t *testing.T) {
	assert.True(t, Done().IsDone())
	assert.False(t, More().IsDone())
	assert.Equal(t, "More", More().String())

	next := Next(20, 100, "page")
	assert.Equal(t, NextKind, next.Kind())
	assert.EqualValues(t, 20, next.Offset())
	assert.EqualValues(t, 100, next.Total())
	assert.Equal(t, "page", next.Label())
	assert.Equal(t, "Next(20/100 page)", next.String())
}

func TestClassify(t *testing.T) {
	expected := map[outcome.Status]Class{
		outcome.Succeeded:  Succeeded,
		outcome.Pending:    Succeeded,
		outcome.Denied:     Filtered,
		outcome.Invalid:    Filtered,
		outcome.Ignored:    Filtered,
		outcome.Errored:    Errored,
		outcome.Unexpected: Errored,
	}
	for status, class := range expected {
		assert.Equal(t, class, Classify(status), status.String())
	}
}
