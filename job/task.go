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
	"fmt"

	"github.com/google/uuid"
)

// Item is a raw unit of work produced by a Queue.
type Item struct {
	// ID identifies the item in its queue. Empty IDs are replaced by a
	// random one when the item becomes a Task.
	ID string
	// Name is the task name, free for the worker to interpret
	Name string
	// Body is the task payload
	Body []byte
	// CorrelationID groups related items. Tasks sharing a correlation ID
	// are delivered to the same worker while the set of active workers
	// does not change.
	CorrelationID string
}

// Task is an Item addressed to the workers of a queue.
type Task struct {
	ID            string
	Queue         string
	Name          string
	Body          []byte
	CorrelationID string

	item Item
}

// NewTask converts item, read from the named queue, into a Task.
func NewTask(queue string, item Item) Task {
	id := item.ID
	if id == "" {
		id = uuid.NewString()
		item.ID = id
	}

	return Task{
		ID:            id,
		Queue:         queue,
		Name:          item.Name,
		Body:          item.Body,
		CorrelationID: item.CorrelationID,
		item:          item,
	}
}

// Item returns the queue item the task was built from
func (t Task) Item() Item {
	return t.item
}

// String returns queue/name/id
func (t Task) String() string {
	return fmt.Sprintf("%s/%s/%s", t.Queue, t.Name, t.ID)
}
