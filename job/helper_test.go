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
	"sync"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// spyWorker records the tasks it receives and delegates to work when set
type spyWorker struct {
	name   string
	queues []string
	work   func(task Task) (Result, error)

	mu    sync.Mutex
	tasks []Task
}

func newSpyWorker(name string, queues ...string) *spyWorker {
	return &spyWorker{name: name, queues: queues}
}

func (w *spyWorker) Name() string     { return w.name }
func (w *spyWorker) Queues() []string { return w.queues }

func (w *spyWorker) Work(_ context.Context, task Task) (Result, error) {
	w.mu.Lock()
	w.tasks = append(w.tasks, task)
	w.mu.Unlock()
	if w.work != nil {
		return w.work(task)
	}
	return More(), nil
}

func (w *spyWorker) received() []Task {
	w.mu.Lock()
	defer w.mu.Unlock()
	tasks := make([]Task, len(w.tasks))
	copy(tasks, w.tasks)
	return tasks
}

func (w *spyWorker) count() int {
	return len(w.received())
}

// initWorker fails its first failures Init calls
type initWorker struct {
	*spyWorker
	failures int

	mu    sync.Mutex
	calls int
}

func (w *initWorker) Init(context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.calls <= w.failures {
		return errInit
	}
	return nil
}

func (w *initWorker) initCalls() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calls
}

func items(n int, correlationID string) []Item {
	out := make([]Item, n)
	for i := range out {
		out[i] = Item{Name: "task", Body: []byte{byte(i)}, CorrelationID: correlationID}
	}
	return out
}
