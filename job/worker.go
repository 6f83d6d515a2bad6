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

import "context"

// Wildcard subscribes a worker to every queue of its job
const Wildcard = "*"

// Worker processes the tasks of the queues it subscribes to.
type Worker interface {
	// Name returns the worker name, unique within a job
	Name() string
	// Queues returns the queue names the worker takes tasks from. Wildcard
	// matches every queue.
	Queues() []string
	// Work processes task. A returned error is recorded as an Errored
	// outcome and the runner carries on with the next task.
	Work(ctx context.Context, task Task) (Result, error)
}

// Initializer is implemented by workers that must prepare before receiving
// tasks. Init is retried when it fails.
type Initializer interface {
	Init(ctx context.Context) error
}

// WorkFunc is the signature of Worker.Work
type WorkFunc func(ctx context.Context, task Task) (Result, error)

type funcWorker struct {
	name   string
	queues []string
	work   WorkFunc
}

// NewWorker creates a Worker from a function
func NewWorker(name string, queues []string, work WorkFunc) Worker {
	return &funcWorker{name: name, queues: queues, work: work}
}

func (w *funcWorker) Name() string     { return w.name }
func (w *funcWorker) Queues() []string { return w.queues }

func (w *funcWorker) Work(ctx context.Context, task Task) (Result, error) {
	return w.work(ctx, task)
}
