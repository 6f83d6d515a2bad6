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
	"time"

	"go.uber.org/atomic"

	"github.com/tochemey/goworker/actor"
	"github.com/tochemey/goworker/counter"
	"github.com/tochemey/goworker/log"
	"github.com/tochemey/goworker/outcome"
	"github.com/tochemey/goworker/policy"
)

// Runner drives one Worker: a strict Pausable actor whose handler runs the
// worker operation wrapped in the job policies and records every outcome in
// the runner counters before the next task.
type Runner struct {
	*actor.Pausable[Task]

	worker    Worker
	counters  *counter.Counters
	calls     *counter.Calls
	operation policy.Operation[Task, Result]
	acks      acknowledger
	last      atomic.Pointer[Result]
	logger    log.Logger
}

// acknowledger settles a task with the queue it was read from
type acknowledger interface {
	complete(ctx context.Context, task Task) error
	release(ctx context.Context, task Task)
}

func newRunner(worker Worker, s *settings, acks acknowledger) *Runner {
	r := &Runner{
		worker:   worker,
		counters: counter.NewCounters(),
		calls:    counter.NewCalls(),
		acks:     acks,
	}

	var terminal policy.Operation[Task, Result] = func(ctx context.Context, task Task) outcome.Outcome[Result] {
		return outcome.Of(func() (Result, error) {
			return worker.Work(ctx, task)
		})
	}

	var policies []policy.Policy[Task, Result]
	if s.policies != nil {
		policies = s.policies(r.counters, r.calls)
	}
	r.operation = policy.Chain(policies, terminal)

	r.Pausable = actor.NewPausable[Task](
		actor.NewIdentity(worker.Name()),
		actor.HandlerFunc[Task](r.handle),
		actor.WithStrictMode(true),
		actor.WithCapacity(s.capacity),
		actor.WithLogger(s.logger),
		actor.WithHooks(&logHooks{logger: s.logger.With("worker", worker.Name())}),
	)
	r.logger = r.Logger()
	return r
}

// Name returns the worker name
func (r *Runner) Name() string {
	return r.worker.Name()
}

// Worker returns the driven worker
func (r *Runner) Worker() Worker {
	return r.worker
}

// Counters returns the outcome tallies of the worker
func (r *Runner) Counters() *counter.Counters {
	return r.counters
}

// Calls returns the call tallies of the worker
func (r *Runner) Calls() *counter.Calls {
	return r.calls
}

// LastResult returns the last result the worker produced, false when it did
// not succeed yet.
func (r *Runner) LastResult() (Result, bool) {
	if last := r.last.Load(); last != nil {
		return *last, true
	}
	return Result{}, false
}

// Stats returns the classified tallies of the worker
func (r *Runner) Stats() Stats {
	snapshot := r.counters.Snapshot()
	stats := Stats{
		Processed: snapshot.Processed,
		LastError: snapshot.LastError,
		LastTime:  snapshot.LastTime,
	}
	for _, status := range outcome.Statuses {
		switch Classify(status) {
		case Succeeded:
			stats.Succeeded += snapshot.Count(status)
		case Filtered:
			stats.Filtered += snapshot.Count(status)
		default:
			stats.Errored += snapshot.Count(status)
		}
	}
	return stats
}

// handle never fails: worker errors and panics are turned into outcomes by
// the operation.
func (r *Runner) handle(ctx context.Context, task Task) error {
	var out outcome.Outcome[Result]
	if r.Allow(func() { out = r.operation(ctx, task) }) == actor.Rejected {
		r.logger.Warnf("skipped task %s while %s", task, r.Status())
		r.acks.release(ctx, task)
		return nil
	}

	r.record(out)

	if out.IsFailure() {
		if Classify(out.Status()) == Errored {
			r.logger.Errorf("task %s failed: %v", task, out.Err())
		} else {
			r.logger.Debugf("task %s filtered: %v", task, out.Err())
		}
		return nil
	}

	result := out.Value()
	r.last.Store(&result)

	if err := r.acks.complete(ctx, task); err != nil {
		r.logger.Warnf("failed to complete task %s: %v", task, err)
	}

	if result.IsDone() {
		r.Complete(ctx, "worker is done")
	}
	return nil
}

func (r *Runner) record(out outcome.Outcome[Result]) {
	counter.Track(r.counters, out)
	r.calls.Inc()
	if out.IsSuccess() {
		r.calls.Pass()
		return
	}
	r.calls.Fail(out.Err())
}

// Stats is the classified view of a worker counters
type Stats struct {
	Processed int64
	Succeeded int64
	Filtered  int64
	Errored   int64
	LastError error
	LastTime  time.Time
}

// logHooks logs the lifecycle of a runner
type logHooks struct {
	actor.NoHooks
	logger log.Logger
}

func (h *logHooks) Started(context.Context) {
	h.logger.Info("worker started")
}

func (h *logHooks) Stopped(_ context.Context, note string) {
	h.logger.Infof("worker stopped: %s", note)
}

func (h *logHooks) Completed(_ context.Context, note string) {
	h.logger.Infof("worker completed: %s", note)
}

func (h *logHooks) Killed(_ context.Context, note string) {
	h.logger.Warnf("worker killed: %s", note)
}
