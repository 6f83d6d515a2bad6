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
	"fmt"
	"time"

	goset "github.com/deckarep/golang-set/v2"
	"github.com/flowchartsman/retry"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/tochemey/goworker/actor"
	gerrors "github.com/tochemey/goworker/errors"
	"github.com/tochemey/goworker/internal/validation"
	"github.com/tochemey/goworker/log"
)

// Job binds a set of workers to a set of queues.
//
// The job is itself a strict Loader actor: Dispatch enqueues one load
// request per queue, and each request reads a batch of items that are routed
// to one active worker subscribed to the queue. Every worker is driven by its
// own Runner.
type Job struct {
	*actor.Loader[Task]

	name     string
	settings *settings
	logger   log.Logger
	queues   map[string]Queue
	order    []string
	runners  []*Runner
	router   *router

	started  atomic.Bool
	stopped  atomic.Bool
	loop     *actor.Scope
	workers  *actor.Scope
	stopPoll chan struct{}
	pollDone chan struct{}

	registration metric.Registration
}

// New creates a Job. Worker names must be unique and every queue a worker
// subscribes to must be one of queues, unless it is Wildcard.
func New(name string, queues []Queue, workers []Worker, opts ...Option) (*Job, error) {
	if err := validate(name, queues, workers); err != nil {
		return nil, fmt.Errorf("invalid job %q: %w", name, err)
	}

	s := newSettings(opts...)
	j := &Job{
		name:     name,
		settings: s,
		logger:   s.logger.With("job", name),
		queues:   make(map[string]Queue, len(queues)),
		order:    make([]string, 0, len(queues)),
		runners:  make([]*Runner, 0, len(workers)),
		stopPoll: make(chan struct{}),
	}

	for _, queue := range queues {
		j.queues[queue.Name()] = queue
		j.order = append(j.order, queue.Name())
	}

	for _, worker := range workers {
		j.runners = append(j.runners, newRunner(worker, s, j))
	}
	j.router = newRouter(j.order, j.runners)

	j.Loader = actor.NewLoader[Task](
		actor.NewIdentity(name),
		actor.HandlerFunc[Task](j.deliver),
		actor.RequestFunc(j.fetch),
		actor.WithUnboundedMailbox(),
		actor.WithLogger(s.logger),
		actor.WithHooks(s.hooks),
	)
	return j, nil
}

func validate(name string, queues []Queue, workers []Worker) error {
	chain := validation.New(validation.AllErrors()).
		AddValidator(validation.NewEmptyStringValidator("name", name)).
		AddValidator(validation.ValidatorFunc(func() error {
			if len(queues) == 0 {
				return gerrors.ErrNoQueues
			}
			return nil
		})).
		AddValidator(validation.ValidatorFunc(func() error {
			if len(workers) == 0 {
				return gerrors.ErrNoWorkers
			}
			return nil
		}))

	names := goset.NewSet[string]()
	for _, queue := range queues {
		chain.AddValidator(validation.NewNameValidator("queue", queue.Name(), false))
		chain.AddAssertion(names.Add(queue.Name()), fmt.Sprintf("duplicate queue %q", queue.Name()))
	}

	workerNames := goset.NewSet[string]()
	for _, worker := range workers {
		worker := worker
		chain.AddValidator(validation.NewNameValidator("worker", worker.Name(), false))
		chain.AddValidator(validation.ValidatorFunc(func() error {
			if !workerNames.Add(worker.Name()) {
				return fmt.Errorf("%w: %s", gerrors.ErrDuplicateWorker, worker.Name())
			}
			return nil
		}))
		for _, queue := range worker.Queues() {
			queue := queue
			chain.AddValidator(validation.NewNameValidator("worker queue", queue, true))
			if queue != Wildcard && !names.Contains(queue) {
				chain.AddValidator(validation.ValidatorFunc(func() error {
					return fmt.Errorf("%w: worker %s subscribes to %s", gerrors.ErrUnknownQueue, worker.Name(), queue)
				}))
			}
		}
	}
	return chain.Validate()
}

// Name returns the job name
func (j *Job) Name() string {
	return j.name
}

// Queue returns the named queue
func (j *Job) Queue(name string) (Queue, bool) {
	queue, ok := j.queues[name]
	return queue, ok
}

// Runners returns the runners of the job, in worker declaration order.
func (j *Job) Runners() []*Runner {
	runners := make([]*Runner, len(j.runners))
	copy(runners, j.runners)
	return runners
}

// Runner returns the runner of the named worker
func (j *Job) Runner(name string) (*Runner, bool) {
	for _, runner := range j.runners {
		if runner.Name() == name {
			return runner, true
		}
	}
	return nil, false
}

// Candidates returns the names of the workers subscribed to queue
func (j *Job) Candidates(queue string) []string {
	candidates := j.router.candidates(queue)
	names := make([]string, len(candidates))
	for i, candidate := range candidates {
		names[i] = candidate.Name()
	}
	return names
}

// Start initializes the workers, launches every runner and the job itself
// and moves them all to Started. ctx only bounds the initialization: the
// actors keep running until Shutdown.
func (j *Job) Start(ctx context.Context) error {
	if !j.started.CompareAndSwap(false, true) {
		return gerrors.ErrJobAlreadyStarted
	}

	if err := j.initialize(ctx); err != nil {
		j.started.Store(false)
		return err
	}

	base := context.WithoutCancel(ctx)
	j.workers = actor.NewScope(base)
	j.loop = actor.NewScope(base)

	for _, runner := range j.runners {
		if err := runner.Launch(j.workers); err != nil {
			return err
		}
		runner.Force(ctx, actor.Start, "job started")
	}

	if err := j.Launch(j.loop); err != nil {
		return err
	}
	j.Force(ctx, actor.Start, "")

	if err := j.registerMetrics(); err != nil {
		j.logger.Warnf("failed to register metrics: %v", err)
	}

	if j.settings.pollInterval > 0 {
		j.pollDone = make(chan struct{})
		j.loop.Go(j.poll)
	}

	j.logger.Infof("job started with %d workers on %d queues", len(j.runners), len(j.order))
	return nil
}

func (j *Job) initialize(ctx context.Context) error {
	for _, runner := range j.runners {
		initializer, ok := runner.Worker().(Initializer)
		if !ok {
			continue
		}

		retrier := retry.NewRetrier(j.settings.initRetries, j.settings.initDelay, 10*j.settings.initDelay)
		if err := retrier.RunContext(ctx, initializer.Init); err != nil {
			return fmt.Errorf("failed to initialize worker %s: %w", runner.Name(), err)
		}
	}
	return nil
}

func (j *Job) registerMetrics() error {
	meter := j.settings.meter
	if meter == nil {
		meter = defaultMeter()
	}
	registration, err := registerMetrics(meter, j.name, j.runners)
	if err != nil {
		return err
	}
	j.registration = registration
	return nil
}

// Control sends action to the job and to every runner. Like any queued
// action it takes effect once each actor reaches it in its mailbox.
func (j *Job) Control(ctx context.Context, action actor.Action, note string) error {
	if !j.started.Load() {
		return gerrors.ErrJobNotStarted
	}

	err := j.SendAction(ctx, action, note)
	for _, runner := range j.runners {
		err = multierr.Append(err, runner.SendAction(ctx, action, note))
	}
	return err
}

// Dispatch enqueues one load request per queue, in queue declaration order.
// It returns Rejected, without enqueueing, when the job is neither Started
// nor Running.
func (j *Job) Dispatch(ctx context.Context) (actor.Receipt, error) {
	if !j.started.Load() {
		return actor.Rejected, gerrors.ErrJobNotStarted
	}

	for _, name := range j.order {
		receipt, err := j.Load(ctx, name)
		if err != nil || receipt == actor.Rejected {
			return receipt, err
		}
	}
	return actor.Accepted, nil
}

// Submit routes task through the job mailbox, bypassing its queue.
func (j *Job) Submit(ctx context.Context, task Task) error {
	if !j.started.Load() {
		return gerrors.ErrJobNotStarted
	}
	if _, ok := j.queues[task.Queue]; !ok {
		return fmt.Errorf("%w: %s", gerrors.ErrUnknownQueue, task.Queue)
	}

	var err error
	if j.Allow(func() { err = j.Send(ctx, task) }) == actor.Rejected {
		return gerrors.ErrRejected
	}
	return err
}

// Shutdown stops polling, lets the job and then every runner drain their
// mailboxes, and waits for all of them. It returns the fatal errors the
// actors reported, or ctx's error when ctx is done first, in which case the
// actors are canceled.
func (j *Job) Shutdown(ctx context.Context) error {
	if !j.started.Load() {
		return gerrors.ErrJobNotStarted
	}
	if !j.stopped.CompareAndSwap(false, true) {
		return nil
	}

	close(j.stopPoll)
	done := make(chan error, 1)
	go func() {
		if j.pollDone != nil {
			<-j.pollDone
		}

		j.Close()
		err := j.loop.Wait()
		for _, runner := range j.runners {
			runner.Close()
		}
		done <- multierr.Append(err, j.workers.Wait())
	}()

	defer j.unregisterMetrics()

	select {
	case err := <-done:
		j.logger.Info("job stopped")
		return err
	case <-ctx.Done():
		j.loop.Cancel()
		j.workers.Cancel()
		return ctx.Err()
	}
}

func (j *Job) unregisterMetrics() {
	if j.registration == nil {
		return
	}
	if err := j.registration.Unregister(); err != nil {
		j.logger.Warnf("failed to unregister metrics: %v", err)
	}
}

func (j *Job) poll(ctx context.Context) error {
	defer close(j.pollDone)

	ticker := time.NewTicker(j.settings.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.stopPoll:
			return nil
		case <-ticker.C:
			if _, err := j.Dispatch(ctx); err != nil {
				j.logger.Warnf("failed to dispatch: %v", err)
			}
		}
	}
}

// deliver routes a task to one runner. Undeliverable tasks are released to
// their queue.
func (j *Job) deliver(ctx context.Context, task Task) error {
	runner, err := j.router.route(task)
	if err != nil {
		j.logger.Warnf("undeliverable task %s: %v", task, err)
		j.release(ctx, task)
		return nil
	}

	if err := runner.Send(ctx, task); err != nil {
		j.logger.Warnf("failed to deliver task %s to %s: %v", task, runner.Name(), err)
		j.release(ctx, task)
	}
	return nil
}

// fetch serves a load request: it reads a batch from the queue and delivers
// every item. Queues without an active worker are not read.
func (j *Job) fetch(ctx context.Context, req actor.Request) error {
	queue, ok := j.queues[req.Reference]
	if !ok {
		j.logger.Warnf("load request %s for unknown queue %s", req.ID, req.Reference)
		return nil
	}

	if !j.router.hasActive(queue.Name()) {
		j.logger.Debugf("no active worker for queue %s", queue.Name())
		return nil
	}

	items, err := queue.NextBatch(ctx, j.settings.batchSize)
	if err != nil {
		j.logger.Errorf("failed to read queue %s: %v", queue.Name(), err)
		return nil
	}

	for _, item := range items {
		if err := j.deliver(ctx, NewTask(queue.Name(), item)); err != nil {
			return err
		}
	}
	return nil
}

// release hands an unprocessed task back to its queue when the queue
// supports it. Otherwise the queue is left to redeliver it.
func (j *Job) release(ctx context.Context, task Task) {
	queue, ok := j.queues[task.Queue]
	if !ok {
		return
	}
	releaser, ok := queue.(Releaser)
	if !ok {
		return
	}
	if err := releaser.Release(ctx, task.Item()); err != nil {
		j.logger.Warnf("failed to release task %s: %v", task, err)
	}
}

// complete acknowledges a processed task in its queue
func (j *Job) complete(ctx context.Context, task Task) error {
	queue, ok := j.queues[task.Queue]
	if !ok {
		return fmt.Errorf("%w: %s", gerrors.ErrUnknownQueue, task.Queue)
	}
	return queue.Complete(ctx, task.Item())
}
