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

package config

import (
	"fmt"

	"github.com/tochemey/goworker/counter"
	"github.com/tochemey/goworker/job"
	"github.com/tochemey/goworker/policy"
)

// PolicyFactory returns the factory building the configured policies of a
// worker, from outermost to innermost: Periodic, Limit, Calls, Ratio, Retry.
// Limit, Calls and Ratio read the worker counters, so a task retried by Retry
// counts once.
func (c *Job) PolicyFactory() job.PolicyFactory {
	settings := c.Policies
	return func(counters *counter.Counters, calls *counter.Calls) []policy.Policy[job.Task, job.Result] {
		var policies []policy.Policy[job.Task, job.Result]
		if settings.Period > 0 {
			policies = append(policies, policy.NewPeriodic[job.Task, job.Result](settings.Period))
		}
		if settings.Limit > 0 {
			policies = append(policies, policy.NewLimit[job.Task, job.Result](settings.Limit, counters.Processed))
		}
		if settings.Calls > 0 {
			policies = append(policies, policy.NewCalls[job.Task, job.Result](settings.Calls, calls.Attempts))
		}
		if ratio := settings.Ratio; ratio != nil {
			// validated beforehand
			status, _ := parseStatus(ratio.Status)
			policies = append(policies, policy.NewRatio[job.Task, job.Result](ratio.Limit, status, counters))
		}
		if retry := settings.Retry; retry != nil && retry.Retries > 0 {
			policies = append(policies, policy.NewRetry[job.Task, job.Result](retry.Retries, retry.Delay))
		}
		return policies
	}
}

// Options returns the job options matching the description
func (c *Job) Options() []job.Option {
	return []job.Option{
		job.WithLogger(c.Logger()),
		job.WithBatchSize(c.BatchSize),
		job.WithPollInterval(c.PollInterval),
		job.WithWorkerCapacity(c.WorkerCapacity),
		job.WithInitRetries(c.Init.Retries, c.Init.Delay),
		job.WithPolicies(c.PolicyFactory()),
	}
}

// Build creates the described job. works provides the operation of every
// described worker. A described queue missing from queues is created in
// memory. opts are applied after the described options.
func (c *Job) Build(works map[string]job.WorkFunc, queues map[string]job.Queue, opts ...job.Option) (*job.Job, error) {
	jobQueues := make([]job.Queue, 0, len(c.Queues))
	for _, name := range c.Queues {
		queue, ok := queues[name]
		if !ok {
			queue = job.NewMemoryQueue(name)
		}
		jobQueues = append(jobQueues, queue)
	}

	workers := make([]job.Worker, 0, len(c.Workers))
	for _, worker := range c.Workers {
		work, ok := works[worker.Name]
		if !ok {
			return nil, fmt.Errorf("no operation for worker %q", worker.Name)
		}
		workers = append(workers, job.NewWorker(worker.Name, worker.Queues, work))
	}

	return job.New(c.Name, jobQueues, workers, append(c.Options(), opts...)...)
}
