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
	goset "github.com/deckarep/golang-set/v2"
	"github.com/zeebo/xxh3"
	"go.uber.org/atomic"

	gerrors "github.com/tochemey/goworker/errors"
)

// router maps every queue of a job to its candidate runners. The table is
// built once; only the set of active candidates is evaluated per task.
type router struct {
	routes  map[string][]*Runner
	cursors map[string]*atomic.Uint64
}

func newRouter(queues []string, runners []*Runner) *router {
	subscriptions := make([]goset.Set[string], len(runners))
	for i, runner := range runners {
		subscriptions[i] = goset.NewSet[string](runner.Worker().Queues()...)
	}

	r := &router{
		routes:  make(map[string][]*Runner, len(queues)),
		cursors: make(map[string]*atomic.Uint64, len(queues)),
	}
	for _, queue := range queues {
		candidates := make([]*Runner, 0, len(runners))
		for i, runner := range runners {
			if subscriptions[i].Contains(queue) || subscriptions[i].Contains(Wildcard) {
				candidates = append(candidates, runner)
			}
		}
		r.routes[queue] = candidates
		r.cursors[queue] = atomic.NewUint64(0)
	}
	return r
}

// candidates returns every runner subscribed to queue, in worker
// declaration order.
func (r *router) candidates(queue string) []*Runner {
	return r.routes[queue]
}

// hasActive reports whether a candidate of queue is active
func (r *router) hasActive(queue string) bool {
	for _, candidate := range r.routes[queue] {
		if candidate.Status().IsActive() {
			return true
		}
	}
	return false
}

// route picks the runner that receives task among the active candidates of
// its queue. Tasks with a correlation ID stick to one runner; others are
// spread round-robin.
func (r *router) route(task Task) (*Runner, error) {
	candidates, ok := r.routes[task.Queue]
	if !ok {
		return nil, gerrors.ErrUnknownQueue
	}

	active := make([]*Runner, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Status().IsActive() {
			active = append(active, candidate)
		}
	}

	switch len(active) {
	case 0:
		return nil, gerrors.ErrNoRoute
	case 1:
		return active[0], nil
	}

	if task.CorrelationID != "" {
		return active[xxh3.HashString(task.CorrelationID)%uint64(len(active))], nil
	}
	next := r.cursors[task.Queue].Inc() - 1
	return active[next%uint64(len(active))], nil
}
