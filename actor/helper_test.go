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

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/atomic"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type hookEvent struct {
	name string
	note string
}

// recordingHooks records every lifecycle hook call
type recordingHooks struct {
	mu     sync.Mutex
	events []hookEvent
}

func (h *recordingHooks) record(name, note string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, hookEvent{name: name, note: note})
}

func (h *recordingHooks) names() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, 0, len(h.events))
	for _, event := range h.events {
		names = append(names, event.name)
	}
	return names
}

func (h *recordingHooks) Started(context.Context)                  { h.record("started", "") }
func (h *recordingHooks) Paused(_ context.Context, note string)    { h.record("paused", note) }
func (h *recordingHooks) Resumed(_ context.Context, note string)   { h.record("resumed", note) }
func (h *recordingHooks) Stopped(_ context.Context, note string)   { h.record("stopped", note) }
func (h *recordingHooks) Completed(_ context.Context, note string) { h.record("completed", note) }
func (h *recordingHooks) Failed(_ context.Context, note string)    { h.record("failed", note) }
func (h *recordingHooks) Killed(_ context.Context, note string)    { h.record("killed", note) }

// statusHooks counts the hook calls that do not match the current status
type statusHooks struct {
	status     func() Status
	calls      atomic.Int64
	mismatches atomic.Int64
}

func (h *statusHooks) check(expected Status) {
	h.calls.Inc()
	if h.status() != expected {
		h.mismatches.Inc()
	}
}

func (h *statusHooks) Started(context.Context)           { h.check(Started) }
func (h *statusHooks) Paused(context.Context, string)    { h.check(Paused) }
func (h *statusHooks) Resumed(context.Context, string)   { h.check(Running) }
func (h *statusHooks) Stopped(context.Context, string)   { h.check(Stopped) }
func (h *statusHooks) Completed(context.Context, string) { h.check(Completed) }
func (h *statusHooks) Failed(context.Context, string)    { h.check(Failed) }
func (h *statusHooks) Killed(context.Context, string)    { h.check(Killed) }

// collector is a handler keeping every payload it receives
type collector[T any] struct {
	mu    sync.Mutex
	items []T
}

func (c *collector[T]) Handle(_ context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	return nil
}

func (c *collector[T]) received() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}
