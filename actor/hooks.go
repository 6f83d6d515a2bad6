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

import "context"

// Hooks receives lifecycle notifications once per status change.
//
// Resumed is only called when the actor moves to Running from Stopped; a
// resume after a pause fires no hook.
// Hooks run on the goroutine that applied the transition: the actor loop for
// queued actions, the caller for forced ones.
// Hook calls follow the order in which the statuses were stored. A hook must
// not Force a transition on its own actor.
type Hooks interface {
	Started(ctx context.Context)
	Paused(ctx context.Context, note string)
	Resumed(ctx context.Context, note string)
	Stopped(ctx context.Context, note string)
	Completed(ctx context.Context, note string)
	Failed(ctx context.Context, note string)
	Killed(ctx context.Context, note string)
}

// NoHooks implements Hooks with no-ops. Embed it to override a subset.
type NoHooks struct{}

// enforce compilation error
var _ Hooks = NoHooks{}

func (NoHooks) Started(context.Context)           {}
func (NoHooks) Paused(context.Context, string)    {}
func (NoHooks) Resumed(context.Context, string)   {}
func (NoHooks) Stopped(context.Context, string)   {}
func (NoHooks) Completed(context.Context, string) {}
func (NoHooks) Failed(context.Context, string)    {}
func (NoHooks) Killed(context.Context, string)    {}

func fireHooks(ctx context.Context, hooks Hooks, prev, next Status, note string) {
	switch next {
	case Started:
		hooks.Started(ctx)
	case Paused:
		hooks.Paused(ctx, note)
	case Running:
		if prev == Stopped {
			hooks.Resumed(ctx, note)
		}
	case Stopped:
		hooks.Stopped(ctx, note)
	case Completed:
		hooks.Completed(ctx, note)
	case Failed:
		hooks.Failed(ctx, note)
	case Killed:
		hooks.Killed(ctx, note)
	}
}
