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
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/tochemey/goworker/errors"
	"github.com/tochemey/goworker/log"
)

func TestMessageable(t *testing.T) {
	t.Run("With sequential processing", func(t *testing.T) {
		ctx := context.Background()
		handler := new(collector[int])
		actor := NewMessageable[int](NewIdentity("numbers"), handler, WithCapacity(4))

		scope := NewScope(ctx)
		require.NoError(t, actor.Launch(scope))
		assert.ErrorIs(t, actor.Launch(scope), gerrors.ErrAlreadyLaunched)

		for i := 0; i < 100; i++ {
			require.NoError(t, actor.Send(ctx, i))
		}

		actor.Close()
		require.NoError(t, scope.Wait())

		received := handler.received()
		require.Len(t, received, 100)
		for i, item := range received {
			assert.Equal(t, i, item)
		}
		assert.ErrorIs(t, actor.Send(ctx, 100), gerrors.ErrMailboxClosed)
	})
	t.Run("With Control messages dropped", func(t *testing.T) {
		ctx := context.Background()
		handler := new(collector[int])
		actor := NewMessageable[int](NewIdentity("numbers"), handler, WithLogger(log.DiscardLogger))

		require.NoError(t, actor.mailbox.Enqueue(ctx, NewControl[int](Stop, "ignored")))
		require.NoError(t, actor.Send(ctx, 1))

		count, err := actor.Pull(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, []int{1}, handler.received())
		actor.Close()
	})
	t.Run("With Pull Poll and Wipe", func(t *testing.T) {
		ctx := context.Background()
		handler := new(collector[int])

		var sources []TrackSource
		var payloads []int
		tracker := func(source TrackSource, msg Envelope) {
			sources = append(sources, source)
			payloads = append(payloads, msg.(Message[int]).Payload())
		}

		actor := NewMessageable[int](NewIdentity("numbers"), handler, WithTracker(tracker))
		for i := 0; i < 5; i++ {
			require.NoError(t, actor.Send(ctx, i))
		}

		count, err := actor.Pull(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
		assert.Equal(t, []int{0, 1, 2}, handler.received())

		ok, err := actor.Poll(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []int{0, 1, 2, 3}, handler.received())

		wiped, err := actor.Wipe()
		require.NoError(t, err)
		assert.Equal(t, 1, wiped)
		assert.Len(t, handler.received(), 4)
		assert.Zero(t, actor.Len())

		ok, err = actor.Poll(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.Equal(t, []TrackSource{TrackPull, TrackPull, TrackPull, TrackPoll, TrackWipe}, sources)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, payloads)
		actor.Close()
	})
	t.Run("With the consumer token held by the loop", func(t *testing.T) {
		ctx := context.Background()
		entered := make(chan struct{})
		release := make(chan struct{})
		handler := HandlerFunc[int](func(context.Context, int) error {
			close(entered)
			<-release
			return nil
		})

		actor := NewMessageable[int](NewIdentity("busy"), handler)
		scope := NewScope(ctx)
		require.NoError(t, actor.Launch(scope))
		require.NoError(t, actor.Send(ctx, 1))
		<-entered

		_, err := actor.Pull(ctx, 1)
		assert.ErrorIs(t, err, gerrors.ErrConsumerBusy)
		_, err = actor.Poll(ctx)
		assert.ErrorIs(t, err, gerrors.ErrConsumerBusy)
		_, err = actor.Wipe()
		assert.ErrorIs(t, err, gerrors.ErrConsumerBusy)

		close(release)
		actor.Close()
		require.NoError(t, scope.Wait())
	})
	t.Run("With Launch during an in-flight Pull", func(t *testing.T) {
		ctx := context.Background()
		entered := make(chan struct{})
		release := make(chan struct{})
		handler := new(collector[int])
		blocking := HandlerFunc[int](func(ctx context.Context, item int) error {
			if item == 0 {
				close(entered)
				<-release
			}
			return handler.Handle(ctx, item)
		})

		actor := NewMessageable[int](NewIdentity("pulled"), blocking)
		require.NoError(t, actor.Send(ctx, 0))

		pulled := make(chan error, 1)
		go func() {
			_, err := actor.Pull(ctx, 1)
			pulled <- err
		}()
		<-entered

		scope := NewScope(ctx)
		require.NoError(t, actor.Launch(scope))
		close(release)
		require.NoError(t, <-pulled)

		require.NoError(t, actor.Send(ctx, 1))
		require.Eventually(t, func() bool { return len(handler.received()) == 2 }, time.Second, 5*time.Millisecond)

		actor.Close()
		require.NoError(t, scope.Wait())
		assert.Equal(t, []int{0, 1}, handler.received())
	})
	t.Run("With an undefined handler", func(t *testing.T) {
		ctx := context.Background()
		actor := NewMessageable[int](NewIdentity("empty"), nil)
		require.NoError(t, actor.Send(ctx, 1))

		scope := NewScope(ctx)
		assert.ErrorIs(t, actor.Launch(scope), gerrors.ErrUndefinedHandler)
		_, err := actor.Pull(ctx, 1)
		assert.ErrorIs(t, err, gerrors.ErrUndefinedHandler)

		wiped, err := actor.Wipe()
		require.NoError(t, err)
		assert.Equal(t, 1, wiped)

		loader := NewLoader[int](NewIdentity("loader"), new(collector[int]), nil)
		assert.ErrorIs(t, loader.Launch(scope), gerrors.ErrUndefinedHandler)

		actor.Close()
		loader.Close()
		require.NoError(t, scope.Wait())
	})
	t.Run("With scope canceled", func(t *testing.T) {
		actor := NewMessageable[int](NewIdentity("idle"), new(collector[int]), WithUnboundedMailbox())
		scope := NewScope(context.Background())
		require.NoError(t, actor.Launch(scope))

		scope.Cancel()
		require.NoError(t, scope.Wait())
		actor.Close()
	})
}

func TestPausable(t *testing.T) {
	t.Run("With hooks fired once per status change", func(t *testing.T) {
		ctx := context.Background()
		hooks := new(recordingHooks)
		actor := NewPausable[int](NewIdentity("worker"), new(collector[int]), WithHooks(hooks))
		assert.Equal(t, InActive, actor.Status())

		feedback := actor.Force(ctx, Start, "")
		assert.True(t, feedback.Changed)
		assert.False(t, actor.Force(ctx, Start, "").Changed)
		assert.False(t, actor.Force(ctx, Check, "").Changed)

		actor.Force(ctx, Pause, "pause")
		actor.Force(ctx, Resume, "resume after pause")
		assert.Equal(t, Running, actor.Status())
		actor.Force(ctx, Stop, "stop")
		actor.Force(ctx, Resume, "resume after stop")
		actor.Force(ctx, Kill, "kill")
		assert.Equal(t, Killed, actor.Status())
		assert.False(t, actor.Force(ctx, Kill, "again").Changed)

		feedback = actor.Complete(ctx, "done")
		assert.True(t, feedback.Changed)
		assert.Equal(t, Completed, actor.Status())

		assert.Equal(t, []string{"started", "paused", "stopped", "resumed", "killed", "completed"}, hooks.names())
		actor.Close()
	})
	t.Run("With hooks in the order of status changes", func(t *testing.T) {
		ctx := context.Background()
		hooks := new(statusHooks)
		actor := NewPausable[int](NewIdentity("worker"), new(collector[int]), WithHooks(hooks), WithUnboundedMailbox())
		hooks.status = actor.Status

		scope := NewScope(ctx)
		require.NoError(t, actor.Launch(scope))

		actions := []Action{Start, Pause, Stop, Resume}
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(offset int) {
				defer wg.Done()
				for j := 0; j < 200; j++ {
					action := actions[(j+offset)%len(actions)]
					if j%2 == 0 {
						actor.Force(ctx, action, "")
						continue
					}
					_ = actor.SendAction(ctx, action, "")
				}
			}(i)
		}
		wg.Wait()

		actor.Close()
		require.NoError(t, scope.Wait())
		assert.NotZero(t, hooks.calls.Load())
		assert.Zero(t, hooks.mismatches.Load())
	})
	t.Run("With N items processed before Stop", func(t *testing.T) {
		ctx := context.Background()
		hooks := new(recordingHooks)
		handler := new(collector[int])
		actor := NewPausable[int](NewIdentity("worker"), handler, WithHooks(hooks), WithCapacity(8))

		scope := NewScope(ctx)
		require.NoError(t, actor.Launch(scope))

		require.NoError(t, actor.SendAction(ctx, Start, ""))
		for i := 0; i < 50; i++ {
			require.NoError(t, actor.Send(ctx, i))
		}
		require.NoError(t, actor.SendAction(ctx, Stop, "enough"))

		require.Eventually(t, func() bool { return actor.Status() == Stopped }, time.Second, 5*time.Millisecond)
		assert.Len(t, handler.received(), 50)
		assert.Equal(t, []string{"started", "stopped"}, hooks.names())

		actor.Close()
		require.NoError(t, scope.Wait())
	})
	t.Run("With status of the last processed action", func(t *testing.T) {
		ctx := context.Background()
		handler := new(collector[int])
		actor := NewPausable[int](NewIdentity("worker"), handler)

		scope := NewScope(ctx)
		require.NoError(t, actor.Launch(scope))

		for _, action := range []Action{Start, Pause, Resume, Stop, Delay, Check, Resume} {
			require.NoError(t, actor.SendAction(ctx, action, ""))
		}
		require.NoError(t, actor.Send(ctx, 1))

		require.Eventually(t, func() bool { return len(handler.received()) == 1 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, Running, actor.Status())

		actor.Close()
		require.NoError(t, scope.Wait())
	})
	t.Run("With strict mode", func(t *testing.T) {
		ctx := context.Background()
		lenient := NewPausable[int](NewIdentity("lenient"), new(collector[int]))
		assert.False(t, lenient.IsStrict())
		assert.Equal(t, Accepted, lenient.Allow(func() {}))

		strict := NewPausable[int](NewIdentity("strict"), new(collector[int]), WithStrictMode(true))
		assert.True(t, strict.IsStrict())

		ran := 0
		op := func() { ran++ }
		assert.Equal(t, Rejected, strict.Allow(op))
		strict.Force(ctx, Start, "")
		assert.Equal(t, Accepted, strict.Allow(op))
		strict.Force(ctx, Pause, "")
		assert.Equal(t, Rejected, strict.Allow(op))
		strict.Force(ctx, Resume, "")
		assert.Equal(t, Accepted, strict.Allow(op))
		strict.Force(ctx, Stop, "")
		assert.Equal(t, Rejected, strict.Allow(op))
		assert.Equal(t, 2, ran)

		lenient.Close()
		strict.Close()
	})
	t.Run("With a handler error", func(t *testing.T) {
		ctx := context.Background()
		boom := errors.New("boom")
		hooks := new(recordingHooks)
		handler := HandlerFunc[int](func(context.Context, int) error { return boom })
		actor := NewPausable[int](NewIdentity("fragile"), handler, WithHooks(hooks))

		scope := NewScope(ctx)
		require.NoError(t, actor.Launch(scope))
		require.NoError(t, actor.SendAction(ctx, Start, ""))
		require.NoError(t, actor.Send(ctx, 1))

		err := scope.Wait()
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, Failed, actor.Status())
		assert.Equal(t, []string{"started", "failed"}, hooks.names())

		hooks.mu.Lock()
		assert.Equal(t, "boom", hooks.events[1].note)
		hooks.mu.Unlock()
		actor.Close()
	})
	t.Run("With a handler panic", func(t *testing.T) {
		ctx := context.Background()
		handler := HandlerFunc[int](func(context.Context, int) error { panic("kaboom") })
		actor := NewPausable[int](NewIdentity("fragile"), handler)

		scope := NewScope(ctx)
		require.NoError(t, actor.Launch(scope))
		require.NoError(t, actor.Send(ctx, 1))

		err := scope.Wait()
		var panicErr *gerrors.PanicError
		require.ErrorAs(t, err, &panicErr)
		assert.Contains(t, err.Error(), "kaboom")
		assert.Equal(t, Failed, actor.Status())
		actor.Close()
	})
	t.Run("With a failed actor not affecting its siblings", func(t *testing.T) {
		ctx := context.Background()
		boom := errors.New("boom")
		fragile := NewPausable[int](NewIdentity("fragile"), HandlerFunc[int](func(context.Context, int) error { return boom }))
		handler := new(collector[int])
		sturdy := NewPausable[int](NewIdentity("sturdy"), handler)

		scope := NewScope(ctx)
		require.NoError(t, fragile.Launch(scope))
		require.NoError(t, sturdy.Launch(scope))

		require.NoError(t, fragile.Send(ctx, 1))
		require.Eventually(t, func() bool { return fragile.Status() == Failed }, time.Second, 5*time.Millisecond)

		require.NoError(t, sturdy.Send(ctx, 2))
		require.Eventually(t, func() bool { return len(handler.received()) == 1 }, time.Second, 5*time.Millisecond)

		fragile.Close()
		sturdy.Close()
		assert.ErrorIs(t, scope.Wait(), boom)
	})
}

func TestLoader(t *testing.T) {
	t.Run("With strict Load", func(t *testing.T) {
		ctx := context.Background()
		requester := RequestFunc(func(context.Context, Request) error { return nil })
		loader := NewLoader[int](NewIdentity("loader"), new(collector[int]), requester)
		assert.True(t, loader.IsStrict())

		receipt, err := loader.Load(ctx, "orders")
		require.NoError(t, err)
		assert.Equal(t, Rejected, receipt)

		loader.Force(ctx, Start, "")
		loader.Force(ctx, Pause, "")
		receipt, err = loader.Load(ctx, "orders")
		require.NoError(t, err)
		assert.Equal(t, Rejected, receipt)
		assert.Zero(t, loader.Len())

		loader.Force(ctx, Resume, "")
		receipt, err = loader.Load(ctx, "orders")
		require.NoError(t, err)
		assert.Equal(t, Accepted, receipt)
		assert.Equal(t, 1, loader.Len())

		loader.Close()
	})
	t.Run("With requests gated when processed", func(t *testing.T) {
		ctx := context.Background()
		var references []string
		requester := RequestFunc(func(_ context.Context, req Request) error {
			assert.NotEmpty(t, req.ID)
			references = append(references, req.Reference)
			return nil
		})
		loader := NewLoader[int](NewIdentity("loader"), new(collector[int]), requester)

		loader.Force(ctx, Start, "")
		receipt, err := loader.Load(ctx, "first")
		require.NoError(t, err)
		require.Equal(t, Accepted, receipt)
		loader.Force(ctx, Pause, "")

		ok, err := loader.Poll(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, references)

		loader.Force(ctx, Resume, "")
		_, err = loader.Load(ctx, "second")
		require.NoError(t, err)
		ok, err = loader.Poll(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"second"}, references)

		loader.Close()
	})
	t.Run("With Content and Control handled as a Pausable", func(t *testing.T) {
		ctx := context.Background()
		handler := new(collector[string])
		requester := RequestFunc(func(context.Context, Request) error { return nil })
		loader := NewLoader[string](NewIdentity("loader"), handler, requester, WithUnboundedMailbox())

		require.NoError(t, loader.SendAction(ctx, Start, ""))
		require.NoError(t, loader.Send(ctx, "hello"))

		count, err := loader.Pull(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, Started, loader.Status())
		assert.Equal(t, []string{"hello"}, handler.received())
		loader.Close()
	})
	t.Run("With a requester error", func(t *testing.T) {
		ctx := context.Background()
		boom := errors.New("source unavailable")
		requester := RequestFunc(func(context.Context, Request) error { return boom })
		loader := NewLoader[int](NewIdentity("loader"), new(collector[int]), requester)

		scope := NewScope(ctx)
		require.NoError(t, loader.Launch(scope))
		loader.Force(ctx, Start, "")
		_, err := loader.Load(ctx, "orders")
		require.NoError(t, err)

		assert.ErrorIs(t, scope.Wait(), boom)
		assert.Equal(t, Failed, loader.Status())
		loader.Close()
	})
}

func TestIdentity(t *testing.T) {
	identity := NewIdentity("worker")
	assert.Equal(t, "worker", identity.Name)
	assert.NotEmpty(t, identity.ID)
	assert.Equal(t, "worker/"+identity.ID, identity.String())
	assert.NotEqual(t, identity.ID, NewIdentity("worker").ID)
}
