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

import "github.com/tochemey/goworker/log"

// DefaultCapacity is the capacity of the bounded mailbox created when no
// mailbox option is given.
const DefaultCapacity = 256

// TrackSource tags the drain utility that removed a message.
type TrackSource int

const (
	TrackPull TrackSource = iota
	TrackPoll
	TrackWipe
)

// String returns the source name
func (s TrackSource) String() string {
	switch s {
	case TrackPull:
		return "pull"
	case TrackPoll:
		return "poll"
	case TrackWipe:
		return "wipe"
	default:
		return "unknown"
	}
}

// Tracker observes messages removed by Pull, Poll and Wipe.
type Tracker func(source TrackSource, msg Envelope)

type settings struct {
	capacity  int
	unbounded bool
	logger    log.Logger
	hooks     Hooks
	strict    bool
	tracker   Tracker
}

func newSettings(strict bool, opts ...Option) *settings {
	s := &settings{
		capacity: DefaultCapacity,
		logger:   log.DiscardLogger,
		hooks:    NoHooks{},
		strict:   strict,
		tracker:  func(TrackSource, Envelope) {},
	}
	for _, opt := range opts {
		opt.Apply(s)
	}
	return s
}

// Option is the interface that applies an actor option.
type Option interface {
	// Apply sets the Option value of the actor settings.
	Apply(s *settings)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(s *settings)

// Apply applies the option
func (f OptionFunc) Apply(s *settings) {
	f(s)
}

// WithCapacity sets the capacity of the bounded mailbox
func WithCapacity(capacity int) Option {
	return OptionFunc(func(s *settings) {
		s.capacity = capacity
		s.unbounded = false
	})
}

// WithUnboundedMailbox makes the actor use an UnboundedMailbox
func WithUnboundedMailbox() Option {
	return OptionFunc(func(s *settings) {
		s.unbounded = true
	})
}

// WithLogger sets the actor logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	})
}

// WithHooks sets the lifecycle hooks
func WithHooks(hooks Hooks) Option {
	return OptionFunc(func(s *settings) {
		if hooks != nil {
			s.hooks = hooks
		}
	})
}

// WithStrictMode enables or disables strict-mode gating
func WithStrictMode(strict bool) Option {
	return OptionFunc(func(s *settings) {
		s.strict = strict
	})
}

// WithTracker sets the callback observing drained messages
func WithTracker(tracker Tracker) Option {
	return OptionFunc(func(s *settings) {
		if tracker != nil {
			s.tracker = tracker
		}
	})
}
