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

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrLimited is the synthetic failure produced when a Limit, Calls or Ratio
	// threshold has been reached.
	ErrLimited = errors.New("limit reached")

	// ErrIgnored is the failure produced when an operation is skipped, for instance
	// by a Periodic policy still inside its interval.
	ErrIgnored = errors.New("operation ignored")

	// ErrRejected indicates that a strict-mode operation was refused because the
	// actor is neither started nor running.
	ErrRejected = errors.New("operation rejected")

	// ErrMailboxClosed is returned when enqueueing into a closed mailbox.
	ErrMailboxClosed = errors.New("mailbox is closed")

	// ErrAlreadyLaunched is returned when the processing loop of an actor is launched twice.
	ErrAlreadyLaunched = errors.New("actor loop already launched")

	// ErrConsumerBusy is returned when draining a mailbox that another consumer currently owns.
	ErrConsumerBusy = errors.New("mailbox already has an active consumer")

	// ErrUndefinedHandler is returned when launching or pulling from an actor created without a handler.
	ErrUndefinedHandler = errors.New("message handler is not defined")

	// ErrJobNotStarted is returned when using a job before Start.
	ErrJobNotStarted = errors.New("job has not started")

	// ErrJobAlreadyStarted is returned when Start is called twice.
	ErrJobAlreadyStarted = errors.New("job already started")

	// ErrNoWorkers is returned when a job is defined without workers.
	ErrNoWorkers = errors.New("job has no workers")

	// ErrNoQueues is returned when a job is defined without queues.
	ErrNoQueues = errors.New("job has no queues")

	// ErrUnknownQueue is returned when a task references a queue the job does not own.
	ErrUnknownQueue = errors.New("queue is not defined")

	// ErrNoRoute is returned when no active worker can take tasks from a queue.
	ErrNoRoute = errors.New("no active worker for queue")

	// ErrQueueDisposed is returned when reading from or writing to a disposed queue.
	ErrQueueDisposed = errors.New("queue is disposed")

	// ErrDuplicateWorker is returned when two workers of a job share the same name.
	ErrDuplicateWorker = errors.New("duplicate worker name")
)

// PanicError defines the panic error
// wrapping the underlying error
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}
