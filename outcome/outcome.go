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

package outcome

import (
	"errors"
	"fmt"
	"runtime"

	gerrors "github.com/tochemey/goworker/errors"
)

// Outcome is the result of a fallible operation: either a success carrying a
// value or a failure carrying an error, both tagged with a Status.
//
// The zero value is a failure with a nil error and Succeeded status; always
// build outcomes through Success, Failure and the helpers below.
type Outcome[O any] struct {
	value   O
	err     error
	status  Status
	success bool
}

// Success returns a successful Outcome with the Succeeded status.
func Success[O any](value O) Outcome[O] {
	return Outcome[O]{value: value, status: Succeeded, success: true}
}

// SuccessWith returns a successful Outcome tagged with the given status, for
// instance Pending.
func SuccessWith[O any](value O, status Status) Outcome[O] {
	return Outcome[O]{value: value, status: status, success: true}
}

// Failure returns a failed Outcome.
func Failure[O any](err error, status Status) Outcome[O] {
	return Outcome[O]{err: err, status: status}
}

// Limited returns the synthetic failure reported once a threshold is reached.
func Limited[O any]() Outcome[O] {
	return Failure[O](gerrors.ErrLimited, Denied)
}

// Skipped returns the failure reported when an operation is deliberately not run.
func Skipped[O any]() Outcome[O] {
	return Failure[O](gerrors.ErrIgnored, Ignored)
}

// Of bridges an error-returning function into an Outcome. A returned error
// becomes an Errored failure and a panic becomes an Unexpected failure
// carrying a PanicError.
func Of[O any](fn func() (O, error)) (out Outcome[O]) {
	defer func() {
		if r := recover(); r != nil {
			out = Failure[O](toPanicError(r), Unexpected)
		}
	}()

	value, err := fn()
	if err != nil {
		return Failure[O](err, Errored)
	}
	return Success(value)
}

// IsSuccess reports whether the outcome is a success
func (o Outcome[O]) IsSuccess() bool {
	return o.success
}

// IsFailure reports whether the outcome is a failure
func (o Outcome[O]) IsFailure() bool {
	return !o.success
}

// IsLimited reports whether the outcome is the synthetic limit failure.
func (o Outcome[O]) IsLimited() bool {
	return !o.success && errors.Is(o.err, gerrors.ErrLimited)
}

// Value returns the success value, the zero value on failure.
func (o Outcome[O]) Value() O {
	return o.value
}

// Err returns the failure error, nil on success.
func (o Outcome[O]) Err() error {
	return o.err
}

// Status returns the outcome classification.
func (o Outcome[O]) Status() Status {
	return o.status
}

// Get returns the value and error pair.
func (o Outcome[O]) Get() (O, error) {
	if o.success {
		return o.value, nil
	}
	if o.err == nil {
		return o.value, fmt.Errorf("%s outcome", o.status)
	}
	return o.value, o.err
}

// String returns a short human readable form of the outcome.
func (o Outcome[O]) String() string {
	if o.success {
		return fmt.Sprintf("Success(%v, %s)", o.value, o.status)
	}
	return fmt.Sprintf("Failure(%v, %s)", o.err, o.status)
}

// Map transforms the value of a successful outcome and keeps failures unchanged.
func Map[I, O any](in Outcome[I], fn func(I) O) Outcome[O] {
	if in.success {
		return SuccessWith(fn(in.value), in.status)
	}
	return Failure[O](in.err, in.status)
}

func toPanicError(r any) error {
	if err, ok := r.(error); ok {
		var pe *gerrors.PanicError
		if errors.As(err, &pe) {
			return pe
		}
		pc, fn, line, _ := runtime.Caller(3)
		return gerrors.NewPanicError(fmt.Errorf("%w at %s[%s:%d]", err, runtime.FuncForPC(pc).Name(), fn, line))
	}
	pc, fn, line, _ := runtime.Caller(3)
	return gerrors.NewPanicError(fmt.Errorf("%#v at %s[%s:%d]", r, runtime.FuncForPC(pc).Name(), fn, line))
}
