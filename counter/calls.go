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

package counter

import (
	"time"

	"go.uber.org/atomic"
)

// Calls tallies call attempts regardless of what they produced, alongside the
// passed and failed split. Safe for concurrent use.
type Calls struct {
	attempted atomic.Int64
	passed    atomic.Int64
	failed    atomic.Int64
	lastError atomic.Error
	lastTime  atomic.Time
}

// NewCalls creates an instance of Calls
func NewCalls() *Calls {
	return &Calls{}
}

// Inc records a new attempt and returns the total attempts.
func (c *Calls) Inc() int64 {
	c.lastTime.Store(time.Now())
	return c.attempted.Inc()
}

// Dec cancels an attempt and returns the total attempts.
func (c *Calls) Dec() int64 {
	return c.attempted.Dec()
}

// Attempts returns the total number of attempts
func (c *Calls) Attempts() int64 {
	return c.attempted.Load()
}

// Pass records a successful attempt.
func (c *Calls) Pass() int64 {
	return c.passed.Inc()
}

// Fail records a failed attempt and keeps err as the last error.
func (c *Calls) Fail(err error) int64 {
	if err != nil {
		c.lastError.Store(err)
	}
	return c.failed.Inc()
}

// Passed returns the number of successful attempts
func (c *Calls) Passed() int64 {
	return c.passed.Load()
}

// Failed returns the number of failed attempts
func (c *Calls) Failed() int64 {
	return c.failed.Load()
}

// LastError returns the last recorded failure
func (c *Calls) LastError() error {
	return c.lastError.Load()
}

// LastTime returns the time of the last attempt
func (c *Calls) LastTime() time.Time {
	return c.lastTime.Load()
}

// Reset zeroes every tally.
func (c *Calls) Reset() {
	c.attempted.Store(0)
	c.passed.Store(0)
	c.failed.Store(0)
	c.lastError.Store(nil)
	c.lastTime.Store(time.Time{})
}
