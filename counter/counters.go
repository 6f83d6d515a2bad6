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

	"github.com/tochemey/goworker/outcome"
)

// Counters holds lock-free tallies of processed operations, one bucket per
// outcome.Status, plus the last error and the time of the last record.
//
// Counters are owned by the caller: policies read them and callers write them
// once an Outcome is known. All methods are safe for concurrent use; the
// last-value fields follow last-write-wins semantics.
type Counters struct {
	processed atomic.Int64
	buckets   [outcome.NumStatuses]atomic.Int64
	lastError atomic.Error
	lastTime  atomic.Time
}

// NewCounters creates an instance of Counters
func NewCounters() *Counters {
	return &Counters{}
}

// Processed returns the number of processed operations
func (c *Counters) Processed() int64 {
	return c.processed.Load()
}

// IncProcessed increments the processed tally and returns the new value.
func (c *Counters) IncProcessed() int64 {
	return c.processed.Inc()
}

// DecProcessed decrements the processed tally and returns the new value.
func (c *Counters) DecProcessed() int64 {
	return c.processed.Dec()
}

// Count returns the tally of the given status bucket.
func (c *Counters) Count(status outcome.Status) int64 {
	if !status.IsValid() {
		return 0
	}
	return c.buckets[status].Load()
}

// Inc increments the given status bucket and returns the new value.
func (c *Counters) Inc(status outcome.Status) int64 {
	if !status.IsValid() {
		return 0
	}
	return c.buckets[status].Inc()
}

// Dec decrements the given status bucket and returns the new value.
func (c *Counters) Dec(status outcome.Status) int64 {
	if !status.IsValid() {
		return 0
	}
	return c.buckets[status].Dec()
}

// Record increments the processed tally and the bucket of status. A non-nil
// err is kept as the last error.
func (c *Counters) Record(status outcome.Status, err error) {
	c.processed.Inc()
	c.Inc(status)
	if err != nil {
		c.lastError.Store(err)
	}
	c.lastTime.Store(time.Now())
}

// LastError returns the last recorded error
func (c *Counters) LastError() error {
	return c.lastError.Load()
}

// LastTime returns the time of the last record, zero when nothing was recorded.
func (c *Counters) LastTime() time.Time {
	return c.lastTime.Load()
}

// Reset zeroes every tally and clears the last-value fields.
func (c *Counters) Reset() {
	c.processed.Store(0)
	for i := range c.buckets {
		c.buckets[i].Store(0)
	}
	c.lastError.Store(nil)
	c.lastTime.Store(time.Time{})
}

// Snapshot returns a point-in-time copy of the counters.
func (c *Counters) Snapshot() Snapshot {
	snapshot := Snapshot{
		Processed: c.processed.Load(),
		LastError: c.lastError.Load(),
		LastTime:  c.lastTime.Load(),
	}
	for _, status := range outcome.Statuses {
		snapshot.Counts[status] = c.buckets[status].Load()
	}
	return snapshot
}

// Track records the outcome in the given counters.
func Track[O any](c *Counters, out outcome.Outcome[O]) {
	c.Record(out.Status(), out.Err())
}

// Snapshot is a point-in-time view of Counters.
type Snapshot struct {
	Processed int64
	Counts    [outcome.NumStatuses]int64
	LastError error
	LastTime  time.Time
}

// Count returns the snapshot tally of the given status.
func (s Snapshot) Count(status outcome.Status) int64 {
	if !status.IsValid() {
		return 0
	}
	return s.Counts[status]
}
