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
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tochemey/goworker/outcome"
)

func TestCounters(t *testing.T) {
	t.Run("Record", func(t *testing.T) {
		counters := NewCounters()
		require.True(t, counters.LastTime().IsZero())

		counters.Record(outcome.Succeeded, nil)
		cause := errors.New("boom")
		counters.Record(outcome.Errored, cause)

		assert.EqualValues(t, 2, counters.Processed())
		assert.EqualValues(t, 1, counters.Count(outcome.Succeeded))
		assert.EqualValues(t, 1, counters.Count(outcome.Errored))
		assert.Zero(t, counters.Count(outcome.Denied))
		assert.ErrorIs(t, counters.LastError(), cause)
		assert.False(t, counters.LastTime().IsZero())
	})
	t.Run("Inc and Dec", func(t *testing.T) {
		counters := NewCounters()
		assert.EqualValues(t, 1, counters.Inc(outcome.Ignored))
		assert.EqualValues(t, 2, counters.Inc(outcome.Ignored))
		assert.EqualValues(t, 1, counters.Dec(outcome.Ignored))
		assert.EqualValues(t, 1, counters.IncProcessed())
		assert.EqualValues(t, 0, counters.DecProcessed())
		assert.Zero(t, counters.Inc(outcome.Status(-1)))
		assert.Zero(t, counters.Count(outcome.Status(100)))
	})
	t.Run("Track", func(t *testing.T) {
		counters := NewCounters()
		Track(counters, outcome.Success("ok"))
		Track(counters, outcome.Limited[string]())
		snapshot := counters.Snapshot()
		assert.EqualValues(t, 2, snapshot.Processed)
		assert.EqualValues(t, 1, snapshot.Count(outcome.Succeeded))
		assert.EqualValues(t, 1, snapshot.Count(outcome.Denied))
	})
	t.Run("Reset", func(t *testing.T) {
		counters := NewCounters()
		counters.Record(outcome.Invalid, errors.New("bad"))
		counters.Reset()
		assert.Zero(t, counters.Processed())
		assert.Zero(t, counters.Count(outcome.Invalid))
		assert.NoError(t, counters.LastError())
		assert.True(t, counters.LastTime().IsZero())
	})
	t.Run("Concurrent writers", func(t *testing.T) {
		counters := NewCounters()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					counters.Record(outcome.Succeeded, nil)
				}
			}()
		}
		wg.Wait()
		assert.EqualValues(t, 5000, counters.Processed())
		assert.EqualValues(t, 5000, counters.Count(outcome.Succeeded))
	})
}

func TestCalls(t *testing.T) {
	calls := NewCalls()
	assert.EqualValues(t, 1, calls.Inc())
	assert.EqualValues(t, 2, calls.Inc())
	calls.Pass()
	cause := errors.New("timeout")
	calls.Fail(cause)

	assert.EqualValues(t, 2, calls.Attempts())
	assert.EqualValues(t, 1, calls.Passed())
	assert.EqualValues(t, 1, calls.Failed())
	assert.ErrorIs(t, calls.LastError(), cause)
	assert.False(t, calls.LastTime().IsZero())

	assert.EqualValues(t, 1, calls.Dec())
	calls.Reset()
	assert.Zero(t, calls.Attempts())
	assert.NoError(t, calls.LastError())
}
