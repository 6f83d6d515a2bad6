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
	"fmt"

	"github.com/tochemey/goworker/outcome"
)

// ResultKind tags the variant of a Result
type ResultKind int

const (
	// MoreKind reports that the worker is ready for the next task
	MoreKind ResultKind = iota
	// DoneKind reports that the worker has no more work to do
	DoneKind
	// NextKind reports a paged continuation
	NextKind
)

// Result is what a Worker returns for a processed task.
type Result struct {
	kind   ResultKind
	offset int64
	total  int64
	label  string
}

// Done reports that the worker has no more work; its runner moves to
// Completed.
func Done() Result {
	return Result{kind: DoneKind}
}

// More reports that one unit was processed and the worker is ready for the
// next one.
func More() Result {
	return Result{kind: MoreKind}
}

// Next reports a paged continuation. The caller keeps track of offset and
// total between tasks; the runner only exposes the last one it saw.
func Next(offset, total int64, label string) Result {
	return Result{kind: NextKind, offset: offset, total: total, label: label}
}

// Kind returns the result variant
func (r Result) Kind() ResultKind { return r.kind }

// IsDone reports whether r is Done
func (r Result) IsDone() bool { return r.kind == DoneKind }

// Offset returns the page offset of a Next result
func (r Result) Offset() int64 { return r.offset }

// Total returns the page total of a Next result
func (r Result) Total() int64 { return r.total }

// Label returns the page label of a Next result
func (r Result) Label() string { return r.label }

// String returns a short description of the result
func (r Result) String() string {
	switch r.kind {
	case DoneKind:
		return "Done"
	case NextKind:
		return fmt.Sprintf("Next(%d/%d %s)", r.offset, r.total, r.label)
	default:
		return "More"
	}
}

// Class groups outcome statuses for worker reporting.
type Class int

const (
	Succeeded Class = iota
	Filtered
	Errored
)

// String returns the class name
func (c Class) String() string {
	switch c {
	case Succeeded:
		return "Succeeded"
	case Filtered:
		return "Filtered"
	default:
		return "Errored"
	}
}

// Classify maps an outcome status to its class. Denied, Invalid and Ignored
// outcomes were filtered out by a rule; Errored and Unexpected ones failed.
func Classify(status outcome.Status) Class {
	switch status {
	case outcome.Succeeded, outcome.Pending:
		return Succeeded
	case outcome.Denied, outcome.Invalid, outcome.Ignored:
		return Filtered
	default:
		return Errored
	}
}
