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

// Status classifies the result of an operation.
type Status int

const (
	// Succeeded marks a successful operation.
	Succeeded Status = iota
	// Pending marks an accepted operation whose effect is not yet complete.
	Pending
	// Denied marks an operation refused by a rule such as a limit.
	Denied
	// Invalid marks an operation refused because of its input.
	Invalid
	// Ignored marks an operation that was deliberately skipped.
	Ignored
	// Errored marks an operation that failed with a known error.
	Errored
	// Unexpected marks an operation that failed in an unforeseen way (panics included).
	Unexpected
)

// NumStatuses is the number of defined statuses.
const NumStatuses = int(Unexpected) + 1

// Statuses lists every status in declaration order.
var Statuses = [NumStatuses]Status{Succeeded, Pending, Denied, Invalid, Ignored, Errored, Unexpected}

var statusNames = [NumStatuses]string{
	Succeeded:  "Succeeded",
	Pending:    "Pending",
	Denied:     "Denied",
	Invalid:    "Invalid",
	Ignored:    "Ignored",
	Errored:    "Errored",
	Unexpected: "Unexpected",
}

// String returns the status name
func (s Status) String() string {
	if s.IsValid() {
		return statusNames[s]
	}
	return "Unknown"
}

// IsValid reports whether s is one of the defined statuses.
func (s Status) IsValid() bool {
	return s >= Succeeded && s <= Unexpected
}
