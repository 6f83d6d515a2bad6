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

// Status is the observable lifecycle state of an actor.
type Status int32

const (
	InActive Status = iota
	Started
	Paused
	Running
	Stopped
	Completed
	Failed
	Killed
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case InActive:
		return "InActive"
	case Started:
		return "Started"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	case Completed:
		return "Completed"
	case Failed:
		return "Failed"
	case Killed:
		return "Killed"
	default:
		return "Unknown"
	}
}

// IsActive reports whether work is allowed in strict mode.
func (s Status) IsActive() bool {
	return s == Started || s == Running
}

// Action is a lifecycle command applied to an actor.
type Action int32

const (
	Start Action = iota
	Pause
	Resume
	Delay
	Stop
	Kill
	Check
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case Start:
		return "Start"
	case Pause:
		return "Pause"
	case Resume:
		return "Resume"
	case Delay:
		return "Delay"
	case Stop:
		return "Stop"
	case Kill:
		return "Kill"
	case Check:
		return "Check"
	default:
		return "Unknown"
	}
}

// Next returns the status reached when applying action to current. Every
// action is valid from every status; Check leaves current unchanged.
func Next(action Action, current Status) Status {
	switch action {
	case Delay:
		return InActive
	case Start:
		return Started
	case Pause:
		return Paused
	case Resume:
		return Running
	case Stop:
		return Stopped
	case Kill:
		return Killed
	default:
		return current
	}
}

// Receipt is the result of a strict-mode gated operation.
type Receipt int

const (
	Accepted Receipt = iota
	Rejected
)

// String returns the receipt name
func (r Receipt) String() string {
	if r == Accepted {
		return "Accepted"
	}
	return "Rejected"
}

// Feedback reports the effect of a forced transition.
type Feedback struct {
	Changed bool
	Message string
}
