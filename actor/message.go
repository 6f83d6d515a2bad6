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

import "fmt"

// Kind tags the variant held by a Message.
type Kind int

const (
	ControlKind Kind = iota
	RequestKind
	ContentKind
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case ControlKind:
		return "Control"
	case RequestKind:
		return "Request"
	case ContentKind:
		return "Content"
	default:
		return "Unknown"
	}
}

// Request asks a Loader to load the given reference.
type Request struct {
	ID        string
	Reference string
}

// Envelope is the payload-agnostic view of a Message, handed to trackers.
type Envelope interface {
	Kind() Kind
	Action() Action
	Note() string
	Request() Request
	String() string
}

// Message is the closed set of messages an actor mailbox carries. Exactly one
// variant is set, as reported by Kind:
//
//   - Control carries a lifecycle Action and a note.
//   - Request carries a Request for a Loader.
//   - Content carries a business payload.
type Message[T any] struct {
	kind    Kind
	action  Action
	note    string
	request Request
	payload T
}

// enforce compilation error
var _ Envelope = Message[int]{}

// NewControl creates a Control message
func NewControl[T any](action Action, note string) Message[T] {
	return Message[T]{kind: ControlKind, action: action, note: note}
}

// NewRequest creates a Request message
func NewRequest[T any](id, reference string) Message[T] {
	return Message[T]{kind: RequestKind, request: Request{ID: id, Reference: reference}}
}

// NewContent creates a Content message
func NewContent[T any](payload T) Message[T] {
	return Message[T]{kind: ContentKind, payload: payload}
}

func (m Message[T]) Kind() Kind       { return m.kind }
func (m Message[T]) Action() Action   { return m.action }
func (m Message[T]) Note() string     { return m.note }
func (m Message[T]) Request() Request { return m.request }
func (m Message[T]) Payload() T       { return m.payload }

// String returns a short description of the message, without the payload.
func (m Message[T]) String() string {
	switch m.kind {
	case ControlKind:
		return fmt.Sprintf("Control(%s, %q)", m.action, m.note)
	case RequestKind:
		return fmt.Sprintf("Request(%s, %s)", m.request.ID, m.request.Reference)
	default:
		return "Content"
	}
}
