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

// Package actor provides long-running units of work that drain a private
// mailbox with exactly one consumer.
//
// Three layers build on each other:
//
//   - Messageable owns the mailbox and the sequential processing loop.
//   - Pausable adds the Status state machine, lifecycle hooks and strict-mode
//     gating of work.
//   - Loader adds strict-mode gated requests on top of Pausable.
//
// Actors are launched inside a Scope, which shares goroutine scheduling
// between many actors and reports the first fatal handler error. A handler
// error or panic is fatal for the actor that raised it: its status moves to
// Failed and its loop exits. Route fallible operations through the policy
// package to turn failures into outcomes instead.
package actor
