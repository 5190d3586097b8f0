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

// Mailbox is the per-actor pair of streams: Enqueue is called by the
// arbiter and by the stop and death-watch paths (possibly concurrently),
// Dequeue is called by the single goroutine draining this actor's
// installed pattern. A
// mailbox is installed exactly once at actor construction and replaced
// only on reincarnation.
type Mailbox interface {
	// Enqueue places an envelope at the tail of the mailbox. Safe for
	// concurrent callers; never blocks.
	Enqueue(msg *IncomingMessage) error
	// Dequeue removes and returns the envelope at the head of the
	// mailbox, blocking until one is available or the mailbox is
	// disposed, in which case ok is false.
	Dequeue() (msg *IncomingMessage, ok bool)
	// Len returns a best-effort count of buffered envelopes.
	Len() int64
	// IsEmpty reports whether the mailbox currently holds no envelopes.
	IsEmpty() bool
	// Dispose releases the mailbox. Blocked and future Dequeue calls
	// return ok=false.
	Dispose()
}

// MailboxFactory constructs the mailbox installed for a newly spawned
// actor. Overriding it lets a System swap in a differently-tuned mailbox
// implementation without touching actorOf call sites.
type MailboxFactory func() Mailbox
