/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	"sync"

	"github.com/meridianhq/actorflow/internal/queue"
)

// DefaultMailbox is the default unbounded mailbox. Enqueue is lock-free and
// safe for any number of concurrent producers (the arbiter's dispatch task,
// plus the stop and death-watch paths that enqueue directly); Dequeue blocks a
// single consumer goroutine until an envelope is available or the mailbox
// is disposed.
//
// It is built on a lock-free MPSC queue adapted to this module's
// IncomingMessage envelope, pairing internal/queue.MpscQueue with a
// buffered notify channel for blocking consumption.
type DefaultMailbox struct {
	queue  *queue.MpscQueue[*IncomingMessage]
	notify chan struct{}

	disposeOnce sync.Once
	disposed    chan struct{}
}

var _ Mailbox = (*DefaultMailbox)(nil)

// NewDefaultMailbox creates and initializes a DefaultMailbox instance.
func NewDefaultMailbox() *DefaultMailbox {
	return &DefaultMailbox{
		queue:    queue.NewMpscQueue[*IncomingMessage](),
		notify:   make(chan struct{}, 1),
		disposed: make(chan struct{}),
	}
}

// Enqueue places the given envelope in the mailbox. Never blocks; always
// returns nil. Safe for concurrent calls by multiple producers.
func (m *DefaultMailbox) Enqueue(msg *IncomingMessage) error {
	m.queue.Push(msg)
	select {
	case m.notify <- struct{}{}:
	default:
	}
	return nil
}

// Dequeue removes and returns the envelope at the head of the mailbox,
// blocking until one is available or the mailbox is disposed. Must be
// called by a single consumer goroutine.
func (m *DefaultMailbox) Dequeue() (*IncomingMessage, bool) {
	for {
		if msg, ok := m.queue.Pop(); ok {
			return msg, true
		}
		select {
		case <-m.notify:
			continue
		case <-m.disposed:
			// drain whatever raced in before returning
			if msg, ok := m.queue.Pop(); ok {
				return msg, true
			}
			return nil, false
		}
	}
}

// Len returns a best-effort snapshot of the number of envelopes in the
// mailbox.
func (m *DefaultMailbox) Len() int64 {
	return m.queue.Len()
}

// IsEmpty returns true when the mailbox is empty.
func (m *DefaultMailbox) IsEmpty() bool {
	return m.queue.IsEmpty()
}

// Dispose releases the mailbox, unblocking any goroutine parked in
// Dequeue.
func (m *DefaultMailbox) Dispose() {
	m.disposeOnce.Do(func() {
		close(m.disposed)
	})
}
