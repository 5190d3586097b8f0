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

import (
	"sync"
	"time"
)

// DeadLetter records a message the arbiter could not deliver, or that an
// actor answered with ErrUnknownAction. It supplements the core's silent
// drop-on-tell / cancel-on-ask behavior with an observable event, without
// changing either outcome.
type DeadLetter struct {
	MessageID string
	Address   string
	Action    Action
	Reason    error
	Time      time.Time
}

const deadLetterHistoryLimit = 256

// deadLetters owns the live channel fed by the arbiter plus a bounded
// recent-history ring for diagnostics/inspection that does not require a
// subscriber to be listening at the moment the letter is produced.
//
// history is a fixed-capacity ring buffer, not a stack: recent() must drop
// the oldest entry once the limit is reached, and a LIFO stack has no way to
// reach the bottom of the pile without popping everything above it first.
type deadLetters struct {
	ch chan DeadLetter

	mu      sync.Mutex
	history []DeadLetter
	next    int
	full    bool
}

func newDeadLetters() *deadLetters {
	return &deadLetters{
		ch:      make(chan DeadLetter, 64),
		history: make([]DeadLetter, deadLetterHistoryLimit),
	}
}

func (d *deadLetters) publish(letter DeadLetter) {
	d.mu.Lock()
	d.history[d.next] = letter
	d.next++
	if d.next == len(d.history) {
		d.next = 0
		d.full = true
	}
	d.mu.Unlock()

	select {
	case d.ch <- letter:
	default:
		// channel is a best-effort live feed; a full buffer means nobody
		// is draining it right now. The letter is still in history.
	}
}

// recent returns up to deadLetterHistoryLimit most-recently-published dead
// letters, most recent first.
func (d *deadLetters) recent() []DeadLetter {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.next
	if d.full {
		n = len(d.history)
	}
	out := make([]DeadLetter, 0, n)
	for i := 0; i < n; i++ {
		idx := d.next - 1 - i
		if idx < 0 {
			idx += len(d.history)
		}
		out = append(out, d.history[idx])
	}
	return out
}
