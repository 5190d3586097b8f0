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

	"github.com/meridianhq/actorflow/internal/queue"
	"github.com/meridianhq/actorflow/internal/timer"
)

// Scheduler defers execution of a task. The message scheduler models
// macrotask semantics (a task runs only after the current call stack has
// unwound, strictly ordered behind every previously scheduled task); the
// time scheduler models microtask semantics (runs as soon as possible, with
// no ordering guarantee relative to other time-scheduled tasks). Both are
// injectable so tests can replace them with a steppable virtual scheduler.
type Scheduler interface {
	// Schedule queues task for asynchronous execution. It never runs task
	// synchronously on the calling goroutine.
	Schedule(task func())
}

// queueScheduler is the default message scheduler: a single worker
// goroutine drains an MPSC queue of pending tasks in FIFO order, giving
// every ask/tell send-track the "at least one scheduler turn elapses"
// guarantee while preserving per-destination ordering end to end.
type queueScheduler struct {
	tasks  *queue.MpscQueue[func()]
	notify chan struct{}
	once   sync.Once
}

var _ Scheduler = (*queueScheduler)(nil)

// newQueueScheduler starts the worker goroutine and returns the scheduler.
func newQueueScheduler() *queueScheduler {
	s := &queueScheduler{
		tasks:  queue.NewMpscQueue[func()](),
		notify: make(chan struct{}, 1),
	}
	go s.run()
	return s
}

func (s *queueScheduler) Schedule(task func()) {
	s.tasks.Push(task)
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *queueScheduler) run() {
	for range s.notify {
		for {
			task, ok := s.tasks.Pop()
			if !ok {
				break
			}
			task()
		}
	}
}

// close stops the worker goroutine. Safe to call at most meaningfully once;
// subsequent calls are no-ops.
func (s *queueScheduler) close() {
	s.once.Do(func() {
		close(s.notify)
	})
}

// timerScheduler is the default time scheduler: every task runs after a
// zero-duration timer.Timer fires on its own goroutine, so it still incurs
// a real scheduling hop (never synchronous in the caller's turn) but without
// the single-worker FIFO ordering the message scheduler imposes.
type timerScheduler struct{}

var _ Scheduler = timerScheduler{}

func (timerScheduler) Schedule(task func()) {
	t := timer.New(0)
	t.Start()
	go func() {
		<-t.C()
		task()
	}()
}
