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

// Package testkit provides deterministic test doubles for actorflow's
// injectable collaborators, the way a caller would wire them through
// actor.Option at System construction time.
package testkit

import "sync"

// VirtualScheduler is an actor.Scheduler a test can step by hand instead of
// letting tasks run the moment a goroutine gets to them. Schedule appends to
// a pending queue; nothing runs until Advance is called.
type VirtualScheduler struct {
	mu      sync.Mutex
	pending []func()
}

// NewVirtualScheduler returns an empty, steppable scheduler.
func NewVirtualScheduler() *VirtualScheduler {
	return &VirtualScheduler{}
}

// Schedule queues task without running it.
func (v *VirtualScheduler) Schedule(task func()) {
	v.mu.Lock()
	v.pending = append(v.pending, task)
	v.mu.Unlock()
}

// Advance runs up to n pending tasks in the order they were scheduled,
// returning how many actually ran. Tasks scheduled by a running task are
// appended to the same pending queue and are not run by this call unless n
// is large enough to reach them.
func (v *VirtualScheduler) Advance(n int) int {
	ran := 0
	for ran < n {
		v.mu.Lock()
		if len(v.pending) == 0 {
			v.mu.Unlock()
			break
		}
		task := v.pending[0]
		v.pending = v.pending[1:]
		v.mu.Unlock()

		task()
		ran++
	}
	return ran
}

// Pending reports how many tasks are queued and not yet run.
func (v *VirtualScheduler) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pending)
}

// Drain runs every pending task, including ones newly scheduled by tasks
// this call itself runs, until none remain.
func (v *VirtualScheduler) Drain() int {
	total := 0
	for v.Pending() > 0 {
		total += v.Advance(v.Pending())
	}
	return total
}
