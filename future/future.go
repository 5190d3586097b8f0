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

// Package future implements a single-assignment async result cell used to
// bridge the actor runtime's callback-driven completion style (a response
// arriving on a stream) with a caller that wants to block and wait for it.
//
// It backs the response side of the ask protocol: once Ask has scheduled
// the envelope's dispatch, a Future waits for the response, error, or
// cancellation published for that messageID.
package future

import (
	"context"
	"sync"
)

// Future represents a value which may or may not currently be available,
// but will be available at some point, or an error if it could not be made
// available.
type Future interface {
	// Await blocks until the Future is completed or ctx is canceled and
	// returns either a result or an error.
	Await(context.Context) (any, error)

	// complete completes the Future with either a value or an error. Used
	// internally by completable.
	complete(any, error)
}

// New creates a new Future that executes the given task asynchronously in
// its own goroutine and completes once the task returns.
func New(task func() (any, error)) Future {
	comp := newCompletable()
	go func() {
		result, err := task()
		if err == nil {
			comp.Success(result)
		} else {
			comp.Failure(err)
		}
	}()
	return comp.Future()
}

// future implements the Future interface.
type future struct {
	acceptOnce   sync.Once
	completeOnce sync.Once
	done         chan any
	value        any
	err          error
}

var _ Future = (*future)(nil)

func newFuture() Future {
	return &future{
		done: make(chan any, 1),
	}
}

// wait blocks once, until the Future result is available or ctx is canceled.
func (x *future) wait(ctx context.Context) {
	x.acceptOnce.Do(func() {
		select {
		case result := <-x.done:
			x.setResult(result)
		case <-ctx.Done():
			x.err = ctx.Err()
		}
	})
}

func (x *future) setResult(result any) {
	switch value := result.(type) {
	case futureError:
		x.err = value.err
	default:
		x.value = value
	}
}

// Await blocks until the Future is completed or ctx is canceled.
func (x *future) Await(ctx context.Context) (any, error) {
	x.wait(ctx)
	return x.value, x.err
}

// complete completes the Future with either a value or an error.
func (x *future) complete(value any, err error) {
	x.completeOnce.Do(func() {
		if err != nil {
			x.done <- futureError{err: err}
		} else {
			x.done <- value
		}
	})
}

// futureError disambiguates a deliberately-completed error from a success
// value that happens to itself be of type error.
type futureError struct {
	err error
}

// completable represents a writable, single-assignment container which
// completes a Future.
type completable interface {
	Success(any)
	Failure(error)
	Future() Future
}

type completer struct {
	once   sync.Once
	future Future
}

var _ completable = (*completer)(nil)

func newCompletable() completable {
	return &completer{future: newFuture()}
}

func (p *completer) Success(value any) {
	p.once.Do(func() {
		p.future.complete(value, nil)
	})
}

func (p *completer) Failure(err error) {
	p.once.Do(func() {
		p.future.complete(nil, err)
	})
}

func (p *completer) Future() Future {
	return p.future
}
