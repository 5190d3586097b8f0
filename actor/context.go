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
	"context"

	"github.com/meridianhq/actorflow/address"
)

// Context is the capability object every Factory receives. It is the only
// way actor code reaches back into the System: direct access to the
// registry or arbiter is never exposed.
type Context interface {
	// Self is the ActorRef of the actor this context was built for.
	Self() ActorRef
	// Parent is the ActorRef obtained by dropping the last path segment of
	// Self's address. The root's parent is the system prefix itself.
	Parent() ActorRef

	// ActorOf spawns a child of Self, naming it name (or generating a UUID
	// if name is empty). Self's address appears only in the spawn log
	// line; the child's record and the returned ActorRef carry no sender,
	// so messages sent through that ref have one only via WithSender.
	ActorOf(factory Factory, name string) (ActorRef, error)
	// ActorSelection resolves pattern against the current registry
	// snapshot, anchored under Self's address if pattern is not absolute.
	ActorSelection(pattern string) ([]ActorRef, error)

	// Stop schedules the immediate-stop sequence for ref.
	Stop(ref ActorRef)
	// GracefulStop runs the graceful-stop sequence for refs serially and
	// aggregates their outcomes.
	GracefulStop(ctx context.Context, refs ...ActorRef) error

	// CleanupCancelledMessages wraps a filtered view of in with the
	// supersession rule: userFn is expected to apply "latest wins"
	// internally, and every buffered message superseded by an output is
	// published as a cancellation.
	CleanupCancelledMessages(in <-chan *ReceiveContext, actionType string, userFn func(<-chan *ReceiveContext) <-chan *Response) <-chan *Response

	// MessageScheduler is the scheduler the System uses to deliver
	// messages to the arbiter; exposed so actor code can compose
	// additional asynchronous work on the same scheduling discipline.
	MessageScheduler() Scheduler
	// TimeScheduler is the scheduler the System uses for microtask-like
	// immediate continuations.
	TimeScheduler() Scheduler

	// Watch registers Self to receive a Terminated tell when ref is
	// removed from the registry.
	Watch(ref ActorRef)
	// Unwatch cancels a prior Watch.
	Unwatch(ref ActorRef)
}

// actorContext is the default Context implementation, bound to one actor
// record at construction.
type actorContext struct {
	self   address.Address
	system *System
}

var _ Context = (*actorContext)(nil)

func newActorContext(self address.Address, system *System) *actorContext {
	return &actorContext{self: self, system: system}
}

func (c *actorContext) Self() ActorRef {
	return ActorRef{addr: c.self, system: c.system}
}

func (c *actorContext) Parent() ActorRef {
	return ActorRef{addr: c.self.Parent(), system: c.system}
}

func (c *actorContext) ActorOf(factory Factory, name string) (ActorRef, error) {
	child := c.self.Child(name)
	return c.system.actorOfAddress(child, factory, c.self.String())
}

func (c *actorContext) ActorSelection(pattern string) ([]ActorRef, error) {
	return c.system.ActorSelection(pattern, c.self.String())
}

func (c *actorContext) Stop(ref ActorRef) {
	c.system.Stop(ref)
}

func (c *actorContext) GracefulStop(ctx context.Context, refs ...ActorRef) error {
	return c.system.GracefulStop(ctx, refs...)
}

func (c *actorContext) CleanupCancelledMessages(in <-chan *ReceiveContext, actionType string, userFn func(<-chan *ReceiveContext) <-chan *Response) <-chan *Response {
	return cleanupCancelledMessages(c.system, in, actionType, userFn)
}

func (c *actorContext) MessageScheduler() Scheduler {
	return c.system.messageScheduler
}

func (c *actorContext) TimeScheduler() Scheduler {
	return c.system.timeScheduler
}

func (c *actorContext) Watch(ref ActorRef) {
	c.system.watch(c.self, ref.addr)
}

func (c *actorContext) Unwatch(ref ActorRef) {
	c.system.unwatch(c.self, ref.addr)
}
