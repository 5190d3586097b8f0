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

// Package actor implements the message plane and lifecycle of the runtime:
// the System (registry + arbiter), per-actor mailboxes, the ask/tell
// request-response protocol, the pattern adapters that turn a raw mailbox
// stream into typed handler dispatch, and the supersession rule for
// superseded in-flight requests.
package actor

import (
	"context"

	"github.com/meridianhq/actorflow/address"
)

// Actor is the marker interface every factory-constructed instance
// implements. An Actor has no required methods; its behavior is determined
// by which of the optional capability interfaces below it also implements,
// detected once at registration time rather than at dispatch time.
type Actor interface{}

// Factory constructs a new Actor instance for addr, given the capability
// context the System hands it. Called once at actorOf time and again, with
// a freshly derived Context, on every reincarnation.
type Factory func(addr address.Address, ctx Context) (Actor, error)

// Receiver is the callback-style pattern: the actor observes its mailbox
// one message at a time and calls rc.Respond to answer an ask.
type Receiver interface {
	Receive(rc *ReceiveContext)
}

// MethodHandler processes every message of one action type as a stream,
// returning a stream of responses: one handler per declared type, routed
// independent of the others.
type MethodHandler func(in <-chan *ReceiveContext) <-chan *Response

// MappedMethodsActor declares one MethodHandler per action type it handles.
// An action type with no declared handler is answered with
// errors.ErrUnknownAction unless the actor also implements
// UnknownActionPolicy and opts out.
type MappedMethodsActor interface {
	Methods() map[string]MethodHandler
}

// UnknownActionPolicy lets a MappedMethodsActor override the default
// error-response policy for action types it has no handler for. Returning
// false means "ignore silently" instead of responding with ErrUnknownAction.
type UnknownActionPolicy interface {
	RespondOnUnknownAction() bool
}

// StreamReceiver is the setupReceive pattern: the actor is handed the full,
// unfiltered mailbox stream once at installation and returns the stream of
// responses it wants forwarded.
type StreamReceiver interface {
	SetupReceive(in <-chan *ReceiveContext) <-chan *Response
}

// PreStarter fires before the actor is registered.
type PreStarter interface {
	PreStart(ctx context.Context) error
}

// PostStarter fires after the actor is registered and its patterns
// installed.
type PostStarter interface {
	PostStart(ctx context.Context) error
}

// PreRestarter fires on the doomed incarnation before Reincarnate replaces
// it.
type PreRestarter interface {
	PreRestart(ctx context.Context, reason error) error
}

// PostRestarter fires on the new incarnation after Reincarnate has replaced
// the registry entry.
type PostRestarter interface {
	PostRestart(ctx context.Context, reason error) error
}

// PostStopper fires after an actor is removed from the registry, on both
// the Stop and GracefulStop paths.
type PostStopper interface {
	PostStop(ctx context.Context) error
}

// ActorRef is an immutable handle to an actor by address. Holding a ref
// does not imply the actor still exists: operations against a defunct
// address are no-ops on Tell and yield cancellation (nil, nil) on Ask.
type ActorRef struct {
	addr   address.Address
	system *System
}

// Address returns the canonical address this ref points to.
func (r ActorRef) Address() address.Address {
	return r.addr
}

// IsZero reports whether r is the zero-value ActorRef (no address, no
// system).
func (r ActorRef) IsZero() bool {
	return r.system == nil && r.addr.IsZero()
}

// Ask sends action to the actor at r's address and blocks for the reply.
// See System.Ask for the full contract.
func (r ActorRef) Ask(ctx context.Context, action Action, opts ...SendOption) (any, error) {
	o := buildSendOptions(opts)
	return r.system.Ask(ctx, r.addr, action, o.messageID, o.sender)
}

// Tell sends action to the actor at r's address without waiting for a
// reply. See System.Tell for the full contract.
func (r ActorRef) Tell(ctx context.Context, action Action, opts ...SendOption) error {
	o := buildSendOptions(opts)
	return r.system.Tell(ctx, r.addr, action, o.messageID, o.sender)
}

// SendOption configures a single Ask or Tell call.
type SendOption func(*sendOptions)

type sendOptions struct {
	messageID string
	sender    string
}

func buildSendOptions(opts []SendOption) sendOptions {
	var o sendOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMessageID supplies the correlation id instead of generating one. The
// same id must never be used by two concurrent asks; see the documentation
// of System.Ask for why that is unsupported.
func WithMessageID(id string) SendOption {
	return func(o *sendOptions) { o.messageID = id }
}

// WithSender records who is sending, so the receiving actor's
// ReceiveContext.Sender resolves to a usable reply-to ActorRef. This is the
// only mechanism for reply-to-sender provenance; actor code that wants a
// handler to be able to reply to it passes WithSender(ctx.Self()).
func WithSender(ref ActorRef) SendOption {
	return func(o *sendOptions) { o.sender = ref.addr.String() }
}
