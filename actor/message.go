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

// Action is the sole unit of dispatch carried by every envelope: Type is
// the dispatch key mappedMethods routes on, Payload is opaque application
// data.
type Action struct {
	Type    string
	Payload any
}

// IncomingMessage is the envelope the arbiter pushes onto a target actor's
// mailbox. MessageID is unique per ask/tell call and correlates the eventual
// MessageResponse. Sender, when non-zero, lets a receive/mappedMethods
// handler address a reply to whoever dispatched the message.
type IncomingMessage struct {
	MessageID string
	Address   string
	Action    Action
	Sender    string
}

// MessageResponse is published on the responses stream, keyed by RespID,
// once an actor (or the arbiter itself, on a lost destination) has an
// outcome for a given messageID.
type MessageResponse struct {
	RespID    string
	Response  any
	Errors    []error
	Cancelled bool
}

// ReceiveContext is what a pattern adapter hands to user code for a single
// incoming message: the raw envelope fields plus a bound respond closure and
// the materialized sender ActorRef.
type ReceiveContext struct {
	MessageID string
	Address   string
	Action    Action
	Sender    ActorRef

	respond func(value any, errs ...error)
}

// Respond publishes a MessageResponse for this message. It is safe to call
// at most once per ReceiveContext; later calls are no-ops.
func (rc *ReceiveContext) Respond(value any, errs ...error) {
	if rc.respond != nil {
		rc.respond(value, errs...)
		rc.respond = nil
	}
}

// Response is what a mappedMethods handler or setupReceive stream emits.
// MessageID round-trips the originating envelope's id so cleanupCancelledMessages
// can identify which buffered message produced this output. State is an
// opaque passthrough value: the core never inspects it.
type Response struct {
	MessageID string
	Value     any
	Errors    []error
	State     any
}
