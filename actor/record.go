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
	"go.uber.org/atomic"

	"github.com/meridianhq/actorflow/address"
)

// actorRecord is the live object registered at an address: exactly one
// exists per address at any time. It carries everything needed to
// reincarnate the actor later (address and factory) alongside its current
// incarnation's mailbox and installed pattern.
type actorRecord struct {
	addr    address.Address
	factory Factory
	ctx     *actorContext

	instance Actor
	mailbox  Mailbox
	pattern  installedPattern

	running atomic.Bool
}

func (rec *actorRecord) address() address.Address {
	return rec.addr
}

// run drains rec's mailbox on the calling goroutine until the mailbox is
// disposed, dispatching each envelope to the installed pattern. One
// goroutine per actor record, started once at construction and once more
// per reincarnation: this is what gives a single actor FIFO, single-
// threaded-cooperative processing of its own mailbox while different
// actors progress concurrently, per the per-actor-inbound-queue model.
func (rec *actorRecord) run(sys *System) {
	for {
		msg, ok := rec.mailbox.Dequeue()
		if !ok {
			return
		}

		var sender ActorRef
		if msg.Sender != "" {
			sender = ActorRef{addr: address.New(msg.Sender, sys.prefix), system: sys}
		}

		rc := &ReceiveContext{
			MessageID: msg.MessageID,
			Address:   msg.Address,
			Action:    msg.Action,
			Sender:    sender,
		}
		messageID := msg.MessageID
		rc.respond = func(value any, errs ...error) {
			sys.publishResponse(&MessageResponse{RespID: messageID, Response: value, Errors: errs})
		}

		rec.pattern.dispatch(rc)
	}
}
