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

	"github.com/meridianhq/actorflow/errors"
)

// installedPattern is what installPattern returns: dispatch feeds one
// ReceiveContext at a time from the actor's single drain goroutine, and
// shutdown tears down any adapter-owned goroutines and channels.
type installedPattern struct {
	dispatch func(rc *ReceiveContext)
	shutdown func()
}

// installPattern detects, in order, which capability interface instance
// implements and wires the corresponding adapter. The order is the
// documented conflict-resolution policy when an actor implements more than
// one: Receiver, then MappedMethodsActor, then StreamReceiver - first
// match wins.
func installPattern(sys *System, instance Actor) installedPattern {
	if receiver, ok := instance.(Receiver); ok {
		return installReceive(receiver)
	}
	if mapped, ok := instance.(MappedMethodsActor); ok {
		return installMappedMethods(sys, mapped)
	}
	if stream, ok := instance.(StreamReceiver); ok {
		return installStreamReceive(sys, stream)
	}
	// An actor with none of the three patterns simply never produces a
	// response; tells are accepted and dropped, asks time out against the
	// caller's own context.
	return installedPattern{
		dispatch: func(*ReceiveContext) {},
		shutdown: func() {},
	}
}

func installReceive(receiver Receiver) installedPattern {
	return installedPattern{
		dispatch: receiver.Receive,
		shutdown: func() {},
	}
}

func installMappedMethods(sys *System, actor MappedMethodsActor) installedPattern {
	methods := actor.Methods()
	ins := make(map[string]chan *ReceiveContext, len(methods))
	var wg sync.WaitGroup

	respondUnknown := true
	if policy, ok := actor.(UnknownActionPolicy); ok {
		respondUnknown = policy.RespondOnUnknownAction()
	}

	for actionType, handler := range methods {
		in := make(chan *ReceiveContext)
		ins[actionType] = in
		out := handler(in)

		wg.Add(1)
		go func(out <-chan *Response) {
			defer wg.Done()
			for resp := range out {
				sys.publishResponse(&MessageResponse{
					RespID:   resp.MessageID,
					Response: resp.Value,
					Errors:   resp.Errors,
				})
			}
		}(out)
	}

	return installedPattern{
		dispatch: func(rc *ReceiveContext) {
			in, ok := ins[rc.Action.Type]
			if !ok {
				if respondUnknown {
					err := errors.NewErrUnknownAction(rc.Action.Type)
					sys.dead.publish(DeadLetter{
						MessageID: rc.MessageID,
						Address:   rc.Address,
						Action:    rc.Action,
						Reason:    err,
					})
					rc.Respond(nil, err)
				}
				return
			}
			in <- rc
		},
		shutdown: func() {
			for _, in := range ins {
				close(in)
			}
			wg.Wait()
		},
	}
}

func installStreamReceive(sys *System, actor StreamReceiver) installedPattern {
	in := make(chan *ReceiveContext)
	out := actor.SetupReceive(in)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for resp := range out {
			sys.publishResponse(&MessageResponse{
				RespID:   resp.MessageID,
				Response: resp.Value,
				Errors:   resp.Errors,
			})
		}
	}()

	return installedPattern{
		dispatch: func(rc *ReceiveContext) {
			in <- rc
		},
		shutdown: func() {
			close(in)
			<-done
		},
	}
}

// cleanupCancelledMessages implements the supersession rule: for any burst
// of N messages of actionType, exactly one (the one userFn's internal
// "latest wins" operator lets through) produces a normal response; the
// other N-1 are published as cancellations.
//
// Every filtered message is accumulated into an ever-growing buffer before
// userFn sees it. When userFn emits an output, everything buffered so far
// other than the message that produced it is cancelled - this is what
// makes the guarantee hold regardless of how long userFn takes to settle
// on its latest message.
func cleanupCancelledMessages(sys *System, in <-chan *ReceiveContext, actionType string, userFn func(<-chan *ReceiveContext) <-chan *Response) <-chan *Response {
	filtered := make(chan *ReceiveContext)
	var mu sync.Mutex
	var all []*ReceiveContext

	go func() {
		defer close(filtered)
		for rc := range in {
			if rc.Action.Type != actionType {
				continue
			}
			mu.Lock()
			all = append(all, rc)
			mu.Unlock()
			filtered <- rc
		}
	}()

	output := userFn(filtered)
	result := make(chan *Response)

	go func() {
		defer close(result)
		for out := range output {
			mu.Lock()
			toCancel := make([]*ReceiveContext, 0, len(all))
			for _, rc := range all {
				if rc.MessageID != out.MessageID {
					toCancel = append(toCancel, rc)
				}
			}
			mu.Unlock()

			for _, rc := range toCancel {
				sys.cancelMessage(rc.MessageID)
			}
			result <- out
		}
	}()

	return result
}
