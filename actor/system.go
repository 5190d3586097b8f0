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
	"fmt"
	"time"

	"github.com/flowchartsman/retry"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/meridianhq/actorflow/address"
	aerrors "github.com/meridianhq/actorflow/errors"
	"github.com/meridianhq/actorflow/eventstream"
	"github.com/meridianhq/actorflow/future"
	"github.com/meridianhq/actorflow/internal/syncmap"
	"github.com/meridianhq/actorflow/log"
)

// StopActionType is the action type delivered to an actor's own mailbox
// when it is stopped, via Stop (tell) or GracefulStop (ask). An actor that
// wants to observe its own shutdown declares a handler for this type the
// same way it would for any other action.
const StopActionType = "stop"

// System is the registry of live actors and the single-owner arbiter that
// routes every envelope to its destination's mailbox. One System per
// program is the normal case; nothing here prevents running several.
type System struct {
	prefix           string
	mailboxFactory   MailboxFactory
	messageScheduler Scheduler
	timeScheduler    Scheduler
	logger           log.Logger

	registry *syncmap.SyncMap[string, *actorRecord]
	watchers *syncmap.SyncMap[string, map[string]struct{}]

	responses eventstream.Stream
	dead      *deadLetters

	started atomic.Bool
}

// NewSystem builds a System ready to be Start-ed. Supplying no options
// yields sensible defaults: the "/system" address prefix, the
// default mailbox factory, a queueScheduler for messages, a timerScheduler
// for microtask-like continuations, and log.DefaultLogger.
func NewSystem(opts ...Option) *System {
	o := defaultOptions()
	defaultScheduler := o.messageScheduler
	for _, opt := range opts {
		opt(o)
	}
	// defaultOptions always starts a queueScheduler worker; stop it when an
	// option replaced it, so its goroutine does not outlive the System.
	if qs, ok := defaultScheduler.(*queueScheduler); ok {
		if cur, same := o.messageScheduler.(*queueScheduler); !same || cur != qs {
			qs.close()
		}
	}

	return &System{
		prefix:           o.prefix,
		mailboxFactory:   o.mailboxFactory,
		messageScheduler: o.messageScheduler,
		timeScheduler:    o.timeScheduler,
		logger:           o.logger,
		registry:         syncmap.New[string, *actorRecord](),
		watchers:         syncmap.New[string, map[string]struct{}](),
		responses:        eventstream.New(),
		dead:             newDeadLetters(),
	}
}

// Start marks the System ready to accept actorOf/Ask/Tell calls. Starting
// an already-started System returns ErrSystemAlreadyStarted.
func (sys *System) Start(context.Context) error {
	if !sys.started.CompareAndSwap(false, true) {
		return aerrors.ErrSystemAlreadyStarted
	}
	sys.logger.Infof("actor system started, prefix=%s", sys.prefix)
	return nil
}

// Shutdown stops every registered actor via GracefulStop, then tears down
// the System's own background goroutines (the message scheduler's worker
// and the responses broker's subscribers). A Shutdown System cannot be
// restarted; build a new one with NewSystem instead.
func (sys *System) Shutdown(ctx context.Context) error {
	if !sys.started.CompareAndSwap(true, false) {
		return aerrors.ErrSystemNotStarted
	}

	var refs []ActorRef
	sys.registry.Range(func(addr string, rec *actorRecord) {
		refs = append(refs, ActorRef{addr: rec.addr, system: sys})
	})

	err := sys.GracefulStop(ctx, refs...)

	if closer, ok := sys.messageScheduler.(interface{ close() }); ok {
		closer.close()
	}
	sys.responses.Close()

	return err
}

// DeadLetters exposes the live feed of undeliverable envelopes and
// unknown-action responses. The channel is buffered and best effort: a
// consumer that falls behind misses live notifications but can still
// inspect RecentDeadLetters.
func (sys *System) DeadLetters() <-chan DeadLetter {
	return sys.dead.ch
}

// RecentDeadLetters returns the most recently published dead letters, most
// recent first, bounded by deadLetterHistoryLimit.
func (sys *System) RecentDeadLetters() []DeadLetter {
	return sys.dead.recent()
}

// ActorOf spawns a top-level actor (child of the system prefix itself).
func (sys *System) ActorOf(factory Factory, name string) (ActorRef, error) {
	addr := address.Create(name, sys.prefix)
	return sys.actorOfAddress(addr, factory, "")
}

// actorOfAddress constructs, registers, and starts the per-actor drain
// goroutine for addr. senderHint is recorded as the PreStart/PostStart
// context's provenance only in log messages; the Factory itself receives
// a fresh Context bound to addr.
func (sys *System) actorOfAddress(addr address.Address, factory Factory, senderHint string) (ActorRef, error) {
	if !sys.started.Load() {
		return ActorRef{}, aerrors.ErrSystemNotStarted
	}
	if _, exists := sys.registry.Get(addr.String()); exists {
		return ActorRef{}, aerrors.NewErrActorAlreadyExists(addr.String())
	}

	actorCtx := newActorContext(addr, sys)
	instance, err := factory(addr, actorCtx)
	if err != nil {
		return ActorRef{}, fmt.Errorf("address=(%s): %w", addr.String(), aerrors.NewUserError(err))
	}

	if starter, ok := instance.(PreStarter); ok {
		if err := starter.PreStart(context.Background()); err != nil {
			return ActorRef{}, fmt.Errorf("address=(%s) prestart: %w", addr.String(), aerrors.NewUserError(err))
		}
	}

	rec := &actorRecord{
		addr:    addr,
		factory: factory,
		ctx:     actorCtx,
		instance: instance,
		mailbox:  sys.mailboxFactory(),
		pattern:  installPattern(sys, instance),
	}
	rec.running.Store(true)

	sys.registry.Set(addr.String(), rec)
	go rec.run(sys)

	if starter, ok := instance.(PostStarter); ok {
		if err := starter.PostStart(context.Background()); err != nil {
			sys.logger.Errorf("address=(%s) poststart: %v", addr.String(), err)
		}
	}

	sys.logger.Debugf("actor started at %s (spawned by %s)", addr.String(), senderHint)
	return ActorRef{addr: addr, system: sys}, nil
}

// ActorSelection resolves pattern against every address currently
// registered. A relative pattern is anchored under prefixAddr.
func (sys *System) ActorSelection(pattern, prefixAddr string) ([]ActorRef, error) {
	match := compileSelectionPattern(pattern, prefixAddr)

	var refs []ActorRef
	sys.registry.Range(func(addr string, rec *actorRecord) {
		if match(addr) {
			refs = append(refs, ActorRef{addr: rec.addr, system: sys})
		}
	})
	return refs, nil
}

// dispatch is the arbiter's single entry point, always run on
// messageScheduler so that every envelope, regardless of its origin
// goroutine, is handed to its mailbox from the one arbiter goroutine.
func (sys *System) dispatch(msg *IncomingMessage) {
	rec, ok := sys.registry.Get(msg.Address)
	if !ok {
		sys.handleLostDestination(msg)
		return
	}
	if err := rec.mailbox.Enqueue(msg); err != nil {
		sys.handleLostDestination(msg)
	}
}

func (sys *System) handleLostDestination(msg *IncomingMessage) {
	sys.dead.publish(DeadLetter{
		MessageID: msg.MessageID,
		Address:   msg.Address,
		Action:    msg.Action,
		Reason:    aerrors.NewErrLostDestination(msg.Address),
	})
	sys.publishResponse(&MessageResponse{RespID: msg.MessageID, Cancelled: true})
}

// Ask sends action to target and blocks until a response, cancellation, or
// ctx's deadline. Concurrent Ask calls must each supply a distinct
// messageID (generated automatically when empty); reusing one across two
// in-flight asks is undefined behavior the runtime does not defend
// against.
func (sys *System) Ask(ctx context.Context, target address.Address, action Action, messageID, sender string) (any, error) {
	if !sys.started.Load() {
		return nil, aerrors.ErrSystemNotStarted
	}
	if messageID == "" {
		messageID = uuid.NewString()
	}

	sub := sys.responses.AddSubscriber()
	defer sys.responses.RemoveSubscriber(sub)
	sys.responses.Subscribe(sub, messageID)

	sys.messageScheduler.Schedule(func() {
		sys.dispatch(&IncomingMessage{
			MessageID: messageID,
			Address:   target.String(),
			Action:    action,
			Sender:    sender,
		})
	})

	fut := future.New(func() (any, error) {
		message, ok := sub.Wait()
		if !ok {
			return nil, nil
		}
		resp, _ := message.Payload().(*MessageResponse)
		if resp == nil || resp.Cancelled {
			return nil, nil
		}
		if len(resp.Errors) > 0 {
			return resp.Response, multierr.Combine(resp.Errors...)
		}
		return resp.Response, nil
	})
	return fut.Await(ctx)
}

// Tell sends action to target without waiting for a response. A missing
// destination is recorded as a dead letter and otherwise silently
// dropped.
func (sys *System) Tell(_ context.Context, target address.Address, action Action, messageID, sender string) error {
	if !sys.started.Load() {
		return aerrors.ErrSystemNotStarted
	}
	if messageID == "" {
		messageID = uuid.NewString()
	}

	sys.messageScheduler.Schedule(func() {
		sys.dispatch(&IncomingMessage{
			MessageID: messageID,
			Address:   target.String(),
			Action:    action,
			Sender:    sender,
		})
	})
	return nil
}

// publishResponse is the single write path into the responses broker,
// called from an actor's respond closure, from a pattern adapter's
// forwarding goroutine, or from the arbiter on a lost destination.
func (sys *System) publishResponse(resp *MessageResponse) {
	sys.responses.Publish(resp.RespID, resp)
}

// cancelMessage publishes a cancellation response for messageID, used by
// cleanupCancelledMessages to settle every superseded in-flight ask.
func (sys *System) cancelMessage(messageID string) {
	sys.publishResponse(&MessageResponse{RespID: messageID, Cancelled: true})
}

// Stop synchronously runs the immediate stop sequence: tell the actor a
// StopActionType action, then finishStop (deregister, tear down the pattern,
// dispose the mailbox, invoke postStop, notify watchers); postStop runs
// after the actor has left the registry. The tell is
// best-effort - Stop does not wait for the actor to process it - but the
// action is enqueued directly into its mailbox before teardown so the actor
// has the chance to observe it ahead of disposal.
func (sys *System) Stop(ref ActorRef) {
	rec, ok := sys.registry.Get(ref.addr.String())
	if !ok {
		return
	}
	deliverStopTell(rec)
	sys.finishStop(ref.addr, rec)
}

// deliverStopTell enqueues a StopActionType envelope directly into rec's
// mailbox, bypassing the message scheduler: Stop already holds rec, and
// routing through sys.dispatch would race the registry delete that follows
// immediately after.
func deliverStopTell(rec *actorRecord) {
	_ = rec.mailbox.Enqueue(&IncomingMessage{
		MessageID: uuid.NewString(),
		Address:   rec.addr.String(),
		Action:    Action{Type: StopActionType},
	})
}

// deliverStopAsk delivers a StopActionType envelope to rec and blocks until
// the actor's installed pattern produces a response for it, ctx is done, or
// the response carries errors. This is gracefulStop's "ask {type:'stop'},
// await completion" half.
func (sys *System) deliverStopAsk(ctx context.Context, rec *actorRecord) error {
	messageID := uuid.NewString()

	sub := sys.responses.AddSubscriber()
	defer sys.responses.RemoveSubscriber(sub)
	sys.responses.Subscribe(sub, messageID)

	if err := rec.mailbox.Enqueue(&IncomingMessage{
		MessageID: messageID,
		Address:   rec.addr.String(),
		Action:    Action{Type: StopActionType},
	}); err != nil {
		return err
	}

	fut := future.New(func() (any, error) {
		message, ok := sub.Wait()
		if !ok {
			return nil, nil
		}
		resp, _ := message.Payload().(*MessageResponse)
		if resp != nil && len(resp.Errors) > 0 {
			return nil, multierr.Combine(resp.Errors...)
		}
		return nil, nil
	})
	_, err := fut.Await(ctx)
	return err
}

// finishStop runs the teardown shared by Stop and gracefulStopOne once the
// stop action has been delivered: deregister, tear down the installed
// pattern, dispose the mailbox, invoke postStop, and notify watchers.
func (sys *System) finishStop(addr address.Address, rec *actorRecord) {
	sys.registry.Delete(addr.String())
	rec.pattern.shutdown()
	rec.mailbox.Dispose()
	rec.running.Store(false)

	if stopper, ok := rec.instance.(PostStopper); ok {
		if err := stopper.PostStop(context.Background()); err != nil {
			sys.logger.Errorf("address=(%s) poststop: %v", addr.String(), err)
		}
	}

	sys.notifyWatchers(addr)
}

// gracefulStopOne runs the gracefulStop sequence for a single address: ask
// {type:'stop'} and await completion, then finishStop, which deregisters
// the actor before it invokes postStop.
func (sys *System) gracefulStopOne(ctx context.Context, addr address.Address) error {
	rec, ok := sys.registry.Get(addr.String())
	if !ok {
		return aerrors.NewErrActorNotFound(addr.String())
	}
	err := sys.deliverStopAsk(ctx, rec)
	sys.finishStop(addr, rec)
	return err
}

// GracefulStop runs the ask-stop sequence for each of refs in order, one at
// a time, and aggregates every error encountered. The serial ordering is
// deliberate: gracefulStop never dispatches the next actor's teardown
// concurrently with the previous one's stop-ask/PostStop.
func (sys *System) GracefulStop(ctx context.Context, refs ...ActorRef) error {
	var errs error
	for _, ref := range refs {
		if ref.IsZero() {
			errs = multierr.Append(errs, aerrors.ErrInvalidReference)
			continue
		}
		if err := sys.gracefulStopOne(ctx, ref.addr); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Reincarnate replaces the actor at addr with a fresh instance built from
// factory, retrying construction with backoff if the factory itself
// fails. The registry entry and mailbox are swapped atomically from the
// perspective of any concurrent dispatch: lookups either see the old
// record or the new one, never neither.
func (sys *System) Reincarnate(addr address.Address, factory Factory, reason error) (ActorRef, error) {
	old, ok := sys.registry.Get(addr.String())
	if !ok {
		return ActorRef{}, aerrors.NewErrActorNotFound(addr.String())
	}

	if restarter, ok := old.instance.(PreRestarter); ok {
		if err := restarter.PreRestart(context.Background(), reason); err != nil {
			sys.logger.Errorf("address=(%s) prerestart: %v", addr.String(), err)
		}
	}
	old.pattern.shutdown()
	old.mailbox.Dispose()

	actorCtx := newActorContext(addr, sys)
	retrier := retry.NewRetrier(3, 50*time.Millisecond, time.Second)
	var instance Actor
	err := retrier.Run(func() error {
		built, ferr := factory(addr, actorCtx)
		if ferr != nil {
			return ferr
		}
		instance = built
		return nil
	})
	if err != nil {
		sys.registry.Delete(addr.String())
		sys.notifyWatchers(addr)
		return ActorRef{}, fmt.Errorf("address=(%s) reincarnate: %w", addr.String(), aerrors.NewUserError(err))
	}

	rec := &actorRecord{
		addr:     addr,
		factory:  factory,
		ctx:      actorCtx,
		instance: instance,
		mailbox:  sys.mailboxFactory(),
		pattern:  installPattern(sys, instance),
	}
	rec.running.Store(true)
	sys.registry.Set(addr.String(), rec)
	go rec.run(sys)

	if restarter, ok := instance.(PostRestarter); ok {
		if err := restarter.PostRestart(context.Background(), reason); err != nil {
			sys.logger.Errorf("address=(%s) postrestart: %v", addr.String(), err)
		}
	}

	return ActorRef{addr: addr, system: sys}, nil
}

// Terminated is delivered to every watcher of an address removed from the
// registry, via a Tell carrying this value as the action payload.
type Terminated struct {
	Address address.Address
}

const terminatedActionType = "system.terminated"

func (sys *System) watch(watcher, watched address.Address) {
	key := watched.String()
	set, _ := sys.watchers.Get(key)
	if set == nil {
		set = make(map[string]struct{})
	}
	set[watcher.String()] = struct{}{}
	sys.watchers.Set(key, set)
}

func (sys *System) unwatch(watcher, watched address.Address) {
	key := watched.String()
	set, ok := sys.watchers.Get(key)
	if !ok {
		return
	}
	delete(set, watcher.String())
	if len(set) == 0 {
		sys.watchers.Delete(key)
	} else {
		sys.watchers.Set(key, set)
	}
}

func (sys *System) notifyWatchers(watched address.Address) {
	set, ok := sys.watchers.Get(watched.String())
	if !ok {
		return
	}
	sys.watchers.Delete(watched.String())

	for watcherAddr := range set {
		rec, ok := sys.registry.Get(watcherAddr)
		if !ok {
			continue
		}
		_ = rec.mailbox.Enqueue(&IncomingMessage{
			MessageID: uuid.NewString(),
			Address:   watcherAddr,
			Action:    Action{Type: terminatedActionType, Payload: Terminated{Address: watched}},
		})
	}
}
