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

// Package errors defines the error taxonomy for the actor runtime, per the
// error handling design: UserError, InvalidReferenceError, UnknownActionError
// and LostDestinationError, plus the sentinel errors the System itself can
// return.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrDead indicates the target actor is not registered at its address.
	ErrDead = errors.New("actor is not alive")

	// ErrActorNotFound indicates that the specified actor could not be found
	// in the registry.
	ErrActorNotFound = errors.New("actor not found")

	// ErrActorAlreadyExists is returned when actorOf is given an address that
	// is already registered.
	ErrActorAlreadyExists = errors.New("actor already exists")

	// ErrInvalidAddress indicates an address is empty or not anchored under
	// its own system prefix.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidTimeout is returned when a timeout value is less than or
	// equal to zero.
	ErrInvalidTimeout = errors.New("invalid timeout")

	// ErrInvalidReference is added to GracefulStop's aggregated error for
	// each zero-value ActorRef it is given. Stop and Reincarnate do not
	// return it.
	ErrInvalidReference = errors.New("invalid actor reference")

	// ErrSystemNotStarted indicates the System has not been started.
	ErrSystemNotStarted = errors.New("actor system has not started")

	// ErrSystemAlreadyStarted indicates the System has already been started.
	ErrSystemAlreadyStarted = errors.New("actor system has already started")

	// ErrLostDestination is the Reason recorded on the dead letter when the
	// arbiter finds no actor registered at the envelope's address. It is not
	// returned to callers: a tell is dropped, and an ask resolves as a
	// cancellation (nil value, nil error).
	ErrLostDestination = errors.New("message lost: no actor at destination")

	// ErrUnknownAction is the default policy for mappedMethods dispatch when
	// an actor has no handler registered for the action's type. Actors using
	// the receive pattern may choose to ignore this instead.
	ErrUnknownAction = errors.New("actor has no handler for this action type")

	// ErrCancelled is a sentinel naming a response that completed via
	// cancellation rather than a value or an error. Nothing in this module
	// returns it or places it in MessageResponse.Errors: Ask reports a
	// cancellation as a nil value with a nil error.
	ErrCancelled = errors.New("message cancelled")
)

// UserError wraps an error raised by actor-supplied construction code: a
// Factory or PreStart failure during ActorOf, or a failed Reincarnate.
// Errors that a receive callback, a mappedMethods handler, or a
// setupReceive stream responds with reach Ask's caller unwrapped.
type UserError struct {
	cause error
}

// NewUserError wraps cause as a UserError. A nil cause returns nil.
func NewUserError(cause error) error {
	if cause == nil {
		return nil
	}
	return &UserError{cause: cause}
}

func (e *UserError) Error() string {
	return fmt.Sprintf("actor error: %v", e.cause)
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewErrActorNotFound formats ErrActorNotFound with the offending address.
func NewErrActorNotFound(addr string) error {
	return fmt.Errorf("address=(%s): %w", addr, ErrActorNotFound)
}

// NewErrActorAlreadyExists formats ErrActorAlreadyExists with the offending address.
func NewErrActorAlreadyExists(addr string) error {
	return fmt.Errorf("address=(%s): %w", addr, ErrActorAlreadyExists)
}

// NewErrUnknownAction formats ErrUnknownAction with the unhandled action type.
func NewErrUnknownAction(actionType string) error {
	return fmt.Errorf("type=(%s): %w", actionType, ErrUnknownAction)
}

// NewErrLostDestination formats ErrLostDestination with the addressed path.
func NewErrLostDestination(addr string) error {
	return fmt.Errorf("address=(%s): %w", addr, ErrLostDestination)
}
