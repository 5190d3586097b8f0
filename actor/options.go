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
	"github.com/meridianhq/actorflow/address"
	"github.com/meridianhq/actorflow/internal/validation"
	"github.com/meridianhq/actorflow/log"
)

// Option configures a System at construction time.
type Option func(*options)

type options struct {
	prefix           string
	mailboxFactory   MailboxFactory
	messageScheduler Scheduler
	timeScheduler    Scheduler
	logger           log.Logger
}

func defaultOptions() *options {
	return &options{
		prefix:           address.DefaultSystemPrefix,
		mailboxFactory:   func() Mailbox { return NewDefaultMailbox() },
		messageScheduler: newQueueScheduler(),
		timeScheduler:    timerScheduler{},
		logger:           log.DefaultLogger,
	}
}

// WithSystemPrefix overrides the root segment addresses are anchored
// under. Must be a non-empty, slash-prefixed path.
func WithSystemPrefix(prefix string) Option {
	return func(o *options) {
		chain := validation.New(validation.AllErrors()).
			AddAssertion(prefix != "", "system prefix must not be empty").
			AddAssertion(len(prefix) > 0 && prefix[0] == '/', "system prefix must start with '/'")
		if err := chain.Validate(); err != nil {
			// An invalid prefix is a programmer error caught at
			// NewSystem construction time, not a runtime condition;
			// falling back to the default keeps NewSystem infallible
			// while still surfacing the mistake as a warning through
			// the logger configured when this option runs.
			o.logger.Warnf("invalid system prefix %q ignored: %v", prefix, err)
			return
		}
		o.prefix = prefix
	}
}

// WithMailboxFactory overrides the mailbox implementation installed for
// every newly spawned actor.
func WithMailboxFactory(factory MailboxFactory) Option {
	return func(o *options) { o.mailboxFactory = factory }
}

// WithMessageScheduler overrides the arbiter's ingress scheduler. The
// default is a single-goroutine FIFO queue; supplying another
// implementation is mainly useful for tests that need deterministic,
// steppable scheduling.
func WithMessageScheduler(scheduler Scheduler) Option {
	return func(o *options) { o.messageScheduler = scheduler }
}

// WithTimeScheduler overrides the scheduler used for microtask-like
// immediate continuations.
func WithTimeScheduler(scheduler Scheduler) Option {
	return func(o *options) { o.timeScheduler = scheduler }
}

// WithLogger overrides the System's logger. The default is
// log.DefaultLogger.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}
