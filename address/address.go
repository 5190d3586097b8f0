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

// Package address provides the canonical representation of actor addresses.
//
// An Address is a forward-slash separated path rooted at a system prefix,
// e.g. "/system/orders/checkout". Addresses are the sole identifier of an
// actor within a System: they are generated once at actorOf time and never
// mutate afterwards.
package address

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultSystemPrefix is the root segment every canonical address is
// anchored under when the caller does not supply one explicitly.
const DefaultSystemPrefix = "/system"

// Address identifies a single actor by its canonical path.
//
// Address is an immutable value: all derivation methods (Child, Parent)
// return a new Address rather than mutating the receiver.
type Address struct {
	path   string
	prefix string
}

// New wraps an already-canonical path under the given system prefix.
// It performs no normalization; callers that need normalization and
// UUID-generation-on-empty semantics should use Create.
func New(path, prefix string) Address {
	return Address{path: path, prefix: prefix}
}

// Create builds the canonical address for a requested local path.
//
// Rules:
//   - an empty path generates a fresh UUIDv4 as the local segment
//   - a path that does not already start with prefix is anchored under it
//   - the result never carries a duplicated prefix or trailing slash
func Create(path, prefix string) Address {
	if prefix == "" {
		prefix = DefaultSystemPrefix
	}
	prefix = strings.TrimSuffix(prefix, "/")

	if path == "" {
		path = uuid.NewString()
	}

	if path == prefix || strings.HasPrefix(path, prefix+"/") {
		return Address{path: strings.TrimSuffix(path, "/"), prefix: prefix}
	}

	joined := prefix + "/" + strings.TrimPrefix(path, "/")
	return Address{path: strings.TrimSuffix(joined, "/"), prefix: prefix}
}

// Child derives the canonical address of a locally-named child of x.
// An empty name generates a fresh UUIDv4, matching Create's behavior for
// the root case.
func (x Address) Child(name string) Address {
	if name == "" {
		name = uuid.NewString()
	}
	return Address{path: x.path + "/" + name, prefix: x.prefix}
}

// Parent returns the address obtained by dropping the last path segment.
// The parent of the system root is the system prefix itself.
func (x Address) Parent() Address {
	idx := strings.LastIndex(x.path, "/")
	if idx <= len(x.prefix) {
		return Address{path: x.prefix, prefix: x.prefix}
	}
	return Address{path: x.path[:idx], prefix: x.prefix}
}

// Name returns the final path segment, i.e. the actor's local name.
func (x Address) Name() string {
	idx := strings.LastIndex(x.path, "/")
	if idx < 0 {
		return x.path
	}
	return x.path[idx+1:]
}

// Prefix returns the system prefix this address is anchored under.
func (x Address) Prefix() string {
	return x.prefix
}

// String returns the canonical path, e.g. "/system/checkout".
func (x Address) String() string {
	return x.path
}

// IsZero reports whether x is the zero-value Address (no path set).
func (x Address) IsZero() bool {
	return x.path == ""
}

// Equals reports whether x and y denote the same canonical path.
func (x Address) Equals(y Address) bool {
	return x.path == y.path
}

// Validate checks that the address is canonical: non-empty and anchored
// under its own prefix (or equal to it, for the system root itself).
func (x Address) Validate() error {
	if x.path == "" {
		return ErrInvalidAddress
	}
	prefix := x.prefix
	if prefix == "" {
		prefix = DefaultSystemPrefix
	}
	if x.path != prefix && !strings.HasPrefix(x.path, prefix+"/") {
		return ErrInvalidAddress
	}
	return nil
}
