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
	"path"
	"strings"
)

// compileSelectionPattern anchors pattern under prefix (unless pattern is
// already absolute), strips one trailing slash, and returns a predicate
// matching canonical addresses against it.
//
// Glob matching is treated by the design as an externally-supplied utility
// with no assumption about its implementation; path.Match's segment-aware
// "*" (never crossing a "/") is the standard library's equivalent and
// requires no corpus dependency, so it is used directly here instead of a
// third-party glob matcher.
func compileSelectionPattern(pattern, prefix string) func(addr string) bool {
	if !strings.HasPrefix(pattern, "/") {
		pattern = strings.TrimSuffix(prefix, "/") + "/" + pattern
	}
	pattern = strings.TrimSuffix(pattern, "/")

	return func(addr string) bool {
		matched, err := path.Match(pattern, addr)
		return err == nil && matched
	}
}
