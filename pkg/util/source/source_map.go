// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import (
	"fmt"
)

// Span identifies a contiguous region of the original text by its physical
// indices, rather than as a slice of the text itself.  Retaining the indices
// is what allows errors and hovers to be reported against the original text.
type Span struct {
	// Index of the first character in this span.
	start int
	// One past the index of the last character in this span.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}
	//
	return Span{start, end}
}

// Start returns the index of the first character of this span in the original
// text.
func (p Span) Start() int {
	return p.start
}

// End returns one past the index of the last character of this span in the
// original text.
func (p Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span.
func (p Span) Length() int {
	return p.end - p.start
}

// Contains checks whether a given character index falls within this span.
func (p Span) Contains(index int) bool {
	return p.start <= index && index < p.end
}

// Map records the span of original text from which each node of an AST was
// parsed.  This is what allows a tool working over the AST (e.g. an editor
// hover) to point back at the exact region of text responsible for a node.
type Map[T comparable] struct {
	// Span of original text for each registered node.
	spans map[T]Span
	// Source file being mapped over.
	srcfile File
}

// NewSourceMap constructs an initially empty source map over the given file.
func NewSourceMap[T comparable](srcfile File) *Map[T] {
	return &Map[T]{spans: make(map[T]Span), srcfile: srcfile}
}

// Put registers the span for a given node, which must not have been
// registered already.
func (p *Map[T]) Put(item T, span Span) {
	if _, ok := p.spans[item]; ok {
		panic(fmt.Sprintf("duplicate source mapping for %v", item))
	}
	//
	p.spans[item] = span
}

// Get returns the span registered for a given node, or panics if the node was
// never registered.
func (p *Map[T]) Get(item T) Span {
	span, ok := p.spans[item]
	//
	if !ok {
		panic(fmt.Sprintf("missing source mapping for %v", item))
	}
	//
	return span
}

// Each applies a given function to every registered node along with its span.
// Iteration order is unspecified.
func (p *Map[T]) Each(fn func(T, Span)) {
	for item, span := range p.spans {
		fn(item, span)
	}
}
