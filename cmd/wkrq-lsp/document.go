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
package main

import (
	"strings"
	"sync"

	"github.com/consensys/go-wkrq/pkg/syntax"
	"github.com/consensys/go-wkrq/pkg/util/source"
	"github.com/consensys/go-wkrq/pkg/wkrq"
)

// documentStore tracks every document currently open in the client, keyed by
// URI.
type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[string]*document)}
}

// document holds the text of one open file together with the per-line parse
// results.  Since the file format is line oriented, each line is parsed
// independently and an error on one line never obscures its neighbours.
type document struct {
	uri     string
	content string
	version int32
	lines   []documentLine
}

// documentLine is the parse result for a single line.  Blank and comment
// lines carry no source map and no errors.
type documentLine struct {
	text string
	// Source map over every formula parsed on this line, with spans given as
	// column offsets.  Nil for blank, comment and unlexable lines.
	srcmap *source.Map[wkrq.Formula]
	errs   []source.SyntaxError
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	//
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	//
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		lines:   parseLines(content),
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	//
	delete(ds.docs, uri)
}

func parseLines(content string) []documentLine {
	var (
		texts = strings.Split(content, "\n")
		lines = make([]documentLine, len(texts))
	)
	//
	for i, text := range texts {
		lines[i] = parseLine(text)
	}
	//
	return lines
}

// Parse a single line as either an inference (when it contains a turnstile)
// or a signed formula.  The parse result itself is discarded; what matters
// here is the source map and any syntax errors.
func parseLine(text string) documentLine {
	line := documentLine{text: text}
	trimmed := strings.TrimSpace(text)
	// Blank and comment lines hold no formula
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return line
	}
	//
	parser, errs := syntax.NewParser(source.NewSourceFile("line", []byte(text)))
	//
	if len(errs) != 0 {
		line.errs = errs
		return line
	}
	//
	line.srcmap = parser.SourceMap()
	//
	if isInference(text) {
		_, line.errs = parser.ParseInference()
	} else {
		_, line.errs = parser.ParseSigned()
	}
	//
	return line
}

func isInference(text string) bool {
	return strings.Contains(text, "|-") || strings.Contains(text, "⊢")
}
