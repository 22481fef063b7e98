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
	"context"
	"fmt"
	"strings"

	"github.com/consensys/go-wkrq/pkg/syntax"
	"github.com/consensys/go-wkrq/pkg/util/source"
	"github.com/consensys/go-wkrq/pkg/wkrq"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	//
	if doc == nil {
		return nil, nil
	}
	//
	var (
		number = int(params.Position.Line)
		col    = int(params.Position.Character)
	)
	//
	if number >= len(doc.lines) {
		return nil, nil
	}
	//
	line := doc.lines[number]
	// Signs and the turnstile lie outside the formula source map
	if sign, span, ok := line.signSpan(); ok && span.Contains(col) {
		return hoverReply(number, span, signHover(sign)), nil
	}
	//
	if isInference(line.text) {
		for _, symbol := range []string{"|-", "⊢"} {
			if span, ok := findSymbol(line.text, symbol); ok && span.Contains(col) {
				return hoverReply(number, span, turnstileHover), nil
			}
		}
	}
	//
	if line.srcmap == nil {
		return nil, nil
	}
	//
	formula, span := line.formulaAt(col)
	//
	if formula == nil {
		return nil, nil
	}
	//
	return hoverReply(number, span, hoverText(formula)), nil
}

func hoverReply(line int, span source.Span, text string) *protocol.Hover {
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(span.Start())},
			End:   protocol.Position{Line: uint32(line), Character: uint32(span.End())},
		},
	}
}

// Find the innermost formula whose span contains the given column.
func (p *documentLine) formulaAt(col int) (wkrq.Formula, source.Span) {
	var (
		best     wkrq.Formula
		bestSpan source.Span
	)
	//
	p.srcmap.Each(func(f wkrq.Formula, span source.Span) {
		if span.Contains(col) && (best == nil || span.Length() < bestSpan.Length()) {
			best, bestSpan = f, span
		}
	})
	//
	return best, bestSpan
}

// Locate the sign prefix of this line (if any), returning the sign along
// with the rune span covering the sign and its colon.
func (p *documentLine) signSpan() (wkrq.Sign, source.Span, bool) {
	if !syntax.HasSignPrefix(p.text) {
		return wkrq.T, source.Span{}, false
	}
	// The first token is the sign and the second its colon
	var (
		runes = []rune(p.text)
		start = 0
	)
	//
	for start < len(runes) && (runes[start] == ' ' || runes[start] == '\t') {
		start++
	}
	//
	colon := start
	//
	for colon < len(runes) && runes[colon] != ':' {
		colon++
	}
	//
	sign, _ := wkrq.ParseSign(strings.TrimSpace(string(runes[start:colon])))
	//
	return sign, source.NewSpan(start, colon+1), true
}

// Locate a symbol within the text, returning its rune span.
func findSymbol(text string, symbol string) (source.Span, bool) {
	var (
		runes  = []rune(text)
		target = []rune(symbol)
	)
	//
	for i := 0; i+len(target) <= len(runes); i++ {
		if string(runes[i:i+len(target)]) == symbol {
			return source.NewSpan(i, i+len(target)), true
		}
	}
	//
	return source.Span{}, false
}

// ============================================================================
// Hover content
// ============================================================================

const turnstileHover = "**Turnstile** `|-`\n\nThe inference is valid when every tableau branch closes " +
	"with the premises signed `t` and the conclusion signed `n`."

func signHover(sign wkrq.Sign) string {
	var summary string
	//
	switch sign {
	case wkrq.T:
		summary = "the formula is true."
	case wkrq.F:
		summary = "the formula is false."
	case wkrq.E:
		summary = "the formula is undefined: neither true nor false.  Undefinedness propagates through every connective."
	case wkrq.M:
		summary = "the formula is meaningful: either true or false.  Branches into `t` and `f`."
	case wkrq.N:
		summary = "the formula is not true: either false or undefined.  Branches into `f` and `e`."
	}
	//
	return fmt.Sprintf("**Sign** `%s`\n\nAsserts %s", sign, summary)
}

func hoverText(f wkrq.Formula) string {
	switch f := f.(type) {
	case *wkrq.Atom:
		return fmt.Sprintf("**Atom** `%s`\n\nTakes exactly one of the truth values `t`, `f` or `e`.", f)
	case *wkrq.Predicate:
		return fmt.Sprintf("**Predicate** `%s`\n\nGround instances take exactly one of the truth values `t`, `f` or `e`.", f)
	case *wkrq.Bilateral:
		return bilateralHover(f)
	case *wkrq.Negation:
		return fmt.Sprintf("**Negation** `%s`\n\n| φ | ¬φ |\n|---|---|\n| t | f |\n| e | e |\n| f | t |", f)
	case *wkrq.Conjunction:
		return fmt.Sprintf("**Conjunction** `%s`\n\n%s\nAny `e` operand makes the whole conjunction `e`.",
			f, truthTable("∧", andTable))
	case *wkrq.Disjunction:
		return fmt.Sprintf("**Disjunction** `%s`\n\n%s\nAny `e` operand makes the whole disjunction `e`.",
			f, truthTable("∨", orTable))
	case *wkrq.Implication:
		return fmt.Sprintf("**Implication** `%s`\n\n%s\nAny `e` operand makes the whole implication `e`.",
			f, truthTable("→", impliesTable))
	case *wkrq.Exists:
		return fmt.Sprintf("**Restricted existential** `%s`\n\nQuantifies `%s` over the restriction only: "+
			"the weak disjunction of `restriction & matrix` across the instances of `%s`.",
			f, f.Var.Name, f.Var.Name)
	case *wkrq.Forall:
		return fmt.Sprintf("**Restricted universal** `%s`\n\nQuantifies `%s` over the restriction only: "+
			"the weak conjunction of `restriction -> matrix` across the instances of `%s`.",
			f, f.Var.Name, f.Var.Name)
	}
	//
	return ""
}

func bilateralHover(f *wkrq.Bilateral) string {
	if f.Negative {
		return fmt.Sprintf("**Bilateral predicate** `%s`\n\nThe negative half of `%s`, tracked independently "+
			"of the positive half: a branch may assert both halves (glut) or neither (gap).", f, f.Name)
	}
	//
	return fmt.Sprintf("**Bilateral predicate** `%s`\n\nThe positive half of `%s`, tracked independently "+
		"of the negative half `%s*`.", f, f.Name, f.Name)
}

// Truth-value rows and columns are ordered t, e, f.
var (
	andTable     = [3][3]string{{"t", "e", "f"}, {"e", "e", "e"}, {"f", "e", "f"}}
	orTable      = [3][3]string{{"t", "e", "t"}, {"e", "e", "e"}, {"t", "e", "f"}}
	impliesTable = [3][3]string{{"t", "e", "f"}, {"e", "e", "e"}, {"t", "e", "t"}}
)

func truthTable(op string, rows [3][3]string) string {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "| %s | t | e | f |\n|---|---|---|---|\n", op)
	//
	for i, value := range []string{"t", "e", "f"} {
		fmt.Fprintf(&builder, "| **%s** | %s | %s | %s |\n", value, rows[i][0], rows[i][1], rows[i][2])
	}
	//
	return builder.String()
}
