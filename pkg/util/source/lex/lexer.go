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
package lex

import "github.com/consensys/go-wkrq/pkg/util/source"

// Token tags a span of the input with the kind of symbol it holds.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule pairs a scanner with the kind of token it produces.
type LexRule struct {
	scanner Scanner
	kind    uint
}

// Rule constructs a lexing rule which maps matching characters to a given
// token kind.
func Rule(scanner Scanner, kind uint) LexRule {
	return LexRule{scanner, kind}
}

// Lexer tokenises a sequence of characters under a fixed set of rules, tried
// in order with the first match winning.
type Lexer struct {
	input []rune
	index int
	rules []LexRule
}

// NewLexer constructs a lexer over a given input.
func NewLexer(input []rune, rules ...LexRule) *Lexer {
	return &Lexer{input, 0, rules}
}

// Index returns the current position of the lexer within the input.
func (p *Lexer) Index() uint {
	return uint(p.index)
}

// Remaining returns the number of characters not yet consumed.
func (p *Lexer) Remaining() uint {
	return uint(max(0, len(p.input)-p.index))
}

// Collect scans tokens until either the input is exhausted or no rule accepts
// the current position, leaving the index at the offending character in the
// latter case.
func (p *Lexer) Collect() []Token {
	var tokens []Token
	//
	for {
		token, ok := p.scan()
		//
		if !ok {
			return tokens
		}
		//
		tokens = append(tokens, token)
	}
}

// Scan a single token at the current position and advance past it.  Matches
// are clipped to the end of the input, hence an end-of-input match yields an
// empty span whilst still advancing (ensuring the scan terminates).
func (p *Lexer) scan() (Token, bool) {
	if p.index <= len(p.input) {
		for _, r := range p.rules {
			if n := r.scanner(p.input[p.index:]); n > 0 {
				end := min(len(p.input), p.index+int(n))
				token := Token{r.kind, source.NewSpan(p.index, end)}
				// Ensure progress on an empty span
				p.index = max(end, p.index+1)
				//
				return token, true
			}
		}
	}
	//
	return Token{}, false
}
