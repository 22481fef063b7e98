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

import (
	"slices"
	"testing"

	"github.com/consensys/go-wkrq/pkg/util/source"
)

func TestScanner_01(t *testing.T) {
	checkScan(t, Unit('('), "(", 1)
	checkScan(t, Unit('('), ")", 0)
	checkScan(t, Unit('('), "", 0)
}

func TestScanner_02(t *testing.T) {
	// Unit matches a sequence, not alternatives
	checkScan(t, Unit('-', '>'), "->", 2)
	checkScan(t, Unit('-', '>'), "->>", 2)
	checkScan(t, Unit('-', '>'), "-", 0)
	checkScan(t, Unit('-', '>'), ">-", 0)
}

func TestScanner_03(t *testing.T) {
	// Range is inclusive at both ends
	checkScan(t, Within('a', 'z'), "a", 1)
	checkScan(t, Within('a', 'z'), "z", 1)
	checkScan(t, Within('a', 'z'), "`", 0)
	checkScan(t, Within('a', 'z'), "{", 0)
}

func TestScanner_04(t *testing.T) {
	whitespace := Many(Or(Unit(' '), Unit('\t')))
	// Zero repetitions count as no match
	checkScan(t, whitespace, "x", 0)
	checkScan(t, whitespace, " ", 1)
	checkScan(t, whitespace, " \t ", 3)
	checkScan(t, whitespace, "  x ", 2)
}

func TestScanner_05(t *testing.T) {
	// First match wins, even when a later alternative is longer
	checkScan(t, Or(Unit('-'), Unit('-', '>')), "->", 1)
	checkScan(t, Or(Unit('-', '>'), Unit('-')), "->", 2)
}

func TestScanner_06(t *testing.T) {
	// Every conjunct must match, and the longest determines the width
	checkScan(t, And(Unit('-'), Unit('-', '>')), "->", 2)
	checkScan(t, And(Unit('-'), Unit('-', '>')), "-x", 0)
	checkScan(t, And(Within('a', 'z'), Many(Within('a', 'z'))), "abc1", 3)
}

func TestScanner_07(t *testing.T) {
	checkScan(t, Eof(), "", 1)
	checkScan(t, Eof(), "x", 0)
}

func TestLexer_01(t *testing.T) {
	checkLexer(t, "", 0,
		Token{END_OF, source.NewSpan(0, 0)})
}

func TestLexer_02(t *testing.T) {
	checkLexer(t, "p", 0,
		Token{IDENT, source.NewSpan(0, 1)},
		Token{END_OF, source.NewSpan(1, 1)})
}

func TestLexer_03(t *testing.T) {
	checkLexer(t, "pq ", 0,
		Token{IDENT, source.NewSpan(0, 2)},
		Token{WSPACE, source.NewSpan(2, 3)},
		Token{END_OF, source.NewSpan(3, 3)})
}

func TestLexer_04(t *testing.T) {
	checkLexer(t, "|-", 0,
		Token{TSTILE, source.NewSpan(0, 2)},
		Token{END_OF, source.NewSpan(2, 2)})
}

func TestLexer_05(t *testing.T) {
	checkLexer(t, "p->q", 0,
		Token{IDENT, source.NewSpan(0, 1)},
		Token{ARROW, source.NewSpan(1, 3)},
		Token{IDENT, source.NewSpan(3, 4)},
		Token{END_OF, source.NewSpan(4, 4)})
}

func TestLexer_06(t *testing.T) {
	checkLexer(t, "(p)", 0,
		Token{LPAREN, source.NewSpan(0, 1)},
		Token{IDENT, source.NewSpan(1, 2)},
		Token{RPAREN, source.NewSpan(2, 3)},
		Token{END_OF, source.NewSpan(3, 3)})
}

func TestLexer_07(t *testing.T) {
	// Lexing stops at the offending character
	checkLexer(t, "?", 1)
}

func TestLexer_08(t *testing.T) {
	checkLexer(t, "p?q", 2,
		Token{IDENT, source.NewSpan(0, 1)})
}

func TestLexer_09(t *testing.T) {
	// Dangling prefix of a two-character symbol
	checkLexer(t, "-", 1)
}

func TestLexer_10(t *testing.T) {
	checkLexer(t, " \t", 0,
		Token{WSPACE, source.NewSpan(0, 2)},
		Token{END_OF, source.NewSpan(2, 2)})
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const LPAREN uint = 2
const RPAREN uint = 3
const IDENT uint = 4
const ARROW uint = 5
const TSTILE uint = 6

// lexing rules
var rules []LexRule = []LexRule{
	Rule(Many(Or(Unit(' '), Unit('\t'))), WSPACE),
	Rule(Unit('('), LPAREN),
	Rule(Unit(')'), RPAREN),
	Rule(Unit('-', '>'), ARROW),
	Rule(Unit('|', '-'), TSTILE),
	Rule(And(Within('a', 'z'), Many(Within('a', 'z'))), IDENT),
	Rule(Eof(), END_OF),
}

func checkScan(t *testing.T, scanner Scanner, input string, expected uint) {
	if n := scanner([]rune(input)); n != expected {
		t.Errorf("scanned %d characters of %q, expected %d", n, input, expected)
	}
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	// Construct text lexer
	lexer := NewLexer(items, rules...)
	// Apply lexer
	tokens := lexer.Collect()
	//
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	} else if lexer.Remaining() != remainder {
		n := len(items) - int(lexer.Remaining())
		t.Errorf("unmatched items: %v", items[n:])
	}
}
