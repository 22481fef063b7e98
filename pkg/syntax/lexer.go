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
package syntax

import (
	"github.com/consensys/go-wkrq/pkg/util"
	"github.com/consensys/go-wkrq/pkg/util/source"
	"github.com/consensys/go-wkrq/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "("
const LBRACE uint = 2

// RBRACE signals ")"
const RBRACE uint = 3

// LBRACKET signals "[", which opens a restricted quantifier.
const LBRACKET uint = 4

// RBRACKET signals "]"
const RBRACKET uint = 5

// COMMA signals ","
const COMMA uint = 6

// COLON signals ":", which separates a sign from its formula.
const COLON uint = 7

// STAR signals "*", which marks the negative half of a bilateral predicate.
const STAR uint = 8

// NOT signals negation ("~", "¬" or "!")
const NOT uint = 9

// AND signals conjunction ("&" or "∧")
const AND uint = 10

// OR signals disjunction ("|" or "∨")
const OR uint = 11

// IMPLIES signals implication ("->" or "→")
const IMPLIES uint = 12

// FORALL signals the universal quantifier symbol "∀".  The keyword forms
// ("forall", "all") lex as identifiers and are recognised by the parser.
const FORALL uint = 13

// EXISTS signals the existential quantifier symbol "∃".  The keyword forms
// ("exists", "some") lex as identifiers and are recognised by the parser.
const EXISTS uint = 14

// TURNSTILE signals "|-" or "⊢", separating premises from conclusion.
const TURNSTILE uint = 15

// IDENTIFIER signals an atom, predicate, term or keyword name.
const IDENTIFIER uint = 16

// Rule for describing whitespace
var whitespace lex.Scanner = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n')))

var identifierStart lex.Scanner = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner = lex.And(identifierStart, identifierRest)

// lexing rules.  Note, "|-" must precede "|" since rules are tried in order
// and the first match wins.
var rules []lex.LexRule = []lex.LexRule{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('['), LBRACKET),
	lex.Rule(lex.Unit(']'), RBRACKET),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(lex.Unit('*'), STAR),
	lex.Rule(lex.Unit('-', '>'), IMPLIES),
	lex.Rule(lex.Unit('→'), IMPLIES),
	lex.Rule(lex.Unit('|', '-'), TURNSTILE),
	lex.Rule(lex.Unit('⊢'), TURNSTILE),
	lex.Rule(lex.Unit('|'), OR),
	lex.Rule(lex.Unit('∨'), OR),
	lex.Rule(lex.Unit('&'), AND),
	lex.Rule(lex.Unit('∧'), AND),
	lex.Rule(lex.Unit('~'), NOT),
	lex.Rule(lex.Unit('¬'), NOT),
	lex.Rule(lex.Unit('!'), NOT),
	lex.Rule(lex.Unit('∀'), FORALL),
	lex.Rule(lex.Unit('∃'), EXISTS),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof(), END_OF),
}

// Lex a given source file into a sequence of zero or more tokens, along with
// any syntax errors arising.  Whitespace tokens are removed.
func Lex(srcfile *source.File) ([]lex.Token, []source.SyntaxError) {
	var (
		lexer = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
		// errors
		return nil, []source.SyntaxError{*err}
	}
	// Remove any whitespace
	tokens = util.RemoveMatching(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	// Done
	return tokens, nil
}
