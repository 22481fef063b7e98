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

// Package syntax provides a lexer and recursive descent parser for the
// formula language of the tableau engine.  Connectives are written "~", "&",
// "|" and "->" (or their unicode equivalents), with precedence "~" > "&" >
// "|" > "->" and right-associative implication.  Restricted quantifiers are
// written "[forall X Human(X)]Mortal(X)" or "[exists X Student(X)]Smart(X)".
// Identifiers beginning with an upper-case letter denote variables in term
// position; all other identifiers denote constants.  A trailing "*" on a
// predicate name denotes the negative half of a bilateral predicate.
package syntax

import (
	"slices"

	"github.com/consensys/go-wkrq/pkg/util/source"
	"github.com/consensys/go-wkrq/pkg/util/source/lex"
	"github.com/consensys/go-wkrq/pkg/wkrq"
)

// ParseFormula parses a given input string into a formula, or produces one or
// more syntax errors.
func ParseFormula(input string) (wkrq.Formula, []source.SyntaxError) {
	parser, errs := NewParser(source.NewSourceFile("formula", []byte(input)))
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return parser.ParseFormula()
}

// ParseSigned parses a given input string into a signed formula.  The sign
// prefix ("t:", "f:", "e:", "m:" or "n:") is optional and defaults to t.
func ParseSigned(input string) (wkrq.SignedFormula, []source.SyntaxError) {
	var empty wkrq.SignedFormula
	//
	parser, errs := NewParser(source.NewSourceFile("formula", []byte(input)))
	//
	if len(errs) != 0 {
		return empty, errs
	}
	//
	return parser.ParseSigned()
}

// ParseInference parses a given input string of the form "p1, ..., pn |- c"
// into an inference with premises p1 .. pn and conclusion c.  The premises
// may be empty, as in "|- p | ~p".
func ParseInference(input string) (wkrq.Inference, []source.SyntaxError) {
	var empty wkrq.Inference
	//
	parser, errs := NewParser(source.NewSourceFile("inference", []byte(input)))
	//
	if len(errs) != 0 {
		return empty, errs
	}
	//
	return parser.ParseInference()
}

// HasSignPrefix reports whether an input begins with an explicit sign prefix,
// such as "e:" in "e:p & q".
func HasSignPrefix(input string) bool {
	parser, errs := NewParser(source.NewSourceFile("formula", []byte(input)))
	//
	if len(errs) != 0 || !parser.follows(IDENTIFIER) || parser.tokens[parser.index+1].Kind != COLON {
		return false
	}
	//
	_, ok := signOf(parser.string(parser.lookahead()))
	//
	return ok
}

// Parser provides a recursive descent parser for the formula language.  As a
// side effect of parsing, every constructed formula is recorded in a source
// map, allowing callers (such as editor tooling) to relate formulas back to
// their originating text.
type Parser struct {
	srcfile *source.File
	srcmap  *source.Map[wkrq.Formula]
	tokens  []lex.Token
	// Position within the tokens
	index int
}

// NewParser constructs a parser for a given source file, tokenising its
// contents in the process.
func NewParser(srcfile *source.File) (*Parser, []source.SyntaxError) {
	tokens, errs := Lex(srcfile)
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return &Parser{srcfile, source.NewSourceMap[wkrq.Formula](*srcfile), tokens, 0}, nil
}

// SourceMap returns the mapping from parsed formulas to spans of the original
// text.  Every formula constructed during parsing is registered, including
// all subformulas.
func (p *Parser) SourceMap() *source.Map[wkrq.Formula] {
	return p.srcmap
}

// Done determines whether or not the parser has parsed all the available
// tokens.
func (p *Parser) Done() bool {
	return p.index+1 >= len(p.tokens)
}

// ParseFormula parses the entire input as a single formula.
func (p *Parser) ParseFormula() (wkrq.Formula, []source.SyntaxError) {
	f, errs := p.parseImplication()
	// Check all parsed
	if len(errs) == 0 && !p.Done() {
		return nil, p.syntaxErrors(p.lookahead(), "unknown token")
	}
	//
	return f, errs
}

// ParseSigned parses the entire input as a formula with an optional sign
// prefix, defaulting to t.
func (p *Parser) ParseSigned() (wkrq.SignedFormula, []source.SyntaxError) {
	var (
		empty wkrq.SignedFormula
		sign  = wkrq.T
	)
	// Look for an explicit sign prefix.  Since "t" is also a valid atom, this
	// requires two tokens of lookahead.
	if p.follows(IDENTIFIER) && p.tokens[p.index+1].Kind == COLON {
		if s, ok := signOf(p.string(p.lookahead())); ok {
			p.expect(IDENTIFIER)
			p.expect(COLON)
			//
			sign = s
		}
	}
	//
	f, errs := p.ParseFormula()
	//
	if len(errs) != 0 {
		return empty, errs
	}
	//
	return wkrq.Signed(sign, f), nil
}

// ParseInference parses the entire input as zero or more comma-separated
// premises, a turnstile and a conclusion.
func (p *Parser) ParseInference() (wkrq.Inference, []source.SyntaxError) {
	var (
		empty    wkrq.Inference
		premises []wkrq.Formula
	)
	// Parse premises (if any)
	for !p.follows(TURNSTILE) {
		f, errs := p.parseImplication()
		//
		if len(errs) != 0 {
			return empty, errs
		}
		//
		premises = append(premises, f)
		//
		if !p.match(COMMA) {
			break
		}
	}
	//
	if !p.match(TURNSTILE) {
		return empty, p.syntaxErrors(p.lookahead(), "expected '|-'")
	}
	// Parse conclusion
	conclusion, errs := p.parseImplication()
	//
	if len(errs) != 0 {
		return empty, errs
	} else if !p.Done() {
		return empty, p.syntaxErrors(p.lookahead(), "unknown token")
	}
	//
	return wkrq.Inference{Premises: premises, Conclusion: conclusion}, nil
}

// Implication associates to the right, hence "p -> q -> r" parses as
// "p -> (q -> r)".
func (p *Parser) parseImplication() (wkrq.Formula, []source.SyntaxError) {
	start := p.lookahead().Span.Start()
	//
	lhs, errs := p.parseDisjunction()
	//
	if len(errs) != 0 || !p.match(IMPLIES) {
		return lhs, errs
	}
	//
	rhs, errs := p.parseImplication()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return p.record(wkrq.Implies(lhs, rhs), start), nil
}

func (p *Parser) parseDisjunction() (wkrq.Formula, []source.SyntaxError) {
	start := p.lookahead().Span.Start()
	//
	term, errs := p.parseConjunction()
	//
	for len(errs) == 0 && p.match(OR) {
		rhs, rhsErrs := p.parseConjunction()
		//
		if len(rhsErrs) != 0 {
			return nil, rhsErrs
		}
		// Disjunction associates to the left
		term = p.record(wkrq.Or(term, rhs), start)
	}
	//
	return term, errs
}

func (p *Parser) parseConjunction() (wkrq.Formula, []source.SyntaxError) {
	start := p.lookahead().Span.Start()
	//
	term, errs := p.parseUnary()
	//
	for len(errs) == 0 && p.match(AND) {
		rhs, rhsErrs := p.parseUnary()
		//
		if len(rhsErrs) != 0 {
			return nil, rhsErrs
		}
		// Conjunction associates to the left
		term = p.record(wkrq.And(term, rhs), start)
	}
	//
	return term, errs
}

func (p *Parser) parseUnary() (wkrq.Formula, []source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case NOT:
		return p.parseNegation()
	case LBRACKET:
		return p.parseQuantified()
	case LBRACE:
		return p.parseBracketed()
	case IDENTIFIER:
		return p.parseApplied()
	}
	//
	return nil, p.syntaxErrors(token, "unknown formula")
}

func (p *Parser) parseNegation() (wkrq.Formula, []source.SyntaxError) {
	start := p.lookahead().Span.Start()
	//
	p.expect(NOT)
	//
	body, errs := p.parseUnary()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return p.record(wkrq.Not(body), start), nil
}

func (p *Parser) parseBracketed() (wkrq.Formula, []source.SyntaxError) {
	p.expect(LBRACE)
	//
	term, errs := p.parseImplication()
	//
	if len(errs) == 0 && !p.match(RBRACE) {
		return nil, p.syntaxErrors(p.lookahead(), "expected ')'")
	}
	//
	return term, errs
}

// Parse a restricted quantifier "[Q X R]M", where Q is a quantifier, X the
// bound variable, R the restriction formula and M the matrix.  The matrix
// binds tightly, hence "[forall X R(X)]M(X) & p" parses as a conjunction
// whose left operand is the quantified formula.
func (p *Parser) parseQuantified() (wkrq.Formula, []source.SyntaxError) {
	start := p.lookahead().Span.Start()
	//
	p.expect(LBRACKET)
	//
	universal, errs := p.parseQuantifier()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	variable, errs := p.parseBinder()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	restriction, errs := p.parseImplication()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	if !p.match(RBRACKET) {
		return nil, p.syntaxErrors(p.lookahead(), "expected ']'")
	}
	//
	matrix, errs := p.parseUnary()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	if universal {
		return p.record(wkrq.NewForall(variable, restriction, matrix), start), nil
	}
	//
	return p.record(wkrq.NewExists(variable, restriction, matrix), start), nil
}

// Parse a quantifier, returning true for the universal quantifier and false
// for the existential.  The keyword forms lex as identifiers and are only
// meaningful here; elsewhere "forall" et al are ordinary identifiers.
func (p *Parser) parseQuantifier() (bool, []source.SyntaxError) {
	token := p.lookahead()
	//
	switch {
	case p.match(FORALL):
		return true, nil
	case p.match(EXISTS):
		return false, nil
	case token.Kind == IDENTIFIER:
		switch p.string(token) {
		case "forall", "all":
			p.expect(IDENTIFIER)
			return true, nil
		case "exists", "some":
			p.expect(IDENTIFIER)
			return false, nil
		}
	}
	//
	return false, p.syntaxErrors(token, "expected quantifier")
}

func (p *Parser) parseBinder() (wkrq.Variable, []source.SyntaxError) {
	var empty wkrq.Variable
	//
	if !p.follows(IDENTIFIER) {
		return empty, p.syntaxErrors(p.lookahead(), "expected quantified variable")
	}
	//
	token := p.expect(IDENTIFIER)
	name := p.string(token)
	// Variables are distinguished from constants by their case
	if !upperCase(name) {
		return empty, p.syntaxErrors(token, "quantified variable must begin with an upper-case letter")
	}
	//
	return wkrq.Variable{Name: name}, nil
}

// Parse an applied identifier, i.e. a propositional atom "p", a predicate
// "Human(X)" or the negative half of a bilateral predicate "P*(X)".
func (p *Parser) parseApplied() (wkrq.Formula, []source.SyntaxError) {
	var (
		start = p.lookahead().Span.Start()
		id    = p.expect(IDENTIFIER)
		name  = p.string(id)
		dual  = p.match(STAR)
	)
	// Bare identifiers are propositional atoms
	if !dual && !p.follows(LBRACE) {
		return p.record(wkrq.NewAtom(name), start), nil
	}
	//
	var args []wkrq.Term
	//
	if p.match(LBRACE) {
		for {
			term, errs := p.parseTerm()
			//
			if len(errs) != 0 {
				return nil, errs
			}
			//
			args = append(args, term)
			//
			if !p.match(COMMA) {
				break
			}
		}
		//
		if !p.match(RBRACE) {
			return nil, p.syntaxErrors(p.lookahead(), "expected ')'")
		}
	}
	//
	if dual {
		return p.record(wkrq.NewBilateral(name, true, args...), start), nil
	}
	//
	return p.record(wkrq.NewPredicate(name, args...), start), nil
}

func (p *Parser) parseTerm() (wkrq.Term, []source.SyntaxError) {
	if !p.follows(IDENTIFIER) {
		return nil, p.syntaxErrors(p.lookahead(), "expected term")
	}
	//
	token := p.expect(IDENTIFIER)
	name := p.string(token)
	//
	if upperCase(name) {
		return wkrq.Variable{Name: name}, nil
	}
	//
	return wkrq.Constant{Name: name}, nil
}

// Record the span of a freshly constructed formula in the source map.  The
// span runs from a given start position up to the end of the most recently
// consumed token.
func (p *Parser) record(f wkrq.Formula, start int) wkrq.Formula {
	end := p.tokens[p.index-1].Span.End()
	p.srcmap.Put(f, source.NewSpan(start, end))
	//
	return f
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}

// Determine which sign (if any) a given identifier denotes.
func signOf(name string) (wkrq.Sign, bool) {
	return wkrq.ParseSign(name)
}

func upperCase(name string) bool {
	return name[0] >= 'A' && name[0] <= 'Z'
}
