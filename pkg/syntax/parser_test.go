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
	"testing"

	"github.com/consensys/go-wkrq/pkg/util/source"
	"github.com/consensys/go-wkrq/pkg/wkrq"
)

// ============================================================================
// Formulas
// ============================================================================

func Test_Parse_01(t *testing.T) {
	testParse(t, "p", "p")
}

func Test_Parse_02(t *testing.T) {
	testParse(t, "~p", "~p")
}

func Test_Parse_03(t *testing.T) {
	testParse(t, "p & q", "p & q")
}

func Test_Parse_04(t *testing.T) {
	testParse(t, "p | q", "p | q")
}

func Test_Parse_05(t *testing.T) {
	testParse(t, "p -> q", "p -> q")
}

// Conjunction binds tighter than disjunction.
func Test_Parse_06(t *testing.T) {
	testParse(t, "p & q | r", "p & q | r")
	testParse(t, "p | q & r", "p | q & r")
}

// Implication associates to the right.
func Test_Parse_07(t *testing.T) {
	testParse(t, "p -> q -> r", "p -> q -> r")
	testParse(t, "(p -> q) -> r", "(p -> q) -> r")
}

func Test_Parse_08(t *testing.T) {
	testParse(t, "~(p & q)", "~(p & q)")
	testParse(t, "~~p", "~~p")
}

func Test_Parse_09(t *testing.T) {
	testParse(t, "p & (q | r)", "p & (q | r)")
	testParse(t, "(p | q) & r", "(p | q) & r")
}

func Test_Parse_10(t *testing.T) {
	testParse(t, "¬p ∧ q", "~p & q")
	testParse(t, "p ∨ q → r", "p | q -> r")
}

func Test_Parse_11(t *testing.T) {
	testParse(t, "p&q|r->s", "p & q | r -> s")
}

// ============================================================================
// Predicates and terms
// ============================================================================

func Test_Parse_20(t *testing.T) {
	testParse(t, "Human(socrates)", "Human(socrates)")
}

// Upper-case identifiers are variables in term position; lower-case ones are
// constants.
func Test_Parse_21(t *testing.T) {
	f, errs := ParseFormula("R(X, y)")
	//
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	//
	pred := f.(*wkrq.Predicate)
	//
	if _, ok := pred.Args[0].(wkrq.Variable); !ok {
		t.Errorf("expected variable, got %v", pred.Args[0])
	}
	//
	if _, ok := pred.Args[1].(wkrq.Constant); !ok {
		t.Errorf("expected constant, got %v", pred.Args[1])
	}
}

func Test_Parse_22(t *testing.T) {
	f, errs := ParseFormula("P*(a)")
	//
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	//
	b := f.(*wkrq.Bilateral)
	//
	if !b.Negative {
		t.Errorf("expected negative bilateral, got %s", b.String())
	}
	//
	testParse(t, "P*(a)", "P*(a)")
}

func Test_Parse_23(t *testing.T) {
	testParse(t, "R(X,y,z)", "R(X,y,z)")
}

// Quantifier keywords are ordinary identifiers outside of brackets.
func Test_Parse_24(t *testing.T) {
	testParse(t, "forall & some", "forall & some")
}

// ============================================================================
// Quantifiers
// ============================================================================

func Test_Parse_30(t *testing.T) {
	testParse(t, "[forall X Human(X)]Mortal(X)", "[∀X Human(X)]Mortal(X)")
}

func Test_Parse_31(t *testing.T) {
	testParse(t, "[exists X Student(X)]Smart(X)", "[∃X Student(X)]Smart(X)")
}

func Test_Parse_32(t *testing.T) {
	testParse(t, "[all X R(X)]M(X)", "[∀X R(X)]M(X)")
	testParse(t, "[some X R(X)]M(X)", "[∃X R(X)]M(X)")
}

func Test_Parse_33(t *testing.T) {
	testParse(t, "[∀X R(X)]M(X)", "[∀X R(X)]M(X)")
	testParse(t, "[∃X R(X)]M(X)", "[∃X R(X)]M(X)")
}

// The matrix binds tightly.
func Test_Parse_34(t *testing.T) {
	testParse(t, "[forall X R(X)]M(X) & p", "[∀X R(X)]M(X) & p")
	testParse(t, "[forall X R(X)](M(X) & p)", "[∀X R(X)](M(X) & p)")
}

func Test_Parse_35(t *testing.T) {
	testParse(t, "~[exists X R(X)]M(X)", "~[∃X R(X)]M(X)")
}

// Nested quantifiers.
func Test_Parse_36(t *testing.T) {
	testParse(t, "[forall X P(X)][exists Y R(Y)]S(X,Y)", "[∀X P(X)][∃Y R(Y)]S(X,Y)")
}

// ============================================================================
// Signed formulas
// ============================================================================

func Test_Parse_40(t *testing.T) {
	testParseSigned(t, "t:p", wkrq.T, "p")
	testParseSigned(t, "f:p", wkrq.F, "p")
	testParseSigned(t, "e:p", wkrq.E, "p")
	testParseSigned(t, "m:p", wkrq.M, "p")
	testParseSigned(t, "n:p", wkrq.N, "p")
}

// Missing sign prefix defaults to t.
func Test_Parse_41(t *testing.T) {
	testParseSigned(t, "p & q", wkrq.T, "p & q")
}

func Test_Parse_42(t *testing.T) {
	testParseSigned(t, "n: p -> q", wkrq.N, "p -> q")
}

// A bare sign letter is just an atom.
func Test_Parse_43(t *testing.T) {
	testParseSigned(t, "t", wkrq.T, "t")
	testParseSigned(t, "e:e", wkrq.E, "e")
}

func Test_Parse_44(t *testing.T) {
	testParseSigned(t, "m:[forall X R(X)]M(X)", wkrq.M, "[∀X R(X)]M(X)")
}

// ============================================================================
// Inferences
// ============================================================================

func Test_Parse_50(t *testing.T) {
	testParseInference(t, "p, p -> q |- q", 2, "p, p -> q |- q")
}

func Test_Parse_51(t *testing.T) {
	testParseInference(t, "|- p | ~p", 0, "|- p | ~p")
}

func Test_Parse_52(t *testing.T) {
	testParseInference(t, "[forall X Human(X)]Mortal(X), Human(socrates) |- Mortal(socrates)", 2,
		"[∀X Human(X)]Mortal(X), Human(socrates) |- Mortal(socrates)")
}

func Test_Parse_53(t *testing.T) {
	testParseInference(t, "p ⊢ p", 1, "p |- p")
}

// ============================================================================
// Syntax errors
// ============================================================================

func Test_Parse_60(t *testing.T) {
	testSyntaxError(t, "p &", "unknown formula")
}

func Test_Parse_61(t *testing.T) {
	testSyntaxError(t, "(p", "expected ')'")
}

func Test_Parse_62(t *testing.T) {
	testSyntaxError(t, "[forall x R(x)]M(x)", "quantified variable must begin with an upper-case letter")
}

func Test_Parse_63(t *testing.T) {
	testSyntaxError(t, "p q", "unknown token")
}

func Test_Parse_64(t *testing.T) {
	testSyntaxError(t, "", "unknown formula")
}

func Test_Parse_65(t *testing.T) {
	testSyntaxError(t, "p @ q", "unknown text encountered")
}

func Test_Parse_66(t *testing.T) {
	testSyntaxError(t, "[forall X R(X) M(X)", "expected ']'")
}

func Test_Parse_67(t *testing.T) {
	testSyntaxError(t, "R(X", "expected ')'")
	testSyntaxError(t, "R()", "expected term")
}

func Test_Parse_68(t *testing.T) {
	_, errs := ParseInference("p q |- r")
	//
	if len(errs) == 0 || errs[0].Message() != "expected '|-'" {
		t.Errorf("expected syntax error, got %v", errs)
	}
	//
	_, errs = ParseInference("p |-")
	//
	if len(errs) == 0 {
		t.Errorf("expected syntax error")
	}
}

// Error spans locate the offending token.
func Test_Parse_69(t *testing.T) {
	_, errs := ParseFormula("p & [forall x R(x)]M(x)")
	//
	if len(errs) != 1 {
		t.Fatalf("expected one syntax error, got %v", errs)
	}
	//
	span := errs[0].Span()
	//
	if span.Start() != 12 || span.End() != 13 {
		t.Errorf("expected span 12:13, got %d:%d", span.Start(), span.End())
	}
}

// ============================================================================
// Source map
// ============================================================================

func Test_Parse_70(t *testing.T) {
	parser, errs := NewParser(source.NewSourceFile("test", []byte("p & q")))
	//
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	//
	f, errs := parser.ParseFormula()
	//
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	// Whole formula spans the entire input
	span := parser.SourceMap().Get(f)
	//
	if span.Start() != 0 || span.End() != 5 {
		t.Errorf("expected span 0:5, got %d:%d", span.Start(), span.End())
	}
}

// All subformulas are registered.
func Test_Parse_71(t *testing.T) {
	parser, errs := NewParser(source.NewSourceFile("test", []byte("~p -> q")))
	//
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	//
	if _, errs = parser.ParseFormula(); len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	//
	count := 0
	parser.SourceMap().Each(func(wkrq.Formula, source.Span) { count++ })
	// Expecting ~p -> q, ~p, p and q
	if count != 4 {
		t.Errorf("expected 4 formulas in source map, got %d", count)
	}
}

// ============================================================================
// Framework
// ============================================================================

func testParse(t *testing.T, input string, expected string) {
	t.Helper()
	//
	f, errs := ParseFormula(input)
	//
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	} else if f.String() != expected {
		t.Errorf("parsed %q, expected %q", f.String(), expected)
	}
}

func testParseSigned(t *testing.T, input string, sign wkrq.Sign, expected string) {
	t.Helper()
	//
	sf, errs := ParseSigned(input)
	//
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	} else if sf.Sign != sign {
		t.Errorf("parsed sign %s, expected %s", sf.Sign, sign)
	} else if sf.Formula.String() != expected {
		t.Errorf("parsed %q, expected %q", sf.Formula.String(), expected)
	}
}

func testParseInference(t *testing.T, input string, premises int, expected string) {
	t.Helper()
	//
	inference, errs := ParseInference(input)
	//
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	} else if len(inference.Premises) != premises {
		t.Errorf("parsed %d premises, expected %d", len(inference.Premises), premises)
	} else if inference.String() != expected {
		t.Errorf("parsed %q, expected %q", inference.String(), expected)
	}
}

func testSyntaxError(t *testing.T, input string, msg string) {
	t.Helper()
	//
	_, errs := ParseFormula(input)
	//
	if len(errs) == 0 {
		t.Fatalf("expected syntax error on %q", input)
	} else if errs[0].Message() != msg {
		t.Errorf("got error %q, expected %q", errs[0].Message(), msg)
	}
}
