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
package wkrq

import (
	"fmt"
	"strings"
)

// Formula represents a well-formed formula of wKrQ (or, when bilateral
// predicates occur, of ACrQ).  Formulas form a closed union: propositional
// atoms, predicates, bilateral predicates, the compounds ~ & | ->, and the
// restricted quantifiers.  All implementations are immutable and structurally
// compared, meaning formulas can be used directly as keys of util.HashMap.
type Formula interface {
	// Equals checks whether this formula is structurally identical to
	// another.
	Equals(Formula) bool
	// Hash returns a structural hashcode consistent with Equals.
	Hash() uint64
	// Substitute returns the formula resulting from applying a given
	// substitution to every term occurring within this formula.
	Substitute(Substitution) Formula
	// String returns this formula in concrete syntax.
	String() string
	// Seals this interface against external implementations, ensuring the
	// rule engine's dispatch is exhaustive.
	isFormula()
}

// Operator precedences used for parenthesisation when printing.  Implication
// binds weakest and is right associative; negation and the restricted
// quantifiers bind tightest.
const (
	precImplies = 1
	precOr      = 2
	precAnd     = 3
	precUnary   = 4
)

// Type tags mixed into structural hashcodes, ensuring formulas of different
// shapes hash apart.
const (
	tagAtom uint64 = iota + 1
	tagPredicate
	tagBilateralPos
	tagBilateralNeg
	tagNegation
	tagConjunction
	tagDisjunction
	tagImplication
	tagExists
	tagForall
)

// ============================================================================
// Atom
// ============================================================================

// Atom represents a propositional atom, such as p or q.  Atoms carry no
// terms and are always ground.
type Atom struct {
	Name string
}

// NewAtom constructs a propositional atom with a given name.
func NewAtom(name string) *Atom {
	return &Atom{name}
}

// Equals implementation for Formula interface.
func (p *Atom) Equals(o Formula) bool {
	if q, ok := o.(*Atom); ok {
		return p.Name == q.Name
	}
	//
	return false
}

// Hash implementation for Formula interface.
func (p *Atom) Hash() uint64 {
	return hashString(tagAtom, p.Name)
}

// Substitute implementation for Formula interface.  Atoms contain no terms,
// hence substitution is the identity.
func (p *Atom) Substitute(Substitution) Formula {
	return p
}

func (p *Atom) String() string {
	return p.Name
}

func (p *Atom) isFormula() {}

// ============================================================================
// Predicate
// ============================================================================

// Predicate represents an applied predicate, such as Human(socrates) or
// Loves(X,y).  A predicate is ground when every argument is a constant.
type Predicate struct {
	Name string
	Args []Term
}

// NewPredicate constructs a predicate from a name and zero or more argument
// terms.
func NewPredicate(name string, args ...Term) *Predicate {
	return &Predicate{name, args}
}

// Ground reports whether every argument of this predicate is a constant.
// Only ground predicates are ever recorded in a model.
func (p *Predicate) Ground() bool {
	return groundTerms(p.Args)
}

// Equals implementation for Formula interface.
func (p *Predicate) Equals(o Formula) bool {
	q, ok := o.(*Predicate)
	//
	if !ok || p.Name != q.Name || len(p.Args) != len(q.Args) {
		return false
	}
	//
	for i := range p.Args {
		if p.Args[i] != q.Args[i] {
			return false
		}
	}
	//
	return true
}

// Hash implementation for Formula interface.
func (p *Predicate) Hash() uint64 {
	return hashTerms(hashString(tagPredicate, p.Name), p.Args)
}

// Substitute implementation for Formula interface.
func (p *Predicate) Substitute(subst Substitution) Formula {
	return &Predicate{p.Name, substituteTerms(p.Args, subst)}
}

func (p *Predicate) String() string {
	return formatApplied(p.Name, p.Args)
}

func (p *Predicate) isFormula() {}

// ============================================================================
// Bilateral
// ============================================================================

// Bilateral represents an ACrQ bilateral predicate, carrying both a positive
// relation R and its independent dual R*.  The Negative flag selects which
// side this particular occurrence denotes; terms are shared by both sides.
type Bilateral struct {
	Name     string
	Args     []Term
	Negative bool
}

// NewBilateral constructs one side of a bilateral predicate.
func NewBilateral(name string, negative bool, args ...Term) *Bilateral {
	return &Bilateral{name, args, negative}
}

// Dual returns the opposite side of this bilateral predicate, with terms
// unchanged.
func (p *Bilateral) Dual() *Bilateral {
	return &Bilateral{p.Name, p.Args, !p.Negative}
}

// Halves decomposes this bilateral predicate into the two ordinary
// predicates R(args) and R*(args), irrespective of which side this occurrence
// denotes.
func (p *Bilateral) Halves() (*Predicate, *Predicate) {
	return &Predicate{p.Name, p.Args}, &Predicate{p.Name + "*", p.Args}
}

// Ground reports whether every argument of this bilateral predicate is a
// constant.
func (p *Bilateral) Ground() bool {
	return groundTerms(p.Args)
}

// Equals implementation for Formula interface.
func (p *Bilateral) Equals(o Formula) bool {
	q, ok := o.(*Bilateral)
	//
	if !ok || p.Name != q.Name || p.Negative != q.Negative || len(p.Args) != len(q.Args) {
		return false
	}
	//
	for i := range p.Args {
		if p.Args[i] != q.Args[i] {
			return false
		}
	}
	//
	return true
}

// Hash implementation for Formula interface.
func (p *Bilateral) Hash() uint64 {
	tag := tagBilateralPos
	if p.Negative {
		tag = tagBilateralNeg
	}
	//
	return hashTerms(hashString(tag, p.Name), p.Args)
}

// Substitute implementation for Formula interface.
func (p *Bilateral) Substitute(subst Substitution) Formula {
	return &Bilateral{p.Name, substituteTerms(p.Args, subst), p.Negative}
}

func (p *Bilateral) String() string {
	name := p.Name
	if p.Negative {
		name = name + "*"
	}
	//
	return formatApplied(name, p.Args)
}

func (p *Bilateral) isFormula() {}

// ============================================================================
// Negation
// ============================================================================

// Negation represents ~f.
type Negation struct {
	Body Formula
}

// Not constructs the negation of a given formula.
func Not(f Formula) Formula {
	return &Negation{f}
}

// Equals implementation for Formula interface.
func (p *Negation) Equals(o Formula) bool {
	if q, ok := o.(*Negation); ok {
		return p.Body.Equals(q.Body)
	}
	//
	return false
}

// Hash implementation for Formula interface.
func (p *Negation) Hash() uint64 {
	tag := tagNegation
	return tag*0x9e3779b97f4a7c15 ^ p.Body.Hash()
}

// Substitute implementation for Formula interface.
func (p *Negation) Substitute(subst Substitution) Formula {
	return &Negation{p.Body.Substitute(subst)}
}

func (p *Negation) String() string {
	return "~" + format(p.Body, precUnary)
}

func (p *Negation) isFormula() {}

// ============================================================================
// Binary compounds
// ============================================================================

// Conjunction represents f & g under weak Kleene semantics.
type Conjunction struct {
	Lhs Formula
	Rhs Formula
}

// And constructs the conjunction of two formulas.
func And(lhs Formula, rhs Formula) Formula {
	return &Conjunction{lhs, rhs}
}

// Equals implementation for Formula interface.
func (p *Conjunction) Equals(o Formula) bool {
	if q, ok := o.(*Conjunction); ok {
		return p.Lhs.Equals(q.Lhs) && p.Rhs.Equals(q.Rhs)
	}
	//
	return false
}

// Hash implementation for Formula interface.
func (p *Conjunction) Hash() uint64 {
	return hashBinary(tagConjunction, p.Lhs, p.Rhs)
}

// Substitute implementation for Formula interface.
func (p *Conjunction) Substitute(subst Substitution) Formula {
	return &Conjunction{p.Lhs.Substitute(subst), p.Rhs.Substitute(subst)}
}

func (p *Conjunction) String() string {
	return formatBinary(p.Lhs, "&", p.Rhs, precAnd, false)
}

func (p *Conjunction) isFormula() {}

// Disjunction represents f | g under weak Kleene semantics.
type Disjunction struct {
	Lhs Formula
	Rhs Formula
}

// Or constructs the disjunction of two formulas.
func Or(lhs Formula, rhs Formula) Formula {
	return &Disjunction{lhs, rhs}
}

// Equals implementation for Formula interface.
func (p *Disjunction) Equals(o Formula) bool {
	if q, ok := o.(*Disjunction); ok {
		return p.Lhs.Equals(q.Lhs) && p.Rhs.Equals(q.Rhs)
	}
	//
	return false
}

// Hash implementation for Formula interface.
func (p *Disjunction) Hash() uint64 {
	return hashBinary(tagDisjunction, p.Lhs, p.Rhs)
}

// Substitute implementation for Formula interface.
func (p *Disjunction) Substitute(subst Substitution) Formula {
	return &Disjunction{p.Lhs.Substitute(subst), p.Rhs.Substitute(subst)}
}

func (p *Disjunction) String() string {
	return formatBinary(p.Lhs, "|", p.Rhs, precOr, false)
}

func (p *Disjunction) isFormula() {}

// Implication represents f -> g under weak Kleene semantics.
type Implication struct {
	Lhs Formula
	Rhs Formula
}

// Implies constructs the implication from one formula to another.
func Implies(lhs Formula, rhs Formula) Formula {
	return &Implication{lhs, rhs}
}

// Equals implementation for Formula interface.
func (p *Implication) Equals(o Formula) bool {
	if q, ok := o.(*Implication); ok {
		return p.Lhs.Equals(q.Lhs) && p.Rhs.Equals(q.Rhs)
	}
	//
	return false
}

// Hash implementation for Formula interface.
func (p *Implication) Hash() uint64 {
	return hashBinary(tagImplication, p.Lhs, p.Rhs)
}

// Substitute implementation for Formula interface.
func (p *Implication) Substitute(subst Substitution) Formula {
	return &Implication{p.Lhs.Substitute(subst), p.Rhs.Substitute(subst)}
}

func (p *Implication) String() string {
	return formatBinary(p.Lhs, "->", p.Rhs, precImplies, true)
}

func (p *Implication) isFormula() {}

// ============================================================================
// Restricted quantifiers
// ============================================================================

// Exists represents the restricted existential [∃X R(X)]M(X), asserting some
// individual satisfying the restriction also satisfies the matrix.
type Exists struct {
	Var         Variable
	Restriction Formula
	Matrix      Formula
}

// NewExists constructs a restricted existential quantifier.
func NewExists(v Variable, restriction Formula, matrix Formula) *Exists {
	return &Exists{v, restriction, matrix}
}

// Instantiate both the restriction and matrix of this quantifier with a given
// term, substituting it for the bound variable.
func (p *Exists) Instantiate(t Term) (Formula, Formula) {
	subst := Substitution{p.Var.Name: t}
	return p.Restriction.Substitute(subst), p.Matrix.Substitute(subst)
}

// Equals implementation for Formula interface.
func (p *Exists) Equals(o Formula) bool {
	if q, ok := o.(*Exists); ok {
		return p.Var == q.Var && p.Restriction.Equals(q.Restriction) && p.Matrix.Equals(q.Matrix)
	}
	//
	return false
}

// Hash implementation for Formula interface.
func (p *Exists) Hash() uint64 {
	return hashBinary(hashString(tagExists, p.Var.Name), p.Restriction, p.Matrix)
}

// Substitute implementation for Formula interface.  The bound variable is
// shadowed and never substituted for.
func (p *Exists) Substitute(subst Substitution) Formula {
	subst = shadow(subst, p.Var)
	return &Exists{p.Var, p.Restriction.Substitute(subst), p.Matrix.Substitute(subst)}
}

func (p *Exists) String() string {
	return fmt.Sprintf("[∃%s %s]%s", p.Var.Name, p.Restriction.String(), format(p.Matrix, precUnary))
}

func (p *Exists) isFormula() {}

// Forall represents the restricted universal [∀X R(X)]M(X), asserting every
// individual satisfying the restriction also satisfies the matrix.
type Forall struct {
	Var         Variable
	Restriction Formula
	Matrix      Formula
}

// NewForall constructs a restricted universal quantifier.
func NewForall(v Variable, restriction Formula, matrix Formula) *Forall {
	return &Forall{v, restriction, matrix}
}

// Instantiate both the restriction and matrix of this quantifier with a given
// term, substituting it for the bound variable.
func (p *Forall) Instantiate(t Term) (Formula, Formula) {
	subst := Substitution{p.Var.Name: t}
	return p.Restriction.Substitute(subst), p.Matrix.Substitute(subst)
}

// Equals implementation for Formula interface.
func (p *Forall) Equals(o Formula) bool {
	if q, ok := o.(*Forall); ok {
		return p.Var == q.Var && p.Restriction.Equals(q.Restriction) && p.Matrix.Equals(q.Matrix)
	}
	//
	return false
}

// Hash implementation for Formula interface.
func (p *Forall) Hash() uint64 {
	return hashBinary(hashString(tagForall, p.Var.Name), p.Restriction, p.Matrix)
}

// Substitute implementation for Formula interface.  The bound variable is
// shadowed and never substituted for.
func (p *Forall) Substitute(subst Substitution) Formula {
	subst = shadow(subst, p.Var)
	return &Forall{p.Var, p.Restriction.Substitute(subst), p.Matrix.Substitute(subst)}
}

func (p *Forall) String() string {
	return fmt.Sprintf("[∀%s %s]%s", p.Var.Name, p.Restriction.String(), format(p.Matrix, precUnary))
}

func (p *Forall) isFormula() {}

// ============================================================================
// Helpers
// ============================================================================

// Atomic reports whether a given formula is atomic, i.e. a propositional
// atom, a predicate or one side of a bilateral predicate.  Atomic formulas
// are exactly those which base-signed rules cannot decompose further.
func Atomic(f Formula) bool {
	switch f.(type) {
	case *Atom, *Predicate, *Bilateral:
		return true
	}
	//
	return false
}

// Constants returns every constant mentioned anywhere within a given formula,
// in left-to-right order of first occurrence.
func Constants(f Formula) []Constant {
	return collectConstants(f, nil)
}

func collectConstants(f Formula, cs []Constant) []Constant {
	appendTerms := func(terms []Term) {
		for _, t := range terms {
			if c, ok := t.(Constant); ok && !containsConstant(cs, c) {
				cs = append(cs, c)
			}
		}
	}
	//
	switch f := f.(type) {
	case *Atom:
		// no terms
	case *Predicate:
		appendTerms(f.Args)
	case *Bilateral:
		appendTerms(f.Args)
	case *Negation:
		cs = collectConstants(f.Body, cs)
	case *Conjunction:
		cs = collectConstants(f.Lhs, cs)
		cs = collectConstants(f.Rhs, cs)
	case *Disjunction:
		cs = collectConstants(f.Lhs, cs)
		cs = collectConstants(f.Rhs, cs)
	case *Implication:
		cs = collectConstants(f.Lhs, cs)
		cs = collectConstants(f.Rhs, cs)
	case *Exists:
		cs = collectConstants(f.Restriction, cs)
		cs = collectConstants(f.Matrix, cs)
	case *Forall:
		cs = collectConstants(f.Restriction, cs)
		cs = collectConstants(f.Matrix, cs)
	default:
		panic("unreachable")
	}
	//
	return cs
}

func containsConstant(cs []Constant, c Constant) bool {
	for _, d := range cs {
		if c == d {
			return true
		}
	}
	//
	return false
}

// Remove the binding for a bound variable from a substitution, since
// substitution never reaches through a binder for its own variable.
func shadow(subst Substitution, v Variable) Substitution {
	if _, ok := subst[v.Name]; !ok {
		return subst
	}
	// Clone without the bound variable
	nsubst := make(Substitution, len(subst))
	//
	for name, t := range subst {
		if name != v.Name {
			nsubst[name] = t
		}
	}
	//
	return nsubst
}

// Format a formula, bracketing it if its own precedence is below that
// required by the enclosing context.
func format(f Formula, outer int) string {
	var inner int
	//
	switch f.(type) {
	case *Implication:
		inner = precImplies
	case *Disjunction:
		inner = precOr
	case *Conjunction:
		inner = precAnd
	default:
		inner = precUnary
	}
	//
	if inner < outer {
		return "(" + f.String() + ")"
	}
	//
	return f.String()
}

// Format a binary compound at a given precedence.  Implication associates to
// the right; conjunction and disjunction to the left.
func formatBinary(lhs Formula, op string, rhs Formula, prec int, rightAssoc bool) string {
	lp, rp := prec, prec+1
	if rightAssoc {
		lp, rp = prec+1, prec
	}
	//
	return fmt.Sprintf("%s %s %s", format(lhs, lp), op, format(rhs, rp))
}

// Format an applied predicate name, e.g. "Loves(X,y)".  Nullary predicates
// print without brackets.
func formatApplied(name string, args []Term) string {
	if len(args) == 0 {
		return name
	}
	//
	var builder strings.Builder
	//
	builder.WriteString(name)
	builder.WriteString("(")
	//
	for i, t := range args {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(t.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// Mix the hashes of two subformulas into a tagged seed.
func hashBinary(tag uint64, lhs Formula, rhs Formula) uint64 {
	hash := tag * 0x9e3779b97f4a7c15
	hash ^= lhs.Hash() * 0xff51afd7ed558ccd
	hash ^= rhs.Hash() * 0xc4ceb9fe1a85ec53
	//
	return hash
}
