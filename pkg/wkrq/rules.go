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
	"github.com/consensys/go-wkrq/pkg/util"
)

// RuleID identifies which tableau rule an application employed.  Rule
// identity is kept as a closed enumeration, with conversion to a display
// string happening only at the rendering boundary.
type RuleID uint8

const (
	// RuleTNot decomposes t:~f.
	RuleTNot RuleID = iota
	// RuleFNot decomposes f:~f.
	RuleFNot
	// RuleENot decomposes e:~f.
	RuleENot
	// RuleMNot decomposes m:~f.
	RuleMNot
	// RuleNNot decomposes n:~f.
	RuleNNot
	// RuleTAnd decomposes t:f&g.
	RuleTAnd
	// RuleFAnd decomposes f:f&g.
	RuleFAnd
	// RuleEAnd decomposes e:f&g.
	RuleEAnd
	// RuleMAnd decomposes m:f&g.
	RuleMAnd
	// RuleNAnd decomposes n:f&g.
	RuleNAnd
	// RuleTOr decomposes t:f|g.
	RuleTOr
	// RuleFOr decomposes f:f|g.
	RuleFOr
	// RuleEOr decomposes e:f|g.
	RuleEOr
	// RuleMOr decomposes m:f|g.
	RuleMOr
	// RuleNOr decomposes n:f|g.
	RuleNOr
	// RuleTImplies decomposes t:f->g.
	RuleTImplies
	// RuleFImplies decomposes f:f->g.
	RuleFImplies
	// RuleEImplies decomposes e:f->g.
	RuleEImplies
	// RuleMImplies decomposes m:f->g.
	RuleMImplies
	// RuleNImplies decomposes n:f->g.
	RuleNImplies
	// RuleTExists instantiates t:[∃X R]M with a fresh witness.
	RuleTExists
	// RuleFExists instantiates f:[∃X R]M.
	RuleFExists
	// RuleEExists instantiates e:[∃X R]M with a fresh constant.
	RuleEExists
	// RuleMExists combines the t and f existential cases.
	RuleMExists
	// RuleNExists combines the f and e existential cases.
	RuleNExists
	// RuleTForall instantiates t:[∀X R]M with an existing constant.
	RuleTForall
	// RuleFForall instantiates f:[∀X R]M with a fresh counterexample.
	RuleFForall
	// RuleEForall instantiates e:[∀X R]M with a fresh constant.
	RuleEForall
	// RuleMForall combines the t and f universal cases.
	RuleMForall
	// RuleNForall combines the f and e universal cases.
	RuleNForall
	// RuleMSplit expands m:f into its base signs when no connective rule
	// applies.
	RuleMSplit
	// RuleNSplit expands n:f into its base signs when no connective rule
	// applies.
	RuleNSplit
)

func (r RuleID) String() string {
	switch r {
	case RuleTNot:
		return "t:~"
	case RuleFNot:
		return "f:~"
	case RuleENot:
		return "e:~"
	case RuleMNot:
		return "m:~"
	case RuleNNot:
		return "n:~"
	case RuleTAnd:
		return "t:&"
	case RuleFAnd:
		return "f:&"
	case RuleEAnd:
		return "e:&"
	case RuleMAnd:
		return "m:&"
	case RuleNAnd:
		return "n:&"
	case RuleTOr:
		return "t:|"
	case RuleFOr:
		return "f:|"
	case RuleEOr:
		return "e:|"
	case RuleMOr:
		return "m:|"
	case RuleNOr:
		return "n:|"
	case RuleTImplies:
		return "t:->"
	case RuleFImplies:
		return "f:->"
	case RuleEImplies:
		return "e:->"
	case RuleMImplies:
		return "m:->"
	case RuleNImplies:
		return "n:->"
	case RuleTExists:
		return "t:∃"
	case RuleFExists:
		return "f:∃"
	case RuleEExists:
		return "e:∃"
	case RuleMExists:
		return "m:∃"
	case RuleNExists:
		return "n:∃"
	case RuleTForall:
		return "t:∀"
	case RuleFForall:
		return "f:∀"
	case RuleEForall:
		return "e:∀"
	case RuleMForall:
		return "m:∀"
	case RuleNForall:
		return "n:∀"
	case RuleMSplit:
		return "m"
	case RuleNSplit:
		return "n"
	}
	//
	panic("unreachable")
}

// Rule describes the outcome of applying a tableau rule to one signed
// formula.  The outer Branches slice is a disjunction of alternatives, whilst
// the signed formulas within a single branch are conjoined.  A one-branch
// rule extends the current branch; a multi-branch rule forks it.
type Rule struct {
	// ID of the rule applied.
	ID RuleID
	// Branches holds one conclusion set per alternative.
	Branches [][]SignedFormula
	// Instantiated identifies the primary constant a quantifier rule
	// instantiated with, for trace and rendering purposes.
	Instantiated util.Option[Constant]
	// Used holds every constant this application consumed or minted, which
	// the engine records against the originating node occurrence.
	Used []Constant
	// Recurring indicates the originating occurrence remains eligible for
	// further applications as new constants appear on its branch.
	Recurring bool
}

// Apply maps a signed formula to the rule decomposing it, if any.  Quantifier
// rules draw fresh constants from gen and select existing constants from the
// branch universe, skipping those already recorded as used for this
// occurrence.  An empty result means no rule applies: either the formula is a
// base-signed literal, or it is a recurring quantifier occurrence which has
// exhausted the current universe.  Callers treat an empty result as "leaf",
// never as an error.
func Apply(sf SignedFormula, gen *ConstantGen, existing []Constant, used ConstantSet) util.Option[Rule] {
	switch f := sf.Formula.(type) {
	case *Negation:
		return applyNegation(sf.Sign, f)
	case *Conjunction:
		return applyConjunction(sf.Sign, f)
	case *Disjunction:
		return applyDisjunction(sf.Sign, f)
	case *Implication:
		return applyImplication(sf.Sign, f)
	case *Exists:
		return applyExists(sf.Sign, f, gen, existing, used)
	case *Forall:
		return applyForall(sf.Sign, f, gen, existing, used)
	case *Atom, *Predicate, *Bilateral:
		return applySplit(sf.Sign, sf.Formula)
	}
	//
	panic("unreachable")
}

// Expand a meta-signed formula into its base signs.  This is the fallback for
// signed formulas with no connective-specific rule, which in practice means
// atomic ones.  Base-signed atomic formulas are literals and yield no rule.
func applySplit(sign Sign, f Formula) util.Option[Rule] {
	switch sign {
	case M:
		return some(newRule(RuleMSplit, branch(Signed(T, f)), branch(Signed(F, f))))
	case N:
		return some(newRule(RuleNSplit, branch(Signed(F, f)), branch(Signed(E, f))))
	}
	//
	return none()
}

func applyNegation(sign Sign, f *Negation) util.Option[Rule] {
	body := f.Body
	//
	switch sign {
	case T:
		return some(newRule(RuleTNot, branch(Signed(F, body))))
	case F:
		return some(newRule(RuleFNot, branch(Signed(T, body))))
	case E:
		return some(newRule(RuleENot, branch(Signed(E, body))))
	case M:
		return some(newRule(RuleMNot, branch(Signed(F, body)), branch(Signed(T, body))))
	case N:
		return some(newRule(RuleNNot, branch(Signed(T, body)), branch(Signed(E, body))))
	}
	//
	panic("unreachable")
}

// Observe the n rule repeats the f rule in full, including its (e,e) branch,
// exactly as in Ferguson's Definition 9.
func applyConjunction(sign Sign, f *Conjunction) util.Option[Rule] {
	lhs, rhs := f.Lhs, f.Rhs
	//
	switch sign {
	case T:
		return some(newRule(RuleTAnd, branch(Signed(T, lhs), Signed(T, rhs))))
	case F:
		return some(newRule(RuleFAnd,
			branch(Signed(F, lhs)),
			branch(Signed(F, rhs)),
			branch(Signed(E, lhs), Signed(E, rhs))))
	case E:
		return some(newRule(RuleEAnd, branch(Signed(E, lhs)), branch(Signed(E, rhs))))
	case M:
		return some(newRule(RuleMAnd,
			branch(Signed(T, lhs), Signed(T, rhs)),
			branch(Signed(F, lhs)),
			branch(Signed(F, rhs))))
	case N:
		return some(newRule(RuleNAnd,
			branch(Signed(F, lhs)),
			branch(Signed(F, rhs)),
			branch(Signed(E, lhs), Signed(E, rhs))))
	}
	//
	panic("unreachable")
}

func applyDisjunction(sign Sign, f *Disjunction) util.Option[Rule] {
	lhs, rhs := f.Lhs, f.Rhs
	//
	switch sign {
	case T:
		return some(newRule(RuleTOr,
			branch(Signed(T, lhs)),
			branch(Signed(T, rhs)),
			branch(Signed(E, lhs), Signed(E, rhs))))
	case F:
		return some(newRule(RuleFOr, branch(Signed(F, lhs), Signed(F, rhs))))
	case E:
		return some(newRule(RuleEOr, branch(Signed(E, lhs)), branch(Signed(E, rhs))))
	case M:
		return some(newRule(RuleMOr,
			branch(Signed(T, lhs)),
			branch(Signed(T, rhs)),
			branch(Signed(F, lhs), Signed(F, rhs))))
	case N:
		return some(newRule(RuleNOr,
			branch(Signed(F, lhs), Signed(F, rhs)),
			branch(Signed(E, lhs)),
			branch(Signed(E, rhs))))
	}
	//
	panic("unreachable")
}

func applyImplication(sign Sign, f *Implication) util.Option[Rule] {
	lhs, rhs := f.Lhs, f.Rhs
	//
	switch sign {
	case T:
		return some(newRule(RuleTImplies,
			branch(Signed(F, lhs)),
			branch(Signed(T, rhs)),
			branch(Signed(E, lhs), Signed(E, rhs))))
	case F:
		return some(newRule(RuleFImplies, branch(Signed(T, lhs), Signed(F, rhs))))
	case E:
		return some(newRule(RuleEImplies, branch(Signed(E, lhs)), branch(Signed(E, rhs))))
	case M:
		return some(newRule(RuleMImplies,
			branch(Signed(F, lhs)),
			branch(Signed(T, rhs)),
			branch(Signed(T, lhs), Signed(F, rhs))))
	case N:
		return some(newRule(RuleNImplies,
			branch(Signed(T, lhs), Signed(F, rhs)),
			branch(Signed(E, lhs)),
			branch(Signed(E, rhs))))
	}
	//
	panic("unreachable")
}

// ============================================================================
// Helpers
// ============================================================================

// Check whether the rule for a given signed formula yields exactly one
// branch.  The engine prefers such applications, since they extend a branch
// without forking it.
func singleBranch(sf SignedFormula) bool {
	switch sf.Formula.(type) {
	case *Negation:
		return sf.Sign.IsBase()
	case *Conjunction:
		return sf.Sign == T
	case *Disjunction:
		return sf.Sign == F
	case *Implication:
		return sf.Sign == F
	case *Exists:
		return sf.Sign == T
	case *Forall:
		return sf.Sign == F
	}
	//
	return false
}

func newRule(id RuleID, branches ...[]SignedFormula) Rule {
	return Rule{id, branches, util.None[Constant](), nil, false}
}

func branch(fs ...SignedFormula) []SignedFormula {
	return fs
}

func some(r Rule) util.Option[Rule] {
	return util.Some(r)
}

func none() util.Option[Rule] {
	return util.None[Rule]()
}
