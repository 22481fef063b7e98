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

// Quantifier rules instantiate the bound variable with a constant.  Witness
// positions (t:∃, f:∀ and their contributions to the meta-sign rules) always
// mint a fresh constant, since reusing one already bound elsewhere would
// manufacture a false contradiction.  Universal positions (t:∀, and the
// existential f case) instead walk the branch universe one constant per
// application, minting fresh only when the universe is empty.  Such
// occurrences are recurring: they fire again whenever the branch gains a
// constant they have not yet used, and fall silent once the universe is
// exhausted.

func applyExists(sign Sign, f *Exists, gen *ConstantGen, existing []Constant, used ConstantSet) util.Option[Rule] {
	switch sign {
	case T:
		c := gen.Fresh()
		r, m := f.Instantiate(c)
		//
		return some(instantiated(newRule(RuleTExists,
			branch(Signed(T, r), Signed(T, m))), c, false))
	case F:
		return applyFalseExists(RuleFExists, f, gen, existing, used)
	case E:
		c := gen.Fresh()
		r, m := f.Instantiate(c)
		//
		return some(instantiated(newRule(RuleEExists,
			branch(Signed(E, r)),
			branch(Signed(E, m))), c, false))
	case M:
		// t case, with its own witness
		cw := gen.Fresh()
		rw, mw := f.Instantiate(cw)
		// f case
		rule := applyFalseExists(RuleMExists, f, gen, existing, used)
		//
		if rule.IsEmpty() {
			return rule
		}
		//
		combined := rule.Unwrap()
		combined.Branches = append(
			[][]SignedFormula{branch(Signed(T, rw), Signed(T, mw))},
			combined.Branches...)
		combined.Instantiated = util.Some(cw)
		combined.Used = append(combined.Used, cw)
		//
		return some(combined)
	case N:
		// f case
		rule := applyFalseExists(RuleNExists, f, gen, existing, used)
		//
		if rule.IsEmpty() {
			return rule
		}
		// e case, with its own constant
		ce := gen.Fresh()
		re, me := f.Instantiate(ce)
		//
		combined := rule.Unwrap()
		combined.Branches = append(combined.Branches,
			branch(Signed(E, re)),
			branch(Signed(E, me)))
		combined.Used = append(combined.Used, ce)
		//
		return some(combined)
	}
	//
	panic("unreachable")
}

// The false existential instantiates one universe constant c and one fresh
// constant c', branching on whether the restriction or the matrix fails at
// c'.  It recurs across the universe like a universal, so it also underpins
// the m and n existential cases.
func applyFalseExists(id RuleID, f *Exists, gen *ConstantGen, existing []Constant, used ConstantSet) util.Option[Rule] {
	c := chooseOrFresh(gen, existing, used)
	//
	if c.IsEmpty() {
		return none()
	}
	//
	cp := gen.Fresh()
	r, m := f.Instantiate(c.Unwrap())
	rp, mp := f.Instantiate(cp)
	//
	rule := newRule(id,
		branch(Signed(M, r), Signed(M, m), Signed(N, rp)),
		branch(Signed(M, r), Signed(M, m), Signed(N, mp)))
	rule.Instantiated = c
	rule.Used = []Constant{c.Unwrap(), cp}
	rule.Recurring = true
	//
	return some(rule)
}

func applyForall(sign Sign, f *Forall, gen *ConstantGen, existing []Constant, used ConstantSet) util.Option[Rule] {
	switch sign {
	case T:
		c := chooseOrFresh(gen, existing, used)
		//
		if c.IsEmpty() {
			return none()
		}
		//
		r, m := f.Instantiate(c.Unwrap())
		rule := newRule(RuleTForall, branch(Signed(F, r)), branch(Signed(T, m)))
		rule.Instantiated = c
		rule.Used = []Constant{c.Unwrap()}
		rule.Recurring = true
		//
		return some(rule)
	case F:
		// Always fresh: reusing an existential witness here would
		// manufacture a false contradiction.
		c := gen.Fresh()
		r, m := f.Instantiate(c)
		//
		return some(instantiated(newRule(RuleFForall,
			branch(Signed(T, r), Signed(F, m))), c, false))
	case E:
		c := gen.Fresh()
		r, m := f.Instantiate(c)
		//
		return some(instantiated(newRule(RuleEForall,
			branch(Signed(E, r)),
			branch(Signed(E, m))), c, false))
	case M:
		// t case across the universe
		c := chooseOrFresh(gen, existing, used)
		//
		if c.IsEmpty() {
			return none()
		}
		//
		r, m := f.Instantiate(c.Unwrap())
		// f case, with its own witness
		cw := gen.Fresh()
		rw, mw := f.Instantiate(cw)
		//
		rule := newRule(RuleMForall,
			branch(Signed(F, r)),
			branch(Signed(T, m)),
			branch(Signed(T, rw), Signed(F, mw)))
		rule.Instantiated = c
		rule.Used = []Constant{c.Unwrap(), cw}
		rule.Recurring = true
		//
		return some(rule)
	case N:
		// f case
		cw := gen.Fresh()
		rw, mw := f.Instantiate(cw)
		// e case, with its own constant
		ce := gen.Fresh()
		re, me := f.Instantiate(ce)
		//
		rule := newRule(RuleNForall,
			branch(Signed(T, rw), Signed(F, mw)),
			branch(Signed(E, re)),
			branch(Signed(E, me)))
		rule.Instantiated = util.Some(cw)
		rule.Used = []Constant{cw, ce}
		//
		return some(rule)
	}
	//
	panic("unreachable")
}

// Select the constant for a universe-walking instantiation: the first unused
// member of the branch universe, or fresh when the universe is empty.  Empty
// result means every existing constant has already been used.
func chooseOrFresh(gen *ConstantGen, existing []Constant, used ConstantSet) util.Option[Constant] {
	if len(existing) == 0 {
		return util.Some(gen.Fresh())
	}
	//
	return ChooseUniversal(existing, used)
}

func instantiated(rule Rule, c Constant, recurring bool) Rule {
	rule.Instantiated = util.Some(c)
	rule.Used = []Constant{c}
	rule.Recurring = recurring
	//
	return rule
}
