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

// ACrQ is the paraconsistent bilateral extension of wKrQ.  Every predicate R
// gains an independent dual R*, so that evidence for R and evidence against
// it (i.e. for R*) can coexist on one branch without closing it.  Closure
// remains purely structural: t:R(a) against t:R*(a) is a glut, not a clash,
// because the two sides are distinct formulas; only two base signs on the
// same side clash.  The extension is therefore a preprocessing step over the
// input formulas together with a bilateral reading of the resulting models.
package wkrq

import (
	"strings"

	"github.com/consensys/go-wkrq/pkg/util"
)

// TranslateBilateral rewrites a formula into its ACrQ form, replacing every
// predicate with the positive side of a bilateral pair.  In transparent mode
// a negation applied directly to a predicate collapses into the dual side,
// so ~P(a) becomes P*(a) and ~~P(a) becomes P(a) again.  Propositional atoms
// are left untouched: the bilateral reading applies to the predicate
// vocabulary only.
func TranslateBilateral(f Formula, transparent bool) Formula {
	switch f := f.(type) {
	case *Atom:
		return f
	case *Predicate:
		return &Bilateral{f.Name, f.Args, false}
	case *Bilateral:
		return f
	case *Negation:
		body := TranslateBilateral(f.Body, transparent)
		//
		if b, ok := body.(*Bilateral); ok && transparent {
			return b.Dual()
		}
		//
		return &Negation{body}
	case *Conjunction:
		return &Conjunction{TranslateBilateral(f.Lhs, transparent), TranslateBilateral(f.Rhs, transparent)}
	case *Disjunction:
		return &Disjunction{TranslateBilateral(f.Lhs, transparent), TranslateBilateral(f.Rhs, transparent)}
	case *Implication:
		return &Implication{TranslateBilateral(f.Lhs, transparent), TranslateBilateral(f.Rhs, transparent)}
	case *Exists:
		return &Exists{f.Var, TranslateBilateral(f.Restriction, transparent), TranslateBilateral(f.Matrix, transparent)}
	case *Forall:
		return &Forall{f.Var, TranslateBilateral(f.Restriction, transparent), TranslateBilateral(f.Matrix, transparent)}
	}
	//
	panic("unreachable")
}

// SolveACrQ constructs a tableau for one or more signed formulas under the
// bilateral reading, translating each before construction.  Transparent mode
// additionally collapses negated predicates into their duals.
func SolveACrQ(opts Options, transparent bool, initial ...SignedFormula) Result {
	translated := make([]SignedFormula, len(initial))
	//
	for i, sf := range initial {
		translated[i] = Signed(sf.Sign, TranslateBilateral(sf.Formula, transparent))
	}
	//
	return Solve(opts, translated...)
}

// ValidACrQ checks an inference under the bilateral reading.  Unlike the
// base logic, a premise pair P(a), ~P(a) does not explode: it yields a glut
// rather than closing every branch.
func ValidACrQ(opts Options, transparent bool, inference Inference) InferenceResult {
	premises := make([]Formula, len(inference.Premises))
	//
	for i, f := range inference.Premises {
		premises[i] = TranslateBilateral(f, transparent)
	}
	//
	conclusion := TranslateBilateral(inference.Conclusion, transparent)
	//
	return Valid(opts, Inference{premises, conclusion})
}

// ============================================================================
// Bilateral models
// ============================================================================

// InfoState classifies the joint information a branch carries about a
// bilateral pair R(a)/R*(a).
type InfoState uint8

const (
	// TrueOnly means R(a) is asserted true and R*(a) is not.
	TrueOnly InfoState = iota
	// FalseOnly means R*(a) is asserted true and R(a) is not.
	FalseOnly
	// Glut means both sides are asserted true.
	Glut
	// Gap means the pair is mentioned but neither side is asserted true.
	Gap
)

func (s InfoState) String() string {
	switch s {
	case TrueOnly:
		return "true"
	case FalseOnly:
		return "false"
	case Glut:
		return "both"
	case Gap:
		return "neither"
	}
	//
	panic("unreachable")
}

// BilateralModel reads a model's bilateral pairs into four-valued
// information states, one per grounded pair, keyed by the positive side.
// Propositional atoms and ordinary predicates pass through from the
// underlying model untouched.
type BilateralModel struct {
	// pairs lists the positive side of every classified pair, in branch
	// order.
	pairs []*Bilateral
	// states of those pairs.
	states *util.HashMap[atomKey, InfoState]
}

// Bilateralise classifies every bilateral pair a model mentions.  A pair is
// mentioned when either side occurs, under any base sign; it is a glut when
// both sides are asserted true, and a gap when neither is.
func Bilateralise(model Model) BilateralModel {
	bm := BilateralModel{
		pairs:  nil,
		states: util.NewHashMap[atomKey, InfoState](32),
	}
	//
	for _, atom := range model.Atoms() {
		b, ok := atom.(*Bilateral)
		//
		if !ok {
			continue
		}
		//
		pos := b
		if b.Negative {
			pos = b.Dual()
		}
		//
		if bm.states.ContainsKey(atomKey{pos}) {
			continue
		}
		//
		posTrue := model.Value(pos).UnwrapOr(E) == T
		negTrue := model.Value(pos.Dual()).UnwrapOr(E) == T
		//
		var state InfoState
		//
		switch {
		case posTrue && negTrue:
			state = Glut
		case posTrue:
			state = TrueOnly
		case negTrue:
			state = FalseOnly
		default:
			state = Gap
		}
		//
		bm.pairs = append(bm.pairs, pos)
		bm.states.Insert(atomKey{pos}, state)
	}
	//
	return bm
}

// Pairs lists the positive side of every classified pair, in branch order.
func (p BilateralModel) Pairs() []*Bilateral {
	return p.pairs
}

// State looks up the information state of the pair identified by a given
// positive side.
func (p BilateralModel) State(pos *Bilateral) util.Option[InfoState] {
	if state, ok := p.states.Get(atomKey{pos}); ok {
		return util.Some(state)
	}
	//
	return util.None[InfoState]()
}

func (p BilateralModel) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, pair := range p.pairs {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		state, _ := p.states.Get(atomKey{pair})
		builder.WriteString(pair.String())
		builder.WriteString("=")
		builder.WriteString(state.String())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
