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
	"slices"

	"github.com/consensys/go-wkrq/pkg/util"
)

// branchState is the engine's working view of one branch under construction.
// The underlying nodes live in the shared arena; this state tracks what the
// branch asserts (for closure checks and duplicate suppression), its constant
// universe, its outstanding obligations and its recurring quantifier
// occurrences.  Forking a rule clones the state once per alternative, after
// which the clones evolve independently.
type branchState struct {
	// leaf is the node new conclusions attach beneath.
	leaf NodeID
	// index maps every signed formula asserted on this branch to the node
	// which first asserted it.
	index *util.HashMap[SignedFormula, NodeID]
	// constants is the branch universe, in order of first appearance.
	constants []Constant
	// members is the membership view of constants.
	members ConstantSet
	// agenda holds nodes whose rule has not yet fired, in creation order.
	agenda []NodeID
	// recurring holds quantifier occurrences eligible to fire again as the
	// universe grows.
	recurring []NodeID
	// used records, per recurring occurrence, the constants already
	// instantiated on this branch.
	used map[NodeID]ConstantSet
	// closed indicates a contradiction was found.
	closed bool
}

func newBranchState() *branchState {
	return &branchState{
		leaf:      0,
		index:     util.NewHashMap[SignedFormula, NodeID](64),
		constants: nil,
		members:   NewConstantSet(),
		agenda:    nil,
		recurring: nil,
		used:      make(map[NodeID]ConstantSet),
		closed:    false,
	}
}

// Clone this branch state, such that the clone can evolve independently.
func (p *branchState) clone() *branchState {
	used := make(map[NodeID]ConstantSet, len(p.used))
	//
	for id, cs := range p.used {
		used[id] = cs.Clone()
	}
	//
	return &branchState{
		leaf:      p.leaf,
		index:     p.index.Clone(),
		constants: slices.Clone(p.constants),
		members:   p.members.Clone(),
		agenda:    slices.Clone(p.agenda),
		recurring: slices.Clone(p.recurring),
		used:      used,
		closed:    p.closed,
	}
}

// Record a node's signed formula against this branch, registering any
// constants it mentions and checking it against the formulas already present.
// Returns the clashing node when the addition closes the branch, and
// otherwise indicates whether the formula was already asserted (in which case
// it needs no further expansion here).
func (p *branchState) add(tableau *Tableau, id NodeID) (clash util.Option[NodeID], duplicate bool) {
	sf := tableau.Node(id).Formula
	duplicate = p.index.Insert(sf, id)
	//
	p.registerConstants(sf.Formula)
	// Meta-signed formulas never close a branch directly; they are expanded
	// into base signs first.
	if !sf.Sign.IsBase() {
		return util.None[NodeID](), duplicate
	}
	// Two distinct base signs on the same formula clash.
	for _, sign := range []Sign{T, F, E} {
		if sign == sf.Sign {
			continue
		}
		//
		if other, ok := p.index.Get(Signed(sign, sf.Formula)); ok {
			return util.Some(other), duplicate
		}
	}
	//
	return util.None[NodeID](), duplicate
}

func (p *branchState) registerConstants(f Formula) {
	for _, c := range Constants(f) {
		if !p.members.Contains(c) {
			p.members.Insert(c)
			p.constants = append(p.constants, c)
		}
	}
}

// Record constants a rule application consumed or minted against its
// originating occurrence, preventing that occurrence from firing on them
// again.
func (p *branchState) recordUsed(id NodeID, cs []Constant) {
	if len(cs) == 0 {
		return
	}
	//
	set, ok := p.used[id]
	if !ok {
		set = NewConstantSet()
		p.used[id] = set
	}
	//
	for _, c := range cs {
		set.Insert(c)
	}
}

// usedBy returns the constants a given occurrence has already been
// instantiated with on this branch.
func (p *branchState) usedBy(id NodeID) ConstantSet {
	return p.used[id]
}

// Pop the next obligation off the agenda, preferring one whose rule extends
// the branch without forking it.  This keeps tableaux small without
// sacrificing the stable, creation-order default.
func (p *branchState) pop(tableau *Tableau) (NodeID, bool) {
	if len(p.agenda) == 0 {
		return 0, false
	}
	//
	at := 0
	//
	for i, id := range p.agenda {
		if singleBranch(tableau.Node(id).Formula) {
			at = i
			break
		}
	}
	//
	id := p.agenda[at]
	p.agenda = slices.Delete(p.agenda, at, at+1)
	//
	return id, true
}

// enqueue a node for expansion, unless its formula was already asserted on
// this branch.
func (p *branchState) enqueue(id NodeID, duplicate bool) {
	if !duplicate {
		p.agenda = append(p.agenda, id)
	}
}

// recur registers a recurring quantifier occurrence.
func (p *branchState) recur(id NodeID) {
	if !slices.Contains(p.recurring, id) {
		p.recurring = append(p.recurring, id)
	}
}
