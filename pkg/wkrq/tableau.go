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
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-wkrq/pkg/util"
)

// Options configure tableau construction.  The zero value gives an unbounded
// search reporting one model.
type Options struct {
	// MaxNodes bounds the size of the derivation tree, with zero meaning
	// unbounded.  Interacting quantifier occurrences can in principle keep
	// feeding one another fresh constants, so bounded callers should always
	// set this; tripping the bound yields an aborted result rather than a
	// silent partial answer.
	MaxNodes uint
	// Trace records every rule application in order, for diagnostic tooling.
	Trace bool
	// AllModels extracts a model from every open branch, rather than from
	// the first only.
	AllModels bool
}

// Stats summarise the shape of a completed construction.
type Stats struct {
	// TotalNodes in the derivation tree.
	TotalNodes uint
	// OpenBranches which saturated without closing.
	OpenBranches uint
	// ClosedBranches on which a contradiction was found.
	ClosedBranches uint
	// Applications counts rule applications performed.
	Applications uint
}

// Result of a tableau construction.  Exactly one of three outcomes holds:
// satisfiable (some branch saturated open, with models to show for it),
// unsatisfiable (every branch closed) or aborted (the node budget tripped
// before either could be established).  Aborted must be checked before
// Satisfiable is trusted.
type Result struct {
	// Satisfiable indicates at least one branch saturated without closing.
	Satisfiable bool
	// Aborted indicates the search exceeded its node budget.  No open
	// branch had saturated by then, so satisfiability was not established
	// either way.
	Aborted bool
	// Models extracted from open branches, in branch creation order.
	Models []Model
	// OpenLeaves identifies the leaf of every open branch.
	OpenLeaves []NodeID
	// Stats of the construction.
	Stats Stats
	// Tableau holds the full derivation tree, for rendering.
	Tableau *Tableau
	// Trace of rule applications, when requested.
	Trace []TraceStep
}

// Solve constructs a tableau for one or more signed formulas, determining
// whether they are jointly satisfiable.  The initial formulas seed the root
// chain of the tree; construction then repeatedly applies rules until every
// branch is closed or saturated, or the node budget trips.
func Solve(opts Options, initial ...SignedFormula) Result {
	if len(initial) == 0 {
		panic("tableau requires at least one signed formula")
	}
	//
	e := &engine{
		tableau: NewTableau(),
		gen:     NewConstantGen(),
		opts:    opts,
	}
	// Fresh constants must never collide with input constants.
	for _, sf := range initial {
		for _, c := range Constants(sf.Formula) {
			e.gen.Reserve(c.Name)
		}
	}
	// Seed the root chain.
	state := newBranchState()
	parent := util.None[NodeID]()
	//
	for _, sf := range initial {
		id := e.tableau.Add(parent, sf, util.None[RuleID](), util.None[Constant]())
		parent = util.Some(id)
		state.leaf = id
		clash, duplicate := state.add(e.tableau, id)
		//
		if !state.closed && clash.HasValue() {
			e.tableau.MarkClosed(id, clash.Unwrap())
			state.closed = true
		} else {
			state.enqueue(id, duplicate)
		}
	}
	//
	e.run(state)
	//
	return e.result()
}

// engine drives construction: it owns the arena, the fresh constant
// generator and the accumulating statistics, whilst branch states carry the
// per-branch view.
type engine struct {
	tableau *Tableau
	gen     *ConstantGen
	opts    Options
	stats   Stats
	trace   []TraceStep
	// openLeaves collects the leaf of each saturated open branch, in
	// completion order (leftmost first).
	openLeaves []NodeID
	aborted    bool
}

// Work a branch until it closes, saturates or forks (in which case the forks
// are explored recursively, leftmost first, and this state is consumed).
func (p *engine) run(state *branchState) {
	for !state.closed {
		if p.aborted || p.overBudget() {
			p.aborted = true
			return
		}
		//
		id, rule, ok := p.next(state)
		//
		if !ok {
			break
		}
		//
		if !p.apply(state, id, rule) {
			// Forked
			return
		}
	}
	// Branch terminal: closed or saturated.
	if state.closed {
		p.stats.ClosedBranches++
	} else {
		p.stats.OpenBranches++
		p.openLeaves = append(p.openLeaves, state.leaf)
	}
}

// Select the next rule application for a branch: obligations come off the
// agenda first, in creation order with non-forking rules preferred; once the
// agenda drains, recurring quantifier occurrences are probed in registration
// order.  Returns false when the branch has saturated.
func (p *engine) next(state *branchState) (NodeID, Rule, bool) {
	for {
		id, ok := state.pop(p.tableau)
		//
		if !ok {
			break
		}
		//
		sf := p.tableau.Node(id).Formula
		//
		if rule := Apply(sf, p.gen, state.constants, state.usedBy(id)); rule.HasValue() {
			return id, rule.Unwrap(), true
		}
		// No rule: a literal, which needs no expansion.
	}
	// Agenda drained; probe recurring occurrences.
	for _, id := range state.recurring {
		sf := p.tableau.Node(id).Formula
		//
		if rule := Apply(sf, p.gen, state.constants, state.usedBy(id)); rule.HasValue() {
			return id, rule.Unwrap(), true
		}
	}
	//
	return 0, Rule{}, false
}

// Apply one rule on a branch.  A single-branch rule extends the state in
// place and returns true; a forking rule clones the state per alternative,
// explores each recursively and returns false to signal the state was
// consumed.
func (p *engine) apply(state *branchState, id NodeID, rule Rule) bool {
	p.stats.Applications++
	//
	log.Debugf("%s on %s (node %d)", rule.ID, p.tableau.Node(id).Formula, id)
	//
	if p.opts.Trace {
		p.trace = append(p.trace, TraceStep{
			Rule:         rule.ID,
			Source:       id,
			Formula:      p.tableau.Node(id).Formula,
			Instantiated: rule.Instantiated,
			Forks:        uint(len(rule.Branches)),
		})
	}
	// Termination bookkeeping precedes forking, so every fork inherits it.
	state.recordUsed(id, rule.Used)
	//
	if rule.Recurring {
		state.recur(id)
	}
	//
	if len(rule.Branches) == 1 {
		p.extend(state, rule, rule.Branches[0])
		return true
	}
	// Fork, leftmost explored first for stable model order.
	for i, conclusions := range rule.Branches {
		child := state
		//
		if i+1 < len(rule.Branches) {
			child = state.clone()
		}
		//
		p.extend(child, rule, conclusions)
		p.run(child)
	}
	//
	return false
}

// Append a rule's conclusions beneath a branch's leaf as a chain of
// single-child nodes, checking each against the branch for contradiction.
// Closure prunes the remaining conclusions.
func (p *engine) extend(state *branchState, rule Rule, conclusions []SignedFormula) {
	for _, sf := range conclusions {
		if state.closed {
			return
		}
		//
		id := p.tableau.Add(util.Some(state.leaf), sf, util.Some(rule.ID), rule.Instantiated)
		state.leaf = id
		clash, duplicate := state.add(p.tableau, id)
		//
		if clash.HasValue() {
			log.Debugf("closing branch: %s (node %d) clashes with node %d", sf, id, clash.Unwrap())
			p.tableau.MarkClosed(id, clash.Unwrap())
			state.closed = true
		} else {
			state.enqueue(id, duplicate)
		}
	}
}

func (p *engine) overBudget() bool {
	return p.opts.MaxNodes != 0 && uint(p.tableau.Len()) >= p.opts.MaxNodes
}

// Assemble the final result.  A saturated open branch is definitive evidence
// of satisfiability even when the search was later aborted.
func (p *engine) result() Result {
	p.stats.TotalNodes = uint(p.tableau.Len())
	satisfiable := p.stats.OpenBranches > 0
	//
	var models []Model
	//
	if satisfiable {
		leaves := p.openLeaves
		//
		if !p.opts.AllModels {
			leaves = leaves[:1]
		}
		//
		for _, leaf := range leaves {
			models = append(models, ExtractModel(p.tableau, leaf))
		}
	}
	//
	return Result{
		Satisfiable: satisfiable,
		Aborted:     p.aborted && !satisfiable,
		Models:      models,
		OpenLeaves:  p.openLeaves,
		Stats:       p.stats,
		Tableau:     p.tableau,
		Trace:       p.trace,
	}
}
