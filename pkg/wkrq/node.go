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

// NodeID indexes a node within the tableau arena.
type NodeID uint

// Node is one signed-formula obligation within the derivation tree.  A node
// owns the identifiers of its children; the parent link is a plain index used
// only for ancestor walks, avoiding ownership cycles.  Nodes are never
// mutated after creation except to append children and to flip the closure
// fields when a later node on the same branch clashes with them.
type Node struct {
	// ID of this node within the arena.
	ID NodeID
	// Formula is the signed formula this node asserts.
	Formula SignedFormula
	// Parent node, if any.
	Parent util.Option[NodeID]
	// Children of this node, in creation order.
	Children []NodeID
	// Rule which produced this node, or empty for initial formulas.
	Rule util.Option[RuleID]
	// Instantiated constant carried by the producing rule application, if
	// relevant.
	Instantiated util.Option[Constant]
	// CausesClosure indicates this node clashes with another on its branch.
	CausesClosure bool
	// ContradictsWith identifies the clashing node, when CausesClosure.
	ContradictsWith util.Option[NodeID]
}

// Tableau is the whole derivation: an arena of nodes owned top down from the
// root (always node 0), supporting O(1) lookup by identifier.  Branches are
// derived views over the arena, obtained by walking parent links up from a
// leaf.
type Tableau struct {
	nodes []*Node
}

// NewTableau constructs an empty tableau.
func NewTableau() *Tableau {
	return &Tableau{nil}
}

// Add appends a node asserting a given signed formula, linking it beneath the
// given parent (or as the root when the arena is empty and parent is empty).
func (p *Tableau) Add(parent util.Option[NodeID], sf SignedFormula, rule util.Option[RuleID],
	instantiated util.Option[Constant]) NodeID {
	//
	id := NodeID(len(p.nodes))
	node := &Node{
		ID:              id,
		Formula:         sf,
		Parent:          parent,
		Children:        nil,
		Rule:            rule,
		Instantiated:    instantiated,
		CausesClosure:   false,
		ContradictsWith: util.None[NodeID](),
	}
	//
	p.nodes = append(p.nodes, node)
	//
	if parent.HasValue() {
		q := p.nodes[parent.Unwrap()]
		q.Children = append(q.Children, id)
	}
	//
	return id
}

// Node looks up a node by identifier.
func (p *Tableau) Node(id NodeID) *Node {
	return p.nodes[id]
}

// Root returns the root node, which always has identifier 0.
func (p *Tableau) Root() *Node {
	return p.nodes[0]
}

// Len returns the number of nodes in this tableau.
func (p *Tableau) Len() int {
	return len(p.nodes)
}

// Path returns the identifiers of every node from the root down to (and
// including) a given node.
func (p *Tableau) Path(id NodeID) []NodeID {
	var path []NodeID
	// Walk ancestors
	for {
		path = append(path, id)
		node := p.nodes[id]
		//
		if !node.Parent.HasValue() {
			break
		}
		//
		id = node.Parent.Unwrap()
	}
	// Reverse into root-first order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	//
	return path
}

// MarkClosed records that two nodes on a common branch clash, flipping the
// closure fields of both.
func (p *Tableau) MarkClosed(a NodeID, b NodeID) {
	an, bn := p.nodes[a], p.nodes[b]
	an.CausesClosure = true
	an.ContradictsWith = util.Some(b)
	bn.CausesClosure = true
	bn.ContradictsWith = util.Some(a)
}
