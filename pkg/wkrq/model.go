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
	"strings"

	"github.com/consensys/go-wkrq/pkg/util"
)

// Model is a partial weak Kleene valuation read off an open branch: a map
// from ground atomic formulas to base signs.  Atoms never mentioned on the
// branch are unconstrained, and hence absent.
type Model struct {
	// atoms in branch order, for stable listing.
	atoms []Formula
	// signs assigned to those atoms.
	signs *util.HashMap[atomKey, Sign]
}

// atomKey wraps a formula for use as a HashMap key.
type atomKey struct {
	formula Formula
}

// Equals implementation for the util.Hasher interface.
func (p atomKey) Equals(o atomKey) bool {
	return p.formula.Equals(o.formula)
}

// Hash implementation for the util.Hasher interface.
func (p atomKey) Hash() uint64 {
	return p.formula.Hash()
}

// ExtractModel reads the model off a given open branch, identified by its
// leaf.  Every ground atomic formula carrying a base sign on the branch is
// recorded; the closure invariant guarantees each has exactly one.
func ExtractModel(tableau *Tableau, leaf NodeID) Model {
	model := Model{
		atoms: nil,
		signs: util.NewHashMap[atomKey, Sign](32),
	}
	//
	for _, id := range tableau.Path(leaf) {
		sf := tableau.Node(id).Formula
		//
		if !sf.Sign.IsBase() || !groundAtomic(sf.Formula) {
			continue
		}
		//
		if !model.signs.Insert(atomKey{sf.Formula}, sf.Sign) {
			model.atoms = append(model.atoms, sf.Formula)
		}
	}
	//
	return model
}

// Value looks up the base sign this model assigns to a given atomic formula,
// if any.
func (p Model) Value(f Formula) util.Option[Sign] {
	if sign, ok := p.signs.Get(atomKey{f}); ok {
		return util.Some(sign)
	}
	//
	return util.None[Sign]()
}

// Atoms lists the atomic formulas this model constrains, in branch order.
func (p Model) Atoms() []Formula {
	return p.atoms
}

// Size returns the number of atomic formulas this model constrains.
func (p Model) Size() uint {
	return uint(len(p.atoms))
}

func (p Model) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, atom := range p.atoms {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		sign, _ := p.signs.Get(atomKey{atom})
		builder.WriteString(atom.String())
		builder.WriteString("=")
		builder.WriteString(sign.String())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// Check whether a formula is atomic and ground, hence modellable.
func groundAtomic(f Formula) bool {
	switch f := f.(type) {
	case *Atom:
		return true
	case *Predicate:
		return f.Ground()
	case *Bilateral:
		return f.Ground()
	}
	//
	return false
}
