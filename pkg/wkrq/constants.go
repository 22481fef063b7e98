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

	"github.com/consensys/go-wkrq/pkg/util"
)

// ConstantGen mints fresh constants for quantifier instantiation.  Names are
// drawn from the sequence c1, c2, etc, skipping any name reserved up front,
// so a fresh constant can never collide with one mentioned in the input.
// Threading the generator explicitly through construction gives deterministic
// constant naming.
type ConstantGen struct {
	counter  uint
	reserved map[string]bool
}

// NewConstantGen constructs a fresh constant generator with no reservations.
func NewConstantGen() *ConstantGen {
	return &ConstantGen{0, make(map[string]bool)}
}

// Reserve marks a name as taken, ensuring Fresh never returns it.  The
// tableau engine reserves every constant occurring in its initial formulas.
func (p *ConstantGen) Reserve(name string) {
	p.reserved[name] = true
}

// Fresh mints the next constant not yet seen.
func (p *ConstantGen) Fresh() Constant {
	for {
		p.counter++
		name := fmt.Sprintf("c%d", p.counter)
		//
		if !p.reserved[name] {
			p.reserved[name] = true
			return Constant{name}
		}
	}
}

// ChooseUniversal selects the first constant of the branch universe not yet
// recorded as used for a given quantifier occurrence.  An empty result
// signals the occurrence has exhausted the universe and must not be
// re-instantiated until a new constant appears, which is the termination
// guard against unbounded universal re-instantiation.
func ChooseUniversal(existing []Constant, used ConstantSet) util.Option[Constant] {
	for _, c := range existing {
		if !used.Contains(c) {
			return util.Some(c)
		}
	}
	//
	return util.None[Constant]()
}

// ConstantSet records which constants a quantifier occurrence has already
// been instantiated with.  Sets are branch local, since forked branches
// instantiate independently.
type ConstantSet map[Constant]bool

// NewConstantSet constructs an empty constant set.
func NewConstantSet() ConstantSet {
	return make(ConstantSet)
}

// Contains checks whether a given constant is in this set.
func (p ConstantSet) Contains(c Constant) bool {
	return p[c]
}

// Insert a given constant into this set.
func (p ConstantSet) Insert(c Constant) {
	p[c] = true
}

// Clone this set, such that subsequent insertions into either copy do not
// affect the other.
func (p ConstantSet) Clone() ConstantSet {
	q := make(ConstantSet, len(p))
	//
	for c := range p {
		q[c] = true
	}
	//
	return q
}
