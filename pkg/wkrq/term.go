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

import "hash/fnv"

// Term represents an individual term occurring within a predicate, which is
// either a variable or a constant.  Terms are immutable values and, since both
// forms are comparable structs, two terms can be compared directly with ==.
type Term interface {
	// Ground reports whether this term contains no variables.
	Ground() bool
	// Substitute returns the term resulting from applying a given
	// substitution to this term.
	Substitute(Substitution) Term
	// String returns the name of this term.
	String() string
	// Seals this interface against external implementations, ensuring the
	// rule engine's dispatch is exhaustive.
	isTerm()
}

// Variable represents a named logical variable, such as the variable bound by
// a restricted quantifier.  By convention, variable names begin with an
// upper-case letter.
type Variable struct {
	Name string
}

// Ground implementation for Term interface.
func (p Variable) Ground() bool {
	return false
}

// Substitute implementation for Term interface.
func (p Variable) Substitute(subst Substitution) Term {
	if t, ok := subst[p.Name]; ok {
		return t
	}
	//
	return p
}

func (p Variable) String() string {
	return p.Name
}

func (p Variable) isTerm() {}

// Constant represents a named individual, either originating from the input
// formula or generated fresh during quantifier instantiation.  By convention,
// constant names begin with a lower-case letter.
type Constant struct {
	Name string
}

// Ground implementation for Term interface.
func (p Constant) Ground() bool {
	return true
}

// Substitute implementation for Term interface.
func (p Constant) Substitute(Substitution) Term {
	return p
}

func (p Constant) String() string {
	return p.Name
}

func (p Constant) isTerm() {}

// Substitution maps variable names to replacement terms.  Substitutions are
// applied homomorphically through terms and formulas.
type Substitution map[string]Term

// ============================================================================
// Helpers
// ============================================================================

// Determine whether every term in a given array is ground.
func groundTerms(terms []Term) bool {
	for _, t := range terms {
		if !t.Ground() {
			return false
		}
	}
	//
	return true
}

// Apply a substitution to every term in a given array, producing a fresh
// array.
func substituteTerms(terms []Term, subst Substitution) []Term {
	nterms := make([]Term, len(terms))
	//
	for i, t := range terms {
		nterms[i] = t.Substitute(subst)
	}
	//
	return nterms
}

// Hash a string through FNV-1a, mixing in a given seed.  This is the basic
// building block for the structural hashing of terms and formulas.
func hashString(seed uint64, s string) uint64 {
	hash := fnv.New64a()
	// Mix in seed
	for i := 0; i < 8; i++ {
		hash.Write([]byte{byte(seed >> (i * 8))})
	}
	//
	hash.Write([]byte(s))
	//
	return hash.Sum64()
}

// Hash a sequence of terms, mixing in a given seed.  Variables and constants
// hash differently to ensure e.g. P(x) and P(X) are distinguished.
func hashTerms(seed uint64, terms []Term) uint64 {
	hash := seed
	//
	for _, t := range terms {
		switch t := t.(type) {
		case Variable:
			hash = hashString(hash^0x56, t.Name)
		case Constant:
			hash = hashString(hash^0x43, t.Name)
		default:
			panic("unreachable")
		}
	}
	//
	return hash
}
