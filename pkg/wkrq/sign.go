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

// Sign annotates a formula with the truth-value class it is asserted to take.
// The base signs t, f and e are mutually exclusive and jointly exhaustive
// weak Kleene truth values.  The meta-signs m ("meaningful", i.e. t or f) and
// n ("not true", i.e. f or e) denote unions of base signs and must be
// expanded into base-sign branches by a rule before closure logic ever sees
// them.
type Sign uint8

const (
	// T asserts a formula takes the value true.
	T Sign = iota
	// F asserts a formula takes the value false.
	F
	// E asserts a formula takes the value undefined.
	E
	// M asserts a formula is meaningful (either true or false).
	M
	// N asserts a formula is not true (either false or undefined).
	N
)

// IsBase reports whether this is one of the base signs t, f or e.
func (s Sign) IsBase() bool {
	return s <= E
}

// Negate maps a base sign across negation: t and f swap, e is fixed.  The
// meta-signs have no direct negation and must be expanded first; attempting
// to negate one is an engine bug.
func (s Sign) Negate() Sign {
	switch s {
	case T:
		return F
	case F:
		return T
	case E:
		return E
	}
	//
	panic("cannot negate non-base sign")
}

// Contradicts reports whether two signs clash, which holds exactly when both
// are base and distinct.  Meta-signs never contradict anything directly.
func (s Sign) Contradicts(o Sign) bool {
	return s.IsBase() && o.IsBase() && s != o
}

// BaseSigns returns the base signs a sign denotes: a base sign denotes
// itself, whilst m denotes {t,f} and n denotes {f,e}.
func (s Sign) BaseSigns() []Sign {
	switch s {
	case M:
		return []Sign{T, F}
	case N:
		return []Sign{F, E}
	}
	//
	return []Sign{s}
}

func (s Sign) String() string {
	switch s {
	case T:
		return "t"
	case F:
		return "f"
	case E:
		return "e"
	case M:
		return "m"
	case N:
		return "n"
	}
	//
	panic("unreachable")
}

// ParseSign maps a sign name onto its sign, reporting failure for anything
// else.
func ParseSign(name string) (Sign, bool) {
	switch name {
	case "t":
		return T, true
	case "f":
		return F, true
	case "e":
		return E, true
	case "m":
		return M, true
	case "n":
		return N, true
	}
	//
	return T, false
}
