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

import "fmt"

// SignedFormula pairs a formula with the sign asserted of it, and is the
// atomic unit the tableau engine reasons about.  Signed formulas are
// immutable values which implement util.Hasher against themselves, allowing
// branches to index them in a util.HashMap.
type SignedFormula struct {
	Sign    Sign
	Formula Formula
}

// Signed constructs a signed formula.
func Signed(sign Sign, formula Formula) SignedFormula {
	return SignedFormula{sign, formula}
}

// Equals implementation for the util.Hasher interface.
func (p SignedFormula) Equals(o SignedFormula) bool {
	return p.Sign == o.Sign && p.Formula.Equals(o.Formula)
}

// Hash implementation for the util.Hasher interface.
func (p SignedFormula) Hash() uint64 {
	return (uint64(p.Sign)+1)*0xbf58476d1ce4e5b9 ^ p.Formula.Hash()
}

func (p SignedFormula) String() string {
	return fmt.Sprintf("%s:%s", p.Sign, p.Formula)
}
