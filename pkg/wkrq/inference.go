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
)

// Inference pairs zero or more premises with a conclusion.
type Inference struct {
	Premises   []Formula
	Conclusion Formula
}

func (p Inference) String() string {
	var builder strings.Builder
	//
	for i, f := range p.Premises {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(f.String())
	}
	//
	if len(p.Premises) != 0 {
		builder.WriteString(" ")
	}
	//
	builder.WriteString("|- ")
	builder.WriteString(p.Conclusion.String())
	//
	return builder.String()
}

// InferenceResult reports whether an inference is valid, and exhibits
// countermodels when it is not.
type InferenceResult struct {
	// Valid indicates every branch of the refutation tableau closed.
	Valid bool
	// Aborted indicates the search exceeded its node budget before validity
	// was established either way.
	Aborted bool
	// Countermodels are valuations making every premise true whilst the
	// conclusion is not true, when the inference is invalid.
	Countermodels []Model
	// Result is the underlying tableau result, for rendering.
	Result Result
}

// Valid checks an inference by refutation: the premises are asserted true
// and the conclusion not true, and the inference holds exactly when that
// assertion is unsatisfiable.  Testing n:conclusion rather than the
// satisfiability of premises & ~conclusion matters here, since negation does
// not express "not true" in a logic where a formula can be undefined.
func Valid(opts Options, inference Inference) InferenceResult {
	signed := make([]SignedFormula, 0, len(inference.Premises)+1)
	//
	for _, f := range inference.Premises {
		signed = append(signed, Signed(T, f))
	}
	//
	signed = append(signed, Signed(N, inference.Conclusion))
	result := Solve(opts, signed...)
	//
	return InferenceResult{
		Valid:         !result.Satisfiable && !result.Aborted,
		Aborted:       result.Aborted,
		Countermodels: result.Models,
		Result:        result,
	}
}
