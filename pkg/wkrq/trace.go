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
	"strings"

	"github.com/consensys/go-wkrq/pkg/util"
)

// TraceStep records one rule application during construction, for diagnostic
// tooling.  Steps are ordered as applied.
type TraceStep struct {
	// Rule applied.
	Rule RuleID
	// Source node the rule decomposed.
	Source NodeID
	// Formula of the source node at application time.
	Formula SignedFormula
	// Instantiated constant, for quantifier rules.
	Instantiated util.Option[Constant]
	// Forks gives the number of alternative branches the rule produced.
	Forks uint
}

func (p TraceStep) String() string {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "%s on %s (node %d)", p.Rule, p.Formula, p.Source)
	//
	if p.Instantiated.HasValue() {
		fmt.Fprintf(&builder, " with %s", p.Instantiated.Unwrap())
	}
	//
	if p.Forks > 1 {
		fmt.Fprintf(&builder, ", %d branches", p.Forks)
	}
	//
	return builder.String()
}
