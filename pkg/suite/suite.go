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

// Package suite loads and runs YAML problem suites: named formulas and
// inferences together with their expected verdicts.  Suites back the batch
// command and double as a table-driven regression harness.
package suite

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/consensys/go-wkrq/pkg/wkrq"
)

// Problem kinds.
const (
	// KindFormula problems check a signed formula for satisfiability.
	KindFormula = "formula"
	// KindInference problems check an inference for validity.
	KindInference = "inference"
)

// Problem modes.
const (
	// ModeWkrq runs a problem under the base logic.
	ModeWkrq = "wkrq"
	// ModeAcrq runs a problem under the bilateral logic.
	ModeAcrq = "acrq"
)

// Expected (and actual) verdicts.
const (
	// VerdictSat expects a satisfiable formula.
	VerdictSat = "sat"
	// VerdictUnsat expects an unsatisfiable formula.
	VerdictUnsat = "unsat"
	// VerdictValid expects a valid inference.
	VerdictValid = "valid"
	// VerdictInvalid expects an invalid inference.
	VerdictInvalid = "invalid"
	// VerdictAborted is never expected; it arises when a problem trips its
	// node budget, and always counts as a failure.
	VerdictAborted = "aborted"
)

// Problem is a single suite entry: an input to decide along with the verdict
// it is expected to produce.  Omitted fields default to a t-signed formula
// under the base logic.
type Problem struct {
	// Name identifies the problem in reports.
	Name string `yaml:"name"`
	// Input holds the formula or inference, in surface syntax.
	Input string `yaml:"input"`
	// Kind is either "formula" or "inference".
	Kind string `yaml:"kind"`
	// Sign the formula is checked under (formula problems only).
	Sign string `yaml:"sign"`
	// Mode is either "wkrq" or "acrq".
	Mode string `yaml:"mode"`
	// Expect names the expected verdict: "sat" / "unsat" for formulas,
	// "valid" / "invalid" for inferences.
	Expect string `yaml:"expect"`
	// MaxNodes bounds the derivation tree for this problem, with zero
	// meaning the runner default.
	MaxNodes uint `yaml:"max_nodes"`
}

// Suite is a list of problems.
type Suite struct {
	Problems []Problem `yaml:"problems"`
}

// ReadSuite reads and parses a suite from a given YAML file.
func ReadSuite(filename string) (Suite, error) {
	data, err := os.ReadFile(filename)
	//
	if err != nil {
		return Suite{}, err
	}
	//
	return FromYaml(data)
}

// FromYaml parses a suite from YAML, checking each problem is well formed and
// filling in defaulted fields.
func FromYaml(data []byte) (Suite, error) {
	var s Suite
	//
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, err
	}
	//
	for i := range s.Problems {
		if err := normalise(&s.Problems[i], i); err != nil {
			return s, err
		}
	}
	//
	return s, nil
}

// Check a problem is well formed and fill in its defaulted fields.
func normalise(p *Problem, index int) error {
	if p.Name == "" {
		p.Name = fmt.Sprintf("problem %d", index+1)
	}
	//
	if p.Input == "" {
		return fmt.Errorf("%s: missing input", p.Name)
	}
	//
	switch p.Kind {
	case "":
		p.Kind = KindFormula
	case KindFormula, KindInference:
		// fine
	default:
		return fmt.Errorf("%s: unknown kind %q", p.Name, p.Kind)
	}
	//
	switch p.Mode {
	case "":
		p.Mode = ModeWkrq
	case ModeWkrq, ModeAcrq:
		// fine
	default:
		return fmt.Errorf("%s: unknown mode %q", p.Name, p.Mode)
	}
	//
	if p.Kind == KindInference {
		if p.Sign != "" {
			return fmt.Errorf("%s: sign is only meaningful for formula problems", p.Name)
		}
	} else if p.Sign == "" {
		p.Sign = "t"
	} else if _, ok := wkrq.ParseSign(p.Sign); !ok {
		return fmt.Errorf("%s: unknown sign %q", p.Name, p.Sign)
	}
	//
	switch {
	case p.Expect == "":
		return fmt.Errorf("%s: missing expected verdict", p.Name)
	case p.Kind == KindFormula && p.Expect != VerdictSat && p.Expect != VerdictUnsat:
		return fmt.Errorf("%s: formula problems expect \"sat\" or \"unsat\", not %q", p.Name, p.Expect)
	case p.Kind == KindInference && p.Expect != VerdictValid && p.Expect != VerdictInvalid:
		return fmt.Errorf("%s: inference problems expect \"valid\" or \"invalid\", not %q", p.Name, p.Expect)
	}
	//
	return nil
}
