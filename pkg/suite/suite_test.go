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
package suite

import (
	"strings"
	"testing"
)

// ============================================================================
// Loading
// ============================================================================

func Test_Suite_01(t *testing.T) {
	s := load(t, `
problems:
  - name: conjunction
    input: "p & q"
    expect: sat
`)
	//
	if n := len(s.Problems); n != 1 {
		t.Fatalf("expected 1 problem, got %d", n)
	}
	// Defaults filled in
	p := s.Problems[0]
	//
	if p.Kind != KindFormula || p.Sign != "t" || p.Mode != ModeWkrq {
		t.Errorf("defaults not applied: %+v", p)
	}
}

func Test_Suite_02(t *testing.T) {
	s := load(t, `
problems:
  - input: "p"
    expect: sat
  - input: "q"
    expect: sat
`)
	// Unnamed problems are numbered
	if s.Problems[0].Name != "problem 1" || s.Problems[1].Name != "problem 2" {
		t.Errorf("got names %q / %q", s.Problems[0].Name, s.Problems[1].Name)
	}
}

func Test_Suite_03(t *testing.T) {
	checkInvalid(t, "missing input", `
problems:
  - name: broken
    expect: sat
`)
}

func Test_Suite_04(t *testing.T) {
	checkInvalid(t, "unknown kind", `
problems:
  - input: "p"
    kind: theorem
    expect: sat
`)
}

func Test_Suite_05(t *testing.T) {
	checkInvalid(t, "unknown mode", `
problems:
  - input: "p"
    mode: classical
    expect: sat
`)
}

func Test_Suite_06(t *testing.T) {
	checkInvalid(t, "unknown sign", `
problems:
  - input: "p"
    sign: q
    expect: sat
`)
}

func Test_Suite_07(t *testing.T) {
	checkInvalid(t, "missing expected verdict", `
problems:
  - input: "p"
`)
}

func Test_Suite_08(t *testing.T) {
	checkInvalid(t, "formula problems expect", `
problems:
  - input: "p"
    expect: valid
`)
}

func Test_Suite_09(t *testing.T) {
	checkInvalid(t, "inference problems expect", `
problems:
  - input: "p |- p"
    kind: inference
    expect: sat
`)
}

func Test_Suite_10(t *testing.T) {
	checkInvalid(t, "sign is only meaningful", `
problems:
  - input: "p |- p"
    kind: inference
    sign: t
    expect: valid
`)
}

// ============================================================================
// Running
// ============================================================================

func Test_Suite_20(t *testing.T) {
	s := load(t, `
problems:
  - name: conjunction
    input: "p & q"
    expect: sat
  - name: clash
    input: "p & ~p"
    expect: unsat
  - name: modus ponens
    input: "p, p -> q |- q"
    kind: inference
    expect: valid
  - name: affirming the consequent
    input: "q, p -> q |- p"
    kind: inference
    expect: invalid
`)
	//
	outcomes := Run(2, s.Problems)
	//
	if n := Failures(outcomes); n != 0 {
		t.Fatalf("expected no failures, got %d", n)
	}
	// Outcomes arrive in problem order
	for i, outcome := range outcomes {
		if outcome.Problem.Name != s.Problems[i].Name {
			t.Errorf("outcome %d names %q", i, outcome.Problem.Name)
		}
	}
}

func Test_Suite_21(t *testing.T) {
	s := load(t, `
problems:
  - name: glut tolerated
    input: "P(a) & ~P(a)"
    mode: acrq
    expect: sat
  - name: glut explodes here
    input: "P(a) & ~P(a)"
    expect: unsat
`)
	//
	if n := Failures(Run(1, s.Problems)); n != 0 {
		t.Errorf("expected no failures, got %d", n)
	}
}

func Test_Suite_22(t *testing.T) {
	s := load(t, `
problems:
  - name: wrong expectation
    input: "p"
    expect: unsat
`)
	//
	outcomes := Run(1, s.Problems)
	//
	if outcomes[0].Pass || outcomes[0].Verdict != VerdictSat {
		t.Errorf("got %+v", outcomes[0])
	}
	//
	if Failures(outcomes) != 1 {
		t.Errorf("expected one failure")
	}
}

func Test_Suite_23(t *testing.T) {
	s := load(t, `
problems:
  - name: unparseable
    input: "p &"
    expect: sat
`)
	//
	outcomes := Run(1, s.Problems)
	//
	if outcomes[0].Pass || outcomes[0].Err == nil {
		t.Errorf("expected a syntax error, got %+v", outcomes[0])
	}
}

func Test_Suite_24(t *testing.T) {
	s := load(t, `
problems:
  - name: budget trips
    input: "p & q & r"
    expect: sat
    max_nodes: 2
`)
	//
	outcomes := Run(1, s.Problems)
	//
	if outcomes[0].Pass || outcomes[0].Verdict != VerdictAborted {
		t.Errorf("got %+v", outcomes[0])
	}
}

// ============================================================================
// Framework
// ============================================================================

func load(t *testing.T, input string) Suite {
	t.Helper()
	//
	s, err := FromYaml([]byte(input))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return s
}

func checkInvalid(t *testing.T, fragment string, input string) {
	t.Helper()
	//
	_, err := FromYaml([]byte(input))
	//
	if err == nil {
		t.Fatalf("expected an error mentioning %q", fragment)
	} else if !strings.Contains(err.Error(), fragment) {
		t.Errorf("expected %q within %q", fragment, err.Error())
	}
}
