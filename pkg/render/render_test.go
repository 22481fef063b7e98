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
package render

import (
	"strings"
	"testing"

	"github.com/consensys/go-wkrq/pkg/wkrq"
)

// ============================================================================
// Text
// ============================================================================

func Test_Render_01(t *testing.T) {
	result := solve(wkrq.Signed(wkrq.T, wkrq.And(p, q)))
	//
	checkText(t, result, plain,
		"0. t:p & q",
		"1. t:p  (t:&)",
		"2. t:q  (t:&)",
		"○",
		"",
		"Satisfiable (1 open / 0 closed, 3 nodes, 1 applications)")
}

func Test_Render_02(t *testing.T) {
	result := solve(wkrq.Signed(wkrq.T, p), wkrq.Signed(wkrq.F, p))
	//
	checkText(t, result, plain,
		"0. t:p",
		"1. f:p  ✗ 0",
		"",
		"Unsatisfiable (0 open / 1 closed, 2 nodes, 0 applications)")
}

func Test_Render_03(t *testing.T) {
	result := solve(wkrq.Signed(wkrq.T, wkrq.Or(p, q)))
	//
	checkText(t, result, plain,
		"0. t:p | q",
		"├─ 1. t:p  (t:|)",
		"│  ○",
		"├─ 2. t:q  (t:|)",
		"│  ○",
		"└─ 3. e:p  (t:|)",
		"   4. e:q  (t:|)",
		"   ○",
		"",
		"Satisfiable (3 open / 0 closed, 5 nodes, 1 applications)")
}

func Test_Render_04(t *testing.T) {
	result := solve(wkrq.Signed(wkrq.T, wkrq.Or(p, q)))
	//
	checkText(t, result, Config{},
		"0. t:p | q",
		"+- 1. t:p  (t:|)",
		"|  o",
		"+- 2. t:q  (t:|)",
		"|  o",
		"`- 3. e:p  (t:|)",
		"   4. e:q  (t:|)",
		"   o",
		"",
		"Satisfiable (3 open / 0 closed, 5 nodes, 1 applications)")
}

func Test_Render_05(t *testing.T) {
	result := solve(wkrq.Signed(wkrq.T, wkrq.And(p, q)))
	//
	checkText(t, result, Config{Unicode: true, Width: 10},
		"0. t:p & q",
		"1. t:p  (…",
		"2. t:q  (…",
		"○",
		"",
		"Satisfiab…")
}

// ============================================================================
// Models
// ============================================================================

func Test_Render_10(t *testing.T) {
	result := solve(wkrq.Signed(wkrq.T, wkrq.And(p, q)))
	//
	checkModels(t, result,
		"Model 1: {p=t, q=t}")
}

func Test_Render_11(t *testing.T) {
	result := wkrq.Solve(wkrq.Options{AllModels: true}, wkrq.Signed(wkrq.T, wkrq.Or(p, q)))
	//
	checkModels(t, result,
		"Model 1: {p=t}",
		"Model 2: {q=t}",
		"Model 3: {p=e, q=e}")
}

func Test_Render_12(t *testing.T) {
	result := solve(wkrq.Signed(wkrq.T, p), wkrq.Signed(wkrq.F, p))
	//
	checkModels(t, result)
}

func Test_Render_13(t *testing.T) {
	ra := wkrq.NewPredicate("R", wkrq.Constant{Name: "a"})
	result := wkrq.SolveACrQ(wkrq.Options{}, true, wkrq.Signed(wkrq.T, wkrq.And(ra, wkrq.Not(ra))))
	//
	var builder strings.Builder
	//
	if err := BilateralModels(&builder, plain, &result); err != nil {
		t.Fatal(err)
	} else if got := builder.String(); got != "Model 1: {R(a)=both}\n" {
		t.Errorf("got %q", got)
	}
}

// ============================================================================
// Latex
// ============================================================================

func Test_Render_20(t *testing.T) {
	result := solve(wkrq.Signed(wkrq.T, p), wkrq.Signed(wkrq.F, p))
	//
	checkLatex(t, result,
		"% requires \\usepackage{qtree}\n\\Tree [.{$t{:}p$} {$f{:}p\\;\\times_{0}$} ]\n")
}

func Test_Render_21(t *testing.T) {
	result := solve(wkrq.Signed(wkrq.T, wkrq.And(p, q)))
	//
	checkLatex(t, result,
		"% requires \\usepackage{qtree}\n\\Tree [.{$t{:}p \\land q$} [.{$t{:}p$} {$t{:}q\\;\\circ$} ] ]\n")
}

// ============================================================================
// Json
// ============================================================================

func Test_Render_30(t *testing.T) {
	result := solve(wkrq.Signed(wkrq.T, p), wkrq.Signed(wkrq.F, p))
	//
	var builder strings.Builder
	//
	if err := Json(&builder, &result); err != nil {
		t.Fatal(err)
	}
	//
	expected := `{
  "verdict": "unsatisfiable",
  "nodes": [
    {
      "id": 0,
      "sign": "t",
      "formula": "p",
      "children": [
        1
      ],
      "closes_with": 1
    },
    {
      "id": 1,
      "sign": "f",
      "formula": "p",
      "parent": 0,
      "closes_with": 0
    }
  ],
  "stats": {
    "nodes": 2,
    "open_branches": 0,
    "closed_branches": 1,
    "applications": 0
  }
}
`
	//
	if got := builder.String(); got != expected {
		t.Errorf("got %s", got)
	}
}

func Test_Render_31(t *testing.T) {
	result := solve(wkrq.Signed(wkrq.T, wkrq.And(p, q)))
	//
	var builder strings.Builder
	//
	if err := Json(&builder, &result); err != nil {
		t.Fatal(err)
	}
	//
	got := builder.String()
	//
	for _, expected := range []string{
		"\"verdict\": \"satisfiable\"",
		"\"rule\": \"t:&\"",
		"\"p\": \"t\"",
		"\"q\": \"t\"",
		"\"open_leaves\"",
	} {
		if !strings.Contains(got, expected) {
			t.Errorf("missing %s in %s", expected, got)
		}
	}
}

// ============================================================================
// Trace
// ============================================================================

func Test_Render_40(t *testing.T) {
	result := wkrq.Solve(wkrq.Options{Trace: true}, wkrq.Signed(wkrq.T, wkrq.And(p, q)))
	//
	var builder strings.Builder
	//
	if err := Trace(&builder, &result); err != nil {
		t.Fatal(err)
	} else if got := builder.String(); got != "t:& on t:p & q (node 0)\n" {
		t.Errorf("got %q", got)
	}
}

// ============================================================================
// Framework
// ============================================================================

var p = wkrq.NewAtom("p")
var q = wkrq.NewAtom("q")

// plain is the configuration used by most golden tests: unicode glyphs, no
// colour, unbounded width.
var plain = Config{Unicode: true}

func solve(initial ...wkrq.SignedFormula) wkrq.Result {
	return wkrq.Solve(wkrq.Options{}, initial...)
}

func checkText(t *testing.T, result wkrq.Result, config Config, lines ...string) {
	t.Helper()
	//
	var builder strings.Builder
	//
	if err := Text(&builder, config, &result); err != nil {
		t.Fatal(err)
	}
	//
	expected := strings.Join(lines, "\n") + "\n"
	//
	if got := builder.String(); got != expected {
		t.Errorf("got:\n%s\nexpected:\n%s", got, expected)
	}
}

func checkModels(t *testing.T, result wkrq.Result, lines ...string) {
	t.Helper()
	//
	var builder strings.Builder
	//
	if err := Models(&builder, plain, &result); err != nil {
		t.Fatal(err)
	}
	//
	expected := ""
	//
	if len(lines) > 0 {
		expected = strings.Join(lines, "\n") + "\n"
	}
	//
	if got := builder.String(); got != expected {
		t.Errorf("got:\n%s\nexpected:\n%s", got, expected)
	}
}

func checkLatex(t *testing.T, result wkrq.Result, expected string) {
	t.Helper()
	//
	var builder strings.Builder
	//
	if err := Latex(&builder, &result); err != nil {
		t.Fatal(err)
	}
	//
	if got := builder.String(); got != expected {
		t.Errorf("got:\n%s\nexpected:\n%s", got, expected)
	}
}
