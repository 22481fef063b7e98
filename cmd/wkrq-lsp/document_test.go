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
package main

import (
	"strings"
	"testing"

	"github.com/consensys/go-wkrq/pkg/wkrq"
)

func Test_Lsp_01(t *testing.T) {
	line := parseLine("t:p & q")
	//
	if len(line.errs) != 0 {
		t.Fatalf("unexpected errors: %v", line.errs)
	} else if line.srcmap == nil {
		t.Fatal("missing source map")
	}
}

func Test_Lsp_02(t *testing.T) {
	line := parseLine("p &")
	//
	if len(line.errs) == 0 {
		t.Fatal("expected syntax error")
	}
}

func Test_Lsp_03(t *testing.T) {
	// Blank and comment lines parse to nothing
	for _, text := range []string{"", "   ", "# p &"} {
		line := parseLine(text)
		//
		if len(line.errs) != 0 || line.srcmap != nil {
			t.Fatalf("expected empty result for %q", text)
		}
	}
}

func Test_Lsp_04(t *testing.T) {
	line := parseLine("p, p -> q |- q")
	//
	if len(line.errs) != 0 {
		t.Fatalf("unexpected errors: %v", line.errs)
	}
}

func Test_Lsp_05(t *testing.T) {
	// Innermost formula wins
	line := parseLine("t:p & q")
	checkFormulaAt(t, &line, 2, "p")
	checkFormulaAt(t, &line, 4, "p & q")
	checkFormulaAt(t, &line, 6, "q")
}

func Test_Lsp_06(t *testing.T) {
	line := parseLine("e:p")
	//
	sign, span, ok := line.signSpan()
	//
	if !ok || sign != wkrq.E {
		t.Fatalf("expected sign e, got %s (%t)", sign, ok)
	} else if span.Start() != 0 || span.End() != 2 {
		t.Fatalf("unexpected span %d..%d", span.Start(), span.End())
	}
}

func Test_Lsp_07(t *testing.T) {
	// Unsigned lines and inferences carry no sign prefix
	for _, text := range []string{"p & q", "p |- q"} {
		line := parseLine(text)
		//
		if _, _, ok := line.signSpan(); ok {
			t.Fatalf("unexpected sign prefix in %q", text)
		}
	}
}

func Test_Lsp_08(t *testing.T) {
	span, ok := findSymbol("p |- q", "|-")
	//
	if !ok || span.Start() != 2 || span.End() != 4 {
		t.Fatalf("unexpected span %d..%d (%t)", span.Start(), span.End(), ok)
	}
}

func Test_Lsp_09(t *testing.T) {
	lines := parseLines("p & q\np &\n# trailer")
	//
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	} else if len(lines[0].errs) != 0 || len(lines[2].errs) != 0 {
		t.Fatal("unexpected errors on clean lines")
	} else if len(lines[1].errs) == 0 {
		t.Fatal("expected syntax error on line 1")
	}
}

func Test_Lsp_10(t *testing.T) {
	line := parseLine("p & q")
	formula, _ := line.formulaAt(1)
	//
	if !strings.Contains(hoverText(formula), "Conjunction") {
		t.Fatalf("unexpected hover: %s", hoverText(formula))
	}
	//
	if !strings.Contains(signHover(wkrq.N), "false or undefined") {
		t.Fatal("unexpected sign hover")
	}
}

// ============================================================================
// Framework
// ============================================================================

func checkFormulaAt(t *testing.T, line *documentLine, col int, expected string) {
	t.Helper()
	//
	formula, _ := line.formulaAt(col)
	//
	if formula == nil {
		t.Fatalf("no formula at column %d", col)
	} else if formula.String() != expected {
		t.Fatalf("expected %s at column %d, got %s", expected, col, formula)
	}
}
