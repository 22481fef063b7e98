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
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-wkrq/pkg/wkrq"
)

// glyphs are the branch drawing characters of a textual tree, in either
// unicode or ASCII form.
type glyphs struct {
	fork     string
	lastFork string
	bar      string
	blank    string
	closed   string
	open     string
	ellipsis string
}

var unicodeGlyphs = glyphs{"├─ ", "└─ ", "│  ", "   ", "✗", "○", "…"}

var asciiGlyphs = glyphs{"+- ", "`- ", "|  ", "   ", "x", "o", "..."}

// Text renders the derivation tree of a given result, one node per line, with
// forked branches indented under drawing glyphs.  Every line shows the node
// identifier, its signed formula and the rule which produced it; nodes taking
// part in a closure reference the node they clash with, and open leaves are
// marked.  A final line reports the verdict along with summary statistics.
func Text(w io.Writer, config Config, result *wkrq.Result) error {
	p := newPrinter(config, result)
	//
	p.chain(p.tableau.Root().ID, "", "")
	p.builder.WriteString("\n")
	p.verdict()
	//
	_, err := io.WriteString(w, p.builder.String())
	//
	return err
}

// Models renders the models of a given result, one per line.  For an
// unsatisfiable result nothing is printed.
func Models(w io.Writer, config Config, result *wkrq.Result) error {
	p := newPrinter(config, result)
	//
	for i, model := range result.Models {
		p.builder.WriteString(fmt.Sprintf("Model %d: ", i+1))
		p.model(model)
		p.builder.WriteString("\n")
	}
	//
	_, err := io.WriteString(w, p.builder.String())
	//
	return err
}

// BilateralModels renders the models of a given result in their bilateral
// classification, mapping each predicate/dual pair onto one of the four
// information states.
func BilateralModels(w io.Writer, config Config, result *wkrq.Result) error {
	p := newPrinter(config, result)
	//
	for i, model := range result.Models {
		p.builder.WriteString(fmt.Sprintf("Model %d: ", i+1))
		p.bilateral(wkrq.Bilateralise(model))
		p.builder.WriteString("\n")
	}
	//
	_, err := io.WriteString(w, p.builder.String())
	//
	return err
}

// Trace renders the rule applications of a given result in order, one per
// line.  The result must have been constructed with tracing enabled.
func Trace(w io.Writer, result *wkrq.Result) error {
	var builder strings.Builder
	//
	for _, step := range result.Trace {
		builder.WriteString(step.String())
		builder.WriteString("\n")
	}
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}

// ============================================================================
// Printer
// ============================================================================

type printer struct {
	config  Config
	glyphs  glyphs
	palette *palette
	tableau *wkrq.Tableau
	result  *wkrq.Result
	builder strings.Builder
}

func newPrinter(config Config, result *wkrq.Result) *printer {
	g := asciiGlyphs
	if config.Unicode {
		g = unicodeGlyphs
	}
	//
	return &printer{config, g, newPalette(config.Colour), result.Tableau, result, strings.Builder{}}
}

// Print the chain of nodes starting at a given node, stopping at a fork
// (whose alternatives are printed recursively with deeper glyphs) or a leaf.
// The head prefix applies to the first line only; every subsequent line of
// the chain carries the rest prefix.
func (p *printer) chain(id wkrq.NodeID, head string, rest string) {
	for {
		node := p.tableau.Node(id)
		p.line(node, head)
		//
		head = rest
		//
		switch len(node.Children) {
		case 0:
			if isOpenLeaf(p.result, id) {
				p.write(rest + p.palette.open.Sprint(p.glyphs.open) + "\n")
			}
			//
			return
		case 1:
			id = node.Children[0]
		default:
			for i, child := range node.Children {
				if i+1 < len(node.Children) {
					p.chain(child, rest+p.glyphs.fork, rest+p.glyphs.bar)
				} else {
					p.chain(child, rest+p.glyphs.lastFork, rest+p.glyphs.blank)
				}
			}
			//
			return
		}
	}
}

// Print a single node line: identifier, signed formula, producing rule and
// (when this node completes a contradiction) the clashing node.
func (p *printer) line(node *wkrq.Node, prefix string) {
	var builder strings.Builder
	//
	builder.WriteString(prefix)
	builder.WriteString(fmt.Sprintf("%d. ", node.ID))
	builder.WriteString(p.palette.sign(node.Formula.Sign))
	builder.WriteString(":")
	builder.WriteString(node.Formula.Formula.String())
	//
	if node.Rule.HasValue() {
		annotation := node.Rule.Unwrap().String()
		//
		if node.Instantiated.HasValue() {
			annotation = annotation + " " + node.Instantiated.Unwrap().Name
		}
		//
		builder.WriteString("  ")
		builder.WriteString(p.palette.rule.Sprint("(" + annotation + ")"))
	}
	// Mark the later of the two clashing nodes
	if node.CausesClosure && node.ContradictsWith.Unwrap() < node.ID {
		marker := fmt.Sprintf("%s %d", p.glyphs.closed, node.ContradictsWith.Unwrap())
		builder.WriteString("  ")
		builder.WriteString(p.palette.closed.Sprint(marker))
	}
	//
	p.write(builder.String() + "\n")
}

// Print the verdict trailer.
func (p *printer) verdict() {
	var verdict string
	//
	switch {
	case p.result.Aborted:
		verdict = p.palette.partial.Sprint("Aborted")
	case p.result.Satisfiable:
		verdict = p.palette.good.Sprint("Satisfiable")
	default:
		verdict = p.palette.bad.Sprint("Unsatisfiable")
	}
	//
	stats := p.result.Stats
	p.write(fmt.Sprintf("%s (%d open / %d closed, %d nodes, %d applications)\n",
		verdict, stats.OpenBranches, stats.ClosedBranches, stats.TotalNodes, stats.Applications))
}

// Print a model as sign assignments to its atoms.
func (p *printer) model(model wkrq.Model) {
	p.builder.WriteString("{")
	//
	for i, atom := range model.Atoms() {
		if i != 0 {
			p.builder.WriteString(", ")
		}
		//
		sign := model.Value(atom).Unwrap()
		p.builder.WriteString(atom.String())
		p.builder.WriteString("=")
		p.builder.WriteString(p.palette.sign(sign))
	}
	//
	p.builder.WriteString("}")
}

// Print a bilateral model as information states of its predicate pairs.
func (p *printer) bilateral(model wkrq.BilateralModel) {
	p.builder.WriteString("{")
	//
	for i, pair := range model.Pairs() {
		if i != 0 {
			p.builder.WriteString(", ")
		}
		//
		state := model.State(pair).Unwrap()
		p.builder.WriteString(pair.String())
		p.builder.WriteString("=")
		p.builder.WriteString(p.palette.state(state))
	}
	//
	p.builder.WriteString("}")
}

// Write a single rendered line, truncating it to the configured width.  The
// width check counts runes, which slightly overcounts lines carrying colour
// escapes; those are only emitted on terminals where truncation is cosmetic
// anyway.
func (p *printer) write(line string) {
	if n := p.config.Width; n > 0 {
		runes := []rune(strings.TrimSuffix(line, "\n"))
		//
		if keep := int(n) - len([]rune(p.glyphs.ellipsis)); uint(len(runes)) > n && keep > 0 {
			line = string(runes[:keep]) + p.glyphs.ellipsis + "\n"
		}
	}
	//
	p.builder.WriteString(line)
}

// isOpenLeaf checks whether a given leaf saturated without closing.
func isOpenLeaf(result *wkrq.Result, id wkrq.NodeID) bool {
	for _, leaf := range result.OpenLeaves {
		if leaf == id {
			return true
		}
	}
	//
	return false
}
