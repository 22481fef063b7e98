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

// latexReplacer maps the surface syntax of formulas into LaTeX math commands.
// Binary connectives are always surrounded by spaces in the rendered surface
// form; prefix operators sit flush against their operand and so take a
// trailing space to stop the command swallowing it.
var latexReplacer = strings.NewReplacer(
	"->", "\\to",
	"~", "\\lnot ",
	"&", "\\land",
	"|", "\\lor",
	"∀", "\\forall ",
	"∃", "\\exists ",
	"*", "^{*}",
	"_", "\\_",
)

// Latex renders the derivation tree of a given result as a qtree \Tree
// expression, suitable for pasting into a document which loads that package.
// Closed leaves are marked with \times (referencing the clashing node) and
// open leaves with \circ.
func Latex(w io.Writer, result *wkrq.Result) error {
	var builder strings.Builder
	//
	builder.WriteString("% requires \\usepackage{qtree}\n")
	builder.WriteString("\\Tree ")
	latexNode(&builder, result, result.Tableau.Root().ID)
	builder.WriteString("\n")
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}

// Print a node (and its subtree) in qtree syntax, where internal nodes take
// the form "[.label children ]" and leaves are bare labels.
func latexNode(builder *strings.Builder, result *wkrq.Result, id wkrq.NodeID) {
	node := result.Tableau.Node(id)
	label := latexLabel(result, node)
	//
	if len(node.Children) == 0 {
		builder.WriteString(label)
		return
	}
	//
	builder.WriteString("[.")
	builder.WriteString(label)
	//
	for _, child := range node.Children {
		builder.WriteString(" ")
		latexNode(builder, result, child)
	}
	//
	builder.WriteString(" ]")
}

// Construct the label of a single node.  Labels wrap the signed formula in an
// inline math group; the braces also protect any brackets of quantified
// formulas from the qtree parser.
func latexLabel(result *wkrq.Result, node *wkrq.Node) string {
	var builder strings.Builder
	//
	builder.WriteString("{$")
	builder.WriteString(node.Formula.Sign.String())
	builder.WriteString("{:}")
	builder.WriteString(latexReplacer.Replace(node.Formula.Formula.String()))
	//
	if node.CausesClosure && node.ContradictsWith.Unwrap() < node.ID {
		fmt.Fprintf(&builder, "\\;\\times_{%d}", node.ContradictsWith.Unwrap())
	} else if isOpenLeaf(result, node.ID) {
		builder.WriteString("\\;\\circ")
	}
	//
	builder.WriteString("$}")
	//
	return builder.String()
}
