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
	"encoding/json"
	"io"

	"github.com/consensys/go-wkrq/pkg/wkrq"
)

type jsonResult struct {
	Verdict    string              `json:"verdict"`
	Nodes      []jsonNode          `json:"nodes"`
	OpenLeaves []uint              `json:"open_leaves,omitempty"`
	Models     []map[string]string `json:"models,omitempty"`
	Stats      jsonStats           `json:"stats"`
	Trace      []string            `json:"trace,omitempty"`
}

type jsonNode struct {
	Id         uint   `json:"id"`
	Sign       string `json:"sign"`
	Formula    string `json:"formula"`
	Rule       string `json:"rule,omitempty"`
	Constant   string `json:"constant,omitempty"`
	Parent     *uint  `json:"parent,omitempty"`
	Children   []uint `json:"children,omitempty"`
	ClosesWith *uint  `json:"closes_with,omitempty"`
}

type jsonStats struct {
	Nodes        uint `json:"nodes"`
	Open         uint `json:"open_branches"`
	Closed       uint `json:"closed_branches"`
	Applications uint `json:"applications"`
}

// Json renders a result as an indented JSON document covering the verdict,
// every node of the derivation, any models found, summary statistics and
// (when recorded) the application trace.
func Json(w io.Writer, result *wkrq.Result) error {
	bytes, err := json.MarshalIndent(jsonise(result), "", "  ")
	//
	if err != nil {
		return err
	}
	//
	bytes = append(bytes, '\n')
	_, err = w.Write(bytes)
	//
	return err
}

func jsonise(result *wkrq.Result) jsonResult {
	var data jsonResult
	//
	switch {
	case result.Aborted:
		data.Verdict = "aborted"
	case result.Satisfiable:
		data.Verdict = "satisfiable"
	default:
		data.Verdict = "unsatisfiable"
	}
	//
	for i, n := 0, result.Tableau.Len(); i < n; i++ {
		data.Nodes = append(data.Nodes, jsoniseNode(result.Tableau.Node(wkrq.NodeID(i))))
	}
	//
	for _, leaf := range result.OpenLeaves {
		data.OpenLeaves = append(data.OpenLeaves, uint(leaf))
	}
	//
	for _, model := range result.Models {
		data.Models = append(data.Models, jsoniseModel(model))
	}
	//
	for _, step := range result.Trace {
		data.Trace = append(data.Trace, step.String())
	}
	//
	data.Stats = jsonStats{
		Nodes:        result.Stats.TotalNodes,
		Open:         result.Stats.OpenBranches,
		Closed:       result.Stats.ClosedBranches,
		Applications: result.Stats.Applications,
	}
	//
	return data
}

func jsoniseNode(node *wkrq.Node) jsonNode {
	data := jsonNode{
		Id:      uint(node.ID),
		Sign:    node.Formula.Sign.String(),
		Formula: node.Formula.Formula.String(),
	}
	//
	if node.Rule.HasValue() {
		data.Rule = node.Rule.Unwrap().String()
	}
	//
	if node.Instantiated.HasValue() {
		data.Constant = node.Instantiated.Unwrap().Name
	}
	//
	if node.Parent.HasValue() {
		parent := uint(node.Parent.Unwrap())
		data.Parent = &parent
	}
	//
	for _, child := range node.Children {
		data.Children = append(data.Children, uint(child))
	}
	//
	if node.CausesClosure {
		partner := uint(node.ContradictsWith.Unwrap())
		data.ClosesWith = &partner
	}
	//
	return data
}

// Model assignments serialise as a map from atom to sign, which the encoder
// emits in sorted key order.
func jsoniseModel(model wkrq.Model) map[string]string {
	data := make(map[string]string)
	//
	for _, atom := range model.Atoms() {
		data[atom.String()] = model.Value(atom).Unwrap().String()
	}
	//
	return data
}
