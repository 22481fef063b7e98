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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/consensys/go-wkrq/pkg/util/source"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] old_file new_file",
	Short: "Show differences between two saved outputs.",
	Long: `Reports a line diff between two saved derivation or trace dumps, which is
	useful when the outputs are expected to be identical.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Read both files
		files, err := source.ReadFiles(args...)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if n := lineDiff(string(files[0].Contents()), string(files[1].Contents())); n > 0 {
			os.Exit(1)
		}
	},
}

// Print changed lines between two texts, returning the number of changes.
// Unchanged lines are not echoed.
func lineDiff(oldText string, newText string) uint {
	dmp := diffpatch.New()
	// Diff at line granularity
	chars1, chars2, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	//
	changes := uint(0)
	//
	for _, diff := range diffs {
		if diff.Type == diffpatch.DiffEqual {
			continue
		}
		//
		for _, line := range splitLines(diff.Text) {
			if diff.Type == diffpatch.DiffDelete {
				fmt.Println(color.RedString("- %s", line))
			} else {
				fmt.Println(color.GreenString("+ %s", line))
			}
			//
			changes++
		}
	}
	//
	return changes
}

// Split a diff chunk into its lines, dropping the trailing empty fragment a
// final newline otherwise produces.
func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
