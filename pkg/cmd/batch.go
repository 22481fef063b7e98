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

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-wkrq/pkg/suite"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] suite_file",
	Short: "Run a suite of problems against their expected verdicts.",
	Long: `Run every problem of a YAML suite across a pool of parallel workers,
	reporting each verdict against the expected one.  The exit code is
	non-zero when any problem fails.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		jobs := GetUint(cmd, "jobs")
		acrq := GetFlag(cmd, "acrq")
		//
		runBatch(args[0], jobs, acrq)
	},
}

func runBatch(filename string, jobs uint, acrq bool) {
	s, err := suite.ReadSuite(filename)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// An explicit --acrq runs the whole suite under the bilateral logic.
	if acrq {
		for i := range s.Problems {
			s.Problems[i].Mode = suite.ModeAcrq
		}
	}
	//
	log.Debugf("running %d problems across %d workers", len(s.Problems), jobs)
	outcomes := suite.Run(jobs, s.Problems)
	//
	for _, outcome := range outcomes {
		reportOutcome(&outcome)
	}
	//
	failures := suite.Failures(outcomes)
	fmt.Printf("%d problems, %d failures\n", len(outcomes), failures)
	//
	if failures > 0 {
		os.Exit(1)
	}
}

func reportOutcome(outcome *suite.Outcome) {
	problem := outcome.Problem
	//
	switch {
	case outcome.Err != nil:
		fmt.Printf("[%s] %s: %s\n", color.RedString("FAIL"), problem.Name, outcome.Err)
	case !outcome.Pass:
		fmt.Printf("[%s] %s: expected %s, got %s (%d nodes, %s)\n", color.RedString("FAIL"),
			problem.Name, problem.Expect, outcome.Verdict, outcome.Stats.TotalNodes, outcome.Elapsed)
	default:
		fmt.Printf("[%s] %s: %s (%d nodes, %s)\n", color.GreenString("PASS"),
			problem.Name, outcome.Verdict, outcome.Stats.TotalNodes, outcome.Elapsed)
	}
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().UintP("jobs", "j", 0, "number of parallel workers (0 for one per CPU)")
	batchCmd.Flags().Bool("acrq", false, "run every problem under the bilateral logic")
}
