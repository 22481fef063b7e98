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
	"runtime"
	"sync"
	"time"

	"github.com/consensys/go-wkrq/pkg/syntax"
	"github.com/consensys/go-wkrq/pkg/wkrq"
)

// DefaultMaxNodes bounds problems which set no budget of their own.
// Interacting quantifier occurrences can diverge, so the runner never runs
// unbounded.
const DefaultMaxNodes = 10000

// Outcome of running one problem.
type Outcome struct {
	// Problem which was run.
	Problem *Problem
	// Verdict the problem actually produced.  Empty when the input failed
	// to parse.
	Verdict string
	// Pass indicates the verdict matched the expected one.
	Pass bool
	// Err holds the syntax error of an unparseable input.
	Err error
	// Elapsed wall-clock time deciding the problem, excluding parsing.
	Elapsed time.Duration
	// Stats of the underlying tableau construction.
	Stats wkrq.Stats
}

// Run decides every problem of a suite across a bounded pool of workers,
// returning outcomes in problem order.  Zero jobs means one worker per CPU.
func Run(jobs uint, problems []Problem) []Outcome {
	if jobs == 0 {
		jobs = uint(runtime.NumCPU())
	}
	//
	outcomes := make([]Outcome, len(problems))
	indices := make(chan int, len(problems))
	//
	var wg sync.WaitGroup
	// Dispatch workers
	for j := uint(0); j < jobs; j++ {
		wg.Add(1)
		//
		go func() {
			defer wg.Done()
			// Each index is owned by exactly one worker.
			for i := range indices {
				outcomes[i] = runProblem(&problems[i])
			}
		}()
	}
	// Feed the pool
	for i := range problems {
		indices <- i
	}
	//
	close(indices)
	wg.Wait()
	//
	return outcomes
}

// Failures counts outcomes which did not pass.
func Failures(outcomes []Outcome) uint {
	count := uint(0)
	//
	for _, outcome := range outcomes {
		if !outcome.Pass {
			count++
		}
	}
	//
	return count
}

func runProblem(problem *Problem) Outcome {
	outcome := Outcome{Problem: problem}
	//
	switch problem.Kind {
	case KindInference:
		runInference(problem, &outcome)
	default:
		runFormula(problem, &outcome)
	}
	//
	outcome.Pass = outcome.Err == nil && outcome.Verdict == problem.Expect
	//
	return outcome
}

func runFormula(problem *Problem, outcome *Outcome) {
	f, errs := syntax.ParseFormula(problem.Input)
	//
	if len(errs) > 0 {
		outcome.Err = &errs[0]
		return
	}
	// Sign was checked when the suite was loaded.
	sign, _ := wkrq.ParseSign(problem.Sign)
	opts := options(problem)
	signed := wkrq.Signed(sign, f)
	//
	var result wkrq.Result
	//
	start := time.Now()
	//
	if problem.Mode == ModeAcrq {
		result = wkrq.SolveACrQ(opts, true, signed)
	} else {
		result = wkrq.Solve(opts, signed)
	}
	//
	outcome.Elapsed = time.Since(start)
	outcome.Stats = result.Stats
	//
	switch {
	case result.Aborted:
		outcome.Verdict = VerdictAborted
	case result.Satisfiable:
		outcome.Verdict = VerdictSat
	default:
		outcome.Verdict = VerdictUnsat
	}
}

func runInference(problem *Problem, outcome *Outcome) {
	inference, errs := syntax.ParseInference(problem.Input)
	//
	if len(errs) > 0 {
		outcome.Err = &errs[0]
		return
	}
	//
	opts := options(problem)
	//
	var result wkrq.InferenceResult
	//
	start := time.Now()
	//
	if problem.Mode == ModeAcrq {
		result = wkrq.ValidACrQ(opts, true, inference)
	} else {
		result = wkrq.Valid(opts, inference)
	}
	//
	outcome.Elapsed = time.Since(start)
	outcome.Stats = result.Result.Stats
	//
	switch {
	case result.Aborted:
		outcome.Verdict = VerdictAborted
	case result.Valid:
		outcome.Verdict = VerdictValid
	default:
		outcome.Verdict = VerdictInvalid
	}
}

func options(problem *Problem) wkrq.Options {
	budget := problem.MaxNodes
	//
	if budget == 0 {
		budget = DefaultMaxNodes
	}
	//
	return wkrq.Options{MaxNodes: budget}
}
