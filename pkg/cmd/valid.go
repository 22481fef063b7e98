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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-wkrq/pkg/render"
	"github.com/consensys/go-wkrq/pkg/syntax"
	"github.com/consensys/go-wkrq/pkg/wkrq"
)

var validCmd = &cobra.Command{
	Use:   "valid [flags] inference",
	Short: "Decide validity of an inference.",
	Long: `Decide whether an inference of the form "p1, ..., pn |- c" is valid, by
	refuting the assertion that every premise is true whilst the conclusion
	is not.  An invalid inference can be accompanied by a countermodel.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg validConfig
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg.acrq = GetFlag(cmd, "acrq")
		cfg.countermodel = GetFlag(cmd, "countermodel")
		cfg.maxNodes = GetUint(cmd, "max-nodes")
		//
		checkValid(args[0], cfg)
	},
}

// valid config encapsulates the parameters used when deciding an inference.
type validConfig struct {
	// acrq selects the bilateral logic.
	acrq bool
	// countermodel requests a countermodel when the inference is invalid.
	countermodel bool
	// maxNodes bounds the derivation tree.
	maxNodes uint
}

func checkValid(input string, cfg validConfig) {
	inference, errs := syntax.ParseInference(input)
	//
	if len(errs) > 0 {
		printSyntaxErrors(errs)
	}
	//
	opts := wkrq.Options{MaxNodes: cfg.maxNodes}
	log.Debugf("deciding %s with %d node budget", inference, cfg.maxNodes)
	//
	var result wkrq.InferenceResult
	//
	if cfg.acrq {
		result = wkrq.ValidACrQ(opts, true, inference)
	} else {
		result = wkrq.Valid(opts, inference)
	}
	//
	switch {
	case result.Aborted:
		fmt.Println("Aborted")
	case result.Valid:
		fmt.Println("Valid")
	default:
		fmt.Println("Invalid")
		//
		if cfg.countermodel {
			reportCountermodel(&result, cfg)
		}
	}
}

// Print the countermodel witnessing invalidity: a valuation making every
// premise true whilst the conclusion is not true.
func reportCountermodel(result *wkrq.InferenceResult, cfg validConfig) {
	config := render.DefaultConfig(os.Stdout)
	//
	var err error
	//
	if cfg.acrq {
		err = render.BilateralModels(os.Stdout, config, &result.Result)
	} else {
		err = render.Models(os.Stdout, config, &result.Result)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(validCmd)
	validCmd.Flags().Bool("acrq", false, "use the paraconsistent bilateral logic")
	validCmd.Flags().Bool("countermodel", false, "show a countermodel when invalid")
	validCmd.Flags().Uint("max-nodes", 10000, "bound the derivation tree (0 for unbounded)")
}
