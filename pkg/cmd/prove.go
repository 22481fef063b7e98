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

var proveCmd = &cobra.Command{
	Use:   "prove [flags] formula",
	Short: "Decide satisfiability of a signed formula.",
	Long: `Construct a tableau deciding whether a given formula can take the truth
	value asserted by its sign, printing the derivation tree along with any
	models found.  The formula is checked under the sign given by --sign
	(default t), or under a sign prefix written in the formula itself.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg proveConfig
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
		cfg.sign = GetString(cmd, "sign")
		cfg.acrq = GetFlag(cmd, "acrq")
		cfg.format = GetString(cmd, "format")
		cfg.models = GetFlag(cmd, "models")
		cfg.trace = GetFlag(cmd, "trace")
		cfg.maxNodes = GetUint(cmd, "max-nodes")
		cfg.output = GetString(cmd, "output")
		//
		prove(args[0], cfg)
	},
}

// prove config encapsulates the parameters used when deciding a formula.
type proveConfig struct {
	// sign the formula is checked under.
	sign string
	// acrq selects the bilateral logic.
	acrq bool
	// format of the rendered derivation (ascii / unicode / latex / json).
	format string
	// models requests a listing of every model.
	models bool
	// trace requests a listing of rule applications.
	trace bool
	// maxNodes bounds the derivation tree.
	maxNodes uint
	// output file, or empty for stdout.
	output string
}

func prove(input string, cfg proveConfig) {
	sign, ok := wkrq.ParseSign(cfg.sign)
	//
	if !ok {
		fmt.Printf("unknown sign \"%s\"\n", cfg.sign)
		os.Exit(2)
	}
	// Parse formula, allowing a sign prefix to override --sign.
	sf, errs := syntax.ParseSigned(input)
	//
	if len(errs) > 0 {
		printSyntaxErrors(errs)
	}
	//
	if syntax.HasSignPrefix(input) {
		sign = sf.Sign
	}
	//
	opts := wkrq.Options{MaxNodes: cfg.maxNodes, Trace: cfg.trace, AllModels: cfg.models}
	log.Debugf("deciding %s:%s with %d node budget", sign, sf.Formula, cfg.maxNodes)
	//
	var result wkrq.Result
	//
	if cfg.acrq {
		result = wkrq.SolveACrQ(opts, true, wkrq.Signed(sign, sf.Formula))
	} else {
		result = wkrq.Solve(opts, wkrq.Signed(sign, sf.Formula))
	}
	//
	out := openOutput(cfg.output)
	defer closeOutput(out)
	//
	config := render.DefaultConfig(out)
	//
	var err error
	//
	switch cfg.format {
	case "", "unicode", "ascii":
		config.Unicode = cfg.format != "ascii"
		err = renderText(out, config, &result, cfg)
	case "latex":
		err = render.Latex(out, &result)
	case "json":
		err = render.Json(out, &result)
	default:
		fmt.Printf("unknown format \"%s\"\n", cfg.format)
		os.Exit(2)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

// Render the derivation textually, along with any requested model and trace
// listings.
func renderText(out *os.File, config render.Config, result *wkrq.Result, cfg proveConfig) error {
	if err := render.Text(out, config, result); err != nil {
		return err
	}
	//
	if cfg.models && len(result.Models) > 0 {
		if cfg.acrq {
			return render.BilateralModels(out, config, result)
		}
		//
		return render.Models(out, config, result)
	}
	//
	if cfg.trace {
		return render.Trace(out, result)
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(proveCmd)
	proveCmd.Flags().String("sign", "t", "sign to check the formula under (t/f/e/m/n)")
	proveCmd.Flags().Bool("acrq", false, "use the paraconsistent bilateral logic")
	proveCmd.Flags().String("format", "", "derivation format (ascii/unicode/latex/json)")
	proveCmd.Flags().Bool("models", false, "list every model of the formula")
	proveCmd.Flags().Bool("trace", false, "list rule applications in order")
	proveCmd.Flags().Uint("max-nodes", 10000, "bound the derivation tree (0 for unbounded)")
	proveCmd.Flags().StringP("output", "o", "", "write output to file")
}
