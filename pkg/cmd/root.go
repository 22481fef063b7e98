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
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wkrq",
	Short: "A tableau prover for weak Kleene logic.",
	Long: `A signed tableau decision procedure for weak Kleene logic with restricted
quantifiers (wKrQ), along with its paraconsistent bilateral extension (ACrQ).`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Printf("wkrq %s\n", version())
		} else {
			// No subcommand given
			_ = cmd.Help()
		}
	},
}

// Determine the version of this executable, which depends on how it was
// built.
func version() string {
	// Built via "make"
	if Version != "" {
		return Version
	}
	// Built via "go install"
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	// Unknown, perhaps "go run"
	return "(unknown version)"
}

// Execute the root command, which dispatches to whichever subcommand was
// requested.  This is called once, by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
