//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/moneytech/pickle/pickle"
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Load and evaluate a script file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify exactly one <script> argument")
		}
		return runFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runFile loads path, optionally prints its token stream, evaluates
// it, and reports a non-OK result to stderr, exiting non-zero on
// ERROR the way a shell's script runner does.
func runFile(path string) error {
	source, err := os.ReadFile(path) // #nosec G304 -- user-supplied script path, same trust level as any interpreter
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	logger.WithField("path", path).Debug("loading script")

	if debugTokens {
		tokens, terr := pickle.DebugTokens(string(source))
		for _, line := range tokens {
			fmt.Println(line)
		}
		if terr != nil {
			fmt.Println(repr.String(terr))
		}
	}

	in := newInterp()
	code := in.Eval(string(source))
	if code == pickle.ERROR {
		fmt.Fprintln(os.Stderr, in.GetResultString())
		return fmt.Errorf("script %s failed", path)
	}
	if code != pickle.OK {
		fmt.Fprintf(os.Stderr, "script %s stopped with code %s: %s\n", path, code, in.GetResultString())
	}
	return nil
}
