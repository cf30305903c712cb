//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/moneytech/pickle/pickle"
)

// runREPL implements the interactive loop spec.md scopes out of the
// core: read a command, possibly spanning several lines while a brace
// or bracket group is still open, evaluate it, and print the result.
func runREPL(in *pickle.Interp) error {
	logger.Debug("starting REPL")
	scanner := bufio.NewScanner(os.Stdin)
	var buf strings.Builder

	prompt := func() {
		if buf.Len() == 0 {
			fmt.Print("% ")
		} else {
			fmt.Print("> ")
		}
	}

	prompt()
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
		buf.WriteByte('\n')

		if pending(buf.String()) {
			prompt()
			continue
		}

		source := buf.String()
		buf.Reset()
		code := in.Eval(source)
		switch code {
		case pickle.OK:
			if r := in.GetResultString(); r != "" {
				fmt.Println(r)
			}
		default:
			fmt.Fprintf(os.Stderr, "%s: %s\n", code, in.GetResultString())
		}
		prompt()
	}
	fmt.Println()
	return scanner.Err()
}

// pending reports whether source still has an unclosed brace group,
// bracket, or quoted string -- detected by probing the lexer via
// pickle.DebugTokens rather than re-implementing its nesting rules
// here, per SPEC_FULL.md section 12's REPL note.
func pending(source string) bool {
	_, err := pickle.DebugTokens(source)
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "unclosed")
}
