//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package pickle

import "fmt"

// Eval parses and executes source, returning the resulting code. The
// current result is retrievable afterward via GetResultString (spec
// section 6). Eval recurses into itself for bracketed command
// substitution and for the bodies evaluated by built-ins such as
// "if", "while", "eval", and user procedures; every entry counts
// against the shared recursion-depth limit (spec section 4.3,
// "Recursion guard"), so a deeply bracket-nested expression and a
// deeply recursive procedure are bounded by the same knob.
func (in *Interp) Eval(source string) Code {
	if in.depth >= in.limits.MaxDepth {
		return in.setError("recursion limit exceeded")
	}
	in.depth++
	defer func() { in.depth-- }()

	in.result = ""
	p := newParser(in, source)
	var argv []string
	newWord := true

	for {
		tok, perr := p.next()
		if perr != nil {
			return in.failWith(perr)
		}

		switch tok.typ {
		case tokEOF:
			return OK
		case tokSEP:
			newWord = true
			continue
		case tokEOL:
			newWord = true
			if len(argv) == 0 {
				continue
			}
			code := in.invoke(argv)
			argv = nil
			if code != OK {
				return code
			}
			continue
		}

		text := tok.text
		switch tok.typ {
		case tokVAR:
			v, err := in.GetVariable(text)
			if err != nil {
				return in.failWith(err)
			}
			text = v
		case tokCMD:
			code := in.Eval(text)
			if code != OK {
				return code
			}
			text = in.result
		case tokESC:
			decoded, err := decodeEscapes(text)
			if err != nil {
				return in.failWith(err)
			}
			text = decoded
		}

		if len(argv) >= in.limits.MaxArgc && newWord {
			return in.setError(fmt.Sprintf("too many arguments (max %d)", in.limits.MaxArgc))
		}
		if newWord || len(argv) == 0 {
			argv = append(argv, text)
		} else {
			argv[len(argv)-1] += text
		}
		newWord = false
	}
}

// invoke dispatches argv[0] to its registered command, after
// confirming the command exists (spec section 4.3, step 5).
func (in *Interp) invoke(argv []string) Code {
	cmd, ok := in.commands.lookup(argv[0])
	if !ok {
		return in.setError(fmt.Sprintf("no such command '%s'", argv[0]))
	}
	return cmd.fn(in, argv, cmd.priv)
}
