//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package pickle

import (
	"strconv"
	"strings"
)

// registerCoreCommands installs the built-in library named in spec
// section 4.6: control flow, variable access, procedures, frame
// manipulation, and the list/string/math/info sub-dispatchers
// registered from their own files.
func (in *Interp) registerCoreCommands() {
	in.RegisterCommand("set", cmdSet, nil)
	in.RegisterCommand("unset", cmdUnset, nil)
	in.RegisterCommand("if", cmdIf, nil)
	in.RegisterCommand("while", cmdWhile, nil)
	in.RegisterCommand("break", cmdBreak, nil)
	in.RegisterCommand("continue", cmdContinue, nil)
	in.RegisterCommand("return", cmdReturn, nil)
	in.RegisterCommand("catch", cmdCatch, nil)
	in.RegisterCommand("proc", cmdProc, nil)
	in.RegisterCommand("rename", cmdRename, nil)
	in.RegisterCommand("uplevel", cmdUplevel, nil)
	in.RegisterCommand("upvar", cmdUpvar, nil)
	in.RegisterCommand("eval", cmdEval, nil)
	in.RegisterCommand("concat", cmdConcat, nil)
	in.registerListCommands()
	in.registerStringCommands()
	in.registerMathCommands()
	in.registerInfoCommands()
}

// cmdSet implements "set name ?value?" (spec section 4.6).
func cmdSet(in *Interp, argv []string, _ interface{}) Code {
	switch len(argv) {
	case 2:
		v, err := in.GetVariable(argv[1])
		if err != nil {
			return in.failWith(err)
		}
		return in.setResult(v)
	case 3:
		in.SetVariable(argv[1], argv[2])
		return in.setResult(argv[2])
	default:
		return in.arityError(argv)
	}
}

// cmdUnset implements "unset name".
func cmdUnset(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) != 2 {
		return in.arityError(argv)
	}
	if err := in.UnsetVariable(argv[1]); err != nil {
		return in.failWith(err)
	}
	return in.setResult("")
}

// cmdIf implements "if cond then ?else elsebody?" (3 or 5 args only,
// per spec section 4.6).
func cmdIf(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) != 3 && len(argv) != 5 {
		return in.arityError(argv)
	}
	code := in.Eval(argv[1])
	if code != OK {
		return code
	}
	n, err := in.GetResultInteger()
	if err != nil {
		return in.failWith(err)
	}
	if n != 0 {
		return in.Eval(argv[2])
	}
	if len(argv) == 5 {
		return in.Eval(argv[4])
	}
	return in.setResult("")
}

// cmdWhile implements "while cond body". OK and CONTINUE from the
// body keep looping; BREAK stops with OK; any other code propagates.
func cmdWhile(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) != 3 {
		return in.arityError(argv)
	}
	for {
		code := in.Eval(argv[1])
		if code != OK {
			return code
		}
		n, err := in.GetResultInteger()
		if err != nil {
			return in.failWith(err)
		}
		if n == 0 {
			return in.setResult("")
		}
		code = in.Eval(argv[2])
		switch code {
		case OK, CONTINUE:
			continue
		case BREAK:
			return in.setResult("")
		default:
			return code
		}
	}
}

// cmdBreak implements the no-argument "break" command.
func cmdBreak(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) != 1 {
		return in.arityError(argv)
	}
	in.result = ""
	return BREAK
}

// cmdContinue implements the no-argument "continue" command.
func cmdContinue(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) != 1 {
		return in.arityError(argv)
	}
	in.result = ""
	return CONTINUE
}

// cmdReturn implements "return ?value? ?code?" (spec section 4.6).
func cmdReturn(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) < 1 || len(argv) > 3 {
		return in.arityError(argv)
	}
	value := ""
	if len(argv) >= 2 {
		value = argv[1]
	}
	code := RETURN
	if len(argv) == 3 {
		n, err := strconv.Atoi(argv[2])
		if err != nil {
			return in.setError("return: code must be an integer")
		}
		code = Code(n)
	}
	in.result = value
	return code
}

// cmdCatch implements "catch script varname": it always returns OK,
// storing the return code of evaluating script into varname.
func cmdCatch(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) != 3 {
		return in.arityError(argv)
	}
	code := in.Eval(argv[1])
	in.SetVariableInt(argv[2], int64(code))
	return in.setResultInt(int64(code))
}

// cmdProc implements "proc name arglist body": registers a user
// procedure whose private data is the raw arglist and body source.
func cmdProc(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) != 4 {
		return in.arityError(argv)
	}
	data := &procData{params: argv[2], body: argv[3]}
	if err := in.RegisterCommand(argv[1], invokeProcedure, data); err != nil {
		return in.failWith(err)
	}
	return in.setResult("")
}

// invokeProcedure is the CommandFunc every user-defined procedure
// shares: it pushes a frame, binds parameters positionally, evaluates
// the body, pops the frame, and converts a RETURN code into OK (spec
// section 4.6, "proc").
func invokeProcedure(in *Interp, argv []string, privdata interface{}) Code {
	data, ok := privdata.(*procData)
	if !ok {
		return in.setError("proc '" + argv[0] + "' missing private data")
	}
	params := strings.Fields(data.params)
	if len(params)+1 != len(argv) {
		return in.arityError(argv)
	}
	in.pushFrame()
	for i, name := range params {
		in.SetVariable(name, argv[i+1])
	}
	code := in.Eval(data.body)
	in.popFrame()
	if code == RETURN {
		return OK
	}
	return code
}

// cmdRename implements "rename src dst"; dst == "" deletes src.
func cmdRename(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) != 3 {
		return in.arityError(argv)
	}
	if err := in.RenameCommand(argv[1], argv[2]); err != nil {
		return in.failWith(err)
	}
	return in.setResult("")
}

// cmdUplevel implements "uplevel level script...": it concatenates
// the remaining arguments with spaces, switches the current frame to
// the target, evaluates, and restores the original frame regardless
// of outcome.
func cmdUplevel(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) < 3 {
		return in.arityError(argv)
	}
	idx, err := in.frameIndex(argv[1])
	if err != nil {
		return in.failWith(err)
	}
	script := strings.Join(argv[2:], " ")
	saved := in.curIdx
	in.curIdx = idx
	code := in.Eval(script)
	in.curIdx = saved
	return code
}

// cmdUpvar implements "upvar level other mine" (spec section 4.4):
// ensure "mine" exists in the current frame, get-or-create "other" in
// the target frame, then alias "mine" to "other".
func cmdUpvar(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) != 4 {
		return in.arityError(argv)
	}
	idx, err := in.frameIndex(argv[1])
	if err != nil {
		return in.failWith(err)
	}
	other, mine := argv[2], argv[3]

	cur := in.currentFrame()
	local := cur.find(mine)
	if local == nil {
		local = cur.define(mine, "")
	}

	target := in.frames[idx]
	remote := target.find(other)
	if remote == nil {
		remote = target.define(other, "")
	}

	if idx == in.curIdx && remote == local {
		return in.setError("upvar: cannot alias a variable to itself")
	}
	local.linked = true
	local.link = remote
	return in.setResult("")
}

// cmdEval implements "eval args...": join with spaces, evaluate.
func cmdEval(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) < 2 {
		return in.arityError(argv)
	}
	return in.Eval(strings.Join(argv[1:], " "))
}

// cmdConcat implements "concat args...": join with spaces, set
// result (no further evaluation).
func cmdConcat(in *Interp, argv []string, _ interface{}) Code {
	return in.setResult(strings.Join(argv[1:], " "))
}
