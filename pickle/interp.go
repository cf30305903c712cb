//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package pickle

import (
	"fmt"
	"strconv"
	"strings"
)

// Interp is an instance of the interpreter: its command table, call
// frame stack, current result, line counter, and recursion depth
// (spec section 3, "Interpreter"). The zero value is not usable;
// construct one with NewInterp.
type Interp struct {
	commands *commandTable
	frames   []*frame
	curIdx   int
	result   string
	line     int
	depth    int
	limits   Limits
}

// NewInterp allocates a new interpreter, registers the built-in
// commands, and defines the "version" variable as an integer
// constant, per spec section 6.
func NewInterp() *Interp {
	return NewInterpWithLimits(DefaultLimits())
}

// NewInterpWithLimits is like NewInterp but installs the given
// resource limits instead of the defaults; limits below the spec
// minimums are raised to those minimums.
func NewInterpWithLimits(limits Limits) *Interp {
	in := &Interp{
		commands: newCommandTable(),
		limits:   limits.clamp(),
	}
	in.frames = []*frame{{}}
	in.curIdx = 0
	in.registerCoreCommands()
	in.setVar("version", "1")
	return in
}

// currentFrame returns the call frame variable lookups and defines
// currently target: ordinarily the top of the call stack, but
// temporarily redirected by "uplevel" without touching the stack
// itself.
func (in *Interp) currentFrame() *frame {
	return in.frames[in.curIdx]
}

// pushFrame enters a new call frame (procedure entry) and makes it
// current.
func (in *Interp) pushFrame() {
	in.frames = append(in.frames, &frame{parent: in.currentFrame()})
	in.curIdx = len(in.frames) - 1
}

// popFrame leaves the top-most call frame (procedure exit),
// restoring the frame beneath it as current.
func (in *Interp) popFrame() {
	in.frames = in.frames[:len(in.frames)-1]
	in.curIdx = len(in.frames) - 1
}

// frameIndex resolves an uplevel/upvar "level" argument to an index
// into in.frames: a plain integer climbs that many frames above the
// current one, while a "#N" form addresses frame N counting from the
// bottom of the stack (the top-level frame is "#0").
func (in *Interp) frameIndex(spec string) (int, *Error) {
	if strings.HasPrefix(spec, "#") {
		n, err := strconv.Atoi(spec[1:])
		if err != nil {
			return 0, Errorf(KindArity, "bad level '%s'", spec)
		}
		if n < 0 || n >= len(in.frames) {
			return 0, Errorf(KindArity, "bad level '%s'", spec)
		}
		return n, nil
	}
	n, err := strconv.Atoi(spec)
	if err != nil {
		return 0, Errorf(KindArity, "bad level '%s'", spec)
	}
	idx := in.curIdx - n
	if idx < 0 || idx >= len(in.frames) {
		return 0, Errorf(KindArity, "bad level '%s'", spec)
	}
	return idx, nil
}

// GetVariable retrieves the value of name, following any alias link,
// from the current call frame. It fails if no such variable exists.
func (in *Interp) GetVariable(name string) (string, *Error) {
	v := in.currentFrame().find(name)
	if v == nil {
		return "", Errorf(KindNoVariable, "no such variable '%s'", name)
	}
	return resolve(v).value, nil
}

// GetVariableInt is like GetVariable but additionally requires the
// value to parse as a strict integer.
func (in *Interp) GetVariableInt(name string) (int64, *Error) {
	s, err := in.GetVariable(name)
	if err != nil {
		return 0, err
	}
	n, ok := parseStrictInt(s)
	if !ok {
		return 0, Errorf(KindNumber, "NaN: %q", s)
	}
	return n, nil
}

// setVar sets or creates name in the current frame, following a link
// if the name already resolves to one, and returns the concrete
// variable that received the value.
func (in *Interp) setVar(name, value string) *variable {
	f := in.currentFrame()
	v := f.find(name)
	if v == nil {
		return f.define(name, value)
	}
	target := resolve(v)
	target.value = value
	return target
}

// SetVariable sets or creates name in the current frame.
func (in *Interp) SetVariable(name, value string) {
	in.setVar(name, value)
}

// SetVariableInt is a convenience wrapper formatting n as a decimal
// string before calling SetVariable.
func (in *Interp) SetVariableInt(name string, n int64) {
	in.SetVariable(name, strconv.FormatInt(n, 10))
}

// UnsetVariable removes name from the current frame only (spec
// section 4.4); it fails if no such variable is defined there.
func (in *Interp) UnsetVariable(name string) *Error {
	if !in.currentFrame().remove(name) {
		return Errorf(KindUnsetMissing, "no such variable '%s'", name)
	}
	return nil
}

// RegisterCommand installs a new command, failing if the name is
// already registered.
func (in *Interp) RegisterCommand(name string, fn CommandFunc, privdata interface{}) *Error {
	return in.commands.register(name, fn, privdata)
}

// RenameCommand renames src to dst; dst == "" deletes src.
func (in *Interp) RenameCommand(src, dst string) *Error {
	return in.commands.rename(src, dst)
}

// GetResultString returns the interpreter's current result.
func (in *Interp) GetResultString() string {
	return in.result
}

// GetResultInteger parses the current result as a strict integer.
func (in *Interp) GetResultInteger() (int64, *Error) {
	n, ok := parseStrictInt(in.result)
	if !ok {
		return 0, Errorf(KindNumber, "NaN: %q", in.result)
	}
	return n, nil
}

// SetResultString replaces the interpreter's result.
func (in *Interp) SetResultString(s string) {
	in.result = s
}

// SetResultInteger replaces the interpreter's result with the
// decimal rendition of n.
func (in *Interp) SetResultInteger(n int64) {
	in.result = strconv.FormatInt(n, 10)
}

// setResult is the internal convenience used by built-ins to return
// OK with a given result in one expression.
func (in *Interp) setResult(s string) Code {
	in.result = s
	return OK
}

// setResultInt is setResult for an integer result.
func (in *Interp) setResultInt(n int64) Code {
	in.result = strconv.FormatInt(n, 10)
	return OK
}

// setResultBool renders a boolean the way every comparison and
// "string is" predicate in this package does: "1" or "0".
func (in *Interp) setResultBool(b bool) Code {
	if b {
		return in.setResult("1")
	}
	return in.setResult("0")
}

// setError installs msg as the result and returns ERROR. It is the
// standard way for a built-in to report failure, and is also used
// internally by the evaluator and parser.
func (in *Interp) setError(msg string) Code {
	in.result = msg
	return ERROR
}

// SetResultError sets the result to msg and is equivalent to what a
// built-in does before returning ERROR.
func (in *Interp) SetResultError(msg string) {
	in.result = msg
}

// failWith converts an *Error into an ERROR return, installing its
// message as the result. The error's Kind is available to callers
// that caught err before it reached here; once it becomes the
// interpreter result it is a plain diagnostic string, per spec
// section 7 ("strictly out-of-band via the return code").
func (in *Interp) failWith(err *Error) Code {
	return in.setError(err.Message)
}

// SetResultErrorArity formats and installs the standard "wrong number
// of arguments" diagnostic spec section 4.6 describes: the command
// name, the expected count, and the joined actual arguments.
func (in *Interp) SetResultErrorArity(expected int, argv []string) {
	name := ""
	if len(argv) > 0 {
		name = argv[0]
	}
	in.result = fmt.Sprintf("wrong # args: '%s' expects %d argument(s), got '%s'",
		name, expected, strings.Join(argv, " "))
}

// arityError is the built-ins' shorthand for reporting a wrong number
// of arguments: it installs a message naming the command and the
// joined actual arguments, without an expected count (most built-ins
// accept a small range rather than one fixed number), and returns
// ERROR. It does not go through SetResultErrorArity.
func (in *Interp) arityError(argv []string) Code {
	name := ""
	if len(argv) > 0 {
		name = argv[0]
	}
	in.result = fmt.Sprintf("wrong # args for '%s': got '%s'", name, strings.Join(argv, " "))
	return ERROR
}

// GetLine returns the line number most recently reached by the
// parser (spec section 3, "current line number"); it starts at zero
// and increases by one for every newline consumed.
func (in *Interp) GetLine() int {
	return in.line
}

// Depth returns the current recursion depth (procedure calls plus
// nested substitution/eval), for "info level".
func (in *Interp) Depth() int {
	return in.depth
}

// Limits returns the interpreter's configured resource limits.
func (in *Interp) Limits() Limits {
	return in.limits
}
