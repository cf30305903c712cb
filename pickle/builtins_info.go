//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package pickle

import (
	"fmt"

	"github.com/alecthomas/repr"
)

// registerInfoCommands installs "info", the introspection
// sub-dispatcher named in spec section 4.6, plus the "dump" debug
// sub-key added by SPEC_FULL.md section 10.6.
func (in *Interp) registerInfoCommands() {
	in.RegisterCommand("info", cmdInfo, nil)
}

func cmdInfo(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) < 2 {
		return in.arityError(argv)
	}
	switch argv[1] {
	case "command":
		return infoCommand(in, argv)
	case "line":
		return infoLine(in, argv)
	case "level":
		return infoLevel(in, argv)
	case "width":
		return infoWidth(in, argv)
	case "limits":
		return infoLimits(in, argv)
	case "features":
		return infoFeatures(in, argv)
	case "dump":
		return infoDump(in, argv)
	default:
		return in.setError("unknown info subcommand '" + argv[1] + "'")
	}
}

// infoCommand answers the three forms spec section 4.5 describes:
// "info command" (no further args) returns the table's count; "info
// command <name>" returns the registration-order index of <name>, or
// -1; "info command <index> <field>" returns one of that record's
// "name", "args", or "body" fields, with built-ins reporting a
// "{built-in ...}" placeholder for args/body since they have no Tcl
// source.
func infoCommand(in *Interp, argv []string) Code {
	rest := argv[2:]
	switch len(rest) {
	case 0:
		return in.setResultInt(int64(in.commands.count()))
	case 1:
		for i := 0; i < in.commands.count(); i++ {
			c, _ := in.commands.at(i)
			if c.name == rest[0] {
				return in.setResultInt(int64(i))
			}
		}
		return in.setResultInt(-1)
	case 2:
		idx, ok := parseStrictInt(rest[0])
		if !ok {
			return in.setError("NaN: \"" + rest[0] + "\"")
		}
		c, ok2 := in.commands.at(int(idx))
		if !ok2 {
			return in.setError(fmt.Sprintf("no such command at index %d", idx))
		}
		switch rest[1] {
		case "name":
			return in.setResult(c.name)
		case "args":
			if p, ok := c.priv.(*procData); ok {
				return in.setResult(p.params)
			}
			return in.setResult(fmt.Sprintf("{built-in %p %p}", c.fn, c.fn))
		case "body":
			if p, ok := c.priv.(*procData); ok {
				return in.setResult(p.body)
			}
			return in.setResult(fmt.Sprintf("{built-in %p %p}", c.fn, c.fn))
		default:
			return in.setError("unknown field '" + rest[1] + "' for 'info command'")
		}
	default:
		return in.arityError(argv)
	}
}

func infoLine(in *Interp, argv []string) Code {
	if len(argv) != 2 {
		return in.arityError(argv)
	}
	return in.setResultInt(int64(in.GetLine()))
}

func infoLevel(in *Interp, argv []string) Code {
	if len(argv) != 2 {
		return in.arityError(argv)
	}
	return in.setResultInt(int64(in.Depth()))
}

// infoWidth reports the maximum number of words a single command may
// be dispatched with -- "width" of the widest argv the evaluator will
// accept before erroring with "too many arguments" (spec section 6's
// max-argc limit).
func infoWidth(in *Interp, argv []string) Code {
	if len(argv) != 2 {
		return in.arityError(argv)
	}
	return in.setResultInt(int64(in.limits.MaxArgc))
}

func infoLimits(in *Interp, argv []string) Code {
	if len(argv) != 3 {
		return in.arityError(argv)
	}
	switch argv[2] {
	case "depth":
		return in.setResultInt(int64(in.limits.MaxDepth))
	case "argc":
		return in.setResultInt(int64(in.limits.MaxArgc))
	default:
		return in.setError("unknown limit '" + argv[2] + "'")
	}
}

// featureFlags enumerates the capability questions "info features"
// answers. The reference implementation's sub-dispatch compares its
// argument against the literal word "features" rather than the
// requested key (a bug documented in spec.md's Open Questions); this
// port implements the intended behavior instead -- looking the
// requested key up in this table -- rather than reproducing the bug.
var featureFlags = map[string]int64{
	"floats":      0,
	"unicode":     0,
	"concurrency": 0,
	"gc":          0,
	"tcl":         0,
}

func infoFeatures(in *Interp, argv []string) Code {
	if len(argv) != 3 {
		return in.arityError(argv)
	}
	v, ok := featureFlags[argv[2]]
	if !ok {
		return in.setError("unknown feature '" + argv[2] + "'")
	}
	return in.setResultInt(v)
}

// infoDump pretty-prints the variables visible in the current frame
// using github.com/alecthomas/repr, an aid for interactive debugging
// (SPEC_FULL.md section 10.6); it is additive and never fails.
func infoDump(in *Interp, argv []string) Code {
	f := in.currentFrame()
	names := make([]string, 0, len(f.vars))
	values := make(map[string]string, len(f.vars))
	for _, v := range f.vars {
		names = append(names, v.name)
		values[v.name] = resolve(v).value
	}
	return in.setResult(repr.String(values, repr.Indent("  ")) + fmt.Sprintf(" (%d vars)", len(names)))
}
