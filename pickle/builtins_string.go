//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package pickle

import "strconv"

// registerStringCommands installs the "string" sub-dispatcher named
// in spec section 4.6.
func (in *Interp) registerStringCommands() {
	in.RegisterCommand("string", cmdString, nil)
}

func cmdString(in *Interp, argv []string, _ interface{}) Code {
	if len(argv) < 2 {
		return in.arityError(argv)
	}
	switch argv[1] {
	case "length":
		return stringLength(in, argv)
	case "toupper":
		return stringToUpper(in, argv)
	case "tolower":
		return stringToLower(in, argv)
	case "trim":
		return stringTrim(in, argv, true, true)
	case "trimleft":
		return stringTrim(in, argv, true, false)
	case "trimright":
		return stringTrim(in, argv, false, true)
	case "reverse":
		return stringReverse(in, argv)
	case "index":
		return stringIndex(in, argv)
	case "match":
		return stringMatch(in, argv)
	case "equal":
		return stringEqual(in, argv)
	case "compare":
		return stringCompare(in, argv, false)
	case "compare-no-case":
		return stringCompare(in, argv, true)
	case "repeat":
		return stringRepeat(in, argv)
	case "first":
		return stringFirst(in, argv)
	case "range":
		return stringRange(in, argv)
	case "ordinal":
		return stringOrdinal(in, argv)
	case "char":
		return stringChar(in, argv)
	case "dec2hex":
		return stringDec2Hex(in, argv)
	case "hex2dec":
		return stringHex2Dec(in, argv)
	case "hash":
		return stringHash(in, argv)
	case "is":
		return stringIs(in, argv)
	default:
		return in.setError("unknown string subcommand '" + argv[1] + "'")
	}
}

func stringLength(in *Interp, argv []string) Code {
	if len(argv) != 3 {
		return in.arityError(argv)
	}
	return in.setResultInt(int64(len(argv[2])))
}

func stringToUpper(in *Interp, argv []string) Code {
	if len(argv) != 3 {
		return in.arityError(argv)
	}
	return in.setResult(asciiUpperString(argv[2]))
}

func stringToLower(in *Interp, argv []string) Code {
	if len(argv) != 3 {
		return in.arityError(argv)
	}
	return in.setResult(asciiLowerString(argv[2]))
}

func stringTrim(in *Interp, argv []string, left, right bool) Code {
	if len(argv) != 3 && len(argv) != 4 {
		return in.arityError(argv)
	}
	cutset := ""
	if len(argv) == 4 {
		cutset = argv[3]
	}
	return in.setResult(trimSide(argv[2], cutset, left, right))
}

func stringReverse(in *Interp, argv []string) Code {
	if len(argv) != 3 {
		return in.arityError(argv)
	}
	return in.setResult(reverseString(argv[2]))
}

// stringIndex implements "string index s n", where negative n counts
// from the end and out-of-range n clamps into [0, len-1].
func stringIndex(in *Interp, argv []string) Code {
	if len(argv) != 4 {
		return in.arityError(argv)
	}
	s := argv[2]
	if len(s) == 0 {
		return in.setResult("")
	}
	n, ok := parseStrictInt(argv[3])
	if !ok {
		return in.setError("NaN: \"" + argv[3] + "\"")
	}
	idx := clampIndex(int(n), len(s))
	return in.setResult(string(s[idx]))
}

func stringMatch(in *Interp, argv []string) Code {
	if len(argv) != 4 {
		return in.arityError(argv)
	}
	return in.setResultBool(globMatch(argv[2], argv[3]))
}

func stringEqual(in *Interp, argv []string) Code {
	if len(argv) != 4 {
		return in.arityError(argv)
	}
	return in.setResultBool(argv[2] == argv[3])
}

func stringCompare(in *Interp, argv []string, fold bool) Code {
	if len(argv) != 4 {
		return in.arityError(argv)
	}
	var cmp int
	if fold {
		cmp = compareFold(argv[2], argv[3])
	} else {
		switch {
		case argv[2] < argv[3]:
			cmp = -1
		case argv[2] > argv[3]:
			cmp = 1
		}
	}
	return in.setResultInt(int64(cmp))
}

func stringRepeat(in *Interp, argv []string) Code {
	if len(argv) != 4 {
		return in.arityError(argv)
	}
	n, ok := parseStrictInt(argv[3])
	if !ok || n < 0 {
		return in.setError("NaN: \"" + argv[3] + "\"")
	}
	out := make([]byte, 0, len(argv[2])*int(n))
	for i := int64(0); i < n; i++ {
		out = append(out, argv[2]...)
	}
	return in.setResult(string(out))
}

// stringFirst implements "string first needle hay ?start?", returning
// the byte offset of the first match at or after start, or -1.
func stringFirst(in *Interp, argv []string) Code {
	if len(argv) != 4 && len(argv) != 5 {
		return in.arityError(argv)
	}
	needle, hay := argv[2], argv[3]
	start := 0
	if len(argv) == 5 {
		n, ok := parseStrictInt(argv[4])
		if !ok {
			return in.setError("NaN: \"" + argv[4] + "\"")
		}
		start = int(n)
	}
	if start < 0 {
		start = 0
	}
	if start > len(hay) {
		return in.setResultInt(-1)
	}
	idx := indexFrom(hay, needle, start)
	return in.setResultInt(int64(idx))
}

func indexFrom(hay, needle string, start int) int {
	if needle == "" {
		return start
	}
	for i := start; i+len(needle) <= len(hay); i++ {
		if hay[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

// stringRange implements "string range s first last", clamping both
// indexes into [0, len(s)-1] (negative indexes count from the end).
func stringRange(in *Interp, argv []string) Code {
	if len(argv) != 5 {
		return in.arityError(argv)
	}
	s := argv[2]
	if len(s) == 0 {
		return in.setResult("")
	}
	first, ok1 := parseStrictInt(argv[3])
	last, ok2 := parseStrictInt(argv[4])
	if !ok1 || !ok2 {
		return in.setError("NaN in 'string range'")
	}
	lo := clampIndex(int(first), len(s))
	hi := clampIndex(int(last), len(s))
	if hi < lo {
		return in.setResult("")
	}
	return in.setResult(s[lo : hi+1])
}

func stringOrdinal(in *Interp, argv []string) Code {
	if len(argv) != 3 || len(argv[2]) == 0 {
		return in.arityError(argv)
	}
	return in.setResultInt(int64(argv[2][0]))
}

func stringChar(in *Interp, argv []string) Code {
	if len(argv) != 3 {
		return in.arityError(argv)
	}
	n, ok := parseStrictInt(argv[2])
	if !ok || n < 0 || n > 255 {
		return in.setError("NaN: \"" + argv[2] + "\"")
	}
	return in.setResult(string([]byte{byte(n)}))
}

func stringDec2Hex(in *Interp, argv []string) Code {
	if len(argv) != 3 {
		return in.arityError(argv)
	}
	n, ok := parseStrictInt(argv[2])
	if !ok {
		return in.setError("NaN: \"" + argv[2] + "\"")
	}
	return in.setResult(formatBase(n, 16))
}

func stringHex2Dec(in *Interp, argv []string) Code {
	if len(argv) != 3 {
		return in.arityError(argv)
	}
	n, err := strconv.ParseInt(argv[2], 16, 64)
	if err != nil {
		return in.setError("NaN: \"" + argv[2] + "\"")
	}
	return in.setResultInt(n)
}

// stringHash implements "string hash s": the DJB2 hash, the same
// function spec section 4.5 names for the command table, exposed here
// as a general-purpose utility for scripts.
func stringHash(in *Interp, argv []string) Code {
	if len(argv) != 3 {
		return in.arityError(argv)
	}
	return in.setResultInt(int64(djb2(argv[2])))
}

func djb2(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}

// stringIs implements "string is <class> s", covering every class
// spec section 4.6 names.
func stringIs(in *Interp, argv []string) Code {
	if len(argv) != 4 {
		return in.arityError(argv)
	}
	class, s := argv[2], argv[3]
	pred, ok := stringIsClasses[class]
	if !ok {
		return in.setError("unknown class '" + class + "' for 'string is'")
	}
	return in.setResultBool(pred(s))
}

var stringIsClasses = map[string]func(string) bool{
	"alnum":   func(s string) bool { return allBytes(s, isAlnum) },
	"alpha":   func(s string) bool { return allBytes(s, isAlpha) },
	"digit":   func(s string) bool { return allBytes(s, isDigit) },
	"graph":   func(s string) bool { return allBytes(s, isGraph) },
	"lower":   func(s string) bool { return allBytes(s, isLower) },
	"print":   func(s string) bool { return allBytes(s, isPrint) },
	"punct":   func(s string) bool { return allBytes(s, isPunct) },
	"space":   func(s string) bool { return allBytes(s, isSpace) },
	"upper":   func(s string) bool { return allBytes(s, isUpper) },
	"xdigit":  func(s string) bool { return allBytes(s, isXDigit) },
	"ascii":   func(s string) bool { return allBytes(s, isASCII) },
	"control": func(s string) bool { return allBytes(s, isControl) },
	"wordchar": func(s string) bool {
		return allBytes(s, func(b byte) bool { return isAlnum(b) || b == '_' })
	},
	"false":   func(s string) bool { b, err := evalBoolean(s); return err == nil && !b },
	"true":    func(s string) bool { b, err := evalBoolean(s); return err == nil && b },
	"boolean": func(s string) bool { _, err := evalBoolean(s); return err == nil },
	"integer": func(s string) bool { _, ok := parseStrictInt(s); return ok },
}

func allBytes(s string, pred func(byte) bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool  { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlnum(b byte) bool  { return isAlpha(b) || isDigit(b) }
func isLower(b byte) bool  { return b >= 'a' && b <= 'z' }
func isUpper(b byte) bool  { return b >= 'A' && b <= 'Z' }
func isSpace(b byte) bool  { return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f' }
func isPrint(b byte) bool  { return b >= 0x20 && b < 0x7f }
func isGraph(b byte) bool  { return isPrint(b) && b != ' ' }
func isControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}
func isASCII(b byte) bool { return b < 0x80 }
func isXDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
func isPunct(b byte) bool {
	return isGraph(b) && !isAlnum(b)
}

// evalBoolean interprets expr as a Tcl boolean literal: a strict
// integer (0 is false, anything else true), or one of the
// on/off/yes/no/true/false words (case-insensitive).
func evalBoolean(expr string) (bool, *Error) {
	if n, ok := parseStrictInt(expr); ok {
		return n != 0, nil
	}
	switch asciiLowerString(expr) {
	case "true", "yes", "on":
		return true, nil
	case "false", "no", "off":
		return false, nil
	}
	return false, Errorf(KindNumber, "not a boolean: %q", expr)
}
