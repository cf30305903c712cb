//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package host supplies the commands the interpreter core deliberately
// leaves out (spec section 1's "host collaborators"): console I/O,
// process control, environment access, the clock, and a source of
// randomness. These are registered on an interpreter the same way any
// embedder would call pickle.RegisterCommand -- nothing here reaches
// into the interpreter's internals.
package host

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/moneytech/pickle/pickle"
	"github.com/sirupsen/logrus"
)

// Bindings holds the I/O and policy a host installation needs: where
// "puts" writes, where "gets" reads from, whether the more dangerous
// commands ("exit", "system") are enabled, and a logger for the
// non-fatal conditions a host command can hit (spec.md's core never
// logs; this layer does).
type Bindings struct {
	Stdout       io.Writer
	Stdin        *bufio.Reader
	EnableExit   bool
	EnableSystem bool
	Logger       logrus.FieldLogger
}

// NewBindings returns Bindings wired to the process's real stdout and
// stdin, with both escape-hatch commands enabled.
func NewBindings(logger logrus.FieldLogger) *Bindings {
	return &Bindings{
		Stdout:       os.Stdout,
		Stdin:        bufio.NewReader(os.Stdin),
		EnableExit:   true,
		EnableSystem: true,
		Logger:       logger,
	}
}

// Register installs every host command onto in, skipping "exit" and
// "system" if the corresponding Bindings flag disables them.
func (b *Bindings) Register(in *pickle.Interp) error {
	commands := []struct {
		name string
		fn   pickle.CommandFunc
		on   bool
	}{
		{"puts", b.cmdPuts, true},
		{"gets", b.cmdGets, true},
		{"getenv", b.cmdGetenv, true},
		{"clock", b.cmdClock, true},
		{"rand", b.cmdRand, true},
		{"system", b.cmdSystem, b.EnableSystem},
		{"exit", b.cmdExit, b.EnableExit},
	}
	for _, c := range commands {
		if !c.on {
			continue
		}
		if err := in.RegisterCommand(c.name, c.fn, nil); err != nil {
			return err
		}
	}
	return nil
}

// cmdPuts implements "puts ?-nonewline? string", writing to b.Stdout
// the way commandPuts in the teacher package writes to its
// Interpreter's own io.Writer.
func (b *Bindings) cmdPuts(in *pickle.Interp, argv []string, _ interface{}) pickle.Code {
	if len(argv) < 2 || len(argv) > 3 {
		in.SetResultErrorArity(2, argv)
		return pickle.ERROR
	}
	format := "%s\n"
	text := argv[1]
	if len(argv) == 3 {
		if argv[1] != "-nonewline" {
			in.SetResultErrorArity(2, argv)
			return pickle.ERROR
		}
		format = "%s"
		text = argv[2]
	}
	fmt.Fprintf(b.Stdout, format, text)
	in.SetResultString(text)
	return pickle.OK
}

// cmdGets implements "gets": read one line from b.Stdin, with the
// trailing newline stripped, as the interpreter's result.
func (b *Bindings) cmdGets(in *pickle.Interp, argv []string, _ interface{}) pickle.Code {
	if len(argv) != 1 {
		in.SetResultErrorArity(0, argv)
		return pickle.ERROR
	}
	line, err := b.Stdin.ReadString('\n')
	if err != nil && line == "" {
		if b.Logger != nil {
			b.Logger.WithError(err).Debug("gets: end of input")
		}
		in.SetResultString("")
		return pickle.OK
	}
	in.SetResultString(strings.TrimRight(line, "\r\n"))
	return pickle.OK
}

// cmdGetenv implements "getenv name", returning the empty string for
// an unset variable rather than failing, matching a shell's behavior.
func (b *Bindings) cmdGetenv(in *pickle.Interp, argv []string, _ interface{}) pickle.Code {
	if len(argv) != 2 {
		in.SetResultErrorArity(1, argv)
		return pickle.ERROR
	}
	v, ok := os.LookupEnv(argv[1])
	if !ok && b.Logger != nil {
		b.Logger.WithField("name", argv[1]).Debug("getenv: not set")
	}
	in.SetResultString(v)
	return pickle.OK
}

// cmdClock implements "clock seconds", the only sub-form this host
// supports, returning Unix time as a decimal integer.
func (b *Bindings) cmdClock(in *pickle.Interp, argv []string, _ interface{}) pickle.Code {
	if len(argv) != 2 || argv[1] != "seconds" {
		in.SetResultErrorArity(1, argv)
		return pickle.ERROR
	}
	in.SetResultInteger(time.Now().Unix())
	return pickle.OK
}

// cmdRand implements "rand ?n?": with no argument, a pseudo-random
// non-negative int64; with n, a pseudo-random integer in [0, n).
func (b *Bindings) cmdRand(in *pickle.Interp, argv []string, _ interface{}) pickle.Code {
	switch len(argv) {
	case 1:
		in.SetResultInteger(rand.Int63())
		return pickle.OK
	case 2:
		n, err := strconv.ParseInt(argv[1], 10, 64)
		if err != nil || n <= 0 {
			in.SetResultError(fmt.Sprintf("rand: invalid bound '%s'", argv[1]))
			return pickle.ERROR
		}
		in.SetResultInteger(rand.Int63n(n))
		return pickle.OK
	default:
		in.SetResultErrorArity(1, argv)
		return pickle.ERROR
	}
}

// cmdSystem implements "system command args...", running the given
// program directly (not through a shell) with the remaining words as
// its arguments and returning its combined output with trailing
// newlines trimmed. A failure to start or a non-zero exit is logged
// and returned as ERROR, with the output and the error text as the
// result.
func (b *Bindings) cmdSystem(in *pickle.Interp, argv []string, _ interface{}) pickle.Code {
	if len(argv) < 2 {
		in.SetResultErrorArity(1, argv)
		return pickle.ERROR
	}
	cmd := exec.Command(argv[1], argv[2:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if b.Logger != nil {
			b.Logger.WithError(err).WithField("command", argv[1]).Warn("system: command failed")
		}
		in.SetResultError(string(out) + err.Error())
		return pickle.ERROR
	}
	in.SetResultString(strings.TrimRight(string(out), "\n"))
	return pickle.OK
}

// cmdExit implements "exit ?code?", terminating the host process.
func (b *Bindings) cmdExit(in *pickle.Interp, argv []string, _ interface{}) pickle.Code {
	code := 0
	if len(argv) == 2 {
		n, err := strconv.Atoi(argv[1])
		if err != nil {
			in.SetResultError(fmt.Sprintf("exit: invalid code '%s'", argv[1]))
			return pickle.ERROR
		}
		code = n
	}
	if b.Logger != nil {
		b.Logger.WithField("code", code).Debug("exit: host process terminating")
	}
	os.Exit(code)
	return pickle.OK // unreachable
}
