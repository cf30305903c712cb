//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package host

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/moneytech/pickle/pickle"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBindings(stdin string) (*Bindings, *bytes.Buffer) {
	var out bytes.Buffer
	b := &Bindings{
		Stdout:       &out,
		Stdin:        bufio.NewReader(strings.NewReader(stdin)),
		EnableExit:   false,
		EnableSystem: true,
		Logger:       logrus.New(),
	}
	return b, &out
}

func TestRegisterSkipsDisabledCommands(t *testing.T) {
	in := pickle.NewInterp()
	b, _ := newTestBindings("")
	require.NoError(t, b.Register(in))

	code := in.Eval("exit 0")
	assert.Equal(t, pickle.ERROR, code)

	code = in.Eval(`puts hello`)
	assert.Equal(t, pickle.OK, code)
}

func TestPutsWritesToStdoutAndSetsResult(t *testing.T) {
	in := pickle.NewInterp()
	b, out := newTestBindings("")
	require.NoError(t, b.Register(in))

	code := in.Eval("puts hello")
	require.Equal(t, pickle.OK, code)
	assert.Equal(t, "hello\n", out.String())
	assert.Equal(t, "hello", in.GetResultString())
}

func TestPutsNoNewline(t *testing.T) {
	in := pickle.NewInterp()
	b, out := newTestBindings("")
	require.NoError(t, b.Register(in))

	code := in.Eval("puts -nonewline hi")
	require.Equal(t, pickle.OK, code)
	assert.Equal(t, "hi", out.String())
}

func TestGetsReadsOneLine(t *testing.T) {
	in := pickle.NewInterp()
	b, _ := newTestBindings("first line\nsecond line\n")
	require.NoError(t, b.Register(in))

	require.Equal(t, pickle.OK, in.Eval("gets"))
	assert.Equal(t, "first line", in.GetResultString())
	require.Equal(t, pickle.OK, in.Eval("gets"))
	assert.Equal(t, "second line", in.GetResultString())
}

func TestGetenvReturnsEmptyForUnset(t *testing.T) {
	in := pickle.NewInterp()
	b, _ := newTestBindings("")
	require.NoError(t, b.Register(in))

	code := in.Eval("getenv PICKLE_TEST_VAR_DOES_NOT_EXIST")
	require.Equal(t, pickle.OK, code)
	assert.Equal(t, "", in.GetResultString())
}

func TestRandWithBoundStaysInRange(t *testing.T) {
	in := pickle.NewInterp()
	b, _ := newTestBindings("")
	require.NoError(t, b.Register(in))

	for i := 0; i < 20; i++ {
		require.Equal(t, pickle.OK, in.Eval("rand 10"))
		n, err := in.GetResultInteger()
		require.Nil(t, err)
		assert.True(t, n >= 0 && n < 10)
	}
}

func TestClockSecondsReturnsPositiveInteger(t *testing.T) {
	in := pickle.NewInterp()
	b, _ := newTestBindings("")
	require.NoError(t, b.Register(in))

	require.Equal(t, pickle.OK, in.Eval("clock seconds"))
	n, err := in.GetResultInteger()
	require.Nil(t, err)
	assert.True(t, n > 0)
}
