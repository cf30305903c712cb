//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package pickle

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoCommandCountAndLookup(t *testing.T) {
	in := NewInterp()
	before := in.commands.count()

	require.Equal(t, OK, in.Eval("proc double {x} {* $x 2}"))

	require.Equal(t, OK, in.Eval("info command"))
	after, err := in.GetResultInteger()
	require.Nil(t, err)
	assert.Equal(t, int64(before+1), after)

	require.Equal(t, OK, in.Eval("info command double"))
	idx, err := in.GetResultInteger()
	require.Nil(t, err)
	assert.True(t, idx >= 0)

	at := "info command " + strconv.FormatInt(idx, 10)

	require.Equal(t, OK, in.Eval(at+" name"))
	assert.Equal(t, "double", in.GetResultString())

	require.Equal(t, OK, in.Eval(at+" args"))
	assert.Equal(t, "x", in.GetResultString())

	require.Equal(t, OK, in.Eval(at+" body"))
	assert.Equal(t, "* $x 2", in.GetResultString())
}

func TestInfoLevelTracksCallDepth(t *testing.T) {
	in := NewInterp()
	require.Equal(t, OK, in.Eval("proc reportlevel {} {info level}"))
	require.Equal(t, OK, in.Eval("reportlevel"))
	n, err := in.GetResultInteger()
	require.Nil(t, err)
	assert.True(t, n > 0)
}

func TestInfoFeaturesLooksUpRequestedKey(t *testing.T) {
	in := NewInterp()
	require.Equal(t, OK, in.Eval("info features unicode"))
	assert.Equal(t, "0", in.GetResultString())

	code := in.Eval("info features nonsense")
	assert.Equal(t, ERROR, code)
}

func TestInfoLimitsReportsConfiguredValues(t *testing.T) {
	limits := Limits{MaxDepth: 50, MaxArgc: 20}
	in := NewInterpWithLimits(limits)
	require.Equal(t, OK, in.Eval("info limits depth"))
	assert.Equal(t, "50", in.GetResultString())
	require.Equal(t, OK, in.Eval("info limits argc"))
	assert.Equal(t, "20", in.GetResultString())
}
