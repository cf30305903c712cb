//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package pickle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStrictIntRejectsMalformed(t *testing.T) {
	cases := []string{"", "+", "-", "4x", "0x", "0xg", " 4", "4 ", "--4", "4.0"}
	for _, c := range cases {
		_, ok := parseStrictInt(c)
		assert.Falsef(t, ok, "expected %q to be rejected", c)
	}
}

func TestParseStrictIntAcceptsDecimalAndHex(t *testing.T) {
	n, ok := parseStrictInt("-42")
	assert.True(t, ok)
	assert.Equal(t, int64(-42), n)

	n, ok = parseStrictInt("0xFF")
	assert.True(t, ok)
	assert.Equal(t, int64(255), n)

	n, ok = parseStrictInt("+7")
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)
}

func TestGlobMatch(t *testing.T) {
	assert.True(t, globMatch("a*c", "abc"))
	assert.True(t, globMatch("a*c", "ac"))
	assert.False(t, globMatch("a*c", "ab"))
	assert.True(t, globMatch("a?c", "abc"))
	assert.False(t, globMatch("a?c", "ac"))
	assert.True(t, globMatch("*", ""))
	assert.True(t, globMatch("a%*b", "a*b"))
}

func TestClampIndexNegativeCountsFromEnd(t *testing.T) {
	assert.Equal(t, 4, clampIndex(-1, 5))
	assert.Equal(t, 0, clampIndex(-100, 5))
	assert.Equal(t, 4, clampIndex(100, 5))
	assert.Equal(t, 2, clampIndex(2, 5))
}

func TestTrimSideDefaultWhitespace(t *testing.T) {
	assert.Equal(t, "hi", trimSide("  hi  ", "", true, true))
	assert.Equal(t, "hi  ", trimSide("  hi  ", "", true, false))
	assert.Equal(t, "  hi", trimSide("  hi  ", "", false, true))
}

func TestCaseFolding(t *testing.T) {
	assert.True(t, equalFold("Hello", "hello"))
	assert.False(t, equalFold("Hello", "hellO!"))
	assert.Equal(t, "abc", asciiLowerString("ABC"))
	assert.Equal(t, "ABC", asciiUpperString("abc"))
}
