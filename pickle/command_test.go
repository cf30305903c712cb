//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package pickle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(in *Interp, argv []string, _ interface{}) Code { return in.setResult("") }

func TestCommandTableRejectsDuplicateNames(t *testing.T) {
	tbl := newCommandTable()
	require.Nil(t, tbl.register("foo", noop, nil))
	err := tbl.register("foo", noop, nil)
	require.NotNil(t, err)
	assert.Equal(t, KindConflict, err.Kind)
}

func TestCommandTableRenamePreservesOrderPosition(t *testing.T) {
	tbl := newCommandTable()
	require.Nil(t, tbl.register("a", noop, nil))
	require.Nil(t, tbl.register("b", noop, nil))
	require.Nil(t, tbl.register("c", noop, nil))

	require.Nil(t, tbl.rename("b", "bee"))
	c, ok := tbl.at(1)
	require.True(t, ok)
	assert.Equal(t, "bee", c.name)

	_, ok = tbl.lookup("b")
	assert.False(t, ok)
}

func TestCommandTableRenameToEmptyDeletes(t *testing.T) {
	tbl := newCommandTable()
	require.Nil(t, tbl.register("a", noop, nil))
	require.Nil(t, tbl.rename("a", ""))
	assert.Equal(t, 0, tbl.count())
	_, ok := tbl.lookup("a")
	assert.False(t, ok)
}

func TestCommandTableRenameConflict(t *testing.T) {
	tbl := newCommandTable()
	require.Nil(t, tbl.register("a", noop, nil))
	require.Nil(t, tbl.register("b", noop, nil))
	err := tbl.rename("a", "b")
	require.NotNil(t, err)
	assert.Equal(t, KindConflict, err.Kind)
}

func TestVariableResolveFollowsLinkChain(t *testing.T) {
	root := &variable{name: "root", value: "42"}
	mid := &variable{name: "mid", linked: true, link: root}
	leaf := &variable{name: "leaf", linked: true, link: mid}
	assert.Equal(t, "42", resolve(leaf).value)
}

func TestFrameDefineInsertsAtHead(t *testing.T) {
	f := &frame{}
	f.define("a", "1")
	f.define("b", "2")
	require.Len(t, f.vars, 2)
	assert.Equal(t, "b", f.vars[0].name)
}

func TestFrameRemove(t *testing.T) {
	f := &frame{}
	f.define("a", "1")
	assert.True(t, f.remove("a"))
	assert.False(t, f.remove("a"))
	assert.Nil(t, f.find("a"))
}
