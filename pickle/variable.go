//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package pickle

// maxLinkChain bounds how many alias hops resolve() will follow
// before giving up, so a variable that somehow became part of a
// cycle cannot hang the interpreter (spec section 3's invariant that
// link chains must terminate).
const maxLinkChain = 128

// variable is one binding within a call frame: a name, and either a
// direct value or a link to another variable, possibly in an
// ancestor frame. This is the explicit tagged-variant rendition spec
// section 9 calls for in place of the original's pointer tricks.
type variable struct {
	name   string
	linked bool
	value  string
	link   *variable
}

// resolve follows link chains to the concrete, direct-value variable
// backing v, stopping early (returning the last variable visited) if
// the chain runs suspiciously long, which should only happen if a
// cycle slipped past upvar's own check.
func resolve(v *variable) *variable {
	for hops := 0; v.linked && hops < maxLinkChain; hops++ {
		v = v.link
	}
	return v
}

// frame is a call frame: the variables defined directly in it, plus
// a pointer to the frame that was current when it was pushed. The
// parent pointer matches spec section 3's data model but is not
// walked: variable lookup searches only the current frame, and
// "uplevel"/"upvar" pick another frame by index into the flat frame
// stack on the interpreter, using a numeric level computed from that
// stack.
type frame struct {
	vars   []*variable
	parent *frame
}

// find returns the variable named name defined directly in this
// frame (not following links), or nil if there is none.
func (f *frame) find(name string) *variable {
	for _, v := range f.vars {
		if v.name == name {
			return v
		}
	}
	return nil
}

// define creates name as a fresh direct-value variable at the head of
// the frame's variable list (spec section 4.4: "create a new entry at
// the head of the frame's list").
func (f *frame) define(name, value string) *variable {
	v := &variable{name: name, value: value}
	f.vars = append([]*variable{v}, f.vars...)
	return v
}

// remove deletes the variable named name from this frame, reporting
// whether one was found.
func (f *frame) remove(name string) bool {
	for i, v := range f.vars {
		if v.name == name {
			f.vars = append(f.vars[:i], f.vars[i+1:]...)
			return true
		}
	}
	return false
}
