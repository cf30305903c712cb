//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package pickle

// command is one entry in the command table: its dispatch function
// and the private data passed to it. The two observable species from
// spec section 3 are both represented the same way here: built-ins
// close over or ignore privdata, while user procedures carry a
// *procData as privdata.
type command struct {
	name string
	fn   CommandFunc
	priv interface{}
}

// procData is the private data attached to a command registered by
// "proc": the raw, unparsed parameter-list source and body source,
// both owned by this record per spec section 3.
type procData struct {
	params string
	body   string
}

// commandTable stores registered commands by name, along with the
// order in which they were registered, so "info command" can answer
// positional queries (spec section 4.5) without relying on Go map
// iteration order. Lookup and uniqueness enforcement go through Go's
// built-in map, generalizing the teacher's own map[string]swatclCmd
// in place of spec section 4.5's hand-rolled DJB2 bucket chains --
// the map already gives O(1) average lookup and the no-duplicate-
// names invariant for free, and reimplementing a hash table by hand
// is not how idiomatic Go solves this (see DESIGN.md).
type commandTable struct {
	byName map[string]*command
	order  []string
}

func newCommandTable() *commandTable {
	return &commandTable{byName: make(map[string]*command)}
}

// register adds a new command, failing if the name is already taken.
func (t *commandTable) register(name string, fn CommandFunc, priv interface{}) *Error {
	if _, exists := t.byName[name]; exists {
		return Errorf(KindConflict, "command '%s' already defined", name)
	}
	t.byName[name] = &command{name: name, fn: fn, priv: priv}
	t.order = append(t.order, name)
	return nil
}

// lookup returns the command registered under name, if any.
func (t *commandTable) lookup(name string) (*command, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// rename copies the command at src to dst and removes src. Renaming
// to the empty string deletes the command outright (spec section
// 4.5). Renaming fails if dst is already registered, including when
// dst equals src.
func (t *commandTable) rename(src, dst string) *Error {
	c, ok := t.byName[src]
	if !ok {
		return Errorf(KindNoCommand, "no such command '%s'", src)
	}
	if dst == "" {
		delete(t.byName, src)
		t.removeFromOrder(src)
		return nil
	}
	if _, exists := t.byName[dst]; exists {
		return Errorf(KindConflict, "command '%s' already defined", dst)
	}
	moved := &command{name: dst, fn: c.fn, priv: c.priv}
	delete(t.byName, src)
	t.byName[dst] = moved
	for i, n := range t.order {
		if n == src {
			t.order[i] = dst
			break
		}
	}
	return nil
}

func (t *commandTable) removeFromOrder(name string) {
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}

// count returns the number of registered commands.
func (t *commandTable) count() int {
	return len(t.order)
}

// at returns the command at the given registration-order index.
func (t *commandTable) at(index int) (*command, bool) {
	if index < 0 || index >= len(t.order) {
		return nil, false
	}
	return t.byName[t.order[index]], true
}
