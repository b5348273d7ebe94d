/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

// binding is one (symbol, value) pair in an environment frame.
type binding struct {
	sym *Symbol
	val Value
}

// Env is a chained lexical scope: an ordered binding list that only
// grows at its end, plus a reference to the parent scope. A Lambda or
// Macro fixes its Env reference at construction time.
type Env struct {
	bindings []binding
	Outer    *Env
}

// NewEnv allocates a fresh, empty frame chained to outer. outer may be
// nil for the root (global) environment.
func NewEnv(outer *Env) *Env {
	return &Env{Outer: outer}
}

// Lookup scans the current frame's binding list for sym, and recurses
// into Outer on a miss. Panics with an "unbound symbol" message if the
// chain is exhausted - this is the spec's one designated error path
// for value-position symbol use.
func (e *Env) Lookup(sym *Symbol) Value {
	for en := e; en != nil; en = en.Outer {
		for i := range en.bindings {
			if en.bindings[i].sym == sym {
				return en.bindings[i].val
			}
		}
	}
	panic("unbound symbol: " + sym.name)
}

// Extend scans only the current frame: if sym is already bound there
// it is overwritten in place, otherwise the pair is appended at the
// end. It never walks into Outer, so `def` in an inner scope always
// creates or updates a binding local to that scope and never mutates
// an enclosing one.
func (e *Env) Extend(sym *Symbol, val Value) Value {
	for i := range e.bindings {
		if e.bindings[i].sym == sym {
			e.bindings[i].val = val
			return val
		}
	}
	e.bindings = append(e.bindings, binding{sym, val})
	return val
}

// Pairs flattens the current frame (not Outer) into an alternating
// (symbol, value) list, used by structural equality and the printer.
func (e *Env) Pairs() []Value {
	out := make([]Value, 0, len(e.bindings)*2)
	for _, b := range e.bindings {
		out = append(out, NewSymbolValue(b.sym), b.val)
	}
	return out
}
