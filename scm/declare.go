/*
Copyright (C) 2023  Carl-Philip Hänsch

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

// Declaration documents and registers one built-in operator: its
// native action, its minimum arity and a short description used for
// the listing the `-help` CLI flag prints (see main.go).
type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	Params       []DeclarationParameter
	Fn           func(en *Env, args []Value) Value
}

type DeclarationParameter struct {
	Name string
	Type string // any | string | number | list | symbol
	Desc string
}

var declarations = make(map[string]*Declaration)

// Declare registers def both in the documentation table and, as a
// callable Operator, into env.
func Declare(env *Env, def *Declaration) {
	declarations[def.Name] = def
	op := &Operator{Name: def.Name, MinArgs: def.MinParameter, Fn: def.Fn}
	env.Extend(Intern(def.Name), NewOperator(op))
}

// Declarations returns the registered primitives in an unspecified
// order, for the CLI's `-help` listing.
func Declarations() []*Declaration {
	out := make([]*Declaration, 0, len(declarations))
	for _, d := range declarations {
		out = append(out, d)
	}
	return out
}
