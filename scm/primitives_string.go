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

import (
	"fmt"
	"strings"
)

func requireString(v Value) string {
	if !v.IsString() {
		panic("invalid type for " + Render(v) + ": expected string")
	}
	return v.Str()
}

func init() {
	Declare(Globalenv, &Declaration{
		Name: "cat", MinParameter: 0,
		Desc: "(cat a b ...) concatenates its string arguments into one string",
		Fn: func(en *Env, args []Value) Value {
			var b strings.Builder
			for _, a := range args {
				b.WriteString(requireString(a))
			}
			return NewString(b.String())
		},
	})
	// substr follows the original C++ std::string::substr(pos, len)
	// convention the host was built on, not a (from, to) range: the
	// third argument is a length, not an end index.
	Declare(Globalenv, &Declaration{
		Name: "substr", MinParameter: 3,
		Desc: "(substr s pos len) returns the len-rune substring of s starting at rune index pos",
		Fn: func(en *Env, args []Value) Value {
			s := []rune(requireString(args[0]))
			pos := int(requireNumber(args[1]))
			length := int(requireNumber(args[2]))
			if pos < 0 {
				pos = 0
			}
			if pos > len(s) {
				pos = len(s)
			}
			end := pos + length
			if length < 0 || end > len(s) {
				end = len(s)
			}
			return NewString(string(s[pos:end]))
		},
	})
	// find returns the rune index of needle's first occurrence in
	// haystack, or -1 when absent - the host's string-search sentinel,
	// returned as a number per spec so it composes with `if` and the
	// arithmetic/comparison primitives without a special case.
	Declare(Globalenv, &Declaration{
		Name: "find", MinParameter: 2,
		Desc: "(find haystack needle) returns the index of needle in haystack, or -1 if absent",
		Fn: func(en *Env, args []Value) Value {
			haystack := requireString(args[0])
			needle := requireString(args[1])
			idx := strings.Index(haystack, needle)
			if idx < 0 {
				return NewNumber(-1)
			}
			return NewNumber(float64(len([]rune(haystack[:idx]))))
		},
	})
	Declare(Globalenv, &Declaration{
		Name: "display", MinParameter: 0,
		Desc: "(display a b ...) prints each argument's textual form with no trailing newline, returns the last argument",
		Fn: func(en *Env, args []Value) Value {
			last := Nil()
			for _, v := range args {
				if v.IsString() {
					fmt.Print(v.Str())
				} else {
					fmt.Print(String(v))
				}
				last = v
			}
			return last
		},
	})
}
