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

import (
	"strconv"
	"strings"
)

// String recursively serializes v back to source text. It is used
// both to print REPL results and, by Render, to embed a rendering of
// the offending node into diagnostic error messages.
func String(v Value) string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		var b strings.Builder
		b.WriteByte('"')
		b.WriteString(strings.NewReplacer("\\", "\\\\", "\"", "\\\"", "\n", "\\n", "\r", "\\r", "\t", "\\t").Replace(v.str))
		b.WriteByte('"')
		return b.String()
	case KindSymbol:
		return v.sym.name
	case KindList:
		parts := make([]string, len(v.list))
		for i, el := range v.list {
			parts[i] = String(el)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case KindOperator:
		return "[operator " + v.op.Name + "]"
	case KindLambda:
		return "[lambda " + String(v.proc.Params) + " " + String(v.proc.Body) + "]"
	case KindMacro:
		return "[macro " + String(v.proc.Params) + " " + String(v.proc.Body) + "]"
	case KindEnv:
		parts := make([]string, 0, len(v.env.bindings)*2)
		for _, p := range v.env.Pairs() {
			parts = append(parts, String(p))
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return "?"
	}
}

// Render is the printer entry point error messages use to embed the
// offending node, so diagnostics read e.g. `unbound symbol: zzz`
// rather than a bare Go panic value.
func Render(v Value) string { return String(v) }
