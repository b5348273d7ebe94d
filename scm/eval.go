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

import "fmt"

// Eval reduces a (node, env) pair to a value. It is written as a loop
// over mutable locals rather than a recursive function, so that `if`,
// the last clause of `begin`, a lambda body's final form, `eval`'s
// argument and `apply`'s constructed form are all re-entered without
// growing the Go call stack - the property that lets a tail-recursive
// user program run to unbounded depth in bounded host stack.
func Eval(node Value, en *Env) Value {
restart:
	switch node.kind {
	case KindNil:
		return node
	case KindSymbol:
		return en.Lookup(node.sym)
	case KindList:
		if len(node.list) == 0 {
			return node
		}
	default:
		// Number, String, Operator, Lambda, Macro, Env: self-evaluating
		return node
	}

	items := node.list
	if head := items[0]; head.kind == KindSymbol {
		switch head.sym {
		case SymDef:
			requireArity(node, 3)
			sym := requireSymbol(items[1])
			val := Eval(items[2], en)
			en.Extend(sym, val)
			return val
		case SymQuote:
			requireArity(node, 2)
			return items[1]
		case SymFn:
			requireArity(node, 3)
			return NewLambda(&Lambda{Params: items[1], Body: items[2], Env: en})
		case SymMacro:
			requireArity(node, 3)
			return NewMacro(&Lambda{Params: items[1], Body: items[2], Env: en})
		case SymIf:
			if len(items) < 3 || len(items) > 4 {
				panic(fmt.Sprintf("wrong number of arguments in %s", Render(node)))
			}
			cond := Eval(items[1], en)
			if !cond.IsNumber() {
				panic(fmt.Sprintf("invalid type for %s: expected number", Render(items[1])))
			}
			if cond.num != 0 {
				node = items[2]
				goto restart
			}
			if len(items) == 4 {
				node = items[3]
				goto restart
			}
			return NewList(nil)
		case SymBegin:
			if len(items) < 2 {
				panic(fmt.Sprintf("wrong number of arguments in %s", Render(node)))
			}
			for _, part := range items[1 : len(items)-1] {
				Eval(part, en)
			}
			node = items[len(items)-1]
			goto restart
		}
	}

	// call form
	fn := Eval(items[0], en)
	operands := items[1:]

	isMacro := fn.kind == KindMacro
	args := make([]Value, len(operands))
	for i, operand := range operands {
		if isMacro {
			args[i] = operand
		} else {
			args[i] = Eval(operand, en)
		}
	}

	switch fn.kind {
	case KindLambda, KindMacro:
		proc := fn.proc
		if !proc.Params.IsList() {
			panic("invalid type for lambda parameter list: expected list")
		}
		params := proc.Params.List()
		if len(args) < len(params) {
			panic(fmt.Sprintf("wrong number of arguments in %s", Render(node)))
		}
		if Trace != nil {
			// A single Event rather than a Duration/defer pair: this
			// call is re-entered via goto, not a nested Go call, so a
			// deferred "end" would only fire once the whole tail
			// chain finally unwinds, pairing wrong with this event.
			Trace.Event("lambda", "eval", "X")
		}
		callEnv := NewEnv(proc.Env)
		for i, p := range params {
			callEnv.Extend(requireSymbol(p), args[i])
		}
		if fn.kind == KindMacro {
			node = Eval(proc.Body, callEnv)
		} else {
			node = proc.Body
		}
		en = callEnv
		goto restart
	case KindOperator:
		op := fn.op
		if len(args) < op.MinArgs {
			panic(fmt.Sprintf("wrong number of arguments in %s", Render(node)))
		}
		switch op {
		case evalOperator:
			node = args[0]
			goto restart
		case applyOperator:
			node = NewList(args)
			goto restart
		default:
			if Trace != nil {
				var result Value
				Trace.Duration(op.Name, "primitive", func() { result = op.Fn(en, args) })
				return result
			}
			return op.Fn(en, args)
		}
	default:
		panic(fmt.Sprintf("function expected in %s", Render(node)))
	}
}

// Apply invokes a callable value directly with already-evaluated
// arguments, used by host code and by the `apply` operator's
// evaluated-argument-list form.
func Apply(fn Value, args []Value) Value {
	switch fn.kind {
	case KindLambda, KindMacro:
		params := fn.proc.Params.List()
		if len(args) < len(params) {
			panic("wrong number of arguments in lambda application")
		}
		callEnv := NewEnv(fn.proc.Env)
		for i, p := range params {
			callEnv.Extend(requireSymbol(p), args[i])
		}
		if fn.kind == KindMacro {
			return Eval(Eval(fn.proc.Body, callEnv), callEnv)
		}
		return Eval(fn.proc.Body, callEnv)
	case KindOperator:
		if len(args) < fn.op.MinArgs {
			panic("wrong number of arguments in " + fn.op.Name)
		}
		return fn.op.Fn(nil, args)
	default:
		panic("function expected in " + Render(fn))
	}
}

func requireSymbol(v Value) *Symbol {
	if !v.IsSymbol() {
		panic("invalid type for " + Render(v) + ": expected symbol")
	}
	return v.sym
}

func requireArity(node Value, n int) {
	if len(node.list) != n {
		panic(fmt.Sprintf("wrong number of arguments in %s", Render(node)))
	}
}
