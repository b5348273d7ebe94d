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

import "math"

func requireNumber(v Value) float64 {
	if !v.IsNumber() {
		panic("invalid type for " + Render(v) + ": expected number")
	}
	return v.num
}

func init() {
	Declare(Globalenv, &Declaration{
		Name: "+", MinParameter: 1,
		Desc: "(+ a b ...) sums one or more numbers",
		Fn: func(en *Env, args []Value) Value {
			sum := requireNumber(args[0])
			for _, a := range args[1:] {
				sum += requireNumber(a)
			}
			return NewNumber(sum)
		},
	})
	Declare(Globalenv, &Declaration{
		Name: "-", MinParameter: 1,
		Desc: "(- a) negates a; (- a b ...) subtracts b... from a",
		Fn: func(en *Env, args []Value) Value {
			first := requireNumber(args[0])
			if len(args) == 1 {
				return NewNumber(-first)
			}
			for _, a := range args[1:] {
				first -= requireNumber(a)
			}
			return NewNumber(first)
		},
	})
	Declare(Globalenv, &Declaration{
		Name: "*", MinParameter: 1,
		Desc: "(* a b ...) multiplies one or more numbers",
		Fn: func(en *Env, args []Value) Value {
			prod := requireNumber(args[0])
			for _, a := range args[1:] {
				prod *= requireNumber(a)
			}
			return NewNumber(prod)
		},
	})
	Declare(Globalenv, &Declaration{
		Name: "/", MinParameter: 1,
		Desc: "(/ a) inverts a; (/ a b ...) divides a by b...",
		Fn: func(en *Env, args []Value) Value {
			first := requireNumber(args[0])
			if len(args) == 1 {
				return NewNumber(1 / first)
			}
			for _, a := range args[1:] {
				first /= requireNumber(a)
			}
			return NewNumber(first)
		},
	})

	Declare(Globalenv, &Declaration{
		Name: "==", MinParameter: 2,
		Desc: "(== a b) structural equality",
		Fn: func(en *Env, args []Value) Value {
			if Equal(args[0], args[1]) {
				return NewNumber(1)
			}
			return NewNumber(0)
		},
	})

	chain := func(cmp func(a, b float64) bool) func(en *Env, args []Value) Value {
		return func(en *Env, args []Value) Value {
			prev := requireNumber(args[0])
			for _, a := range args[1:] {
				v := requireNumber(a)
				if !cmp(prev, v) {
					return NewNumber(0)
				}
				prev = v
			}
			return NewNumber(1)
		}
	}
	Declare(Globalenv, &Declaration{Name: "<", MinParameter: 2, Desc: "(< a b ...) strictly increasing", Fn: chain(func(a, b float64) bool { return a < b })})
	Declare(Globalenv, &Declaration{Name: "<=", MinParameter: 2, Desc: "(<= a b ...) non-decreasing", Fn: chain(func(a, b float64) bool { return a <= b })})
	Declare(Globalenv, &Declaration{Name: ">", MinParameter: 2, Desc: "(> a b ...) strictly decreasing", Fn: chain(func(a, b float64) bool { return a > b })})
	Declare(Globalenv, &Declaration{Name: ">=", MinParameter: 2, Desc: "(>= a b ...) non-increasing", Fn: chain(func(a, b float64) bool { return a >= b })})

	unary := func(f func(float64) float64) func(en *Env, args []Value) Value {
		return func(en *Env, args []Value) Value {
			return NewNumber(f(requireNumber(args[0])))
		}
	}
	Declare(Globalenv, &Declaration{Name: "sqrt", MinParameter: 1, Desc: "(sqrt x)", Fn: unary(math.Sqrt)})
	Declare(Globalenv, &Declaration{Name: "sin", MinParameter: 1, Desc: "(sin x)", Fn: unary(math.Sin)})
	Declare(Globalenv, &Declaration{Name: "cos", MinParameter: 1, Desc: "(cos x)", Fn: unary(math.Cos)})
	Declare(Globalenv, &Declaration{Name: "log", MinParameter: 1, Desc: "(log x) natural logarithm", Fn: unary(math.Log)})
	Declare(Globalenv, &Declaration{Name: "abs", MinParameter: 1, Desc: "(abs x)", Fn: unary(math.Abs)})
	Declare(Globalenv, &Declaration{Name: "exp", MinParameter: 1, Desc: "(exp x)", Fn: unary(math.Exp)})
}
