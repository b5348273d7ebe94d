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

import "testing"

func TestEqualNumbersAndStringsDiffer(t *testing.T) {
	if Equal(NewNumber(1), NewString("1")) {
		t.Fatal("a number and a string with the same lexeme must not be equal")
	}
}

func TestEqualListsStructural(t *testing.T) {
	a := NewList([]Value{NewNumber(1), NewString("x")})
	b := NewList([]Value{NewNumber(1), NewString("x")})
	if !Equal(a, b) {
		t.Fatal("structurally identical lists should be equal")
	}
	c := NewList([]Value{NewNumber(1), NewString("y")})
	if Equal(a, c) {
		t.Fatal("structurally different lists should not be equal")
	}
}

func TestEqualSymbolsByIdentity(t *testing.T) {
	a := NewSymbolValue(Intern("shared-name"))
	b := NewSymbolValue(Intern("shared-name"))
	if !Equal(a, b) {
		t.Fatal("symbols interned from the same name should be equal")
	}
}

func TestEqualLambdaStructuralIgnoresEnv(t *testing.T) {
	params := NewList([]Value{NewSymbolValue(Intern("x"))})
	body := NewList([]Value{NewSymbolValue(Intern("x"))})
	a := NewLambda(&Lambda{Params: params, Body: body, Env: NewEnv(Globalenv)})
	b := NewLambda(&Lambda{Params: params, Body: body, Env: NewEnv(Globalenv)})
	if !Equal(a, b) {
		t.Fatal("lambdas with identical params/body but distinct captured envs should be equal")
	}
	c := NewLambda(&Lambda{Params: params, Body: NewNumber(1), Env: Globalenv})
	if Equal(a, c) {
		t.Fatal("lambdas with different bodies should not be equal")
	}
}

func TestEqualMacroStructural(t *testing.T) {
	params := NewList([]Value{NewSymbolValue(Intern("x"))})
	body := NewSymbolValue(Intern("x"))
	a := NewMacro(&Lambda{Params: params, Body: body, Env: Globalenv})
	b := NewMacro(&Lambda{Params: params, Body: body, Env: NewEnv(Globalenv)})
	if !Equal(a, b) {
		t.Fatal("macros with identical params/body should be equal regardless of captured env")
	}
}

func TestEqualEnvStructural(t *testing.T) {
	a := NewEnv(Globalenv)
	a.Extend(Intern("x"), NewNumber(1))
	b := NewEnv(Globalenv)
	b.Extend(Intern("x"), NewNumber(1))
	if !Equal(NewEnvValue(a), NewEnvValue(b)) {
		t.Fatal("environments with the same bindings in this frame should be equal")
	}
	c := NewEnv(Globalenv)
	c.Extend(Intern("x"), NewNumber(2))
	if Equal(NewEnvValue(a), NewEnvValue(c)) {
		t.Fatal("environments with different bindings should not be equal")
	}
}
