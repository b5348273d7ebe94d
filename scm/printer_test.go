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

// TestReadPrintEvalRoundtrip exercises the universal property from
// spec.md §8: read(print(eval(read(s)))) is structurally equal to
// eval(read(s)) for losslessly-printable values.
func TestReadPrintEvalRoundtrip(t *testing.T) {
	cases := []string{
		"(+ 1 2 3)",
		`(cat "a" "b")`,
		"(list 1 2 (list 3 4))",
		"(quote (a b c))",
	}
	for _, src := range cases {
		form, err := ReadString(src)
		if err != nil {
			t.Fatal(err)
		}
		en := NewEnv(Globalenv)
		result := Eval(form, en)
		printed := String(result)
		reread, err := ReadString(printed)
		if err != nil {
			t.Fatalf("%s: could not reread %q: %v", src, printed, err)
		}
		if !Equal(reread, result) {
			t.Fatalf("%s: read(print(eval(read(s)))) != eval(read(s)), printed %q", src, printed)
		}
	}
}

func TestPrintNumberAndString(t *testing.T) {
	if got := String(NewNumber(3)); got != "3" {
		t.Fatalf("expected \"3\", got %q", got)
	}
	if got := String(NewString(`a"b`)); got != `"a\"b"` {
		t.Fatalf("unexpected string printing: %q", got)
	}
}

func TestPrintEmptyList(t *testing.T) {
	if got := String(NewList(nil)); got != "()" {
		t.Fatalf("expected \"()\", got %q", got)
	}
}
