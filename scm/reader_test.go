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

func TestReadStringAtom(t *testing.T) {
	v, err := ReadString("42")
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsNumber() || v.Number() != 42 {
		t.Fatalf("expected number 42, got %v", v)
	}
}

func TestReadStringList(t *testing.T) {
	v, err := ReadString("(+ 1 2)")
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsList() || len(v.List()) != 3 {
		t.Fatalf("expected 3-element list, got %v", v)
	}
}

func TestReadStringQuoteSugar(t *testing.T) {
	v, err := ReadString("'a")
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsList() || len(v.List()) != 2 || v.List()[0].Symbol() != SymQuote {
		t.Fatalf("expected (quote a), got %v", v)
	}
}

func TestReadStringUnterminatedList(t *testing.T) {
	_, err := ReadString("(+ 1 2")
	if err == nil {
		t.Fatal("expected error for unterminated list")
	}
	if err.Error() != "expecting matching )" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReadStringUnmatchedClose(t *testing.T) {
	_, err := ReadString(")")
	if err == nil {
		t.Fatal("expected error for unexpected )")
	}
}

func TestSymbolInterningAcrossReads(t *testing.T) {
	a, err := ReadString("foo")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ReadString("foo")
	if err != nil {
		t.Fatal(err)
	}
	if a.Symbol() != b.Symbol() {
		t.Fatal("two reads of the same symbol text did not intern identically")
	}
}

func TestReadAllMultipleForms(t *testing.T) {
	forms, err := ReadAll("1 2 3")
	if err != nil {
		t.Fatal(err)
	}
	if len(forms) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(forms))
	}
}

func TestReadStringEscapes(t *testing.T) {
	v, err := ReadString(`"a\nb"`)
	if err != nil {
		t.Fatal(err)
	}
	if v.Str() != "a\nb" {
		t.Fatalf("escape not decoded, got %q", v.Str())
	}
}

func TestReadStringComment(t *testing.T) {
	forms, err := ReadAll("; a comment\n1")
	if err != nil {
		t.Fatal(err)
	}
	if len(forms) != 1 || forms[0].Number() != 1 {
		t.Fatalf("comment not skipped: %v", forms)
	}
}
