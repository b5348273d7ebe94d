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
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFilePlain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lisp")
	if err := os.WriteFile(path, []byte("(def x 1) (+ x 41)"), 0o644); err != nil {
		t.Fatal(err)
	}
	en := NewEnv(Globalenv)
	result, err := LoadFile(path, en)
	if err != nil {
		t.Fatal(err)
	}
	if result.Number() != 42 {
		t.Fatalf("expected 42, got %v", String(result))
	}
}

func TestLoadFileGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lisp.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("(+ 1 41)")); err != nil {
		t.Fatal(err)
	}
	gz.Close()
	f.Close()

	en := NewEnv(Globalenv)
	result, err := LoadFile(path, en)
	if err != nil {
		t.Fatal(err)
	}
	if result.Number() != 42 {
		t.Fatalf("expected 42, got %v", String(result))
	}
}
