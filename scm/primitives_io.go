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
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"runtime"
	"strings"

	units "github.com/docker/go-units"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// evalOperator and applyOperator are recognized by pointer identity in
// Eval's call-form dispatch (eval.go), the same way the C original
// compares its builtin table against `&fn_eval`/`&fn_apply`: this lets
// `eval` re-enter the restart loop on its argument, and `apply` on a
// freshly built call form, without growing the Go call stack.
var evalOperator = &Operator{Name: "eval", MinArgs: 1, Fn: func(en *Env, args []Value) Value {
	return Eval(args[0], en)
}}

var applyOperator = &Operator{Name: "apply", MinArgs: 2, Fn: func(en *Env, args []Value) Value {
	return Apply(args[0], requireList(args[1]))
}}

// stdinReader is shared across successive calls to the `read`
// primitive so that each call resumes exactly where the last one left
// off in the stream, rather than re-opening and re-buffering stdin.
var stdinReader = NewReader(os.Stdin)

func init() {
	Declare(Globalenv, &Declaration{
		Name: "env", MinParameter: 0,
		Desc: "(env) reifies the calling environment as a value",
		Fn: func(en *Env, args []Value) Value {
			return NewEnvValue(en)
		},
	})
	// eval and apply bind the sentinel operators directly (rather than
	// going through Declare, which would wrap Fn in a fresh *Operator)
	// so that Eval's pointer-identity switch recognizes them and
	// re-enters the restart loop instead of recursing.
	declarations["eval"] = &Declaration{Name: "eval", MinParameter: evalOperator.MinArgs, Desc: "(eval expr) evaluates a quoted expression in the given environment", Fn: evalOperator.Fn}
	Globalenv.Extend(Intern("eval"), NewOperator(evalOperator))
	declarations["apply"] = &Declaration{Name: "apply", MinParameter: applyOperator.MinArgs, Desc: "(apply fn a b ...) evaluates the form (fn a b ...) built from its already-evaluated arguments", Fn: applyOperator.Fn}
	Globalenv.Extend(Intern("apply"), NewOperator(applyOperator))

	Declare(Globalenv, &Declaration{
		Name: "read", MinParameter: 0,
		Desc: "(read) parses and returns one expression from standard input, or nil at end of input",
		Fn: func(en *Env, args []Value) Value {
			v, ok, err := stdinReader.ReadValue()
			if err != nil {
				panic(err.Error())
			}
			if !ok {
				return Nil()
			}
			return v
		},
	})

	Declare(Globalenv, &Declaration{
		Name: "load", MinParameter: 1,
		Desc: "(load path) reads and evaluates every expression in the named file, transparently decompressing .gz/.xz/.lz4 files",
		Fn: func(en *Env, args []Value) Value {
			result, err := LoadFile(requireString(args[0]), en)
			if err != nil {
				panic(err.Error())
			}
			return result
		},
	})

	Declare(Globalenv, &Declaration{
		Name: "meminfo", MinParameter: 0,
		Desc: "(meminfo) returns a human-readable string describing current heap usage",
		Fn: func(en *Env, args []Value) Value {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			return NewString(units.HumanSize(float64(m.HeapAlloc)) + " heap, " + units.HumanSize(float64(m.Sys)) + " sys")
		},
	})
}

// LoadFile reads every expression out of the named file, evaluating
// each in en in order and returning the last result - the shared
// implementation behind both the `load` primitive and the CLI's
// batch-file mode. The file is transparently decompressed by
// extension (see decompressingReader).
func LoadFile(path string, en *Env) (Value, error) {
	src, err := decompressingReader(path)
	if err != nil {
		return Value{}, err
	}
	defer src.Close()
	body, err := io.ReadAll(src)
	if err != nil {
		return Value{}, err
	}
	forms, err := ReadAll(string(body))
	if err != nil {
		return Value{}, err
	}
	result := Nil()
	for _, form := range forms {
		result = Eval(form, en)
	}
	return result, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }

// decompressingReader picks a decompressor by file extension, falling
// back to the raw file for anything it doesn't recognize.
func decompressingReader(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, err
		}
		return readCloser{Reader: gz, close: func() error { gz.Close(); return f.Close() }}, nil
	case strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, err
		}
		return readCloser{Reader: xr, close: f.Close}, nil
	case strings.HasSuffix(path, ".lz4"):
		lr := lz4.NewReader(bufio.NewReader(f))
		return readCloser{Reader: lr, close: f.Close}, nil
	default:
		return f, nil
	}
}
