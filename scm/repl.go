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
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

const replPrompt = ">> "
const replContPrompt = ".. "

// Repl drives an interactive session against en: read one line (or
// more, on an unterminated `(`), evaluate it, print the result. A
// panic from Eval or the reader is caught and printed as an
// `error: <message>` line rather than aborting the session.
func Repl(en *Env) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            replPrompt,
		HistoryFile:       ".tisklisp-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	pending := ""
	for {
		line, err := l.Readline()
		line = pending + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					if r == "expecting matching )" {
						pending = line + "\n"
						l.SetPrompt(replContPrompt)
						return
					}
					fmt.Println("error: " + fmt.Sprint(r))
					pending = ""
					l.SetPrompt(replPrompt)
				}
			}()
			code, err := ReadString(line)
			if err != nil {
				panic(err.Error())
			}
			result := Eval(code, en)
			fmt.Println(String(result))
			pending = ""
			l.SetPrompt(replPrompt)
		}()
	}
}
