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
/*
	tisklisp - a minimalist Lisp interpreter

	https://pkelchte.wordpress.com/2013/12/31/scm-go/
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/launix-de/tisklisp/scm"
)

// printHelp lists every registered primitive alphabetically by name,
// for the `-help` flag.
func printHelp() {
	decls := scm.Declarations()
	sort.Slice(decls, func(i, j int) bool { return decls[i].Name < decls[j].Name })
	for _, d := range decls {
		fmt.Printf("%-10s %s\n", d.Name, d.Desc)
	}
}

func main() {
	help := flag.Bool("help", false, "list every built-in primitive and exit")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	fmt.Print(`tisklisp Copyright (C) 2023   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;
`)

	scm.Settings.Trace = os.Getenv("TISKLISP_TRACE") == "1"
	scm.InitSettings()

	session := scm.NewEnv(scm.Globalenv)

	args := flag.Args()
	if len(args) == 0 {
		scm.Repl(session)
		return
	}

	for _, path := range args {
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintln(os.Stderr, "error: "+fmt.Sprint(r))
					os.Exit(1)
				}
			}()
			if _, err := scm.LoadFile(path, session); err != nil {
				fmt.Fprintln(os.Stderr, "error: "+err.Error())
				os.Exit(1)
			}
		}()
	}
}
