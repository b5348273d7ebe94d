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

import "github.com/google/btree"

func requireList(v Value) []Value {
	if !v.IsList() {
		panic("invalid type for " + Render(v) + ": expected list")
	}
	return v.List()
}

// sortItem adapts a Value into btree's ordered-item contract, keyed
// primarily by the user-supplied comparator and, when the comparator
// calls neither direction true (equal or incomparable elements),
// broken by original position. The tiebreak keeps equal-keyed
// elements from colliding into a single btree slot, which would
// silently drop duplicates from the result.
type sortItem struct {
	val Value
	idx int
	cmp Value
}

func truthy(v Value) bool { return v.IsNumber() && v.Number() != 0 }

func (a sortItem) Less(than btree.Item) bool {
	b := than.(sortItem)
	if truthy(Apply(a.cmp, []Value{a.val, b.val})) {
		return true
	}
	if truthy(Apply(a.cmp, []Value{b.val, a.val})) {
		return false
	}
	return a.idx < b.idx
}

func init() {
	Declare(Globalenv, &Declaration{
		Name: "list", MinParameter: 0,
		Desc: "(list a b ...) builds a list out of its (already evaluated) arguments",
		Fn: func(en *Env, args []Value) Value {
			items := make([]Value, len(args))
			copy(items, args)
			return NewList(items)
		},
	})
	Declare(Globalenv, &Declaration{
		Name: "head", MinParameter: 1,
		Desc: "(head l) returns the first element of l, or the empty list if l is empty",
		Fn: func(en *Env, args []Value) Value {
			items := requireList(args[0])
			if len(items) == 0 {
				return NewList(nil)
			}
			return items[0]
		},
	})
	Declare(Globalenv, &Declaration{
		Name: "tail", MinParameter: 1,
		Desc: "(tail l) returns all but the first element of l, or the empty list if l has fewer than two elements",
		Fn: func(en *Env, args []Value) Value {
			items := requireList(args[0])
			if len(items) < 2 {
				return NewList(nil)
			}
			rest := make([]Value, len(items)-1)
			copy(rest, items[1:])
			return NewList(rest)
		},
	})
	// sort orders a list's elements using a btree keyed by the
	// caller-supplied comparator, so the comparator is evaluated
	// O(n log n) times instead of the O(n^2) a naive insertion sort
	// would cost for the large lists this primitive targets.
	Declare(Globalenv, &Declaration{
		Name: "sort", MinParameter: 1,
		Desc: "(sort l [cmp]) returns l's elements ordered by the two-argument predicate cmp, defaulting to `<`",
		Fn: func(en *Env, args []Value) Value {
			items := requireList(args[0])
			cmp := Globalenv.Lookup(Intern("<"))
			if len(args) > 1 {
				cmp = args[1]
			}
			tr := btree.New(32)
			for i, it := range items {
				tr.ReplaceOrInsert(sortItem{val: it, idx: i, cmp: cmp})
			}
			out := make([]Value, 0, len(items))
			tr.Ascend(func(i btree.Item) bool {
				out = append(out, i.(sortItem).val)
				return true
			})
			return NewList(out)
		},
	})
}
