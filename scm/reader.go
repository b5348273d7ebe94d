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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Reader fuses a lexer (character stream -> tokens) with a recursive
// descent parser (tokens -> value tree), pulling runes on demand from
// an underlying io.Reader. It is used both for whole-file loading and
// for the `read` primitive, which consumes exactly one expression from
// standard input and leaves the rest of the stream untouched.
type Reader struct {
	src *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{src: bufio.NewReader(r)}
}

func isDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '(', ')', '\'', '"', ';':
		return true
	}
	return false
}

// nextToken returns the next raw lexeme, ok=false with a nil error at
// clean end of stream. String-literal tokens carry their leading `"`
// so the parser can tell them apart from a bare identifier.
func (rd *Reader) nextToken() (string, bool, error) {
	for {
		r, _, err := rd.src.ReadRune()
		if err == io.EOF {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			continue
		case r == ';':
			for {
				r2, _, err := rd.src.ReadRune()
				if err == io.EOF {
					return "", false, nil
				}
				if err != nil {
					return "", false, err
				}
				if r2 == '\n' || r2 == '\r' {
					break
				}
			}
			continue
		case r == '(' || r == ')' || r == '\'':
			return string(r), true, nil
		case r == '"':
			var sb strings.Builder
			for {
				r2, _, err := rd.src.ReadRune()
				if err == io.EOF {
					return "", false, fmt.Errorf("unterminated string literal")
				}
				if err != nil {
					return "", false, err
				}
				if r2 == '"' {
					break
				}
				if r2 == '\\' {
					r3, _, err := rd.src.ReadRune()
					if err == io.EOF {
						return "", false, fmt.Errorf("unterminated string literal")
					}
					if err != nil {
						return "", false, err
					}
					switch r3 {
					case 'n':
						sb.WriteByte('\n')
					case 'r':
						sb.WriteByte('\r')
					case 't':
						sb.WriteByte('\t')
					case '"':
						sb.WriteByte('"')
					default:
						return "", false, fmt.Errorf("unsupported escape sequence \\%c in string literal", r3)
					}
					continue
				}
				sb.WriteRune(r2)
			}
			return "\"" + norm.NFC.String(sb.String()), true, nil
		default:
			var sb strings.Builder
			sb.WriteRune(r)
			for {
				r2, _, err := rd.src.ReadRune()
				if err == io.EOF {
					break
				}
				if err != nil {
					return "", false, err
				}
				if isDelimiter(r2) {
					rd.src.UnreadRune()
					break
				}
				sb.WriteRune(r2)
			}
			return sb.String(), true, nil
		}
	}
}

// ReadValue reads one expression, ok=false with a nil error at clean
// end of stream (no more expressions to read).
func (rd *Reader) ReadValue() (value Value, ok bool, err error) {
	tok, ok, err := rd.nextToken()
	if err != nil || !ok {
		return Value{}, ok, err
	}
	return rd.readFrom(tok)
}

func (rd *Reader) readFrom(tok string) (Value, bool, error) {
	switch tok {
	case "(":
		var items []Value
		for {
			next, ok, err := rd.nextToken()
			if err != nil {
				return Value{}, false, err
			}
			if !ok {
				return Value{}, false, fmt.Errorf("expecting matching )")
			}
			if next == ")" {
				return NewList(items), true, nil
			}
			v, vok, err := rd.readFrom(next)
			if err != nil {
				return Value{}, false, err
			}
			if !vok {
				return Value{}, false, fmt.Errorf("expecting matching )")
			}
			items = append(items, v)
		}
	case ")":
		return Value{}, false, fmt.Errorf("unexpected )")
	case "'":
		next, ok, err := rd.nextToken()
		if err != nil {
			return Value{}, false, err
		}
		if !ok {
			return Value{}, false, fmt.Errorf("expecting value after '")
		}
		v, vok, err := rd.readFrom(next)
		if err != nil {
			return Value{}, false, err
		}
		if !vok {
			return Value{}, false, fmt.Errorf("expecting value after '")
		}
		return NewList([]Value{NewSymbolValue(SymQuote), v}), true, nil
	default:
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return NewNumber(f), true, nil
		}
		if strings.HasPrefix(tok, "\"") {
			return NewString(tok[1:]), true, nil
		}
		return NewSymbolValue(Intern(tok)), true, nil
	}
}

// ReadString reads the first expression out of s, failing if s
// contains none or is malformed.
func ReadString(s string) (Value, error) {
	v, ok, err := NewReader(strings.NewReader(s)).ReadValue()
	if err != nil {
		return Value{}, err
	}
	if !ok {
		return Value{}, fmt.Errorf("no expression to read")
	}
	return v, nil
}

// ReadAll reads every expression out of s in order.
func ReadAll(s string) ([]Value, error) {
	rd := NewReader(strings.NewReader(s))
	var out []Value
	for {
		v, ok, err := rd.ReadValue()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}
