// Package parser parses date time strings into calendar values.
//
// The primary entry point, Parse, reads ISO 8601-like strings tolerantly:
// missing trailing fields take defaults, field widths are not enforced,
// and the separator between the date and the time may be any non-digit.
// Additional parsers handle the legacy layouts written by the format
// package.
package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrFormat wraps errors returned by the parser package.
var ErrFormat = errors.New("format")

// FieldError describes the position in Input at which parsing failed. It
// wraps ErrFormat.
type FieldError struct {
	Input string
	Pos   int
}

// Error returns a message naming the input and the offending substring.
func (e *FieldError) Error() string {
	if e.Pos >= len(e.Input) {
		return fmt.Sprintf("%v: cannot parse %q: unexpected end of input", ErrFormat, e.Input)
	}
	return fmt.Sprintf(
		"%v: cannot parse %q: unexpected %q at position %d",
		ErrFormat, e.Input, e.Input[e.Pos:], e.Pos,
	)
}

// Unwrap returns ErrFormat.
func (e *FieldError) Unwrap() error { return ErrFormat }

// sepKind identifies how a separator following a field is matched.
type sepKind uint8

const (
	// sepLiteral matches a single character. A literal '.' also matches
	// ','.
	sepLiteral sepKind = iota

	// sepAny matches any single non-digit character.
	sepAny

	// sepSign matches '+' or '-', the latter negating the next field.
	sepSign
)

type separator struct {
	kind sepKind
	char byte
}

func lit(c byte) separator { return separator{kind: sepLiteral, char: c} }

//nolint:gochecknoglobals
var (
	anySep  = separator{kind: sepAny}
	signSep = separator{kind: sepSign}
)

// fields collects the values scanned from a string.
type fields struct {
	vals    []int
	neg     []bool
	present int
}

// scanFields reads up to len(seps) integer fields from s, each followed by
// the corresponding separator. defaults supplies values for fields not
// present in s. A leading '-' negates the first field.
//
// Scanning stops successfully at the end of s or at the first position
// with no digits where a field is expected. Text after the last field is
// ignored. When a ':' or '.' separator does not match and a sign separator
// follows it, scanning skips ahead to that sign separator, so time fields
// may be omitted before a time zone offset. The field after a '.'
// separator is a decimal fraction converted to thousandths.
func scanFields(s string, seps []separator, defaults []int) (fields, error) {
	fs := fields{
		vals: append([]int(nil), defaults...),
		neg:  make([]bool, len(seps)),
	}

	pos := 0
	neg := len(s) > 0 && s[0] == '-'
	if neg {
		pos++
	}

	for part := 0; part < len(seps); part++ {
		start := pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		if pos == start {
			if neg {
				// A sign with no digits following.
				return fs, &FieldError{Input: s, Pos: start - 1}
			}
			return fs, nil
		}

		digits := s[start:pos]
		if part > 0 && seps[part-1] == lit('.') {
			f, err := strconv.ParseFloat("0."+digits, 64)
			if err != nil {
				return fs, &FieldError{Input: s, Pos: start}
			}
			fs.vals[part] = int(math.Round(1000 * f))
		} else {
			n, err := strconv.ParseInt(digits, 10, 32)
			if err != nil {
				return fs, &FieldError{Input: s, Pos: start}
			}
			fs.vals[part] = int(n)
		}
		if neg {
			fs.vals[part] = -fs.vals[part]
			fs.neg[part] = true
			neg = false
		}
		fs.present = part + 1

		if pos >= len(s) {
			return fs, nil
		}

		c := s[pos]
		if c == ',' {
			c = '.'
		}
		sep := seps[part]
		switch sep.kind {
		case sepAny:
		case sepSign:
			if neg = c == '-'; !neg && c != '+' {
				return fs, &FieldError{Input: s, Pos: pos}
			}
		case sepLiteral:
			if c == sep.char {
				break
			}
			next := -1
			if (sep.char == ':' || sep.char == '.') && part < len(seps)-1 {
				next = indexSign(seps, part+1)
			}
			if next < 0 || (c != '+' && c != '-') {
				return fs, &FieldError{Input: s, Pos: pos}
			}
			neg = c == '-'
			part = next
		}
		pos++
	}

	return fs, nil
}

// indexSign returns the index of the first sign separator in seps at or
// after from, or -1.
func indexSign(seps []separator, from int) int {
	for i := from; i < len(seps); i++ {
		if seps[i].kind == sepSign {
			return i
		}
	}
	return -1
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// allDigits reports whether s is non-empty and consists only of ASCII
// digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
