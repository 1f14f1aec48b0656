// Package table: text → Grid parser.
//
// Grammar (line-oriented, whitespace-tokenized):
//
//	title line   — exactly one token, only before the coordinate header.
//	header line  — the first multi-token line; every token is [number];
//	               its token count fixes N for the rest of the parse.
//	data row     — N+1 tokens: [y-coordinate] then N values; or N+2
//	               tokens when prefixed by the y-axis title (captured
//	               once).
//
// Blank lines (and tokens without any word character, such as stray
// bracket fragments) are ignored. Rows appear top-to-bottom in the text
// but are stored bottom-up: offset 0 is the bottom displayed row.
package table

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// wordChar decides whether a whitespace-split field counts as a token.
var wordChar = regexp.MustCompile(`\w`)

// Parse converts table text into a Grid. It fails with ErrFormat (wrapped
// with the 1-based line number and a reason) on malformed input: repeated
// title lines, non-bracketed coordinates, or any line whose token count
// fits neither a data row nor a titled data row once N is fixed.
// Complexity: O(len(text)).
func Parse(text string) (*Grid, error) {
	g := &Grid{}
	n := 0 // column count, fixed by the coordinate header line
	var rows [][]float64
	var yCoords []float64

	for i, line := range strings.Split(text, "\n") {
		ln := i + 1
		toks := tokenize(line)
		if len(toks) == 0 {
			continue
		}

		// Before the header line: a lone token is the x-title; the first
		// multi-token line is the coordinate header.
		if n == 0 {
			if len(toks) == 1 {
				if g.xTitle != "" {
					return nil, formatErrf(ln, "multiple x-title lines")
				}
				g.xTitle = toks[0]

				continue
			}
			for _, tok := range toks {
				v, ok := bracketed(tok)
				if !ok {
					return nil, formatErrf(ln, "x-coordinate %q is not of the form [number]", tok)
				}
				g.xCoords = append(g.xCoords, v)
			}
			n = len(toks)

			continue
		}

		// N+2 tokens: leading token is the y-title, captured at most once.
		if len(toks) == n+2 {
			if g.yTitle != "" {
				return nil, formatErrf(ln, "multiple y-title lines")
			}
			g.yTitle = toks[0]
			toks = toks[1:]
		}
		if len(toks) != n+1 {
			return nil, formatErrf(ln, "irregular data on this line or before")
		}

		yc, ok := bracketed(toks[0])
		if !ok {
			return nil, formatErrf(ln, "irregular data on this line or before")
		}
		row := make([]float64, 0, n)
		for _, tok := range toks[1:] {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, formatErrf(ln, "irregular data on this line or before")
			}
			row = append(row, v)
		}
		yCoords = append(yCoords, yc)
		rows = append(rows, row)
	}

	if n == 0 {
		return nil, fmt.Errorf("table: missing x-coordinate line: %w", ErrFormat)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("table: no data rows: %w", ErrFormat)
	}

	// Rows were accumulated top-to-bottom; offset 0 must be the bottom row.
	slices.Reverse(rows)
	slices.Reverse(yCoords)
	g.yCoords = yCoords
	g.vals = rows

	return g, nil
}

// tokenize splits a line on whitespace and keeps fields containing at
// least one word character.
func tokenize(line string) []string {
	var toks []string
	for _, f := range strings.Fields(line) {
		if wordChar.MatchString(f) {
			toks = append(toks, f)
		}
	}

	return toks
}

// bracketed parses a token of the form [number].
func bracketed(tok string) (float64, bool) {
	if len(tok) < 3 || tok[0] != '[' || tok[len(tok)-1] != ']' {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok[1:len(tok)-1], 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// formatErrf wraps ErrFormat with the offending line number and a reason.
func formatErrf(line int, format string, args ...any) error {
	return fmt.Errorf("table: line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrFormat)
}
