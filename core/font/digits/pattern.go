package digits

import (
	"strings"
	"unicode/utf8"
)

// Pattern returns a text representation of g, one string per row.
// Lit pixels are drawn as 'X', unlit pixels as blanks.
//
//	'4' →  "    XX  "
//	       "   X X  "
//	       …
func (g Glyph) Pattern() []string {
	rows := make([]string, Height)
	var sb strings.Builder
	for y, line := range g {
		sb.Reset()
		for x := 0; x < Width; x++ {
			if line&(1<<(7-x)) != 0 {
				sb.WriteByte('X')
			} else {
				sb.WriteByte(' ')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// ParsePattern is the inverse of Glyph.Pattern. It expects exactly eight
// rows of at most eight characters each. An 'X' denotes a lit pixel, any
// other character an unlit one. Short rows are padded to the right.
func ParsePattern(rows []string) (Glyph, error) {
	var g Glyph
	if len(rows) != Height {
		return g, &OutOfRangeError{What: "pattern rows", Value: len(rows)}
	}
	for y, t := range rows {
		if n := utf8.RuneCountInString(t); n > Width {
			return g, &OutOfRangeError{What: "pattern width", Value: n}
		}
		g[y] = textRepresentationToBits(t)
	}
	return g, nil
}

// Transforms a 0-8-character-long string of spaces and Xs into a row byte,
// leftmost character in the MSB.
func textRepresentationToBits(t string) uint8 {
	var o uint8
	for i, r := range []rune(t) {
		if r == 'X' {
			o |= 0x80 >> i
		}
	}
	return o
}
