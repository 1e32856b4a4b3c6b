package digits

import (
	"sort"
	"unicode/utf8"
)

// Glyph dimensions in pixels.
const (
	Width  = 8
	Height = 8
)

// Glyph is the bitmap of a single digit: eight row bytes, top to bottom.
// Pixels are stored MSB-first, i.e. column 0 is bit 7 of a row byte.
type Glyph [Height]uint8

// IsSet tests the pixel at (column, row) without any range checks.
// Callers must make sure that both coordinates are within [0,7].
func (g Glyph) IsSet(column, row int) bool {
	return g[row]&(1<<(7-column)) != 0
}

// glyphs is the font table. It is initialized once and never written to.
var glyphs = map[rune]Glyph{
	'0': {0x38, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x38},
	'1': {0x30, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x7C},
	'2': {0x38, 0x44, 0x04, 0x08, 0x10, 0x20, 0x44, 0x7C},
	'3': {0x38, 0x44, 0x04, 0x18, 0x04, 0x04, 0x44, 0x38},
	'4': {0x0C, 0x14, 0x14, 0x24, 0x44, 0x7E, 0x04, 0x0E},
	'5': {0x1C, 0x20, 0x40, 0x78, 0x44, 0x44, 0x44, 0x38},
	'6': {0x3C, 0x20, 0x20, 0x38, 0x04, 0x04, 0x44, 0x38},
	'7': {0x7C, 0x44, 0x04, 0x08, 0x08, 0x08, 0x10, 0x10},
	'8': {0x38, 0x44, 0x44, 0x38, 0x44, 0x44, 0x44, 0x38},
	'9': {0x38, 0x44, 0x44, 0x44, 0x3C, 0x04, 0x08, 0x70},
}

// IsPixelSet reports whether the pixel at (column, row) of the glyph for
// character c is part of the glyph's foreground.
//
// Both coordinates have to be within [0,7], otherwise an error matching
// ErrOutOfRange is returned. Coordinates are checked before the character.
// If c has no glyph, an error matching ErrUnknownCharacter is returned.
func IsPixelSet(c rune, column, row int) (bool, error) {
	if err := checkRange("column", column, Width); err != nil {
		return false, err
	}
	if err := checkRange("row", row, Height); err != nil {
		return false, err
	}
	g, err := Lookup(c)
	if err != nil {
		return false, err
	}
	return g.IsSet(column, row), nil
}

// Lookup returns the glyph for character c.
// There is no fallback glyph: characters other than '0'…'9' produce an
// error matching ErrUnknownCharacter.
func Lookup(c rune) (Glyph, error) {
	g, ok := glyphs[c]
	if !ok {
		tracer().Debugf("no glyph for character %q", c)
		return Glyph{}, unknownCharacter(string(c))
	}
	return g, nil
}

// LookupString returns the glyph for a key given as a string. The key
// has to consist of exactly one character.
func LookupString(s string) (Glyph, error) {
	if utf8.RuneCountInString(s) != 1 {
		tracer().Debugf("glyph key %q is not a single character", s)
		return Glyph{}, unknownCharacter(s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return Glyph{}, unknownCharacter(s)
	}
	return Lookup(r)
}

// Characters returns the characters with a glyph in ascending order.
// The slice is freshly allocated on every call.
func Characters() []rune {
	chars := make([]rune, 0, len(glyphs))
	for c := range glyphs {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

func checkRange(what string, value, limit int) error {
	if value < 0 || value >= limit {
		tracer().Debugf("%s %d out of range [0,%d]", what, value, limit-1)
		return &OutOfRangeError{What: what, Value: value}
	}
	return nil
}
