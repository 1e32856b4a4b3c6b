/*
Package digits holds a fixed 8x8 monochrome bitmap font for the decimal
digits '0' to '9'.

Each glyph is a sequence of eight row bytes, top row first. Pixels within
a row are stored most-significant-bit first, i.e. column 0 is bit 7 of the
row byte and column 7 is bit 0. Only the low seven bits are used by the
current glyph shapes.

The glyph table is static and never mutated, so every function of this
package may be called from any number of goroutines without locking.

Clients wanting to draw digits onto an image should use package
digitface, which adapts the table to golang.org/x/image/font.
Characters other than the ten digits have no glyph; queries for them
fail with ErrUnknownCharacter.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package digits

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'digitfont.glyphs'
func tracer() tracing.Trace {
	return tracing.Select("digitfont.glyphs")
}
