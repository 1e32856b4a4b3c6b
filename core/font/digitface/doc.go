/*
Package digitface adapts the digit glyph table to golang.org/x/image/font.

The face returned by Face is a fixed-width basicfont.Face covering the
characters '0' to '9'. It does not render anything by itself; clients
place digits onto images with a font.Drawer, exactly as with any other
font.Face.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package digitface

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'digitfont.face'
func tracer() tracing.Trace {
	return tracing.Select("digitfont.face")
}
