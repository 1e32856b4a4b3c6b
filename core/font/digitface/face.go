package digitface

import (
	"image"
	"image/color"
	"sync"

	"github.com/npillmayer/digitfont/core/font/digits"
	"golang.org/x/image/font/basicfont"
)

// Mask returns an alpha image holding all digit glyphs, stacked vertically
// in ascending order, with '0' at the top. Lit pixels are fully opaque.
// The image is shared between callers and must not be modified.
func Mask() *image.Alpha {
	maskCreation.Do(func() {
		mask = createMask()
	})
	return mask
}

// Face returns a fixed-width font face for the digits '0' to '9'.
// Glyphs for other characters are reported as missing by the face.
// The face is shared between callers and must not be modified.
func Face() *basicfont.Face {
	faceCreation.Do(func() {
		face = &basicfont.Face{
			Advance: digits.Width,
			Width:   digits.Width,
			Height:  digits.Height,
			Ascent:  digits.Height,
			Descent: 0,
			Mask:    Mask(),
			Ranges: []basicfont.Range{
				{Low: '0', High: '9' + 1, Offset: 0},
			},
		}
	})
	return face
}

var (
	mask         *image.Alpha
	maskCreation sync.Once
	face         *basicfont.Face
	faceCreation sync.Once
)

func createMask() *image.Alpha {
	chars := digits.Characters()
	img := image.NewAlpha(image.Rect(0, 0, digits.Width, digits.Height*len(chars)))
	for i, c := range chars {
		g, err := digits.Lookup(c)
		if err != nil { // cannot happen, c is from the table
			tracer().Errorf("digit mask: %v", err)
			continue
		}
		for y := 0; y < digits.Height; y++ {
			for x := 0; x < digits.Width; x++ {
				if g.IsSet(x, y) {
					img.SetAlpha(x, i*digits.Height+y, color.Alpha{A: 0xff})
				}
			}
		}
	}
	tracer().Debugf("created digit mask with %d glyphs, bounds = %v", len(chars), img.Bounds())
	return img
}
