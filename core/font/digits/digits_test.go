package digits

import (
	"errors"
	"testing"

	"github.com/npillmayer/digitfont/core"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type GlyphTableTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestGlyphTableFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "digitfont.glyphs")
	defer teardown()
	suite.Run(t, new(GlyphTableTestEnviron))
}

// run once, before test suite methods
func (env *GlyphTableTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("digitfont.glyphs").SetTraceLevel(tracing.LevelDebug)
}

// --- Tests -----------------------------------------------------------------

func (env *GlyphTableTestEnviron) TestCharacterSet() {
	chars := Characters()
	env.Equal([]rune("0123456789"), chars, "expected exactly the ten digits")
	chars[0] = 'X'
	env.Equal('0', Characters()[0], "expected Characters to return a fresh slice")
}

func (env *GlyphTableTestEnviron) TestGlyphRows() {
	for _, c := range Characters() {
		g, err := Lookup(c)
		env.Require().NoError(err)
		env.Len(g, Height, "expected glyph %q to have 8 rows", c)
	}
	for c, rows := range map[rune]Glyph{
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
	} {
		g, err := Lookup(c)
		env.Require().NoError(err)
		env.Equal(rows, g, "unexpected row bytes for glyph %q", c)
	}
}

func (env *GlyphTableTestEnviron) TestPixelScenarios() {
	for _, tc := range []struct {
		c        rune
		col, row int
		lit      bool
	}{
		{'0', 0, 0, false},
		{'0', 2, 0, true},
		{'1', 0, 0, false},
		{'1', 2, 0, true},
		{'8', 3, 3, true},
		{'5', 7, 7, false},
		{'4', 6, 5, true},  // 0x7E
		{'4', 7, 7, false}, // 0x0E
		{'9', 1, 7, true},  // 0x70
	} {
		lit, err := IsPixelSet(tc.c, tc.col, tc.row)
		env.NoError(err)
		env.Equal(tc.lit, lit, "pixel (%d,%d) of %q", tc.col, tc.row, tc.c)
	}
}

func (env *GlyphTableTestEnviron) TestAllValidCoordinates() {
	for _, c := range Characters() {
		for row := 0; row < Height; row++ {
			for col := 0; col < Width; col++ {
				lit1, err := IsPixelSet(c, col, row)
				env.Require().NoError(err)
				lit2, _ := IsPixelSet(c, col, row)
				env.Equal(lit1, lit2, "expected query to be deterministic")
			}
		}
	}
}

func (env *GlyphTableTestEnviron) TestUnknownCharacter() {
	_, err := IsPixelSet('X', 0, 0)
	env.Require().Error(err)
	env.True(errors.Is(err, ErrUnknownCharacter), "expected ErrUnknownCharacter, got %v", err)
	var uerr *UnknownCharacterError
	env.True(errors.As(err, &uerr))
	env.Equal("X", uerr.Char)
	env.Equal(core.EMISSING, core.Code(err))
	//
	for _, key := range []string{"", "10", "X", "٣"} {
		_, err = LookupString(key)
		env.True(errors.Is(err, ErrUnknownCharacter), "expected key %q to be unknown", key)
	}
	g, err := LookupString("7")
	env.NoError(err)
	env.Equal(uint8(0x7C), g[0])
}

func (env *GlyphTableTestEnviron) TestOutOfRange() {
	for _, tc := range []struct {
		col, row int
		what     string
	}{
		{-1, 0, "column"},
		{8, 0, "column"},
		{0, -1, "row"},
		{0, 8, "row"},
	} {
		_, err := IsPixelSet('0', tc.col, tc.row)
		env.True(errors.Is(err, ErrOutOfRange), "expected (%d,%d) to be out of range", tc.col, tc.row)
		var rerr *OutOfRangeError
		if env.True(errors.As(err, &rerr)) {
			env.Equal(tc.what, rerr.What)
		}
		env.Equal(core.ERANGE, core.Code(err))
	}
	// coordinates are checked first
	_, err := IsPixelSet('X', 9, 0)
	env.True(errors.Is(err, ErrOutOfRange))
	env.False(errors.Is(err, ErrUnknownCharacter))
}

func (env *GlyphTableTestEnviron) TestUserMessages() {
	_, err := IsPixelSet('?', 0, 0)
	env.Contains(core.UserMessage(err), "digits 0-9")
	_, err = IsPixelSet('0', 0, 12)
	env.Contains(core.UserMessage(err), "row 12")
}
