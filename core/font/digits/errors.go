package digits

import (
	"errors"
	"fmt"

	"github.com/npillmayer/digitfont/core"
)

// Sentinel errors for use with errors.Is.
var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrOutOfRange       = errors.New("pixel coordinate out of range")
)

// UnknownCharacterError is returned for a character without a glyph.
// It carries error code core.EMISSING.
type UnknownCharacterError struct {
	Char string // the key as requested by the client
}

func unknownCharacter(key string) error {
	return &UnknownCharacterError{Char: key}
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("[%d] %s: %q", core.EMISSING, ErrUnknownCharacter, e.Char)
}

// Is makes UnknownCharacterError match ErrUnknownCharacter.
func (e *UnknownCharacterError) Is(target error) bool {
	return target == ErrUnknownCharacter
}

// ErrorCode is core.EMISSING.
func (e *UnknownCharacterError) ErrorCode() int {
	return core.EMISSING
}

// UserMessage is part of interface core.AppError.
func (e *UnknownCharacterError) UserMessage() string {
	return fmt.Sprintf("no glyph for character %q, font covers digits 0-9 only", e.Char)
}

// OutOfRangeError is returned for a pixel coordinate outside of [0,7].
// It carries error code core.ERANGE.
type OutOfRangeError struct {
	What  string // "column" or "row"
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("[%d] %s: %s = %d", core.ERANGE, ErrOutOfRange, e.What, e.Value)
}

// Is makes OutOfRangeError match ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// ErrorCode is core.ERANGE.
func (e *OutOfRangeError) ErrorCode() int {
	return core.ERANGE
}

// UserMessage is part of interface core.AppError.
func (e *OutOfRangeError) UserMessage() string {
	return fmt.Sprintf("%s %d is outside of glyph, must be 0…7", e.What, e.Value)
}

var _ core.AppError = &UnknownCharacterError{}
var _ core.AppError = &OutOfRangeError{}
