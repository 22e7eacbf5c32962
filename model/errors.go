package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyBoard is returned when a board description has no non-blank rows
var ErrEmptyBoard = errors.New("board has no rows")

// ErrInvalidMarker is returned when the alive marker could never appear on a board
var ErrInvalidMarker = errors.New("alive marker must not be whitespace")

// MalformedBoardError reports a row whose length differs from the first row
type MalformedBoardError struct {
	Row  int
	Want int
	Got  int
}

func (e *MalformedBoardError) Error() string {
	return fmt.Sprintf("malformed board: row %d has %d cells, expected %d", e.Row, e.Got, e.Want)
}
