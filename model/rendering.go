package model

import (
	"bufio"
	"fmt"
	"io"
)

const (
	ansiClearScreen = "\033[2J"
	ansiCursorPos   = "\033[%d;%dH"
	ansiHideCursor  = "\033[?25l"
	ansiShowCursor  = "\033[?25h"
)

// Screen is the display a simulation draws frames on
type Screen interface {
	Clear()
	SetPos(row, col int)
	AddStr(s string)
	Refresh() error
}

// TerminalRenderer implements Screen with ANSI escape sequences
type TerminalRenderer struct {
	out *bufio.Writer
}

// NewTerminalRenderer returns a renderer writing to w. Nothing reaches w until Refresh.
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: bufio.NewWriter(w)}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	r.out.WriteString(ansiClearScreen)
}

// SetPos moves the cursor to the zero-based row and column
func (r *TerminalRenderer) SetPos(row, col int) {
	fmt.Fprintf(r.out, ansiCursorPos, row+1, col+1)
}

// AddStr writes s at the cursor
func (r *TerminalRenderer) AddStr(s string) {
	r.out.WriteString(s)
}

// Refresh flushes the buffered frame to the terminal
func (r *TerminalRenderer) Refresh() error {
	return r.out.Flush()
}

// HideCursor hides the cursor until ShowCursor is called
func (r *TerminalRenderer) HideCursor() {
	r.out.WriteString(ansiHideCursor)
}

// ShowCursor makes the cursor visible again
func (r *TerminalRenderer) ShowCursor() {
	r.out.WriteString(ansiShowCursor)
}
