// Package display writes composed frames to the terminal.
package display

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	// ClearScreen homes the cursor and erases the screen below it.
	ClearScreen = "\033[H\033[J"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
)

// Sink receives one full frame at a time.
type Sink interface {
	Write(lines []string) error
}

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Terminal writes frames to w, clearing the screen first when Clear is set.
type Terminal struct {
	w     *bufio.Writer
	Clear bool
}

func NewTerminal(w io.Writer, clear bool) *Terminal {
	return &Terminal{w: bufio.NewWriter(w), Clear: clear}
}

// Stdout returns a terminal sink on os.Stdout that clears only when stdout is
// interactive.
func Stdout() *Terminal {
	return NewTerminal(os.Stdout, IsTerminal(os.Stdout))
}

func (t *Terminal) Write(lines []string) error {
	if t.Clear {
		t.w.WriteString(ClearScreen)
	}
	for _, line := range lines {
		t.w.WriteString(line)
		t.w.WriteByte('\n')
	}
	return t.w.Flush()
}

// Start hides the cursor on interactive terminals.
func (t *Terminal) Start() error {
	if !t.Clear {
		return nil
	}
	t.w.WriteString(HideCursor)
	return t.w.Flush()
}

// Stop restores the cursor.
func (t *Terminal) Stop() error {
	if !t.Clear {
		return nil
	}
	t.w.WriteString(ShowCursor)
	return t.w.Flush()
}
