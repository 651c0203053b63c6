// Package compose merges an animation frame with a block of text into one
// aligned frame.
package compose

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/san-kum/animfetch/internal/anim"
)

// Separator sits between the animation column and the text column.
const Separator = "  "

// Width is the display width of s in terminal cells.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Center pads s with spaces to width cells. When the padding is odd the
// left side gets the smaller half. Lines already wider are returned as is.
func Center(s string, width int) string {
	pad := width - Width(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Compose places the centered animation lines to the left of the text lines.
// Rows without text are the animation column alone.
func Compose(frame anim.Frame, text []string) ([]string, error) {
	if len(frame) == 0 {
		return nil, anim.ErrEmptyFrame
	}

	width := 0
	for _, line := range frame {
		if w := Width(line); w > width {
			width = w
		}
	}

	n := max(len(frame), len(text))
	blank := strings.Repeat(" ", width)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		left := blank
		if i < len(frame) {
			left = Center(frame[i], width)
		}
		if i < len(text) {
			out[i] = left + Separator + text[i]
			continue
		}
		out[i] = left
	}
	return out, nil
}
