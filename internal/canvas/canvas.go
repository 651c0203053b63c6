package canvas

import (
	"strings"

	"github.com/san-kum/animfetch/internal/anim"
)

// Blank is the character every cell holds after construction or Clear.
const Blank = ' '

// Canvas is a fixed-size grid of single characters.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func New(w, h int) (*Canvas, error) {
	if err := anim.CheckDimensions(w, h); err != nil {
		return nil, err
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c, nil
}

// In reports whether (x, y) lies on the canvas.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Set writes ch at (x, y). Out of range coordinates are ignored.
func (c *Canvas) Set(x, y int, ch rune) {
	if !c.In(x, y) {
		return
	}
	c.Grid[y][x] = ch
}

// At returns the character at (x, y), or Blank when out of range.
func (c *Canvas) At(x, y int) rune {
	if !c.In(x, y) {
		return Blank
	}
	return c.Grid[y][x]
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = Blank
		}
	}
}

// Lines returns one string per row, left to right.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.Height)
	var b strings.Builder
	for y, row := range c.Grid {
		b.Reset()
		for _, ch := range row {
			b.WriteRune(ch)
		}
		lines[y] = b.String()
	}
	return lines
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, line := range c.Lines() {
		b.WriteString(line + "\n")
	}
	return b.String()
}
