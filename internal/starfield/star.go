package starfield

import "fmt"

// Brightness is the ordered level of a star. Fading is terminal and only
// exists between a dim transition and the cull that removes the star.
type Brightness uint8

const (
	Faint Brightness = iota
	Medium
	Bright
	Fading
)

// levels lists the brightness values a star can be born with.
var levels = [...]Brightness{Faint, Medium, Bright}

// Brighter returns the next level up. Bright is the ceiling.
func (b Brightness) Brighter() Brightness {
	switch b {
	case Faint:
		return Medium
	case Medium, Bright:
		return Bright
	default:
		return Fading
	}
}

// Dimmer returns the next level down. Faint dims into Fading.
func (b Brightness) Dimmer() Brightness {
	switch b {
	case Bright:
		return Medium
	case Medium:
		return Faint
	default:
		return Fading
	}
}

// Glyph is the character drawn for the level.
func (b Brightness) Glyph() rune {
	switch b {
	case Faint:
		return '.'
	case Medium:
		return '*'
	case Bright:
		return '+'
	default:
		return ' '
	}
}

func (b Brightness) String() string {
	switch b {
	case Faint:
		return "faint"
	case Medium:
		return "medium"
	case Bright:
		return "bright"
	case Fading:
		return "fading"
	default:
		return fmt.Sprintf("brightness(%d)", uint8(b))
	}
}

// transition applies one random draw r to level b.
func transition(b Brightness, r, brighten, dim float64) Brightness {
	switch {
	case r < brighten:
		return b.Brighter()
	case r < brighten+dim:
		return b.Dimmer()
	default:
		return b
	}
}

type Star struct {
	X, Y  int
	Level Brightness
}
