package anim

// Frame is a rendered animation frame. A nil or empty frame tells the caller
// that the provider has nothing more to show.
type Frame []string

// Done reports whether the frame is the end-of-animation sentinel.
func (f Frame) Done() bool { return len(f) == 0 }

// Width returns the length in bytes of the longest line.
func (f Frame) Width() int {
	w := 0
	for _, line := range f {
		if len(line) > w {
			w = len(line)
		}
	}
	return w
}

// Clone returns an independent copy of the frame.
func (f Frame) Clone() Frame {
	c := make(Frame, len(f))
	copy(c, f)
	return c
}

type Provider interface {
	// Advance moves the simulation forward by dt seconds. It must not block.
	Advance(dt float64)
	// Frame renders the current state. It is called once per displayed
	// frame and may run one pending step first.
	Frame() Frame
	// Describe returns a human readable label. It has no side effects.
	Describe() string
}

type Populated interface {
	Population() int
}
