package anim

import "errors"

// Domain errors for animation operations.
var (
	// ErrInvalidConfig indicates non-positive dimensions or rates.
	ErrInvalidConfig = errors.New("anim: invalid configuration")

	// ErrEmptyFrame indicates a frame with no lines was passed where at
	// least one line is required.
	ErrEmptyFrame = errors.New("anim: empty animation frame")
)

// DimensionError reports the offending size of a rejected grid.
type DimensionError struct {
	Width, Height int
}

func (e *DimensionError) Error() string {
	return ErrInvalidConfig.Error() + ": dimensions must be positive"
}

func (e *DimensionError) Unwrap() error {
	return ErrInvalidConfig
}

// CheckDimensions returns a *DimensionError when either side is not positive.
func CheckDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return &DimensionError{Width: width, Height: height}
	}
	return nil
}
