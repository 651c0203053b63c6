package starfield

import "errors"

// ErrUnknownBackend is returned by ParseBackend for unrecognised names.
var ErrUnknownBackend = errors.New("starfield: unknown backend")
