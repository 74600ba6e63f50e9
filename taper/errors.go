package taper

import "errors"

var (
	ErrEmptyField        = errors.New("taper: empty field")
	ErrInvalidWindowSize = errors.New("taper: invalid window size")
	ErrUnsortedAxis      = errors.New("taper: longitude axis not strictly ascending")
	ErrOutOfRangeCenter  = errors.New("taper: window extends outside longitude range")
	ErrWindowAlignment   = errors.New("taper: window does not align with longitude grid")
)
