package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArguments is returned when the command line cannot describe a grid.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrMissingDimension is returned when no dimension argument is supplied.
	ErrMissingDimension = fmt.Errorf("%w: missing dimension", ErrInvalidArguments)
	// ErrZeroDimension is returned when the dimension parses to zero,
	// which includes non-numeric input.
	ErrZeroDimension = fmt.Errorf("%w: dimension must be a non-zero integer", ErrInvalidArguments)

	// ErrIOFailure is returned when the output file cannot be created or written.
	ErrIOFailure = errors.New("output failure")
)
