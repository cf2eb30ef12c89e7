package design

import "errors"

var (
	// ErrInvalidColumnCount is returned when the requested column count is
	// outside the range a family can build.
	ErrInvalidColumnCount = errors.New("design: invalid column count")

	// ErrUnsupportedParameter is returned when a family cannot build an array
	// for the given levels, strength, lambda or exponent.
	ErrUnsupportedParameter = errors.New("design: unsupported parameter")

	// ErrUnknownFamily is returned for a family name or value outside the catalogue.
	ErrUnknownFamily = errors.New("design: unknown family")
)
