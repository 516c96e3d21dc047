package domain

import "errors"

var (
	// ErrInvalidInput is returned when caller supplied values are out of range
	// (capital <= 0 or not a number, years outside [1,30], unknown risk tier or scenario)
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingReferenceData is returned when an allocation names an asset class
	// that the reference table does not know. It signals table drift, not bad user input.
	ErrMissingReferenceData = errors.New("missing reference data")
)
