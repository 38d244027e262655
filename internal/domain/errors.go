package domain

import "errors"

var (
	// ErrMalformedInput is returned when a collection document is missing a required field or has an unexpected shape.
	// The whole comparison is rejected.
	ErrMalformedInput = errors.New("malformed collection document")

	// ErrEmptyDenominator is returned when a user has no completed or currently watching entries, which leaves the list
	// overlap undefined.
	ErrEmptyDenominator = errors.New("no completed or current entries to compute overlap")
)
