package experiment

import "errors"

var (
	// ErrInvalidConfig indicates a Config field outside its allowed range.
	ErrInvalidConfig = errors.New("experiment: invalid config")

	// ErrNoRecords is returned when a summary is requested over nothing.
	ErrNoRecords = errors.New("experiment: no records")
)
