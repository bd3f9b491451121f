package geom

import "errors"

// ErrTooFewCities is returned when an instance has fewer cities than the
// operation requires (two for a distance matrix, one for RandomCities).
var ErrTooFewCities = errors.New("geom: too few cities")

// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
var ErrNonFinite = errors.New("geom: non-finite coordinate")
