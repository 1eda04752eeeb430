package units

import (
	"errors"
	"fmt"
)

// Registry and algebra errors.
var (
	ErrDimensionMismatch  = errors.New("dimension mismatch")
	ErrDuplicateDimension = errors.New("dimension already registered")
	ErrDuplicateSymbol    = errors.New("unit symbol already registered")
	ErrEmptyName          = errors.New("name must not be empty")
)

// DimensionError reports a run-time dimension check that failed. Want is the
// exponent vector of the requested tag, Got the vector the operation produced.
type DimensionError struct {
	Op   string
	Want Dims
	Got  Dims
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("units: %s: dimension mismatch: want %s, got %s", e.Op, e.Want, e.Got)
}

// Unwrap returns ErrDimensionMismatch so callers can use errors.Is.
func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}
