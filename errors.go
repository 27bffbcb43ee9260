package clusterkit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a solve cannot start: empty
	// dataset, non-positive k, k exceeding the number of points, or points of
	// inconsistent dimensionality. All configuration failures wrap this
	// sentinel, so errors.Is(err, ErrInvalidConfiguration) matches any of them.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// ErrDimensionMismatch indicates a point whose dimensionality differs from
// the rest of the dataset (or from the centroids it is compared against).
//
// It matches ErrInvalidConfiguration via errors.Is.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	Row      int // index of the offending vector, -1 when not applicable
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("dimension mismatch at row %d: expected %d, got %d", e.Row, e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func invalidConfigf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
