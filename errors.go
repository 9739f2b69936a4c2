package bounded

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by errors.Is for every out-of-range error
	// produced by this module, regardless of width or bounds.
	ErrOutOfRange = errors.New("value out of range")
)

// OutOfRangeError reports a stored value that violates its type's bounds.
//
// The offending value and the violated range are preserved for diagnostics.
// errors.Is(err, ErrOutOfRange) matches every instantiation.
type OutOfRangeError[T any] struct {
	Value T
	Min   T
	Max   T
}

func (e *OutOfRangeError[T]) Error() string {
	return fmt.Sprintf("value %v out of range [%v, %v]", e.Value, e.Min, e.Max)
}

// Is reports whether target is ErrOutOfRange, so callers can match without
// naming the concrete width.
func (e *OutOfRangeError[T]) Is(target error) bool { return target == ErrOutOfRange }
