package num128

import (
	"fmt"
	"strconv"

	num "github.com/shabbyrobe/go-num"
)

// ParseI128 parses s as a 128-bit signed integer and wraps the result.
//
// Only lexical and width failures return an error; a value that overflows
// 128 bits reports strconv.ErrRange through errors.Is. A string that
// parses but lies outside B's range returns a nil error and an
// out-of-range instance.
func ParseI128[B BoundsI128](s string) (I128[B], error) {
	v, accurate, err := num.I128FromString(s)
	if err != nil {
		return I128[B]{}, fmt.Errorf("parse bounded i128: %w", err)
	}
	if !accurate {
		return I128[B]{}, fmt.Errorf("parse bounded i128 %q: %w", s, strconv.ErrRange)
	}
	return NewI128[B](v), nil
}

// ParseU128 parses s as a 128-bit unsigned integer, in the manner of
// ParseI128.
func ParseU128[B BoundsU128](s string) (U128[B], error) {
	v, accurate, err := num.U128FromString(s)
	if err != nil {
		return U128[B]{}, fmt.Errorf("parse bounded u128: %w", err)
	}
	if !accurate {
		return U128[B]{}, fmt.Errorf("parse bounded u128 %q: %w", s, strconv.ErrRange)
	}
	return NewU128[B](v), nil
}
