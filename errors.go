package dynstr

import (
	"errors"
	"fmt"
)

// ErrRange is reported when slice bounds fall outside a value.
var ErrRange = errors.New("slice bounds out of range")

// RangeError carries the rejected bounds of a Slice call.
// It unwraps to ErrRange.
type RangeError struct {
	Start, End int // requested range
	Len        int // length of the sliced value
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dynstr: slice bounds [%d:%d] out of range for length %d", e.Start, e.End, e.Len)
}
