package chain

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBoundsInsert = errors.New("chain: insert position out of bounds")
	ErrOutOfBoundsDelete = errors.New("chain: delete position out of bounds")
	ErrCycle             = errors.New("chain: cycle detected")
)

// BoundsError is the panic value raised by Insert and Delete when the
// requested position is outside the chain.
type BoundsError struct {
	Op       string
	Position int
	Length   int
	Err      error
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: %s at position %d (length %d)", e.Err, e.Op, e.Position, e.Length)
}

func (e *BoundsError) Unwrap() error {
	return e.Err
}

func outOfBounds(op string, pos, length int, err error) {
	panic(&BoundsError{Op: op, Position: pos, Length: length, Err: err})
}

// AsBoundsError reports whether a recovered panic value is a *BoundsError.
func AsBoundsError(recovered any) (*BoundsError, bool) {
	err, ok := recovered.(error)
	if !ok {
		return nil, false
	}
	var be *BoundsError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
