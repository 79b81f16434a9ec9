package engine

import (
	"errors"
	"fmt"
)

// InitSizeError reports that checked construction could not gather enough
// blocks to fill the validation window.
type InitSizeError struct {
	// Need is the required window size.
	Need int

	// Got is the number of blocks actually available.
	Got int
}

// Error implements the error interface.
func (e *InitSizeError) Error() string {
	return fmt.Sprintf("initialization requires %d blocks, got %d", e.Need, e.Got)
}

// InvalidBlockError reports a block that is not the sum of any two
// distinct blocks in the current validation window.
//
// The error is an ordinary returned outcome, not an abort: the engine it
// came from is untouched and may keep extending with other values.
type InvalidBlockError[B Block] struct {
	// Value is the offending block.
	Value B

	// Position is the 1-based ordinal of the block within the full
	// stream (accepted blocks plus this attempt).
	Position int
}

// Error implements the error interface.
func (e *InvalidBlockError[B]) Error() string {
	return fmt.Sprintf("invalid block %v at position %d: not a sum of two distinct window blocks", e.Value, e.Position)
}

// IsInvalidBlock reports whether err is an InvalidBlockError for block
// type B. Uses errors.As to handle wrapped errors.
func IsInvalidBlock[B Block](err error) bool {
	var ib *InvalidBlockError[B]
	return errors.As(err, &ib)
}

// IsInitSize reports whether err is an InitSizeError.
// Uses errors.As to handle wrapped errors.
func IsInitSize(err error) bool {
	var is *InitSizeError
	return errors.As(err, &is)
}
