package patch

import "errors"

var (
	// ErrTruncated indicates the buffer ended inside a mutation.
	ErrTruncated = errors.New("patch: truncated input")

	// ErrOverflow indicates a varint exceeded its maximum length or a
	// declared length exceeds the remaining input.
	ErrOverflow = errors.New("patch: length overflow")

	// ErrUnknownOp indicates an unrecognized opcode byte.
	ErrUnknownOp = errors.New("patch: unknown opcode")
)
