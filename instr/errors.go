package instr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedInstruction reports an instruction, or an operand shape,
	// outside the supported expression subset.
	ErrUnsupportedInstruction = errors.New("unsupported instruction")

	// ErrMalformedStack reports a pop on an empty stack or an offset that
	// does not address any instruction.
	ErrMalformedStack = errors.New("malformed stack")
)

// Error is the structured failure reported for a non-decompilable stream.
// Unwrap yields one of the sentinel errors of this package.
type Error struct {
	Kind   error
	OpName string
	Offset int
	Msg    string
}

// NewError creates an error of the given kind located at inst.
func NewError(kind error, inst Instruction, format string, args ...interface{}) *Error {
	return &Error{
		Kind:   kind,
		OpName: inst.Category.String(),
		Offset: inst.Offset,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	if e.OpName == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
	}
	if e.Msg == "" {
		return fmt.Sprintf("%v: %s at offset %d", e.Kind, e.OpName, e.Offset)
	}
	return fmt.Sprintf("%v: %s at offset %d: %s", e.Kind, e.OpName, e.Offset, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
