package assembler

import (
	"errors"
	"fmt"
)

var (
	ErrMemoryBounds     = errors.New("memory out of bounds")
	ErrDuplicateStart   = errors.New("starting address was already defined")
	ErrEndWithoutStart  = errors.New("END directive without a prior START")
	ErrMissingEnd       = errors.New("source ended without an END directive")
	ErrMissingDirective = errors.New("missing directive")
	ErrMissingOperand   = errors.New("missing operand")
	ErrNumber           = errors.New("malformed number")
	ErrBadLiteral       = errors.New("malformed BYTE literal")
	ErrLiteralTooLong   = errors.New("literal operands longer than 60 characters are not supported")
	ErrUnknownMnemonic  = errors.New("unknown mnemonic")
	ErrUndefinedSymbol  = errors.New("undefined symbol")
	ErrDuplicateSymbol  = errors.New("duplicate symbol")
	ErrBadRecord        = errors.New("malformed object record")
)

// LineError ties an assembly failure to the source line that caused it.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineErr(linum int, text string, err error) error {
	return &LineError{Line: linum, Text: text, Err: err}
}
