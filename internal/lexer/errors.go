package lexer

import (
	"errors"
	"fmt"
)

type ErrorKind uint8

const (
	UnterminatedString ErrorKind = iota + 1
	InvalidHexNumber
	UnexpectedCharacter
	UnexpectedEndOfInput
)

var (
	ErrUnterminatedString   = errors.New("unterminated string")
	ErrInvalidHexNumber     = errors.New("invalid hex number")
	ErrUnexpectedCharacter  = errors.New("unexpected character")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnterminatedString:
		return ErrUnterminatedString
	case InvalidHexNumber:
		return ErrInvalidHexNumber
	case UnexpectedCharacter:
		return ErrUnexpectedCharacter
	case UnexpectedEndOfInput:
		return ErrUnexpectedEndOfInput
	}
	return nil
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// ParseError reports the first failure of a tokenizer run. Position is the
// byte offset most relevant to the failure: the opening quote of an
// unterminated string, the start of a bad hex literal, or the offending byte.
type ParseError struct {
	Kind     ErrorKind
	Message  string
	Position int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Position, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

func newError(kind ErrorKind, pos int, message string) *ParseError {
	return &ParseError{Kind: kind, Message: message, Position: pos}
}

func ErrUnterminated(pos int) *ParseError {
	return newError(UnterminatedString, pos, "unterminated string")
}

func ErrHex(pos int) *ParseError {
	return newError(InvalidHexNumber, pos, "invalid hex number")
}

func ErrUnexpected(c byte, pos int) *ParseError {
	return newError(UnexpectedCharacter, pos, fmt.Sprintf("unexpected character %q", c))
}

func ErrEndOfInput(pos int, after string) *ParseError {
	return newError(UnexpectedEndOfInput, pos, "unexpected end of input after "+after)
}
