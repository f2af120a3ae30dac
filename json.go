// Package dirtyjson converts malformed, JSON-like text into strict JSON.
//
// Accepted extensions: unquoted keys, single-quoted strings, // and /* */
// comments, trailing commas, a leading '+' on numbers and hexadecimal
// numbers. Clean tokenizes one byte at a time; CleanAccelerated first
// builds an index of the structural bytes with a lane-parallel scanner and
// then extracts tokens from it. Both return the same output.
package dirtyjson

import (
	"github.com/tidwall/pretty"

	"github.com/biggeezerdevelopment/dirtyjson-go/internal/lexer"
	"github.com/biggeezerdevelopment/dirtyjson-go/internal/parser"
	"github.com/biggeezerdevelopment/dirtyjson-go/internal/scanner"
)

type (
	Token      = lexer.Token
	Kind       = lexer.Kind
	ParseError = lexer.ParseError
	ErrorKind  = lexer.ErrorKind
)

const (
	String       = lexer.String
	Number       = lexer.Number
	True         = lexer.True
	False        = lexer.False
	Null         = lexer.Null
	LeftBrace    = lexer.LeftBrace
	RightBrace   = lexer.RightBrace
	LeftBracket  = lexer.LeftBracket
	RightBracket = lexer.RightBracket
	Colon        = lexer.Colon
	Comma        = lexer.Comma
	Identifier   = lexer.Identifier
	EOF          = lexer.EOF
)

const (
	UnterminatedString   = lexer.UnterminatedString
	InvalidHexNumber     = lexer.InvalidHexNumber
	UnexpectedCharacter  = lexer.UnexpectedCharacter
	UnexpectedEndOfInput = lexer.UnexpectedEndOfInput
)

var (
	ErrUnterminatedString   = lexer.ErrUnterminatedString
	ErrInvalidHexNumber     = lexer.ErrInvalidHexNumber
	ErrUnexpectedCharacter  = lexer.ErrUnexpectedCharacter
	ErrUnexpectedEndOfInput = lexer.ErrUnexpectedEndOfInput
)

// Clean converts data to strict JSON using the single-pass tokenizer.
// Errors are *ParseError.
func Clean(data []byte) ([]byte, error) {
	tokens, err := parser.Tokenize(data)
	if err != nil {
		return nil, err
	}
	return Reconstruct(tokens), nil
}

// CleanAccelerated converts data to strict JSON using the structural index.
func CleanAccelerated(data []byte) ([]byte, error) {
	tokens, err := parser.TokenizeTwoStage(data)
	if err != nil {
		return nil, err
	}
	return Reconstruct(tokens), nil
}

func CleanString(s string) (string, error) {
	out, err := Clean([]byte(s))
	return string(out), err
}

func CleanStringAccelerated(s string) (string, error) {
	out, err := CleanAccelerated([]byte(s))
	return string(out), err
}

// Tokenize returns the single-pass token stream for data, ending with EOF.
func Tokenize(data []byte) ([]Token, error) {
	return parser.Tokenize(data)
}

// TokenizeAccelerated returns the two-stage token stream for data.
func TokenizeAccelerated(data []byte) ([]Token, error) {
	return parser.TokenizeTwoStage(data)
}

// Valid reports whether data cleans into strictly valid JSON.
func Valid(data []byte) bool {
	out, err := CleanAccelerated(data)
	if err != nil {
		return false
	}
	return IsStrictJSON(out)
}

// Indent cleans data and pretty-prints the result.
func Indent(data []byte, prefix, indent string) ([]byte, error) {
	out, err := CleanAccelerated(data)
	if err != nil {
		return nil, err
	}
	return pretty.PrettyOptions(out, &pretty.Options{
		Width:  80,
		Prefix: prefix,
		Indent: indent,
	}), nil
}

// HasSIMD returns true if CleanAccelerated scans with lane-parallel
// comparisons on this machine.
func HasSIMD() bool {
	return scanner.HasSIMD()
}
