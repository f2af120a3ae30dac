// Package parser turns dirty JSON bytes into a token stream. Tokenize is the
// single-pass reference path; TokenizeTwoStage walks a structural index
// built by the scanner package. Both produce identical streams.
package parser

import (
	"github.com/biggeezerdevelopment/dirtyjson-go/internal/lexer"
	"github.com/biggeezerdevelopment/dirtyjson-go/internal/scanner"
)

// punctKinds maps the non-quote structural tags to their token kinds.
var punctKinds = [...]lexer.Kind{
	scanner.BraceOpen:    lexer.LeftBrace,
	scanner.BraceClose:   lexer.RightBrace,
	scanner.BracketOpen:  lexer.LeftBracket,
	scanner.BracketClose: lexer.RightBracket,
	scanner.Colon:        lexer.Colon,
	scanner.Comma:        lexer.Comma,
}

// Tokenize scans data one byte at a time.
func Tokenize(data []byte) ([]lexer.Token, error) {
	tokens := make([]lexer.Token, 0, lexer.EstimateTokens(len(data)))
	pos := 0

	for {
		pos = lexer.SkipWhitespaceAndComments(data, pos)
		if pos >= len(data) {
			break
		}

		var tok lexer.Token
		tag, structural := scanner.TagOf(data[pos])
		switch {
		case structural && tag.IsQuote():
			var err error
			if tok, err = readString(data, pos); err != nil {
				return nil, err
			}
		case structural:
			tok = lexer.Punct(punctKinds[tag], pos)
		default:
			var err error
			if tok, err = lexer.ReadValue(data, pos); err != nil {
				return nil, err
			}
		}

		tokens = append(tokens, tok)
		pos = tok.End
	}

	tokens = append(tokens, lexer.EndOfInput(len(data)))
	return tokens, nil
}

// readString reads the quoted string opening at open, tracking escapes with
// a running flag. The text is the raw bytes between the quotes.
func readString(data []byte, open int) (lexer.Token, error) {
	quote := data[open]
	escaped := false

	for pos := open + 1; pos < len(data); pos++ {
		c := data[pos]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == quote:
			return lexer.Token{
				Kind:  lexer.String,
				Text:  string(data[open+1 : pos]),
				Start: open,
				End:   pos + 1,
			}, nil
		}
	}

	return lexer.Token{}, lexer.ErrUnterminated(open)
}
