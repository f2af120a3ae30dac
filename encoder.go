package dirtyjson

import (
	"github.com/biggeezerdevelopment/dirtyjson-go/internal/lexer"
)

// encoder renders a token stream as strict JSON text.
type encoder struct {
	buf []byte
}

func newEncoder(tokens []lexer.Token) *encoder {
	size := 0
	for _, tok := range tokens {
		size += len(tok.Text) + 4 // quotes and a delimiter
	}
	return &encoder{buf: make([]byte, 0, size)}
}

// Reconstruct renders tokens as JSON. Bare keys and single-quoted strings
// are re-quoted, literals pass through, and commas directly before a closing
// delimiter or the end of input are dropped. Nesting is not checked.
func Reconstruct(tokens []Token) []byte {
	return newEncoder(tokens).encode(tokens)
}

func (e *encoder) encode(tokens []lexer.Token) []byte {
	for i, tok := range tokens {
		switch tok.Kind {
		case lexer.String:
			e.encodeString(tok.Text)
		case lexer.Number:
			e.buf = append(e.buf, tok.Text...)
		case lexer.True:
			e.buf = append(e.buf, "true"...)
		case lexer.False:
			e.buf = append(e.buf, "false"...)
		case lexer.Null:
			e.buf = append(e.buf, "null"...)
		case lexer.Identifier:
			e.buf = append(e.buf, '"')
			e.buf = append(e.buf, tok.Text...)
			e.buf = append(e.buf, '"')
		case lexer.LeftBrace:
			e.buf = append(e.buf, '{')
		case lexer.LeftBracket:
			e.buf = append(e.buf, '[')
		case lexer.RightBrace:
			e.trimComma()
			e.buf = append(e.buf, '}')
		case lexer.RightBracket:
			e.trimComma()
			e.buf = append(e.buf, ']')
		case lexer.Colon:
			e.buf = append(e.buf, ':')
		case lexer.Comma:
			if i+1 < len(tokens) && !closes(tokens[i+1].Kind) {
				e.buf = append(e.buf, ',')
			}
		case lexer.EOF:
			return e.buf
		}
	}
	return e.buf
}

// encodeString writes s in double quotes, escaping every '"' that is not
// already preceded by a backslash. Nothing else is touched.
func (e *encoder) encodeString(s string) {
	e.buf = append(e.buf, '"')
	last := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '"' && (i == 0 || s[i-1] != '\\') {
			e.buf = append(e.buf, s[last:i]...)
			e.buf = append(e.buf, '\\', '"')
			last = i + 1
		}
	}
	e.buf = append(e.buf, s[last:]...)
	e.buf = append(e.buf, '"')
}

// trimComma removes a comma written just before a closing delimiter. The
// look-ahead in encode misses the first of two adjacent commas ("[1,,]"),
// so both checks are needed.
func (e *encoder) trimComma() {
	if n := len(e.buf); n > 0 && e.buf[n-1] == ',' {
		e.buf = e.buf[:n-1]
	}
}

func closes(k lexer.Kind) bool {
	return k == lexer.RightBrace || k == lexer.RightBracket || k == lexer.EOF
}
