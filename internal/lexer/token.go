// Package lexer holds the pieces shared by both tokenizers: the token model,
// the error taxonomy, byte classification and the readers for the
// non-structural tokens (numbers, keywords, identifiers).
package lexer

import "strconv"

type Kind uint8

const (
	String Kind = iota
	Number
	True
	False
	Null
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Colon
	Comma
	Identifier
	EOF
)

var kindNames = [...]string{
	String:       "String",
	Number:       "Number",
	True:         "True",
	False:        "False",
	Null:         "Null",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Colon:        "Colon",
	Comma:        "Comma",
	Identifier:   "Identifier",
	EOF:          "EOF",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a single lexical unit. Text is an owned copy of the decoded
// payload and never aliases the input buffer; it is empty for punctuation
// and EOF. Start and End are byte offsets into the input.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

// Punct returns the one-byte punctuation token starting at pos.
func Punct(kind Kind, pos int) Token {
	return Token{Kind: kind, Start: pos, End: pos + 1}
}

// EndOfInput returns the terminating token for an input of length n.
func EndOfInput(n int) Token {
	return Token{Kind: EOF, Start: n, End: n}
}

// EstimateTokens sizes a token slice for an input of n bytes. JSON averages
// roughly one token per ten bytes.
func EstimateTokens(n int) int {
	return max(n/10, 16)
}
