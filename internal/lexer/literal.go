package lexer

import (
	"math/big"
	"strconv"
)

// ReadValue reads the number, keyword or identifier that starts at pos.
// Any other byte is an UnexpectedCharacter error.
func ReadValue(data []byte, pos int) (Token, error) {
	c := data[pos]
	switch {
	case IsNumberStart(c):
		return ReadNumber(data, pos)
	case IsIdentStart(c):
		return ReadIdentifier(data, pos), nil
	}
	return Token{}, ErrUnexpected(c, pos)
}

// ReadNumber consumes a number literal starting at start. A leading '+' is
// dropped from the text. Hexadecimal literals ("0x1F", "-0X1f") are
// rewritten in decimal; everything else is taken verbatim as the longest run
// of digits, '.', 'e', 'E' and signs.
func ReadNumber(data []byte, start int) (Token, error) {
	pos := start
	if data[pos] == '+' {
		pos++
		if pos >= len(data) {
			return Token{}, ErrEndOfInput(pos, "'+'")
		}
		if c := data[pos]; !IsNumberStart(c) || c == '+' {
			return Token{}, ErrUnexpected(c, pos)
		}
	}

	zero := pos
	if data[zero] == '-' {
		zero++
	}
	if zero+1 < len(data) && data[zero] == '0' && (data[zero+1] == 'x' || data[zero+1] == 'X') {
		return readHex(data, start, data[pos] == '-', zero+2)
	}

	end := pos
	for end < len(data) && IsNumberChar(data[end]) {
		end++
	}
	return Token{Kind: Number, Text: string(data[pos:end]), Start: start, End: end}, nil
}

func readHex(data []byte, start int, negative bool, pos int) (Token, error) {
	digits := pos
	for pos < len(data) && IsHexDigit(data[pos]) {
		pos++
	}
	if pos == digits {
		return Token{}, ErrHex(start)
	}
	text := hexToDecimal(data[digits:pos])
	if negative {
		text = "-" + text
	}
	return Token{Kind: Number, Text: text, Start: start, End: pos}, nil
}

// hexToDecimal formats a run of hex digits in base 10. Values wider than 64
// bits go through math/big so nothing is truncated.
func hexToDecimal(hex []byte) string {
	if len(hex) <= 16 {
		v, err := strconv.ParseUint(string(hex), 16, 64)
		if err == nil {
			return strconv.FormatUint(v, 10)
		}
	}
	var n big.Int
	n.SetString(string(hex), 16)
	return n.String()
}

// ReadIdentifier consumes a bare word starting at start and classifies it
// as a keyword or an Identifier.
func ReadIdentifier(data []byte, start int) Token {
	end := start
	for end < len(data) && IsIdentChar(data[end]) {
		end++
	}
	text := string(data[start:end])
	kind := Identifier
	switch text {
	case "true":
		kind = True
	case "false":
		kind = False
	case "null":
		kind = Null
	}
	return Token{Kind: kind, Text: text, Start: start, End: end}
}
