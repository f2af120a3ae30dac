package lexer

// Character classes. A byte may belong to several.
const (
	classWhitespace uint8 = 1 << iota
	classDigit
	classHex
	classIdentStart
	classIdentChar
	classNumberStart
	classNumberChar
)

// classTable is indexed by byte value; everything at or above 0x80 is
// unclassified, so identifiers and numbers are ASCII only.
var classTable = func() (t [256]uint8) {
	for _, c := range []byte{' ', '\t', '\n', '\r'} {
		t[c] |= classWhitespace
	}
	for c := '0'; c <= '9'; c++ {
		t[c] |= classDigit | classHex | classIdentChar | classNumberStart | classNumberChar
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] |= classIdentStart | classIdentChar
		t[c-'a'+'A'] |= classIdentStart | classIdentChar
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] |= classHex
		t[c-'a'+'A'] |= classHex
	}
	for _, c := range []byte{'_', '$'} {
		t[c] |= classIdentStart | classIdentChar
	}
	for _, c := range []byte{'-', '+', '.'} {
		t[c] |= classNumberStart | classNumberChar
	}
	t['e'] |= classNumberChar
	t['E'] |= classNumberChar
	return t
}()

func IsWhitespace(c byte) bool { return classTable[c]&classWhitespace != 0 }

func IsDigit(c byte) bool { return classTable[c]&classDigit != 0 }

func IsHexDigit(c byte) bool { return classTable[c]&classHex != 0 }

// IsIdentStart reports whether c can begin a bare word: an ASCII letter,
// '_' or '$'.
func IsIdentStart(c byte) bool { return classTable[c]&classIdentStart != 0 }

func IsIdentChar(c byte) bool { return classTable[c]&classIdentChar != 0 }

// IsNumberStart reports whether c can begin a number: a digit, a sign or a
// leading decimal point.
func IsNumberStart(c byte) bool { return classTable[c]&classNumberStart != 0 }

// IsNumberChar reports whether c may continue a decimal number literal.
func IsNumberChar(c byte) bool { return classTable[c]&classNumberChar != 0 }
