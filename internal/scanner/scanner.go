// Package scanner locates the structural bytes of a dirty JSON document
// ({ } [ ] : , " ') and records them in an Index that the two-stage
// tokenizer walks instead of the raw input.
package scanner

type Tag uint8

const (
	BraceOpen Tag = iota
	BraceClose
	BracketOpen
	BracketClose
	Colon
	Comma
	Quote
	SingleQuote
)

// structuralBytes is ordered by Tag.
var structuralBytes = [...]byte{'{', '}', '[', ']', ':', ',', '"', '\''}

var isStructural = func() (t [256]bool) {
	for _, c := range structuralBytes {
		t[c] = true
	}
	return t
}()

// TagOf maps a byte to its structural tag.
func TagOf(c byte) (Tag, bool) {
	switch c {
	case '{':
		return BraceOpen, true
	case '}':
		return BraceClose, true
	case '[':
		return BracketOpen, true
	case ']':
		return BracketClose, true
	case ':':
		return Colon, true
	case ',':
		return Comma, true
	case '"':
		return Quote, true
	case '\'':
		return SingleQuote, true
	}
	return 0, false
}

// Byte returns the structural byte t stands for.
func (t Tag) Byte() byte {
	return structuralBytes[t]
}

func (t Tag) String() string {
	if int(t) < len(structuralBytes) {
		return string(structuralBytes[t])
	}
	return "?"
}

// IsQuote reports whether t opens or closes a string.
func (t Tag) IsQuote() bool {
	return t == Quote || t == SingleQuote
}

// IsStructural reports whether c is one of the eight structural bytes.
func IsStructural(c byte) bool {
	return isStructural[c]
}

// Scan returns the ascending offsets of every structural byte in data, using
// the lane-parallel scanner when the CPU supports it.
func Scan(data []byte) []int {
	if hasSIMD() {
		return ScanSIMD(data)
	}
	return ScanScalar(data)
}

// HasSIMD returns true if the lane-parallel scanner is selected by Scan.
func HasSIMD() bool {
	return hasSIMD()
}

// ScanScalar checks one byte at a time.
func ScanScalar(data []byte) []int {
	offsets := make([]int, 0, len(data)/8)
	return scanScalarFrom(data, 0, offsets)
}

func scanScalarFrom(data []byte, i int, offsets []int) []int {
	for ; i < len(data); i++ {
		if isStructural[data[i]] {
			offsets = append(offsets, i)
		}
	}
	return offsets
}
