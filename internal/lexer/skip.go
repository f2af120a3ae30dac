package lexer

// SkipWhitespaceAndComments returns the first offset at or after pos that is
// neither whitespace nor inside a comment, scanning to the end of data.
func SkipWhitespaceAndComments(data []byte, pos int) int {
	return SkipRange(data, pos, len(data))
}

// SkipRange is SkipWhitespaceAndComments bounded to data[:end]. Line
// comments stop before the newline; block comments do not nest, and an
// unterminated one consumes the rest of the range.
func SkipRange(data []byte, pos, end int) int {
	for pos < end {
		c := data[pos]
		if IsWhitespace(c) {
			pos++
			continue
		}
		if c != '/' || pos+1 >= end {
			return pos
		}
		switch data[pos+1] {
		case '/':
			pos += 2
			for pos < end && data[pos] != '\n' {
				pos++
			}
		case '*':
			pos = skipBlockComment(data, pos+2, end)
		default:
			return pos
		}
	}
	return pos
}

func skipBlockComment(data []byte, pos, end int) int {
	for pos+1 < end {
		if data[pos] == '*' && data[pos+1] == '/' {
			return pos + 2
		}
		pos++
	}
	return end
}
