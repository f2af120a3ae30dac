package parser

import (
	"github.com/biggeezerdevelopment/dirtyjson-go/internal/lexer"
	"github.com/biggeezerdevelopment/dirtyjson-go/internal/scanner"
)

// TokenizeTwoStage builds a structural index for data and extracts tokens
// from it.
func TokenizeTwoStage(data []byte) ([]lexer.Token, error) {
	return Extract(data, scanner.Build(data))
}

// Extract walks idx, which must have been built from data. Structural
// entries become punctuation or delimit strings; only the gaps between
// entries are read byte by byte, for numbers, keywords and identifiers.
func Extract(data []byte, idx *scanner.Index) ([]lexer.Token, error) {
	e := &extractor{
		data:   data,
		idx:    idx,
		tokens: make([]lexer.Token, 0, idx.Len()+idx.Len()/2+1),
	}
	if err := e.run(); err != nil {
		return nil, err
	}
	return e.tokens, nil
}

type extractor struct {
	data   []byte
	idx    *scanner.Index
	tokens []lexer.Token

	pos int // first byte not yet consumed
	i   int // next index entry not yet consumed
}

func (e *extractor) run() error {
	for {
		if err := e.gap(); err != nil {
			return err
		}
		if e.i >= e.idx.Len() {
			break
		}

		off, tag := e.idx.At(e.i)
		if tag.IsQuote() {
			if err := e.str(off, tag); err != nil {
				return err
			}
			continue
		}

		e.tokens = append(e.tokens, lexer.Punct(punctKinds[tag], off))
		e.pos = off + 1
		e.i++
	}

	e.tokens = append(e.tokens, lexer.EndOfInput(len(e.data)))
	return nil
}

// next returns the offset of the next unconsumed structural entry, or the
// end of input once the index is exhausted.
func (e *extractor) next() int {
	if e.i < e.idx.Len() {
		return e.idx.Offset(e.i)
	}
	return len(e.data)
}

// gap tokenizes the non-structural bytes in [e.pos, e.next()). Values never
// contain structural bytes, so they always end inside the gap; comments can,
// and any entries they cover are stepped over.
func (e *extractor) gap() error {
	for e.pos < e.next() {
		e.pos = lexer.SkipWhitespaceAndComments(e.data, e.pos)
		for e.i < e.idx.Len() && e.idx.Offset(e.i) < e.pos {
			e.i++
		}
		if e.pos >= e.next() {
			return nil
		}

		tok, err := lexer.ReadValue(e.data, e.pos)
		if err != nil {
			return err
		}
		e.tokens = append(e.tokens, tok)
		e.pos = tok.End
	}
	return nil
}

// str finds the closing entry for the quote at off: the first later entry
// with the same tag that is not escaped.
func (e *extractor) str(off int, tag scanner.Tag) error {
	for j := e.i + 1; j < e.idx.Len(); j++ {
		end, t := e.idx.At(j)
		if t != tag || escaped(e.data, end, e.idx.Offset(j-1)) {
			continue
		}

		e.tokens = append(e.tokens, lexer.Token{
			Kind:  lexer.String,
			Text:  string(e.data[off+1 : end]),
			Start: off,
			End:   end + 1,
		})
		e.pos = end + 1
		e.i = j + 1
		return nil
	}
	return lexer.ErrUnterminated(off)
}

// escaped reports whether the byte at p follows an odd run of backslashes.
// floor is the offset of the previous structural entry; it is never a
// backslash, so the walk stops there at the latest.
func escaped(data []byte, p, floor int) bool {
	n := 0
	for k := p - 1; k > floor && data[k] == '\\'; k-- {
		n++
	}
	return n%2 == 1
}
