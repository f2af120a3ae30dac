package parser

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/biggeezerdevelopment/dirtyjson-go/internal/lexer"
	"github.com/biggeezerdevelopment/dirtyjson-go/internal/scanner"
)

type tokenizer func([]byte) ([]lexer.Token, error)

var tokenizers = map[string]tokenizer{
	"single-pass": Tokenize,
	"two-stage":   TokenizeTwoStage,
	"two-stage-scalar": func(data []byte) ([]lexer.Token, error) {
		return Extract(data, scanner.BuildScalar(data))
	},
}

type tok struct {
	kind lexer.Kind
	text string
}

func kindsAndTexts(tokens []lexer.Token) []tok {
	out := make([]tok, len(tokens))
	for i, t := range tokens {
		out[i] = tok{t.Kind, t.Text}
	}
	return out
}

func TestTokenize_Basic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tok
	}{
		{
			name:  "simple object",
			input: `{"key":"value"}`,
			expected: []tok{
				{lexer.LeftBrace, ""}, {lexer.String, "key"}, {lexer.Colon, ""},
				{lexer.String, "value"}, {lexer.RightBrace, ""}, {lexer.EOF, ""},
			},
		},
		{
			name:  "array with numbers",
			input: `[1,2,3]`,
			expected: []tok{
				{lexer.LeftBracket, ""}, {lexer.Number, "1"}, {lexer.Comma, ""},
				{lexer.Number, "2"}, {lexer.Comma, ""}, {lexer.Number, "3"},
				{lexer.RightBracket, ""}, {lexer.EOF, ""},
			},
		},
		{
			name:  "keywords",
			input: `{"flag":true,"other":false,"none":null}`,
			expected: []tok{
				{lexer.LeftBrace, ""}, {lexer.String, "flag"}, {lexer.Colon, ""}, {lexer.True, "true"},
				{lexer.Comma, ""}, {lexer.String, "other"}, {lexer.Colon, ""}, {lexer.False, "false"},
				{lexer.Comma, ""}, {lexer.String, "none"}, {lexer.Colon, ""}, {lexer.Null, "null"},
				{lexer.RightBrace, ""}, {lexer.EOF, ""},
			},
		},
		{
			name:  "unquoted keys and single quotes",
			input: `{name: 'alice', age: 30}`,
			expected: []tok{
				{lexer.LeftBrace, ""}, {lexer.Identifier, "name"}, {lexer.Colon, ""}, {lexer.String, "alice"},
				{lexer.Comma, ""}, {lexer.Identifier, "age"}, {lexer.Colon, ""}, {lexer.Number, "30"},
				{lexer.RightBrace, ""}, {lexer.EOF, ""},
			},
		},
		{
			name:  "hex and plus",
			input: `[0xFF, +7, -0x10]`,
			expected: []tok{
				{lexer.LeftBracket, ""}, {lexer.Number, "255"}, {lexer.Comma, ""}, {lexer.Number, "7"},
				{lexer.Comma, ""}, {lexer.Number, "-16"}, {lexer.RightBracket, ""}, {lexer.EOF, ""},
			},
		},
		{
			name:  "plus before sign",
			input: `[+-5, +.e]`,
			expected: []tok{
				{lexer.LeftBracket, ""}, {lexer.Number, "-5"}, {lexer.Comma, ""}, {lexer.Number, ".e"},
				{lexer.RightBracket, ""}, {lexer.EOF, ""},
			},
		},
		{
			name:  "comments containing structural bytes",
			input: "{ // it's a key, really\n a: /* {[,]} \"x */ 1 }",
			expected: []tok{
				{lexer.LeftBrace, ""}, {lexer.Identifier, "a"}, {lexer.Colon, ""}, {lexer.Number, "1"},
				{lexer.RightBrace, ""}, {lexer.EOF, ""},
			},
		},
		{
			name:  "escaped quotes",
			input: `["a\"b", 'it\'s', "c\\", "d\\\"e"]`,
			expected: []tok{
				{lexer.LeftBracket, ""}, {lexer.String, `a\"b`}, {lexer.Comma, ""}, {lexer.String, `it\'s`},
				{lexer.Comma, ""}, {lexer.String, `c\\`}, {lexer.Comma, ""}, {lexer.String, `d\\\"e`},
				{lexer.RightBracket, ""}, {lexer.EOF, ""},
			},
		},
		{
			name:  "other quote inside string",
			input: `{"it's": 'say "hi"'}`,
			expected: []tok{
				{lexer.LeftBrace, ""}, {lexer.String, "it's"}, {lexer.Colon, ""}, {lexer.String, `say "hi"`},
				{lexer.RightBrace, ""}, {lexer.EOF, ""},
			},
		},
		{
			name:  "several values in one gap",
			input: `[1 2 true x]`,
			expected: []tok{
				{lexer.LeftBracket, ""}, {lexer.Number, "1"}, {lexer.Number, "2"}, {lexer.True, "true"},
				{lexer.Identifier, "x"}, {lexer.RightBracket, ""}, {lexer.EOF, ""},
			},
		},
		{
			name:     "bare scalar",
			input:    " // lead\n42 /* trail */",
			expected: []tok{{lexer.Number, "42"}, {lexer.EOF, ""}},
		},
		{
			name:     "empty",
			input:    ``,
			expected: []tok{{lexer.EOF, ""}},
		},
		{
			name:     "only comments",
			input:    "/* a */ // b",
			expected: []tok{{lexer.EOF, ""}},
		},
		{
			name:  "trailing commas",
			input: `[1,2,],`,
			expected: []tok{
				{lexer.LeftBracket, ""}, {lexer.Number, "1"}, {lexer.Comma, ""}, {lexer.Number, "2"},
				{lexer.Comma, ""}, {lexer.RightBracket, ""}, {lexer.Comma, ""}, {lexer.EOF, ""},
			},
		},
		{
			name:  "value followed by comment",
			input: `[1//x` + "\n" + `,2/**/]`,
			expected: []tok{
				{lexer.LeftBracket, ""}, {lexer.Number, "1"}, {lexer.Comma, ""}, {lexer.Number, "2"},
				{lexer.RightBracket, ""}, {lexer.EOF, ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for name, tokenize := range tokenizers {
				tokens, err := tokenize([]byte(tt.input))
				if err != nil {
					t.Fatalf("%s: tokenize failed: %v", name, err)
				}

				got := kindsAndTexts(tokens)
				if !reflect.DeepEqual(got, tt.expected) {
					t.Errorf("%s:\nexpected %v\ngot      %v", name, tt.expected, got)
				}
			}
		})
	}
}

func TestTokenize_Offsets(t *testing.T) {
	input := []byte(`{ a : 'bc', n: +0x1F }`)
	expected := [][2]int{{0, 1}, {2, 3}, {4, 5}, {6, 10}, {10, 11}, {12, 13}, {13, 14}, {15, 20}, {21, 22}, {22, 22}}

	for name, tokenize := range tokenizers {
		tokens, err := tokenize(input)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(tokens) != len(expected) {
			t.Fatalf("%s: expected %d tokens, got %d", name, len(expected), len(tokens))
		}
		for i, tk := range tokens {
			if tk.Start != expected[i][0] || tk.End != expected[i][1] {
				t.Errorf("%s: token %d (%v) spans [%d,%d), expected %v", name, i, tk.Kind, tk.Start, tk.End, expected[i])
			}
			if tk.Start > tk.End {
				t.Errorf("%s: token %d has start after end", name, i)
			}
		}
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
		pos      int
	}{
		{"unterminated string", `{"name": "alice`, lexer.ErrUnterminatedString, 9},
		{"unterminated single quote", `['abc", 1]`, lexer.ErrUnterminatedString, 1},
		{"escaped closing quote", `["abc\"]`, lexer.ErrUnterminatedString, 1},
		{"invalid hex", `{"v": 0x}`, lexer.ErrInvalidHexNumber, 6},
		{"unexpected character", `{"a": @}`, lexer.ErrUnexpectedCharacter, 6},
		{"unexpected character after value", `[1 # 2]`, lexer.ErrUnexpectedCharacter, 3},
		{"lone slash", `[1, /]`, lexer.ErrUnexpectedCharacter, 4},
		{"trailing lone plus", `[1, +`, lexer.ErrUnexpectedEndOfInput, 5},
		{"plus before bracket", `[+]`, lexer.ErrUnexpectedCharacter, 2},
		{"non ascii bare word", "{\xc3\xa9t\xc3\xa9: 1}", lexer.ErrUnexpectedCharacter, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for name, tokenize := range tokenizers {
				tokens, err := tokenize([]byte(tt.input))
				if err == nil {
					t.Fatalf("%s: expected error, got tokens %v", name, tokens)
				}
				if tokens != nil {
					t.Errorf("%s: expected no partial result", name)
				}
				if !errors.Is(err, tt.sentinel) {
					t.Errorf("%s: expected %v, got %v", name, tt.sentinel, err)
				}
				var perr *lexer.ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("%s: expected *lexer.ParseError, got %T", name, err)
				}
				if perr.Position != tt.pos {
					t.Errorf("%s: expected position %d, got %d", name, tt.pos, perr.Position)
				}
			}
		})
	}
}

func TestTokenize_OwnsText(t *testing.T) {
	input := []byte(`{key: 'value', n: 12}`)
	for name, tokenize := range tokenizers {
		buf := append([]byte(nil), input...)
		tokens, err := tokenize(buf)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for i := range buf {
			buf[i] = 'X'
		}
		got := kindsAndTexts(tokens)
		if got[1].text != "key" || got[3].text != "value" || got[7].text != "12" {
			t.Errorf("%s: token text changed with the input buffer: %v", name, got)
		}
	}
}

func TestEscaped(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`"abc"`, false},
		{`"ab\"`, true},
		{`"a\\"`, false},
		{`"\\\"`, true},
		{`""`, false},
	}
	for _, tt := range tests {
		p := len(tt.input) - 1
		if got := escaped([]byte(tt.input), p, 0); got != tt.want {
			t.Errorf("escaped(%s) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// dirtyCorpus holds inputs exercising every grammar feature at once.
var dirtyCorpus = []string{
	`{"key":"value"}`,
	`{name: 'alice', age: 30}`,
	`{"items": [1, 2, 3,], "total": 3,}`,
	`{"value": 0xFF}`,
	"{\n  // line comment\n  a: 1, /* block comment */\n  b: [true, false, null],\n}",
	`{'nested': {'deep': ["x\"y", 'z\\', -1.5e-3, +2, .5]}}`,
	`{$id: 1, _under: 2, camelCase3: 3}`,
	"[\"http://example.com/*not a comment*/\", '//neither']",
	"{ /* a, b: \"c' */ key: 'v' // trailing, ] }\n}",
	`[[[]],{},[{}]]`,
	"  \t\r\n",
}

func TestTokenize_Equivalence(t *testing.T) {
	for _, input := range dirtyCorpus {
		assertEquivalent(t, []byte(input))
	}
}

func TestTokenize_EquivalenceRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pieces := []string{
		"{", "}", "[", "]", ":", ",", " ", "\n", "\t",
		`"s"`, `'q'`, `"a\"b"`, `'c\'d'`, `"e\\"`, `"it's"`, `'say "x"'`,
		"1", "-2.5", "+3", "0x1F", "1e10", ".5",
		"true", "false", "null", "key", "$k", "_k",
		"// c, d: 'e\n", "/* f, [g] \"h */",
	}
	for n := 0; n < 2000; n++ {
		var sb strings.Builder
		for k := rng.Intn(30); k > 0; k-- {
			sb.WriteString(pieces[rng.Intn(len(pieces))])
		}
		assertEquivalent(t, []byte(sb.String()))
	}
}

func FuzzTokenizeEquivalence(f *testing.F) {
	for _, input := range dirtyCorpus {
		f.Add([]byte(input))
	}
	f.Add([]byte(`{"a": "unterminated`))
	f.Add([]byte(`[0x, +]`))
	f.Fuzz(func(t *testing.T, data []byte) {
		assertEquivalent(t, data)
	})
}

// assertEquivalent checks that both paths agree on tokens, offsets, and
// on the first error.
func assertEquivalent(t *testing.T, data []byte) {
	t.Helper()

	single, singleErr := Tokenize(data)
	two, twoErr := TokenizeTwoStage(data)

	if (singleErr == nil) != (twoErr == nil) {
		t.Fatalf("input %q: single-pass err=%v, two-stage err=%v", data, singleErr, twoErr)
	}
	if singleErr != nil {
		var a, b *lexer.ParseError
		if !errors.As(singleErr, &a) || !errors.As(twoErr, &b) || *a != *b {
			t.Fatalf("input %q: errors differ: %v vs %v", data, singleErr, twoErr)
		}
		return
	}
	if !reflect.DeepEqual(single, two) {
		t.Fatalf("input %q:\nsingle-pass %v\ntwo-stage   %v", data, single, two)
	}
}

func BenchmarkTokenize(b *testing.B) {
	data := []byte(strings.Repeat(`{id: 1, name: 'item', tags: ["a", "b",], /* note */ hex: 0xFF},`, 64))

	b.Run("SinglePass", func(b *testing.B) {
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			_, _ = Tokenize(data)
		}
	})

	b.Run("TwoStage", func(b *testing.B) {
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			_, _ = TokenizeTwoStage(data)
		}
	})
}
