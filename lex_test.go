package mathex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
	}{
		// whitespace
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []Token{{Kind: TokenNumber, Text: "0"}}},
		{"9876543210", []Token{{Kind: TokenNumber, Text: "9876543210"}}},
		{"1 0", []Token{{Kind: TokenNumber, Text: "1"}, {Kind: TokenNumber, Text: "0", Pos: 2}}},
		{"1.5", []Token{{Kind: TokenNumber, Text: "1.5", HasDecimal: true}}},
		// a second decimal point ends the literal; the rest is an alpha run
		{"1.2.3", []Token{
			{Kind: TokenNumber, Text: "1.2", HasDecimal: true},
			{Kind: TokenAlpha, Text: ".3", Pos: 3},
		}},
		{"2x", []Token{{Kind: TokenNumber, Text: "2"}, {Kind: TokenAlpha, Text: "x", Pos: 1}}},
		// operators
		{"1+1", []Token{
			{Kind: TokenNumber, Text: "1"},
			{Kind: TokenAdd, Text: "+", Pos: 1},
			{Kind: TokenNumber, Text: "1", Pos: 2},
		}},
		{"*/+-^", []Token{
			{Kind: TokenMul, Text: "*"},
			{Kind: TokenDiv, Text: "/", Pos: 1},
			{Kind: TokenAdd, Text: "+", Pos: 2},
			{Kind: TokenSub, Text: "-", Pos: 3},
			{Kind: TokenExp, Text: "^", Pos: 4},
		}},
		{"-2(2)", []Token{
			{Kind: TokenSub, Text: "-"},
			{Kind: TokenNumber, Text: "2", Pos: 1},
			{Kind: TokenParenOpen, Text: "(", Pos: 2},
			{Kind: TokenNumber, Text: "2", Pos: 3},
			{Kind: TokenParenClose, Text: ")", Pos: 4},
		}},
		// identifiers keep interior digits
		{"log2(8)", []Token{
			{Kind: TokenAlpha, Text: "log2"},
			{Kind: TokenParenOpen, Text: "(", Pos: 4},
			{Kind: TokenNumber, Text: "8", Pos: 5},
			{Kind: TokenParenClose, Text: ")", Pos: 6},
		}},
		{"x ^ y", []Token{
			{Kind: TokenAlpha, Text: "x"},
			{Kind: TokenExp, Text: "^", Pos: 2},
			{Kind: TokenAlpha, Text: "y", Pos: 4},
		}},
		// commas separate only when they start a token
		{"sqrt(1,2)", []Token{
			{Kind: TokenAlpha, Text: "sqrt"},
			{Kind: TokenParenOpen, Text: "(", Pos: 4},
			{Kind: TokenNumber, Text: "1", Pos: 5},
			{Kind: TokenComma, Text: ",", Pos: 6},
			{Kind: TokenNumber, Text: "2", Pos: 7},
			{Kind: TokenParenClose, Text: ")", Pos: 8},
		}},
		{"a,b", []Token{{Kind: TokenAlpha, Text: "a,b"}}},
		// unrecognized characters fall into alpha runs
		{"foo$bar", []Token{{Kind: TokenAlpha, Text: "foo$bar"}}},
		{"$", []Token{{Kind: TokenAlpha, Text: "$"}}},
	}
	for _, c := range cases {
		got := Lex(c.src)
		if diff := cmp.Diff(c.tokens, got); diff != "" {
			t.Errorf("lexing %q: (-want +got):\n%s", c.src, diff)
		}
	}
}

func TestTokenKindOperators(t *testing.T) {
	ops := []TokenKind{TokenMul, TokenDiv, TokenAdd, TokenSub, TokenExp}
	for _, k := range ops {
		if !k.isOperator() {
			t.Errorf("%v should be an operator kind", k)
		}
	}
	others := []TokenKind{TokenNull, TokenNumber, TokenAlpha, TokenParenOpen, TokenParenClose, TokenComma}
	for _, k := range others {
		if k.isOperator() {
			t.Errorf("%v should not be an operator kind", k)
		}
	}
}

func BenchmarkLex(b *testing.B) {
	const src = "1 - sqrt(x^2 + 1.5)*(a + b)/2"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Lex(src)
	}
}
