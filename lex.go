package mathex

import "strconv"

// TokenKind classifies a lexed token.
type TokenKind int

const (
	TokenNull TokenKind = iota
	// TokenMul through TokenExp are the single-character operators.
	TokenMul
	TokenDiv
	TokenAdd
	TokenSub
	TokenExp
	// TokenNumber is a run of digits with at most one decimal point.
	TokenNumber
	// TokenAlpha is an identifier run, i.e. anything the other classes
	// don't claim.
	TokenAlpha
	TokenParenOpen
	TokenParenClose
	TokenComma
)

func (k TokenKind) String() string {
	switch k {
	case TokenNull:
		return "null"
	case TokenMul:
		return "op_mul"
	case TokenDiv:
		return "op_div"
	case TokenAdd:
		return "op_add"
	case TokenSub:
		return "op_sub"
	case TokenExp:
		return "op_exp"
	case TokenNumber:
		return "number_literal"
	case TokenAlpha:
		return "alpha"
	case TokenParenOpen:
		return "paren_open"
	case TokenParenClose:
		return "paren_close"
	case TokenComma:
		return "comma"
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// isOperator reports whether the kind is one of the five binary operator
// tokens.
func (k TokenKind) isOperator() bool {
	return k >= TokenMul && k <= TokenExp
}

// Token is a single lexed token. Text is a view into the source buffer, not
// a copy, so a Token is valid only as long as the source string it came from.
type Token struct {
	Kind TokenKind
	Text string
	// HasDecimal is set on number literals containing a decimal point.
	HasDecimal bool
	// Pos is the byte offset of the token in the source.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + strconv.Quote(t.Text) + "@" + strconv.Itoa(t.Pos)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
func isParen(c byte) bool { return c == '(' || c == ')' }

func isOperation(c byte) bool {
	return c == '*' || c == '/' || c == '+' || c == '-' || c == '^'
}

func operatorKind(c byte) TokenKind {
	switch c {
	case '*':
		return TokenMul
	case '/':
		return TokenDiv
	case '+':
		return TokenAdd
	case '-':
		return TokenSub
	case '^':
		return TokenExp
	}
	panic("mathex: not an operator: " + string(c))
}

type lexer struct {
	src string
	i   int
}

// Lex tokenizes src. Lexing never fails: every character belongs to some
// token class, with unrecognized characters falling into identifier runs.
// The parser is responsible for rejecting nonsense.
func Lex(src string) []Token {
	l := lexer{src: src}
	var toks []Token
	for {
		for l.i < len(l.src) && isSpace(l.src[l.i]) {
			l.i++
		}
		if l.i >= len(l.src) {
			return toks
		}
		toks = append(toks, l.scan())
	}
}

func (l *lexer) scan() Token {
	c := l.src[l.i]
	switch {
	case isDigit(c):
		return l.scanNumber()
	case isOperation(c):
		tok := Token{Kind: operatorKind(c), Text: l.src[l.i : l.i+1], Pos: l.i}
		l.i++
		return tok
	case c == '(':
		tok := Token{Kind: TokenParenOpen, Text: l.src[l.i : l.i+1], Pos: l.i}
		l.i++
		return tok
	case c == ')':
		tok := Token{Kind: TokenParenClose, Text: l.src[l.i : l.i+1], Pos: l.i}
		l.i++
		return tok
	case c == ',':
		tok := Token{Kind: TokenComma, Text: l.src[l.i : l.i+1], Pos: l.i}
		l.i++
		return tok
	}
	return l.scanAlpha()
}

// scanNumber consumes digits and at most one decimal point. A second point
// terminates the literal rather than failing; the leftover text becomes the
// start of the next token.
func (l *lexer) scanNumber() Token {
	start := l.i
	dot := false
	for l.i < len(l.src) {
		c := l.src[l.i]
		if c == '.' {
			if dot {
				break
			}
			dot = true
		} else if !isDigit(c) {
			break
		}
		l.i++
	}
	return Token{Kind: TokenNumber, Text: l.src[start:l.i], HasDecimal: dot, Pos: start}
}

// scanAlpha consumes until whitespace, a paren, or an operator character.
// Digits inside the run are kept, so names like log2 lex as one token.
func (l *lexer) scanAlpha() Token {
	start := l.i
	l.i++
	for l.i < len(l.src) {
		c := l.src[l.i]
		if isSpace(c) || isParen(c) || isOperation(c) {
			break
		}
		l.i++
	}
	return Token{Kind: TokenAlpha, Text: l.src[start:l.i], Pos: start}
}
