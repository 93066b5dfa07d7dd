package mathex

// Grammar, precedence low to high:
//
//	expr   := term { ('+'|'-') term }
//	term   := factor { ('*'|'/') factor }
//	factor := var [ '^' factor ]
//	var    := ['-'|'+'] atom
//	atom   := constant { '(' expr ')' }
//	       | symbol '(' arglist ')'
//	       | symbol
//	       | '(' expr ')' { '(' expr ')' }
//
// Chains of same-precedence operators fold left to right into left-leaning
// trees, so a/b/c is (a/b)/c. Exponentiation associates right via recursion.
// Unary minus binds at the var level, tighter than '^', and desugars to a
// multiplication by -1, so -2^2 is (-2)^2. A parenthesized group directly
// following an atom is an implicit multiplication; any other bare adjacency
// is a parse error.

// Parse parses a token stream into an expression tree. On failure the error
// is a *ParseError carrying the offending token.
func Parse(tokens []Token) (*Node, error) {
	p := parser{tokens: tokens}
	n, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, p.errorHere("expected expression")
	}
	if tok, ok := p.current(); ok {
		return nil, &ParseError{Token: tok, Message: "unexpected token"}
	}
	return n, nil
}

// ParseString lexes and parses src.
func ParseString(src string) (*Node, error) {
	return Parse(Lex(src))
}

type parser struct {
	tokens []Token
	i      int
}

func (p *parser) current() (Token, bool) {
	if p.i < len(p.tokens) {
		return p.tokens[p.i], true
	}
	return Token{}, false
}

func (p *parser) consume() { p.i++ }

// errorHere builds a ParseError for the current token, falling back to the
// last token in the stream when the cursor ran off the end.
func (p *parser) errorHere(msg string) *ParseError {
	if tok, ok := p.current(); ok {
		return &ParseError{Token: tok, Message: msg}
	}
	if len(p.tokens) > 0 {
		return &ParseError{Token: p.tokens[len(p.tokens)-1], Message: msg}
	}
	return &ParseError{Message: msg}
}

// Each parse method returns nil, nil when its production is not present at
// the cursor, leaving the cursor unmoved. On success the cursor sits just
// past the consumed tokens.

func (p *parser) parseExpression() (*Node, error) {
	n, err := p.parseTerm()
	if err != nil || n == nil {
		return n, err
	}
	for {
		tok, ok := p.current()
		if !ok || (tok.Kind != TokenAdd && tok.Kind != TokenSub) {
			return n, nil
		}
		p.consume()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, p.errorHere("expected term")
		}
		kind := OpAdd
		if tok.Kind == TokenSub {
			kind = OpSub
		}
		n = Op(kind, n, rhs)
	}
}

func (p *parser) parseTerm() (*Node, error) {
	n, err := p.parseFactor()
	if err != nil || n == nil {
		return n, err
	}
	for {
		tok, ok := p.current()
		if !ok || (tok.Kind != TokenMul && tok.Kind != TokenDiv) {
			return n, nil
		}
		p.consume()
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, p.errorHere("expected factor")
		}
		kind := OpMul
		if tok.Kind == TokenDiv {
			kind = OpDiv
		}
		n = Op(kind, n, rhs)
	}
}

func (p *parser) parseFactor() (*Node, error) {
	n, err := p.parseVar()
	if err != nil || n == nil {
		return n, err
	}
	tok, ok := p.current()
	if !ok || tok.Kind != TokenExp {
		return n, nil
	}
	p.consume()
	rhs, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	if rhs == nil {
		return nil, p.errorHere("expected factor")
	}
	return Op(OpExp, n, rhs), nil
}

func (p *parser) parseVar() (*Node, error) {
	tok, ok := p.current()
	if !ok {
		return nil, nil
	}
	switch tok.Kind {
	case TokenSub:
		p.consume()
		v, err := p.parseVar()
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, p.errorHere("expected expression")
		}
		return Op(OpMul, Constant(Int(-1)), v), nil
	case TokenAdd:
		p.consume()
		v, err := p.parseVar()
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, p.errorHere("expected expression")
		}
		return v, nil
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (*Node, error) {
	n, err := p.parseConstant()
	if err != nil {
		return nil, err
	}
	if n == nil {
		n, err = p.parseSymbolOrCall()
		if err != nil {
			return nil, err
		}
	}
	if n == nil {
		n, err = p.parseParen()
		if err != nil || n == nil {
			return n, err
		}
	}
	// A parenthesized group directly following an atom multiplies it.
	for {
		tok, ok := p.current()
		if !ok || tok.Kind != TokenParenOpen {
			return n, nil
		}
		rhs, err := p.parseParen()
		if err != nil {
			return nil, err
		}
		n = Op(OpMul, n, rhs)
	}
}

func (p *parser) parseConstant() (*Node, error) {
	tok, ok := p.current()
	if !ok || tok.Kind != TokenNumber {
		return nil, nil
	}
	num, ok := numberFromToken(tok)
	if !ok {
		return nil, &ParseError{Token: tok, Message: "invalid number: " + tok.Text}
	}
	p.consume()
	return Constant(num), nil
}

// parseSymbolOrCall parses an identifier. An identifier directly followed by
// an open paren is a function call; whether the name exists is checked
// during simplification, not here, so that unknown functions report an
// execution error instead of silently multiplying.
func (p *parser) parseSymbolOrCall() (*Node, error) {
	tok, ok := p.current()
	if !ok || tok.Kind != TokenAlpha {
		return nil, nil
	}
	p.consume()
	if next, ok := p.current(); ok && next.Kind == TokenParenOpen {
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		return Call(tok.Text, args...), nil
	}
	return Symbol(tok.Text), nil
}

// parseArgList parses a comma-separated argument list, starting at the open
// paren and consuming through the close paren.
func (p *parser) parseArgList() ([]*Node, error) {
	p.consume() // the open paren
	if tok, ok := p.current(); ok && tok.Kind == TokenParenClose {
		p.consume()
		return nil, nil
	}
	var args []*Node
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if arg == nil {
			return nil, p.errorHere("expected expression")
		}
		args = append(args, arg)
		tok, ok := p.current()
		if !ok {
			return nil, p.errorHere("unexpected end of stream, expected )")
		}
		switch tok.Kind {
		case TokenComma:
			p.consume()
		case TokenParenClose:
			p.consume()
			return args, nil
		default:
			return nil, &ParseError{Token: tok, Message: "junk encountered while parsing function arguments"}
		}
	}
}

func (p *parser) parseParen() (*Node, error) {
	tok, ok := p.current()
	if !ok || tok.Kind != TokenParenOpen {
		return nil, nil
	}
	p.consume()
	n, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, p.errorHere("expected expression")
	}
	end, ok := p.current()
	if !ok {
		return nil, p.errorHere("unexpected end of stream, expected )")
	}
	if end.Kind != TokenParenClose {
		return nil, &ParseError{Token: end, Message: "expected )"}
	}
	p.consume()
	return n, nil
}
