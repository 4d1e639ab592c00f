package fractions

import "strings"

// Expr = Term EOF
// Term = Factor { ('+' | '-') Factor }
// Factor = Unary { ('*' | '/') Unary }
// Unary = [ '+' | '-' ] Primary
// Primary = num | '(' Term ')'
//
// There is no subtraction node: a - b parses as a + (-b).

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

type parser struct {
	toks []Token
	cur  int
}

// Parse lexes and parses an expression.
func Parse(src string) (*Expr, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseTokens parses a complete expression from a token sequence, normally
// the result of Lex. The expression must be followed by an EOF token.
func ParseTokens(toks []Token) (*Expr, error) {
	p := parser{toks: toks}
	n, err := p.parseterm()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenEOF); err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// peek returns the current token. Past the end of the sequence, it is an EOF
// token positioned after the last token.
func (p *parser) peek() Token {
	if p.cur < len(p.toks) {
		return p.toks[p.cur]
	}
	if len(p.toks) == 0 {
		return Token{Type: TokenEOF, Pos: 1}
	}
	last := p.toks[len(p.toks)-1]
	return Token{Type: TokenEOF, Pos: last.Pos + 1}
}

func (p *parser) advance() {
	if p.cur < len(p.toks) {
		p.cur++
	}
}

// eat consumes the current token, returning it if it has type want and a
// *SyntaxError otherwise.
func (p *parser) eat(want TokenType) (Token, error) {
	tok := p.peek()
	p.advance()
	if tok.Type != want {
		return tok, &SyntaxError{Col: tok.Pos, Want: want, Got: tok.Type}
	}
	return tok, nil
}

// parseterm parses a sum of factors.
func (p *parser) parseterm() (*node, error) {
	n, err := p.parsefactor()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		switch tok.Type {
		case TokenPlus:
			p.advance()
			rhs, err := p.parsefactor()
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeSum, left: n, right: rhs, pos: tok.Pos}
		case TokenMinus:
			p.advance()
			rhs, err := p.parsefactor()
			if err != nil {
				return nil, err
			}
			rhs = &node{kind: nodeNegation, left: rhs, pos: tok.Pos}
			n = &node{kind: nodeSum, left: n, right: rhs, pos: tok.Pos}
		default:
			return n, nil
		}
	}
}

// parsefactor parses a product or quotient of unary terms.
func (p *parser) parsefactor() (*node, error) {
	n, err := p.parseunary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		var kind nodeKind
		switch tok.Type {
		case TokenMultiply:
			kind = nodeProduct
		case TokenDivide:
			kind = nodeDivision
		default:
			return n, nil
		}
		p.advance()
		rhs, err := p.parseunary()
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs, pos: tok.Pos}
	}
}

// parseunary parses a primary with at most one sign.
func (p *parser) parseunary() (*node, error) {
	tok := p.peek()
	switch tok.Type {
	case TokenPlus:
		p.advance()
		return p.parseprimary()
	case TokenMinus:
		p.advance()
		n, err := p.parseprimary()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNegation, left: n, pos: tok.Pos}, nil
	default:
		return p.parseprimary()
	}
}

// parseprimary parses a number or a parenthesized term.
func (p *parser) parseprimary() (*node, error) {
	tok := p.peek()
	if tok.Type == TokenLParen {
		p.advance()
		n, err := p.parseterm()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(TokenRParen); err != nil {
			return nil, err
		}
		return n, nil
	}
	tok, err := p.eat(TokenNumber)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeNum, num: tok.Value, pos: tok.Pos}, nil
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}
