package fractions

import "strconv"

// TokenType is the category of a lexical token.
type TokenType int8

const (
	// TokenNumber is an integer or decimal literal. Its value is the
	// token's Value.
	TokenNumber TokenType = iota
	TokenPlus
	TokenMinus
	TokenMultiply
	TokenDivide
	TokenLParen
	TokenRParen
	// TokenEOF indicates the end of the input.
	TokenEOF
)

var tokenTypeNames = [...]string{
	TokenNumber:   "NUMBER",
	TokenPlus:     "PLUS",
	TokenMinus:    "MINUS",
	TokenMultiply: "MULTIPLY",
	TokenDivide:   "DIVIDE",
	TokenLParen:   "LPAREN",
	TokenRParen:   "RPAREN",
	TokenEOF:      "EOF",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return "TokenType(" + strconv.Itoa(int(t)) + ")"
	}
	return tokenTypeNames[t]
}

// Token is a lexical unit of an expression.
type Token struct {
	// Type is the category of the token.
	Type TokenType
	// Value is the value of a TokenNumber. It is zero for other types.
	Value Fraction
	// Pos is the 1-based rune column of the start of the token.
	Pos int
}

func (t Token) String() string {
	s := t.Type.String()
	if t.Type == TokenNumber {
		s += ":" + t.Value.String()
	}
	return s + "@" + strconv.Itoa(t.Pos)
}
