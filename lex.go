package fractions

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Symbols contains the runes which lex as single-rune tokens other than
// numbers.
const Symbols = "+-*/()"

var symbolTypes = [len(Symbols)]TokenType{
	TokenPlus,
	TokenMinus,
	TokenMultiply,
	TokenDivide,
	TokenLParen,
	TokenRParen,
}

type lexer struct {
	src  string
	in   *strings.Reader
	buf  strings.Builder
	rune int
}

// Lex tokenizes src. The result always ends with a single TokenEOF token. The
// first invalid character stops lexing with a *LexError.
func Lex(src string) ([]Token, error) {
	l := lexer{
		src:  src,
		in:   strings.NewReader(src),
		rune: 1,
	}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == TokenEOF {
			return toks, nil
		}
	}
}

// readRune reads a rune from the source and updates the lexer's position.
func (l *lexer) readRune() (rune, bool) {
	r, sz, err := l.in.ReadRune()
	if err != nil {
		// A strings.Reader only fails at EOF.
		return 0, false
	}
	if sz > 0 {
		l.rune++
	}
	return r, true
}

// unreadRune unreads the last rune read. Panics if there is none.
func (l *lexer) unreadRune() {
	if err := l.in.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token. Once the source is exhausted, every call
// returns an EOF token.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	tok := Token{Pos: l.rune}
	for {
		r, ok := l.readRune()
		if !ok {
			tok.Type = TokenEOF
			return tok, nil
		}
		switch {
		case unicode.IsSpace(r):
			tok.Pos++
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			v, err := l.scanNum(tok.Pos)
			if err != nil {
				return tok, err
			}
			tok.Type = TokenNumber
			tok.Value = v
			return tok, nil
		default:
			if k := strings.IndexRune(Symbols, r); k >= 0 {
				tok.Type = symbolTypes[k]
				return tok, nil
			}
			return tok, &LexError{Src: l.src, Col: tok.Pos, Text: string(r)}
		}
	}
}

// scanNum scans a decimal literal starting at column col.
func (l *lexer) scanNum(col int) (Fraction, error) {
	dot := -1
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if r == '.' && dot < 0 {
			dot = l.buf.Len()
			l.buf.WriteByte('.')
			continue
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	text := l.buf.String()
	ip, fp := text, ""
	if dot >= 0 {
		ip, fp = text[:dot], text[dot+1:]
	}
	if ip == "" && fp == "" {
		// A lone dot.
		return Fraction{}, &LexError{Src: l.src, Col: col, Text: text}
	}
	v, err := decimal(ip, fp)
	if err != nil {
		return Fraction{}, &LexError{Src: l.src, Col: col, Text: text, Err: err}
	}
	return v, nil
}

// decimal converts the digit strings on either side of a decimal point to a
// fraction. Either string may be empty.
func decimal(ip, fp string) (Fraction, error) {
	var whole Fraction
	if ip != "" {
		n, err := strconv.ParseUint(ip, 10, 64)
		if err != nil {
			// The lexer only passes digits, so this is a range error.
			return Fraction{}, ErrOverflow
		}
		whole = Fraction{num: n}
	}
	fp = strings.TrimRight(fp, "0")
	if fp == "" {
		return whole, nil
	}
	m, err := strconv.ParseUint(fp, 10, 64)
	if err != nil {
		return Fraction{}, ErrOverflow
	}
	den := uint64(1)
	for i := 0; i < len(fp); i++ {
		den, err = mul64(den, 10)
		if err != nil {
			return Fraction{}, err
		}
	}
	return whole.Add(reduce(m, den, Positive))
}

// LexError indicates an invalid character or literal. It implements
// InputError.
type LexError struct {
	// Src is the entire source being lexed.
	Src string
	// Col is the 1-based rune column of the start of the invalid text.
	Col int
	// Text is the invalid character, or the whole literal if Err is non-nil
	// or the literal is a lone dot.
	Text string
	// Err is the reason a well-formed literal was rejected, if any.
	Err error
}

// Error renders a diagnostic of three lines: the source, an arrow pointing to
// the invalid text, and a description.
func (err *LexError) Error() string {
	var msg string
	switch {
	case err.Err != nil:
		msg = "invalid number " + strconv.Quote(err.Text) + ": " + err.Err.Error()
	case err.Text == ".":
		msg = "number with no digits"
	default:
		r, _ := utf8.DecodeRuneInString(err.Text)
		msg = "unexpected character " + strconv.QuoteRune(r)
	}
	return Pointer(err.Src, err.Col) + "\n" + errpos(err.Col, msg)
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return err.Err
}

// Pointer renders src and, below it, an arrow pointing to the 1-based rune
// column col.
func Pointer(src string, col int) string {
	if col < 1 {
		col = 1
	}
	return src + "\n" + strings.Repeat("-", col-1) + "^"
}
