package fractions

import "strconv"

// SyntaxError is an error indicating a token the parser did not expect. It
// implements InputError.
type SyntaxError struct {
	// Col is the position of the unexpected token.
	Col int
	// Want is the type of token the parser required.
	Want TokenType
	// Got is the type of token the parser found.
	Got TokenType
}

func (err *SyntaxError) Error() string {
	if err.Want == TokenEOF {
		return errpos(err.Col, "unexpected "+err.Got.String()+" after end of expression")
	}
	return errpos(err.Col, "expected "+err.Want.String()+" but got "+err.Got.String())
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of
	// the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*EvalError)(nil)
)
