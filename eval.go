package fractions

// Reduce evaluates the expression to a single fraction. Division by zero and
// results too large for a Fraction produce an *EvalError.
func (e *Expr) Reduce() (Fraction, error) {
	return e.n.reduce()
}

// reduce evaluates the node's children, left first, then the node itself.
func (n *node) reduce() (Fraction, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeNegation:
		v, err := n.left.reduce()
		if err != nil {
			return Fraction{}, err
		}
		return v.Neg(), nil
	case nodeSum, nodeProduct, nodeDivision:
		l, err := n.left.reduce()
		if err != nil {
			return Fraction{}, err
		}
		r, err := n.right.reduce()
		if err != nil {
			return Fraction{}, err
		}
		var v Fraction
		var op string
		switch n.kind {
		case nodeSum:
			v, err = l.Add(r)
			op = "+"
		case nodeProduct:
			v, err = l.Mul(r)
			op = "*"
		case nodeDivision:
			v, err = l.Div(r)
			op = "/"
		}
		if err != nil {
			return Fraction{}, &EvalError{Col: n.pos, Op: op, Err: err}
		}
		return v, nil
	default:
		panic("fractions: invalid AST node " + n.kind.String())
	}
}

// Eval is a shortcut to lex, parse, and reduce an expression.
func Eval(src string) (Fraction, error) {
	e, err := Parse(src)
	if err != nil {
		return Fraction{}, err
	}
	return e.Reduce()
}

// EvalError is an error from an arithmetic operation in an expression. It
// unwraps to ErrDivisionByZero or ErrOverflow. It implements InputError.
type EvalError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator that failed.
	Op string
	// Err is the arithmetic error.
	Err error
}

func (err *EvalError) Error() string {
	return errpos(err.Col, err.Err.Error()+" in "+err.Op)
}

func (err *EvalError) Pos() int {
	return err.Col
}

func (err *EvalError) Unwrap() error {
	return err.Err
}
