package fractions

import (
	"errors"
	"math/big"
	"math/bits"
	"strconv"
)

// Errors from arithmetic on fractions. Errors from evaluating expressions wrap
// these, so callers should test them with errors.Is.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("computation overflow")
)

// Fraction is an exact rational number with an unsigned 64-bit numerator and
// denominator and an explicit sign.
//
// A Fraction is always in lowest terms, and zero is always positive, so two
// Fractions can be compared with == and !=. The denominator is stored biased
// by one, which makes the zero value a valid 0/1.
//
// Fraction has value semantics. No method modifies its receiver.
type Fraction struct {
	sign Sign
	num  uint64
	dm1  uint64
}

// Try creates a fraction from a numerator, denominator, and sign, reducing it
// to lowest terms. Returns ErrDivisionByZero if den is zero.
func Try(num, den uint64, sign Sign) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	return reduce(num, den, sign), nil
}

// New is like Try but panics if den is zero.
func New(num, den uint64, sign Sign) Fraction {
	f, err := Try(num, den, sign)
	if err != nil {
		panic("fractions: " + err.Error())
	}
	return f
}

// Int returns the fraction n/1.
func Int(n int64) Fraction {
	if n < 0 {
		// -(n+1) cannot overflow.
		return Fraction{sign: Negative, num: uint64(-(n + 1)) + 1}
	}
	return Fraction{num: uint64(n)}
}

func reduce(num, den uint64, sign Sign) Fraction {
	if num == 0 {
		return Fraction{}
	}
	k := gcd(num, den)
	return Fraction{sign: sign, num: num / k, dm1: den/k - 1}
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mul64 multiplies two integers, reporting ErrOverflow if the product does not
// fit in 64 bits.
func mul64(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// Sign returns the sign of f. Zero is Positive.
func (f Fraction) Sign() Sign {
	return f.sign
}

// Num returns the magnitude of the numerator of f.
func (f Fraction) Num() uint64 {
	return f.num
}

// Den returns the denominator of f, which is always positive.
func (f Fraction) Den() uint64 {
	return f.dm1 + 1
}

// IsZero returns whether f is zero.
func (f Fraction) IsZero() bool {
	return f.num == 0
}

// IsInt returns whether f has a denominator of 1.
func (f Fraction) IsInt() bool {
	return f.dm1 == 0
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	if f.num == 0 {
		return f
	}
	f.sign = f.sign.Neg()
	return f
}

// Inv returns 1/f. Returns ErrDivisionByZero if f is zero.
func (f Fraction) Inv() (Fraction, error) {
	if f.num == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	// f is in lowest terms, so its reciprocal is too.
	return Fraction{sign: f.sign, num: f.Den(), dm1: f.num - 1}, nil
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) (Fraction, error) {
	fd, gd := f.Den(), g.Den()
	// Scale to the least common denominator rather than fd*gd so that
	// overflow depends on the operands rather than how they were written.
	k := gcd(fd, gd)
	l, err := mul64(f.num, gd/k)
	if err != nil {
		return Fraction{}, err
	}
	r, err := mul64(g.num, fd/k)
	if err != nil {
		return Fraction{}, err
	}
	den, err := mul64(fd/k, gd)
	if err != nil {
		return Fraction{}, err
	}
	var num uint64
	sign := f.sign
	switch {
	case f.sign == g.sign:
		var carry uint64
		num, carry = bits.Add64(l, r, 0)
		if carry != 0 {
			return Fraction{}, ErrOverflow
		}
	case l >= r:
		// Equal magnitudes give zero, which reduce makes positive.
		num = l - r
	default:
		num = r - l
		sign = g.sign
	}
	return reduce(num, den, sign), nil
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) (Fraction, error) {
	return f.Add(g.Neg())
}

// Mul returns f * g.
func (f Fraction) Mul(g Fraction) (Fraction, error) {
	fd, gd := f.Den(), g.Den()
	// Cancel across the product first. Both operands are already in lowest
	// terms, so the result is too.
	a := gcd(f.num, gd)
	b := gcd(g.num, fd)
	num, err := mul64(f.num/a, g.num/b)
	if err != nil {
		return Fraction{}, err
	}
	den, err := mul64(fd/b, gd/a)
	if err != nil {
		return Fraction{}, err
	}
	return reduce(num, den, f.sign.Mul(g.sign)), nil
}

// Div returns f / g. Returns ErrDivisionByZero if g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	r, err := g.Inv()
	if err != nil {
		return Fraction{}, err
	}
	return f.Mul(r)
}

// Cmp compares f and g and returns -1, 0, or +1 as f is less than, equal to,
// or greater than g.
func (f Fraction) Cmp(g Fraction) int {
	if f.sign != g.sign {
		if f.sign == Negative {
			return -1
		}
		return 1
	}
	lh, ll := bits.Mul64(f.num, g.Den())
	rh, rl := bits.Mul64(g.num, f.Den())
	c := 0
	switch {
	case lh < rh, lh == rh && ll < rl:
		c = -1
	case lh > rh, lh == rh && ll > rl:
		c = 1
	}
	if f.sign == Negative {
		c = -c
	}
	return c
}

// Rat returns f as a big.Rat.
func (f Fraction) Rat() *big.Rat {
	num := new(big.Int).SetUint64(f.num)
	if f.sign == Negative {
		num.Neg(num)
	}
	return new(big.Rat).SetFrac(num, new(big.Int).SetUint64(f.Den()))
}

// Float returns an approximation of f to prec bits.
func (f Fraction) Float(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetRat(f.Rat())
}

// String formats f as num/den, or just num if f is an integer.
func (f Fraction) String() string {
	b := make([]byte, 0, 41)
	if f.sign == Negative {
		b = append(b, '-')
	}
	b = strconv.AppendUint(b, f.num, 10)
	if !f.IsInt() {
		b = append(b, '/')
		b = strconv.AppendUint(b, f.Den(), 10)
	}
	return string(b)
}
