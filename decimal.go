package fractions

import (
	"math/bits"
	"strconv"
)

// DefaultDecimalDigits is the maximum number of digits after the decimal
// point that Decimal produces.
const DefaultDecimalDigits = 4096

// Decimal formats f in decimal notation. A repeating block of digits is
// enclosed in parentheses, so 1/6 formats as 0.1(6). If more than
// DefaultDecimalDigits digits would be needed, the result is truncated and
// ends with "...".
func (f Fraction) Decimal() string {
	s, _ := f.DecimalN(DefaultDecimalDigits)
	return s
}

// DecimalN is like Decimal but produces at most max digits after the decimal
// point. The second result is false if the result was truncated.
func (f Fraction) DecimalN(max int) (string, bool) {
	if max < 1 {
		max = 1
	}
	b := make([]byte, 0, 24)
	if f.sign == Negative {
		b = append(b, '-')
	}
	den := f.Den()
	b = strconv.AppendUint(b, f.num/den, 10)
	rem := f.num % den
	if rem == 0 {
		return string(b), true
	}
	b = append(b, '.')
	// seen maps each remainder to the index of the digit it produced.
	seen := make(map[uint64]int)
	for n := 0; rem != 0; n++ {
		if k, ok := seen[rem]; ok {
			b = append(b, 0)
			copy(b[k+1:], b[k:])
			b[k] = '('
			b = append(b, ')')
			return string(b), true
		}
		if n >= max {
			return string(append(b, "..."...)), false
		}
		seen[rem] = len(b)
		// rem < den, so the high word of rem*10 is less than den and the
		// quotient is a single digit.
		hi, lo := bits.Mul64(rem, 10)
		var d uint64
		d, rem = bits.Div64(hi, lo, den)
		b = append(b, byte('0'+d))
	}
	return string(b), true
}
