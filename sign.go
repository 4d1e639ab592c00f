package fractions

// Sign is the polarity of a Fraction.
type Sign int8

const (
	Positive Sign = iota
	Negative
)

// Mul returns the sign of a product of terms with signs s and t.
func (s Sign) Mul(t Sign) Sign {
	if s == t {
		return Positive
	}
	return Negative
}

// Neg returns the opposite sign.
func (s Sign) Neg() Sign {
	if s == Negative {
		return Positive
	}
	return Negative
}

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}
