package bigint

// Sign is the sign of an Int.
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// Neg returns the opposite sign. Zero is its own opposite.
func (s Sign) Neg() Sign {
	return -s
}

// Mul returns the sign of the product of values with signs s and o.
func (s Sign) Mul(o Sign) Sign {
	switch {
	case s == Zero || o == Zero:
		return Zero
	case s == o:
		return Positive
	}

	return Negative
}

func (s Sign) String() string {
	switch s {
	case Negative:
		return "-"
	case Zero:
		return "0"
	case Positive:
		return "+"
	}

	return "?"
}
