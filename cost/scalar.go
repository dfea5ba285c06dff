package cost

// Scalar is the set of counter types a Vector can hold. Every member has a
// zero value, a maximum, a total order and wrap-detectable addition.
type Scalar interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// MaxScalar returns the largest value representable by U.
func MaxScalar[U Scalar]() U {
	return ^U(0)
}

// SaturatingAdd returns a+b, or MaxScalar when the sum would overflow.
func SaturatingAdd[U Scalar](a, b U) U {
	sum := a + b
	if sum < a {
		return MaxScalar[U]()
	}
	return sum
}
