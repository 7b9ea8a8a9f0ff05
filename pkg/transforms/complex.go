package transforms

// Add returns a + b.
func Add(a, b complex128) complex128 {
	return complex(real(a)+real(b), imag(a)+imag(b))
}

// Mul returns a * b written out component-wise, so overflow propagates as plain
// float arithmetic with no special handling of infinite operands.
func Mul(a, b complex128) complex128 {
	re := real(a)*real(b) - imag(a)*imag(b)
	im := real(a)*imag(b) + imag(a)*real(b)
	return complex(re, im)
}
