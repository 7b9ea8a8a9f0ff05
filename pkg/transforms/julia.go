package transforms

// Julia2 is the quadratic map z² + C.
type Julia2 struct {
	C complex128
}

func (j Julia2) Next(z complex128) complex128 {
	return Add(Mul(z, z), j.C)
}

// Square is the degenerate map z² used when only one marker feeds the recurrence.
type Square struct{}

func (Square) Next(z complex128) complex128 {
	return Mul(z, z)
}
