package transforms

import "errors"

// ErrTooManyParams is returned when more than one fixed parameter is given to the
// quadratic map.
var ErrTooManyParams = errors.New("quadratic map takes at most one fixed parameter")

// A Transform advances an orbit by one step.
type Transform interface {
	Next(z complex128) complex128
}

// Quadratic returns the step of the recurrence for the given fixed parameters.
// With no fixed parameter the step is z², otherwise z² + c.
func Quadratic(fixed ...complex128) (Transform, error) {
	switch len(fixed) {
	case 0:
		return Square{}, nil
	case 1:
		return Julia2{C: fixed[0]}, nil
	default:
		return nil, ErrTooManyParams
	}
}

// Iterate applies one step to the ordered parameter list [z] or [z, c].
func Iterate(params ...complex128) complex128 {
	if len(params) == 0 {
		panic("transforms: Iterate called without a point")
	}

	t, err := Quadratic(params[1:]...)
	if err != nil {
		panic(err)
	}

	return t.Next(params[0])
}

var (
	_ Transform = Square{}
	_ Transform = Julia2{}
)
