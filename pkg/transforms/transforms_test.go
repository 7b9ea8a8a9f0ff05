package transforms

import (
	"errors"
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	got := Add(complex(1, 2), complex(3, -1))
	if want := complex(4, 1); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

func TestMul(t *testing.T) {
	tcs := []struct {
		name string
		a, b complex128
		want complex128
	}{
		{name: "literal", a: complex(1, 2), b: complex(3, -1), want: complex(5, 5)},
		{name: "i squared", a: complex(0, 1), b: complex(0, 1), want: complex(-1, 0)},
		{name: "zero", a: complex(7, -3), b: 0, want: 0},
		{name: "commutes", a: complex(3, -1), b: complex(1, 2), want: complex(5, 5)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := Mul(tc.a, tc.b); got != tc.want {
				t.Errorf("Mul(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestMulOverflow(t *testing.T) {
	got := Mul(complex(math.MaxFloat64, 0), complex(math.MaxFloat64, 0))
	if !math.IsInf(real(got), 1) {
		t.Errorf("real part = %v, want +Inf", real(got))
	}
}

func TestIterate(t *testing.T) {
	if got, want := Iterate(complex(0.5, 0.5)), complex(0.0, 0.5); got != want {
		t.Errorf("Iterate([z]) = %v, want %v", got, want)
	}

	if got, want := Iterate(0, complex(0.3, 0.4)), complex(0.3, 0.4); got != want {
		t.Errorf("Iterate([z, c]) = %v, want %v", got, want)
	}
}

func TestIterateWithoutPointPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Iterate() did not panic")
		}
	}()

	Iterate()
}

func TestQuadratic(t *testing.T) {
	step, err := Quadratic()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := step.(Square); !ok {
		t.Errorf("Quadratic() = %T, want Square", step)
	}

	step, err = Quadratic(complex(0.3, 0.4))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := step.Next(complex(1, 1)), complex(0.3, 2.4); got != want {
		t.Errorf("Next = %v, want %v", got, want)
	}

	_, err = Quadratic(1, 2)
	if !errors.Is(err, ErrTooManyParams) {
		t.Errorf("Quadratic(1, 2) err = %v, want ErrTooManyParams", err)
	}
}
