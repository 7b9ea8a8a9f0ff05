package viewport

import (
	"errors"
	"math"
	"testing"
)

func TestToPlane(t *testing.T) {
	v := Viewport{Width: 200, Height: 100, Unit: 50}

	tcs := []struct {
		x, y float64
		want complex128
	}{
		{x: 100, y: 50, want: 0},
		{x: 150, y: 50, want: complex(1, 0)},
		{x: 100, y: 0, want: complex(0, 1)},
		{x: 0, y: 100, want: complex(-2, -1)},
	}

	for _, tc := range tcs {
		if got := v.ToPlane(tc.x, tc.y); got != tc.want {
			t.Errorf("ToPlane(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	v := Viewport{Width: 640, Height: 480, Unit: 160}

	for _, z := range []complex128{0, complex(0.3, 0.4), complex(-1.5, 1.25), complex(2, -1)} {
		x, y := v.ToScreen(z)
		got := v.ToPlane(x, y)
		if math.Abs(real(got)-real(z)) > 1e-12 || math.Abs(imag(got)-imag(z)) > 1e-12 {
			t.Errorf("ToPlane(ToScreen(%v)) = %v", z, got)
		}
	}
}

func TestFit(t *testing.T) {
	v, err := Fit(800, 400, 4)
	if err != nil {
		t.Fatal(err)
	}
	if v.Unit != 100 {
		t.Errorf("Unit = %v, want 100", v.Unit)
	}

	_, err = Fit(0, 400, 4)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("Fit(0, 400, 4) err = %v, want ErrEmpty", err)
	}
}

func TestContains(t *testing.T) {
	v := Viewport{Width: 10, Height: 10, Unit: 1}
	if !v.Contains(0, 9.5) {
		t.Error("Contains(0, 9.5) = false")
	}
	if v.Contains(10, 0) {
		t.Error("Contains(10, 0) = true")
	}
}
