package escape

import (
	"image/color"
	"math"
	"testing"

	"github.com/Hiestaa/complex-vis/pkg/transforms"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultPalette())
	last := len(c.Palette) - 1

	tcs := []struct {
		name    string
		start   complex128
		fixed   complex128
		maxIter int
		want    Result
	}{{
		name:    "origin settles immediately",
		start:   0,
		fixed:   0,
		maxIter: 50,
		want:    Result{Kind: Bounded, Iteration: 0, ColorIndex: 0},
	}, {
		name:    "start already beyond bound",
		start:   complex(10, 10),
		fixed:   0,
		maxIter: 50,
		want:    Result{Kind: Escaped, Iteration: 0, ColorIndex: 0},
	}, {
		name:    "escapes on third step",
		start:   0,
		fixed:   complex(1, 1),
		maxIter: 50,
		want:    Result{Kind: Escaped, Iteration: 2, ColorIndex: 2},
	}, {
		name:    "settles on fourth step",
		start:   0,
		fixed:   complex(0.2, 0),
		maxIter: 50,
		want:    Result{Kind: Bounded, Iteration: 3, ColorIndex: 3},
	}, {
		// |z| > 2 after one step, but the imaginary part stays zero so the per-axis
		// test never fires; the orbit overflows into NaN and runs out the budget.
		name:    "real axis never escapes",
		start:   complex(3, 0),
		fixed:   0,
		maxIter: 50,
		want:    Result{Kind: Exhausted, Iteration: 50, ColorIndex: last},
	}, {
		name:    "no budget",
		start:   complex(10, 10),
		fixed:   0,
		maxIter: 0,
		want:    Result{Kind: Exhausted, Iteration: 0, ColorIndex: last},
	}}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify(tc.start, tc.fixed, tc.maxIter)
			if got != tc.want {
				t.Errorf("Classify(%v, %v, %d) = %+v, want %+v", tc.start, tc.fixed, tc.maxIter, got, tc.want)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	c := NewClassifier(nil)
	start, fixed := complex(-0.4, 0.6), complex(0.285, 0.01)

	first := c.Classify(start, fixed, 100)
	second := c.Classify(start, fixed, 100)
	if first != second {
		t.Errorf("Classify not repeatable: %+v then %+v", first, second)
	}
}

func TestClassifyNaN(t *testing.T) {
	c := NewClassifier(nil)
	nan := math.NaN()

	got := c.Classify(complex(nan, nan), 0, 20)
	want := Result{Kind: Exhausted, Iteration: 20, ColorIndex: len(c.Palette) - 1}
	if got != want {
		t.Errorf("Classify(NaN) = %+v, want %+v", got, want)
	}
}

func TestClassifyInf(t *testing.T) {
	c := NewClassifier(nil)
	inf := math.Inf(1)

	got := c.Classify(complex(inf, -inf), 0, 20)
	if got.Kind != Escaped || got.Iteration != 0 {
		t.Errorf("Classify(Inf) = %+v, want escape at 0", got)
	}
}

func TestClassifySquare(t *testing.T) {
	c := NewClassifier(nil)

	// (2+2i)² = 8i, so the start point is what escapes.
	got := c.ClassifyWith(complex(2, 2), transforms.Square{}, 10)
	if got.Kind != Escaped || got.Iteration != 0 {
		t.Errorf("ClassifyWith = %+v, want escape at 0", got)
	}
}

func TestColorClampsToPalette(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	c := NewClassifier(Palette{red, blue})

	r := c.Classify(0, complex(1, 1), 50)
	if r.Iteration != 2 || r.ColorIndex != 1 {
		t.Fatalf("Classify = %+v, want iteration 2 clamped to index 1", r)
	}
	if got := c.Color(r); got != blue {
		t.Errorf("Color = %v, want %v", got, blue)
	}

	if got := c.Color(Result{ColorIndex: 0}); got != red {
		t.Errorf("Color = %v, want %v", got, red)
	}
}

func TestTrace(t *testing.T) {
	c := NewClassifier(nil)

	got := c.Trace(0, transforms.Julia2{C: complex(1, 1)}, 50)
	want := []complex128{0, complex(1, 1), complex(1, 3), complex(-7, 7)}
	if len(got) != len(want) {
		t.Fatalf("Trace = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Trace[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// Trace stops on the step Classify reports.
	r := c.Classify(0, complex(1, 1), 50)
	if len(got) != r.Iteration+2 {
		t.Errorf("Trace has %d points, Classify stopped at %d", len(got), r.Iteration)
	}
}

func TestTraceExhausted(t *testing.T) {
	c := NewClassifier(nil)

	got := c.Trace(complex(3, 0), transforms.Square{}, 12)
	if len(got) != 13 {
		t.Errorf("Trace has %d points, want 13", len(got))
	}
}

func TestGradientPalette(t *testing.T) {
	black := color.RGBA{A: 0xff}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	p := GradientPalette(3, black, white)
	want := Palette{black, {R: 0x80, G: 0x80, B: 0x80, A: 0xff}, white}
	if len(p) != len(want) {
		t.Fatalf("GradientPalette = %v, want %v", p, want)
	}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("p[%d] = %v, want %v", i, p[i], want[i])
		}
	}

	if got := GradientPalette(0, black); got != nil {
		t.Errorf("GradientPalette(0) = %v, want nil", got)
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if len(p) != 32 {
		t.Fatalf("len(DefaultPalette()) = %d, want 32", len(p))
	}
	if p[len(p)-1] != (color.RGBA{A: 0xff}) {
		t.Errorf("last color = %v, want opaque black", p[len(p)-1])
	}
	for i, c := range p {
		if c.A != 0xff {
			t.Errorf("p[%d] is not opaque: %v", i, c)
		}
	}
}
