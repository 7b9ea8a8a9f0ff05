// Package escape classifies orbits of the quadratic map by escape time.
//
// An orbit escapes once both of its coordinates exceed the bound, and is bounded once
// a step moves both coordinates by less than the tolerance. The escape test is per
// axis, not a test on |z|.
package escape

import (
	"image/color"
	"math"

	"github.com/Hiestaa/complex-vis/pkg/transforms"
)

const (
	DefaultEscapeBound = 1.0
	DefaultTolerance   = 0.01
)

// Kind is how an orbit was classified.
type Kind int

const (
	// Exhausted orbits neither escaped nor settled within the iteration budget.
	Exhausted Kind = iota
	Escaped
	Bounded
)

func (k Kind) String() string {
	switch k {
	case Escaped:
		return "escaped"
	case Bounded:
		return "bounded"
	default:
		return "exhausted"
	}
}

// Result is the classification of a single orbit.
type Result struct {
	Kind Kind
	// Iteration is the step at which the orbit was classified, or the iteration budget
	// for exhausted orbits.
	Iteration int
	// ColorIndex indexes the classifier's palette.
	ColorIndex int
}

type Classifier struct {
	Palette     Palette
	EscapeBound float64
	Tolerance   float64
}

// NewClassifier returns a Classifier with the default thresholds. An empty palette is
// replaced with DefaultPalette.
func NewClassifier(p Palette) Classifier {
	if len(p) == 0 {
		p = DefaultPalette()
	}

	return Classifier{
		Palette:     p,
		EscapeBound: DefaultEscapeBound,
		Tolerance:   DefaultTolerance,
	}
}

// Classify runs the orbit of start under z² + fixed.
func (c Classifier) Classify(start, fixed complex128, maxIter int) Result {
	return c.ClassifyWith(start, transforms.Julia2{C: fixed}, maxIter)
}

// ClassifyWith runs the orbit of start under step for at most maxIter steps.
func (c Classifier) ClassifyWith(start complex128, step transforms.Transform, maxIter int) Result {
	z := start
	for i := 0; i < maxIter; i++ {
		prev := z
		z = step.Next(z)

		if kind, ok := c.test(prev, z); ok {
			return Result{Kind: kind, Iteration: i, ColorIndex: c.Palette.Index(i)}
		}
	}

	return Result{Kind: Exhausted, Iteration: max(maxIter, 0), ColorIndex: len(c.Palette) - 1}
}

// Trace returns the orbit of start under step: the start point followed by every
// computed step up to and including the one at which ClassifyWith would stop.
func (c Classifier) Trace(start complex128, step transforms.Transform, maxIter int) []complex128 {
	orbit := make([]complex128, 1, min(max(maxIter, 0), 1024)+1)
	orbit[0] = start

	z := start
	for i := 0; i < maxIter; i++ {
		prev := z
		z = step.Next(z)
		orbit = append(orbit, z)

		if _, ok := c.test(prev, z); ok {
			break
		}
	}

	return orbit
}

// Color returns the palette color for r.
func (c Classifier) Color(r Result) color.RGBA {
	if len(c.Palette) == 0 {
		return color.RGBA{}
	}
	return c.Palette[c.Palette.Index(r.ColorIndex)]
}

// test classifies the step from prev to z. Comparisons involving NaN are false, so a
// NaN orbit is never classified here.
func (c Classifier) test(prev, z complex128) (Kind, bool) {
	if c.beyond(prev) || c.beyond(z) {
		return Escaped, true
	}

	if math.Abs(real(z)-real(prev)) < c.Tolerance && math.Abs(imag(z)-imag(prev)) < c.Tolerance {
		return Bounded, true
	}

	return Exhausted, false
}

func (c Classifier) beyond(z complex128) bool {
	return math.Abs(real(z)) > c.EscapeBound && math.Abs(imag(z)) > c.EscapeBound
}
