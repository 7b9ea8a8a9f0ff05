package field

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Hiestaa/complex-vis/pkg/transforms"
)

var (
	ErrNoMarkers      = errors.New("at least one marker is required")
	ErrTooManyMarkers = errors.New("at most two markers are supported")
	ErrUnknownMarker  = errors.New("unknown marker")
)

// Marker names one of the two markers.
type Marker int

const (
	// MarkerA is the orbit's starting point.
	MarkerA Marker = iota
	// MarkerB is the additive parameter of z² + c.
	MarkerB
)

func (m Marker) String() string {
	switch m {
	case MarkerA:
		return "A"
	case MarkerB:
		return "B"
	default:
		return fmt.Sprintf("Marker(%d)", int(m))
	}
}

// Other returns the marker that is not m.
func (m Marker) Other() Marker {
	if m == MarkerA {
		return MarkerB
	}
	return MarkerA
}

// ParseMarker parses "a" or "b", ignoring case.
func ParseMarker(s string) (Marker, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a":
		return MarkerA, nil
	case "b":
		return MarkerB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMarker, s)
	}
}

// Markers holds the marker values and which one is swept across the field.
//
// With Count 1 only A exists, and the recurrence has no additive term.
type Markers struct {
	A, B     complex128
	Count    int
	Variable Marker
}

// NewMarkers returns Markers for one or two values, in A, B order.
func NewMarkers(variable Marker, values ...complex128) (Markers, error) {
	m := Markers{Count: len(values), Variable: variable}

	switch len(values) {
	case 0:
		return Markers{}, ErrNoMarkers
	case 1:
		m.A = values[0]
	case 2:
		m.A, m.B = values[0], values[1]
	default:
		return Markers{}, ErrTooManyMarkers
	}

	if !m.Has(variable) {
		return Markers{}, fmt.Errorf("variable marker %s: %w", variable, ErrUnknownMarker)
	}

	return m, nil
}

// Has reports whether which exists.
func (m Markers) Has(which Marker) bool {
	switch which {
	case MarkerA:
		return m.Count >= 1
	case MarkerB:
		return m.Count >= 2
	default:
		return false
	}
}

func (m Markers) Value(which Marker) complex128 {
	if which == MarkerB {
		return m.B
	}
	return m.A
}

// With returns a copy of m with which moved to v.
func (m Markers) With(which Marker, v complex128) Markers {
	m.set(which, v)
	return m
}

func (m *Markers) set(which Marker, v complex128) {
	if which == MarkerB {
		m.B = v
		return
	}
	m.A = v
}

// Orbit returns the starting point and step of the recurrence with p in place of
// the variable marker. Sweeping A gives a Julia set for c = B; sweeping B gives a
// Mandelbrot-like set of orbits starting at A.
func (m Markers) Orbit(p complex128) (complex128, transforms.Transform) {
	if m.Count < 2 {
		return p, transforms.Square{}
	}

	if m.Variable == MarkerA {
		return p, transforms.Julia2{C: m.B}
	}
	return m.A, transforms.Julia2{C: p}
}

// Current returns the orbit of the markers at their current values.
func (m Markers) Current() (complex128, transforms.Transform) {
	return m.Orbit(m.Value(m.Variable))
}
