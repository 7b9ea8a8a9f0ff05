// Package overlay computes the screen-space shapes drawn over a field: grid lines,
// orbit polylines and marker positions.
package overlay

import (
	"math"

	"github.com/Hiestaa/complex-vis/pkg/field"
	"github.com/Hiestaa/complex-vis/pkg/viewport"
)

// Far is how far outside the screen, in pixels, a trace point may lie before the
// polyline is cut.
const Far = 1e5

type Point struct {
	X, Y float64
}

// Grid returns the screen positions of vertical and horizontal lines every step
// plane units, including the axes.
func Grid(vp viewport.Viewport, step float64) (xs, ys []float64) {
	if step <= 0 || vp.Unit <= 0 {
		return nil, nil
	}

	lo, hi := vp.ToPlane(0, float64(vp.Height)), vp.ToPlane(float64(vp.Width), 0)

	for re := math.Ceil(real(lo)/step) * step; re <= real(hi); re += step {
		x, _ := vp.ToScreen(complex(re, 0))
		xs = append(xs, x)
	}
	for im := math.Ceil(imag(lo)/step) * step; im <= imag(hi); im += step {
		_, y := vp.ToScreen(complex(0, im))
		ys = append(ys, y)
	}

	return xs, ys
}

// Trace maps an orbit to screen points, stopping before the first point that is not
// finite or lies farther than Far outside the screen.
func Trace(vp viewport.Viewport, orbit []complex128) []Point {
	pts := make([]Point, 0, len(orbit))
	for _, z := range orbit {
		x, y := vp.ToScreen(z)
		if !usable(vp, x, y) {
			break
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts
}

func usable(vp viewport.Viewport, x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	return x > -Far && y > -Far && x < float64(vp.Width)+Far && y < float64(vp.Height)+Far
}

// Position returns where a marker sits on screen.
func Position(vp viewport.Viewport, m field.Markers, which field.Marker) Point {
	x, y := vp.ToScreen(m.Value(which))
	return Point{X: x, Y: y}
}

// Hit returns the marker within radius pixels of (x, y), preferring the closer one.
func Hit(vp viewport.Viewport, m field.Markers, x, y, radius float64) (field.Marker, bool) {
	best, found := field.MarkerA, false
	bestDist := radius * radius

	for _, which := range []field.Marker{field.MarkerA, field.MarkerB} {
		if !m.Has(which) {
			continue
		}

		p := Position(vp, m, which)
		d := (p.X-x)*(p.X-x) + (p.Y-y)*(p.Y-y)
		if d <= bestDist {
			best, bestDist, found = which, d, true
		}
	}

	return best, found
}
