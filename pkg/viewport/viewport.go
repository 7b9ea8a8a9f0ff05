package viewport

import "errors"

var ErrEmpty = errors.New("viewport has no area")

// A Viewport maps screen pixels to the complex plane. The plane origin sits at the
// center of the screen, the imaginary axis points up, and Unit is the number of pixels
// per plane unit.
type Viewport struct {
	Width, Height int
	Unit          float64
}

// Fit returns a Viewport whose shorter side spans span plane units.
func Fit(width, height int, span float64) (Viewport, error) {
	if width <= 0 || height <= 0 || span <= 0 {
		return Viewport{}, ErrEmpty
	}

	return Viewport{
		Width:  width,
		Height: height,
		Unit:   float64(min(width, height)) / span,
	}, nil
}

// ToPlane returns the plane coordinate of screen position (x, y).
func (v Viewport) ToPlane(x, y float64) complex128 {
	re := (x - float64(v.Width)*0.5) / v.Unit
	im := (float64(v.Height)*0.5 - y) / v.Unit
	return complex(re, im)
}

// ToScreen is the inverse of ToPlane.
func (v Viewport) ToScreen(z complex128) (float64, float64) {
	x := real(z)*v.Unit + float64(v.Width)*0.5
	y := float64(v.Height)*0.5 - imag(z)*v.Unit
	return x, y
}

// Contains reports whether the screen position is inside the viewport.
func (v Viewport) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(v.Width) && y < float64(v.Height)
}
