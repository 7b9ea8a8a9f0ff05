package escape

import "image/color"

// A Palette maps escape-time iteration counts to colors. Index i colors orbits
// classified at iteration i; the last entry also colors exhausted orbits.
type Palette []color.RGBA

// Index clamps an iteration count into the palette.
func (p Palette) Index(iteration int) int {
	switch {
	case iteration < 0:
		return 0
	case iteration >= len(p):
		return len(p) - 1
	}
	return iteration
}

// GradientPalette returns n colors interpolated linearly through the stops, in order.
// All colors are fully opaque.
func GradientPalette(n int, stops ...color.RGBA) Palette {
	if n <= 0 || len(stops) == 0 {
		return nil
	}
	if len(stops) == 1 || n == 1 {
		p := make(Palette, n)
		for i := range p {
			p[i] = opaque(stops[0])
		}
		return p
	}

	p := make(Palette, n)
	segments := float64(len(stops) - 1)
	for i := range p {
		pos := float64(i) / float64(n-1) * segments
		seg := int(pos)
		if seg >= len(stops)-1 {
			seg = len(stops) - 2
		}
		frac := pos - float64(seg)

		from, to := stops[seg], stops[seg+1]
		p[i] = color.RGBA{
			R: lerp(from.R, to.R, frac),
			G: lerp(from.G, to.G, frac),
			B: lerp(from.B, to.B, frac),
			A: 0xff,
		}
	}

	return p
}

// DefaultPalette runs from deep blue for fast escapes through orange to white, and
// ends in black for points that stay bounded.
func DefaultPalette() Palette {
	p := GradientPalette(31,
		color.RGBA{R: 0x00, G: 0x07, B: 0x64},
		color.RGBA{R: 0x20, G: 0x6b, B: 0xcb},
		color.RGBA{R: 0xed, G: 0xff, B: 0xff},
		color.RGBA{R: 0xff, G: 0xaa, B: 0x00},
		color.RGBA{R: 0x30, G: 0x02, B: 0x00},
	)
	return append(p, color.RGBA{A: 0xff})
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}
