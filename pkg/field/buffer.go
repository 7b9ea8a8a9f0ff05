package field

import (
	"errors"
	"image"
	"image/color"
)

var ErrEmptyBuffer = errors.New("buffer dimensions must be positive")

// NotStarted is the cursor of a generation that has not computed any pixel yet.
const NotStarted = -1

// A Buffer is a fixed-size field of colors filled in row-major order.
//
// The cursor is the index of the next pixel to compute. It is NotStarted right after
// a reset and Len once the field is complete.
type Buffer struct {
	img        *image.RGBA
	cursor     int
	generation int
}

func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyBuffer
	}

	return &Buffer{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		cursor: NotStarted,
	}, nil
}

func (b *Buffer) Width() int {
	return b.img.Rect.Dx()
}

func (b *Buffer) Height() int {
	return b.img.Rect.Dy()
}

// Len is the number of pixels.
func (b *Buffer) Len() int {
	return b.Width() * b.Height()
}

func (b *Buffer) Cursor() int {
	return b.cursor
}

// Generation counts resets since allocation.
func (b *Buffer) Generation() int {
	return b.generation
}

// At returns the color at (x, y), or blank outside the buffer.
func (b *Buffer) At(x, y int) color.RGBA {
	return b.img.RGBAAt(x, y)
}

// Image exposes the backing image for blitting. Callers must not modify it.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}

func (b *Buffer) set(i int, c color.RGBA) {
	w := b.Width()
	b.img.SetRGBA(i%w, i/w, c)
}

// reset blanks every pixel and rewinds the cursor in one step.
func (b *Buffer) reset() {
	clear(b.img.Pix)
	b.cursor = NotStarted
	b.generation++
}
