// Package flags provides pflag values for marker positions and names.
package flags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Hiestaa/complex-vis/pkg/field"
)

// Complex is a complex128 flag written as "re,im".
type Complex complex128

func (c *Complex) String() string {
	return fmt.Sprintf("%g,%g", real(*c), imag(*c))
}

func (c *Complex) Set(s string) error {
	re, im, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("complex %q: want re,im", s)
	}

	r, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
	if err != nil {
		return fmt.Errorf("real part of %q: %w", s, err)
	}
	i, err := strconv.ParseFloat(strings.TrimSpace(im), 64)
	if err != nil {
		return fmt.Errorf("imaginary part of %q: %w", s, err)
	}

	*c = Complex(complex(r, i))
	return nil
}

func (c *Complex) Type() string {
	return "complex"
}

// Marker is a field.Marker flag written as "a" or "b".
type Marker field.Marker

func (m *Marker) String() string {
	return strings.ToLower(field.Marker(*m).String())
}

func (m *Marker) Set(s string) error {
	parsed, err := field.ParseMarker(s)
	if err != nil {
		return err
	}

	*m = Marker(parsed)
	return nil
}

func (m *Marker) Type() string {
	return "marker"
}

var (
	_ pflag.Value = (*Complex)(nil)
	_ pflag.Value = (*Marker)(nil)
)

// Markers registers the flags shared by every front-end.
type Markers struct {
	A, B     Complex
	Variable Marker
	Single   bool
}

// DefaultMarkers starts in Julia mode with c = -0.4+0.6i.
func DefaultMarkers() *Markers {
	return &Markers{
		A:        Complex(complex(0, 0)),
		B:        Complex(complex(-0.4, 0.6)),
		Variable: Marker(field.MarkerA),
	}
}

func (m *Markers) AddFlags(fs *pflag.FlagSet) {
	fs.Var(&m.A, "a", "marker A, the orbit start (re,im)")
	fs.Var(&m.B, "b", "marker B, the additive parameter (re,im)")
	fs.Var(&m.Variable, "variable", "marker swept across the field (a or b)")
	fs.BoolVar(&m.Single, "single", false, "use marker A alone and iterate z² with no additive term")
}

// Build returns the configured field.Markers.
func (m *Markers) Build() (field.Markers, error) {
	values := []complex128{complex128(m.A), complex128(m.B)}
	if m.Single {
		values = values[:1]
	}

	return field.NewMarkers(field.Marker(m.Variable), values...)
}
