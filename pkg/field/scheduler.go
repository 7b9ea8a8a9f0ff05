// Package field fills a screen-sized escape-time field a batch at a time.
//
// A Scheduler is not safe for concurrent use. The front-end that calls Tick is
// also the one that reads the Buffer.
package field

import (
	"errors"
	"time"

	"github.com/Hiestaa/complex-vis/pkg/escape"
)

const (
	DefaultBudget   = 10 * time.Millisecond
	DefaultMaxBatch = 100_000
)

var ErrNoMapper = errors.New("scheduler requires a coordinate mapper")

// A Mapper converts screen coordinates to the complex plane.
type Mapper interface {
	ToPlane(x, y float64) complex128
}

type Config struct {
	// Budget is the wall-clock time Run gives each Tick.
	Budget time.Duration
	// MaxBatch caps the pixels computed by a single Tick regardless of the clock.
	MaxBatch int
	// MaxIter bounds each pixel's orbit. Zero means the palette length.
	MaxIter int
	Palette escape.Palette
}

func DefaultConfig() Config {
	p := escape.DefaultPalette()
	return Config{
		Budget:   DefaultBudget,
		MaxBatch: DefaultMaxBatch,
		MaxIter:  len(p),
		Palette:  p,
	}
}

type Scheduler struct {
	buf        *Buffer
	mapper     Mapper
	markers    Markers
	cfg        Config
	classifier escape.Classifier
}

func NewScheduler(buf *Buffer, mapper Mapper, markers Markers, cfg Config) (*Scheduler, error) {
	if buf == nil {
		return nil, ErrEmptyBuffer
	}
	if mapper == nil {
		return nil, ErrNoMapper
	}
	if markers.Count == 0 {
		return nil, ErrNoMarkers
	}
	if !markers.Has(markers.Variable) {
		return nil, ErrUnknownMarker
	}

	if len(cfg.Palette) == 0 {
		cfg.Palette = escape.DefaultPalette()
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = len(cfg.Palette)
	}
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = DefaultMaxBatch
	}
	if cfg.Budget <= 0 {
		cfg.Budget = DefaultBudget
	}

	s := &Scheduler{
		buf:        buf,
		mapper:     mapper,
		markers:    markers,
		cfg:        cfg,
		classifier: escape.NewClassifier(cfg.Palette),
	}
	s.Invalidate()

	return s, nil
}

func (s *Scheduler) Buffer() *Buffer {
	return s.buf
}

func (s *Scheduler) Markers() Markers {
	return s.markers
}

func (s *Scheduler) Config() Config {
	return s.cfg
}

// Classifier returns the classifier used for the field, for tracing single orbits
// with the same thresholds and palette.
func (s *Scheduler) Classifier() escape.Classifier {
	return s.classifier
}

// Done reports whether every pixel of the current generation is computed.
func (s *Scheduler) Done() bool {
	return s.buf.cursor == s.buf.Len()
}

// Progress is the computed fraction of the current generation.
func (s *Scheduler) Progress() float64 {
	return float64(max(s.buf.cursor, 0)) / float64(s.buf.Len())
}

// Tick computes pixels in row-major order from the cursor until more than budget
// has elapsed on now, the batch cap is reached, or the field is complete. It always
// computes at least one pixel of an incomplete field, and returns how many it did.
func (s *Scheduler) Tick(now func() time.Time, budget time.Duration) int {
	if s.buf.cursor == NotStarted {
		s.buf.cursor = 0
	}

	start := now()
	n := 0
	for s.buf.cursor < s.buf.Len() && n < s.cfg.MaxBatch {
		s.compute(s.buf.cursor)
		s.buf.cursor++
		n++

		if now().Sub(start) > budget {
			break
		}
	}

	return n
}

func (s *Scheduler) compute(i int) {
	w := s.buf.Width()
	p := s.mapper.ToPlane(float64(i%w), float64(i/w))

	start, step := s.markers.Orbit(p)
	r := s.classifier.ClassifyWith(start, step, s.cfg.MaxIter)

	c := s.classifier.Color(r)
	c.A = 0xff
	s.buf.set(i, c)
}

// Invalidate discards the current generation.
func (s *Scheduler) Invalidate() {
	s.buf.reset()
}

// SetMarker moves a marker. Moving the fixed marker invalidates the field; moving
// the variable one does not, since the field already sweeps every position of it.
func (s *Scheduler) SetMarker(which Marker, v complex128) error {
	if !s.markers.Has(which) {
		return ErrUnknownMarker
	}

	s.markers.set(which, v)
	if which != s.markers.Variable {
		s.Invalidate()
	}

	return nil
}

// SetVariable chooses which marker is swept, invalidating the field if it changed.
func (s *Scheduler) SetVariable(which Marker) error {
	if !s.markers.Has(which) {
		return ErrUnknownMarker
	}
	if which == s.markers.Variable {
		return nil
	}

	s.markers.Variable = which
	s.Invalidate()

	return nil
}

// SetMaxIter changes the per-pixel iteration budget and invalidates the field.
func (s *Scheduler) SetMaxIter(n int) {
	if n <= 0 {
		n = len(s.cfg.Palette)
	}
	if n == s.cfg.MaxIter {
		return
	}

	s.cfg.MaxIter = n
	s.Invalidate()
}

// SetPalette recolors the field from scratch.
func (s *Scheduler) SetPalette(p escape.Palette) {
	if len(p) == 0 {
		p = escape.DefaultPalette()
	}

	s.cfg.Palette = p
	s.classifier = escape.NewClassifier(p)
	s.Invalidate()
}
