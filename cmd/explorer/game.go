package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Hiestaa/complex-vis/pkg/field"
	"github.com/Hiestaa/complex-vis/pkg/overlay"
	"github.com/Hiestaa/complex-vis/pkg/viewport"
)

const grabRadius = 10

var (
	backgroundColor = color.RGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xff}
	gridColor       = color.RGBA{R: 0x40, G: 0x40, B: 0x50, A: 0xff}
	axisColor       = color.RGBA{R: 0xa0, G: 0xa0, B: 0xb0, A: 0xff}
	traceColor      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}

	markerColors = map[field.Marker]color.RGBA{
		field.MarkerA: {R: 0xff, G: 0x50, B: 0x50, A: 0xff},
		field.MarkerB: {R: 0x50, G: 0xd0, B: 0xff, A: 0xff},
	}
)

// Settings are the live-adjustable drawing parameters of the orbit trace.
type Settings struct {
	TraceIter  int
	StepRadius float64
	LineWidth  float64
}

// Game implements ebiten.Game. Update drives the scheduler and Draw blits its buffer,
// both on ebiten's goroutine.
type Game struct {
	sched    *field.Scheduler
	vp       viewport.Viewport
	settings Settings

	fieldImg *ebiten.Image

	dragging bool
	dragged  field.Marker
	dragPos  complex128
}

func NewGame(s *field.Scheduler, vp viewport.Viewport, settings Settings) *Game {
	return &Game{
		sched:    s,
		vp:       vp,
		settings: settings,
		fieldImg: ebiten.NewImage(vp.Width, vp.Height),
	}
}

func (g *Game) Update() error {
	if err := g.handleDrag(); err != nil {
		return err
	}
	if err := g.handleKeys(); err != nil {
		return err
	}

	g.sched.Tick(time.Now, g.sched.Config().Budget)
	return nil
}

func (g *Game) handleDrag() error {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if which, ok := overlay.Hit(g.vp, g.sched.Markers(), x, y, grabRadius); ok {
			g.dragging, g.dragged = true, which
		}
	}
	if !g.dragging {
		return nil
	}

	g.dragPos = g.vp.ToPlane(x, y)

	// The scheduler only hears about the marker once it is dropped.
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
		return g.sched.SetMarker(g.dragged, g.dragPos)
	}

	return nil
}

func (g *Game) handleKeys() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		m := g.sched.Markers()
		if m.Has(m.Variable.Other()) {
			return g.sched.SetVariable(m.Variable.Other())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.settings.TraceIter++
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.settings.TraceIter = max(g.settings.TraceIter-1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.settings.StepRadius += 0.5
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.settings.StepRadius = math.Max(g.settings.StepRadius-0.5, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyPeriod):
		g.settings.LineWidth += 0.5
	case inpututil.IsKeyJustPressed(ebiten.KeyComma):
		g.settings.LineWidth = math.Max(g.settings.LineWidth-0.5, 0.5)
	}

	return nil
}

// markers returns the markers as drawn, including one being dragged.
func (g *Game) markers() field.Markers {
	m := g.sched.Markers()
	if g.dragging {
		m = m.With(g.dragged, g.dragPos)
	}
	return m
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawGrid(screen)

	g.fieldImg.WritePixels(g.sched.Buffer().Image().Pix)
	screen.DrawImage(g.fieldImg, nil)

	g.drawAxes(screen)
	g.drawTrace(screen)
	g.drawMarkers(screen)

	m := g.markers()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"variable %s  A=%.3f  B=%.3f\nfield %3.0f%%  trace %d  radius %.1f  width %.1f\n[V] swap variable  [+/-] trace  [ [ ] ] radius  [,/.] width",
		m.Variable, m.A, m.B, 100*g.sched.Progress(),
		g.settings.TraceIter, g.settings.StepRadius, g.settings.LineWidth,
	))
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	xs, ys := overlay.Grid(g.vp, 0.5)
	w, h := float32(g.vp.Width), float32(g.vp.Height)

	for _, x := range xs {
		vector.StrokeLine(screen, float32(x), 0, float32(x), h, 1, gridColor, false)
	}
	for _, y := range ys {
		vector.StrokeLine(screen, 0, float32(y), w, float32(y), 1, gridColor, false)
	}
}

func (g *Game) drawAxes(screen *ebiten.Image) {
	ox, oy := g.vp.ToScreen(0)
	w, h := float32(g.vp.Width), float32(g.vp.Height)

	vector.StrokeLine(screen, 0, float32(oy), w, float32(oy), 1, axisColor, false)
	vector.StrokeLine(screen, float32(ox), 0, float32(ox), h, 1, axisColor, false)
}

func (g *Game) drawTrace(screen *ebiten.Image) {
	m := g.markers()
	z0, step := m.Current()
	orbit := g.sched.Classifier().Trace(z0, step, g.settings.TraceIter)

	pts := overlay.Trace(g.vp, orbit)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			float32(g.settings.LineWidth), traceColor, false)
	}
	if g.settings.StepRadius <= 0 {
		return
	}
	for _, p := range pts {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(g.settings.StepRadius), traceColor, false)
	}
}

func (g *Game) drawMarkers(screen *ebiten.Image) {
	m := g.markers()

	for _, which := range []field.Marker{field.MarkerA, field.MarkerB} {
		if !m.Has(which) {
			continue
		}

		p := overlay.Position(g.vp, m, which)
		clr := markerColors[which]
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 6, clr, false)
		if which == m.Variable {
			vector.StrokeCircle(screen, float32(p.X), float32(p.Y), 9, 2, clr, false)
		}
		ebitenutil.DebugPrintAt(screen, which.String(), int(p.X)+8, int(p.Y)-16)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.vp.Width, g.vp.Height
}

var _ ebiten.Game = (*Game)(nil)
