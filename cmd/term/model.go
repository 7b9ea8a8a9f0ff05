package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Hiestaa/complex-vis/pkg/field"
	"github.com/Hiestaa/complex-vis/pkg/overlay"
	"github.com/Hiestaa/complex-vis/pkg/viewport"
)

const halfBlock = "▀"

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type tickMsg time.Time

// model is the bubbletea model. The scheduler is shared between copies of the model,
// all of which run on the program's goroutine.
type model struct {
	sched    *field.Scheduler
	vp       viewport.Viewport
	nudge    float64
	interval time.Duration
	err      error
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tick(m.interval)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		m.sched.Tick(time.Now, m.sched.Config().Budget)
		return m, tick(m.interval)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	markers := m.sched.Markers()
	fixed := markers.Variable.Other()
	if !markers.Has(fixed) {
		fixed = markers.Variable
	}

	m.err = nil
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "v":
		if markers.Has(markers.Variable.Other()) {
			m.err = m.sched.SetVariable(markers.Variable.Other())
		}
	case "up":
		m.err = m.move(fixed, complex(0, m.nudge))
	case "down":
		m.err = m.move(fixed, complex(0, -m.nudge))
	case "left":
		m.err = m.move(fixed, complex(-m.nudge, 0))
	case "right":
		m.err = m.move(fixed, complex(m.nudge, 0))
	case "w":
		m.err = m.move(markers.Variable, complex(0, m.nudge))
	case "s":
		m.err = m.move(markers.Variable, complex(0, -m.nudge))
	case "a":
		m.err = m.move(markers.Variable, complex(-m.nudge, 0))
	case "d":
		m.err = m.move(markers.Variable, complex(m.nudge, 0))
	}

	return m, nil
}

func (m model) move(which field.Marker, by complex128) error {
	return m.sched.SetMarker(which, m.sched.Markers().Value(which)+by)
}

func (m model) View() string {
	var b strings.Builder

	buf := m.sched.Buffer()
	labels := m.markerCells()

	for row := 0; row < buf.Height()/2; row++ {
		for col := 0; col < buf.Width(); col++ {
			if label, ok := labels[[2]int{col, row}]; ok {
				b.WriteString(markerStyle.Render(label))
				continue
			}
			b.WriteString(cell(buf.At(col, 2*row), buf.At(col, 2*row+1)))
		}
		b.WriteByte('\n')
	}

	markers := m.sched.Markers()
	status := fmt.Sprintf("variable %s  A=%.3f", markers.Variable, markers.A)
	if markers.Has(field.MarkerB) {
		status += fmt.Sprintf("  B=%.3f", markers.B)
	}
	status += fmt.Sprintf("  %3.0f%%", 100*m.sched.Progress())

	b.WriteString(statusStyle.Render(status))
	b.WriteByte('\n')
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("arrows: fixed marker  wasd: variable marker  v: swap  q: quit"))

	return b.String()
}

// markerCells maps terminal cells to the marker drawn in them.
func (m model) markerCells() map[[2]int]string {
	labels := make(map[[2]int]string)
	markers := m.sched.Markers()

	for _, which := range []field.Marker{field.MarkerA, field.MarkerB} {
		if !markers.Has(which) {
			continue
		}

		p := overlay.Position(m.vp, markers, which)
		if !m.vp.Contains(p.X, p.Y) {
			continue
		}
		labels[[2]int{int(math.Floor(p.X)), int(math.Floor(p.Y)) / 2}] = which.String()
	}

	return labels
}

// cell renders two vertically stacked pixels as one terminal cell.
func cell(top, bottom color.RGBA) string {
	if top.A == 0 && bottom.A == 0 {
		return " "
	}

	style := lipgloss.NewStyle()
	if top.A != 0 {
		style = style.Foreground(hex(top))
	}
	if bottom.A != 0 {
		style = style.Background(hex(bottom))
	}

	return style.Render(halfBlock)
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

var _ tea.Model = model{}
