package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	frameRate       = 60
	// Long pauses between ticks are clamped so a stalled terminal does not
	// turn into one huge step.
	maxElapsed = 0.1
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model animates a gravity simulation in the terminal.
type Model struct {
	name          string
	bodies        physics.Bodies
	radii         []float64
	substeps      int
	speed         float64
	zoom          float64
	t             float64
	last          time.Time
	canvas        *Canvas
	energyHistory []float64
	records       []string
}

func NewModel(name string, b physics.Bodies, density float64) Model {
	return Model{
		name:          name,
		bodies:        b,
		radii:         physics.Radii(b, density),
		substeps:      physics.DefaultSubsteps,
		speed:         1.0,
		zoom:          1.0,
		canvas:        NewCanvas(width, height),
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Bodies() physics.Bodies { return m.bodies }
func (m Model) Speed() float64         { return m.speed }
func (m Model) Zoom() float64          { return m.zoom }

// Records returns the diagnostic lines captured with enter.
func (m Model) Records() []string { return m.records }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.speed = 1 - m.speed
		case "enter":
			line := Diagnostics(m.bodies)
			m.records = append(m.records, line)
			return m, tea.Println(line)
		case "+", "=":
			m.zoom *= 2
		case "-":
			m.zoom /= 2
		}
	case TickMsg:
		now := time.Time(msg)
		elapsed := 1.0 / frameRate
		if !m.last.IsZero() {
			elapsed = min(max(now.Sub(m.last).Seconds(), 0), maxElapsed)
		}
		m.last = now
		m.advance(elapsed)
		return m, tick()
	}
	return m, nil
}

// advance moves the simulation forward by elapsed wall seconds.
func (m *Model) advance(elapsed float64) {
	dt := m.speed * elapsed
	m.bodies = physics.Superstep(m.bodies, dt, m.substeps)
	m.t += dt

	e := physics.Energy(m.bodies)
	if math.IsNaN(e) || math.IsInf(e, 0) {
		return
	}
	m.energyHistory = append(m.energyHistory, e)
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	v := DrawBodies(m.canvas, m.bodies, m.radii, m.zoom)

	cx, cy := m.bodies.CenterOfMass()
	px, py := v.Project(cx, cy)
	if !m.canvas.contains(px, py, 2) {
		return
	}
	x, y := int(px), int(py)
	m.canvas.DrawLine(x-2, y, x+2, y)
	m.canvas.DrawLine(x, y-2, x, y+2)
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	if m.speed == 0 {
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	} else {
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	d := dynamo.Diagnose(m.bodies, m.t)
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", d.Time)) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", m.bodies.N())) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%+.8g", d.Energy)) + "\n")
	s.WriteString(labelStyle.Render("Centroid") + valueStyle.Render(fmt.Sprintf("(%+.4f, %+.4f)", d.CenterX, d.CenterY)) + "\n")
	s.WriteString(labelStyle.Render("L") + valueStyle.Render(fmt.Sprintf("%+.4f", d.AngularMomentum)) + "\n")
	s.WriteString(labelStyle.Render("Zoom") + valueStyle.Render(fmt.Sprintf("x%g", m.zoom)) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause ENTER:Record\n+/-:Zoom Q:Quit"))
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Diagnostics formats energy, centroid and angular momentum about the origin
// and the four unit offsets (left, right, up, down).
func Diagnostics(b physics.Bodies) string {
	x, y := b.CenterOfMass()
	return fmt.Sprintf("E=%+.8f\tx=(%+.4f,%+.4f)\tL:0=%+.4f,l=%+.4f,r=%+.4f,u=%+.4f,d=%+.4f",
		physics.Energy(b), x, y,
		b.AngularMomentum(0, 0),
		b.AngularMomentum(-1, 0),
		b.AngularMomentum(1, 0),
		b.AngularMomentum(0, 1),
		b.AngularMomentum(0, -1),
	)
}

// Run starts the live view and blocks until the user quits.
func Run(name string, b physics.Bodies, density float64) error {
	_, err := tea.NewProgram(NewModel(name, b, density)).Run()
	return err
}
