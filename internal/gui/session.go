// Package gui shows a simulation in a desktop window. The window needs raylib
// and is only built with the raylib tag; without it Run returns
// ErrUnavailable.
package gui

import (
	"errors"
	"math"

	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/viz"
)

var ErrUnavailable = errors.New("gui: built without raylib (rebuild with -tags raylib)")

const (
	// Frame times above this are clamped so a dragged or hidden window does
	// not produce one huge step.
	maxElapsed        = 0.1
	telemetryCapacity = 200
)

// Session is the window-independent state of the desktop view: the bodies,
// the clock and the keyboard-driven settings.
type Session struct {
	name      string
	bodies    physics.Bodies
	radii     []float64
	substeps  int
	speed     float64
	zoom      float64
	t         float64
	telemetry []float64
	records   []string
}

func NewSession(name string, b physics.Bodies, density float64) *Session {
	return &Session{
		name:      name,
		bodies:    b,
		radii:     physics.Radii(b, density),
		substeps:  physics.DefaultSubsteps,
		speed:     1,
		zoom:      1,
		telemetry: make([]float64, 0, telemetryCapacity),
	}
}

func (s *Session) Name() string           { return s.name }
func (s *Session) Bodies() physics.Bodies { return s.bodies }
func (s *Session) Speed() float64         { return s.speed }
func (s *Session) Zoom() float64          { return s.zoom }
func (s *Session) Time() float64          { return s.t }
func (s *Session) Paused() bool           { return s.speed == 0 }

// Telemetry is the recent total energy, oldest first. Non-finite energies
// are left out.
func (s *Session) Telemetry() []float64 { return s.telemetry }

// Records returns every diagnostic line captured with Record.
func (s *Session) Records() []string { return s.records }

func (s *Session) TogglePause() { s.speed = 1 - s.speed }
func (s *Session) ZoomIn()      { s.zoom *= 2 }
func (s *Session) ZoomOut()     { s.zoom /= 2 }

// Record captures the current diagnostics line and returns it.
func (s *Session) Record() string {
	line := viz.Diagnostics(s.bodies)
	s.records = append(s.records, line)
	return line
}

// Advance moves the simulation forward by elapsed wall seconds.
func (s *Session) Advance(elapsed float64) {
	elapsed = min(max(elapsed, 0), maxElapsed)
	dt := s.speed * elapsed
	s.bodies = physics.Superstep(s.bodies, dt, s.substeps)
	s.t += dt

	e := physics.Energy(s.bodies)
	if math.IsNaN(e) || math.IsInf(e, 0) {
		return
	}
	s.telemetry = append(s.telemetry, e)
	if len(s.telemetry) > telemetryCapacity {
		s.telemetry = s.telemetry[1:]
	}
}

// Disc is a body projected onto the window, in pixels.
type Disc struct {
	X, Y, R float64
}

// Discs projects every finite body onto a w x h pixel window.
func (s *Session) Discs(w, h int) []Disc {
	v := viz.FitView(s.bodies, s.radii, w, h, s.zoom)
	discs := make([]Disc, 0, s.bodies.N())
	for i := range s.bodies.X {
		px, py := v.Project(s.bodies.X[i], s.bodies.Y[i])
		if !finite(px) || !finite(py) {
			continue
		}
		discs = append(discs, Disc{X: px, Y: py, R: v.Length(s.radii[i])})
	}
	return discs
}

// Centroid returns the pixel position of the mean body position. ok is false
// when it is not finite or lies outside the window.
func (s *Session) Centroid(w, h int) (x, y float64, ok bool) {
	v := viz.FitView(s.bodies, s.radii, w, h, s.zoom)
	x, y = v.Project(s.bodies.CenterOfMass())
	if !finite(x) || !finite(y) {
		return 0, 0, false
	}
	return x, y, x >= 0 && y >= 0 && x < float64(w) && y < float64(h)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
