package gui

import (
	"strings"
	"testing"

	"github.com/san-kum/gravsim/internal/physics"
)

func binary(t *testing.T) physics.Bodies {
	t.Helper()
	b, err := physics.FromParams([]float64{
		-1, 0, 0, -0.5, 1,
		1, 0, 0, 0.5, 1,
	}, 1)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSessionKeys(t *testing.T) {
	s := NewSession("binary", binary(t), 1)

	s.TogglePause()
	if !s.Paused() || s.Speed() != 0 {
		t.Errorf("speed = %v after pause, want 0", s.Speed())
	}
	s.TogglePause()
	if s.Speed() != 1 {
		t.Errorf("speed = %v after resume, want 1", s.Speed())
	}

	s.ZoomIn()
	s.ZoomIn()
	s.ZoomOut()
	if s.Zoom() != 2 {
		t.Errorf("zoom = %v, want 2", s.Zoom())
	}

	line := s.Record()
	if !strings.HasPrefix(line, "E=-0.25000000") || len(s.Records()) != 1 {
		t.Errorf("unexpected record %q (%d records)", line, len(s.Records()))
	}
}

func TestSessionAdvance(t *testing.T) {
	b := binary(t)
	s := NewSession("binary", b, 1)

	s.Advance(0.05)
	if s.Time() != 0.05 {
		t.Errorf("time = %v, want 0.05", s.Time())
	}
	if s.Bodies().VX[0] == b.VX[0] {
		t.Error("bodies did not move")
	}
	if len(s.Telemetry()) != 1 {
		t.Errorf("telemetry has %d samples, want 1", len(s.Telemetry()))
	}

	before := s.Time()
	s.Advance(5)
	if s.Time() != before+maxElapsed {
		t.Errorf("long frame not clamped: time = %v", s.Time())
	}
}

func TestSessionPausedHoldsState(t *testing.T) {
	b := binary(t)
	s := NewSession("binary", b, 1)
	s.TogglePause()
	s.Advance(0.05)

	for i := range b.X {
		if s.Bodies().X[i] != b.X[i] || s.Bodies().VY[i] != b.VY[i] {
			t.Errorf("body %d moved while paused", i)
		}
	}
	if s.Time() != 0 {
		t.Errorf("time = %v while paused", s.Time())
	}
}

func TestSessionTelemetryIsBounded(t *testing.T) {
	s := NewSession("binary", binary(t), 1)
	for i := 0; i < telemetryCapacity+10; i++ {
		s.Advance(0.001)
	}
	if len(s.Telemetry()) != telemetryCapacity {
		t.Errorf("telemetry length = %d, want %d", len(s.Telemetry()), telemetryCapacity)
	}
}

func TestDiscsFitWindow(t *testing.T) {
	s := NewSession("binary", binary(t), 1)
	discs := s.Discs(200, 100)
	if len(discs) != 2 {
		t.Fatalf("got %d discs, want 2", len(discs))
	}
	for i, d := range discs {
		if d.X < 0 || d.X >= 200 || d.Y < 0 || d.Y >= 100 {
			t.Errorf("disc %d at (%v, %v) outside the window", i, d.X, d.Y)
		}
		if d.R <= 0 {
			t.Errorf("disc %d has radius %v", i, d.R)
		}
	}
	if discs[0].X >= discs[1].X {
		t.Error("left body drawn right of the right body")
	}

	x, y, ok := s.Centroid(200, 100)
	if !ok || x != 100 || y != 50 {
		t.Errorf("centroid at (%v, %v, %v), want (100, 50, true)", x, y, ok)
	}
}

func TestNonFiniteStateDrawsNothing(t *testing.T) {
	b, err := physics.FromParams([]float64{0, 0, 0, 0, 1}, 1)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSession("lone", b, 1)
	s.Advance(0.016)
	if s.Bodies().IsFinite() {
		t.Fatal("expected the lone body to become non-finite")
	}

	if discs := s.Discs(200, 100); len(discs) != 0 {
		t.Errorf("expected no discs, got %v", discs)
	}
	if _, _, ok := s.Centroid(200, 100); ok {
		t.Error("non-finite centroid reported as drawable")
	}
	if len(s.Telemetry()) != 0 {
		t.Errorf("non-finite energy kept in telemetry: %v", s.Telemetry())
	}
}
