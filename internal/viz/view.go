package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/gravsim/internal/physics"
)

// View maps world coordinates onto canvas dots. World y points up, canvas y
// points down.
type View struct {
	m     mgl64.Mat3
	scale float64
}

// FitView frames b on a canvas of w x h dots: the origin sits at the centre
// and the farthest body, padded by the largest radius, reaches the nearer
// edge. zoom multiplies the result.
func FitView(b physics.Bodies, radii []float64, w, h int, zoom float64) View {
	reach := 0.0
	for i := range b.X {
		reach = math.Max(reach, math.Hypot(b.X[i], b.Y[i]))
	}
	maxR := 0.0
	for _, r := range radii {
		maxR = math.Max(maxR, r)
	}
	extent := reach + maxR
	if extent <= 0 || math.IsNaN(extent) || math.IsInf(extent, 0) {
		extent = 1
	}

	half := math.Min(float64(w), float64(h)) / 2
	s := half / extent * zoom

	m := mgl64.Translate2D(float64(w)/2, float64(h)/2).Mul3(mgl64.Scale2D(s, -s))
	return View{m: m, scale: s}
}

// Project returns the canvas position of the world point (x, y).
func (v View) Project(x, y float64) (px, py float64) {
	p := v.m.Mul3x1(mgl64.Vec3{x, y, 1})
	return p.X(), p.Y()
}

// Length converts a world distance to dots.
func (v View) Length(d float64) float64 {
	return d * v.scale
}

// DrawBodies renders every body of b as a disc.
func DrawBodies(c *Canvas, b physics.Bodies, radii []float64, zoom float64) View {
	w, h := c.Dots()
	v := FitView(b, radii, w, h, zoom)
	for i := range b.X {
		px, py := v.Project(b.X[i], b.Y[i])
		if !finite(px) || !finite(py) {
			continue
		}
		c.FillCircle(px, py, v.Length(radii[i]))
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
