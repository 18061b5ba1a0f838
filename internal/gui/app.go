//go:build raylib

package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/gravsim/internal/physics"
)

// Monochrome palette.
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

type App struct {
	Session *Session
	Font    rl.Font
}

func initWindow() {
	rl.InitWindow(screenWidth, screenHeight, "gravsim")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono; raylib falls back to its built-in font when
// the file is missing.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// Run opens the window and blocks until it is closed.
func Run(name string, b physics.Bodies, density float64) error {
	initWindow()
	defer rl.CloseWindow()

	app := &App{Session: NewSession(name, b, density), Font: loadFont()}
	defer rl.UnloadFont(app.Font)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input and advances the simulation by one frame. It returns
// false once the user asks to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Session.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		fmt.Println(a.Session.Record())
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		a.Session.ZoomIn()
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		a.Session.ZoomOut()
	}

	a.Session.Advance(float64(rl.GetFrameTime()))
	return true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawBodies()
	a.DrawHUD()
	a.DrawTelemetry()

	rl.EndDrawing()
}

func (a *App) drawBodies() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	for _, d := range a.Session.Discs(w, h) {
		// Sub-pixel bodies are still drawn as a dot.
		r := float32(max(d.R, 1))
		rl.DrawCircleV(rl.NewVector2(float32(d.X), float32(d.Y)), r, ColSelect)
	}

	if x, y, ok := a.Session.Centroid(w, h); ok {
		cx, cy := int32(x), int32(y)
		rl.DrawLine(cx-6, cy, cx+6, cy, ColTextDim)
		rl.DrawLine(cx, cy-6, cx, cy+6, ColTextDim)
	}
}

func (a *App) DrawHUD() {
	s := a.Session
	a.drawText("gravsim", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %s", s.Name()), 150, 34, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if s.Paused() {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, 1150, 30, 16, col)

	b := s.Bodies()
	px, py := b.Momentum()
	lines := []string{
		fmt.Sprintf("t  %.2f", s.Time()),
		fmt.Sprintf("N  %d", b.N()),
		fmt.Sprintf("E  %+.8g", physics.Energy(b)),
		fmt.Sprintf("P  (%+.4f, %+.4f)", px, py),
		fmt.Sprintf("L  %+.4f", b.AngularMomentum(0, 0)),
		fmt.Sprintf("x%g", s.Zoom()),
	}
	for i, line := range lines {
		a.drawText(line, 30, 80+i*22, 16, ColText)
	}

	a.drawText("[SPACE] PAUSE  [ENTER] RECORD  [+/-] ZOOM  [Q] QUIT", 760, 680, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, 680, 14, ColTextDim)

	if n := len(s.Records()); n > 0 {
		last := strings.ReplaceAll(s.Records()[n-1], "\t", "  ")
		a.drawText(last, 30, 650, 14, ColAccent)
	}
}

// DrawTelemetry plots the energy history as a line strip.
func (a *App) DrawTelemetry() {
	data := a.Session.Telemetry()
	if len(data) < 2 {
		return
	}

	rectX, rectY := 30, 560
	width, height := 400, 60

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(data))
	for i, val := range data {
		px := float32(rectX) + (float32(i)/float32(len(data)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("E: %.6e", data[len(data)-1]), rectX+width+10, rectY+height-10, 14, ColText)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
