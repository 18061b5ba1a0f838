package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)

	if got := c.Grid[0][0]; got != 0x2801 {
		t.Errorf("cell 0 = %U, want U+2801", got)
	}
	if got := c.Grid[0][1]; got != 0x2880 {
		t.Errorf("cell 1 = %U, want U+2880", got)
	}
	if !c.isSet(3, 3) || c.isSet(1, 1) {
		t.Error("isSet disagrees with Set")
	}

	c.Clear()
	if c.isSet(0, 0) {
		t.Error("Clear left dots set")
	}
	if got := c.String(); got != "\u2800\u2800\n" {
		t.Errorf("blank canvas rendered %q", got)
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7)
	for i := 0; i < 8; i++ {
		if !c.isSet(i, i) {
			t.Errorf("diagonal dot (%d, %d) not set", i, i)
		}
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(10, 10, 3)

	if !c.isSet(10, 10) || !c.isSet(13, 10) || !c.isSet(10, 7) {
		t.Error("disc missing centre or edge dots")
	}
	if c.isSet(13, 13) {
		t.Error("corner outside the disc was set")
	}

	tiny := NewCanvas(2, 2)
	tiny.FillCircle(1, 1, 0.01)
	if !tiny.isSet(1, 1) {
		t.Error("tiny disc not visible")
	}

	// Large discs are clipped to the canvas.
	big := NewCanvas(3, 2)
	big.FillCircle(3, 4, 1e9)
	if strings.ContainsRune(big.String(), 0x2800) {
		t.Error("oversized disc did not fill the canvas")
	}
}
