//go:build !raylib

package gui

import "github.com/san-kum/gravsim/internal/physics"

// Run reports ErrUnavailable; the window is only built with the raylib tag.
func Run(name string, b physics.Bodies, density float64) error {
	return ErrUnavailable
}
