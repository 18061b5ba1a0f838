// Package viz draws gravity simulations in the terminal.
//
//   - [Model]: Bubble Tea program that animates bodies as braille discs
//   - [Canvas]: braille dot canvas
//   - [View]: world to canvas mapping that keeps every body in frame
//
// # Key Bindings
//
//	Space - Toggle speed between 0 and 1
//	Enter - Print energy, centroid and angular momenta
//	+/-   - Zoom in/out by a factor of two
//	Q     - Quit
package viz
