package hal

import "io"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title string

	// Width and Height are the initial client size; the window is resizable.
	Width  int
	Height int

	VSync bool

	// Output receives log lines; nil means stdout.
	Output io.Writer
}
