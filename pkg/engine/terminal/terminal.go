package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FitGrid returns grid dimensions that fill a terminal of the given size
// while leaving reservedLines free below the map. Results never drop below
// minSize; one column is kept free so lines do not wrap.
func FitGrid(width, height, reservedLines, minSize int) (rows, cols int) {
	rows = height - reservedLines
	cols = width - 1
	if rows < minSize {
		rows = minSize
	}
	if cols < minSize {
		cols = minSize
	}
	return rows, cols
}
