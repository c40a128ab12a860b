package splitter

import (
	"errors"
	"fmt"
)

// Sentinel errors for manifold construction.
var (
	// ErrEmptyGrid indicates a grid without rows or columns.
	ErrEmptyGrid = errors.New("splitter: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("splitter: all rows must have the same length")
	// ErrSourceOutOfBounds indicates a source position outside the grid.
	ErrSourceOutOfBounds = errors.New("splitter: source outside the grid")
	// ErrNoSource indicates a grid without a source cell.
	ErrNoSource = errors.New("splitter: grid has no source")
	// ErrMultipleSources indicates a grid with more than one source cell.
	ErrMultipleSources = errors.New("splitter: grid has more than one source")
)

// Cell is the content of one grid position.
type Cell uint8

const (
	// Empty lets a beam pass straight down.
	Empty Cell = iota
	// Source emits the single beam.
	Source
	// Splitter stops a beam arriving from above and emits two beams on
	// its left and right.
	Splitter
)

// Point is a grid coordinate; Y grows downward, in the beam direction.
type Point struct {
	X, Y int
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
