package splitter

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/bitsearch/dfs"
	"github.com/katalvlaran/bitsearch/state"
	"github.com/katalvlaran/bitsearch/transition"
)

// Manifold is an immutable beam grid. It implements transition.GraphModel:
// a node is a beam position, its successors are the positions on the next
// row, and every position on the last row is terminal.
//
// Beams may drift outside the grid sideways; positions are indexed over
// x ∈ [-Rows, Width+Rows) so that every reachable position has an id.
type Manifold struct {
	Width, Rows int
	Source      Point

	splitters map[Point]struct{}
	pad       int // x offset, = Rows
	span      int // ids per row, = Width + 2*Rows
}

// New validates the geometry and builds a Manifold.
// Returns ErrEmptyGrid if width or rows is not positive, ErrSourceOutOfBounds
// if source is outside the grid, and transition.ErrMalformedGraph for a
// splitter outside the grid, on the source, or listed twice.
// Complexity: O(S) for S splitters.
func New(width, rows int, source Point, splitters []Point) (*Manifold, error) {
	if width <= 0 || rows <= 0 {
		return nil, ErrEmptyGrid
	}
	m := &Manifold{
		Width:     width,
		Rows:      rows,
		Source:    source,
		splitters: make(map[Point]struct{}, len(splitters)),
		pad:       rows,
		span:      width + 2*rows,
	}
	if !m.InBounds(source) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrSourceOutOfBounds, source, width, rows)
	}
	for _, p := range splitters {
		switch {
		case !m.InBounds(p):
			return nil, fmt.Errorf("%w: splitter %v outside %dx%d grid", transition.ErrMalformedGraph, p, width, rows)
		case p == source:
			return nil, fmt.Errorf("%w: splitter %v on the source", transition.ErrMalformedGraph, p)
		}
		if _, dup := m.splitters[p]; dup {
			return nil, fmt.Errorf("%w: splitter %v listed twice", transition.ErrMalformedGraph, p)
		}
		m.splitters[p] = struct{}{}
	}

	return m, nil
}

// FromGrid builds a Manifold from cells[y][x]; the grid is not retained.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNoSource, ErrMultipleSources,
// or transition.ErrMalformedGraph for an unknown cell value.
// Complexity: O(W×H).
func FromGrid(cells [][]Cell) (*Manifold, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	var (
		source    Point
		sources   int
		splitters []Point
	)
	for y, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, c := range row {
			switch c {
			case Empty:
			case Source:
				source = Point{X: x, Y: y}
				sources++
			case Splitter:
				splitters = append(splitters, Point{X: x, Y: y})
			default:
				return nil, fmt.Errorf("%w: unknown cell %d at %v", transition.ErrMalformedGraph, c, Point{X: x, Y: y})
			}
		}
	}
	switch {
	case sources == 0:
		return nil, ErrNoSource
	case sources > 1:
		return nil, fmt.Errorf("%w: %d found", ErrMultipleSources, sources)
	}

	return New(w, h, source, splitters)
}

// InBounds reports whether p lies within the grid.
func (m *Manifold) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Rows
}

// IsSplitter reports whether a splitter sits at p.
func (m *Manifold) IsSplitter(p Point) bool {
	_, ok := m.splitters[p]
	return ok
}

// Splitters returns the splitter positions in row-major order.
func (m *Manifold) Splitters() []Point {
	out := make([]Point, 0, len(m.splitters))
	for p := range m.splitters {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})

	return out
}

// Len returns the number of node ids.
func (m *Manifold) Len() int { return m.Rows * m.span }

// ID maps p to its node id, or -1 if p can never hold a beam.
func (m *Manifold) ID(p Point) int {
	x := p.X + m.pad
	if p.Y < 0 || p.Y >= m.Rows || x < 0 || x >= m.span {
		return -1
	}

	return p.Y*m.span + x
}

// Point converts a node id back to its position.
func (m *Manifold) Point(id int) Point {
	return Point{X: id%m.span - m.pad, Y: id / m.span}
}

// Start returns the node id of the source.
func (m *Manifold) Start() int { return m.ID(m.Source) }

// next returns the beam positions one row below p.
func (m *Manifold) next(p Point) []Point {
	below := Point{X: p.X, Y: p.Y + 1}
	if m.IsSplitter(below) {
		return []Point{{X: p.X - 1, Y: below.Y}, {X: p.X + 1, Y: below.Y}}
	}

	return []Point{below}
}

// Successors implements transition.GraphModel.
func (m *Manifold) Successors(node int) []int {
	if node < 0 || node >= m.Len() {
		return nil
	}
	p := m.Point(node)
	if p.Y >= m.Rows-1 {
		return nil
	}
	pts := m.next(p)
	ids := make([]int, len(pts))
	for i, q := range pts {
		ids[i] = m.ID(q)
	}

	return ids
}

// Mark implements transition.GraphModel. Beam positions carry no markers.
func (m *Manifold) Mark(_ int, mask state.State) state.State { return mask }

// Terminal implements transition.GraphModel: the last row ends every timeline.
func (m *Manifold) Terminal(node int) bool {
	return node >= 0 && node < m.Len() && node/m.span == m.Rows-1
}

// Timelines counts the distinct timelines of the beam: every split forks the
// current timeline in two, and each timeline ends on the last row.
// It runs dfs.Count from the source; opts are passed through.
func (m *Manifold) Timelines(opts ...dfs.Option) (*dfs.Result, error) {
	return dfs.Count(m, m.Start(), opts...)
}

// Splits simulates the beam front row by row, merging beams that land on the
// same position, and returns how many times a beam reached a splitter.
// ctx is checked once per row.
// Complexity: O(Rows × front width).
func (m *Manifold) Splits(ctx context.Context) (int, error) {
	front := map[Point]struct{}{m.Source: {}}
	splits := 0
	for y := m.Source.Y; y < m.Rows-1; y++ {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		next := make(map[Point]struct{}, 2*len(front))
		for p := range front {
			pts := m.next(p)
			if len(pts) == 2 {
				splits++
			}
			for _, q := range pts {
				next[q] = struct{}{}
			}
		}
		front = next
	}

	return splits, nil
}
