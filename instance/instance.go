// Package instance reads typed problem instances from YAML documents.
//
// A document lists any number of toggle machines, marker graphs and beam
// manifolds:
//
//	machines:
//	  - target: ".##."
//	    buttons: [[3], [1, 3], [2], [2, 3], [0, 2], [0, 1]]
//	graphs:
//	  - start: svr
//	    terminal: out
//	    devices: {svr: [aaa, bbb], aaa: [fft], ...}
//	    markers: {fft: 0, dac: 1}
//	    require: [fft, dac]
//	manifolds:
//	  - width: 15
//	    rows: 16
//	    source: {x: 7, y: 0}
//	    splitters: [{x: 7, y: 2}]
//
// Each entry converts into the solver input of its kind.
package instance

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bitsearch/bfs"
	"github.com/katalvlaran/bitsearch/splitter"
	"github.com/katalvlaran/bitsearch/state"
	"github.com/katalvlaran/bitsearch/transition"
)

// File is one decoded instance document.
type File struct {
	Machines  []Machine  `yaml:"machines"`
	Graphs    []Graph    `yaml:"graphs"`
	Manifolds []Manifold `yaml:"manifolds"`
}

// Machine is a toggle puzzle: every indicator starts off, each button
// toggles the listed indicator positions, and Target is the wanted pattern.
type Machine struct {
	Target  string  `yaml:"target"`
	Buttons [][]int `yaml:"buttons"`
}

// Graph is a named path-count instance.
type Graph struct {
	Start    string              `yaml:"start"`
	Terminal string              `yaml:"terminal"`
	Devices  map[string][]string `yaml:"devices"`
	Markers  map[string]int      `yaml:"markers"`
	Require  []string            `yaml:"require"`
}

// Point is a manifold coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Manifold is a beam grid with one source and its splitters.
type Manifold struct {
	Width     int     `yaml:"width"`
	Rows      int     `yaml:"rows"`
	Source    Point   `yaml:"source"`
	Splitters []Point `yaml:"splitters"`
}

// Load decodes the document at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("instance: %s: %w", path, err)
	}

	return doc, nil
}

// Decode strictly decodes one document from r; unknown keys are errors and
// an empty document yields an empty File.
func Decode(r io.Reader) (*File, error) {
	var doc File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return &doc, nil
}

// Problem converts m into a shortest-path problem starting from all-off.
// Returns state.ErrInvalidEncoding for a bad target pattern or a button
// position outside the target width.
func (m Machine) Problem() (bfs.Problem, error) {
	target, err := state.Encode(m.Target)
	if err != nil {
		return bfs.Problem{}, err
	}
	width := len(m.Target)
	for i, b := range m.Buttons {
		for _, p := range b {
			if p < 0 || p >= width {
				return bfs.Problem{}, fmt.Errorf("%w: button %d toggles position %d of a %d-wide target",
					state.ErrInvalidEncoding, i, p, width)
			}
		}
	}
	tg, err := transition.NewToggleFromPositions(m.Buttons)
	if err != nil {
		return bfs.Problem{}, err
	}

	return bfs.Problem{Start: 0, Target: target, Model: tg}, nil
}

// Network builds the validated node arena of g.
func (g Graph) Network() (*transition.Network, error) {
	return transition.NewNetwork(transition.Spec{
		Adjacency: g.Devices,
		Markers:   g.Markers,
		Terminal:  g.Terminal,
	})
}

// Build validates the geometry and returns the manifold.
func (m Manifold) Build() (*splitter.Manifold, error) {
	pts := make([]splitter.Point, len(m.Splitters))
	for i, p := range m.Splitters {
		pts[i] = splitter.Point{X: p.X, Y: p.Y}
	}

	return splitter.New(m.Width, m.Rows, splitter.Point{X: m.Source.X, Y: m.Source.Y}, pts)
}

// Problems converts every machine, reporting the index of the first failure.
func (f *File) Problems() ([]bfs.Problem, error) {
	out := make([]bfs.Problem, len(f.Machines))
	for i, m := range f.Machines {
		p, err := m.Problem()
		if err != nil {
			return nil, fmt.Errorf("instance: machines[%d]: %w", i, err)
		}
		out[i] = p
	}

	return out, nil
}

// Networks converts every graph, reporting the index of the first failure.
func (f *File) Networks() ([]*transition.Network, error) {
	out := make([]*transition.Network, len(f.Graphs))
	for i, g := range f.Graphs {
		n, err := g.Network()
		if err != nil {
			return nil, fmt.Errorf("instance: graphs[%d]: %w", i, err)
		}
		out[i] = n
	}

	return out, nil
}

// BuildManifolds converts every manifold, reporting the index of the first failure.
func (f *File) BuildManifolds() ([]*splitter.Manifold, error) {
	out := make([]*splitter.Manifold, len(f.Manifolds))
	for i, m := range f.Manifolds {
		b, err := m.Build()
		if err != nil {
			return nil, fmt.Errorf("instance: manifolds[%d]: %w", i, err)
		}
		out[i] = b
	}

	return out, nil
}
