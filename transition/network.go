// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Immutable arena of named nodes for the Graph Step model.
// Determinism:
//   - Node indices follow ascending name order.
//   - Successor order follows the caller's adjacency lists.

package transition

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bitsearch/state"
)

// Spec is the caller-supplied description of a path-count instance.
type Spec struct {
	// Adjacency maps a declared node to its ordered, duplicate-free successors.
	Adjacency map[string][]string

	// Markers maps a node to the marker bit it contributes when visited.
	Markers map[string]int

	// Terminal names the sink that ends every path. It need not be declared
	// in Adjacency; if it is, its successor list is ignored.
	Terminal string
}

// Network is the Graph Step model over named nodes, with names replaced by
// dense indices. It implements GraphModel.
type Network struct {
	names    []string       // index → name
	index    map[string]int // name → index
	succ     [][]int        // index → successor indices
	marks    []state.State  // index → marker bit (0 if none)
	markers  map[string]int // marker name → bit
	terminal int
}

// NewNetwork validates spec and builds the arena.
//
// Errors:
//   - ErrMalformedGraph if a name is empty, the terminal is empty, a successor
//     is neither declared nor the terminal, a successor repeats within one
//     list, or a marker names an unknown node.
//   - state.ErrInvalidEncoding if a marker bit is outside [0, state.MaxWidth).
//
// Complexity: O(V log V + E).
func NewNetwork(spec Spec) (*Network, error) {
	if spec.Terminal == "" {
		return nil, fmt.Errorf("%w: terminal name is empty", ErrMalformedGraph)
	}

	// 1. Collect node names: declared sources plus the terminal.
	names := make([]string, 0, len(spec.Adjacency)+1)
	for name := range spec.Adjacency {
		if name == "" {
			return nil, fmt.Errorf("%w: empty node name", ErrMalformedGraph)
		}
		names = append(names, name)
	}
	if _, declared := spec.Adjacency[spec.Terminal]; !declared {
		names = append(names, spec.Terminal)
	}
	sort.Strings(names)

	n := &Network{
		names:   names,
		index:   make(map[string]int, len(names)),
		succ:    make([][]int, len(names)),
		marks:   make([]state.State, len(names)),
		markers: make(map[string]int, len(spec.Markers)),
	}
	for i, name := range names {
		n.index[name] = i
	}
	n.terminal = n.index[spec.Terminal]

	// 2. Resolve successor lists against the arena.
	for _, name := range names {
		id := n.index[name]
		if id == n.terminal {
			continue
		}
		outs := spec.Adjacency[name]
		ids := make([]int, 0, len(outs))
		seen := make(map[int]struct{}, len(outs))
		for _, out := range outs {
			to, ok := n.index[out]
			if !ok {
				return nil, fmt.Errorf("%w: %q -> %q: successor not declared", ErrMalformedGraph, name, out)
			}
			if _, dup := seen[to]; dup {
				return nil, fmt.Errorf("%w: %q -> %q: duplicate successor", ErrMalformedGraph, name, out)
			}
			seen[to] = struct{}{}
			ids = append(ids, to)
		}
		n.succ[id] = ids
	}

	// 3. Attach markers.
	for name, bit := range spec.Markers {
		id, ok := n.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: marker on undeclared node %q", ErrMalformedGraph, name)
		}
		mark, err := state.FromPositions(bit)
		if err != nil {
			return nil, fmt.Errorf("transition: marker %q: %w", name, err)
		}
		n.marks[id] = mark
		n.markers[name] = bit
	}

	return n, nil
}

// Len returns the number of nodes, terminal included.
func (n *Network) Len() int { return len(n.names) }

// ID returns the index assigned to name.
func (n *Network) ID(name string) (int, bool) {
	id, ok := n.index[name]
	return id, ok
}

// Name returns the name of node id, or "" if id is out of range.
func (n *Network) Name(id int) string {
	if id < 0 || id >= len(n.names) {
		return ""
	}

	return n.names[id]
}

// TerminalID returns the index of the terminal node.
func (n *Network) TerminalID() int { return n.terminal }

// Successors returns the successor indices of node, nil for dead ends,
// the terminal, and out-of-range indices.
func (n *Network) Successors(node int) []int {
	if node < 0 || node >= len(n.succ) {
		return nil
	}

	return n.succ[node]
}

// Mark returns mask with the marker bit of node added.
func (n *Network) Mark(node int, mask state.State) state.State {
	if node < 0 || node >= len(n.marks) {
		return mask
	}

	return mask | n.marks[node]
}

// Terminal reports whether node is the sink.
func (n *Network) Terminal(node int) bool { return node == n.terminal }

// MarkerMask returns the mask made of the bits of the named markers.
// With no names it returns the mask of every marker in the network.
// An unknown marker name is ErrMalformedGraph.
func (n *Network) MarkerMask(names ...string) (state.State, error) {
	var mask state.State
	if len(names) == 0 {
		for _, bit := range n.markers {
			mask = mask.With(bit)
		}
		return mask, nil
	}
	for _, name := range names {
		bit, ok := n.markers[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q is not a marker", ErrMalformedGraph, name)
		}
		mask = mask.With(bit)
	}

	return mask, nil
}
