package instance_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitsearch/dfs"
	"github.com/katalvlaran/bitsearch/instance"
	"github.com/katalvlaran/bitsearch/state"
	"github.com/katalvlaran/bitsearch/transition"
)

func loadReference(t *testing.T) *instance.File {
	t.Helper()
	doc, err := instance.Load(filepath.Join("testdata", "reference.yaml"))
	require.NoError(t, err)

	return doc
}

func TestLoad_Reference(t *testing.T) {
	doc := loadReference(t)
	require.Len(t, doc.Machines, 3)
	require.Len(t, doc.Graphs, 2)
	require.Len(t, doc.Manifolds, 1)

	problems, err := doc.Problems()
	require.NoError(t, err)
	total := 0
	for _, p := range problems {
		res, err := p.Solve()
		require.NoError(t, err)
		total += res.Steps
	}
	assert.Equal(t, 7, total)

	nets, err := doc.Networks()
	require.NoError(t, err)
	want := []uint64{5, 2}
	for i, n := range nets {
		g := doc.Graphs[i]
		res, err := dfs.CountNamed(n, g.Start, g.Require)
		require.NoError(t, err)
		assert.Equal(t, want[i], res.Count, g.Start)
	}

	ms, err := doc.BuildManifolds()
	require.NoError(t, err)
	res, err := ms[0].Timelines()
	require.NoError(t, err)
	assert.Equal(t, uint64(40), res.Count)
}

func TestDecode_Empty(t *testing.T) {
	doc, err := instance.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Machines)
	assert.Empty(t, doc.Graphs)
	assert.Empty(t, doc.Manifolds)
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := instance.Decode(strings.NewReader("machines:\n  - target: '#'\n    presses: [[0]]\n"))
	assert.Error(t, err)
}

func TestLoad_Missing(t *testing.T) {
	_, err := instance.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMachine_Problem(t *testing.T) {
	p, err := instance.Machine{Target: ".#", Buttons: [][]int{{0, 1}, {0}}}.Problem()
	require.NoError(t, err)
	assert.Equal(t, state.State(0b10), p.Target)
	assert.Equal(t, state.State(0), p.Start)

	cases := map[string]instance.Machine{
		"bad pattern":     {Target: ".x", Buttons: [][]int{{0}}},
		"outside target":  {Target: "..", Buttons: [][]int{{2}}},
		"negative button": {Target: "..", Buttons: [][]int{{-1}}},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := m.Problem()
			assert.ErrorIs(t, err, state.ErrInvalidEncoding)
		})
	}
}

func TestFile_IndexedErrors(t *testing.T) {
	doc := &instance.File{
		Machines: []instance.Machine{{Target: "#", Buttons: [][]int{{0}}}, {Target: "?"}},
		Graphs: []instance.Graph{{
			Start: "a", Terminal: "out",
			Devices: map[string][]string{"a": {"ghost"}},
		}},
		Manifolds: []instance.Manifold{{Width: 3, Rows: 3, Source: instance.Point{X: 1}, Splitters: []instance.Point{{X: 1, Y: 1}, {X: 1, Y: 1}}}},
	}

	_, err := doc.Problems()
	assert.ErrorIs(t, err, state.ErrInvalidEncoding)
	assert.Contains(t, err.Error(), "machines[1]")

	_, err = doc.Networks()
	assert.ErrorIs(t, err, transition.ErrMalformedGraph)
	assert.Contains(t, err.Error(), "graphs[0]")

	_, err = doc.BuildManifolds()
	assert.ErrorIs(t, err, transition.ErrMalformedGraph)
	assert.Contains(t, err.Error(), "manifolds[0]")
}
