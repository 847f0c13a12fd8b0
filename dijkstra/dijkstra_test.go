package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PuffBear/extending-cpp-routing/core"
	"github.com/PuffBear/extending-cpp-routing/dijkstra"
)

// buildTriangle returns A—B(1), B—C(2), A—C(5).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// TestRun_Validation exercises the sentinel precondition errors in order.
func TestRun_Validation(t *testing.T) {
	_, err := dijkstra.Run(nil, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := buildTriangle(t)
	_, err = dijkstra.Run(g, "")
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Run(g, "Z")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// TestRun_Triangle verifies distances and the reconstructed path A→C.
func TestRun_Triangle(t *testing.T) {
	g := buildTriangle(t)

	tree, err := dijkstra.Run(g, "A")
	require.NoError(t, err)

	dA, _ := tree.DistanceTo("A")
	dB, _ := tree.DistanceTo("B")
	dC, _ := tree.DistanceTo("C")
	assert.Equal(t, 0.0, dA)
	assert.Equal(t, 1.0, dB)
	assert.Equal(t, 3.0, dC, "A→B→C beats the direct A—C edge")

	path, err := tree.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	edges, err := tree.EdgePathTo("C")
	require.NoError(t, err)
	assert.Len(t, edges, 2)
}

// TestRun_Unreachable returns +Inf distances and ErrUnreachable paths.
func TestRun_Unreachable(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddVertex("island"))

	tree, err := dijkstra.Run(g, "A")
	require.NoError(t, err)

	d, ok := tree.DistanceTo("island")
	assert.False(t, ok)
	assert.True(t, math.IsInf(d, 1))

	_, err = tree.PathTo("island")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	_, err = tree.EdgePathTo("island")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

// TestRun_TieBreak verifies the canonical predecessor on equal-cost paths.
// Two routes S→…→T of cost 2 exist, via "a" and via "b"; the representative
// path must go through "a" every run.
func TestRun_TieBreak(t *testing.T) {
	build := func() *core.Graph {
		g := core.NewGraph()
		// Insert the "b" route first so insertion order disagrees with
		// the expected canonical choice.
		for _, e := range []struct {
			u, v string
		}{
			{"S", "b"}, {"b", "T"}, {"S", "a"}, {"a", "T"},
		} {
			_, err := g.AddEdge(e.u, e.v, 1)
			require.NoError(t, err)
		}

		return g
	}

	for i := 0; i < 5; i++ {
		tree, err := dijkstra.Run(build(), "S")
		require.NoError(t, err)

		path, err := tree.PathTo("T")
		require.NoError(t, err)
		assert.Equal(t, []string{"S", "a", "T"}, path, "run %d must pick the canonical path", i)
	}
}

// TestRun_ParallelEdges picks the cheaper of two parallel edges.
func TestRun_ParallelEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	cheap, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)

	tree, err := dijkstra.Run(g, "A")
	require.NoError(t, err)

	d, _ := tree.DistanceTo("B")
	assert.Equal(t, 2.0, d)

	edges, err := tree.EdgePathTo("B")
	require.NoError(t, err)
	assert.Equal(t, []string{cheap}, edges, "the cheaper parallel edge is the representative")
}

// TestRun_SelfLoopIgnored confirms loops never shorten any distance.
func TestRun_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 3)
	require.NoError(t, err)

	tree, err := dijkstra.Run(g, "A")
	require.NoError(t, err)

	d, _ := tree.DistanceTo("B")
	assert.Equal(t, 3.0, d)
}

// TestRun_PathToSource returns the single-vertex path and no edges.
func TestRun_PathToSource(t *testing.T) {
	g := buildTriangle(t)

	tree, err := dijkstra.Run(g, "B")
	require.NoError(t, err)

	path, err := tree.PathTo("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, path)

	edges, err := tree.EdgePathTo("B")
	require.NoError(t, err)
	assert.Empty(t, edges)
}
