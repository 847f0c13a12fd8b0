package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PuffBear/extending-cpp-routing/core"
)

// TestAddVertex_Validation verifies empty-ID rejection and idempotence.
func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID, "empty ID must error")

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "re-adding a vertex is a no-op")
	assert.Equal(t, 1, g.VertexCount())
}

// TestAddEdge_AutoCreatesEndpoints confirms endpoints appear implicitly.
func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()

	eid, err := g.AddEdge("A", "B", 2.5)
	require.NoError(t, err)
	assert.Equal(t, "e0", eid, "first edge ID is e0")
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasEdge("B", "A"), "undirected edge visible from both sides")
}

// TestAddEdge_BadWeight rejects negative, NaN, and infinite weights.
func TestAddEdge_BadWeight(t *testing.T) {
	g := core.NewGraph()

	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := g.AddEdge("A", "B", w)
		assert.ErrorIs(t, err, core.ErrBadWeight, "weight %v must be rejected", w)
	}
	assert.Equal(t, 0, g.EdgeCount(), "no edge may survive a failed AddEdge")
}

// TestAddEdge_Loops verifies loop policy and loop degree accounting.
func TestAddEdge_Loops(t *testing.T) {
	plain := core.NewGraph()
	_, err := plain.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	loopy := core.NewGraph(core.WithLoops())
	_, err = loopy.AddEdge("A", "A", 1)
	require.NoError(t, err)

	deg, err := loopy.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, deg, "a self-loop counts twice toward degree")
	assert.Empty(t, loopy.OddVertices(), "a lone loop keeps the vertex even")
}

// TestParallelEdges confirms multi-edges are distinct and both counted.
func TestParallelEdges(t *testing.T) {
	g := core.NewGraph()

	e0, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	e1, err := g.AddEdge("A", "B", 3)
	require.NoError(t, err)

	assert.NotEqual(t, e0, e1, "parallel edges get distinct IDs")
	assert.Equal(t, 2, g.EdgeCount())
	assert.InDelta(t, 4.0, g.TotalWeight(), 1e-12)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
	assert.Empty(t, g.OddVertices(), "doubled edge makes both endpoints even")
}

// TestOddVertices_PathGraph checks the classic path 0-1-2 has odd ends.
func TestOddVertices_PathGraph(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("0", "1", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "2"}, g.OddVertices())
}

// TestNeighbors_DeterministicOrder verifies sorted-by-edge-ID enumeration.
func TestNeighbors_DeterministicOrder(t *testing.T) {
	g := core.NewGraph()
	ids := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		eid, err := g.AddEdge("hub", string(rune('a'+i)), float64(i))
		require.NoError(t, err)
		ids = append(ids, eid)
	}

	nbrs, err := g.Neighbors("hub")
	require.NoError(t, err)
	require.Len(t, nbrs, 12)
	for i, e := range nbrs {
		assert.Equal(t, ids[i], e.ID, "insertion order == numeric edge-ID order, even past e9")
	}

	_, err = g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestConnectedFrom covers connected, disconnected, and degenerate graphs.
func TestConnectedFrom(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)

	assert.True(t, g.ConnectedFrom("A"))
	assert.False(t, g.ConnectedFrom("nope"), "missing start is not connected")

	require.NoError(t, g.AddVertex("island"))
	assert.False(t, g.ConnectedFrom("A"), "isolated vertex breaks connectivity")

	assert.True(t, core.NewGraph().ConnectedFrom("anything"), "empty graph is vacuously connected")
}

// TestClone_Isolation verifies deep-copy semantics and ID continuation.
func TestClone_Isolation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	c := g.Clone()
	dup, err := c.AddEdge("A", "B", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, g.EdgeCount(), "original untouched by clone mutation")
	assert.Equal(t, 2, c.EdgeCount())
	assert.Equal(t, "e1", dup, "clone continues the edge-ID counter")

	orig, err := g.GetEdge("e0")
	require.NoError(t, err)
	copied, err := c.GetEdge("e0")
	require.NoError(t, err)
	assert.NotSame(t, orig, copied, "edges are copied, not shared")
	assert.Equal(t, orig.Weight, copied.Weight)
}

// TestEdgeOther exercises endpoint lookup on an edge.
func TestEdgeOther(t *testing.T) {
	e := &core.Edge{ID: "e0", From: "A", To: "B"}
	assert.Equal(t, "B", e.Other("A"))
	assert.Equal(t, "A", e.Other("B"))
	assert.Equal(t, "", e.Other("C"))
}
