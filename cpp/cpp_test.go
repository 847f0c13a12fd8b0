package cpp_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PuffBear/extending-cpp-routing/core"
	"github.com/PuffBear/extending-cpp-routing/cpp"
)

type edgeSpec struct {
	from, to string
	w        float64
}

// buildGraph wires the given (from, to, weight) triples into a fresh graph.
func buildGraph(t *testing.T, edges []edgeSpec) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}
	return g
}

// requireClosedWalk checks tour step continuity and the closed-walk
// property at start.
func requireClosedWalk(t *testing.T, tour []cpp.Step, start string) {
	t.Helper()
	require.NotEmpty(t, tour)
	assert.Equal(t, start, tour[0].From)
	assert.Equal(t, start, tour[len(tour)-1].To)
	for i := 1; i < len(tour); i++ {
		assert.Equal(t, tour[i-1].To, tour[i].From, "step %d discontinuity", i)
	}
}

// requireCoversAllEdges checks that every edge of g appears in the tour
// at least once.
func requireCoversAllEdges(t *testing.T, tour []cpp.Step, g *core.Graph) {
	t.Helper()
	seen := make(map[string]bool)
	for _, s := range tour {
		if !s.Duplicate {
			seen[s.EdgeID] = true
		}
	}
	for _, e := range g.Edges() {
		assert.True(t, seen[e.ID], "edge %s never traversed", e.ID)
	}
}

func TestSolve_Validation(t *testing.T) {
	t.Run("NilGraph", func(t *testing.T) {
		_, err := cpp.Solve(nil)
		assert.ErrorIs(t, err, cpp.ErrNilGraph)
	})

	t.Run("EmptyGraph", func(t *testing.T) {
		_, err := cpp.Solve(core.NewGraph())
		assert.ErrorIs(t, err, cpp.ErrEmptyGraph)
	})

	t.Run("BadTimeout", func(t *testing.T) {
		g := buildGraph(t, []edgeSpec{{"a", "b", 1.0}})
		_, err := cpp.Solve(g, cpp.WithTimeout(0))
		assert.ErrorIs(t, err, cpp.ErrBadTimeout)
	})

	t.Run("StartNotFound", func(t *testing.T) {
		g := buildGraph(t, []edgeSpec{{"a", "b", 1.0}})
		_, err := cpp.Solve(g, cpp.WithStart("zz"))
		assert.ErrorIs(t, err, cpp.ErrStartNotFound)
	})

	t.Run("Disconnected", func(t *testing.T) {
		g := buildGraph(t, []edgeSpec{
			{"a", "b", 1.0},
			{"c", "d", 1.0},
		})
		_, err := cpp.Solve(g)
		assert.ErrorIs(t, err, cpp.ErrDisconnected)
	})
}

func TestSolve_SquareCycle(t *testing.T) {
	// Even-degree everywhere: the tour is the cycle itself, no duplication.
	g := buildGraph(t, []edgeSpec{
		{"a", "b", 1.0},
		{"b", "c", 1.0},
		{"c", "d", 1.0},
		{"d", "a", 1.0},
	})

	res, err := cpp.Solve(g)
	require.NoError(t, err)

	assert.True(t, res.Optimal)
	assert.Empty(t, res.FailureReason)
	assert.InDelta(t, 4.0, res.Cost, 1e-9)
	assert.Len(t, res.Tour, 4)
	assert.Equal(t, 0, res.OddVertexCount)
	for _, s := range res.Tour {
		assert.False(t, s.Duplicate)
	}
	requireClosedWalk(t, res.Tour, "a")
	requireCoversAllEdges(t, res.Tour, g)
}

func TestSolve_PathDuplication(t *testing.T) {
	// a-b-c path: a and c are odd, the whole path is duplicated.
	g := buildGraph(t, []edgeSpec{
		{"a", "b", 1.0},
		{"b", "c", 1.0},
	})

	res, err := cpp.Solve(g)
	require.NoError(t, err)

	assert.True(t, res.Optimal)
	assert.InDelta(t, 4.0, res.Cost, 1e-9)
	assert.Len(t, res.Tour, 4)
	assert.Equal(t, 2, res.OddVertexCount)

	dups := 0
	for _, s := range res.Tour {
		if s.Duplicate {
			dups++
		}
	}
	assert.Equal(t, 2, dups)
	requireClosedWalk(t, res.Tour, "a")
	requireCoversAllEdges(t, res.Tour, g)
}

func TestSolve_FourOddVertices(t *testing.T) {
	// Square with one diagonal: b and d stay even, a and c turn odd via
	// the diagonal. Cheapest fix duplicates the diagonal itself.
	g := buildGraph(t, []edgeSpec{
		{"a", "b", 1.0},
		{"b", "c", 1.0},
		{"c", "d", 1.0},
		{"d", "a", 1.0},
		{"a", "c", 1.0},
	})

	res, err := cpp.Solve(g)
	require.NoError(t, err)

	assert.True(t, res.Optimal)
	assert.InDelta(t, 6.0, res.Cost, 1e-9)
	assert.Len(t, res.Tour, 6)
	assert.Equal(t, 2, res.OddVertexCount)
	requireClosedWalk(t, res.Tour, "a")
	requireCoversAllEdges(t, res.Tour, g)
}

func TestSolve_WeightedMatchingChoice(t *testing.T) {
	// Odd vertices a and d are joined by a cheap chain and two expensive
	// direct edges. Optimal duplication follows the chain.
	g := buildGraph(t, []edgeSpec{
		{"a", "b", 1.0},
		{"b", "c", 1.0},
		{"c", "d", 1.0},
		{"a", "d", 10.0},
		{"a", "d", 12.0},
	})

	res, err := cpp.Solve(g)
	require.NoError(t, err)

	assert.True(t, res.Optimal)
	assert.Equal(t, 2, res.OddVertexCount)
	// Base 25 plus a duplicated a-b-c-d chain of cost 3.
	assert.InDelta(t, 28.0, res.Cost, 1e-9)
	requireClosedWalk(t, res.Tour, "a")
	requireCoversAllEdges(t, res.Tour, g)
}

func TestSolve_StartOption(t *testing.T) {
	g := buildGraph(t, []edgeSpec{
		{"a", "b", 1.0},
		{"b", "c", 1.0},
		{"c", "a", 1.0},
	})

	res, err := cpp.Solve(g, cpp.WithStart("c"))
	require.NoError(t, err)

	assert.True(t, res.Optimal)
	requireClosedWalk(t, res.Tour, "c")
}

func TestSolve_Timeout(t *testing.T) {
	g := largeOddGraph(t, 200)

	res, err := cpp.Solve(g, cpp.WithTimeout(time.Nanosecond))
	require.NoError(t, err)

	assert.False(t, res.Optimal)
	assert.Equal(t, cpp.ReasonTimeout, res.FailureReason)
	assert.True(t, math.IsNaN(res.Cost))
	assert.Nil(t, res.Tour)
	assert.Equal(t, 200, res.OddVertexCount)
	assert.Equal(t, g.VertexCount(), res.VertexCount)
	assert.Equal(t, g.EdgeCount(), res.EdgeCount)
}

func TestSolveContext_Canceled(t *testing.T) {
	g := largeOddGraph(t, 50)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := cpp.SolveContext(ctx, g)
	require.NoError(t, err)

	assert.False(t, res.Optimal)
	assert.Equal(t, cpp.ReasonCanceled, res.FailureReason)
	assert.True(t, math.IsNaN(res.Cost))
	assert.Nil(t, res.Tour)
}

func TestSolve_Deterministic(t *testing.T) {
	g := buildGraph(t, []edgeSpec{
		{"a", "b", 1.0},
		{"b", "c", 2.0},
		{"c", "d", 1.0},
		{"d", "a", 2.0},
		{"a", "c", 1.5},
		{"b", "d", 1.5},
	})

	first, err := cpp.Solve(g)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := cpp.Solve(g)
		require.NoError(t, err)
		assert.Equal(t, first.Cost, again.Cost)
		assert.Equal(t, first.Tour, again.Tour)
	}
}

func TestSolve_ParallelEdges(t *testing.T) {
	// Two parallel a-b edges keep both endpoints even; the tour uses each
	// exactly once.
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	_, err := g.AddEdge("a", "b", 1.0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 2.0)
	require.NoError(t, err)

	res, err := cpp.Solve(g)
	require.NoError(t, err)

	assert.True(t, res.Optimal)
	assert.InDelta(t, 3.0, res.Cost, 1e-9)
	assert.Len(t, res.Tour, 2)
	assert.NotEqual(t, res.Tour[0].EdgeID, res.Tour[1].EdgeID)
	requireClosedWalk(t, res.Tour, "a")
}

func TestSolve_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))

	res, err := cpp.Solve(g)
	require.NoError(t, err)

	assert.True(t, res.Optimal)
	assert.Zero(t, res.Cost)
	assert.Empty(t, res.Tour)
}

// largeOddGraph builds a star with exactly n odd leaves (n even keeps the
// hub even too), big enough that a nanosecond budget always expires first.
func largeOddGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("hub"))
	for i := 0; i < n; i++ {
		leaf := fmt.Sprintf("leaf%03d", i)
		require.NoError(t, g.AddVertex(leaf))
		_, err := g.AddEdge("hub", leaf, 1.0+float64(i%7))
		require.NoError(t, err)
	}
	return g
}
