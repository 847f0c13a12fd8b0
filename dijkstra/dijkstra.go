// This file implements Run: validation, the runner state machine, and the
// lazy-decrease-key priority queue.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/PuffBear/extending-cpp-routing/core"
)

// Run computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrVertexNotFound).
//  4. No edge in g may have negative weight (ErrNegativeWeight).
//
// The returned Tree is immutable and safe for concurrent reads.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Run(g *core.Graph, source string) (*Tree, error) {
	// 1) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate source is provided.
	if source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate source exists in the graph.
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	// 4) Pre-scan all edges to detect negative weights. Fail fast.
	//    core.AddEdge already rejects them, so this guards only graphs built
	//    through future mutation paths; the scan is O(E) and cheap.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s %s–%s weight=%v", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
	}

	// 5) Prepare the runner with distance/predecessor maps and the heap.
	vertices := g.Vertices()
	r := &runner{
		g:        g,
		dist:     make(map[string]float64, len(vertices)),
		prev:     make(map[string]string, len(vertices)),
		prevEdge: make(map[string]string, len(vertices)),
		visited:  make(map[string]bool, len(vertices)),
		pq:       make(nodePQ, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	// 6) Main loop.
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Tree{
		Source:   source,
		dist:     r.dist,
		prev:     r.prev,
		prevEdge: r.prevEdge,
	}, nil
}

// runner holds the mutable state for a single Run execution.
type runner struct {
	g        *core.Graph        // input graph; read-only within Run
	dist     map[string]float64 // vertex ID → current best distance
	prev     map[string]string  // vertex ID → predecessor on the best path
	prevEdge map[string]string  // vertex ID → edge ID reaching it
	visited  map[string]bool    // vertex ID → distance finalized
	pq       nodePQ             // lazy min-heap of pending (vertex, dist)
}

// process repeatedly extracts the nearest unvisited vertex and relaxes its
// incident edges until the heap drains.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Skip stale entries left behind by lazy decrease-key.
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u.
//
// Tie-break rule: on exactly equal candidate distance, the predecessor with
// the lexicographically smaller vertex ID wins (and the relaxation order —
// sorted edge IDs — settles ties among parallel edges of equal weight).
// This makes the representative shortest paths canonical.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, e := range neighbors {
		v := e.Other(u)
		if v == u {
			// A self-loop never improves a distance.
			continue
		}

		cand := du + e.Weight
		switch {
		case cand < r.dist[v]:
			r.dist[v] = cand
			r.prev[v] = u
			r.prevEdge[v] = e.ID
			heap.Push(&r.pq, &nodeItem{id: v, dist: cand})

		case cand == r.dist[v] && !r.visited[v] && u < r.prev[v]:
			// Equal-cost path with a canonically smaller predecessor:
			// reroute the representative path, distance unchanged.
			r.prev[v] = u
			r.prevEdge[v] = e.ID
		}
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then vertex ID.
// The secondary key keeps pop order deterministic under equal distances.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
