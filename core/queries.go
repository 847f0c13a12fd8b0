// This file implements whole-graph queries: vertex/edge enumeration,
// degrees, odd-vertex extraction, total weight, and reachability.

package core

import (
	"fmt"
	"sort"
)

// Vertices returns all vertex IDs in lexicographic order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns all edges sorted by numeric edge ID.
// The returned pointers must be treated as read-only.
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdgesByID(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges (parallel edges counted separately).
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Degree returns the degree of the vertex id: the number of incident edge
// endpoints, with each self-loop counting twice.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg(id))
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	deg := 0
	for eid := range g.adjacency[id] {
		e := g.edges[eid]
		if e.From == e.To {
			deg += 2
		} else {
			deg++
		}
	}

	return deg, nil
}

// OddVertices returns the IDs of all vertices with odd degree, sorted
// lexicographically. By the handshake lemma the result always has even
// cardinality; an empty result means the graph is already Eulerian.
// Complexity: O(V + E)
func (g *Graph) OddVertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0)
	for id := range g.vertices {
		deg := 0
		for eid := range g.adjacency[id] {
			e := g.edges[eid]
			if e.From == e.To {
				deg += 2
			} else {
				deg++
			}
		}
		if deg%2 == 1 {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E)
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum float64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}

// ConnectedFrom reports whether every vertex of the graph is reachable from
// start. An empty graph is vacuously connected; a missing start yields false.
// Complexity: O(V + E) breadth-first traversal.
func (g *Graph) ConnectedFrom(start string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.vertices) == 0 {
		return true
	}
	if _, ok := g.vertices[start]; !ok {
		return false
	}

	seen := make(map[string]bool, len(g.vertices))
	seen[start] = true
	queue := []string{start}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for eid := range g.adjacency[u] {
			v := g.edges[eid].Other(u)
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return len(seen) == len(g.vertices)
}
