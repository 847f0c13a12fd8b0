// This file implements mutation and lookup primitives on Graph:
// AddVertex, AddEdge, HasVertex, HasEdge, GetEdge, Neighbors.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// AddVertex inserts a vertex with the given ID.
// Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id == "".
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}
	g.ensureAdj(id)

	return nil
}

// AddEdge inserts an undirected edge between from and to with the given
// weight, auto-creating missing endpoints, and returns the new edge's ID.
//
// Validation (in order):
//  1. from and to must be non-empty (ErrEmptyVertexID).
//  2. weight must be finite and non-negative (ErrBadWeight).
//  3. from != to unless the Graph was built WithLoops (ErrLoopNotAllowed).
//
// Parallel edges are always permitted; each call creates a distinct edge.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: %q→%q weight=%v", ErrBadWeight, from, to, weight)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	g.ensureAdj(from)
	g.ensureAdj(to)

	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	g.nextEdgeID++

	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacency[from][eid] = struct{}{}
	g.adjacency[to][eid] = struct{}{}

	return eid, nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether at least one edge connects from and to
// (in either orientation).
// Complexity: O(deg(from))
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for eid := range g.adjacency[from] {
		e := g.edges[eid]
		if (e.From == from && e.To == to) || (e.From == to && e.To == from) {
			return true
		}
	}

	return false
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// The returned pointer must be treated as read-only.
// Complexity: O(1)
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEdgeNotFound, edgeID)
	}

	return e, nil
}

// Neighbors returns every edge incident to the vertex id, sorted by numeric
// edge ID so traversal order is deterministic. A self-loop appears once.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg(id) · log deg(id))
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}
	sortEdgesByID(out)

	return out, nil
}

// ensureAdj creates the adjacency slot for id. Caller must hold g.mu.
func (g *Graph) ensureAdj(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
}

// sortEdgesByID orders edges by their numeric ID suffix ("e2" < "e10").
func sortEdgesByID(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool {
		return edgeOrdinal(edges[i].ID) < edgeOrdinal(edges[j].ID)
	})
}

// edgeOrdinal extracts the numeric suffix of an auto-generated edge ID.
// Non-numeric IDs sort last; ties are impossible because IDs are unique.
func edgeOrdinal(id string) uint64 {
	if len(id) < 2 {
		return math.MaxUint64
	}
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return math.MaxUint64
	}

	return n
}
