// This file declares the sentinel errors and the Tree result type with its
// distance and path accessors.

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrVertexNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that no path exists from the source to the
	// requested target vertex.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable from source")
)

// Tree is the immutable result of one Run: shortest distances from Source
// plus the predecessor links needed to reconstruct one representative
// shortest path per reachable vertex.
type Tree struct {
	// Source is the vertex the tree was grown from.
	Source string

	dist     map[string]float64 // vertex ID → distance (+Inf if unreached)
	prev     map[string]string  // vertex ID → predecessor vertex ID
	prevEdge map[string]string  // vertex ID → edge ID used to reach it
}

// DistanceTo returns the shortest distance from Source to v and whether v
// was reached. Unknown or unreached vertices yield (+Inf, false).
// Complexity: O(1)
func (t *Tree) DistanceTo(v string) (float64, bool) {
	d, ok := t.dist[v]
	if !ok || math.IsInf(d, 1) {
		return math.Inf(1), false
	}

	return d, true
}

// PathTo returns the vertex sequence of the representative shortest path
// Source → v, both endpoints included. For v == Source the path is the
// single-element sequence {Source}.
// Returns ErrUnreachable if v was not reached.
// Complexity: O(len(path))
func (t *Tree) PathTo(v string) ([]string, error) {
	if _, ok := t.DistanceTo(v); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, v)
	}

	// Walk predecessors back to the source, then reverse.
	path := []string{v}
	for cur := v; cur != t.Source; {
		cur = t.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// EdgePathTo returns the edge-ID sequence of the representative shortest
// path Source → v. For v == Source the sequence is empty.
// Returns ErrUnreachable if v was not reached.
// Complexity: O(len(path))
func (t *Tree) EdgePathTo(v string) ([]string, error) {
	if _, ok := t.DistanceTo(v); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, v)
	}

	edges := make([]string, 0)
	for cur := v; cur != t.Source; cur = t.prev[cur] {
		edges = append(edges, t.prevEdge[cur])
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return edges, nil
}
