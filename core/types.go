// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN, or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge represents an undirected connection between two vertices.
//
// Each Edge has a unique ID, endpoints From/To, and a non-negative float64
// Weight. From/To ordering carries no meaning; an undirected edge appears in
// the adjacency of both endpoints. Parallel edges between the same endpoints
// are distinct Edge values with distinct IDs.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e0", "e1", …).
	ID string

	// From is one endpoint's vertex ID.
	From string

	// To is the other endpoint's vertex ID.
	To string

	// Weight is the traversal cost of the edge.
	Weight float64
}

// Other returns the endpoint of e opposite to vertex id.
// If id is neither endpoint, Other returns the empty string.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// A self-loop contributes 2 to its endpoint's degree.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory multigraph data structure.
//
// Every Graph is undirected and weighted; parallel edges are always allowed.
// mu guards all maps; nextEdgeID generates unique Edge.ID values.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64                         // sequential edge ID generator
	vertices   map[string]struct{}            // vertex ID → presence
	edges      map[string]*Edge               // edge ID → Edge
	adjacency  map[string]map[string]struct{} // vertex ID → incident edge IDs
}

// NewGraph creates an empty Graph with the given options.
// By default, loops are disabled.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
