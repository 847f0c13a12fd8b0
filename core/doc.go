// Package core defines the central Graph and Edge types for postman-style
// arc routing, and provides thread-safe primitives for building, querying,
// and cloning undirected weighted multigraphs.
//
// The model is deliberately narrow: every Graph is undirected and weighted,
// and parallel edges are always permitted — duplicating an edge is exactly
// how the exact solver restores Eulerian feasibility. Self-loops are opt-in
// via WithLoops (a loop contributes 2 to its endpoint's degree).
//
// All core APIs share a single sync.RWMutex, so you can safely build a graph
// from one goroutine while others read it, and run independent solves on
// independent graphs in parallel.
//
// Accessors that enumerate vertices or edges (Vertices, Edges, OddVertices,
// Neighbors) return deterministically ordered slices; every algorithm in
// this module leans on that ordering for reproducible results.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrBadWeight      - edge weight is negative, NaN, or infinite.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core
