// This file declares the edge input type, the pair output type, and the
// package's sentinel errors.

package matching

import "errors"

// Sentinel errors for matching operations.
var (
	// ErrBadVertexCount indicates a negative or odd vertex count where a
	// perfect matching was requested.
	ErrBadVertexCount = errors.New("matching: vertex count must be non-negative and even for a perfect matching")

	// ErrBadEndpoint indicates an edge endpoint outside [0, n).
	ErrBadEndpoint = errors.New("matching: edge endpoint out of range")

	// ErrImperfect indicates the underlying matching primitive failed to
	// cover every vertex. On a complete graph with finite weights this
	// cannot legitimately happen; treat it as an internal invariant
	// violation, not a recoverable condition.
	ErrImperfect = errors.New("matching: matching is not perfect")
)

// WeightedEdge is an undirected edge between vertices U and V (0-based)
// with weight W. Self-loops are ignored by the solver.
type WeightedEdge struct {
	U, V int
	W    float64
}

// Pair is one matched pair of vertices with the weight of the edge that
// matched them.
type Pair struct {
	U, V int
	W    float64
}
