// This file declares sentinel errors, solver options, and the Result and
// Step output types.

package cpp

import (
	"errors"
	"time"
)

// Sentinel errors for the exact solver.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Solve.
	ErrNilGraph = errors.New("cpp: graph is nil")

	// ErrEmptyGraph indicates a graph with no vertices.
	ErrEmptyGraph = errors.New("cpp: graph has no vertices")

	// ErrDisconnected indicates the input graph is not connected — a caller
	// precondition violation, reported before any matching work begins.
	ErrDisconnected = errors.New("cpp: graph is not connected")

	// ErrStartNotFound indicates the configured start vertex is absent.
	ErrStartNotFound = errors.New("cpp: start vertex not found in graph")

	// ErrBadTimeout indicates a non-positive timeout was configured.
	ErrBadTimeout = errors.New("cpp: timeout must be positive")

	// ErrUnreachablePair indicates the oracle found no path between two odd
	// vertices. Connectivity is validated upfront, so this is an internal
	// inconsistency if it ever surfaces.
	ErrUnreachablePair = errors.New("cpp: no path between odd vertices")

	// ErrIncompleteMatching indicates the matching engine failed to cover
	// every odd vertex — an internal invariant violation, never downgraded
	// to an approximate result.
	ErrIncompleteMatching = errors.New("cpp: matching does not cover all odd vertices")

	// ErrNotEulerian indicates the augmented graph still has odd-degree
	// vertices — an internal invariant violation in matching or paths.
	ErrNotEulerian = errors.New("cpp: augmented graph is not Eulerian")

	// ErrCostMismatch indicates the traversed tour weight disagrees with
	// the augmented graph's total weight beyond tolerance — an internal
	// invariant violation in circuit extraction.
	ErrCostMismatch = errors.New("cpp: tour cost does not match augmented graph weight")
)

// Failure reasons reported in Result.FailureReason for non-optimal results.
const (
	// ReasonTimeout marks a solve abandoned because the wall-clock budget
	// expired before the oracle and matching stages completed.
	ReasonTimeout = "timeout"

	// ReasonCanceled marks a solve abandoned because the caller's context
	// was canceled.
	ReasonCanceled = "canceled"
)

// DefaultTimeout is the wall-clock budget applied when none is configured.
const DefaultTimeout = 600 * time.Second

// costTolerance bounds the acceptable FP drift between the summed tour
// weight and the augmented graph's total weight.
const costTolerance = 1e-9

// Options configures a solve call.
//
// Timeout – wall-clock budget for the oracle + matching stage (must be > 0).
// Start   – tour start vertex ID; empty means the smallest vertex ID.
type Options struct {
	Timeout time.Duration
	Start   string
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithTimeout sets the wall-clock budget for the expensive solver stages.
// Non-positive values are rejected by Solve with ErrBadTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithStart fixes the vertex the returned tour starts and ends at.
// The vertex must exist in the graph (ErrStartNotFound otherwise).
func WithStart(id string) Option {
	return func(o *Options) { o.Start = id }
}

// DefaultOptions returns the solver defaults: a 600-second budget and a
// start at the lexicographically smallest vertex.
func DefaultOptions() Options {
	return Options{Timeout: DefaultTimeout}
}

// Step is one edge traversal of a postman tour.
type Step struct {
	// From and To are the traversal direction of this step.
	From, To string

	// EdgeID identifies the traversed edge within the augmented graph.
	// Duplicated edges carry fresh IDs distinct from the input graph's.
	EdgeID string

	// Weight is the cost paid for this traversal.
	Weight float64

	// Duplicate is true when this step walks a deadhead copy created by
	// augmentation rather than an original input edge.
	Duplicate bool
}

// Result is the sole output contract of the solver.
//
// When Optimal is true, Cost is the exact optimum and Tour is a closed walk
// covering every augmented edge exactly once. When Optimal is false, Cost
// is NaN and Tour is nil: the result carries diagnostics only and must be
// excluded from any cost comparison.
type Result struct {
	// Cost is the total tour cost; NaN unless Optimal.
	Cost float64

	// Tour is the ordered edge traversal sequence; nil unless Optimal.
	Tour []Step

	// Optimal reports whether the exact computation completed.
	Optimal bool

	// FailureReason explains a non-optimal result ("timeout", "canceled").
	FailureReason string

	// OddVertexCount is the number of odd-degree vertices in the input.
	OddVertexCount int

	// VertexCount and EdgeCount describe the input graph.
	VertexCount int
	EdgeCount   int

	// Elapsed is the wall-clock duration of the solve call.
	Elapsed time.Duration
}
