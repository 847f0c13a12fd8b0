package cpplc

import (
	"errors"
	"time"
)

// Package-level sentinel errors.
var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("cpplc: graph is nil")

	// ErrBadCapacity is returned when the vehicle capacity is not a
	// positive finite number.
	ErrBadCapacity = errors.New("cpplc: capacity must be positive and finite")

	// ErrBadAlpha is returned when the proximity coefficient is negative
	// or non-finite.
	ErrBadAlpha = errors.New("cpplc: alpha must be non-negative and finite")

	// ErrBadDemand is returned when a demand is negative, non-finite, or
	// keyed by an edge the graph does not contain.
	ErrBadDemand = errors.New("cpplc: invalid edge demand")

	// ErrDemandExceedsCapacity is returned when a single edge demands
	// more than the vehicle can carry. Edges cannot be split.
	ErrDemandExceedsCapacity = errors.New("cpplc: single edge demand exceeds capacity")

	// ErrVertexNotFound is returned when the configured depot vertex is
	// absent from the graph.
	ErrVertexNotFound = errors.New("cpplc: depot vertex not found")

	// ErrDepotUnreachable is returned when some edge cannot be reached
	// from the depot.
	ErrDepotUnreachable = errors.New("cpplc: graph not reachable from depot")
)

// defaultSeed replaces a zero Options.Seed so that the no-option call is
// reproducible.
const defaultSeed int64 = 42

// scoreTolerance bounds the window within which candidate scores count
// as tied.
const scoreTolerance = 1e-9

// LegKind classifies one leg of a load-constrained tour.
type LegKind uint8

const (
	// Deadhead traverses an edge without servicing it.
	Deadhead LegKind = iota
	// Service traverses an edge and picks up its demand.
	Service
	// DepotReturn traverses an edge on the way back to the depot; the
	// load resets to zero on arrival.
	DepotReturn
)

// String implements fmt.Stringer.
func (k LegKind) String() string {
	switch k {
	case Deadhead:
		return "deadhead"
	case Service:
		return "service"
	case DepotReturn:
		return "depot-return"
	default:
		return "unknown"
	}
}

// Leg is one traversed edge of the constructed tour. Load is the vehicle
// load after the leg completes (before the reset on a depot arrival).
type Leg struct {
	From   string
	To     string
	EdgeID string
	Kind   LegKind
	Load   float64
	Cost   float64
}

// Result is the outcome of one load-constrained solve.
type Result struct {
	// Cost is the total load-dependent cost of the tour.
	Cost float64
	// Tour lists every traversed leg from the depot back to the depot.
	Tour []Leg
	// Feasible is true when every edge was serviced within capacity.
	Feasible bool
	// DepotReturns counts load resets, the closing return included.
	DepotReturns int
	// Serviced counts serviced edges (equals the graph's edge count on
	// success).
	Serviced int
	// Elapsed is the wall-clock construction time.
	Elapsed time.Duration
}

// Options configures a load-constrained solve.
type Options struct {
	// Model is the load-dependent cost model. Defaults to Linear.
	Model CostModel
	// Depot is the start/end vertex. Empty selects the smallest vertex ID.
	Depot string
	// Alpha weighs the proximity bonus against marginal cost in candidate
	// scoring. The default 0.5 is an experimental setting, not a
	// validated constant.
	Alpha float64
	// Seed drives randomized tie-breaking. Zero selects a fixed default.
	Seed int64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		Model: Linear,
		Alpha: 0.5,
	}
}

// WithCostModel selects the load-dependent cost model.
func WithCostModel(m CostModel) Option {
	return func(o *Options) { o.Model = m }
}

// WithDepot sets the start/end vertex.
func WithDepot(id string) Option {
	return func(o *Options) { o.Depot = id }
}

// WithAlpha sets the proximity trade-off coefficient.
func WithAlpha(a float64) Option {
	return func(o *Options) { o.Alpha = a }
}

// WithSeed sets the tie-breaking seed. Zero keeps the fixed default.
func WithSeed(s int64) Option {
	return func(o *Options) { o.Seed = s }
}
