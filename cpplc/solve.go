// This file implements the greedy insertion construction for the
// load-constrained postman variant.

package cpplc

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/PuffBear/extending-cpp-routing/core"
	"github.com/PuffBear/extending-cpp-routing/dijkstra"
)

// Solve constructs a feasible load-constrained service tour over every
// edge of g. demands is keyed by edge ID; edges absent from the map carry
// zero demand and still must be serviced.
//
// Contracts:
//   - capacity must be positive and finite.
//   - no single demand may exceed capacity (edges cannot be split).
//   - every vertex must be reachable from the depot.
//   - the returned tour starts and ends at the depot and never carries
//     more than capacity between depot visits.
//
// Complexity: O(V·(V+E) log V) for the all-pairs precompute plus
// O(E²) candidate scoring.
func Solve(g *core.Graph, demands map[string]float64, capacity float64, opts ...Option) (Result, error) {
	started := time.Now()

	// 1. Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Validate inputs.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if capacity <= 0 || math.IsInf(capacity, 0) || math.IsNaN(capacity) {
		return Result{}, fmt.Errorf("%w: %v", ErrBadCapacity, capacity)
	}
	if cfg.Alpha < 0 || math.IsInf(cfg.Alpha, 0) || math.IsNaN(cfg.Alpha) {
		return Result{}, fmt.Errorf("%w: %v", ErrBadAlpha, cfg.Alpha)
	}
	for eid, d := range demands {
		if _, err := g.GetEdge(eid); err != nil {
			return Result{}, fmt.Errorf("%w: edge %q demand %v", ErrBadDemand, eid, d)
		}
		if d < 0 || math.IsInf(d, 0) || math.IsNaN(d) {
			return Result{}, fmt.Errorf("%w: edge %q demand %v", ErrBadDemand, eid, d)
		}
		if d > capacity {
			return Result{}, fmt.Errorf("%w: edge %q demands %v of %v", ErrDemandExceedsCapacity, eid, d, capacity)
		}
	}
	if g.VertexCount() == 0 {
		return Result{}, fmt.Errorf("%w: empty graph", ErrVertexNotFound)
	}
	if cfg.Depot == "" {
		cfg.Depot = g.Vertices()[0]
	}
	if !g.HasVertex(cfg.Depot) {
		return Result{}, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Depot)
	}
	if !g.ConnectedFrom(cfg.Depot) {
		return Result{}, fmt.Errorf("%w: depot %q", ErrDepotUnreachable, cfg.Depot)
	}

	// 3. Precompute one shortest-path tree per vertex.
	trees := make(map[string]*dijkstra.Tree, g.VertexCount())
	for _, v := range g.Vertices() {
		tree, err := dijkstra.Run(g, v)
		if err != nil {
			return Result{}, fmt.Errorf("cpplc: precompute from %q: %w", v, err)
		}
		trees[v] = tree
	}

	c := &constructor{
		g:        g,
		demands:  demands,
		capacity: capacity,
		cfg:      cfg,
		trees:    trees,
		rng:      rngFromSeed(cfg.Seed),
		serviced: make(map[string]bool, g.EdgeCount()),
		pos:      cfg.Depot,
	}

	if err := c.run(); err != nil {
		return Result{}, err
	}

	var cost float64
	for _, leg := range c.tour {
		cost += leg.Cost
	}

	return Result{
		Cost:         round1e9(cost),
		Tour:         c.tour,
		Feasible:     true,
		DepotReturns: c.returns,
		Serviced:     len(c.serviced),
		Elapsed:      time.Since(started),
	}, nil
}

// constructor carries the greedy insertion state.
type constructor struct {
	g        *core.Graph
	demands  map[string]float64
	capacity float64
	cfg      Options
	trees    map[string]*dijkstra.Tree
	rng      *rand.Rand

	serviced map[string]bool
	tour     []Leg
	pos      string
	load     float64
	returns  int
}

// plan is one scored way of servicing one unserviced edge: enter at
// entry, exit at exit, optionally returning to the depot first.
type plan struct {
	edgeID     string
	entry      string
	exit       string
	weight     float64
	demand     float64
	needReturn bool
	score      float64
}

// run services every edge greedily and closes the tour at the depot.
func (c *constructor) run() error {
	for len(c.serviced) < c.g.EdgeCount() {
		best, err := c.pickPlan()
		if err != nil {
			return err
		}
		if err := c.execute(best); err != nil {
			return err
		}
	}

	// Close the walk. The arrival resets the load, so it counts as a
	// return even when the last service already ended at the depot.
	if len(c.serviced) > 0 {
		if c.pos != c.cfg.Depot {
			legs, err := c.pathLegs(c.pos, c.cfg.Depot, DepotReturn)
			if err != nil {
				return err
			}
			c.tour = append(c.tour, legs...)
			c.pos = c.cfg.Depot
		}
		c.returns++
		c.load = 0
	}

	return nil
}

// pickPlan scores every orientation of every unserviced edge and returns
// the winner, breaking score ties with the seeded RNG. Candidates are
// enumerated in edge-ID order so identical seeds replay identical tours.
func (c *constructor) pickPlan() (plan, error) {
	var ties []plan
	bestScore := math.Inf(1)

	consider := func(p plan) {
		switch {
		case p.score < bestScore-scoreTolerance:
			bestScore = p.score
			ties = ties[:0]
			ties = append(ties, p)
		case math.Abs(p.score-bestScore) <= scoreTolerance:
			ties = append(ties, p)
		}
	}

	for _, e := range c.g.Edges() {
		if c.serviced[e.ID] {
			continue
		}
		p, err := c.scorePlan(e, e.From, e.To)
		if err != nil {
			return plan{}, err
		}
		consider(p)

		if e.From != e.To {
			p, err = c.scorePlan(e, e.To, e.From)
			if err != nil {
				return plan{}, err
			}
			consider(p)
		}
	}

	if len(ties) == 0 {
		return plan{}, fmt.Errorf("%w: no serviceable edge from %q", ErrDepotUnreachable, c.pos)
	}

	return ties[c.rng.Intn(len(ties))], nil
}

// scorePlan prices servicing e entering at entry. When residual capacity
// cannot absorb the demand the plan is routed through a depot return.
func (c *constructor) scorePlan(e *core.Edge, entry, exit string) (plan, error) {
	demand := c.demands[e.ID]
	p := plan{edgeID: e.ID, entry: entry, exit: exit, weight: e.Weight, demand: demand}

	var deadDist, deadCost, load float64
	if c.load+demand > c.capacity {
		p.needReturn = true
		homeDist, err := c.distance(c.pos, c.cfg.Depot)
		if err != nil {
			return plan{}, err
		}
		outDist, err := c.distance(c.cfg.Depot, entry)
		if err != nil {
			return plan{}, err
		}
		deadDist = homeDist + outDist
		deadCost = c.cfg.Model.Apply(homeDist, c.load, c.capacity) +
			c.cfg.Model.Apply(outDist, 0, c.capacity)
		load = 0
	} else {
		dist, err := c.distance(c.pos, entry)
		if err != nil {
			return plan{}, err
		}
		deadDist = dist
		deadCost = c.cfg.Model.Apply(dist, c.load, c.capacity)
		load = c.load
	}

	serviceCost := c.cfg.Model.Apply(e.Weight, load, c.capacity)
	proximity := 1 / (1 + deadDist)
	p.score = deadCost + serviceCost - c.cfg.Alpha*proximity

	return p, nil
}

// execute appends the chosen plan's legs and advances the state.
func (c *constructor) execute(p plan) error {
	if p.needReturn {
		if c.pos != c.cfg.Depot {
			legs, err := c.pathLegs(c.pos, c.cfg.Depot, DepotReturn)
			if err != nil {
				return err
			}
			c.tour = append(c.tour, legs...)
			c.pos = c.cfg.Depot
		}
		c.returns++
		c.load = 0
	}

	legs, err := c.pathLegs(c.pos, p.entry, Deadhead)
	if err != nil {
		return err
	}
	c.tour = append(c.tour, legs...)

	serviceCost := c.cfg.Model.Apply(p.weight, c.load, c.capacity)
	c.load += p.demand
	c.tour = append(c.tour, Leg{
		From:   p.entry,
		To:     p.exit,
		EdgeID: p.edgeID,
		Kind:   Service,
		Load:   c.load,
		Cost:   serviceCost,
	})
	c.pos = p.exit
	c.serviced[p.edgeID] = true

	return nil
}

// pathLegs expands the shortest path from one vertex to another into legs
// of the given kind, priced at the current load.
func (c *constructor) pathLegs(from, to string, kind LegKind) ([]Leg, error) {
	edgeIDs, err := c.trees[from].EdgePathTo(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %q to %q", ErrDepotUnreachable, from, to)
	}

	legs := make([]Leg, 0, len(edgeIDs))
	cur := from
	for _, eid := range edgeIDs {
		e, err := c.g.GetEdge(eid)
		if err != nil {
			return nil, fmt.Errorf("cpplc: path leg: %w", err)
		}
		next := e.Other(cur)
		legs = append(legs, Leg{
			From:   cur,
			To:     next,
			EdgeID: eid,
			Kind:   kind,
			Load:   c.load,
			Cost:   c.cfg.Model.Apply(e.Weight, c.load, c.capacity),
		})
		cur = next
	}

	return legs, nil
}

// distance reads the precomputed shortest distance between two vertices.
func (c *constructor) distance(from, to string) (float64, error) {
	d, ok := c.trees[from].DistanceTo(to)
	if !ok {
		return 0, fmt.Errorf("%w: %q to %q", ErrDepotUnreachable, from, to)
	}
	return d, nil
}

// rngFromSeed maps a caller seed onto a private RNG. Zero selects the
// fixed default so the no-option call stays reproducible.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// round1e9 stabilizes accumulated floating-point cost to nanoscale.
func round1e9(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}
