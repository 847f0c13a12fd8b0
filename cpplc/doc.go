// Package cpplc solves the load-constrained postman variant: every edge
// of a connected, weighted, undirected graph must be serviced by a
// capacity-bounded vehicle whose per-distance traversal cost grows with
// its accumulated load.
//
// The constrained problem is NP-hard, so cpplc builds tours with a
// greedy insertion heuristic rather than an exact method. Its contract
// is feasibility and reproducibility, not optimality:
//
//   - 🚚 Capacity safety  - cumulative load between consecutive depot
//     visits never exceeds the vehicle capacity.
//   - 🎲 Determinism      - ties in candidate scoring are broken by a
//     seeded RNG; a fixed seed yields a fixed tour.
//   - 💰 Cost models      - Linear, Quadratic, Piecewise and Fuel load
//     multipliers, selected per solve.
//
// Construction walks from the depot: at each step every unserviced edge
// is scored by its marginal load-dependent cost minus a proximity bonus,
// the cheapest is appended (with a depot return first when residual
// capacity is short), and the tour closes with a final return leg.
//
// Single edges whose demand exceeds capacity make the instance
// infeasible outright; edges cannot be split across trips.
package cpplc
