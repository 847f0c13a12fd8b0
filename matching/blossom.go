// This file implements MaxWeight, the primal-dual blossom method for
// maximum-weight matching on general graphs.
//
// The implementation follows the classic van Rantwijk structure: vertices
// are 0..n-1, blossoms are n..2n-1, and every edge k owns two "endpoints"
// 2k and 2k+1 so that p^1 flips to the opposite side of edge p/2. Labels:
// 0 = free, 1 = S (outer), 2 = T (inner); 5 marks a breadcrumb while
// scanning for a blossom base.

package matching

// MaxWeight computes a maximum-weight matching over vertices 0..n-1.
//
// If maxCardinality is true, only maximum-cardinality matchings are
// considered, and the maximum weight is taken over those; this is the mode
// that turns negated-distance inputs into minimum-weight perfect matchings.
//
// The result maps each vertex to its partner, or -1 if unmatched.
// Self-loops and edges touching vertices outside [0, n) are ignored.
//
// Complexity: O(n³) time, O(n + m) space.
func MaxWeight(n int, edges []WeightedEdge, maxCardinality bool) []int {
	mate := make([]int, n)
	for i := range mate {
		mate[i] = -1
	}
	if n == 0 {
		return mate
	}

	usable := make([]WeightedEdge, 0, len(edges))
	for _, e := range edges {
		if e.U == e.V || e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			continue
		}
		usable = append(usable, e)
	}
	if len(usable) == 0 {
		return mate
	}

	s := newBlossomSolver(n, usable, maxCardinality)
	s.run()

	// Translate endpoint indices back to partner vertices.
	for v := 0; v < n; v++ {
		if s.mate[v] >= 0 {
			mate[v] = s.endpoint[s.mate[v]]
		}
	}

	return mate
}

// blossomSolver carries the mutable state of one MaxWeight execution.
type blossomSolver struct {
	nvertex        int
	nedge          int
	edges          []WeightedEdge
	maxCardinality bool

	endpoint  []int   // endpoint[p] = vertex at endpoint p of edge p/2
	neighbend [][]int // neighbend[v] = endpoints of edges incident to v (remote side)

	mate      []int // mate[v] = remote endpoint of matched edge, or -1
	label     []int // per (pseudo)vertex: 0 free, 1 S, 2 T, 5 breadcrumb
	labelend  []int // endpoint through which the label was assigned
	inblossom []int // v → top-level blossom containing v

	blossomparent    []int
	blossomchilds    [][]int
	blossombase      []int
	blossomendps     [][]int
	bestedge         []int   // least-slack edge to a different S-blossom
	blossombestedges [][]int // b → list of least-slack edges per S-blossom
	unusedblossoms   []int

	dualvar   []float64
	allowedge []bool
	queue     []int
}

func newBlossomSolver(n int, edges []WeightedEdge, maxCardinality bool) *blossomSolver {
	s := &blossomSolver{
		nvertex:        n,
		nedge:          len(edges),
		edges:          edges,
		maxCardinality: maxCardinality,
	}

	maxweight := 0.0
	for _, e := range edges {
		if e.W > maxweight {
			maxweight = e.W
		}
	}

	s.endpoint = make([]int, 2*s.nedge)
	s.neighbend = make([][]int, n)
	for k, e := range edges {
		s.endpoint[2*k] = e.U
		s.endpoint[2*k+1] = e.V
		s.neighbend[e.U] = append(s.neighbend[e.U], 2*k+1)
		s.neighbend[e.V] = append(s.neighbend[e.V], 2*k)
	}

	s.mate = make([]int, n)
	s.label = make([]int, 2*n)
	s.labelend = make([]int, 2*n)
	s.inblossom = make([]int, n)
	s.blossomparent = make([]int, 2*n)
	s.blossomchilds = make([][]int, 2*n)
	s.blossombase = make([]int, 2*n)
	s.blossomendps = make([][]int, 2*n)
	s.bestedge = make([]int, 2*n)
	s.blossombestedges = make([][]int, 2*n)
	s.unusedblossoms = make([]int, 0, n)
	s.dualvar = make([]float64, 2*n)
	s.allowedge = make([]bool, s.nedge)
	s.queue = make([]int, 0, n)

	for v := 0; v < n; v++ {
		s.mate[v] = -1
		s.inblossom[v] = v
		s.blossombase[v] = v
		s.dualvar[v] = maxweight
	}
	for b := n; b < 2*n; b++ {
		s.blossombase[b] = -1
		s.unusedblossoms = append(s.unusedblossoms, b)
	}
	for i := 0; i < 2*n; i++ {
		s.labelend[i] = -1
		s.blossomparent[i] = -1
		s.bestedge[i] = -1
	}

	return s
}

// slack returns the reduced cost of edge k; zero-slack edges are tight and
// may enter the matching.
func (s *blossomSolver) slack(k int) float64 {
	e := s.edges[k]

	return s.dualvar[e.U] + s.dualvar[e.V] - 2*e.W
}

// blossomLeaves appends every true vertex inside (pseudo)vertex b to out.
func (s *blossomSolver) blossomLeaves(b int, out []int) []int {
	if b < s.nvertex {
		return append(out, b)
	}
	for _, t := range s.blossomchilds[b] {
		out = s.blossomLeaves(t, out)
	}

	return out
}

// assignLabel labels (the blossom of) w with t, reached through endpoint p.
// New S-blossoms feed the scan queue; new T-blossoms immediately propagate
// an S label across the matched edge at their base.
func (s *blossomSolver) assignLabel(w, t, p int) {
	b := s.inblossom[w]
	s.label[w] = t
	s.label[b] = t
	s.labelend[w] = p
	s.labelend[b] = p
	s.bestedge[w] = -1
	s.bestedge[b] = -1

	if t == 1 {
		s.queue = s.blossomLeaves(b, s.queue)
	} else if t == 2 {
		base := s.blossombase[b]
		s.assignLabel(s.endpoint[s.mate[base]], 1, s.mate[base]^1)
	}
}

// scanBlossom traces back from v and w through alternating paths; if the
// paths meet it returns the common base vertex (a new blossom closes), and
// -1 if they end in different roots (an augmenting path exists).
func (s *blossomSolver) scanBlossom(v, w int) int {
	path := make([]int, 0, 8)
	base := -1

	for v != -1 || w != -1 {
		b := s.inblossom[v]
		if s.label[b]&4 != 0 {
			base = s.blossombase[b]
			break
		}
		path = append(path, b)
		s.label[b] = 5

		if s.labelend[b] == -1 {
			// Root of the tree: b's base is single.
			v = -1
		} else {
			v = s.endpoint[s.labelend[b]]
			b = s.inblossom[v]
			// b is a T-blossom; step over it.
			v = s.endpoint[s.labelend[b]]
		}
		if w != -1 {
			v, w = w, v
		}
	}

	// Remove breadcrumbs.
	for _, b := range path {
		s.label[b] = 1
	}

	return base
}

// addBlossom shrinks the odd cycle closed by edge k with base vertex base
// into a fresh blossom, relabels the swallowed vertices, and recomputes the
// least-slack edge lists.
func (s *blossomSolver) addBlossom(base, k int) {
	v := s.edges[k].U
	w := s.edges[k].V
	bb := s.inblossom[base]
	bv := s.inblossom[v]
	bw := s.inblossom[w]

	b := s.unusedblossoms[len(s.unusedblossoms)-1]
	s.unusedblossoms = s.unusedblossoms[:len(s.unusedblossoms)-1]

	s.blossombase[b] = base
	s.blossomparent[b] = -1
	s.blossomparent[bb] = b

	path := make([]int, 0, 8)
	endps := make([]int, 0, 8)

	// Trace back from v to base.
	for bv != bb {
		s.blossomparent[bv] = b
		path = append(path, bv)
		endps = append(endps, s.labelend[bv])
		v = s.endpoint[s.labelend[bv]]
		bv = s.inblossom[v]
	}
	path = append(path, bb)
	reverseInts(path)
	reverseInts(endps)
	endps = append(endps, 2*k)

	// Trace back from w to base.
	for bw != bb {
		s.blossomparent[bw] = b
		path = append(path, bw)
		endps = append(endps, s.labelend[bw]^1)
		w = s.endpoint[s.labelend[bw]]
		bw = s.inblossom[w]
	}

	s.blossomchilds[b] = path
	s.blossomendps[b] = endps
	s.label[b] = 1
	s.labelend[b] = s.labelend[bb]
	s.dualvar[b] = 0

	// Relabel swallowed vertices; former T-vertices become S and rejoin
	// the scan queue.
	for _, leaf := range s.blossomLeaves(b, nil) {
		if s.label[s.inblossom[leaf]] == 2 {
			s.queue = append(s.queue, leaf)
		}
		s.inblossom[leaf] = b
	}

	// Merge least-slack edge lists of the children.
	bestedgeto := make([]int, 2*s.nvertex)
	for i := range bestedgeto {
		bestedgeto[i] = -1
	}
	for _, child := range path {
		var nblists [][]int
		if s.blossombestedges[child] == nil {
			for _, leaf := range s.blossomLeaves(child, nil) {
				list := make([]int, 0, len(s.neighbend[leaf]))
				for _, p := range s.neighbend[leaf] {
					list = append(list, p/2)
				}
				nblists = append(nblists, list)
			}
		} else {
			nblists = [][]int{s.blossombestedges[child]}
		}
		for _, nblist := range nblists {
			for _, ek := range nblist {
				j := s.edges[ek].V
				if s.inblossom[j] == b {
					j = s.edges[ek].U
				}
				bj := s.inblossom[j]
				if bj != b && s.label[bj] == 1 &&
					(bestedgeto[bj] == -1 || s.slack(ek) < s.slack(bestedgeto[bj])) {
					bestedgeto[bj] = ek
				}
			}
		}
		s.blossombestedges[child] = nil
		s.bestedge[child] = -1
	}

	best := make([]int, 0, len(bestedgeto))
	for _, ek := range bestedgeto {
		if ek != -1 {
			best = append(best, ek)
		}
	}
	s.blossombestedges[b] = best
	s.bestedge[b] = -1
	for _, ek := range best {
		if s.bestedge[b] == -1 || s.slack(ek) < s.slack(s.bestedge[b]) {
			s.bestedge[b] = ek
		}
	}
}

// expandBlossom dissolves blossom b, either at the end of a stage
// (endstage) or because its dual variable hit zero mid-stage, in which case
// its children inherit labels along the alternating cycle.
func (s *blossomSolver) expandBlossom(b int, endstage bool) {
	for _, child := range s.blossomchilds[b] {
		s.blossomparent[child] = -1
		switch {
		case child < s.nvertex:
			s.inblossom[child] = child
		case endstage && s.dualvar[child] == 0:
			s.expandBlossom(child, endstage)
		default:
			for _, leaf := range s.blossomLeaves(child, nil) {
				s.inblossom[leaf] = child
			}
		}
	}

	if !endstage && s.label[b] == 2 {
		// Expanding a T-blossom mid-stage: relabel the children on the
		// path from the entry child to the base.
		entrychild := s.inblossom[s.endpoint[s.labelend[b]^1]]
		j := indexOf(s.blossomchilds[b], entrychild)
		jstep := 1
		endptrick := 0
		if j&1 != 0 {
			j -= len(s.blossomchilds[b])
		} else {
			jstep = -1
			endptrick = 1
		}

		p := s.labelend[b]
		for j != 0 {
			s.label[s.endpoint[p^1]] = 0
			s.label[s.endpoint[childEndp(s.blossomendps[b], j-endptrick)^endptrick^1]] = 0
			s.assignLabel(s.endpoint[p^1], 2, p)

			s.allowedge[childEndp(s.blossomendps[b], j-endptrick)/2] = true
			j += jstep
			p = childEndp(s.blossomendps[b], j-endptrick) ^ endptrick
			s.allowedge[p/2] = true
			j += jstep
		}

		// Relabel the base child T without stepping through to its mate.
		bv := childAt(s.blossomchilds[b], j)
		s.label[s.endpoint[p^1]] = 2
		s.label[bv] = 2
		s.labelend[s.endpoint[p^1]] = p
		s.labelend[bv] = p
		s.bestedge[bv] = -1

		// Continue along the cycle until back at entrychild; children that
		// retained a label from outside keep it, untouched ones go free.
		j += jstep
		for childAt(s.blossomchilds[b], j) != entrychild {
			bv = childAt(s.blossomchilds[b], j)
			if s.label[bv] == 1 {
				j += jstep
				continue
			}
			var vlab int
			for _, leaf := range s.blossomLeaves(bv, nil) {
				vlab = leaf
				if s.label[leaf] != 0 {
					break
				}
			}
			if s.label[vlab] != 0 {
				s.label[vlab] = 0
				s.label[s.endpoint[s.mate[s.blossombase[bv]]]] = 0
				s.assignLabel(vlab, 2, s.labelend[vlab])
			}
			j += jstep
		}
	}

	// Recycle the blossom slot.
	s.label[b] = -1
	s.labelend[b] = -1
	s.blossomchilds[b] = nil
	s.blossomendps[b] = nil
	s.blossombase[b] = -1
	s.blossombestedges[b] = nil
	s.bestedge[b] = -1
	s.unusedblossoms = append(s.unusedblossoms, b)
}

// augmentBlossom swaps matched/unmatched edges inside blossom b so that
// vertex v becomes its new base, recursing into sub-blossoms.
func (s *blossomSolver) augmentBlossom(b, v int) {
	t := v
	for s.blossomparent[t] != b {
		t = s.blossomparent[t]
	}
	if t >= s.nvertex {
		s.augmentBlossom(t, v)
	}

	i := indexOf(s.blossomchilds[b], t)
	j := i
	jstep := 1
	endptrick := 0
	if i&1 != 0 {
		j -= len(s.blossomchilds[b])
	} else {
		jstep = -1
		endptrick = 1
	}

	for j != 0 {
		j += jstep
		t = childAt(s.blossomchilds[b], j)
		p := childEndp(s.blossomendps[b], j-endptrick) ^ endptrick
		if t >= s.nvertex {
			s.augmentBlossom(t, s.endpoint[p])
		}
		j += jstep
		t = childAt(s.blossomchilds[b], j)
		if t >= s.nvertex {
			s.augmentBlossom(t, s.endpoint[p^1])
		}
		s.mate[s.endpoint[p]] = p ^ 1
		s.mate[s.endpoint[p^1]] = p
	}

	// Rotate the child list so the new base child comes first.
	s.blossomchilds[b] = rotate(s.blossomchilds[b], i)
	s.blossomendps[b] = rotate(s.blossomendps[b], i)
	s.blossombase[b] = s.blossombase[s.blossomchilds[b][0]]
}

// augmentMatching flips matched/unmatched edges along the augmenting path
// through tight edge k, from both of its endpoints back to the tree roots.
func (s *blossomSolver) augmentMatching(k int) {
	starts := [2][2]int{
		{s.edges[k].U, 2*k + 1},
		{s.edges[k].V, 2 * k},
	}
	for _, sp := range starts {
		v, p := sp[0], sp[1]
		for {
			bs := s.inblossom[v]
			if bs >= s.nvertex {
				s.augmentBlossom(bs, v)
			}
			s.mate[v] = p

			if s.labelend[bs] == -1 {
				// Reached a single vertex; stop.
				break
			}
			t := s.endpoint[s.labelend[bs]]
			bt := s.inblossom[t]
			v = s.endpoint[s.labelend[bt]]
			j := s.endpoint[s.labelend[bt]^1]
			if bt >= s.nvertex {
				s.augmentBlossom(bt, j)
			}
			s.mate[j] = s.labelend[bt]
			p = s.labelend[bt] ^ 1
		}
	}
}

// run executes the main loop: up to n stages, each of which either finds an
// augmenting path or proves the matching maximal.
func (s *blossomSolver) run() {
	for stage := 0; stage < s.nvertex; stage++ {
		for i := range s.label {
			s.label[i] = 0
			s.bestedge[i] = -1
		}
		for b := s.nvertex; b < 2*s.nvertex; b++ {
			s.blossombestedges[b] = nil
		}
		for k := range s.allowedge {
			s.allowedge[k] = false
		}
		s.queue = s.queue[:0]

		for v := 0; v < s.nvertex; v++ {
			if s.mate[v] == -1 && s.label[s.inblossom[v]] == 0 {
				s.assignLabel(v, 1, -1)
			}
		}

		augmented := false
		for {
			for len(s.queue) > 0 && !augmented {
				v := s.queue[len(s.queue)-1]
				s.queue = s.queue[:len(s.queue)-1]

				for _, p := range s.neighbend[v] {
					k := p / 2
					w := s.endpoint[p]
					if s.inblossom[v] == s.inblossom[w] {
						continue
					}

					var kslack float64
					if !s.allowedge[k] {
						kslack = s.slack(k)
						if kslack <= 0 {
							s.allowedge[k] = true
						}
					}

					if s.allowedge[k] {
						switch {
						case s.label[s.inblossom[w]] == 0:
							s.assignLabel(w, 2, p^1)
						case s.label[s.inblossom[w]] == 1:
							base := s.scanBlossom(v, w)
							if base >= 0 {
								s.addBlossom(base, k)
							} else {
								s.augmentMatching(k)
								augmented = true
							}
						case s.label[w] == 0:
							s.label[w] = 2
							s.labelend[w] = p ^ 1
						}
						if augmented {
							break
						}
					} else if s.label[s.inblossom[w]] == 1 {
						b := s.inblossom[v]
						if s.bestedge[b] == -1 || kslack < s.slack(s.bestedge[b]) {
							s.bestedge[b] = k
						}
					} else if s.label[w] == 0 {
						if s.bestedge[w] == -1 || kslack < s.slack(s.bestedge[w]) {
							s.bestedge[w] = k
						}
					}
				}
			}
			if augmented {
				break
			}

			// No augmenting path on tight edges: compute the dual update.
			deltatype := -1
			var delta float64
			deltaedge := -1
			deltablossom := -1

			if !s.maxCardinality {
				deltatype = 1
				delta = s.minVertexDual()
			}

			for v := 0; v < s.nvertex; v++ {
				if s.label[s.inblossom[v]] == 0 && s.bestedge[v] != -1 {
					d := s.slack(s.bestedge[v])
					if deltatype == -1 || d < delta {
						delta = d
						deltatype = 2
						deltaedge = s.bestedge[v]
					}
				}
			}
			for b := 0; b < 2*s.nvertex; b++ {
				if s.blossomparent[b] == -1 && s.label[b] == 1 && s.bestedge[b] != -1 {
					d := s.slack(s.bestedge[b]) / 2
					if deltatype == -1 || d < delta {
						delta = d
						deltatype = 3
						deltaedge = s.bestedge[b]
					}
				}
			}
			for b := s.nvertex; b < 2*s.nvertex; b++ {
				if s.blossombase[b] >= 0 && s.blossomparent[b] == -1 && s.label[b] == 2 &&
					(deltatype == -1 || s.dualvar[b] < delta) {
					delta = s.dualvar[b]
					deltatype = 4
					deltablossom = b
				}
			}

			if deltatype == -1 {
				// Max-cardinality optimum reached; take a final conservative
				// update so the duals certify optimality.
				deltatype = 1
				delta = s.minVertexDual()
				if delta < 0 {
					delta = 0
				}
			}

			for v := 0; v < s.nvertex; v++ {
				switch s.label[s.inblossom[v]] {
				case 1:
					s.dualvar[v] -= delta
				case 2:
					s.dualvar[v] += delta
				}
			}
			for b := s.nvertex; b < 2*s.nvertex; b++ {
				if s.blossombase[b] >= 0 && s.blossomparent[b] == -1 {
					switch s.label[b] {
					case 1:
						s.dualvar[b] += delta
					case 2:
						s.dualvar[b] -= delta
					}
				}
			}

			switch deltatype {
			case 1:
				// Optimum reached.
			case 2:
				s.allowedge[deltaedge] = true
				i := s.edges[deltaedge].U
				if s.label[s.inblossom[i]] == 0 {
					i = s.edges[deltaedge].V
				}
				s.queue = append(s.queue, i)
			case 3:
				s.allowedge[deltaedge] = true
				s.queue = append(s.queue, s.edges[deltaedge].U)
			case 4:
				s.expandBlossom(deltablossom, false)
			}
			if deltatype == 1 {
				break
			}
		}

		if !augmented {
			break
		}

		// End of stage: expand S-blossoms whose dual hit zero.
		for b := s.nvertex; b < 2*s.nvertex; b++ {
			if s.blossomparent[b] == -1 && s.blossombase[b] >= 0 &&
				s.label[b] == 1 && s.dualvar[b] == 0 {
				s.expandBlossom(b, true)
			}
		}
	}
}

// minVertexDual returns the smallest vertex dual variable.
func (s *blossomSolver) minVertexDual() float64 {
	min := s.dualvar[0]
	for v := 1; v < s.nvertex; v++ {
		if s.dualvar[v] < min {
			min = s.dualvar[v]
		}
	}

	return min
}

// childAt indexes a blossom child list with Python-style negative wrap.
func childAt(childs []int, j int) int {
	if j < 0 {
		j += len(childs)
	}

	return childs[j]
}

// childEndp indexes a blossom endpoint list with Python-style negative wrap.
func childEndp(endps []int, j int) int {
	if j < 0 {
		j += len(endps)
	}

	return endps[j]
}

// indexOf returns the position of x in xs; -1 if absent.
func indexOf(xs []int, x int) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}

	return -1
}

// reverseInts reverses xs in place.
func reverseInts(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// rotate returns xs rotated left by i positions.
func rotate(xs []int, i int) []int {
	out := make([]int, 0, len(xs))
	out = append(out, xs[i:]...)
	out = append(out, xs[:i]...)

	return out
}
