// This file implements Clone, the deep copy used by the exact solver so
// that augmentation never mutates the caller's graph.

package core

// Clone returns a deep copy of g: same vertices, same edges with the same
// IDs and weights, same configuration flags. Subsequent mutations of either
// graph do not affect the other. Edge IDs generated after the clone continue
// from the same counter, so IDs never collide between original and copy.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		allowLoops: g.allowLoops,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]struct{}, len(g.adjacency)),
	}

	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
	}
	for id, inc := range g.adjacency {
		m := make(map[string]struct{}, len(inc))
		for eid := range inc {
			m[eid] = struct{}{}
		}
		c.adjacency[id] = m
	}

	return c
}
