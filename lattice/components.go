package lattice

// Components partitions the nodes into weakly connected groups: two nodes
// share a group when a chain of edges joins them, ignoring edge direction.
// Each group lists arena indices in discovery order; groups are ordered by
// their smallest index.
//
// Time:   O(N + E).
// Memory: O(N + E) for the undirected view and visited flags.
func (g *Grid) Components() [][]int {
	n := len(g.nodes)

	// Undirected view: outgoing plus incoming neighbors.
	incoming := make([][]int, n)
	for i := range g.nodes {
		for _, e := range g.nodes[i].Edges {
			incoming[e.To] = append(incoming[e.To], i)
		}
	}

	seen := make([]bool, n)
	var comps [][]int
	for i0 := 0; i0 < n; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, e := range g.nodes[u].Edges {
				if !seen[e.To] {
					seen[e.To] = true
					queue = append(queue, e.To)
				}
			}
			for _, v := range incoming[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
