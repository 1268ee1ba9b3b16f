package graph

import "sort"

// cutAnalysis maps each articulation zone of a region to the member
// subtrees that would be separated from the rest of the region if that
// zone were removed.
type cutAnalysis map[ZoneID][][]ZoneID

// Cuts returns the region's articulation-point decomposition, memoised
// until the next membership mutation (Bind/Unbind/Merge/Erase all clear
// the memo). Empty when the region is biconnected or has no members.
func (r *Region) Cuts() cutAnalysis {
	if r.cuts == nil {
		c := r.computeCuts()
		r.cuts = &c
	}
	return *r.cuts
}

// computeCuts runs an iterative Tarjan-style DFS over the subgraph
// induced by this region's own zones (the exterior and foreign zones are
// never traversed). For each member it tracks entry order (in) and the
// lowpoint (low): the minimum entry order reachable via any back edge
// from its DFS subtree. A non-root member is an articulation point iff
// some tree child's lowpoint is >= its own entry order; the root is an
// articulation point iff it has two or more tree children.
func (r *Region) computeCuts() cutAnalysis {
	result := cutAnalysis{}
	if r.count == 0 {
		return result
	}

	neigh := make(map[ZoneID][]ZoneID, r.count)
	ids := r.sortedZoneIDs()
	for _, id := range ids {
		z := r.graph.mustZone(id)
		var ns []ZoneID
		for _, n := range z.neighbours {
			if n == ExteriorID {
				continue
			}
			if _, member := r.zones[n]; member {
				ns = append(ns, n) // z.neighbours is already sorted ascending
			}
		}
		neigh[id] = ns
	}

	root := ids[0]
	in := make(map[ZoneID]int, r.count)
	low := make(map[ZoneID]int, r.count)
	parent := make(map[ZoneID]ZoneID, r.count)
	children := make(map[ZoneID][]ZoneID, r.count)
	visited := make(map[ZoneID]bool, r.count)
	counter := 0

	type frame struct {
		v   ZoneID
		pos int
	}
	stack := []frame{{root, 0}}
	visited[root] = true
	in[root] = counter
	low[root] = counter
	counter++

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		now := top.v

		advanced := false
		for top.pos < len(neigh[now]) {
			w := neigh[now][top.pos]
			top.pos++
			if !visited[w] {
				visited[w] = true
				in[w] = counter
				low[w] = counter
				counter++
				parent[w] = now
				children[now] = append(children[now], w)
				stack = append(stack, frame{w, 0})
				advanced = true
				break
			}
		}
		if advanced {
			continue
		}

		if now != root {
			for _, w := range neigh[now] {
				if low[w] < low[now] {
					low[now] = low[w]
				}
			}
			for _, w := range neigh[now] {
				if p, ok := parent[w]; ok && p == now {
					if low[w] >= in[now] && !hiddenAlready(result[now], w) {
						result[now] = append(result[now], subtree(children, w))
					}
				} else if w != parent[now] && low[now] > in[w] {
					low[now] = in[w]
				}
			}
		}

		stack = stack[:len(stack)-1]
	}

	if len(children[root]) >= 2 {
		for _, c := range children[root][1:] {
			result[root] = append(result[root], subtree(children, c))
		}
	}

	return result
}

// subtree collects every zone in the DFS subtree rooted at root, inclusive.
func subtree(children map[ZoneID][]ZoneID, root ZoneID) []ZoneID {
	stack := []ZoneID{root}
	set := map[ZoneID]struct{}{}
	for len(stack) > 0 {
		now := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := set[now]; ok {
			continue
		}
		set[now] = struct{}{}
		stack = append(stack, children[now]...)
	}

	out := make([]ZoneID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func hiddenAlready(sets [][]ZoneID, id ZoneID) bool {
	for _, sub := range sets {
		for _, z := range sub {
			if z == id {
				return true
			}
		}
	}
	return false
}
