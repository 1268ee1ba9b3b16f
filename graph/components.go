package graph

// ConnectedComponents partitions this region's own members into maximal
// connected groups, using only edges internal to the region (exterior and
// foreign zones are never traversed). Used as an invariant check: a
// healthy region always yields exactly one component.
func (r *Region) ConnectedComponents() [][]ZoneID {
	notfound := make(map[ZoneID]struct{}, r.count)
	for id := range r.zones {
		notfound[id] = struct{}{}
	}

	var comps [][]ZoneID
	for len(notfound) > 0 {
		start := smallestZoneID(notfound)
		delete(notfound, start)

		visited := map[ZoneID]struct{}{start: {}}
		stack := []ZoneID{start}
		var comp []ZoneID

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, cur)

			z := r.graph.mustZone(cur)
			for _, n := range z.neighbours {
				if n == ExteriorID {
					continue
				}
				if _, member := r.zones[n]; !member {
					continue
				}
				if _, seen := visited[n]; seen {
					continue
				}
				visited[n] = struct{}{}
				delete(notfound, n)
				stack = append(stack, n)
			}
		}

		comps = append(comps, sortedZoneIDSlice(comp))
	}

	return comps
}

// checkConnected reports whether the region's induced subgraph is a
// single connected component. An empty region is trivially connected.
func (r *Region) checkConnected() bool {
	if r.count == 0 {
		return true
	}
	return len(r.ConnectedComponents()) == 1
}

func sortedZoneIDSlice(ids []ZoneID) []ZoneID {
	set := make(map[ZoneID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return sortedZoneIDs(set)
}
