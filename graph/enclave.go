package graph

import "sort"

// searchTree flood-fills from start through unassigned zones, refusing to
// enter any zone in block. escaped is true if the flood ever reaches the
// exterior sentinel or an assigned zone outside block; visited holds every
// unassigned zone reached (start included).
func searchTree(g *Graph, start ZoneID, block map[ZoneID]struct{}) (escaped bool, visited map[ZoneID]struct{}) {
	stack := []ZoneID{start}
	visited = map[ZoneID]struct{}{start: {}}

	for len(stack) > 0 && !escaped {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		z := g.mustZone(current)
		for _, n := range z.neighbours {
			if _, blocked := block[n]; blocked {
				continue
			}
			if _, seen := visited[n]; seen {
				continue
			}
			nz := g.mustZone(n)
			if n == ExteriorID || nz.IsAssigned() {
				escaped = true
				break
			}
			visited[n] = struct{}{}
			stack = append(stack, n)
		}
	}

	return escaped, visited
}

// enclaveSearch drains starts (processed smallest-id first for
// determinism), running searchTree from each not-yet-resolved start
// point. Every zone visited by a search — escaped or not — is removed
// from further consideration, since it has already been classified.
func enclaveSearch(g *Graph, starts []ZoneID, block map[ZoneID]struct{}) [][]ZoneID {
	pending := make(map[ZoneID]struct{}, len(starts))
	for _, s := range starts {
		pending[s] = struct{}{}
	}

	var enclaves [][]ZoneID
	for len(pending) > 0 {
		z := smallestZoneID(pending)
		escaped, visited := searchTree(g, z, block)
		if !escaped {
			enclaves = append(enclaves, sortedZoneIDs(visited))
		}
		for v := range visited {
			delete(pending, v)
		}
	}

	sort.Slice(enclaves, func(i, j int) bool { return enclaves[i][0] < enclaves[j][0] })

	return enclaves
}

// Enclaves returns the connected components of unassigned zones that are
// reachable from this region's boundary and cannot reach the exterior or
// any other region without crossing this region.
func (r *Region) Enclaves() [][]ZoneID {
	starts := r.unassignedNeighbours(nil)
	return enclaveSearch(r.graph, starts, r.zones)
}

// PotentialEnclaves reports the zones that would become enclaves of this
// region if every zone in additional were hypothetically claimed by it.
func (r *Region) PotentialEnclaves(additional []ZoneID) []ZoneID {
	block := make(map[ZoneID]struct{}, r.count+len(additional))
	for id := range r.zones {
		block[id] = struct{}{}
	}
	for _, id := range additional {
		block[id] = struct{}{}
	}

	starts := r.unassignedNeighbours(additional)
	enclaves := enclaveSearch(r.graph, starts, block)

	union := make(map[ZoneID]struct{})
	for _, enclave := range enclaves {
		for _, id := range enclave {
			union[id] = struct{}{}
		}
	}

	return sortedZoneIDs(union)
}

// unassignedNeighbours returns the unassigned, non-exterior neighbours of
// either this region (additional == nil) or of the given additional zones.
func (r *Region) unassignedNeighbours(additional []ZoneID) []ZoneID {
	seen := make(map[ZoneID]struct{})

	add := func(z *Zone) {
		for _, n := range z.neighbours {
			if n == ExteriorID {
				continue
			}
			nz := r.graph.mustZone(n)
			if !nz.IsAssigned() {
				seen[n] = struct{}{}
			}
		}
	}

	if additional == nil {
		for id := range r.zones {
			add(r.graph.mustZone(id))
		}
	} else {
		for _, id := range additional {
			add(r.graph.mustZone(id))
		}
	}

	return sortedZoneIDs(seen)
}

// IsInEnclave reports whether this region is entirely enclosed by another
// region, allowing unassigned space in between, with no path to the
// exterior.
func (r *Region) IsInEnclave() bool {
	todo := make(map[ZoneID]struct{})
	for _, z := range r.NeighZones(true) {
		todo[z] = struct{}{}
	}
	if _, ok := todo[ExteriorID]; ok {
		return false
	}

	visited := make(map[ZoneID]struct{}, r.count)
	for id := range r.zones {
		visited[id] = struct{}{}
	}

	found := map[RegionID]struct{}{r.idx: {}}
	for len(todo) > 0 {
		current := smallestZoneID(todo)
		delete(todo, current)

		if current == ExteriorID {
			return false
		}

		z := r.graph.mustZone(current)
		if z.IsAssigned() {
			found[z.region] = struct{}{}
			if len(found) > 2 {
				return false
			}
		} else {
			for _, n := range z.neighbours {
				if _, seen := visited[n]; !seen {
					todo[n] = struct{}{}
				}
			}
		}
		visited[current] = struct{}{}
	}

	return true
}

// IncludeEnclaves binds every zone of every current enclave into this
// region. Idempotent once there are no enclaves left.
func (r *Region) IncludeEnclaves() error {
	for _, enclave := range r.Enclaves() {
		for _, id := range enclave {
			if err := r.Bind(id); err != nil {
				return err
			}
		}
	}
	return nil
}

func smallestZoneID(s map[ZoneID]struct{}) ZoneID {
	first := true
	var best ZoneID
	for id := range s {
		if first || id < best {
			best = id
			first = false
		}
	}
	return best
}

func sortedZoneIDs(s map[ZoneID]struct{}) []ZoneID {
	out := make([]ZoneID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
